package config

import "testing"

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("DATABASE_DSN", "root:pw@tcp(localhost:3306)/marina?parseTime=true")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when JWT_SECRET is unset")
	}
}

func TestLoadMissingDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when DATABASE_DSN is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "root:pw@tcp(localhost:3306)/marina?parseTime=true")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Production() {
		t.Error("Production() = true in development")
	}
}

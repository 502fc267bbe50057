package config

import (
	"fmt"
	"os"
)

// Config holds the process-wide configuration, loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
}

// Load reads configuration from the environment. The signing secret and the
// store address have no defaults; a missing value is a startup error.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DATABASE_DSN must be set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

// Production reports whether the process runs in the production environment.
func (c Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/portrussell/marina-go/internal/config"
	"github.com/portrussell/marina-go/internal/handler"
	"github.com/portrussell/marina-go/internal/metrics"
	"github.com/portrussell/marina-go/internal/repository"
	"github.com/portrussell/marina-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := repository.RunMigrations(cfg.DatabaseDSN); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	catwayRepo := repository.NewCatwayRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	catwayService := service.NewCatwayService(catwayRepo)
	reservationService := service.NewReservationService(catwayRepo, reservationRepo)

	collector := metrics.NewCollector()

	router := handler.NewRouter(handler.RouterConfig{
		JWTSecret:    cfg.JWTSecret,
		Collector:    collector,
		Auth:         handler.NewAuthHandler(authService, cfg.Production()),
		Users:        handler.NewUserHandler(userService),
		Catways:      handler.NewCatwayHandler(catwayService),
		Reservations: handler.NewReservationHandler(reservationService),
		Pages:        handler.NewPageHandler(userService, reservationService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/jobpulse/internal/adapter/httpserver"
	"github.com/pscheid92/jobpulse/internal/adapter/metrics"
	"github.com/pscheid92/jobpulse/internal/adapter/mongodb"
	"github.com/pscheid92/jobpulse/internal/app"
	"github.com/pscheid92/jobpulse/internal/auth"
	"github.com/pscheid92/jobpulse/internal/platform/config"
	"github.com/pscheid92/jobpulse/internal/platform/logging"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupMongo(cfg *config.Config) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	if err := mongodb.EnsureIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
		slog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	return client
}

func runGracefulShutdown(srv *httpserver.Server, client *mongo.Client) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		if err := client.Disconnect(shutdownCtx); err != nil {
			slog.Error("MongoDB disconnect error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	client := setupMongo(cfg)
	db := client.Database(cfg.MongoDatabase)

	userRepo := mongodb.NewUserRepo(db, clock)
	studentRepo := mongodb.NewStudentRepo(db, clock)
	companyRepo := mongodb.NewCompanyRepo(db, clock)
	adminRepo := mongodb.NewAdminRepo(db, clock)
	jobRepo := mongodb.NewJobRepo(db, clock)
	applicationRepo := mongodb.NewApplicationRepo(db, clock)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, clock)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	appSvc := app.NewService(userRepo, studentRepo, companyRepo, adminRepo, jobRepo, applicationRepo, tokens, hasher)

	registry := metrics.NewRegistry()

	healthChecks := []httpserver.HealthCheck{
		{Name: "mongodb", Check: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		}},
	}

	srv := httpserver.NewServer(cfg, appSvc, tokens, registry, healthChecks)

	done := runGracefulShutdown(srv, client)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

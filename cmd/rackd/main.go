package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ValenGrassi/cinerack/internal/adapters/factory"
	httpAdapter "github.com/ValenGrassi/cinerack/internal/adapters/http"
	"github.com/ValenGrassi/cinerack/internal/adapters/postgres"
	"github.com/ValenGrassi/cinerack/internal/config"
	"github.com/ValenGrassi/cinerack/internal/domain/service"
	"github.com/ValenGrassi/cinerack/internal/observability"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CINERACK_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.SetLevel(cfg.Logging.Level)
	logger := observability.New("rackd-main", "")

	observability.InitMetrics()

	// Initialize storage
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbFactory := factory.NewDatabaseAdapterFactory()
	if err := dbFactory.ValidateConfig(&cfg.Database); err != nil {
		logger.Fatalw("Invalid database configuration", "error", err)
	}

	adapter, err := dbFactory.CreateAndConnectAdapter(ctx, &cfg.Database)
	if err != nil {
		logger.Fatalw("Failed to connect to database", "type", cfg.Database.Type, "error", err)
	}
	defer adapter.Disconnect(context.Background())

	logger.Infow("✓ Storage connected", "type", adapter.GetType())

	// Apply schema migrations on postgres
	if pg, ok := adapter.(*postgres.PostgresAdapter); ok {
		if err := pg.Migrate(ctx); err != nil {
			logger.Fatalw("Failed to run migrations", "error", err)
		}
		logger.Info("✓ Database schema up to date")
	}

	// Initialize rack service
	rackService := service.NewRackService(adapter.GetCinemaRepository(), adapter.GetAuditRepository())

	logger.Info("✓ Rack service initialized")

	// Initialize HTTP server
	httpServerConfig := httpAdapter.ServerConfig{
		ListenAddr:   fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		EnableH2C:    true,
	}

	healthCheck := func() error {
		checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer checkCancel()
		return adapter.HealthCheck(checkCtx)
	}

	httpServer := httpAdapter.NewServer(httpServerConfig, rackService, healthCheck)

	if err := httpServer.Start(); err != nil {
		logger.Fatalw("Failed to start HTTP server", "error", err)
	}

	logger.Infow("✓ HTTP server listening", "address", httpServer.GetAddr())

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logger.Infow("Shutdown signal received", "signal", sig.String())

	if err := httpServer.Stop(); err != nil {
		logger.Errorw("HTTP server shutdown failed", "error", err)
	}

	logger.Info("✓ Shutdown complete")
}

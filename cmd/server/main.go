package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/raceleague/steward/internal/api"
	"github.com/raceleague/steward/internal/factory"
	redisstorage "github.com/raceleague/steward/internal/storage/redis"
)

type config struct {
	Host          string        `env:"HOST" envDefault:""`
	Port          int           `env:"PORT" envDefault:"8080"`
	StorageType   string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL      string        `env:"REDIS_URL"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"24h"`
	AdminUser     string        `env:"STEWARD_ADMIN_USER"`
	AdminPassword string        `env:"STEWARD_ADMIN_PASSWORD"`
}

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Error("failed to parse environment", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config from environment
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bootstrap the initial steward account if configured
	if cfg.AdminUser != "" && cfg.AdminPassword != "" {
		if err := app.AuthService.RegisterSteward(ctx, cfg.AdminUser, cfg.AdminPassword); err != nil {
			logger.Warn("could not bootstrap steward account",
				slog.String("username", cfg.AdminUser),
				slog.String("error", err.Error()))
		} else {
			logger.Info("bootstrapped steward account", slog.String("username", cfg.AdminUser))
		}
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		AuthService: app.AuthService,
		Controller:  app.Controller,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Periodically sweep expired bans
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := app.Controller.SweepExpiredBans(ctx)
				if err != nil {
					logger.Error("ban sweep failed", slog.String("error", err.Error()))
					continue
				}
				if removed > 0 {
					logger.Info("swept expired bans", slog.Int("removed", removed))
				}
			}
		}
	}()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

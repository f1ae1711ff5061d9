// Package main is the entry point for the Gestobra API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gestobra/internal/config"
	"gestobra/internal/domain/auth"
	"gestobra/internal/domain/reports"
	v1 "gestobra/internal/infrastructure/http/v1"
	"gestobra/internal/infrastructure/mail"
	"gestobra/internal/infrastructure/metrics"
	"gestobra/internal/infrastructure/render/remote"
	"gestobra/internal/infrastructure/render/xlsx"
	"gestobra/internal/infrastructure/storage/postgres"
	"gestobra/internal/infrastructure/storage/postgres/catalog_repo"
	"gestobra/internal/infrastructure/storage/postgres/migrations"
	"gestobra/pkg/logger"
	"gestobra/pkg/numerator"
)

var version = "dev"

func main() {
	configPath := flag.String("config", os.Getenv("GESTOBRA_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Development: cfg.App.Env == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)
	log.Infow("starting gestobra server", "version", version, "env", cfg.App.Env)

	// --- Database ---
	if cfg.Postgres.AutoMigrate {
		if err := migrations.Run(ctx, cfg.Postgres.DSN, migrations.Up); err != nil {
			log.Fatalw("failed to apply migrations", "error", err)
		}
	}

	poolCfg := postgres.DefaultPoolConfig(cfg.Postgres.DSN)
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolCfg.MinConns = cfg.Postgres.MinConns
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	pool.LogStats(ctx)

	txm := postgres.NewTxManager(pool)
	codes := numerator.New(func(ctx context.Context) numerator.Querier {
		return txm.GetQuerier(ctx)
	}, nil)

	// --- Collaborators ---
	var renderer reports.Renderer
	switch cfg.Renderer.Kind {
	case "remote":
		renderer = remote.New(remote.Config{
			BaseURL:  cfg.Renderer.BaseURL,
			Timeout:  cfg.Renderer.Timeout,
			Compress: cfg.Renderer.Compress,
		})
	default:
		renderer = xlsx.New(cfg.Location())
	}

	mailer := mail.NewSendGridClient(mail.Config{
		APIKey:   cfg.Mail.SendGridAPIKey,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		To:       cfg.Mail.To,
	})
	if cfg.Mail.SendGridAPIKey == "" {
		log.Warn("sendgrid api key not set: contact form submissions will fail")
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// --- Router ---
	routerCfg := v1.RouterConfig{
		Repos: v1.Repositories{
			Materials: catalog_repo.NewMaterialRepo(txm),
			Tools:     catalog_repo.NewToolRepo(txm),
			Clients:   catalog_repo.NewClientRepo(txm),
			Employees: catalog_repo.NewEmployeeRepo(txm),
			Projects:  catalog_repo.NewProjectRepo(txm),
		},
		TxManager: txm,
		Codes:     codes,
		Renderer:  renderer,
		Mailer:    mailer,
		DB:        pool,
		Metrics:   m,
		Logger:    log,
		Location:  cfg.Location(),
		Version:   version,
		Debug:     cfg.App.Env == "development",
	}

	// --- Auth ---
	if cfg.AuthEnabled() {
		jwtCfg := auth.DefaultJWTConfig(cfg.Auth.JWTSecret)
		if cfg.Auth.TokenTTL > 0 {
			jwtCfg.AccessTokenTTL = cfg.Auth.TokenTTL
		}
		jwtService := auth.NewJWTService(jwtCfg)
		routerCfg.JWTValidator = jwtService
		routerCfg.AuthService = auth.NewService(auth.Admin{
			Email:        cfg.Auth.AdminEmail,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		}, jwtService)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      v1.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.HTTP.Addr, "renderer", cfg.Renderer.Kind, "auth", cfg.AuthEnabled())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

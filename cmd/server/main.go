// Command server runs the storefront HTTP API.
//
// @title           Storefront API
// @version         1.0
// @description     Catalog browsing, account registration, and order placement.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickshop/storefront-api/internal/api"
	"github.com/quickshop/storefront-api/internal/infrastructure/config"
	"github.com/quickshop/storefront-api/internal/infrastructure/storage"
	"github.com/quickshop/storefront-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := seedCatalog(ctx, cfg.DataDir); err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}

	e, err := api.NewRouter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedCatalog writes the default product catalog on first boot.
func seedCatalog(ctx context.Context, dataDir string) error {
	if err := storage.EnsureDir(dataDir); err != nil {
		return err
	}
	repo := storage.NewProductRepository(dataDir)
	return repo.SeedIfMissing(ctx, storage.DefaultCatalog())
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"befach-store/internal/config"
	"befach-store/internal/handler"
	"befach-store/internal/ingest"
	"befach-store/internal/repository"
	"befach-store/internal/router"
	"befach-store/internal/service"
	"befach-store/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting befach-store API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the JSON-file record store
	recordStore, err := store.New(
		cfg.Storage.DataDir,
		logger,
		store.CollectionProducts,
		store.CollectionSlider,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize record store: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(recordStore, logger)
	slideRepo := repository.NewSlideRepository(recordStore, logger)

	// Initialize catalogue source loader with S3 and local fallback
	var catalogLoader ingest.Loader

	if cfg.S3.Enabled {
		s3Loader, err := ingest.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			catalogLoader = ingest.NewFileLoader(logger)
		} else {
			catalogLoader = s3Loader
		}
	} else {
		catalogLoader = ingest.NewFileLoader(logger)
		logger.Info().Msg("using local file system for catalogue source files (S3 disabled)")
	}

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	slideService := service.NewSlideService(slideRepo, logger)
	catalogService := service.NewCatalogService(productRepo, catalogLoader, cfg.Catalog.SourcePath, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, catalogService, logger)
	slideHandler := handler.NewSlideHandler(slideService, logger)
	authHandler := handler.NewAuthHandler(cfg.Auth, logger)

	// Initialize router
	mux := router.New(productHandler, slideHandler, authHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

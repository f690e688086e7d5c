package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hedonic/internal/config"
	"hedonic/internal/database"
	"hedonic/internal/handler"
	"hedonic/internal/quiz"
	"hedonic/internal/repository"
	"hedonic/internal/router"
	"hedonic/internal/service"

	"github.com/rs/zerolog"
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
	logger.Info().Msg("starting hedonic API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Seed the launch catalogue if the products table is empty
	if cfg.Database.SeedOnStart {
		if err := repository.SeedProducts(ctx, productRepo, logger); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	// Load quiz content, falling back to the built-in question set
	quizContent, err := loadQuizContent(ctx, cfg.Quiz, logger)
	if err != nil {
		return fmt.Errorf("failed to load quiz content: %w", err)
	}

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	quizHandler := handler.NewQuizHandler(quizContent, logger)

	// Initialize router
	mux := router.New(
		productHandler,
		orderHandler,
		quizHandler,
		cfg.RateLimit.Limit,
		cfg.RateLimit.Window,
		logger,
	)

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

// loadQuizContent resolves the quiz question set from S3, a local file, or
// the built-in defaults, in that order of preference.
func loadQuizContent(ctx context.Context, cfg config.QuizConfig, logger zerolog.Logger) (*quiz.Content, error) {
	if cfg.File == "" && !cfg.S3Enabled {
		logger.Info().Msg("using built-in quiz content")
		return quiz.DefaultContent(), nil
	}

	fileLoader := quiz.NewFileLoader(logger)

	var s3Loader quiz.Loader
	if cfg.S3Enabled {
		loader, err := quiz.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = loader
		}
	}

	loader := quiz.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Key, s3Loader != nil, logger)

	content, err := loader.Load(ctx, cfg.File)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load quiz content, using built-in question set")
		return quiz.DefaultContent(), nil
	}

	return content, nil
}

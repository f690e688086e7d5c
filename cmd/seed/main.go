package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"hedonic/internal/config"
	"hedonic/internal/database"
	"hedonic/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("seeding product catalogue")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	productRepo := repository.NewProductRepository(pool, logger)

	if err := repository.SeedProducts(ctx, productRepo, logger); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	logger.Info().Msg("seeding completed")
	return nil
}

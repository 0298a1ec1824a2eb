package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/upbringing/recommender/config"
	httpDelivery "github.com/upbringing/recommender/internal/delivery/http"
	"github.com/upbringing/recommender/internal/infrastructure/cache"
	"github.com/upbringing/recommender/internal/infrastructure/loader"
	"github.com/upbringing/recommender/internal/usecase"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Printf("Starting recommendation server")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Default strategy: %s", cfg.Recommend.Strategy)
	log.Printf("Weights: app=%.2f power=%.2f desc=%.2f",
		cfg.Weights.Application, cfg.Weights.Power, cfg.Weights.Description)

	// Initialize the single-slot catalog cache around the snapshot pipeline
	catalogCache := cache.NewCatalogCache(usecase.BuildSnapshot)

	service, err := usecase.NewRecommenderService(catalogCache, usecase.ServiceConfig{
		Weights: usecase.Weights{
			Application: cfg.Weights.Application,
			Power:       cfg.Weights.Power,
			Description: cfg.Weights.Description,
		},
		DefaultCount: cfg.Recommend.DefaultCount,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize recommender: %w", err)
	}

	// Optional catalog preload from a configured CSV path
	if cfg.Catalog.CSVPath != "" {
		records, err := loader.NewCSVSource(cfg.Catalog.CSVPath).Records(ctx)
		if err != nil {
			return fmt.Errorf("failed to preload catalog: %w", err)
		}
		if err := service.Load(ctx, records); err != nil {
			return fmt.Errorf("failed to preload catalog: %w", err)
		}
		log.Printf("Preloaded %d products from %s", service.ProductCount(), cfg.Catalog.CSVPath)
	} else {
		log.Printf("No catalog preload configured; waiting for /load-products")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(service, cfg.Recommend.Strategy)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

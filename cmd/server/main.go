package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dukerupert/novella/internal"
	"github.com/dukerupert/novella/internal/catalog"
	"github.com/dukerupert/novella/internal/cookie"
	"github.com/dukerupert/novella/internal/handler/storefront"
	"github.com/dukerupert/novella/internal/middleware"
	"github.com/dukerupert/novella/internal/recommend"
	"github.com/dukerupert/novella/internal/router"
	"github.com/dukerupert/novella/internal/routes"
	"github.com/dukerupert/novella/internal/service"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// ==========================================================================
	// Initialize the recommendation model client
	// ==========================================================================

	gemini, err := recommend.NewGeminiProvider(ctx, recommend.GeminiConfig{
		APIKey:         cfg.Gemini.APIKey,
		Model:          cfg.Gemini.Model,
		TimeoutSeconds: cfg.Gemini.TimeoutSeconds,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize recommendation client: %w", err)
	}
	logger.Info("Recommendation model ready", "model", gemini.Model())

	// ==========================================================================
	// Initialize catalog and services
	// ==========================================================================

	books := catalog.New(catalog.Seed())

	cartService := service.NewCartService()
	searchService := service.NewSearchService(gemini, logger)
	vibeService := service.NewVibeService(gemini, logger)

	// ==========================================================================
	// Initialize handlers
	// ==========================================================================

	cookies := cookie.NewConfig(cfg.Secure())

	deps := routes.StorefrontDeps{
		Books:  storefront.NewBookHandler(books, searchService),
		Cart:   storefront.NewCartHandler(cartService, books, searchService, cookies),
		Search: storefront.NewSearchHandler(searchService, cookies),
		Vibe:   storefront.NewVibeHandler(vibeService, books, searchService, cookies),
	}

	// ==========================================================================
	// Initialize middleware
	// ==========================================================================

	metrics := middleware.NewMetrics("novella")

	defaultRateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
	searchRateLimiter := middleware.NewRateLimiter(middleware.StrictRateLimiterConfig())
	deps.SearchLimiter = searchRateLimiter.Middleware

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(cfg.CORSOrigins),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		defaultRateLimiter.Middleware,
		router.Logger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.Storefront(r, deps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

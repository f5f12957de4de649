package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtsignal/services/lineup-engine/internal/cache"
	"github.com/courtsignal/services/lineup-engine/internal/config"
	"github.com/courtsignal/services/lineup-engine/internal/db"
	"github.com/courtsignal/services/lineup-engine/internal/engine"
	"github.com/courtsignal/services/lineup-engine/internal/handlers"
	"github.com/courtsignal/services/lineup-engine/pkg/contracts"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	fmt.Println("=== CourtSignal Lineup Engine ===")

	cfg := config.Load()

	// Connect to the game-log database
	dbClient, err := db.NewClient(cfg.DatabaseDSN)
	if err != nil {
		fmt.Printf("✗ Failed to connect to game-log database: %v\n", err)
		os.Exit(1)
	}
	defer dbClient.Close()
	fmt.Println("✓ Connected to game-log database")

	// Optionally wrap the store in a Redis read-through cache
	var store contracts.GameLogStore = dbClient
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			fmt.Printf("✗ Failed to parse Redis URL: %v\n", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			fmt.Printf("✗ Failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Connected to Redis, game-log cache enabled")

		store = cache.New(redisClient, dbClient)
	}

	eng := engine.New(store, cfg.ConfidenceThreshold)
	handler := handlers.NewHandler(eng)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/health", handler.HealthCheck)
	r.Post("/api/v1/lineup-adjustment", handler.ComputeAdjustment)
	r.Post("/api/v1/features/apply", handler.ApplyFeatures)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		fmt.Printf("✓ Lineup Engine started on port %d\n", cfg.Port)
		fmt.Printf("  Confidence Threshold: %.2f\n", cfg.ConfidenceThreshold)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("✗ Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n✓ Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Printf("✗ Shutdown error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Lineup Engine stopped")
}

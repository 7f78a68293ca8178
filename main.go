package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	appCache "github.com/keralatrips/itinerary-api/app/cache"
	database "github.com/keralatrips/itinerary-api/app/db"
	appLogger "github.com/keralatrips/itinerary-api/app/logger"
	"github.com/keralatrips/itinerary-api/app/observability/metrics"
	"github.com/keralatrips/itinerary-api/app/tracer"
	"github.com/keralatrips/itinerary-api/config"
	generativeAI "github.com/keralatrips/itinerary-api/internal/api/generative_ai"
	"github.com/keralatrips/itinerary-api/internal/api/itinerary"
	"github.com/keralatrips/itinerary-api/internal/planner"
	apiRouter "github.com/keralatrips/itinerary-api/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability Setup ---
	metricsHandler := tracer.InitTracingAndMetrics("itinerary-api")
	metrics.InitAppMetrics()

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	// Run migrations *before* initializing the main pool
	err = database.RunMigrations(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	// --- Cache Setup ---
	var store appCache.Store
	if addr := cfg.Repositories.Redis.Addr; addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Repositories.Redis.Password,
			DB:       cfg.Repositories.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis not reachable, falling back to in-memory cache", slog.Any("error", err))
			store = appCache.NewMemoryStore(cfg.Planner.CacheTTL)
		} else {
			store = appCache.NewRedisStore(client, logger)
		}
	} else {
		store = appCache.NewMemoryStore(cfg.Planner.CacheTTL)
	}

	// --- Planner Setup ---
	tripPlanner, err := planner.New(planner.NewKeralaCatalog(), planner.NewKeywordScorer(), logger)
	if err != nil {
		logger.Error("Failed to build planner", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Optional Generative Enhancer ---
	var enhancer itinerary.Enhancer
	if cfg.Gemini.Enabled {
		aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.Model)
		if err != nil {
			logger.Warn("Generative enhancer disabled", slog.Any("error", err))
		} else {
			enhancer = generativeAI.NewInsightsEnhancer(aiClient, logger)
		}
	}

	// --- Dependency Injection ---
	itineraryRepo := itinerary.NewRepository(pool, logger, metrics.Get())
	itineraryService := itinerary.NewServiceImpl(tripPlanner, itineraryRepo, store, logger, itinerary.Options{
		Enhancer:     enhancer,
		Metrics:      metrics.Get(),
		StoreResults: cfg.Planner.StoreResults,
		CacheTTL:     cfg.Planner.CacheTTL,
	})
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)

	// --- Router Setup ---
	mainRouter := apiRouter.SetupRouter(&apiRouter.Config{
		ItineraryHandler: itineraryHandler,
		MetricsHandler:   metricsHandler,
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	// --- HTTP Servers ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Handlers.Prometheus.Port),
		Handler: metricsMux,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", apiServer.Addr))
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server graceful shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}

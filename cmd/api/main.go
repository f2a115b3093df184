// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/eventmatch-ai/event-advisor/internal/agent"
	"github.com/eventmatch-ai/event-advisor/internal/config"
	"github.com/eventmatch-ai/event-advisor/internal/handler"
	"github.com/eventmatch-ai/event-advisor/internal/llm"
	"github.com/eventmatch-ai/event-advisor/internal/middleware"
	natsclient "github.com/eventmatch-ai/event-advisor/internal/nats"
	"github.com/eventmatch-ai/event-advisor/internal/service"
	"github.com/eventmatch-ai/event-advisor/internal/store"
	"github.com/eventmatch-ai/event-advisor/pkg/logger"
	"github.com/eventmatch-ai/event-advisor/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "event-advisor", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing")
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to PostgreSQL
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	eventStore := store.NewPostgresStore(pool)
	if err := eventStore.Migrate(ctx); err != nil {
		log.Error("failed to migrate database", zap.Error(err))
		os.Exit(1)
	}

	// Seed sample events on first run
	if cfg.SeedEvents {
		seedSampleEvents(ctx, eventStore, log)
	}

	// Connect to NATS
	natsConn, err := natsclient.Connect(natsclient.Config{
		URL:      cfg.NATSURL,
		CAFile:   cfg.NATSCAFile,
		CertFile: cfg.NATSCertFile,
		KeyFile:  cfg.NATSKeyFile,
		Token:    cfg.NATSToken,
	}, log)
	if err != nil {
		log.Error("failed to connect to NATS", zap.Error(err))
		os.Exit(1)
	}
	defer natsConn.Close()

	// Ensure JetStream stream exists
	publisher := natsclient.NewPublisher(natsConn)
	if err := publisher.EnsureStream(ctx); err != nil {
		log.Error("failed to ensure stream", zap.Error(err))
		os.Exit(1)
	}

	// Initialize the model client
	modelClient, err := newModelClient(ctx, cfg)
	if err != nil {
		log.Error("failed to create model client", zap.Error(err))
		os.Exit(1)
	}
	log.Info("model client ready", zap.String("provider", modelClient.Name()))

	// Declare callable tools
	registry := agent.NewRegistry()
	if err := registry.Register(agent.SearchToolSpec(), agent.SearchHandler()); err != nil {
		log.Error("failed to register tools", zap.Error(err))
		os.Exit(1)
	}

	// Initialize services
	analysisSvc := service.NewAnalysisService(
		modelClient, registry, eventStore, publisher,
		cfg.AnalysisMaxLength, cfg.MaxToolRoundTrips, log,
	)
	eventSvc := service.NewEventService(eventStore, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(natsConn, eventStore)
	analysisHandler := handler.NewAnalysisHandler(analysisSvc, log)
	eventHandler := handler.NewEventHandler(eventSvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes with authentication
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Get("/events", eventHandler.List)
		r.Post("/analysis", analysisHandler.Analyze)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

// newModelClient selects the model provider from configuration.
func newModelClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch llm.Provider(cfg.DefaultLLM) {
	case llm.ProviderOpenAI:
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}

// seedSampleEvents inserts the sample event set when the table is empty.
// Seeding failures are logged but never prevent startup.
func seedSampleEvents(ctx context.Context, s *store.PostgresStore, log *logger.Logger) {
	count, err := s.Count(ctx)
	if err != nil {
		log.Warn("failed to check event count, skipping seed", zap.Error(err))
		return
	}
	if count > 0 {
		log.Info("database already contains events, skipping seed", zap.Int64("count", count))
		return
	}

	events := store.SampleEvents()
	if err := s.Seed(ctx, events); err != nil {
		log.Warn("failed to seed sample events", zap.Error(err))
		return
	}
	log.Info("seeded sample events", zap.Int("count", len(events)))
}

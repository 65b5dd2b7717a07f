package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/booking"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/chat"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/clinic"
	appconfig "github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/config"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/forwarder"
	httpmiddleware "github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/http/middleware"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/observability/metrics"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/records"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/session"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/internal/textgen"
	"github.com/vidaisolutions/VIDAI-Chatbot-AI/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting chatbot server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.GeminiAPIKey == "" {
		logger.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}
	provider, err := textgen.NewGeminiProvider(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID, cfg.GenerationTimeout)
	if err != nil {
		logger.Error("failed to initialize text generation provider", "error", err)
		os.Exit(1)
	}
	defer provider.Close()

	sessions, err := newSessionStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize session store", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(registry)

	store := records.NewCSVStore(cfg.AppointmentCSV, logger)
	submit := forwarder.New(cfg.SubmitBaseURL, cfg.SubmitTimeout, logger)
	machine := booking.NewMachine(clinic.StaticDirectory{})
	finalizer := booking.NewFinalizer(store, submit, provider, bookingMetrics, logger)
	handler := chat.NewHandler(sessions, machine, finalizer, store, provider, bookingMetrics, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(httpmiddleware.RequestLogger(logger))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Mount("/chat", handler.Routes())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		// No WriteTimeout: it would cut long-lived WebSocket connections.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func newSessionStore(cfg *appconfig.Config, logger *logging.Logger) (session.Store, error) {
	switch cfg.SessionStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		logger.Info("using redis session store", "addr", cfg.RedisAddr)
		return session.NewRedisStore(client, cfg.SessionTTL), nil
	default:
		logger.Info("using in-memory session store", "ttl", cfg.SessionTTL.String())
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}
}

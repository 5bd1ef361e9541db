package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/talentbridge/matchd/internal/config"
	"github.com/talentbridge/matchd/internal/db"
	dbRedis "github.com/talentbridge/matchd/internal/db/redis"
	"github.com/talentbridge/matchd/internal/domain"
	logpkg "github.com/talentbridge/matchd/internal/logger"
	"github.com/talentbridge/matchd/internal/metrics"
	connectionrepo "github.com/talentbridge/matchd/internal/repository/connection"
	embeddingrepo "github.com/talentbridge/matchd/internal/repository/embedding"
	jobrepo "github.com/talentbridge/matchd/internal/repository/job"
	profilerepo "github.com/talentbridge/matchd/internal/repository/profile"
	chiTransport "github.com/talentbridge/matchd/internal/transport/chi"
	openaiEmb "github.com/talentbridge/matchd/internal/transport/openai"
	connectionuc "github.com/talentbridge/matchd/internal/usecase/connection"
	embeddinguc "github.com/talentbridge/matchd/internal/usecase/embedding"
	healthuc "github.com/talentbridge/matchd/internal/usecase/health"
	jobuc "github.com/talentbridge/matchd/internal/usecase/job"
	matchinguc "github.com/talentbridge/matchd/internal/usecase/matching"
	profileuc "github.com/talentbridge/matchd/internal/usecase/profile"
	rankinguc "github.com/talentbridge/matchd/internal/usecase/ranking"
	"github.com/talentbridge/matchd/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting matchd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register matching metrics explicitly (no init())
	metrics.RegisterMatchingMetrics()

	// Build embedder chain — composition root
	embedder, embChecker := buildEmbedder(cfg, store, logger)

	// Create repositories
	prefix := cfg.Storage.KeyPrefix
	profileRepo := profilerepo.New(store, prefix)
	embeddingRepo := embeddingrepo.New(store, prefix)
	jobRepo := jobrepo.New(store, prefix)
	connRepo := connectionrepo.New(store, prefix)

	// Create use case services
	profileSvc := profileuc.New(profileRepo, embeddingRepo, embedder, logger)
	jobSvc := jobuc.New(jobRepo, profileRepo, logger)
	matchingSvc := matchinguc.New(profileRepo, embeddingRepo, logger)
	rankingSvc := rankinguc.New(matchingSvc, profileRepo, jobRepo, cfg.Matching.RankConcurrency, logger)
	connSvc := connectionuc.New(connRepo, logger)
	healthSvc := healthuc.New(store, embChecker)

	// Create chi server
	server := chiTransport.NewServer(
		profileSvc, jobSvc, matchingSvc, rankingSvc, connSvc, healthSvc, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildEmbedder assembles the decorator chain: OpenAI -> Cached -> FailOpen.
// Without an API key the disabled embedder stores zero vectors and matches
// degrade to lexical-only scoring.
func buildEmbedder(
	cfg config.Config,
	store db.Store,
	logger *zap.Logger,
) (domain.Embedder, healthuc.EmbeddingChecker) {
	if cfg.Embedding.APIKey == "" {
		logger.Warn("No embedding API key configured, semantic scoring disabled")
		return embeddinguc.NewDisabled(), nil
	}

	base := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Logger:     logger,
	})

	cached := embeddinguc.NewCached(base, store, cfg.Storage.KeyPrefix, logger)
	chain := embeddinguc.NewFailOpen(cached, logger)

	logger.Info("Embedder created",
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)
	return chain, base
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}

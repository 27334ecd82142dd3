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

	"github.com/strainwise/strainwise/internal/catalog"
	"github.com/strainwise/strainwise/internal/config"
	"github.com/strainwise/strainwise/internal/db"
	dbRedis "github.com/strainwise/strainwise/internal/db/redis"
	"github.com/strainwise/strainwise/internal/domain"
	logpkg "github.com/strainwise/strainwise/internal/logger"
	"github.com/strainwise/strainwise/internal/metrics"
	"github.com/strainwise/strainwise/internal/recommend"
	"github.com/strainwise/strainwise/internal/repository/embcache"
	chiTransport "github.com/strainwise/strainwise/internal/transport/chi"
	openaiTransport "github.com/strainwise/strainwise/internal/transport/openai"
	"github.com/strainwise/strainwise/internal/vector"
	"github.com/strainwise/strainwise/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting strainwise API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("cache_addrs", cfg.Cache.Addrs),
	)

	// Embedding cache store is optional
	var store db.Store
	if len(cfg.Cache.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to cache")
	} else {
		logger.Info("No cache configured, embeddings go straight to the provider")
	}

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	embedder := buildEmbedder(cfg, store, logger)
	logger.Info("Embedder created",
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	// Catalog, priority subset, similarity index
	cat := catalog.NewSeeded()
	priority := catalog.NewPriorityPool(cat, cfg.Recommend.PrioritySize, logger)
	index := vector.NewIndex(embedder, cat, embeddingDims(cfg), logger)

	// Re-ranking chain: primary batch -> secondary per-strain -> heuristic
	filter := recommend.NewFilter(cfg.Recommend.FilterTopN)
	heuristic := recommend.NewHeuristicStage(cat, filter, cfg.Recommend.MaxResults)
	chain := []recommend.Reranker{
		buildPrimaryStage(cfg, cat, logger),
		buildSecondaryStage(cfg, logger),
		heuristic,
	}

	pool := recommend.NewPoolBuilder(priority, index, cat,
		cfg.Recommend.PoolSize, cfg.Recommend.SimilarityK, logger)
	svc := recommend.NewService(cat, pool, chain, heuristic, index, logger)

	// Warm the index before serving; failures degrade per strain, so this
	// only errors on cancellation.
	if err := index.Build(context.Background()); err != nil {
		logger.Warn("Index warmup failed", zap.Error(err))
	}

	var cachePinger interface {
		Ping(ctx context.Context) error
	}
	if store != nil {
		cachePinger = store
	}
	server := chiTransport.NewServer(svc, cat, priority, cachePinger, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
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

func embeddingDims(cfg config.Config) int {
	if cfg.Embedding.Dimensions > 0 {
		return cfg.Embedding.Dimensions
	}
	return 1536
}

// buildEmbedder assembles the decorator chain: OpenAI -> Cached
func buildEmbedder(cfg config.Config, store db.Store, logger *zap.Logger) domain.Embedder {
	base := openaiTransport.NewEmbedder(&openaiTransport.EmbedderConfig{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   "openai",
		Logger:     logger,
	})

	if store == nil {
		return base
	}
	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	return embcache.New(base, store, ttl, metrics.EmbeddingCacheTotal, logger)
}

func buildPrimaryStage(cfg config.Config, cat *catalog.Catalog, logger *zap.Logger) recommend.Reranker {
	client := openaiTransport.NewBatchReranker(&openaiTransport.RerankerConfig{
		APIKey:  cfg.Rerank.Primary.APIKey,
		BaseURL: cfg.Rerank.Primary.BaseURL,
		Model:   cfg.Rerank.Primary.Model,
		Stage:   "primary",
		Logger:  logger,
	})
	breaker := recommend.NewStageBreaker("primary", cfg.Rerank.Breaker.MaxFailures,
		time.Duration(cfg.Rerank.Breaker.OpenSec)*time.Second, logger)
	return recommend.NewPrimaryStage(client, cat, breaker,
		time.Duration(cfg.Rerank.Primary.TimeoutSec)*time.Second,
		cfg.Recommend.MinResults, cfg.Recommend.MaxResults, logger)
}

func buildSecondaryStage(cfg config.Config, logger *zap.Logger) recommend.Reranker {
	client := openaiTransport.NewSingleScorer(&openaiTransport.RerankerConfig{
		APIKey:  cfg.Rerank.Secondary.APIKey,
		BaseURL: cfg.Rerank.Secondary.BaseURL,
		Model:   cfg.Rerank.Secondary.Model,
		Stage:   "secondary",
		Logger:  logger,
	})
	breaker := recommend.NewStageBreaker("secondary", cfg.Rerank.Breaker.MaxFailures,
		time.Duration(cfg.Rerank.Breaker.OpenSec)*time.Second, logger)
	return recommend.NewSecondaryStage(client, breaker,
		time.Duration(cfg.Rerank.Secondary.TimeoutSec)*time.Second,
		cfg.Recommend.MaxResults, logger)
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

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

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

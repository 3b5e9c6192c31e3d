package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/blockfuselabs/CoinHawk/internal/adapters/openai"
	"github.com/blockfuselabs/CoinHawk/internal/adapters/zora"
	"github.com/blockfuselabs/CoinHawk/internal/config"
	"github.com/blockfuselabs/CoinHawk/internal/core/service"
	"github.com/blockfuselabs/CoinHawk/internal/handlers"
	"github.com/blockfuselabs/CoinHawk/internal/logger"
	"github.com/blockfuselabs/CoinHawk/internal/server"
	"github.com/blockfuselabs/CoinHawk/internal/ws"
	"github.com/blockfuselabs/CoinHawk/pkg/cache"
)

const shutdownGrace = 10 * time.Second

func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", false)
		logger.Log.Fatal("configuration error", zap.Error(err))
	}

	logger.Init(cfg.LogLevel, cfg.LogJSON)
	defer logger.Sync()

	summaries := buildSummaryCache(cfg)
	defer summaries.Close()

	provider := zora.NewClient(cfg.ZoraAPIKey,
		zora.WithBaseURL(cfg.ZoraBaseURL),
		zora.WithTimeout(cfg.UpstreamTimeout),
	)
	coins := service.NewCoinService(provider, cfg.BaseAppReferrerAddress, logger.Log)
	summarizer := openai.NewSummarizer(cfg.OpenAIAPIKey)

	srv := server.New(cfg.Port,
		handlers.NewCoinHandler(coins, summarizer, summaries),
		ws.NewChatHandler(coins, summarizer, summaries),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("shutdown error", zap.Error(err))
	}
}

// buildSummaryCache prefers Redis when configured and falls back to the
// in-process cache when Redis is disabled or unreachable.
func buildSummaryCache(cfg *config.Config) cache.SummaryCache {
	if !cfg.RedisEnabled {
		return cache.NewMemoryCache(cfg.SummaryTTL)
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Address:    cfg.RedisAddress,
		Username:   cfg.RedisUsername,
		Password:   cfg.RedisPassword,
		DB:         cfg.RedisDB,
		KeyPrefix:  cfg.RedisPrefix,
		UseTLS:     cfg.RedisUseTLS,
		DefaultTTL: cfg.SummaryTTL,
	})
	if err != nil {
		logger.Log.Warn("redis unavailable, using in-process summary cache", zap.Error(err))
		return cache.NewMemoryCache(cfg.SummaryTTL)
	}

	logger.Log.Info("summary cache backed by redis", zap.String("addr", cfg.RedisAddress))
	return redisCache
}

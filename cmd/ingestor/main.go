package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"daypass/internal/adapters/observability"
	redisad "daypass/internal/adapters/redis"
	"daypass/internal/adapters/resortpass"
	"daypass/internal/app"
	"daypass/internal/shared"
)

// ingestor fetches every configured feed once and stores a fresh snapshot,
// so the API starts warm. Run it from cron or before a deploy.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Strs("feeds", cfg.FeedURLs).
		Int("workers", cfg.Workers).
		Int("rps", cfg.FeedRPS).
		Msg("ingestor starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, redisad.WithPrefix(cfg.RedisPrefix))
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}
	log.Info().Msg("redis ping ok")

	ing := app.NewIngestionService(resortpass.New(cfg.FeedRPS), cache, cfg.FeedURLs, cfg.Workers, cfg.CacheTTL)
	snap, err := observability.Instrument(ing).Refresh(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ingestion failed")
		os.Exit(1)
	}
	log.Info().
		Str("run", snap.RunID).
		Int("hotels", len(snap.Hotels)).
		Dur("ttl", cfg.CacheTTL).
		Msg("ingestion completed")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "daypass/internal/adapters/http_server"
	"daypass/internal/adapters/observability"
	redisad "daypass/internal/adapters/redis"
	"daypass/internal/adapters/resortpass"
	"daypass/internal/app"
	"daypass/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, redisad.WithPrefix(cfg.RedisPrefix))
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
	}
	log.Info().Msg("redis connection ok")

	feed := resortpass.New(cfg.FeedRPS)
	ing := app.NewIngestionService(feed, cache, cfg.FeedURLs, cfg.Workers, cfg.CacheTTL)
	q := app.NewQueryService(cache, observability.Instrument(ing))

	// warm the snapshot; a failure here is retried on the first request
	if _, err := q.Snapshot(ctx); err != nil {
		log.Warn().Err(err).Msg("initial snapshot load failed")
	}

	// http
	srv := server.New(server.Options{CORSOrigins: cfg.CORSOrigins, Timeout: cfg.RequestTimeout})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Strs("feeds", cfg.FeedURLs).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}

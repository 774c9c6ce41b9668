package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"daypass/internal/adapters/observability"
)

const metricName = "redis"

// Cache stores JSON values in redis under an optional key prefix.
// It implements domain.Cache.
type Cache struct {
	c      *redis.Client
	prefix string
}

type Option func(*Cache)

// WithPrefix namespaces every key, so several deployments can share one redis.
func WithPrefix(p string) Option { return func(c *Cache) { c.prefix = p } }

func New(addr, pass string, db int, opts ...Option) *Cache {
	return NewFromClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), opts...)
}

func NewFromClient(c *redis.Client, opts ...Option) *Cache {
	cache := &Cache{c: c}
	for _, o := range opts {
		o(cache)
	}
	return cache
}

func (r *Cache) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Cache) Close() error { return r.c.Close() }

func (r *Cache) key(k string) string { return r.prefix + k }

// Get decodes the value at key into dst. A value that no longer decodes is
// evicted and reported, so the next read goes back to the source.
func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		observability.ObserveCache(metricName, "miss")
		return false, nil
	case err != nil:
		observability.ObserveCache(metricName, "error")
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(v, dst); err != nil {
		observability.ObserveCache(metricName, "error")
		if derr := r.c.Del(ctx, r.key(key)).Err(); derr != nil {
			log.Warn().Err(derr).Str("key", key).Msg("evicting undecodable cache entry failed")
		}
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	observability.ObserveCache(metricName, "hit")
	return true, nil
}

// Set stores v for ttlSec seconds; ttlSec <= 0 keeps it without expiry.
func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.c.Set(ctx, r.key(key), b, time.Duration(max(ttlSec, 0))*time.Second).Err(); err != nil {
		observability.ObserveCache(metricName, "error")
		return fmt.Errorf("set %s: %w", key, err)
	}
	observability.ObserveCache(metricName, "set")
	return nil
}

func (r *Cache) Del(ctx context.Context, key string) error {
	if err := r.c.Del(ctx, r.key(key)).Err(); err != nil {
		observability.ObserveCache(metricName, "error")
		return fmt.Errorf("del %s: %w", key, err)
	}
	observability.ObserveCache(metricName, "del")
	return nil
}

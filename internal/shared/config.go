package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultFeedURL is the public Miami search feed.
const DefaultFeedURL = "https://resortpass-takehome.s3.us-west-2.amazonaws.com/miami_srp_3_15.json"

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	RedisPrefix    string
	FeedURLs       []string
	FeedRPS        int
	Workers        int
	CacheTTL       time.Duration
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// Load reads the environment, after an optional .env file in the working
// directory. Real environment variables win over .env entries.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	dur := func(k string, def time.Duration) time.Duration {
		if v := os.Getenv(k); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				return d
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not a duration, using default")
		}
		return def
	}

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPrefix:    env("REDIS_PREFIX", "daypass:"),
		FeedURLs:       list(env("FEED_URLS", DefaultFeedURL)),
		FeedRPS:        atoi("FEED_RPS", 5),
		Workers:        atoi("INGEST_WORKERS", 4),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 3600)) * time.Second,
		CORSOrigins:    list(env("CORS_ORIGINS", "*")),
		RequestTimeout: dur("REQUEST_TIMEOUT", 15*time.Second),
	}
	if len(c.FeedURLs) == 0 {
		log.Warn().Msg("FEED_URLS is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// list splits a comma separated value, dropping blanks.
func list(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrNoSnapshot    = errors.New("no hotel snapshot available")
	ErrUnknownIntent = errors.New("unknown search intent")
)

type HotelFeed interface {
	// GetStages returns the raw decoded feed payload; keys are not normalized.
	GetStages(ctx context.Context, url string) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

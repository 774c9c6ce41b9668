package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"daypass/internal/domain"
)

// SnapshotKey is the cache key of the current hotel snapshot.
const SnapshotKey = "hotels:snapshot"

type IngestionService struct {
	feed    domain.HotelFeed
	cache   domain.Cache
	urls    []string
	workers int
	ttl     time.Duration
	now     func() time.Time
}

func NewIngestionService(f domain.HotelFeed, c domain.Cache, urls []string, workers int, ttl time.Duration) *IngestionService {
	if workers <= 0 {
		workers = 1
	}
	return &IngestionService{feed: f, cache: c, urls: urls, workers: workers, ttl: ttl, now: time.Now}
}

// Refresh fetches every feed, flattens the stages into one snapshot and
// stores it under SnapshotKey. Feeds answering 404 are skipped; any other
// fetch or decode error aborts the run.
func (s *IngestionService) Refresh(ctx context.Context) (domain.HotelSnapshot, error) {
	start := s.now()
	results := make([][]domain.SearchStage, len(s.urls))

	sem := semaphore.NewWeighted(int64(s.workers))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range s.urls {
		i, u := i, u
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)

			raw, err := s.feed.GetStages(gctx, u)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					log.Warn().Str("url", u).Msg("feed not found, skipping")
					return nil
				}
				return fmt.Errorf("fetch %s: %w", u, err)
			}
			stages, err := mapStages(raw)
			if err != nil {
				return fmt.Errorf("map %s: %w", u, err)
			}
			results[i] = stages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.HotelSnapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.HotelSnapshot{}, err
	}

	snap := domain.HotelSnapshot{RunID: uuid.NewString(), FetchedAt: start.UTC(), Hotels: []domain.Hotel{}}
	for _, stages := range results {
		if snap.Currency == nil {
			snap.Currency = firstCurrency(stages)
		}
		snap.Hotels = append(snap.Hotels, GetAllHotels(stages)...)
	}

	if len(snap.Hotels) == 0 {
		// don't keep serving a stale snapshot when every feed came back empty
		if s.cache != nil {
			if err := s.cache.Del(ctx, SnapshotKey); err != nil {
				log.Warn().Err(err).Str("key", SnapshotKey).Msg("stale snapshot eviction failed")
			}
		}
		return domain.HotelSnapshot{}, domain.ErrNoSnapshot
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, SnapshotKey, snap, int(s.ttl.Seconds())); err != nil {
			log.Warn().Err(err).Str("run", snap.RunID).Msg("snapshot cache write failed")
		}
	}

	log.Info().
		Str("run", snap.RunID).
		Int("feeds", len(s.urls)).
		Int("hotels", len(snap.Hotels)).
		Dur("took", s.now().Sub(start)).
		Msg("snapshot refreshed")
	return snap, nil
}

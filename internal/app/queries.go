package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"daypass/internal/domain"
	"daypass/internal/search"
)

// Refresher rebuilds the hotel snapshot; *IngestionService implements it.
type Refresher interface {
	Refresh(ctx context.Context) (domain.HotelSnapshot, error)
}

// DefaultRefreshTimeout bounds a shared snapshot refresh.
const DefaultRefreshTimeout = 2 * time.Minute

type QueryService struct {
	cache          domain.Cache
	refresh        Refresher
	refreshTimeout time.Duration
	sf             singleflight.Group
	now            func() time.Time
}

func NewQueryService(c domain.Cache, r Refresher) *QueryService {
	return &QueryService{cache: c, refresh: r, refreshTimeout: DefaultRefreshTimeout, now: time.Now}
}

type SearchResult struct {
	RunID          string                 `json:"runId"`
	Tab            domain.Tab             `json:"tab"`
	Title          string                 `json:"title"`
	State          domain.SearchState     `json:"state"`
	AppliedFilters []domain.AppliedFilter `json:"appliedFilters"`
	Count          int                    `json:"count"`
	Currency       *domain.Currency       `json:"currency,omitempty"`
	Hotels         []HotelCard            `json:"hotels"`
}

type ApplyResult struct {
	State          domain.SearchState     `json:"state"`
	AppliedFilters []domain.AppliedFilter `json:"appliedFilters"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FilterOptions is everything a client needs to render the filter panel.
type FilterOptions struct {
	Tabs         []Option           `json:"tabs"`
	HotelClasses []Option           `json:"hotelClasses"`
	Amenities    []Option           `json:"amenities"`
	Vibes        []string           `json:"vibes"`
	Defaults     domain.SearchState `json:"defaults"`
}

// Snapshot returns the cached snapshot, refreshing it on a miss. Concurrent
// misses share one refresh, which runs detached from every caller's context
// and is bounded by refreshTimeout; a caller that gives up only stops waiting.
// Any failure is reported as ErrNoSnapshot.
func (s *QueryService) Snapshot(ctx context.Context) (domain.HotelSnapshot, error) {
	var snap domain.HotelSnapshot
	ok, err := s.cache.Get(ctx, SnapshotKey, &snap)
	if err != nil {
		log.Warn().Err(err).Msg("snapshot cache read failed")
	}
	if ok && err == nil {
		return snap, nil
	}

	ch := s.sf.DoChan(SnapshotKey, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout)
		defer cancel()
		return s.refresh.Refresh(rctx)
	})
	select {
	case <-ctx.Done():
		return domain.HotelSnapshot{}, fmt.Errorf("%w: %w", domain.ErrNoSnapshot, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			if errors.Is(res.Err, domain.ErrNoSnapshot) {
				return domain.HotelSnapshot{}, res.Err
			}
			return domain.HotelSnapshot{}, fmt.Errorf("%w: %w", domain.ErrNoSnapshot, res.Err)
		}
		if res.Shared {
			log.Debug().Msg("snapshot refresh shared")
		}
		return res.Val.(domain.HotelSnapshot), nil
	}
}

func (s *QueryService) Search(ctx context.Context, state domain.SearchState, tab domain.Tab) (SearchResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	ti := normalizeTab(tab)
	hotels := search.ApplyFilters(snap.Hotels, state, ti.tab)

	locName := state.Location
	if loc, ok := search.LocationByID(state.Location); ok {
		locName = loc.Name
	}
	symbol := defaultCurrencySymbol
	if snap.Currency != nil && snap.Currency.Symbol != "" {
		symbol = snap.Currency.Symbol
	}

	out := SearchResult{
		RunID:          snap.RunID,
		Tab:            ti.tab,
		Title:          SearchTitle(ti.tab, locName),
		State:          state,
		AppliedFilters: search.AppliedFilters(state),
		Count:          len(hotels),
		Currency:       snap.Currency,
		Hotels:         make([]HotelCard, 0, len(hotels)),
	}
	for _, h := range hotels {
		out.Hotels = append(out.Hotels, NewHotelCard(h, symbol))
	}
	return out, nil
}

func (s *QueryService) Locations(query string) []domain.SearchLocation {
	return search.FilterLocations(query)
}

func (s *QueryService) Apply(state domain.SearchState, in domain.Intent) ApplyResult {
	next := search.Reduce(state, in)
	return ApplyResult{State: next, AppliedFilters: search.AppliedFilters(next)}
}

// DefaultState is the state of a fresh session, dated today (UTC midnight).
func (s *QueryService) DefaultState() domain.SearchState {
	return search.DefaultSearchState(s.now().UTC().Truncate(24 * time.Hour))
}

func (s *QueryService) FilterOptions() FilterOptions {
	out := FilterOptions{
		Vibes:    append([]string{}, search.Vibes...),
		Defaults: s.DefaultState(),
	}
	for _, t := range tabs {
		out.Tabs = append(out.Tabs, Option{ID: string(t.tab), Label: t.label})
	}
	for _, c := range []domain.HotelClass{domain.HotelClassAny, domain.HotelClassFiveStar, domain.HotelClassFourStarPlus} {
		out.HotelClasses = append(out.HotelClasses, Option{ID: string(c), Label: HotelClassLabel(c)})
	}
	for _, a := range search.AmenityOptions {
		out.Amenities = append(out.Amenities, Option{ID: a.ID, Label: a.Label})
	}
	return out
}

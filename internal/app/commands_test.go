package app_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"daypass/internal/app"
	"daypass/internal/domain"
)

func TestRefresh_BuildsSnapshotFromAllFeeds(t *testing.T) {
	feed := &fakeFeed{
		payloads: map[string][]map[string]any{
			"a": {stage(1, rawHotel(1, "One"), rawHotel(2, "Two")), stage(2, rawHotel(3, "Three"))},
			"b": {stage(1, rawHotel(4, "Four"))},
		},
		errs: map[string]error{"gone": domain.ErrNotFound},
	}
	cache := &fakeCache{}
	ing := app.NewIngestionService(feed, cache, []string{"a", "gone", "b"}, 2, time.Hour)

	snap, err := ing.Refresh(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	var ids []int64
	for _, h := range snap.Hotels {
		ids = append(ids, h.ID)
	}
	if !slices.Equal(ids, []int64{1, 2, 3, 4}) {
		t.Fatalf("hotel order: %v", ids)
	}
	if _, err := uuid.Parse(snap.RunID); err != nil {
		t.Fatalf("run id %q: %v", snap.RunID, err)
	}
	if snap.Currency == nil || snap.Currency.IsoCode != "USD" {
		t.Fatalf("currency: %+v", snap.Currency)
	}
	if feed.calls.Load() != 3 {
		t.Fatalf("feed calls: %d", feed.calls.Load())
	}

	// snake_case keys were normalized before decoding
	h := snap.Hotels[0]
	if h.CityName != "Miami" || h.HotelStar != 5 || h.AvgRating != 4.7 || h.Vibes == nil || h.Vibes.Primary != "Luxe" {
		t.Fatalf("decoded hotel: %+v", h)
	}
	if len(h.Products) != 1 || h.Products[0].ProductTypeName != "Day Pass" || h.Amenities[0].IconText != "spa" {
		t.Fatalf("nested keys: %+v %+v", h.Products, h.Amenities)
	}

	var cached domain.HotelSnapshot
	if ok, _ := cache.Get(context.Background(), app.SnapshotKey, &cached); !ok || cached.RunID != snap.RunID {
		t.Fatalf("snapshot not cached: ok=%v run=%q", ok, cached.RunID)
	}
	if cache.ttls[app.SnapshotKey] != 3600 {
		t.Fatalf("ttl: %d", cache.ttls[app.SnapshotKey])
	}
}

func TestRefresh_FeedErrorAborts(t *testing.T) {
	boom := errors.New("remote 500")
	feed := &fakeFeed{
		payloads: map[string][]map[string]any{"a": {stage(1, rawHotel(1, "One"))}},
		errs:     map[string]error{"b": boom},
	}
	cache := &fakeCache{}
	ing := app.NewIngestionService(feed, cache, []string{"a", "b"}, 4, time.Hour)

	if _, err := ing.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected feed error, got %v", err)
	}
	if len(cache.store) != 0 {
		t.Fatalf("nothing should be cached on failure")
	}
}

func TestRefresh_EmptyEvictsStaleSnapshot(t *testing.T) {
	feed := &fakeFeed{
		payloads: map[string][]map[string]any{"a": {stage(1)}},
	}
	cache := &fakeCache{}
	_ = cache.Set(context.Background(), app.SnapshotKey, domain.HotelSnapshot{RunID: "old"}, 60)
	ing := app.NewIngestionService(feed, cache, []string{"a"}, 1, time.Hour)

	if _, err := ing.Refresh(context.Background()); !errors.Is(err, domain.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
	if !slices.Contains(cache.dels, app.SnapshotKey) {
		t.Fatalf("stale snapshot not evicted")
	}
}

func TestRefresh_EvictionFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	feed := &fakeFeed{payloads: map[string][]map[string]any{"a": {stage(1)}}}
	cache := &fakeCache{delErr: errors.New("redis down")}
	_ = cache.Set(context.Background(), app.SnapshotKey, domain.HotelSnapshot{RunID: "old"}, 60)
	ing := app.NewIngestionService(feed, cache, []string{"a"}, 1, time.Hour)

	if _, err := ing.Refresh(context.Background()); !errors.Is(err, domain.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "stale snapshot eviction failed") || !strings.Contains(out, "redis down") {
		t.Fatalf("missing eviction warning in log: %s", out)
	}
}

func TestRefresh_BadPayload(t *testing.T) {
	feed := &fakeFeed{
		payloads: map[string][]map[string]any{"a": {{"hotels": "not-a-list"}}},
	}
	ing := app.NewIngestionService(feed, &fakeCache{}, []string{"a"}, 1, time.Hour)
	if _, err := ing.Refresh(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestGetAllHotels(t *testing.T) {
	stages := []domain.SearchStage{
		{Stage: 1, Hotels: []domain.Hotel{{ID: 1}, {ID: 2}}},
		{Stage: 2},
		{Stage: 3, Hotels: []domain.Hotel{{ID: 3}}},
	}
	got := app.GetAllHotels(stages)
	if len(got) != 3 || got[0].ID != 1 || got[2].ID != 3 {
		t.Fatalf("flatten: %+v", got)
	}
	if got := app.GetAllHotels(nil); got == nil || len(got) != 0 {
		t.Fatalf("empty input: %v", got)
	}
}

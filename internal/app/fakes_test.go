package app_test

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"daypass/internal/domain"
)

// ---- fakes ----

type fakeCache struct {
	mu     sync.Mutex
	store  map[string][]byte
	ttls   map[string]int
	dels   []string
	err    error
	delErr error
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
		c.ttls = map[string]int{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.ttls[key] = ttlSec
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dels = append(c.dels, key)
	if c.delErr != nil {
		return c.delErr
	}
	delete(c.store, key)
	return nil
}

type fakeFeed struct {
	payloads map[string][]map[string]any
	errs     map[string]error
	calls    atomic.Int32
}

func (f *fakeFeed) GetStages(ctx context.Context, url string) ([]map[string]any, error) {
	f.calls.Add(1)
	if err := f.errs[url]; err != nil {
		return nil, err
	}
	return f.payloads[url], nil
}

type fakeRefresher struct {
	snap    domain.HotelSnapshot
	err     error
	calls   atomic.Int32
	release chan struct{}
}

func (r *fakeRefresher) Refresh(ctx context.Context) (domain.HotelSnapshot, error) {
	r.calls.Add(1)
	if r.release != nil {
		select {
		case <-r.release:
		case <-ctx.Done():
			return domain.HotelSnapshot{}, ctx.Err()
		}
	}
	return r.snap, r.err
}

// stage builds a snake_case feed stage the way the upstream sometimes sends it.
func stage(n int, hotels ...map[string]any) map[string]any {
	hs := make([]any, len(hotels))
	for i, h := range hotels {
		hs[i] = h
	}
	return map[string]any{
		"stage":         float64(n),
		"hits_per_page": float64(len(hotels)),
		"query_id":      "q",
		"currency":      map[string]any{"iso_code": "USD", "name": "US Dollar", "symbol": "$"},
		"hotels":        hs,
	}
}

func rawHotel(id int, name string) map[string]any {
	return map[string]any{
		"id":           float64(id),
		"name":         name,
		"city_name":    "Miami",
		"state":        "FL",
		"hotel_star":   float64(5),
		"avg_rating":   4.7,
		"availability": true,
		"latitude":     25.79,
		"longitude":    -80.13,
		"vibes":        map[string]any{"primary": "Luxe", "secondary": "Trendy"},
		"products": []any{
			map[string]any{"id": float64(10), "name": "Pool Day Pass", "product_type_name": "Day Pass", "price": 40.0, "quantity": float64(3)},
		},
		"amenities": []any{
			map[string]any{"name": "spa", "icon_text": "spa"},
		},
		"image": []any{
			map[string]any{"picture": map[string]any{"url": "https://img/1.jpg"}},
		},
	}
}

func testHotel(id int64, productTypes ...string) domain.Hotel {
	h := domain.Hotel{
		ID:           id,
		Name:         "Hotel",
		CityName:     "Miami",
		State:        "FL",
		HotelStar:    5,
		AvgRating:    4.8,
		Rating:       4.8,
		Availability: true,
		Latitude:     25.7617,
		Longitude:    -80.1918,
		Vibes:        &domain.Vibes{Primary: "Luxe"},
	}
	for i, t := range productTypes {
		h.Products = append(h.Products, domain.Product{ID: int64(i + 1), Name: t, ProductTypeName: t, Price: 50, Quantity: 10})
	}
	return h
}

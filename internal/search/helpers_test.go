package search_test

import (
	"daypass/internal/domain"
)

// Miami, Florida: the first catalog entry.
const (
	miamiLat = 25.7617
	miamiLon = -80.1918
)

func hotel(id int64, opts ...func(*domain.Hotel)) domain.Hotel {
	h := domain.Hotel{
		ID:           id,
		Active:       true,
		Name:         "Test Hotel",
		CityName:     "Miami",
		State:        "FL",
		AvgRating:    4.5,
		Reviews:      100,
		HotelStar:    4,
		Availability: true,
		Rating:       4.5,
		Latitude:     miamiLat,
		Longitude:    miamiLon,
		Amenities:    []domain.Amenity{},
		Vibes:        &domain.Vibes{Primary: "Luxe", Secondary: "Trendy"},
		Products:     []domain.Product{},
	}
	for _, o := range opts {
		o(&h)
	}
	return h
}

func products(types ...string) func(*domain.Hotel) {
	return func(h *domain.Hotel) {
		h.Products = nil
		for i, t := range types {
			h.Products = append(h.Products, domain.Product{
				ID: int64(i + 1), Name: t, Quantity: 1, Price: 100, ProductTypeName: t,
			})
		}
	}
}

func amenities(names ...string) func(*domain.Hotel) {
	return func(h *domain.Hotel) {
		h.Amenities = nil
		for _, n := range names {
			h.Amenities = append(h.Amenities, domain.Amenity{Name: n, IconText: n, Description: n})
		}
	}
}

func at(lat, lon float64) func(*domain.Hotel) {
	return func(h *domain.Hotel) { h.Latitude, h.Longitude = lat, lon }
}

func ids(hs []domain.Hotel) []int64 {
	out := make([]int64, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func pf(f float64) *float64 { return &f }

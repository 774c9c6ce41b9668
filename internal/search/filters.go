package search

import (
	"slices"

	"daypass/internal/domain"
)

// TopRatedMinRating is the inclusive rating floor of the top-rated filter.
const TopRatedMinRating = 4.5

// AllInclusiveAmenity requires every mapped hotel amenity rather than any.
const AllInclusiveAmenity = "all-inclusive"

// AmenityOption is a selectable amenity filter.
type AmenityOption struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Matches []string `json:"-"` // hotel amenity names
}

// AmenityOptions lists the amenity filters in display order.
var AmenityOptions = []AmenityOption{
	{ID: AllInclusiveAmenity, Label: "All-Inclusive", Matches: []string{"food", "drink"}},
	{ID: "beach-access", Label: "Beach Access", Matches: []string{"beach"}},
	{ID: "gym", Label: "Gym", Matches: []string{"fitness-center"}},
	{ID: "spa", Label: "Spa", Matches: []string{"spa"}},
	{ID: "rooftop-pool", Label: "Rooftop Pool", Matches: []string{"rooftop-pool"}},
	{ID: "hot-tub", Label: "Hot Tub", Matches: []string{"hottub"}},
	{ID: "lazy-river", Label: "Lazy River", Matches: []string{"lazyriver"}},
}

// Vibes lists the selectable vibe values.
var Vibes = []string{"Family-Friendly", "Serene", "Luxe", "Trendy"}

// AmenityOptionByID looks up an amenity filter.
func AmenityOptionByID(id string) (AmenityOption, bool) {
	for _, a := range AmenityOptions {
		if a.ID == id {
			return a, true
		}
	}
	return AmenityOption{}, false
}

// keep returns the hotels satisfying pred, in input order.
func keep(hotels []domain.Hotel, pred func(domain.Hotel) bool) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if pred(h) {
			out = append(out, h)
		}
	}
	return out
}

func FilterByAvailability(hotels []domain.Hotel, onlyAvailable bool) []domain.Hotel {
	if !onlyAvailable {
		return hotels
	}
	return keep(hotels, func(h domain.Hotel) bool { return h.Availability })
}

// FilterByHotelClass: "5-star" is exactly 5 stars, "4-star+" is 4 or more.
// "any" and unknown classes pass hotels through.
func FilterByHotelClass(hotels []domain.Hotel, class domain.HotelClass) []domain.Hotel {
	switch class {
	case domain.HotelClassFiveStar:
		return keep(hotels, func(h domain.Hotel) bool { return h.HotelStar == 5 })
	case domain.HotelClassFourStarPlus:
		return keep(hotels, func(h domain.Hotel) bool { return h.HotelStar >= 4 })
	default:
		return hotels
	}
}

// FilterByAmenities keeps hotels satisfying every selected amenity id. An id
// with no known mapping matches nothing.
func FilterByAmenities(hotels []domain.Hotel, amenityIDs []string) []domain.Hotel {
	if len(amenityIDs) == 0 {
		return hotels
	}
	return keep(hotels, func(h domain.Hotel) bool {
		names := make([]string, len(h.Amenities))
		for i, a := range h.Amenities {
			names[i] = a.Name
		}
		for _, id := range amenityIDs {
			if !hasAmenity(names, id) {
				return false
			}
		}
		return true
	})
}

func hasAmenity(names []string, id string) bool {
	opt, ok := AmenityOptionByID(id)
	if !ok {
		return false
	}
	has := func(n string) bool { return slices.Contains(names, n) }
	if id == AllInclusiveAmenity {
		for _, m := range opt.Matches {
			if !has(m) {
				return false
			}
		}
		return true
	}
	return slices.ContainsFunc(opt.Matches, has)
}

// FilterByVibes keeps hotels whose primary or secondary vibe equals any
// selected vibe. Empty vibe fields never match.
func FilterByVibes(hotels []domain.Hotel, vibes []string) []domain.Hotel {
	if len(vibes) == 0 {
		return hotels
	}
	return keep(hotels, func(h domain.Hotel) bool {
		if h.Vibes == nil {
			return false
		}
		for _, v := range vibes {
			if v == "" {
				continue
			}
			if v == h.Vibes.Primary || v == h.Vibes.Secondary {
				return true
			}
		}
		return false
	})
}

func FilterByTopRated(hotels []domain.Hotel, topRated bool) []domain.Hotel {
	if !topRated {
		return hotels
	}
	return keep(hotels, func(h domain.Hotel) bool { return h.Rating >= TopRatedMinRating })
}

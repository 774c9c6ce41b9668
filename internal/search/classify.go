package search

import (
	"slices"

	"daypass/internal/domain"
)

// Product type names per category. Matching is exact and case-sensitive.
var (
	PoolProductTypes    = []string{"Day Pass", "Cabana", "Daybed", "Beach Pass"}
	SpaProductTypes     = []string{"Spa Pass", "Massage", "Facial", "Spa Treatment", "Couples Spa"}
	DayRoomProductTypes = []string{"Day Room"}
)

// sellsAny reports whether any product's type is in types.
func sellsAny(h domain.Hotel, types []string) bool {
	for _, p := range h.Products {
		if slices.Contains(types, p.ProductTypeName) {
			return true
		}
	}
	return false
}

func IsPool(h domain.Hotel) bool    { return sellsAny(h, PoolProductTypes) }
func IsSpa(h domain.Hotel) bool     { return sellsAny(h, SpaProductTypes) }
func IsDayRoom(h domain.Hotel) bool { return sellsAny(h, DayRoomProductTypes) }

func FilterHotelsByPool(hotels []domain.Hotel) []domain.Hotel    { return keep(hotels, IsPool) }
func FilterHotelsBySpa(hotels []domain.Hotel) []domain.Hotel     { return keep(hotels, IsSpa) }
func FilterHotelsByDayRoom(hotels []domain.Hotel) []domain.Hotel { return keep(hotels, IsDayRoom) }

// FilterByTab narrows hotels to a category tab. "all" and unknown tabs pass
// hotels through.
func FilterByTab(hotels []domain.Hotel, tab domain.Tab) []domain.Hotel {
	switch tab {
	case domain.TabPool:
		return FilterHotelsByPool(hotels)
	case domain.TabSpa:
		return FilterHotelsBySpa(hotels)
	case domain.TabDayRoom:
		return FilterHotelsByDayRoom(hotels)
	default:
		return hotels
	}
}

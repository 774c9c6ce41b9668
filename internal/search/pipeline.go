package search

import "daypass/internal/domain"

// Stage is one step of the filter pipeline.
type Stage func([]domain.Hotel) []domain.Hotel

// Stages returns the seven filter stages for a state and tab, most selective
// first: tab, location radius, availability, class, amenities, vibes, top rated.
// Each stage is an independent predicate, so any order gives the same result.
func Stages(state domain.SearchState, tab domain.Tab) []Stage {
	return []Stage{
		func(h []domain.Hotel) []domain.Hotel { return FilterByTab(h, tab) },
		func(h []domain.Hotel) []domain.Hotel { return FilterByLocation(h, state.Location, DefaultRadiusMiles) },
		func(h []domain.Hotel) []domain.Hotel { return FilterByAvailability(h, state.OnlyAvailable) },
		func(h []domain.Hotel) []domain.Hotel { return FilterByHotelClass(h, state.SelectedHotelClass) },
		func(h []domain.Hotel) []domain.Hotel { return FilterByAmenities(h, state.SelectedAmenities) },
		func(h []domain.Hotel) []domain.Hotel { return FilterByVibes(h, state.SelectedVibes) },
		func(h []domain.Hotel) []domain.Hotel { return FilterByTopRated(h, state.TopRated) },
	}
}

// ApplyFilters runs every stage over hotels. It neither retains nor mutates
// its arguments.
func ApplyFilters(hotels []domain.Hotel, state domain.SearchState, tab domain.Tab) []domain.Hotel {
	filtered := hotels
	for _, stage := range Stages(state, tab) {
		filtered = stage(filtered)
	}
	return filtered
}

package search

import (
	"fmt"
	"slices"
	"time"

	"daypass/internal/domain"
)

const (
	availableLabel = "Available"
	topRatedLabel  = "Top Rated"
)

// DefaultSearchState is the state a new search session starts with.
func DefaultSearchState(now time.Time) domain.SearchState {
	return domain.SearchState{
		Location:           defaultCatalog.First().ID,
		Date:               &now,
		OnlyAvailable:      true,
		SelectedHotelClass: domain.HotelClassAny,
		SelectedAmenities:  []string{},
		SelectedVibes:      []string{},
	}
}

var intentKinds = []domain.IntentKind{
	domain.IntentSetLocation,
	domain.IntentSetDate,
	domain.IntentSetOnlyAvailable,
	domain.IntentSetHotelClass,
	domain.IntentToggleAmenity,
	domain.IntentToggleVibe,
	domain.IntentSetTopRated,
	domain.IntentClearAll,
	domain.IntentRemoveFilter,
}

func ParseIntentKind(s string) (domain.IntentKind, error) {
	k := domain.IntentKind(s)
	if !slices.Contains(intentKinds, k) {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownIntent, s)
	}
	return k, nil
}

// Reduce applies one intent and returns the next state. The input state is
// not modified; unknown intents return it unchanged.
func Reduce(state domain.SearchState, in domain.Intent) domain.SearchState {
	next := clone(state)
	switch in.Kind {
	case domain.IntentSetLocation:
		next.Location = in.Location
	case domain.IntentSetDate:
		next.Date = in.Date
	case domain.IntentSetOnlyAvailable:
		next.OnlyAvailable = in.Value
	case domain.IntentSetHotelClass:
		next.SelectedHotelClass = in.Class
	case domain.IntentToggleAmenity:
		next.SelectedAmenities = toggle(next.SelectedAmenities, in.ID)
	case domain.IntentToggleVibe:
		next.SelectedVibes = toggle(next.SelectedVibes, in.ID)
	case domain.IntentSetTopRated:
		next.TopRated = in.Value
	case domain.IntentClearAll:
		next.OnlyAvailable = false
		next.SelectedHotelClass = domain.HotelClassAny
		next.SelectedAmenities = []string{}
		next.SelectedVibes = []string{}
		next.TopRated = false
	case domain.IntentRemoveFilter:
		if in.Filter != nil {
			next = removeFilter(next, *in.Filter)
		}
	}
	return next
}

func removeFilter(s domain.SearchState, f domain.AppliedFilter) domain.SearchState {
	switch f.Kind {
	case domain.FilterAvailable:
		s.OnlyAvailable = false
	case domain.FilterTopRated:
		s.TopRated = false
	case domain.FilterVibe:
		s.SelectedVibes = without(s.SelectedVibes, f.ID)
	case domain.FilterAmenity:
		s.SelectedAmenities = without(s.SelectedAmenities, f.ID)
	}
	return s
}

// AppliedFilters lists the active filters for display: Available, Top Rated,
// selected vibes, then selected amenities with a known label.
func AppliedFilters(s domain.SearchState) []domain.AppliedFilter {
	out := []domain.AppliedFilter{}
	if s.OnlyAvailable {
		out = append(out, domain.AppliedFilter{Kind: domain.FilterAvailable, ID: string(domain.FilterAvailable), Label: availableLabel})
	}
	if s.TopRated {
		out = append(out, domain.AppliedFilter{Kind: domain.FilterTopRated, ID: string(domain.FilterTopRated), Label: topRatedLabel})
	}
	for _, v := range s.SelectedVibes {
		out = append(out, domain.AppliedFilter{Kind: domain.FilterVibe, ID: v, Label: v})
	}
	for _, id := range s.SelectedAmenities {
		if opt, ok := AmenityOptionByID(id); ok {
			out = append(out, domain.AppliedFilter{Kind: domain.FilterAmenity, ID: id, Label: opt.Label})
		}
	}
	return out
}

func clone(s domain.SearchState) domain.SearchState {
	s.SelectedAmenities = append([]string{}, s.SelectedAmenities...)
	s.SelectedVibes = append([]string{}, s.SelectedVibes...)
	return s
}

// toggle removes v when present, appends it otherwise. Duplicates already in
// xs are collapsed.
func toggle(xs []string, v string) []string {
	if v == "" {
		return xs
	}
	if slices.Contains(xs, v) {
		return without(xs, v)
	}
	return append(dedupe(xs), v)
}

func without(xs []string, v string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func dedupe(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if !slices.Contains(out, x) {
			out = append(out, x)
		}
	}
	return out
}

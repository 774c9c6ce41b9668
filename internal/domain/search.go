package domain

import "time"

type LocationType string

const (
	LocationTypeLocation LocationType = "location"
	LocationTypeHotel    LocationType = "hotel"
)

// SearchLocation is an entry of the static location catalog. Latitude and
// Longitude are nil when the entry cannot anchor a radius filter.
type SearchLocation struct {
	ID        string       `json:"id" yaml:"id"`
	Type      LocationType `json:"type" yaml:"type"`
	Name      string       `json:"name" yaml:"name"`
	State     string       `json:"state,omitempty" yaml:"state"`
	Latitude  *float64     `json:"latitude,omitempty" yaml:"latitude"`
	Longitude *float64     `json:"longitude,omitempty" yaml:"longitude"`
}

type Tab string

const (
	TabAll     Tab = "all"
	TabPool    Tab = "pool"
	TabSpa     Tab = "spa"
	TabDayRoom Tab = "day-room"
)

type HotelClass string

const (
	HotelClassAny          HotelClass = "any"
	HotelClassFiveStar     HotelClass = "5-star"
	HotelClassFourStarPlus HotelClass = "4-star+"
)

// SearchState is the user's filter/query criteria. Date is carried for the
// UI and not consumed by filtering.
type SearchState struct {
	Location           string     `json:"location"`
	Date               *time.Time `json:"date,omitempty"`
	OnlyAvailable      bool       `json:"onlyAvailable"`
	SelectedHotelClass HotelClass `json:"selectedHotelClass"`
	SelectedAmenities  []string   `json:"selectedAmenities"`
	SelectedVibes      []string   `json:"selectedVibes"`
	TopRated           bool       `json:"topRated"`
}

type FilterKind string

const (
	FilterAvailable FilterKind = "available"
	FilterTopRated  FilterKind = "top-rated"
	FilterVibe      FilterKind = "vibe"
	FilterAmenity   FilterKind = "amenity"
)

// AppliedFilter is a display chip derived from SearchState. Kind and ID point
// back at the state field it came from; Label is for display only.
type AppliedFilter struct {
	Kind  FilterKind `json:"kind"`
	ID    string     `json:"id"`
	Label string     `json:"label"`
}

type IntentKind string

const (
	IntentSetLocation      IntentKind = "set-location"
	IntentSetDate          IntentKind = "set-date"
	IntentSetOnlyAvailable IntentKind = "set-only-available"
	IntentSetHotelClass    IntentKind = "set-hotel-class"
	IntentToggleAmenity    IntentKind = "toggle-amenity"
	IntentToggleVibe       IntentKind = "toggle-vibe"
	IntentSetTopRated      IntentKind = "set-top-rated"
	IntentClearAll         IntentKind = "clear-all"
	IntentRemoveFilter     IntentKind = "remove-filter"
)

// Intent is one state transition. Only the payload field matching Kind is read.
type Intent struct {
	Kind     IntentKind     `json:"type"`
	Location string         `json:"location,omitempty"`
	Date     *time.Time     `json:"date,omitempty"`
	Value    bool           `json:"value,omitempty"`
	Class    HotelClass     `json:"class,omitempty"`
	ID       string         `json:"id,omitempty"`
	Filter   *AppliedFilter `json:"filter,omitempty"`
}

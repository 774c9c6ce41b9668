package domain

import "time"

type Currency struct {
	IsoCode string `json:"isoCode"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

type ImagePicture struct {
	URL     string `json:"url"`
	Results struct {
		URL string `json:"url"`
	} `json:"results"`
	Details struct {
		URL string `json:"url"`
	} `json:"details"`
}

type HotelImage struct {
	Picture *ImagePicture `json:"picture,omitempty"`
}

// Amenity.Name is the key the amenity filter matches on.
type Amenity struct {
	Description string `json:"description"`
	IconText    string `json:"iconText"`
	Name        string `json:"name"`
}

// Vibes holds free-text descriptors; an empty string means absent.
type Vibes struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type Product struct {
	ID                     int64   `json:"id"`
	Name                   string  `json:"name"`
	Quantity               int     `json:"quantity"` // remaining inventory
	ShowCurrency           bool    `json:"showCurrency"`
	Price                  float64 `json:"price"`
	Availability           string  `json:"availability"`
	ProductTypeSortOrder   int     `json:"productTypeSortOrder"`
	IsStrikethroughPricing bool    `json:"isStrikethroughPricing"`
	DiscountPercentage     float64 `json:"discountPercentage"`
	MaxPrice               float64 `json:"maxPrice"`
	ProductTypeName        string  `json:"productTypeName"`
	ProductTypeID          int64   `json:"productTypeId"`
}

// Hotel is one day-pass listing as delivered by the feed. Products, Amenities
// and Vibes may be missing; nil means "does not qualify" for filters on them.
type Hotel struct {
	ID              int64        `json:"id"`
	Active          bool         `json:"active"`
	Name            string       `json:"name"`
	ShortDesc       string       `json:"shortDesc"`
	URL             string       `json:"url"`
	DesktopImg      string       `json:"desktopImg"`
	CityName        string       `json:"cityName"`
	CityID          int64        `json:"cityId"`
	State           string       `json:"state"`
	Code            string       `json:"code"`
	AvgRating       float64      `json:"avgRating"`
	Reviews         int          `json:"reviews"`
	ReopenDate      *string      `json:"reopenDate"`
	HotelStar       int          `json:"hotelStar"`
	Discounted      bool         `json:"discounted"`
	ClosedForSeason *string      `json:"closedForSeason"`
	CreatedAt       string       `json:"createdAt"`
	Region          []string     `json:"region"`
	FavoritesCount  int          `json:"favoritesCount"`
	HotelsCount     int          `json:"hotelsCount"`
	Availability    bool         `json:"availability"`
	CitySortOrder   int          `json:"citySortOrder"`
	SortOrder       int          `json:"sortOrder"`
	Rating          float64      `json:"rating"`
	ProductTypeID   int64        `json:"productTypeId"`
	Latitude        float64      `json:"latitude"`
	Longitude       float64      `json:"longitude"`
	DistanceText    string       `json:"distanceText"`
	ObjectID        string       `json:"objectId"`
	Image           []HotelImage `json:"image"`
	Amenities       []Amenity    `json:"amenities"`
	Vibes           *Vibes       `json:"vibes"`
	Products        []Product    `json:"products"`
}

// SearchStage is one element of the feed payload.
type SearchStage struct {
	Stage         int       `json:"stage"`
	Total         int       `json:"total"`
	Pages         int       `json:"pages"`
	Page          int       `json:"page"`
	HitsPerPage   int       `json:"hitsPerPage"`
	UserFromUSA   bool      `json:"userFromUsa"`
	QueryID       string    `json:"queryId"`
	IndexName     string    `json:"indexName"`
	HotSpotHotels []string  `json:"hotSpotHotels"`
	Hotels        []Hotel   `json:"hotels"`
	Currency      *Currency `json:"currency"`
}

// HotelSnapshot is the materialized, read-only hotel collection the API serves.
type HotelSnapshot struct {
	RunID     string    `json:"runId"`
	FetchedAt time.Time `json:"fetchedAt"`
	Currency  *Currency `json:"currency,omitempty"`
	Hotels    []Hotel   `json:"hotels"`
}

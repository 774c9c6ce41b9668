package app

import (
	"fmt"
	"math"
	"strconv"

	"daypass/internal/domain"
)

const (
	defaultCurrencySymbol = "$"
	cardAmenities         = 5
	cardProducts          = 3
	lowStockThreshold     = 5
)

type ProductCard struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice,omitempty"`
	Discount      string `json:"discount,omitempty"`
	SoldOut       bool   `json:"soldOut"`
	OnlyLeft      int    `json:"onlyLeft,omitempty"`
}

// HotelCard is the display projection of a hotel in a result list.
type HotelCard struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	URL          string           `json:"url,omitempty"`
	Rating       float64          `json:"rating"`
	Reviews      int              `json:"reviews"`
	Location     string           `json:"location"`
	Vibe         string           `json:"vibe,omitempty"`
	HotelStar    int              `json:"hotelStar"`
	Available    bool             `json:"available"`
	Images       []string         `json:"images"`
	Amenities    []domain.Amenity `json:"amenities"`
	Products     []ProductCard    `json:"products"`
	MoreProducts int              `json:"moreProducts"`
}

func NewHotelCard(h domain.Hotel, symbol string) HotelCard {
	if symbol == "" {
		symbol = defaultCurrencySymbol
	}
	c := HotelCard{
		ID:        h.ID,
		Name:      h.Name,
		URL:       h.URL,
		Rating:    displayRating(h),
		Reviews:   h.Reviews,
		Location:  h.CityName + ", " + h.State,
		HotelStar: h.HotelStar,
		Available: h.Availability,
		Images:    HotelImages(h),
		Amenities: append([]domain.Amenity{}, h.Amenities[:min(len(h.Amenities), cardAmenities)]...),
		Products:  make([]ProductCard, 0, cardProducts),
	}
	if h.Vibes != nil {
		c.Vibe = h.Vibes.Primary
	}
	for _, p := range h.Products[:min(len(h.Products), cardProducts)] {
		c.Products = append(c.Products, newProductCard(p, symbol))
	}
	c.MoreProducts = max(0, len(h.Products)-cardProducts)
	return c
}

func displayRating(h domain.Hotel) float64 {
	if h.AvgRating != 0 {
		return h.AvgRating
	}
	return h.Rating
}

func newProductCard(p domain.Product, symbol string) ProductCard {
	pc := ProductCard{
		ID:      p.ID,
		Name:    p.Name,
		Type:    p.ProductTypeName,
		Price:   FormatPrice(p.Price, symbol),
		SoldOut: p.Quantity == 0,
	}
	if p.DiscountPercentage > 0 {
		pc.Discount = DiscountLabel(p.DiscountPercentage)
	}
	if p.Quantity > 0 && p.Quantity <= lowStockThreshold {
		pc.OnlyLeft = p.Quantity
	}
	if p.IsStrikethroughPricing && p.MaxPrice > 0 {
		pc.OriginalPrice = FormatPrice(p.MaxPrice, symbol)
	}
	return pc
}

// FormatPrice renders a whole-unit price, e.g. "$40".
func FormatPrice(price float64, symbol string) string {
	return fmt.Sprintf("%s%d", symbol, int64(math.Round(price)))
}

// DiscountLabel turns a fraction into "Save 12.5%"; one decimal at most.
func DiscountLabel(fraction float64) string {
	pct := math.Round(fraction*1000) / 10
	return "Save " + strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// HotelImages returns the non-empty picture URLs, or the desktop image when
// the hotel has no image entries at all.
func HotelImages(h domain.Hotel) []string {
	out := []string{}
	if len(h.Image) == 0 {
		if h.DesktopImg != "" {
			out = append(out, h.DesktopImg)
		}
		return out
	}
	for _, img := range h.Image {
		if img.Picture != nil && img.Picture.URL != "" {
			out = append(out, img.Picture.URL)
		}
	}
	return out
}

func HotelClassLabel(c domain.HotelClass) string {
	switch c {
	case domain.HotelClassAny:
		return "Any"
	case domain.HotelClassFiveStar:
		return "5 Star hotels"
	default:
		return "4 Star+ Hotels"
	}
}

type tabInfo struct {
	tab         domain.Tab
	label       string
	titlePrefix string
}

var tabs = []tabInfo{
	{domain.TabAll, "All", "Hotel"},
	{domain.TabPool, "Pool", "Pool"},
	{domain.TabSpa, "Spa", "Spa"},
	{domain.TabDayRoom, "Day Room", "Day room"},
}

// normalizeTab maps unknown tabs to "all", which is how they filter.
func normalizeTab(t domain.Tab) tabInfo {
	for _, ti := range tabs {
		if ti.tab == t {
			return ti
		}
	}
	return tabs[0]
}

// SearchTitle is the results heading, e.g. "Pool day passes in and near Miami, Florida".
func SearchTitle(t domain.Tab, locationName string) string {
	return normalizeTab(t).titlePrefix + " day passes in and near " + locationName
}

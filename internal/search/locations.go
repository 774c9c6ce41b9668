package search

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"daypass/internal/domain"
)

//go:embed locations.yaml
var locationsYAML []byte

// Catalog is an immutable, ordered list of search locations.
type Catalog struct {
	entries []domain.SearchLocation
	byID    map[string]int
}

// NewCatalog copies entries. When ids repeat, the first entry wins on lookup.
func NewCatalog(entries []domain.SearchLocation) *Catalog {
	c := &Catalog{
		entries: append([]domain.SearchLocation(nil), entries...),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range c.entries {
		if _, dup := c.byID[e.ID]; !dup {
			c.byID[e.ID] = i
		}
	}
	return c
}

// ParseCatalog decodes a YAML list of locations.
func ParseCatalog(b []byte) (*Catalog, error) {
	var entries []domain.SearchLocation
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse location catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("parse location catalog: no entries")
	}
	return NewCatalog(entries), nil
}

func mustParseCatalog(b []byte) *Catalog {
	c, err := ParseCatalog(b)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = mustParseCatalog(locationsYAML)

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }

// All returns the entries in catalog order.
func (c *Catalog) All() []domain.SearchLocation {
	return append([]domain.SearchLocation(nil), c.entries...)
}

func (c *Catalog) Len() int { return len(c.entries) }

// First returns the first entry; the zero value for an empty catalog.
func (c *Catalog) First() domain.SearchLocation {
	if len(c.entries) == 0 {
		return domain.SearchLocation{}
	}
	return c.entries[0]
}

func (c *Catalog) Lookup(id string) (domain.SearchLocation, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.SearchLocation{}, false
	}
	return c.entries[i], true
}

// FilterByLocation keeps hotels within radiusMiles (inclusive) of the location
// with the given id. An unknown id, or an entry without coordinates, leaves
// hotels unchanged.
func (c *Catalog) FilterByLocation(hotels []domain.Hotel, locationID string, radiusMiles float64) []domain.Hotel {
	loc, ok := c.Lookup(locationID)
	if !ok || loc.Latitude == nil || loc.Longitude == nil {
		return hotels
	}
	lat, lon := *loc.Latitude, *loc.Longitude
	return keep(hotels, func(h domain.Hotel) bool {
		return Distance(lat, lon, h.Latitude, h.Longitude) <= radiusMiles
	})
}

// Locations returns the built-in catalog entries in order.
func Locations() []domain.SearchLocation { return defaultCatalog.All() }

// LocationByID looks an id up in the built-in catalog.
func LocationByID(id string) (domain.SearchLocation, bool) { return defaultCatalog.Lookup(id) }

// FilterByLocation filters against the built-in catalog.
func FilterByLocation(hotels []domain.Hotel, locationID string, radiusMiles float64) []domain.Hotel {
	return defaultCatalog.FilterByLocation(hotels, locationID, radiusMiles)
}

// FilterLocations ranks the built-in catalog against a free-text query.
func FilterLocations(query string) []domain.SearchLocation {
	return defaultCatalog.FilterLocations(query)
}

package search_test

import (
	"math"
	"slices"
	"testing"

	"daypass/internal/domain"
	"daypass/internal/search"
)

func TestDistance(t *testing.T) {
	if d := search.Distance(miamiLat, miamiLon, miamiLat, miamiLon); d != 0 {
		t.Fatalf("same point: got %v", d)
	}
	// Miami to New York is roughly 1090 miles.
	d := search.Distance(miamiLat, miamiLon, 40.7128, -74.006)
	if d < 1080 || d > 1100 {
		t.Fatalf("miami-nyc: got %.1f miles", d)
	}
	// 0.43 degrees of latitude is just under 30 miles.
	d = search.Distance(miamiLat, miamiLon, miamiLat+0.43, miamiLon)
	if math.Abs(d-29.71) > 0.1 {
		t.Fatalf("0.43 deg north: got %.3f miles", d)
	}
	if a, b := search.Distance(1, 2, 3, 4), search.Distance(3, 4, 1, 2); math.Abs(a-b) > 1e-9 {
		t.Fatalf("not symmetric: %v vs %v", a, b)
	}
}

func TestFilterByLocation(t *testing.T) {
	hs := []domain.Hotel{
		hotel(1),
		hotel(2, at(40.7128, -74.006)),
	}
	if got := ids(search.FilterByLocation(hs, "miami-fl", 50)); !slices.Equal(got, []int64{1}) {
		t.Fatalf("got %v, want [1]", got)
	}
}

func TestFilterByLocation_CustomRadius(t *testing.T) {
	hs := []domain.Hotel{hotel(1, at(miamiLat+0.43, miamiLon))}
	if got := search.FilterByLocation(hs, "miami-fl", 50); len(got) != 1 {
		t.Fatalf("radius 50: got %d hotels, want 1", len(got))
	}
	if got := search.FilterByLocation(hs, "miami-fl", 20); len(got) != 0 {
		t.Fatalf("radius 20: got %d hotels, want 0", len(got))
	}
}

func TestFilterByLocation_BoundaryIsInclusive(t *testing.T) {
	h := hotel(1, at(miamiLat+0.7, miamiLon+0.2))
	d := search.Distance(miamiLat, miamiLon, h.Latitude, h.Longitude)
	if got := search.FilterByLocation([]domain.Hotel{h}, "miami-fl", d); len(got) != 1 {
		t.Fatalf("hotel exactly %.6f miles away should be kept", d)
	}
	if got := search.FilterByLocation([]domain.Hotel{h}, "miami-fl", math.Nextafter(d, 0)); len(got) != 0 {
		t.Fatalf("hotel just beyond the radius should be dropped")
	}
}

func TestFilterByLocation_FailsOpen(t *testing.T) {
	hs := []domain.Hotel{hotel(1), hotel(2, at(40.7128, -74.006))}

	if got := search.FilterByLocation(hs, "nonexistent-id", 50); len(got) != 2 {
		t.Fatalf("unknown id: got %d hotels, want 2", len(got))
	}

	cat := search.NewCatalog([]domain.SearchLocation{
		{ID: "test", Type: domain.LocationTypeLocation, Name: "Test"},
		{ID: "half", Type: domain.LocationTypeLocation, Name: "Half", Latitude: pf(25)},
	})
	if got := cat.FilterByLocation(hs, "test", 50); len(got) != 2 {
		t.Fatalf("no coordinates: got %d hotels, want 2", len(got))
	}
	if got := cat.FilterByLocation(hs, "half", 50); len(got) != 2 {
		t.Fatalf("latitude only: got %d hotels, want 2", len(got))
	}
}

func TestCatalog(t *testing.T) {
	all := search.Locations()
	if len(all) != 28 {
		t.Fatalf("catalog size: got %d", len(all))
	}
	if all[0].ID != "miami-fl" || all[0].Name != "Miami, Florida" || all[0].State != "FL" {
		t.Fatalf("first entry: %+v", all[0])
	}
	loc, ok := search.LocationByID("four-seasons-miami")
	if !ok || loc.Type != domain.LocationTypeHotel || loc.Latitude == nil || *loc.Latitude != 25.7673 {
		t.Fatalf("lookup: %+v ok=%v", loc, ok)
	}
	all[0].Name = "mutated"
	if search.Locations()[0].Name != "Miami, Florida" {
		t.Fatalf("Locations must return a copy")
	}
}

func TestParseCatalog(t *testing.T) {
	cat, err := search.ParseCatalog([]byte(`
- id: a
  type: location
  name: "A, Somewhere"
  state: ZZ
- id: a
  type: hotel
  name: "Duplicate"
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("len: %d", cat.Len())
	}
	if loc, _ := cat.Lookup("a"); loc.Name != "A, Somewhere" || loc.Latitude != nil {
		t.Fatalf("first duplicate should win: %+v", loc)
	}
	if _, err := search.ParseCatalog([]byte(`[]`)); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
	if _, err := search.ParseCatalog([]byte(`{not: [a list`)); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestFilterLocations(t *testing.T) {
	t.Run("blank query returns catalog order", func(t *testing.T) {
		for _, q := range []string{"", "   "} {
			got := search.FilterLocations(q)
			if len(got) != 28 || got[0].ID != "miami-fl" || got[27].ID != "key-west-fl" {
				t.Fatalf("q=%q: unexpected result (%d entries)", q, len(got))
			}
		}
	})

	t.Run("typo still finds miami", func(t *testing.T) {
		got := search.FilterLocations("maimi")
		if !containsID(got, "miami-fl") {
			t.Fatalf("expected miami-fl in %v", locIDs(got))
		}
		if containsID(got, "naples-fl") {
			t.Fatalf("naples should not match maimi: %v", locIDs(got))
		}
	})

	t.Run("exact substring ranks above fuzzy", func(t *testing.T) {
		got := search.FilterLocations("tampa")
		if len(got) == 0 || got[0].ID != "tampa-fl" {
			t.Fatalf("tampa first: %v", locIDs(got))
		}
		got = search.FilterLocations("tamap")
		if !containsID(got, "tampa-fl") {
			t.Fatalf("fuzzy tampa: %v", locIDs(got))
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := search.FilterLocations("KEY WEST")
		if len(got) == 0 || got[0].ID != "key-west-fl" {
			t.Fatalf("got %v", locIDs(got))
		}
	})

	t.Run("state matches", func(t *testing.T) {
		got := search.FilterLocations("OK")
		if !containsID(got, "miamitown-ok") {
			t.Fatalf("state OK: %v", locIDs(got))
		}
	})

	t.Run("nothing below the floor", func(t *testing.T) {
		if got := search.FilterLocations("zzzzzzzz"); len(got) != 0 {
			t.Fatalf("expected no results, got %v", locIDs(got))
		}
	})
}

func containsID(locs []domain.SearchLocation, id string) bool {
	return slices.ContainsFunc(locs, func(l domain.SearchLocation) bool { return l.ID == id })
}

func locIDs(locs []domain.SearchLocation) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.ID
	}
	return out
}

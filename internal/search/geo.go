package search

import "math"

const (
	// EarthRadiusMiles is the mean Earth radius used by Distance.
	EarthRadiusMiles = 3959.0

	// DefaultRadiusMiles is the radius ApplyFilters uses around the selected location.
	DefaultRadiusMiles = 50.0
)

// Distance returns the great-circle distance in miles between two points given
// in degrees (Haversine). Inputs are not validated.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// Package geo holds the geodesic math shared by the scorer and the tracking
// manager. Inputs are assumed to be valid coordinates; out-of-range values
// are not checked here.
package geo

import (
	"math"

	"safewalk/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b domain.Coordinate) float64 {
	lat1 := deg2rad(a.Lat)
	lat2 := deg2rad(b.Lat)
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// MinDistanceToPath returns the smallest distance in meters from p to any
// waypoint, and false when the path is empty. The check is against the
// waypoints themselves, not the segments between them.
func MinDistanceToPath(p domain.Coordinate, path []domain.Coordinate) (float64, bool) {
	if len(path) == 0 {
		return 0, false
	}
	min := math.Inf(1)
	for _, w := range path {
		if d := Distance(p, w); d < min {
			min = d
		}
	}
	return min, true
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

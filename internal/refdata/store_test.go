package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safewalk/internal/domain"
	"safewalk/internal/geo"
)

func testPOIs() []domain.PointOfInterest {
	return []domain.PointOfInterest{
		{Coordinate: domain.Coordinate{Lat: 18.5204, Lng: 73.8567}, Category: domain.POIPolice, Weight: 95, Name: "station"},
		{Coordinate: domain.Coordinate{Lat: 18.5293, Lng: 73.8545}, Category: domain.POIHospital, Weight: 80, Name: "hospital"},
		{Coordinate: domain.Coordinate{Lat: 18.5480, Lng: 73.8910}, Category: domain.POIHotspot, Weight: 70, Name: "lane"},
		{Coordinate: domain.Coordinate{Lat: 18.9000, Lng: 74.2000}, Category: domain.POIPolice, Weight: 90, Name: "far station"},
	}
}

func TestWithinRadius_FiltersByTrueDistance(t *testing.T) {
	t.Parallel()

	s := NewStore(testPOIs())
	center := domain.Coordinate{Lat: 18.5204, Lng: 73.8567}

	matches := s.WithinRadius(center, 1500)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.POI.Name)
		assert.LessOrEqual(t, m.DistanceMeters, 1500.0)
		assert.InDelta(t, geo.Distance(center, m.POI.Coordinate), m.DistanceMeters, 0.001)
	}
	assert.ElementsMatch(t, []string{"station", "hospital"}, names)
}

func TestSafeZonesAndHotspotsSplit(t *testing.T) {
	t.Parallel()

	s := NewStore(testPOIs())
	center := domain.Coordinate{Lat: 18.5480, Lng: 73.8910}

	hot := s.HotspotsWithin(center, 500)
	require.Len(t, hot, 1)
	assert.Equal(t, "lane", hot[0].POI.Name)
	assert.Zero(t, hot[0].DistanceMeters)

	safe := s.SafeZonesWithin(center, 500)
	assert.Empty(t, safe)
}

func TestNearestDistance(t *testing.T) {
	t.Parallel()

	s := NewStore(testPOIs())

	d, ok := s.NearestDistance(domain.Coordinate{Lat: 18.5204, Lng: 73.8567}, domain.POIPolice)
	require.True(t, ok)
	assert.Zero(t, d)

	_, ok = s.NearestDistance(domain.Coordinate{Lat: 18.52, Lng: 73.85}, domain.POICommercial)
	assert.False(t, ok)
}

func TestDefaultPOIs_ContainConfiguredPoliceZone(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultPOIs())
	zones := s.SafeZonesWithin(domain.Coordinate{Lat: 18.5204, Lng: 73.8567}, 500)

	found := false
	for _, m := range zones {
		if m.POI.Category == domain.POIPolice && m.POI.Weight == 95 {
			found = true
		}
	}
	assert.True(t, found, "default dataset must keep a weight-95 police zone at the city center")
}

// Package refdata serves the static points of interest (safe zones and crime
// hotspots) that the scorer and the risk predictor query by proximity. Points
// are indexed in an R-tree once at startup; radius queries use a bounding-box
// search refined by haversine distance.
package refdata

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/dhconnelly/rtreego"

	"safewalk/internal/domain"
	"safewalk/internal/geo"
)

const (
	dimensions  = 2
	minChildren = 2
	maxChildren = 16
	tolerance   = 0.0001
)

// Match is a point of interest together with its distance from the query
// center.
type Match struct {
	POI            domain.PointOfInterest
	DistanceMeters float64
}

type spatialItem struct {
	poi  domain.PointOfInterest
	rect *rtreego.Rect
}

func (si *spatialItem) Bounds() *rtreego.Rect {
	return si.rect
}

// Store is a read-only spatial index over reference points of interest.
// Safe to share across goroutines after construction.
type Store struct {
	tree *rtreego.Rtree
	all  []domain.PointOfInterest
}

func NewStore(pois []domain.PointOfInterest) *Store {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	for _, poi := range pois {
		p := rtreego.Point{poi.Coordinate.Lat, poi.Coordinate.Lng}
		rect := p.ToRect(tolerance)
		tree.Insert(&spatialItem{poi: poi, rect: rect})
	}
	return &Store{tree: tree, all: append([]domain.PointOfInterest(nil), pois...)}
}

// LoadStore reads points of interest from a JSON file, falling back to the
// built-in dataset when path is empty.
func LoadStore(path string) (*Store, error) {
	if path == "" {
		return NewStore(DefaultPOIs()), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: read %s: %w", path, err)
	}
	var pois []domain.PointOfInterest
	if err := json.Unmarshal(b, &pois); err != nil {
		return nil, fmt.Errorf("refdata: parse %s: %w", path, err)
	}
	return NewStore(pois), nil
}

// All returns every configured point of interest.
func (s *Store) All() []domain.PointOfInterest {
	out := make([]domain.PointOfInterest, len(s.all))
	copy(out, s.all)
	return out
}

// WithinRadius returns every point of interest within radiusMeters of center,
// with exact distances.
func (s *Store) WithinRadius(center domain.Coordinate, radiusMeters float64) []Match {
	// Over-approximate with a degree bounding box, then filter by true
	// distance. Longitude degrees shrink with latitude.
	latDeg := radiusMeters / geo.EarthRadiusMeters * (180 / math.Pi)
	lngDeg := latDeg
	if cosLat := math.Cos(center.Lat * math.Pi / 180); cosLat > 0.01 {
		lngDeg = latDeg / cosLat
	}

	rect, err := rtreego.NewRect(
		rtreego.Point{center.Lat - latDeg, center.Lng - lngDeg},
		[]float64{2 * latDeg, 2 * lngDeg},
	)
	if err != nil {
		return nil
	}

	results := s.tree.SearchIntersect(rect)
	matches := make([]Match, 0, len(results))
	for _, r := range results {
		item, ok := r.(*spatialItem)
		if !ok {
			continue
		}
		d := geo.Distance(center, item.poi.Coordinate)
		if d <= radiusMeters {
			matches = append(matches, Match{POI: item.poi, DistanceMeters: d})
		}
	}
	return matches
}

// SafeZonesWithin returns non-hotspot points within the radius.
func (s *Store) SafeZonesWithin(center domain.Coordinate, radiusMeters float64) []Match {
	return s.filterWithin(center, radiusMeters, false)
}

// HotspotsWithin returns hotspot points within the radius.
func (s *Store) HotspotsWithin(center domain.Coordinate, radiusMeters float64) []Match {
	return s.filterWithin(center, radiusMeters, true)
}

func (s *Store) filterWithin(center domain.Coordinate, radiusMeters float64, hotspots bool) []Match {
	all := s.WithinRadius(center, radiusMeters)
	out := all[:0]
	for _, m := range all {
		if m.POI.IsHotspot() == hotspots {
			out = append(out, m)
		}
	}
	return out
}

// NearestDistance returns the distance in meters to the closest point of the
// given category, or false when none is configured.
func (s *Store) NearestDistance(center domain.Coordinate, category domain.POICategory) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, poi := range s.all {
		if poi.Category != category {
			continue
		}
		if d := geo.Distance(center, poi.Coordinate); d < best {
			best = d
			found = true
		}
	}
	return best, found
}

package domain

type POICategory string

const (
	POIPolice     POICategory = "police"
	POIHospital   POICategory = "hospital"
	POICommercial POICategory = "commercial"
	POIHotspot    POICategory = "hotspot"
)

// PointOfInterest is static reference data: a safe zone carries a positive
// safety weight, a hotspot a danger weight. Loaded once at startup, never
// mutated.
type PointOfInterest struct {
	Coordinate Coordinate  `json:"coordinate"`
	Category   POICategory `json:"category"`
	Weight     float64     `json:"weight"`
	Name       string      `json:"name"`
}

func (p PointOfInterest) IsHotspot() bool {
	return p.Category == POIHotspot
}

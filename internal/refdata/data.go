package refdata

import "safewalk/internal/domain"

// DefaultPOIs is the built-in Pune reference dataset used when no external
// file is configured. Weights are safety weights for safe zones and danger
// weights for hotspots.
func DefaultPOIs() []domain.PointOfInterest {
	return []domain.PointOfInterest{
		{
			Coordinate: domain.Coordinate{Lat: 18.5204, Lng: 73.8567},
			Category:   domain.POIPolice,
			Weight:     95,
			Name:       "Shivajinagar Police Station",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.4899, Lng: 73.8056},
			Category:   domain.POIPolice,
			Weight:     90,
			Name:       "Warje Police Chowky",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.5640, Lng: 73.7802},
			Category:   domain.POIPolice,
			Weight:     88,
			Name:       "Baner Police Station",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.4574, Lng: 73.8077},
			Category:   domain.POIPolice,
			Weight:     85,
			Name:       "Sinhagad Road Police Station",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.5293, Lng: 73.8545},
			Category:   domain.POIHospital,
			Weight:     80,
			Name:       "Sassoon General Hospital",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.5089, Lng: 73.8260},
			Category:   domain.POIHospital,
			Weight:     75,
			Name:       "Deenanath Mangeshkar Hospital",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.5404, Lng: 73.8767},
			Category:   domain.POICommercial,
			Weight:     70,
			Name:       "Phoenix Marketcity",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.5604, Lng: 73.7767},
			Category:   domain.POICommercial,
			Weight:     65,
			Name:       "Balewadi High Street",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.4967, Lng: 73.8415},
			Category:   domain.POIHotspot,
			Weight:     85,
			Name:       "Isolated riverside stretch",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.5480, Lng: 73.8910},
			Category:   domain.POIHotspot,
			Weight:     70,
			Name:       "Unlit industrial lane",
		},
		{
			Coordinate: domain.Coordinate{Lat: 18.4730, Lng: 73.8790},
			Category:   domain.POIHotspot,
			Weight:     60,
			Name:       "Highway underpass",
		},
	}
}

package domain

// Coordinate is an immutable WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"` // -90..90
	Lng float64 `json:"lng" validate:"lng"` // -180..180
}

func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Destination is where a journey is headed, with a display name for
// notification texts ("... has started their journey to Phoenix Mall").
type Destination struct {
	Coordinate
	Name string `json:"name"`
}

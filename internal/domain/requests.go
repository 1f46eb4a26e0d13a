package domain

// Request payloads for the HTTP layer. Validation happens at the boundary
// via pkg/validator; the services assume pre-validated input.

type AnalyzeRouteRequest struct {
	StartLat float64 `json:"start_lat" validate:"lat"`
	StartLng float64 `json:"start_lng" validate:"lng"`
	EndLat   float64 `json:"end_lat" validate:"lat"`
	EndLng   float64 `json:"end_lng" validate:"lng"`
}

func (r AnalyzeRouteRequest) Origin() Coordinate {
	return Coordinate{Lat: r.StartLat, Lng: r.StartLng}
}

func (r AnalyzeRouteRequest) Destination() Coordinate {
	return Coordinate{Lat: r.EndLat, Lng: r.EndLng}
}

type ForecastRequest struct {
	Lat   float64 `json:"lat" validate:"lat"`
	Lng   float64 `json:"lng" validate:"lng"`
	Hours int     `json:"hours" validate:"omitempty,min=1,max=24"`
}

type PointRiskRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

type StartJourneyRequest struct {
	UserID          string       `json:"user_id"`
	StartLocation   *Coordinate  `json:"start_location" validate:"required"`
	Destination     *Destination `json:"destination" validate:"required"`
	PlannedRoute    []Coordinate `json:"planned_route"`
	TrustedContacts []string     `json:"trusted_contacts" validate:"dive,phone"`
}

type UpdateLocationRequest struct {
	CurrentLocation *Coordinate `json:"current_location" validate:"required"`
}

type PanicRequest struct {
	PanicData map[string]string `json:"panic_data"`
}

type EndJourneyRequest struct {
	EndLocation *Coordinate `json:"end_location"`
}

type ReportIncidentRequest struct {
	Type       string      `json:"type" validate:"required"`
	Location   string      `json:"location"`
	Details    string      `json:"details"`
	Coordinate *Coordinate `json:"coordinate"`
}

type SubmitReviewRequest struct {
	SafetyRating   int    `json:"safety_rating" validate:"min=0,max=100"`
	LightingRating int    `json:"lighting_rating" validate:"min=0,max=100"`
	CrowdRating    int    `json:"crowd_rating" validate:"min=0,max=100"`
	Comment        string `json:"comment"`
}

type AddReportRequest struct {
	Lat         float64 `json:"lat" validate:"lat"`
	Lng         float64 `json:"lng" validate:"lng"`
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description"`
}

type EmergencyRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// IncidentReport is a user-submitted incident ("harassment near X").
type IncidentReport struct {
	ID        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Location  string     `json:"location"`
	Details   string     `json:"details"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// SafetyReview rates an area on the three scored dimensions.
type SafetyReview struct {
	ID             uuid.UUID `json:"id"`
	SafetyRating   int       `json:"safety_rating"`
	LightingRating int       `json:"lighting_rating"`
	CrowdRating    int       `json:"crowd_rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}

// AreaReport is a pinned map report.
type AreaReport struct {
	ID          uuid.UUID  `json:"id"`
	Coordinate  Coordinate `json:"coordinate"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

// EmergencyAlert records a one-off SOS outside of journey tracking.
type EmergencyAlert struct {
	ID            uuid.UUID  `json:"id"`
	Location      Coordinate `json:"location"`
	AdminNotified bool       `json:"admin_notified"`
	CreatedAt     time.Time  `json:"created_at"`
}

// JourneyRecord is the archived form of a completed journey.
type JourneyRecord struct {
	JourneyID    string     `json:"journey_id"`
	UserID       string     `json:"user_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	StartLat     float64    `json:"start_lat"`
	StartLng     float64    `json:"start_lng"`
	Destination  string     `json:"destination"`
	FinalStatus  JourneyStatus `json:"final_status"`
	Deviations   int        `json:"deviations"`
	PanicUsed    bool       `json:"panic_used"`
}

type AdminStats struct {
	EmergencyAlerts int64 `json:"emergency_alerts"`
	Incidents       int64 `json:"incidents"`
	Reviews         int64 `json:"reviews"`
	Reports         int64 `json:"reports"`
	Journeys        int64 `json:"journeys"`
}

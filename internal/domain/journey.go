package domain

import (
	"time"
)

type JourneyStatus string

const (
	// JourneyActive is the initial state. The only transitions are
	// active -> panic (one-way) and active|panic -> completed (terminal).
	JourneyActive    JourneyStatus = "active"
	JourneyPanic     JourneyStatus = "panic"
	JourneyCompleted JourneyStatus = "completed"
)

// Journey is one tracked trip. Owned exclusively by the tracking manager for
// its active lifetime; removed from the registry once completed.
type Journey struct {
	ID              string           `json:"journey_id"`
	UserID          string           `json:"user_id"`
	StartTime       time.Time        `json:"start_time"`
	StartLocation   Coordinate       `json:"start_location"`
	Destination     Destination      `json:"destination"`
	PlannedRoute    []Coordinate     `json:"planned_route"`
	TrustedContacts []string         `json:"trusted_contacts"`
	CurrentLocation Coordinate       `json:"current_location"`
	Status          JourneyStatus    `json:"status"`
	LastUpdate      time.Time        `json:"last_update"`
	DeviationAlerts []DeviationEvent `json:"deviation_alerts"`

	PanicActivated time.Time         `json:"panic_activated"`
	PanicData      map[string]string `json:"panic_data,omitempty"`
	LiveStream     *LiveStream       `json:"live_streaming,omitempty"`

	EndTime     time.Time   `json:"end_time"`
	EndLocation *Coordinate `json:"end_location,omitempty"`
}

// DeviationEvent is append-only once recorded.
type DeviationEvent struct {
	DistanceFromRoute float64    `json:"distance_from_route"` // meters
	Location          Coordinate `json:"location"`
	Timestamp         time.Time  `json:"timestamp"`
}

// LocationPing is one location-history entry.
type LocationPing struct {
	Location  Coordinate `json:"location"`
	Timestamp time.Time  `json:"timestamp"`
}

type LiveStream struct {
	Active    bool      `json:"active"`
	StreamURL string    `json:"stream_url"`
	StartedAt time.Time `json:"started_at"`
}

// JourneyStatusView is the snapshot returned to watchers: the journey plus
// its most recent history entries.
type JourneyStatusView struct {
	Journey        Journey        `json:"journey"`
	LocationHistory []LocationPing `json:"location_history"` // last 10
	TotalLocations int            `json:"total_locations"`
}

// JourneySummary is the reduced view exposed on the family dashboard. It
// carries no raw location history.
type JourneySummary struct {
	JourneyID       string           `json:"journey_id"`
	UserID          string           `json:"user_id"`
	StartTime       time.Time        `json:"start_time"`
	CurrentLocation Coordinate       `json:"current_location"`
	Destination     Destination      `json:"destination"`
	Status          JourneyStatus    `json:"status"`
	LastUpdate      time.Time        `json:"last_update"`
	PanicMode       bool             `json:"panic_mode"`
	DeviationAlerts []DeviationEvent `json:"deviation_alerts"`
}

type FamilyDashboard struct {
	ActiveJourneys []JourneySummary `json:"active_journeys"`
	ContactPhone   string           `json:"contact_phone"`
	LastUpdated    time.Time        `json:"last_updated"`
}

type UpdateLocationResult struct {
	Status    JourneyStatus   `json:"status"`
	Deviation *DeviationEvent `json:"deviation"`
}

type PanicResult struct {
	Status                    JourneyStatus `json:"status"`
	EmergencyContactsNotified bool          `json:"emergency_contacts_notified"`
}

type EndJourneyResult struct {
	Status           JourneyStatus `json:"status"`
	ContactsNotified bool          `json:"contacts_notified"`
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"safewalk/internal/domain"
	"safewalk/internal/geo"
	"safewalk/pkg/e"
)

const statusHistoryLimit = 10

// TrackingEvent is pushed to live watchers on every journey mutation.
type TrackingEvent struct {
	Type      string               `json:"type"` // started|location|deviation|panic|completed|checkin
	JourneyID string               `json:"journey_id"`
	Status    domain.JourneyStatus `json:"status"`
	Location  *domain.Coordinate   `json:"location,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// TrackingConfig carries the tunables of the journey state machine.
type TrackingConfig struct {
	DeviationThresholdMeters float64
	NotifyInterval           time.Duration
	CheckInDelay             time.Duration
	PublicBaseURL            string
	AdminPhone               string
}

// trackedJourney pairs a journey with its own lock. The registry lock only
// guards the map; all journey state is guarded by this mutex.
type trackedJourney struct {
	mu      sync.Mutex
	j       *domain.Journey
	history []domain.LocationPing
	checkIn ScheduledTask
}

// TrackingManager owns all active journeys in memory. Completed journeys
// leave the registry; only an archive row survives.
type TrackingManager struct {
	logger     *slog.Logger
	dispatcher NotificationDispatcher
	archiver   JourneyArchiver
	scheduler  Scheduler
	events     EventSink
	cfg        TrackingConfig
	now        func() time.Time

	mu       sync.RWMutex
	journeys map[string]*trackedJourney
}

func NewTrackingManager(logger *slog.Logger, dispatcher NotificationDispatcher, archiver JourneyArchiver, scheduler Scheduler, events EventSink, cfg TrackingConfig, now func() time.Time) *TrackingManager {
	if now == nil {
		now = time.Now
	}
	return &TrackingManager{
		logger:     logger,
		dispatcher: dispatcher,
		archiver:   archiver,
		scheduler:  scheduler,
		events:     events,
		cfg:        cfg,
		now:        now,
		journeys:   make(map[string]*trackedJourney),
	}
}

func (m *TrackingManager) StartJourney(ctx context.Context, userID string, start domain.Coordinate, dest domain.Destination, plannedRoute []domain.Coordinate, trustedContacts []string) (string, error) {
	const op = "service.TrackingManager.StartJourney"

	now := m.now()
	j := &domain.Journey{
		ID:              uuid.NewString(),
		UserID:          userID,
		StartTime:       now,
		StartLocation:   start,
		Destination:     dest,
		PlannedRoute:    plannedRoute,
		TrustedContacts: trustedContacts,
		CurrentLocation: start,
		Status:          domain.JourneyActive,
		LastUpdate:      now,
		DeviationAlerts: []domain.DeviationEvent{},
	}

	tj := &trackedJourney{
		j:       j,
		history: []domain.LocationPing{{Location: start, Timestamp: now}},
	}
	tj.checkIn = m.scheduler.Once(m.cfg.CheckInDelay, func() { m.checkInReminder(j.ID) })

	m.mu.Lock()
	m.journeys[j.ID] = tj
	m.mu.Unlock()

	m.logger.Info("journey started", slog.String("op", op), slog.String("journey_id", j.ID), slog.String("user_id", userID))

	m.notify(ctx, trustedContacts, startMessage(userID, dest.Name, j.ID))
	m.publish(TrackingEvent{Type: "started", JourneyID: j.ID, Status: domain.JourneyActive, Location: &start, Timestamp: now})

	return j.ID, nil
}

func (m *TrackingManager) UpdateLocation(ctx context.Context, journeyID string, loc domain.Coordinate) (domain.UpdateLocationResult, error) {
	const op = "service.TrackingManager.UpdateLocation"

	tj, err := m.lookup(journeyID)
	if err != nil {
		return domain.UpdateLocationResult{}, e.Wrap(op, err)
	}

	now := m.now()
	var (
		deviation *domain.DeviationEvent
		contacts  []string
		messages  []string
		status    domain.JourneyStatus
	)

	tj.mu.Lock()
	prevUpdate := tj.j.LastUpdate
	tj.j.CurrentLocation = loc
	tj.j.LastUpdate = now
	tj.history = append(tj.history, domain.LocationPing{Location: loc, Timestamp: now})

	if dist, ok := geo.MinDistanceToPath(loc, tj.j.PlannedRoute); ok && dist > m.cfg.DeviationThresholdMeters {
		ev := domain.DeviationEvent{DistanceFromRoute: dist, Location: loc, Timestamp: now}
		tj.j.DeviationAlerts = append(tj.j.DeviationAlerts, ev)
		deviation = &ev
		messages = append(messages, deviationMessage(tj.j.UserID, dist))
	}

	// Deviation alerts go out on every deviation; plain location updates are
	// rate limited against the previous update time so a stream of frequent
	// pings stays quiet.
	if now.Sub(prevUpdate) >= m.cfg.NotifyInterval {
		messages = append(messages, locationMessage(tj.j.UserID, loc))
	}
	if len(messages) > 0 {
		contacts = append([]string(nil), tj.j.TrustedContacts...)
	}
	status = tj.j.Status
	tj.mu.Unlock()

	for _, msg := range messages {
		m.notify(ctx, contacts, msg)
	}

	evType := "location"
	if deviation != nil {
		evType = "deviation"
	}
	m.publish(TrackingEvent{Type: evType, JourneyID: journeyID, Status: status, Location: &loc, Timestamp: now})

	return domain.UpdateLocationResult{Status: status, Deviation: deviation}, nil
}

// ActivatePanic is idempotent: repeated calls keep panic state and overwrite
// the panic payload with the latest one.
func (m *TrackingManager) ActivatePanic(ctx context.Context, journeyID string, panicData map[string]string) (domain.PanicResult, error) {
	const op = "service.TrackingManager.ActivatePanic"

	tj, err := m.lookup(journeyID)
	if err != nil {
		return domain.PanicResult{}, e.Wrap(op, err)
	}

	now := m.now()

	tj.mu.Lock()
	tj.j.Status = domain.JourneyPanic
	tj.j.PanicActivated = now
	tj.j.PanicData = panicData
	if tj.j.LiveStream == nil {
		tj.j.LiveStream = &domain.LiveStream{
			Active:    true,
			StreamURL: fmt.Sprintf("%s/live-stream/%s", m.cfg.PublicBaseURL, journeyID),
			StartedAt: now,
		}
	}
	userID := tj.j.UserID
	loc := tj.j.CurrentLocation
	contacts := append([]string(nil), tj.j.TrustedContacts...)
	tj.mu.Unlock()

	m.logger.Warn("panic activated", slog.String("op", op), slog.String("journey_id", journeyID))

	msg := panicMessage(userID, loc)
	notified := m.notify(ctx, contacts, msg)
	if m.cfg.AdminPhone != "" {
		m.dispatcher.Send(ctx, m.cfg.AdminPhone, msg)
	}

	m.publish(TrackingEvent{Type: "panic", JourneyID: journeyID, Status: domain.JourneyPanic, Location: &loc, Timestamp: now})

	return domain.PanicResult{Status: domain.JourneyPanic, EmergencyContactsNotified: notified}, nil
}

func (m *TrackingManager) EndJourney(ctx context.Context, journeyID string, endLocation *domain.Coordinate) (domain.EndJourneyResult, error) {
	const op = "service.TrackingManager.EndJourney"

	m.mu.Lock()
	tj, ok := m.journeys[journeyID]
	if ok {
		delete(m.journeys, journeyID)
	}
	m.mu.Unlock()
	if !ok {
		return domain.EndJourneyResult{}, e.Wrap(op, e.ErrJourneyNotFound)
	}

	now := m.now()

	tj.mu.Lock()
	if tj.checkIn != nil {
		tj.checkIn.Cancel()
	}
	tj.j.Status = domain.JourneyCompleted
	tj.j.EndTime = now
	if endLocation != nil {
		tj.j.EndLocation = endLocation
		tj.j.CurrentLocation = *endLocation
	}
	rec := archiveRecord(tj.j)
	userID := tj.j.UserID
	contacts := append([]string(nil), tj.j.TrustedContacts...)
	tj.mu.Unlock()

	notified := m.notify(ctx, contacts, completedMessage(userID))

	if err := m.archiver.SaveJourney(ctx, rec); err != nil {
		m.logger.Error("journey archive failed", slog.String("op", op), slog.String("journey_id", journeyID), slog.String("error", err.Error()))
	}

	m.publish(TrackingEvent{Type: "completed", JourneyID: journeyID, Status: domain.JourneyCompleted, Location: endLocation, Timestamp: now})

	return domain.EndJourneyResult{Status: domain.JourneyCompleted, ContactsNotified: notified}, nil
}

func (m *TrackingManager) JourneyStatus(ctx context.Context, journeyID string) (domain.JourneyStatusView, error) {
	const op = "service.TrackingManager.JourneyStatus"

	tj, err := m.lookup(journeyID)
	if err != nil {
		return domain.JourneyStatusView{}, e.Wrap(op, err)
	}

	tj.mu.Lock()
	defer tj.mu.Unlock()

	total := len(tj.history)
	from := total - statusHistoryLimit
	if from < 0 {
		from = 0
	}
	recent := append([]domain.LocationPing(nil), tj.history[from:]...)

	// Snapshot: later mutations under the journey lock must not reach a
	// caller still reading the result.
	j := *tj.j
	j.PlannedRoute = append([]domain.Coordinate(nil), tj.j.PlannedRoute...)
	j.TrustedContacts = append([]string(nil), tj.j.TrustedContacts...)
	j.DeviationAlerts = append([]domain.DeviationEvent(nil), tj.j.DeviationAlerts...)
	if tj.j.PanicData != nil {
		j.PanicData = make(map[string]string, len(tj.j.PanicData))
		for k, v := range tj.j.PanicData {
			j.PanicData[k] = v
		}
	}
	if tj.j.LiveStream != nil {
		stream := *tj.j.LiveStream
		j.LiveStream = &stream
	}

	return domain.JourneyStatusView{
		Journey:         j,
		LocationHistory: recent,
		TotalLocations:  total,
	}, nil
}

func (m *TrackingManager) FamilyDashboard(ctx context.Context, contactPhone string) (domain.FamilyDashboard, error) {
	m.mu.RLock()
	tracked := make([]*trackedJourney, 0, len(m.journeys))
	for _, tj := range m.journeys {
		tracked = append(tracked, tj)
	}
	m.mu.RUnlock()

	summaries := make([]domain.JourneySummary, 0)
	for _, tj := range tracked {
		tj.mu.Lock()
		if containsContact(tj.j.TrustedContacts, contactPhone) {
			summaries = append(summaries, domain.JourneySummary{
				JourneyID:       tj.j.ID,
				UserID:          tj.j.UserID,
				StartTime:       tj.j.StartTime,
				CurrentLocation: tj.j.CurrentLocation,
				Destination:     tj.j.Destination,
				Status:          tj.j.Status,
				LastUpdate:      tj.j.LastUpdate,
				PanicMode:       tj.j.Status == domain.JourneyPanic,
				DeviationAlerts: append([]domain.DeviationEvent(nil), tj.j.DeviationAlerts...),
			})
		}
		tj.mu.Unlock()
	}

	return domain.FamilyDashboard{
		ActiveJourneys: summaries,
		ContactPhone:   contactPhone,
		LastUpdated:    m.now(),
	}, nil
}

// checkInReminder fires once per journey, CheckInDelay after start. A journey
// that ended in the meantime is simply gone from the registry.
func (m *TrackingManager) checkInReminder(journeyID string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("check-in reminder panicked", slog.String("journey_id", journeyID), slog.Any("panic", r))
		}
	}()

	tj, err := m.lookup(journeyID)
	if err != nil {
		return
	}

	tj.mu.Lock()
	userID := tj.j.UserID
	status := tj.j.Status
	lastUpdate := tj.j.LastUpdate
	loc := tj.j.CurrentLocation
	contacts := append([]string(nil), tj.j.TrustedContacts...)
	tj.mu.Unlock()

	if status != domain.JourneyActive {
		return
	}
	// A ping since scheduling means the user is fine; stay silent.
	if m.now().Sub(lastUpdate) < m.cfg.CheckInDelay {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	m.notify(ctx, contacts, checkInMessage(userID, loc))
	m.publish(TrackingEvent{Type: "checkin", JourneyID: journeyID, Status: status, Timestamp: m.now()})
}

func (m *TrackingManager) lookup(journeyID string) (*trackedJourney, error) {
	m.mu.RLock()
	tj, ok := m.journeys[journeyID]
	m.mu.RUnlock()
	if !ok {
		return nil, e.ErrJourneyNotFound
	}
	return tj, nil
}

// notify fans a message out to every contact. Returns true if at least one
// delivery succeeded.
func (m *TrackingManager) notify(ctx context.Context, contacts []string, message string) bool {
	any := false
	for _, phone := range contacts {
		if m.dispatcher.Send(ctx, phone, message) {
			any = true
		}
	}
	return any
}

func (m *TrackingManager) publish(ev TrackingEvent) {
	if m.events != nil {
		m.events.Publish(ev.JourneyID, ev)
	}
}

func archiveRecord(j *domain.Journey) domain.JourneyRecord {
	return domain.JourneyRecord{
		JourneyID:   j.ID,
		UserID:      j.UserID,
		StartTime:   j.StartTime,
		EndTime:     j.EndTime,
		StartLat:    j.StartLocation.Lat,
		StartLng:    j.StartLocation.Lng,
		Destination: j.Destination.Name,
		FinalStatus: j.Status,
		Deviations:  len(j.DeviationAlerts),
		PanicUsed:   !j.PanicActivated.IsZero(),
	}
}

func containsContact(contacts []string, phone string) bool {
	for _, c := range contacts {
		if c == phone {
			return true
		}
	}
	return false
}

func startMessage(userID, destination, journeyID string) string {
	return fmt.Sprintf(
		"SafeWalk: %s started a tracked journey to %s. You will be notified of any route deviation or emergency. Journey ID: %s",
		userID, destination, journeyID,
	)
}

func locationMessage(userID string, loc domain.Coordinate) string {
	return fmt.Sprintf(
		"SafeWalk: %s is currently at https://maps.google.com/?q=%f,%f.",
		userID, loc.Lat, loc.Lng,
	)
}

func deviationMessage(userID string, distance float64) string {
	return fmt.Sprintf(
		"SafeWalk ALERT: %s has deviated %.0f m from the planned route. Please check on them.",
		userID, distance,
	)
}

func panicMessage(userID string, loc domain.Coordinate) string {
	return fmt.Sprintf(
		"SafeWalk EMERGENCY: %s triggered the panic button at https://maps.google.com/?q=%f,%f. Call 100 (Police) or 108 (Emergency) immediately.",
		userID, loc.Lat, loc.Lng,
	)
}

func completedMessage(userID string) string {
	return fmt.Sprintf("SafeWalk: %s has completed their journey safely.", userID)
}

func checkInMessage(userID string, loc domain.Coordinate) string {
	return fmt.Sprintf(
		"SafeWalk: no recent location update from %s. Last known location: https://maps.google.com/?q=%f,%f. Please check on them.",
		userID, loc.Lat, loc.Lng,
	)
}

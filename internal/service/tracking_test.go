package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"safewalk/internal/domain"
	"safewalk/internal/service"
	"safewalk/pkg/e"

	mock_service "safewalk/internal/service/mocks"
)

var (
	journeyStart = domain.Coordinate{Lat: 18.5204, Lng: 73.8567}
	journeyDest  = domain.Destination{Coordinate: domain.Coordinate{Lat: 18.5362, Lng: 73.8570}, Name: "Home"}
	plannedRoute = []domain.Coordinate{
		{Lat: 18.5204, Lng: 73.8567},
		{Lat: 18.5280, Lng: 73.8568},
		{Lat: 18.5362, Lng: 73.8570},
	}
	contacts = []string{"+919812345678", "+919876543210"}
)

// testClock is a manually advanced clock shared with the manager under test.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type trackingDeps struct {
	dispatcher *mock_service.MockNotificationDispatcher
	archiver   *mock_service.MockJourneyArchiver
	scheduler  *mock_service.MockScheduler
	task       *mock_service.MockScheduledTask
	events     *mock_service.MockEventSink
	clock      *testClock
	checkIn    *func() // most recently scheduled check-in callback
}

func newTrackingDeps(ctrl *gomock.Controller) trackingDeps {
	d := trackingDeps{
		dispatcher: mock_service.NewMockNotificationDispatcher(ctrl),
		archiver:   mock_service.NewMockJourneyArchiver(ctrl),
		scheduler:  mock_service.NewMockScheduler(ctrl),
		task:       mock_service.NewMockScheduledTask(ctrl),
		events:     mock_service.NewMockEventSink(ctrl),
		clock:      &testClock{now: time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)},
		checkIn:    new(func()),
	}
	d.scheduler.EXPECT().Once(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ time.Duration, fn func()) service.ScheduledTask {
			*d.checkIn = fn
			return d.task
		}).AnyTimes()
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
	return d
}

func (d trackingDeps) manager() *service.TrackingManager {
	return service.NewTrackingManager(newTestLogger(), d.dispatcher, d.archiver, d.scheduler, d.events, service.TrackingConfig{
		DeviationThresholdMeters: 200,
		NotifyInterval:           5 * time.Minute,
		CheckInDelay:             10 * time.Minute,
		PublicBaseURL:            "http://localhost:8080",
		AdminPhone:               "+919902480636",
	}, d.clock.Now)
}

func startJourney(t *testing.T, d trackingDeps, m *service.TrackingManager) string {
	t.Helper()

	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[0], gomock.Any()).Return(true).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[1], gomock.Any()).Return(true).Times(1)

	id, err := m.StartJourney(context.Background(), "user-1", journeyStart, journeyDest, plannedRoute, contacts)
	if err != nil {
		t.Fatalf("StartJourney: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty journey id")
	}
	return id
}

func TestStartJourney_RegistersAndNotifies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()

	id := startJourney(t, d, m)

	view, err := m.JourneyStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("JourneyStatus: %v", err)
	}
	if view.Journey.Status != domain.JourneyActive {
		t.Fatalf("expected active got=%s", view.Journey.Status)
	}
	if view.Journey.UserID != "user-1" {
		t.Fatalf("unexpected user: %s", view.Journey.UserID)
	}
	if view.TotalLocations != 1 {
		t.Fatalf("expected 1 location after start got=%d", view.TotalLocations)
	}
}

func TestUpdateLocation_OnRoute_NoDeviation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	d.clock.Advance(time.Minute)

	res, err := m.UpdateLocation(context.Background(), id, plannedRoute[1])
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if res.Deviation != nil {
		t.Fatalf("expected no deviation got=%+v", res.Deviation)
	}
	if res.Status != domain.JourneyActive {
		t.Fatalf("expected active got=%s", res.Status)
	}
}

func TestUpdateLocation_Deviation_AlwaysNotifies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	// About 1.1 km east of every waypoint.
	offRoute := domain.Coordinate{Lat: 18.5280, Lng: 73.8670}

	// One minute since the last update: too soon for a plain location
	// message, but the deviation alert goes out regardless.
	d.clock.Advance(time.Minute)

	var msg string
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[0], gomock.Any()).
		DoAndReturn(func(_ context.Context, _, m string) bool {
			msg = m
			return true
		}).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[1], gomock.Any()).Return(true).Times(1)

	res, err := m.UpdateLocation(context.Background(), id, offRoute)
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if res.Deviation == nil {
		t.Fatalf("expected deviation")
	}
	if res.Deviation.DistanceFromRoute <= 200 {
		t.Fatalf("expected distance above threshold got=%v", res.Deviation.DistanceFromRoute)
	}
	if !strings.Contains(msg, "deviated") {
		t.Fatalf("expected deviation alert, got %q", msg)
	}

	view, err := m.JourneyStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("JourneyStatus: %v", err)
	}
	if len(view.Journey.DeviationAlerts) != 1 {
		t.Fatalf("expected 1 recorded deviation got=%d", len(view.Journey.DeviationAlerts))
	}
}

func TestUpdateLocation_Deviation_AfterQuietPeriodAddsLocationUpdate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	offRoute := domain.Coordinate{Lat: 18.5280, Lng: 73.8670}

	// Six quiet minutes: the deviation alert plus the periodic location
	// update, both to every contact.
	d.clock.Advance(6 * time.Minute)

	var msgs []string
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[0], gomock.Any()).
		DoAndReturn(func(_ context.Context, _, m string) bool {
			msgs = append(msgs, m)
			return true
		}).Times(2)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[1], gomock.Any()).Return(true).Times(2)

	res, err := m.UpdateLocation(context.Background(), id, offRoute)
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if res.Deviation == nil {
		t.Fatalf("expected deviation")
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages got=%d", len(msgs))
	}
	if !strings.Contains(msgs[0], "deviated") {
		t.Fatalf("expected deviation alert first, got %q", msgs[0])
	}
	if !strings.Contains(msgs[1], "currently at") {
		t.Fatalf("expected location update second, got %q", msgs[1])
	}
}

func TestUpdateLocation_OnRoute_QuietPeriodSendsLocationUpdate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	d.clock.Advance(6 * time.Minute)

	var msg string
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[0], gomock.Any()).
		DoAndReturn(func(_ context.Context, _, m string) bool {
			msg = m
			return true
		}).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[1], gomock.Any()).Return(true).Times(1)

	res, err := m.UpdateLocation(context.Background(), id, plannedRoute[1])
	if err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}
	if res.Deviation != nil {
		t.Fatalf("expected no deviation got=%+v", res.Deviation)
	}
	if !strings.Contains(msg, "currently at") {
		t.Fatalf("expected location update, got %q", msg)
	}
}

func TestUpdateLocation_UnknownJourney(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()

	_, err := m.UpdateLocation(context.Background(), "missing", journeyStart)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got: %v", err)
	}
}

func TestActivatePanic_NotifiesContactsAndAdmin(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	var adminMsg string
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[0], gomock.Any()).Return(true).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[1], gomock.Any()).Return(true).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), "+919902480636", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, msg string) bool {
			adminMsg = msg
			return true
		}).Times(1)

	res, err := m.ActivatePanic(context.Background(), id, map[string]string{"reason": "followed"})
	if err != nil {
		t.Fatalf("ActivatePanic: %v", err)
	}
	if res.Status != domain.JourneyPanic {
		t.Fatalf("expected panic got=%s", res.Status)
	}
	if !res.EmergencyContactsNotified {
		t.Fatalf("expected contacts notified")
	}
	if !strings.Contains(adminMsg, "Call 100 (Police) or 108 (Emergency)") {
		t.Fatalf("admin message missing helpline text: %q", adminMsg)
	}

	view, err := m.JourneyStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("JourneyStatus: %v", err)
	}
	if view.Journey.LiveStream == nil || !view.Journey.LiveStream.Active {
		t.Fatalf("expected active live stream")
	}
	if want := "http://localhost:8080/live-stream/" + id; view.Journey.LiveStream.StreamURL != want {
		t.Fatalf("unexpected stream url: %q", view.Journey.LiveStream.StreamURL)
	}
}

func TestActivatePanic_IdempotentLastWriteWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	// Two panics: contacts and admin hear about both.
	d.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(6)

	if _, err := m.ActivatePanic(context.Background(), id, map[string]string{"note": "first"}); err != nil {
		t.Fatalf("first panic: %v", err)
	}

	firstView, _ := m.JourneyStatus(context.Background(), id)
	firstStream := firstView.Journey.LiveStream.StreamURL

	d.clock.Advance(time.Minute)

	if _, err := m.ActivatePanic(context.Background(), id, map[string]string{"note": "second"}); err != nil {
		t.Fatalf("second panic: %v", err)
	}

	view, err := m.JourneyStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("JourneyStatus: %v", err)
	}
	if view.Journey.PanicData["note"] != "second" {
		t.Fatalf("expected last write to win, got %v", view.Journey.PanicData)
	}
	if view.Journey.LiveStream.StreamURL != firstStream {
		t.Fatalf("stream must survive repeated panics")
	}
}

func TestEndJourney_RemovesCancelsAndArchives(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	end := domain.Coordinate{Lat: 18.5362, Lng: 73.8570}

	d.task.EXPECT().Cancel().Return(true).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[0], gomock.Any()).Return(true).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[1], gomock.Any()).Return(true).Times(1)

	var archived domain.JourneyRecord
	d.archiver.EXPECT().SaveJourney(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec domain.JourneyRecord) error {
			archived = rec
			return nil
		}).Times(1)

	res, err := m.EndJourney(context.Background(), id, &end)
	if err != nil {
		t.Fatalf("EndJourney: %v", err)
	}
	if res.Status != domain.JourneyCompleted {
		t.Fatalf("expected completed got=%s", res.Status)
	}
	if archived.JourneyID != id || archived.FinalStatus != domain.JourneyCompleted {
		t.Fatalf("unexpected archive record: %+v", archived)
	}
	if archived.Destination != "Home" {
		t.Fatalf("unexpected archived destination: %q", archived.Destination)
	}

	if _, err := m.JourneyStatus(context.Background(), id); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected journey gone after end, got: %v", err)
	}
}

func TestEndJourney_ArchiveFailureDoesNotFailTheCall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	d.task.EXPECT().Cancel().Return(true).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	d.archiver.EXPECT().SaveJourney(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	res, err := m.EndJourney(context.Background(), id, nil)
	if err != nil {
		t.Fatalf("EndJourney: %v", err)
	}
	if res.Status != domain.JourneyCompleted {
		t.Fatalf("expected completed got=%s", res.Status)
	}
}

func TestJourneyStatus_KeepsLastTenPings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	for i := 0; i < 14; i++ {
		d.clock.Advance(10 * time.Second)
		loc := domain.Coordinate{Lat: 18.5204 + float64(i)*0.0001, Lng: 73.8567}
		if _, err := m.UpdateLocation(context.Background(), id, loc); err != nil {
			t.Fatalf("UpdateLocation %d: %v", i, err)
		}
	}

	view, err := m.JourneyStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("JourneyStatus: %v", err)
	}
	if view.TotalLocations != 15 {
		t.Fatalf("expected 15 total got=%d", view.TotalLocations)
	}
	if len(view.LocationHistory) != 10 {
		t.Fatalf("expected last 10 got=%d", len(view.LocationHistory))
	}
	last := view.LocationHistory[len(view.LocationHistory)-1]
	if last.Location.Lat != 18.5204+13*0.0001 {
		t.Fatalf("unexpected newest ping: %+v", last)
	}
}

func TestJourneyStatus_SnapshotIsolatedFromLiveJourney(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	view, err := m.JourneyStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("JourneyStatus: %v", err)
	}

	// Writes through the snapshot must not reach the tracked journey.
	view.Journey.TrustedContacts[0] = "tampered"
	view.Journey.PlannedRoute[0] = domain.Coordinate{}

	again, err := m.JourneyStatus(context.Background(), id)
	if err != nil {
		t.Fatalf("JourneyStatus: %v", err)
	}
	if again.Journey.TrustedContacts[0] != contacts[0] {
		t.Fatalf("live contact list mutated via snapshot: %v", again.Journey.TrustedContacts)
	}
	if again.Journey.PlannedRoute[0] != plannedRoute[0] {
		t.Fatalf("live planned route mutated via snapshot: %v", again.Journey.PlannedRoute[0])
	}
}

func TestCheckInReminder_NotifiesWhenNoRecentUpdate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	startJourney(t, d, m)

	if *d.checkIn == nil {
		t.Fatalf("expected a scheduled check-in callback")
	}

	// Ten silent minutes since start.
	d.clock.Advance(10 * time.Minute)

	var msg string
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[0], gomock.Any()).
		DoAndReturn(func(_ context.Context, _, m string) bool {
			msg = m
			return true
		}).Times(1)
	d.dispatcher.EXPECT().Send(gomock.Any(), contacts[1], gomock.Any()).Return(true).Times(1)

	(*d.checkIn)()

	if !strings.Contains(msg, "check on them") {
		t.Fatalf("expected check-in alert, got %q", msg)
	}
}

func TestCheckInReminder_SkipsAfterRecentUpdate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	// An on-route ping two minutes in resets the silence window.
	d.clock.Advance(2 * time.Minute)
	if _, err := m.UpdateLocation(context.Background(), id, plannedRoute[1]); err != nil {
		t.Fatalf("UpdateLocation: %v", err)
	}

	// The timer fires ten minutes after start; the last ping is only eight
	// minutes old, so nothing is sent.
	d.clock.Advance(8 * time.Minute)
	(*d.checkIn)()
}

func TestFamilyDashboard_FiltersByContact(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := newTrackingDeps(ctrl)
	m := d.manager()
	id := startJourney(t, d, m)

	// A second journey with a different contact list.
	d.dispatcher.EXPECT().Send(gomock.Any(), "+917700112233", gomock.Any()).Return(true).Times(1)
	if _, err := m.StartJourney(context.Background(), "user-2", journeyStart, journeyDest, nil, []string{"+917700112233"}); err != nil {
		t.Fatalf("StartJourney second: %v", err)
	}

	dash, err := m.FamilyDashboard(context.Background(), contacts[0])
	if err != nil {
		t.Fatalf("FamilyDashboard: %v", err)
	}
	if len(dash.ActiveJourneys) != 1 {
		t.Fatalf("expected 1 journey got=%d", len(dash.ActiveJourneys))
	}
	if dash.ActiveJourneys[0].JourneyID != id {
		t.Fatalf("unexpected journey: %s", dash.ActiveJourneys[0].JourneyID)
	}
	if dash.ContactPhone != contacts[0] {
		t.Fatalf("unexpected contact echo: %s", dash.ContactPhone)
	}
}

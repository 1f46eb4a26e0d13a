package tracking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"safewalk/internal/api/handlers/http/tracking"
	mock_tracking "safewalk/internal/api/handlers/http/tracking/mocks"
	"safewalk/internal/domain"
	"safewalk/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestStartJourney_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	reqBody := `{
		"user_id": "user-1",
		"start_location": {"lat": 18.5204, "lng": 73.8567},
		"destination": {"lat": 18.5362, "lng": 73.8570, "name": "Home"},
		"planned_route": [{"lat": 18.5204, "lng": 73.8567}],
		"trusted_contacts": ["+919812345678"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journeys", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		StartJourney(gomock.Any(), "user-1",
			domain.Coordinate{Lat: 18.5204, Lng: 73.8567},
			domain.Destination{Coordinate: domain.Coordinate{Lat: 18.5362, Lng: 73.8570}, Name: "Home"},
			[]domain.Coordinate{{Lat: 18.5204, Lng: 73.8567}},
			[]string{"+919812345678"},
		).
		Return("journey-123", nil).
		Times(1)

	h.StartJourney(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", rr.Code, rr.Body.String())
	}

	var got map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["journey_id"] != "journey-123" || got["status"] != "active" {
		t.Fatalf("unexpected response: %v", got)
	}
}

func TestStartJourney_MissingStart_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	reqBody := `{"user_id":"user-1","destination":{"lat":18.5,"lng":73.85,"name":"Home"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journeys", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.StartJourney(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStartJourney_BadContactPhone_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	reqBody := `{
		"user_id": "user-1",
		"start_location": {"lat": 18.5204, "lng": 73.8567},
		"destination": {"lat": 18.5362, "lng": 73.8570, "name": "Home"},
		"trusted_contacts": ["not-a-phone"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journeys", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.StartJourney(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	reqBody := `{"current_location":{"lat":18.5280,"lng":73.8568}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journeys/j1/location", bytes.NewBufferString(reqBody))
	req = withURLParam(req, "id", "j1")
	rr := httptest.NewRecorder()

	svc.EXPECT().
		UpdateLocation(gomock.Any(), "j1", domain.Coordinate{Lat: 18.5280, Lng: 73.8568}).
		Return(domain.UpdateLocationResult{Status: domain.JourneyActive}, nil).
		Times(1)

	h.UpdateLocation(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateLocation_UnknownJourney_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	reqBody := `{"current_location":{"lat":18.5280,"lng":73.8568}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journeys/missing/location", bytes.NewBufferString(reqBody))
	req = withURLParam(req, "id", "missing")
	rr := httptest.NewRecorder()

	svc.EXPECT().
		UpdateLocation(gomock.Any(), "missing", gomock.Any()).
		Return(domain.UpdateLocationResult{}, e.ErrJourneyNotFound).
		Times(1)

	h.UpdateLocation(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestActivatePanic_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	reqBody := `{"panic_data":{"reason":"followed"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journeys/j1/panic", bytes.NewBufferString(reqBody))
	req = withURLParam(req, "id", "j1")
	rr := httptest.NewRecorder()

	svc.EXPECT().
		ActivatePanic(gomock.Any(), "j1", map[string]string{"reason": "followed"}).
		Return(domain.PanicResult{Status: domain.JourneyPanic, EmergencyContactsNotified: true}, nil).
		Times(1)

	h.ActivatePanic(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}

	var got domain.PanicResult
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Status != domain.JourneyPanic || !got.EmergencyContactsNotified {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestFamilyDashboard_RequiresContact(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/family/dashboard", nil)
	rr := httptest.NewRecorder()

	h.FamilyDashboard(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestFamilyDashboard_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_tracking.NewMockTrackingHandler(ctrl)
	h := tracking.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/family/dashboard?contact=%2B919812345678", nil)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		FamilyDashboard(gomock.Any(), "+919812345678").
		Return(domain.FamilyDashboard{ContactPhone: "+919812345678"}, nil).
		Times(1)

	h.FamilyDashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
}

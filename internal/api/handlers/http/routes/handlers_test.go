package routes_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"safewalk/internal/api/handlers/http/routes"
	mock_routes "safewalk/internal/api/handlers/http/routes/mocks"
	"safewalk/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestAnalyzeRoute_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_routes.NewMockRouteHandler(ctrl)
	h := routes.NewHandler(newTestLogger(), svc)

	reqBody := `{"start_lat":18.5204,"start_lng":73.8567,"end_lat":18.5362,"end_lng":73.8570}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/analyze", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantOrigin := domain.Coordinate{Lat: 18.5204, Lng: 73.8567}
	wantDest := domain.Coordinate{Lat: 18.5362, Lng: 73.8570}
	wantResp := domain.RouteAnalysis{
		SafetyAssessment: domain.SafetyAssessment{
			SafetyScore: 77,
			RouteType:   domain.RouteModerate,
			Features:    []string{"Daytime travel - safer"},
		},
		Distance:    "1.8 km",
		TimeMinutes: 21,
		Time:        "21 min",
	}

	svc.EXPECT().
		AnalyzeRoute(gomock.Any(), wantOrigin, wantDest).
		Return(wantResp, nil).
		Times(1)

	h.AnalyzeRoute(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.RouteAnalysis](t, rr)
	if got.SafetyScore != 77 || got.RouteType != domain.RouteModerate {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestAnalyzeRoute_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_routes.NewMockRouteHandler(ctrl)
	h := routes.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/analyze", bytes.NewBufferString(`{"start_lat":`))
	rr := httptest.NewRecorder()

	h.AnalyzeRoute(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAnalyzeRoute_OutOfRangeCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_routes.NewMockRouteHandler(ctrl)
	h := routes.NewHandler(newTestLogger(), svc)

	reqBody := `{"start_lat":118.5,"start_lng":73.85,"end_lat":18.53,"end_lng":73.85}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/analyze", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AnalyzeRoute(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAnalyzeRoute_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_routes.NewMockRouteHandler(ctrl)
	h := routes.NewHandler(newTestLogger(), svc)

	reqBody := `{"start_lat":18.5204,"start_lng":73.8567,"end_lat":18.5362,"end_lng":73.8570}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/analyze", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		AnalyzeRoute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.RouteAnalysis{}, errors.New("boom")).
		Times(1)

	h.AnalyzeRoute(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestForecastSafety_PassesHours(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_routes.NewMockRouteHandler(ctrl)
	h := routes.NewHandler(newTestLogger(), svc)

	reqBody := `{"lat":18.5204,"lng":73.8567,"hours":6}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/forecast", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		ForecastSafety(gomock.Any(), domain.Coordinate{Lat: 18.5204, Lng: 73.8567}, 6).
		Return([]domain.ForecastEntry{{Hour: 12, SafetyScore: 57}}, nil).
		Times(1)

	h.ForecastSafety(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string][]domain.ForecastEntry](t, rr)
	if len(got["forecast"]) != 1 || got["forecast"][0].Hour != 12 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safewalk/internal/domain"
	"safewalk/internal/service"

	mock_service "safewalk/internal/service/mocks"
)

const adminPhone = "+919902480636"

func TestReportIncident_SavesWithGeneratedID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	dispatcher := mock_service.NewMockNotificationDispatcher(ctrl)
	svc := service.NewReportService(newTestLogger(), repo, dispatcher, adminPhone)

	var saved domain.IncidentReport
	repo.EXPECT().SaveIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r domain.IncidentReport) error {
			saved = r
			return nil
		}).Times(1)

	got, err := svc.ReportIncident(context.Background(), domain.ReportIncidentRequest{
		Type:     "harassment",
		Location: "FC Road",
		Details:  "group loitering",
	})
	if err != nil {
		t.Fatalf("ReportIncident: %v", err)
	}
	if got.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if saved.ID != got.ID || saved.Type != "harassment" {
		t.Fatalf("saved row mismatch: %+v", saved)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}
}

func TestReportIncident_RepoErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	dispatcher := mock_service.NewMockNotificationDispatcher(ctrl)
	svc := service.NewReportService(newTestLogger(), repo, dispatcher, adminPhone)

	repo.EXPECT().SaveIncident(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	_, err := svc.ReportIncident(context.Background(), domain.ReportIncidentRequest{Type: "theft"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestListReports_ClampsLimit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	dispatcher := mock_service.NewMockNotificationDispatcher(ctrl)
	svc := service.NewReportService(newTestLogger(), repo, dispatcher, adminPhone)

	repo.EXPECT().ListAreaReports(gomock.Any(), 50).Return(nil, nil).Times(2)

	if _, err := svc.ListReports(context.Background(), 0); err != nil {
		t.Fatalf("ListReports(0): %v", err)
	}
	if _, err := svc.ListReports(context.Background(), 5000); err != nil {
		t.Fatalf("ListReports(5000): %v", err)
	}
}

func TestEmergency_NotifiesAdminAndSaves(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	dispatcher := mock_service.NewMockNotificationDispatcher(ctrl)
	svc := service.NewReportService(newTestLogger(), repo, dispatcher, adminPhone)

	loc := domain.Coordinate{Lat: 18.5204, Lng: 73.8567}

	var sentMsg string
	dispatcher.EXPECT().Send(gomock.Any(), adminPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, msg string) bool {
			sentMsg = msg
			return true
		}).Times(1)

	var saved domain.EmergencyAlert
	repo.EXPECT().SaveEmergency(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a domain.EmergencyAlert) error {
			saved = a
			return nil
		}).Times(1)

	alert, err := svc.Emergency(context.Background(), loc)
	if err != nil {
		t.Fatalf("Emergency: %v", err)
	}
	if !alert.AdminNotified {
		t.Fatalf("expected admin_notified=true")
	}
	if !strings.Contains(sentMsg, "Call 100 (Police) or 108 (Emergency)") {
		t.Fatalf("message missing helpline text: %q", sentMsg)
	}
	if saved.Location != loc {
		t.Fatalf("saved alert mismatch: %+v", saved)
	}
}

func TestEmergency_SavesEvenWhenDeliveryFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	dispatcher := mock_service.NewMockNotificationDispatcher(ctrl)
	svc := service.NewReportService(newTestLogger(), repo, dispatcher, adminPhone)

	dispatcher.EXPECT().Send(gomock.Any(), adminPhone, gomock.Any()).Return(false).Times(1)
	repo.EXPECT().SaveEmergency(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	alert, err := svc.Emergency(context.Background(), domain.Coordinate{Lat: 18.5, Lng: 73.85})
	if err != nil {
		t.Fatalf("Emergency: %v", err)
	}
	if alert.AdminNotified {
		t.Fatalf("expected admin_notified=false")
	}
}

func TestStats_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReportRepository(ctrl)
	dispatcher := mock_service.NewMockNotificationDispatcher(ctrl)
	svc := service.NewReportService(newTestLogger(), repo, dispatcher, adminPhone)

	want := domain.AdminStats{EmergencyAlerts: 2, Incidents: 5, Reviews: 1, Reports: 3, Journeys: 7}
	repo.EXPECT().Stats(gomock.Any()).Return(want, nil).Times(1)

	got, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

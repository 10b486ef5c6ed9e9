package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"activitydesk/internal/domain"
)

type mockEventService struct {
	event *domain.Event
	err   error
}

func (m *mockEventService) GetFirstEvent(ctx context.Context) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) IsCurrentEventActive(ctx context.Context) (bool, error) {
	return m.err == nil, m.err
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		svc        *mockEventService
		wantStatus int
	}{
		{"success", &mockEventService{event: &domain.Event{ID: 1, Title: "Unite Summit"}}, http.StatusOK},
		{"not found", &mockEventService{err: domain.ErrNotFound}, http.StatusNotFound},
		{"internal error", &mockEventService{err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(testLogger(), tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/event", nil)
			w := httptest.NewRecorder()

			ctrl.GetEvent(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var resp GetEventSuccessResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.Data == nil || resp.Data.Title != "Unite Summit" {
				t.Fatalf("unexpected event: %+v", resp.Data)
			}
		})
	}
}

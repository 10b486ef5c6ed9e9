package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"activitydesk/internal/domain"
)

type mockEventRepository struct {
	event *domain.Event
	err   error
	calls int
}

func (m *mockEventRepository) FindFirst(ctx context.Context) (*domain.Event, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.event == nil {
		return nil, domain.ErrNotFound
	}
	return m.event, nil
}

type mockEventCache struct {
	event    *domain.Event
	getErr   error
	setErr   error
	setCalls int
}

func (m *mockEventCache) Get(ctx context.Context) (*domain.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.event == nil {
		return nil, domain.ErrNotFound
	}
	return m.event, nil
}

func (m *mockEventCache) Set(ctx context.Context, event *domain.Event) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.event = event
	return nil
}

func TestEventService_GetFirstEvent_cacheHit(t *testing.T) {
	repo := &mockEventRepository{event: &domain.Event{ID: 1, Title: "Unite Summit"}}
	cache := &mockEventCache{event: &domain.Event{ID: 1, Title: "Unite Summit"}}
	svc := NewEventService(repo, cache)

	event, err := svc.GetFirstEvent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Title != "Unite Summit" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if repo.calls != 0 {
		t.Fatalf("repository should not be hit on a cache hit, got %d calls", repo.calls)
	}
}

func TestEventService_GetFirstEvent_cacheMissFillsCache(t *testing.T) {
	repo := &mockEventRepository{event: &domain.Event{ID: 1, Title: "Unite Summit"}}
	cache := &mockEventCache{}
	svc := NewEventService(repo, cache)

	event, err := svc.GetFirstEvent(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ID != 1 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 repository call, got %d", repo.calls)
	}
	if cache.setCalls != 1 {
		t.Fatalf("expected cache to be filled once, got %d", cache.setCalls)
	}
}

func TestEventService_GetFirstEvent_cacheFailureFallsThrough(t *testing.T) {
	repo := &mockEventRepository{event: &domain.Event{ID: 1, Title: "Unite Summit"}}
	cache := &mockEventCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewEventService(repo, cache)

	event, err := svc.GetFirstEvent(context.Background())
	if err != nil {
		t.Fatalf("cache failure should not surface: %v", err)
	}
	if event.ID != 1 {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestEventService_GetFirstEvent_notFound(t *testing.T) {
	svc := NewEventService(&mockEventRepository{}, nil)

	_, err := svc.GetFirstEvent(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected %v, got %v", domain.ErrNotFound, err)
	}
}

func TestEventService_IsCurrentEventActive(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		event *domain.Event
		want  bool
	}{
		{"in window", &domain.Event{ID: 1, StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)}, true},
		{"not started", &domain.Event{ID: 1, StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour)}, false},
		{"already over", &domain.Event{ID: 1, StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(-time.Hour)}, false},
		{"no event", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(&mockEventRepository{event: tt.event}, nil)
			active, err := svc.IsCurrentEventActive(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if active != tt.want {
				t.Fatalf("expected active=%v, got %v", tt.want, active)
			}
		})
	}
}

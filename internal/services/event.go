package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"activitydesk/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
	cache     domain.EventCache
}

// NewEventService creates an EventService backed by the given repository and
// cache. cache may be nil, in which case every read hits the repository.
func NewEventService(eventRepo domain.EventRepository, cache domain.EventCache) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		cache:     cache,
	}
}

func (s *eventService) GetFirstEvent(ctx context.Context) (*domain.Event, error) {
	if s.cache != nil {
		event, err := s.cache.Get(ctx)
		if err == nil {
			return event, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			// Cache trouble must not take the endpoint down.
			log.Printf("[CACHE] get event: %v", err)
		}
	}

	event, err := s.eventRepo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, event); err != nil {
			log.Printf("[CACHE] set event: %v", err)
		}
	}
	return event, nil
}

func (s *eventService) IsCurrentEventActive(ctx context.Context) (bool, error) {
	event, err := s.GetFirstEvent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	now := time.Now()
	return now.After(event.StartsAt) && now.Before(event.EndsAt), nil
}

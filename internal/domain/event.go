package domain

import (
	"context"
	"time"
)

// Event represents the conference event record. The application serves a
// single event; reads go through a TTL cache.
type Event struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	BackgroundImageURL string    `json:"background_image_url"`
	LogoImageURL       string    `json:"logo_image_url"`
	StartsAt           time.Time `json:"starts_at"`
	EndsAt             time.Time `json:"ends_at"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	FindFirst(ctx context.Context) (*Event, error)
}

// EventCache caches the event record with a TTL. Get returns ErrNotFound on a
// cache miss.
type EventCache interface {
	Get(ctx context.Context) (*Event, error)
	Set(ctx context.Context, event *Event) error
}

// EventService exposes the event record to the HTTP layer.
type EventService interface {
	GetFirstEvent(ctx context.Context) (*Event, error)
	IsCurrentEventActive(ctx context.Context) (bool, error)
}

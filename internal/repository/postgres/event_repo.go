package postgres

import (
	"context"
	"database/sql"
	"errors"

	"activitydesk/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) FindFirst(ctx context.Context) (*domain.Event, error) {
	query := `
		SELECT id, title, background_image_url, logo_image_url, starts_at, ends_at
		FROM events
		ORDER BY id
		LIMIT 1
	`
	event := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query).
		Scan(&event.ID, &event.Title, &event.BackgroundImageURL, &event.LogoImageURL, &event.StartsAt, &event.EndsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

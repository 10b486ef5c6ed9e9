package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"activitydesk/internal/domain"
)

type activityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{
		DB: db,
	}
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	query := `
		SELECT id, name, place_id, starts_at, ends_at, created_at, updated_at
		FROM activities
		WHERE id = $1
	`
	activity := &domain.Activity{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&activity.ID, &activity.Name, &activity.PlaceID, &activity.StartsAt, &activity.EndsAt, &activity.CreatedAt, &activity.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (r *activityRepository) ListByDayRange(ctx context.Context, start, end time.Time) ([]*domain.Activity, error) {
	query := `
		SELECT id, name, place_id, starts_at, ends_at, created_at, updated_at
		FROM activities
		WHERE starts_at >= $1 AND starts_at < $2
		ORDER BY starts_at
	`
	rows, err := r.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		activity := &domain.Activity{}
		if err := rows.Scan(&activity.ID, &activity.Name, &activity.PlaceID, &activity.StartsAt, &activity.EndsAt, &activity.CreatedAt, &activity.UpdatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []*domain.Activity{}
	}
	return activities, nil
}

func (r *activityRepository) ListDistinctStartDates(ctx context.Context) ([]time.Time, error) {
	query := `
		SELECT DISTINCT starts_at
		FROM activities
		ORDER BY starts_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var starts []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		starts = append(starts, t)
	}
	return starts, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"activitydesk/internal/domain"
)

type placeRepository struct {
	DB *sql.DB
}

func NewPlaceRepository(db *sql.DB) domain.PlaceRepository {
	return &placeRepository{
		DB: db,
	}
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `
		SELECT id, name, capacity
		FROM places
		WHERE id = $1
	`
	place := &domain.Place{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&place.ID, &place.Name, &place.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return place, nil
}

func (r *placeRepository) ListWithActivitiesOnDate(ctx context.Context, start, end time.Time) ([]*domain.PlaceWithActivities, error) {
	// Every place appears, even without activities in the window; the LEFT
	// JOIN keeps the activity columns NULL in that case.
	query := `
		SELECT p.id, p.name, p.capacity,
			a.id, a.name, a.place_id, a.starts_at, a.ends_at,
			(SELECT COUNT(*) FROM activity_enrollments e WHERE e.activity_id = a.id)
		FROM places p
		LEFT JOIN activities a ON a.place_id = p.id AND a.starts_at >= $1 AND a.starts_at < $2
		ORDER BY p.id, a.starts_at
	`
	rows, err := r.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []*domain.PlaceWithActivities
	byID := make(map[int64]*domain.PlaceWithActivities)
	for rows.Next() {
		var (
			placeID       int64
			placeName     string
			placeCapacity int
			actID         sql.NullInt64
			actName       sql.NullString
			actPlaceID    sql.NullInt64
			actStartsAt   sql.NullTime
			actEndsAt     sql.NullTime
			count         sql.NullInt64
		)
		if err := rows.Scan(&placeID, &placeName, &placeCapacity, &actID, &actName, &actPlaceID, &actStartsAt, &actEndsAt, &count); err != nil {
			return nil, err
		}

		place, ok := byID[placeID]
		if !ok {
			place = &domain.PlaceWithActivities{
				Place: domain.Place{
					ID:       placeID,
					Name:     placeName,
					Capacity: placeCapacity,
				},
				Activities: []*domain.ActivityWithCount{},
			}
			byID[placeID] = place
			places = append(places, place)
		}

		if actID.Valid {
			place.Activities = append(place.Activities, &domain.ActivityWithCount{
				Activity: domain.Activity{
					ID:       actID.Int64,
					Name:     actName.String,
					PlaceID:  actPlaceID.Int64,
					StartsAt: actStartsAt.Time,
					EndsAt:   actEndsAt.Time,
				},
				EnrollmentCount: int(count.Int64),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if places == nil {
		places = []*domain.PlaceWithActivities{}
	}
	return places, nil
}

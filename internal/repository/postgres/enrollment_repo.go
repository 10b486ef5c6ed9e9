package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"activitydesk/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type enrollmentRepository struct {
	DB *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{
		DB: db,
	}
}

// Create inserts the enrollment only while the activity's place still has
// spots. The capacity check and the insert are a single statement, so two
// racing subscribes cannot oversell; the unique index on (user_id, activity_id)
// rejects a racing duplicate.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
		INSERT INTO activity_enrollments (user_id, activity_id, created_at, updated_at)
		SELECT $1, $2, $3, $4
		WHERE (SELECT COUNT(*) FROM activity_enrollments WHERE activity_id = $2)
			< (SELECT p.capacity FROM places p JOIN activities a ON a.place_id = p.id WHERE a.id = $2)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, enrollment.UserID, enrollment.ActivityID, enrollment.CreatedAt, enrollment.UpdatedAt).
		Scan(&enrollment.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFullCapacity
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

func (r *enrollmentRepository) CountByActivity(ctx context.Context, activityID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM activity_enrollments
		WHERE activity_id = $1
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, activityID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *enrollmentRepository) GetByUserAndActivity(ctx context.Context, userID, activityID int64) (*domain.Enrollment, error) {
	query := `
		SELECT id, user_id, activity_id, created_at, updated_at
		FROM activity_enrollments
		WHERE user_id = $1 AND activity_id = $2
	`
	enrollment := &domain.Enrollment{}
	err := r.DB.QueryRowContext(ctx, query, userID, activityID).
		Scan(&enrollment.ID, &enrollment.UserID, &enrollment.ActivityID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (r *enrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.EnrollmentWithActivity, error) {
	query := `
		SELECT e.id, e.user_id, e.activity_id, e.created_at, e.updated_at,
			a.id, a.name, a.place_id, a.starts_at, a.ends_at, a.created_at, a.updated_at
		FROM activity_enrollments e
		JOIN activities a ON a.id = e.activity_id
		WHERE e.user_id = $1
		ORDER BY a.starts_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.EnrollmentWithActivity
	for rows.Next() {
		enrollment := &domain.Enrollment{}
		activity := &domain.Activity{}
		if err := rows.Scan(
			&enrollment.ID, &enrollment.UserID, &enrollment.ActivityID, &enrollment.CreatedAt, &enrollment.UpdatedAt,
			&activity.ID, &activity.Name, &activity.PlaceID, &activity.StartsAt, &activity.EndsAt, &activity.CreatedAt, &activity.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &domain.EnrollmentWithActivity{
			Enrollment: enrollment,
			Activity:   activity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if result == nil {
		result = []*domain.EnrollmentWithActivity{}
	}
	return result, nil
}

func (r *enrollmentRepository) DeleteByUserAndActivity(ctx context.Context, userID, activityID int64) error {
	query := `
		DELETE FROM activity_enrollments
		WHERE user_id = $1 AND activity_id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, userID, activityID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package domain

import (
	"context"
	"time"
)

// Enrollment represents a user's registration for one activity. A user holds
// at most one enrollment per activity.
type Enrollment struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ActivityID int64     `json:"activity_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEnrollment returns a new Enrollment. ID is set by the repository on create.
func NewEnrollment(userID, activityID int64, createdAt, updatedAt time.Time) *Enrollment {
	return &Enrollment{
		UserID:     userID,
		ActivityID: activityID,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// EnrollmentWithActivity bundles an enrollment with its activity, for time
// conflict checks.
type EnrollmentWithActivity struct {
	Enrollment *Enrollment `json:"enrollment"`
	Activity   *Activity   `json:"activity"`
}

// EnrollmentRepository defines storage operations for activity enrollments.
//
// Create must be atomic with respect to concurrent callers: it only inserts
// while the activity's place still has spots and no enrollment exists for the
// same (user, activity) pair, returning ErrFullCapacity or ErrAlreadySubscribed
// otherwise.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *Enrollment) error
	CountByActivity(ctx context.Context, activityID int64) (int, error)
	GetByUserAndActivity(ctx context.Context, userID, activityID int64) (*Enrollment, error)
	ListByUser(ctx context.Context, userID int64) ([]*EnrollmentWithActivity, error)
	DeleteByUserAndActivity(ctx context.Context, userID, activityID int64) error
}

package domain

import (
	"context"
	"time"
)

// Activity represents a scheduled session at the event, hosted at one place.
// Activities are created by seeding and are immutable afterwards.
type Activity struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PlaceID   int64     `json:"place_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Overlaps reports whether the activity's [StartsAt, EndsAt) window overlaps
// other's. Half-open intervals: windows that only touch at a boundary do not
// overlap.
func (a *Activity) Overlaps(other *Activity) bool {
	return a.StartsAt.Before(other.EndsAt) && a.EndsAt.After(other.StartsAt)
}

// Place represents a physical venue with an attendance capacity.
// Capacity limits enrollments per activity hosted at the place.
type Place struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ActivityWithCount is an activity joined with its current enrollment count.
type ActivityWithCount struct {
	Activity
	EnrollmentCount int `json:"enrollment_count"`
}

// PlaceWithActivities is a place with its activities on a given day, each
// carrying an enrollment count.
type PlaceWithActivities struct {
	Place
	Activities []*ActivityWithCount `json:"activities"`
}

// ActivityView is an activity formatted for listing: clock times and the
// calendar date as strings.
type ActivityView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	PlaceID  int64  `json:"place_id"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
	Date     string `json:"date"`
}

// ActivityDay is a distinct calendar day that has at least one activity.
type ActivityDay struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// PlaceActivityView is an activity nested under a place view, with the number
// of spots still available.
type PlaceActivityView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PlaceID        int64  `json:"place_id"`
	StartsAt       string `json:"starts_at"`
	EndsAt         string `json:"ends_at"`
	SpotsAvailable int    `json:"spots_available"`
}

// PlaceView is a place with its formatted activities on a given day.
type PlaceView struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Activities []*PlaceActivityView `json:"activities"`
}

// ActivityRepository defines the interface for activity storage
type ActivityRepository interface {
	GetByID(ctx context.Context, id int64) (*Activity, error)
	// ListByDayRange returns activities whose StartsAt falls in [start, end).
	ListByDayRange(ctx context.Context, start, end time.Time) ([]*Activity, error)
	// ListDistinctStartDates returns the distinct StartsAt values of all
	// activities, in insertion order.
	ListDistinctStartDates(ctx context.Context) ([]time.Time, error)
}

// PlaceRepository defines the interface for place storage
type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*Place, error)
	// ListWithActivitiesOnDate returns every place together with its
	// activities starting in [start, end), each with an enrollment count.
	ListWithActivitiesOnDate(ctx context.Context, start, end time.Time) ([]*PlaceWithActivities, error)
}

// ActivityService defines the subscription engine and the formatted activity
// queries exposed to the HTTP layer.
type ActivityService interface {
	Subscribe(ctx context.Context, userID, activityID int64) (*Enrollment, error)
	Unsubscribe(ctx context.Context, userID, activityID int64) error
	ListByDate(ctx context.Context, userID int64, date string) ([]*ActivityView, error)
	ListDays(ctx context.Context, userID int64) ([]*ActivityDay, error)
	ListPlacesByDate(ctx context.Context, userID int64, date string) ([]*PlaceView, error)
}

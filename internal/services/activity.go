package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"activitydesk/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type activityService struct {
	ticketRepo     domain.TicketRepository
	activityRepo   domain.ActivityRepository
	placeRepo      domain.PlaceRepository
	enrollmentRepo domain.EnrollmentRepository
	userRepo       domain.UserRepository
	email          domain.EmailService
}

// NewActivityService creates an ActivityService with the given repositories.
// userRepo and email may be nil, in which case no confirmation emails are sent.
func NewActivityService(
	ticketRepo domain.TicketRepository,
	activityRepo domain.ActivityRepository,
	placeRepo domain.PlaceRepository,
	enrollmentRepo domain.EnrollmentRepository,
	userRepo domain.UserRepository,
	email domain.EmailService,
) domain.ActivityService {
	return &activityService{
		ticketRepo:     ticketRepo,
		activityRepo:   activityRepo,
		placeRepo:      placeRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		email:          email,
	}
}

func (s *activityService) Subscribe(ctx context.Context, userID, activityID int64) (*domain.Enrollment, error) {
	if userID <= 0 || activityID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := s.checkActivityAccess(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.enrollmentRepo.GetByUserAndActivity(ctx, userID, activityID); err == nil {
		return nil, domain.ErrAlreadySubscribed
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}

	place, err := s.placeRepo.GetByID(ctx, activity.PlaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get place: %w", err)
	}
	count, err := s.enrollmentRepo.CountByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}
	if count >= place.Capacity {
		return nil, domain.ErrFullCapacity
	}

	enrolled, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user enrollments: %w", err)
	}
	for _, e := range enrolled {
		if activity.Overlaps(e.Activity) {
			return nil, domain.ErrTimeConflict
		}
	}

	// The create is conditional at the store level, so a concurrent subscribe
	// that won the race surfaces here even though the checks above passed.
	now := time.Now()
	enrollment := domain.NewEnrollment(userID, activityID, now, now)
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) || errors.Is(err, domain.ErrFullCapacity) {
			return nil, err
		}
		return nil, fmt.Errorf("create enrollment: %w", err)
	}

	s.sendConfirmation(userID, activity)
	return enrollment, nil
}

func (s *activityService) Unsubscribe(ctx context.Context, userID, activityID int64) error {
	if userID <= 0 || activityID <= 0 {
		return domain.ErrInvalidInput
	}
	if err := s.checkActivityAccess(ctx, userID); err != nil {
		return err
	}

	enrollment, err := s.enrollmentRepo.GetByUserAndActivity(ctx, userID, activityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get enrollment: %w", err)
	}
	if enrollment.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.enrollmentRepo.DeleteByUserAndActivity(ctx, userID, activityID); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}

func (s *activityService) ListByDate(ctx context.Context, userID int64, date string) ([]*domain.ActivityView, error) {
	if date == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.checkActivityAccess(ctx, userID); err != nil {
		return nil, err
	}
	dayStart, dayEnd, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.ListByDayRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	views := make([]*domain.ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, &domain.ActivityView{
			ID:       a.ID,
			Name:     a.Name,
			PlaceID:  a.PlaceID,
			StartsAt: a.StartsAt.Format(clockLayout),
			EndsAt:   a.EndsAt.Format(clockLayout),
			Date:     a.StartsAt.Format(dateLayout),
		})
	}
	return views, nil
}

func (s *activityService) ListDays(ctx context.Context, userID int64) ([]*domain.ActivityDay, error) {
	if err := s.checkActivityAccess(ctx, userID); err != nil {
		return nil, err
	}

	starts, err := s.activityRepo.ListDistinctStartDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list start dates: %w", err)
	}

	// Dedupe by calendar date, keeping first-seen order.
	seen := make(map[string]struct{})
	days := make([]*domain.ActivityDay, 0, len(starts))
	for _, t := range starts {
		date := t.Format(dateLayout)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		days = append(days, &domain.ActivityDay{
			Date:    date,
			Weekday: weekdayNamePT(t),
		})
	}
	return days, nil
}

func (s *activityService) ListPlacesByDate(ctx context.Context, userID int64, date string) ([]*domain.PlaceView, error) {
	if date == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.checkActivityAccess(ctx, userID); err != nil {
		return nil, err
	}
	dayStart, dayEnd, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	places, err := s.placeRepo.ListWithActivitiesOnDate(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	views := make([]*domain.PlaceView, 0, len(places))
	for _, p := range places {
		view := &domain.PlaceView{
			ID:         p.ID,
			Name:       p.Name,
			Activities: make([]*domain.PlaceActivityView, 0, len(p.Activities)),
		}
		for _, a := range p.Activities {
			view.Activities = append(view.Activities, &domain.PlaceActivityView{
				ID:             a.ID,
				Name:           a.Name,
				PlaceID:        a.PlaceID,
				StartsAt:       a.StartsAt.Format(clockLayout),
				EndsAt:         a.EndsAt.Format(clockLayout),
				SpotsAvailable: p.Capacity - a.EnrollmentCount,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// checkActivityAccess verifies the user's ticket grants access to activities:
// the ticket must exist, be paid, be in-person, and include hotel.
func (s *activityService) checkActivityAccess(ctx context.Context, userID int64) error {
	ticket, err := s.ticketRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get ticket: %w", err)
	}
	if ticket.Status != domain.TicketStatusPaid {
		return domain.ErrForbidden
	}

	ticketType, err := s.ticketRepo.GetTypeByID(ctx, ticket.TicketTypeID)
	if err != nil {
		return fmt.Errorf("get ticket type: %w", err)
	}
	if ticketType.IsRemote || !ticketType.IncludesHotel {
		return domain.ErrForbidden
	}
	return nil
}

// sendConfirmation sends the enrollment confirmation email in the background.
// Failures are logged, never returned: the enrollment is already committed.
func (s *activityService) sendConfirmation(userID int64, activity *domain.Activity) {
	if s.email == nil || s.userRepo == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			log.Printf("[EMAIL] skip enrollment confirmation, get user %d: %v", userID, err)
			return
		}
		data := &domain.EnrollmentConfirmationEmailData{
			Email:        user.Email,
			Name:         user.Name,
			ActivityName: activity.Name,
			Date:         activity.StartsAt.Format(dateLayout),
			StartsAt:     activity.StartsAt.Format(clockLayout),
			EndsAt:       activity.EndsAt.Format(clockLayout),
		}
		if err := s.email.SendEnrollmentConfirmation(ctx, data); err != nil {
			log.Printf("[EMAIL] enrollment confirmation to %s: %v", user.Email, err)
		}
	}()
}

// parseDay parses a YYYY-MM-DD date and returns the half-open day window
// [start, end).
func parseDay(date string) (time.Time, time.Time, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return day, day.AddDate(0, 0, 1), nil
}

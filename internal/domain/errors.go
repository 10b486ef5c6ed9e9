package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps each of these to
// a stable status code; anything else is treated as an internal error.
var (
	// ErrInvalidInput is returned when the request is malformed (missing date,
	// non-positive identifier, unparsable date).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the user's ticket does not grant access to
	// activities (not paid, remote, or hotel not included).
	ErrForbidden = errors.New("forbidden")

	// ErrFullCapacity is returned when an activity has no spots left at its place.
	ErrFullCapacity = errors.New("activity already has full capacity")

	// ErrAlreadySubscribed is returned on a duplicate subscription attempt.
	ErrAlreadySubscribed = errors.New("already subscribed to activity")

	// ErrTimeConflict is returned when the target activity overlaps one the
	// user is already subscribed to.
	ErrTimeConflict = errors.New("activity time conflict")
)

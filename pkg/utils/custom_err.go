package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTripNotFound       = errors.New("trip not found")
	ErrNotTripOwner       = errors.New("not the trip owner")
	ErrInvalidDateRange   = errors.New("end date is before start date")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidBudget      = errors.New("budget must not be negative")
	ErrInvalidDeparture   = errors.New("invalid departure datetime")
	ErrInvalidSeats       = errors.New("seats must be at least 1")
	ErrCarpoolFields      = errors.New("from, to, and departure are required")
	ErrRequestNotFound    = errors.New("trip request not found")
	ErrOwnTripRequest     = errors.New("cannot request to join your own trip")
	ErrDuplicateRequest   = errors.New("a pending request already exists")
	ErrRequestNotPending  = errors.New("trip request is not pending")
	ErrDatabaseError      = errors.New("database error")
)

package usecase

import "errors"

// Sentinel errors for business rule failures. Handlers map these to HTTP
// statuses and machine-readable kinds with errors.Is, so the wording here
// is what API clients ultimately see.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidTimeSlot    = errors.New("invalid time slot")
	ErrInvalidDate        = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrPastDate           = errors.New("appointment date is in the past")
	ErrSlotAlreadyBooked  = errors.New("this time slot is already booked for the selected service")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductUnavailable = errors.New("product not available")
)

package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOccupancy wraps ErrInvalidInput so callers matching either
	// sentinel treat it as a validation failure.
	ErrInvalidOccupancy = fmt.Errorf("%w: occupancy rate must be between 0 and 1", ErrInvalidInput)
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInviteInvalid      = errors.New("invite token invalid or expired")
	ErrDatabaseError      = errors.New("database error")
)

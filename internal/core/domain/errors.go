package domain

import (
	"errors"
)

// Sentinel errors returned by the core. Each operation failure maps to
// exactly one of these; callers discriminate with errors.Is.
var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrDuplicateTripID   = errors.New("trip ID already in use")
	ErrDuplicateTicketID = errors.New("ticket ID already in use")
	ErrSeatOutOfRange    = errors.New("seat number out of range")
	ErrSeatOccupied      = errors.New("seat already occupied")
	ErrInvalidResize     = errors.New("cannot shrink seats below sold count")
	ErrNoSeatsAvailable  = errors.New("no seats available")
	ErrCapacityExceeded  = errors.New("record limit reached")
	ErrInvalidField      = errors.New("invalid field value")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidSeatCount  = errors.New("invalid seat count")

	// ErrCorruptData marks a data file that exists but cannot be parsed.
	// It is fatal at startup: loading must never fall back to an empty
	// collection when the file is unreadable.
	ErrCorruptData = errors.New("corrupt data file")

	// ErrPersistenceFailed marks a failed flush to disk after the
	// in-memory mutation already happened. Memory and disk have diverged.
	ErrPersistenceFailed = errors.New("could not persist data")
)

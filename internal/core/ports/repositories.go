package ports

import (
	"github.com/busdesk/busdesk/internal/core/domain"
)

// TripStore holds every trip record, active and soft-deleted, in
// insertion order. Find methods return pointers into the store; the
// single-actor model lets services mutate records in place.
type TripStore interface {
	// InsertTrip appends a trip. It fails with ErrCapacityExceeded at
	// the store ceiling and ErrDuplicateTripID if an active trip with
	// the same ID already exists.
	InsertTrip(trip *domain.Trip) error
	// FindActiveTrip returns the active trip with the given ID or
	// ErrTripNotFound. Soft-deleted trips are invisible here.
	FindActiveTrip(id int) (*domain.Trip, error)
	// ListActiveTrips returns active trips in insertion order.
	ListActiveTrips() []*domain.Trip
	// AllTrips returns every record, for snapshots.
	AllTrips() []*domain.Trip
	// ReplaceTrips swaps in a freshly loaded collection.
	ReplaceTrips(trips []*domain.Trip)
}

// TicketStore holds every ticket record, active and cancelled, in
// insertion order.
type TicketStore interface {
	InsertTicket(ticket *domain.Ticket) error
	// FindActiveTicket returns the active ticket with the given ID or
	// ErrTicketNotFound. Cancelled tickets are invisible here.
	FindActiveTicket(id int) (*domain.Ticket, error)
	// TicketsForTrip returns every ticket referencing the trip,
	// cancelled ones included, in insertion order.
	TicketsForTrip(tripID int) []*domain.Ticket
	// ActiveTicketsForTrip returns only the active tickets for a trip.
	ActiveTicketsForTrip(tripID int) []*domain.Ticket
	// NextTicketID is one greater than the highest ID ever assigned,
	// cancelled tickets included, or 1 when no tickets exist.
	NextTicketID() int
	AllTickets() []*domain.Ticket
	ReplaceTickets(tickets []*domain.Ticket)
}

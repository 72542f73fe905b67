// Package memory holds the in-process record store. All trips and
// tickets live here for the life of the program; the flatfile adapter
// only sees whole collections at load and snapshot time.
package memory

import (
	"fmt"

	"github.com/busdesk/busdesk/internal/core/domain"
)

// Store implements ports.TripStore and ports.TicketStore over two
// append-only slices. Records are never removed, only flagged inactive,
// so insertion order doubles as the stable on-disk record order.
type Store struct {
	maxTrips   int
	maxTickets int
	trips      []*domain.Trip
	tickets    []*domain.Ticket
}

// New creates an empty store with the given record ceilings.
// A ceiling of zero or less means unbounded.
func New(maxTrips, maxTickets int) *Store {
	return &Store{maxTrips: maxTrips, maxTickets: maxTickets}
}

func (s *Store) InsertTrip(trip *domain.Trip) error {
	if s.maxTrips > 0 && len(s.trips) >= s.maxTrips {
		return fmt.Errorf("%w: %d trips", domain.ErrCapacityExceeded, s.maxTrips)
	}
	for _, t := range s.trips {
		if t.ID == trip.ID && t.Active {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateTripID, trip.ID)
		}
	}
	s.trips = append(s.trips, trip)
	return nil
}

func (s *Store) FindActiveTrip(id int) (*domain.Trip, error) {
	for _, t := range s.trips {
		if t.ID == id && t.Active {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", domain.ErrTripNotFound, id)
}

func (s *Store) ListActiveTrips() []*domain.Trip {
	var active []*domain.Trip
	for _, t := range s.trips {
		if t.Active {
			active = append(active, t)
		}
	}
	return active
}

func (s *Store) AllTrips() []*domain.Trip {
	return s.trips
}

func (s *Store) ReplaceTrips(trips []*domain.Trip) {
	s.trips = trips
}

func (s *Store) InsertTicket(ticket *domain.Ticket) error {
	if s.maxTickets > 0 && len(s.tickets) >= s.maxTickets {
		return fmt.Errorf("%w: %d tickets", domain.ErrCapacityExceeded, s.maxTickets)
	}
	for _, t := range s.tickets {
		if t.ID == ticket.ID && t.Active {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateTicketID, ticket.ID)
		}
	}
	s.tickets = append(s.tickets, ticket)
	return nil
}

func (s *Store) FindActiveTicket(id int) (*domain.Ticket, error) {
	for _, t := range s.tickets {
		if t.ID == id && t.Active {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", domain.ErrTicketNotFound, id)
}

func (s *Store) TicketsForTrip(tripID int) []*domain.Ticket {
	var out []*domain.Ticket
	for _, t := range s.tickets {
		if t.TripID == tripID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) ActiveTicketsForTrip(tripID int) []*domain.Ticket {
	var out []*domain.Ticket
	for _, t := range s.tickets {
		if t.TripID == tripID && t.Active {
			out = append(out, t)
		}
	}
	return out
}

// NextTicketID allocates monotonically over every ticket ever stored,
// cancelled ones included, so ticket IDs are never reused.
func (s *Store) NextTicketID() int {
	next := 1
	for _, t := range s.tickets {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

func (s *Store) AllTickets() []*domain.Ticket {
	return s.tickets
}

func (s *Store) ReplaceTickets(tickets []*domain.Ticket) {
	s.tickets = tickets
}

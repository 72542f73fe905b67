package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/busdesk/busdesk/internal/core/domain"
	"github.com/busdesk/busdesk/internal/core/ports"
)

// purchaseDateLayout matches the timestamp format carried in the
// ticket file: DD/MM/YYYY HH:MM:SS.
const purchaseDateLayout = "02/01/2006 15:04:05"

// TicketService owns selling and cancelling tickets, keeping each
// trip's AvailableSeats equal to its seat total minus its active
// ticket count at every commit point.
type TicketService struct {
	trips    ports.TripStore
	tickets  ports.TicketStore
	snap     ports.Snapshotter
	receipts ports.ReceiptWriter
	now      func() time.Time
}

// NewTicketService creates a new TicketService.
func NewTicketService(trips ports.TripStore, tickets ports.TicketStore, snap ports.Snapshotter, receipts ports.ReceiptWriter) *TicketService {
	return &TicketService{trips: trips, tickets: tickets, snap: snap, receipts: receipts, now: time.Now}
}

// SellTicketInput carries the seat choice and passenger details for a
// sale.
type SellTicketInput struct {
	TripID     int
	SeatNumber int
	Passenger  domain.Passenger
}

// Sell validates the sale against the trip, inserts the ticket with a
// freshly allocated ID and a price snapshot, decrements the trip's
// available seats, and persists both collections.
func (s *TicketService) Sell(ctx context.Context, in SellTicketInput) (*domain.Ticket, error) {
	trip, err := s.trips.FindActiveTrip(in.TripID)
	if err != nil {
		return nil, err
	}
	if trip.AvailableSeats <= 0 {
		return nil, fmt.Errorf("%w: trip %d", domain.ErrNoSeatsAvailable, trip.ID)
	}
	if in.SeatNumber < 1 || in.SeatNumber > trip.TotalSeats {
		return nil, fmt.Errorf("%w: seat %d, trip has seats 1-%d", domain.ErrSeatOutOfRange, in.SeatNumber, trip.TotalSeats)
	}
	for _, t := range s.tickets.ActiveTicketsForTrip(trip.ID) {
		if t.SeatNumber == in.SeatNumber {
			return nil, fmt.Errorf("%w: seat %d on trip %d", domain.ErrSeatOccupied, in.SeatNumber, trip.ID)
		}
	}
	if err := domain.ValidatePassenger(in.Passenger); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:           s.tickets.NextTicketID(),
		TripID:       trip.ID,
		SeatNumber:   in.SeatNumber,
		Passenger:    in.Passenger,
		Price:        trip.TicketPrice,
		PurchaseDate: s.now().Format(purchaseDateLayout),
		Active:       true,
	}
	if err := s.tickets.InsertTicket(ticket); err != nil {
		return nil, err
	}
	trip.AvailableSeats--

	if err := s.snap.SaveTickets(ctx, s.tickets.AllTickets()); err != nil {
		return ticket, fmt.Errorf("persist tickets: %w", err)
	}
	if err := s.snap.SaveTrips(ctx, s.trips.AllTrips()); err != nil {
		return ticket, fmt.Errorf("persist trips: %w", err)
	}
	return ticket, nil
}

// Cancel flips an active ticket to cancelled, frees its seat on the
// trip, and persists both collections. A cancelled ticket cannot be
// cancelled again; the lookup only sees active tickets.
func (s *TicketService) Cancel(ctx context.Context, ticketID int) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindActiveTicket(ticketID)
	if err != nil {
		return nil, err
	}
	trip, err := s.trips.FindActiveTrip(ticket.TripID)
	if err != nil {
		return nil, fmt.Errorf("trip for ticket %d: %w", ticketID, err)
	}

	ticket.Active = false
	trip.AvailableSeats++

	if err := s.snap.SaveTickets(ctx, s.tickets.AllTickets()); err != nil {
		return ticket, fmt.Errorf("persist tickets: %w", err)
	}
	if err := s.snap.SaveTrips(ctx, s.trips.AllTrips()); err != nil {
		return ticket, fmt.Errorf("persist trips: %w", err)
	}
	return ticket, nil
}

// Get returns the active ticket with the given ID.
func (s *TicketService) Get(ctx context.Context, id int) (*domain.Ticket, error) {
	return s.tickets.FindActiveTicket(id)
}

// ListForTrip returns the active tickets on a trip in insertion order.
func (s *TicketService) ListForTrip(ctx context.Context, tripID int) ([]*domain.Ticket, error) {
	return s.tickets.ActiveTicketsForTrip(tripID), nil
}

// Receipt writes the receipt file for an active ticket and returns its
// path.
func (s *TicketService) Receipt(ctx context.Context, ticketID int) (string, error) {
	ticket, err := s.tickets.FindActiveTicket(ticketID)
	if err != nil {
		return "", err
	}
	trip, err := s.trips.FindActiveTrip(ticket.TripID)
	if err != nil {
		return "", fmt.Errorf("trip for ticket %d: %w", ticketID, err)
	}
	return s.receipts.Write(ctx, ticket, trip)
}

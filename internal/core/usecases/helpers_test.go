package usecases_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/busdesk/busdesk/internal/adapters/memory"
	"github.com/busdesk/busdesk/internal/core/domain"
	"github.com/busdesk/busdesk/internal/core/usecases"
)

// --- Fake Snapshotter ---

type fakeSnapshot struct {
	saveTripsErr   error
	saveTicketsErr error
	tripSaves      int
	ticketSaves    int
}

func (f *fakeSnapshot) SaveTrips(ctx context.Context, trips []*domain.Trip) error {
	f.tripSaves++
	return f.saveTripsErr
}

func (f *fakeSnapshot) SaveTickets(ctx context.Context, tickets []*domain.Ticket) error {
	f.ticketSaves++
	return f.saveTicketsErr
}

func (f *fakeSnapshot) LoadTrips(ctx context.Context) ([]*domain.Trip, error) {
	return nil, nil
}

func (f *fakeSnapshot) LoadTickets(ctx context.Context) ([]*domain.Ticket, error) {
	return nil, nil
}

// --- Fake ReceiptWriter ---

type fakeReceipts struct {
	writes int
}

func (f *fakeReceipts) Write(ctx context.Context, ticket *domain.Ticket, trip *domain.Trip) (string, error) {
	f.writes++
	return fmt.Sprintf("receipt_ticket_%d.txt", ticket.ID), nil
}

// --- Fixture ---

type fixture struct {
	store    *memory.Store
	snap     *fakeSnapshot
	receipts *fakeReceipts
	trips    *usecases.TripService
	tickets  *usecases.TicketService
}

func newFixture() *fixture {
	store := memory.New(100, 500)
	snap := &fakeSnapshot{}
	receipts := &fakeReceipts{}
	return &fixture{
		store:    store,
		snap:     snap,
		receipts: receipts,
		trips:    usecases.NewTripService(store, store, snap, 50),
		tickets:  usecases.NewTicketService(store, store, snap, receipts),
	}
}

func (f *fixture) mustCreateTrip(t *testing.T, id, seats int, price string) *domain.Trip {
	t.Helper()
	trip, err := f.trips.Create(context.Background(), usecases.CreateTripInput{
		ID:              id,
		DeparturePoint:  "Istanbul",
		ArrivalPoint:    "Ankara",
		TripDate:        "15/09/2026",
		DepartureTime:   "09:30",
		BusLicensePlate: "34 ABC 123",
		DriverName:      "Mehmet Demir",
		TotalSeats:      seats,
		TicketPrice:     mustDecimal(t, price),
	})
	if err != nil {
		t.Fatalf("create trip %d: %v", id, err)
	}
	return trip
}

func (f *fixture) mustSell(t *testing.T, tripID, seat int) *domain.Ticket {
	t.Helper()
	ticket, err := f.tickets.Sell(context.Background(), usecases.SellTicketInput{
		TripID:     tripID,
		SeatNumber: seat,
		Passenger:  testPassenger(),
	})
	if err != nil {
		t.Fatalf("sell seat %d on trip %d: %v", seat, tripID, err)
	}
	return ticket
}

// checkSeatAccounting asserts that a trip's available seats equal its
// total minus its active ticket count.
func (f *fixture) checkSeatAccounting(t *testing.T, tripID int) {
	t.Helper()
	trip, err := f.store.FindActiveTrip(tripID)
	if err != nil {
		t.Fatalf("trip %d: %v", tripID, err)
	}
	active := len(f.store.ActiveTicketsForTrip(tripID))
	if got, want := trip.AvailableSeats, trip.TotalSeats-active; got != want {
		t.Fatalf("trip %d: available seats = %d, want %d (total %d, active tickets %d)",
			tripID, got, want, trip.TotalSeats, active)
	}
}

func testPassenger() domain.Passenger {
	return domain.Passenger{
		FullName:    "Ayse Yilmaz",
		IDNumber:    "12345678901",
		PhoneNumber: "+90 555 123 4567",
		Email:       "ayse@example.com",
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

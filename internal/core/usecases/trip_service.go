package usecases

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/busdesk/busdesk/internal/core/domain"
	"github.com/busdesk/busdesk/internal/core/ports"
)

// TripService owns the trip lifecycle: creation, field updates, the
// seat-resize policy, and soft deletion with its ticket cascade. Every
// mutating method runs validate, mutate, persist, in that order; a
// validation failure leaves no partial state behind.
type TripService struct {
	trips    ports.TripStore
	tickets  ports.TicketStore
	snap     ports.Snapshotter
	maxSeats int
}

// NewTripService creates a new TripService. maxSeats bounds TotalSeats
// on creation and resize.
func NewTripService(trips ports.TripStore, tickets ports.TicketStore, snap ports.Snapshotter, maxSeats int) *TripService {
	return &TripService{trips: trips, tickets: tickets, snap: snap, maxSeats: maxSeats}
}

// CreateTripInput carries the operator-entered fields for a new trip.
type CreateTripInput struct {
	ID              int
	DeparturePoint  string
	ArrivalPoint    string
	TripDate        string
	DepartureTime   string
	BusLicensePlate string
	DriverName      string
	TotalSeats      int
	TicketPrice     decimal.Decimal
}

// Create validates the input, inserts the trip with all seats
// available, and persists the trip collection.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (*domain.Trip, error) {
	texts := []struct {
		name  string
		value string
	}{
		{"departure point", in.DeparturePoint},
		{"arrival point", in.ArrivalPoint},
		{"trip date", in.TripDate},
		{"departure time", in.DepartureTime},
		{"bus license plate", in.BusLicensePlate},
		{"driver name", in.DriverName},
	}
	for _, f := range texts {
		if err := domain.ValidateField(f.name, f.value); err != nil {
			return nil, err
		}
	}
	if in.TotalSeats < 1 || in.TotalSeats > s.maxSeats {
		return nil, fmt.Errorf("%w: must be between 1 and %d", domain.ErrInvalidSeatCount, s.maxSeats)
	}
	if err := domain.ValidatePrice(in.TicketPrice); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		ID:              in.ID,
		DeparturePoint:  in.DeparturePoint,
		ArrivalPoint:    in.ArrivalPoint,
		TripDate:        in.TripDate,
		DepartureTime:   in.DepartureTime,
		BusLicensePlate: in.BusLicensePlate,
		DriverName:      in.DriverName,
		TotalSeats:      in.TotalSeats,
		AvailableSeats:  in.TotalSeats,
		TicketPrice:     in.TicketPrice,
		Active:          true,
	}
	if err := s.trips.InsertTrip(trip); err != nil {
		return nil, err
	}
	if err := s.saveTrips(ctx); err != nil {
		return trip, err
	}
	return trip, nil
}

// Get returns the active trip with the given ID.
func (s *TripService) Get(ctx context.Context, id int) (*domain.Trip, error) {
	return s.trips.FindActiveTrip(id)
}

// List returns active trips in insertion order.
func (s *TripService) List(ctx context.Context) ([]*domain.Trip, error) {
	return s.trips.ListActiveTrips(), nil
}

// TripField names an updatable free-text field of a trip.
type TripField int

const (
	FieldDeparturePoint TripField = iota + 1
	FieldArrivalPoint
	FieldTripDate
	FieldDepartureTime
	FieldBusLicensePlate
	FieldDriverName
)

func (f TripField) String() string {
	switch f {
	case FieldDeparturePoint:
		return "departure point"
	case FieldArrivalPoint:
		return "arrival point"
	case FieldTripDate:
		return "trip date"
	case FieldDepartureTime:
		return "departure time"
	case FieldBusLicensePlate:
		return "bus license plate"
	case FieldDriverName:
		return "driver name"
	}
	return "unknown field"
}

// SetField updates one free-text field of an active trip and persists
// the trip collection.
func (s *TripService) SetField(ctx context.Context, id int, field TripField, value string) error {
	trip, err := s.trips.FindActiveTrip(id)
	if err != nil {
		return err
	}
	if err := domain.ValidateField(field.String(), value); err != nil {
		return err
	}
	switch field {
	case FieldDeparturePoint:
		trip.DeparturePoint = value
	case FieldArrivalPoint:
		trip.ArrivalPoint = value
	case FieldTripDate:
		trip.TripDate = value
	case FieldDepartureTime:
		trip.DepartureTime = value
	case FieldBusLicensePlate:
		trip.BusLicensePlate = value
	case FieldDriverName:
		trip.DriverName = value
	default:
		return fmt.Errorf("%w: %d is not an updatable field", domain.ErrInvalidField, field)
	}
	return s.saveTrips(ctx)
}

// Resize changes TotalSeats. Shrinking below the sold-seat count is
// rejected; otherwise AvailableSeats is recomputed so that
// sold = total - available stays unchanged.
func (s *TripService) Resize(ctx context.Context, id, seats int) error {
	trip, err := s.trips.FindActiveTrip(id)
	if err != nil {
		return err
	}
	if seats < 1 || seats > s.maxSeats {
		return fmt.Errorf("%w: must be between 1 and %d", domain.ErrInvalidSeatCount, s.maxSeats)
	}
	sold := trip.SoldSeats()
	if seats < sold {
		return fmt.Errorf("%w: %d seats sold, requested %d", domain.ErrInvalidResize, sold, seats)
	}
	trip.TotalSeats = seats
	trip.AvailableSeats = seats - sold
	return s.saveTrips(ctx)
}

// Reprice sets the ticket price of an active trip. Sold tickets keep
// the price they were bought at.
func (s *TripService) Reprice(ctx context.Context, id int, price decimal.Decimal) error {
	trip, err := s.trips.FindActiveTrip(id)
	if err != nil {
		return err
	}
	if err := domain.ValidatePrice(price); err != nil {
		return err
	}
	trip.TicketPrice = price
	return s.saveTrips(ctx)
}

// Delete soft-deletes a trip and cancels every active ticket on it,
// returning how many were cancelled. The deleted trip's AvailableSeats
// is left as-is; the field is moot once the trip is gone.
func (s *TripService) Delete(ctx context.Context, id int) (int, error) {
	trip, err := s.trips.FindActiveTrip(id)
	if err != nil {
		return 0, err
	}
	trip.Active = false

	cancelled := 0
	for _, t := range s.tickets.ActiveTicketsForTrip(id) {
		t.Active = false
		cancelled++
	}

	if err := s.saveTrips(ctx); err != nil {
		return cancelled, err
	}
	if err := s.snap.SaveTickets(ctx, s.tickets.AllTickets()); err != nil {
		return cancelled, fmt.Errorf("persist tickets: %w", err)
	}
	return cancelled, nil
}

// Summary aggregates seat counts and revenue across active trips for
// the list screen. Revenue counts sold seats at each trip's current
// price.
func (s *TripService) Summary(ctx context.Context) (domain.FleetSummary, error) {
	var sum domain.FleetSummary
	sum.Revenue = decimal.Zero
	for _, t := range s.trips.ListActiveTrips() {
		sum.TotalSeats += t.TotalSeats
		sum.AvailableSeats += t.AvailableSeats
		sum.SoldSeats += t.SoldSeats()
		sum.Revenue = sum.Revenue.Add(t.TicketPrice.Mul(decimal.NewFromInt(int64(t.SoldSeats()))))
	}
	return sum, nil
}

func (s *TripService) saveTrips(ctx context.Context) error {
	if err := s.snap.SaveTrips(ctx, s.trips.AllTrips()); err != nil {
		return fmt.Errorf("persist trips: %w", err)
	}
	return nil
}

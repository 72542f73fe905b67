package domain

import (
	"github.com/shopspring/decimal"
)

// Trip is a scheduled bus departure that tickets are sold against.
// Soft-deleted trips stay in the store with Active=false; their IDs may
// be reused by new trips, since lookups only consider active records.
type Trip struct {
	ID              int
	DeparturePoint  string
	ArrivalPoint    string
	TripDate        string // DD/MM/YYYY, operator-entered
	DepartureTime   string // HH:MM
	BusLicensePlate string
	DriverName      string
	TotalSeats      int
	AvailableSeats  int
	TicketPrice     decimal.Decimal
	Active          bool
}

// SoldSeats is the number of seats with an active ticket.
func (t *Trip) SoldSeats() int {
	return t.TotalSeats - t.AvailableSeats
}

// Occupancy is the sold fraction of the trip in percent.
func (t *Trip) Occupancy() float64 {
	if t.TotalSeats == 0 {
		return 0
	}
	return float64(t.SoldSeats()) / float64(t.TotalSeats) * 100
}

// Status summarises how full the trip is, for list views.
func (t *Trip) Status() string {
	switch occ := t.Occupancy(); {
	case t.AvailableSeats == 0:
		return "FULL"
	case occ >= 80:
		return "Almost Full"
	case occ >= 50:
		return "Half Full"
	default:
		return "Available"
	}
}

// FleetSummary aggregates seat and revenue totals across active trips.
type FleetSummary struct {
	TotalSeats     int
	AvailableSeats int
	SoldSeats      int
	Revenue        decimal.Decimal
}

// Occupancy is the overall sold fraction in percent.
func (s FleetSummary) Occupancy() float64 {
	if s.TotalSeats == 0 {
		return 0
	}
	return float64(s.SoldSeats) / float64(s.TotalSeats) * 100
}

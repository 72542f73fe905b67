package domain

import (
	"github.com/shopspring/decimal"
)

// Passenger is the person a ticket was sold to. It is embedded in the
// ticket rather than stored on its own; nothing deduplicates passengers.
type Passenger struct {
	FullName    string
	IDNumber    string
	PhoneNumber string
	Email       string
}

// Ticket is a seat sold on a trip. Cancelled tickets stay in the store
// with Active=false and their IDs are never reassigned.
type Ticket struct {
	ID           int
	TripID       int
	SeatNumber   int
	Passenger    Passenger
	Price        decimal.Decimal // snapshot of the trip price at sale time
	PurchaseDate string          // DD/MM/YYYY HH:MM:SS, immutable
	Active       bool
}

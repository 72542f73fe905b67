// Package console drives the interactive menu. It only gathers input,
// calls the use-case services, and renders their results; every
// business rule lives behind the service boundary.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/busdesk/busdesk/internal/core/domain"
	"github.com/busdesk/busdesk/internal/core/usecases"
)

// Dependencies carries the services the console drives.
type Dependencies struct {
	Trips   *usecases.TripService
	Tickets *usecases.TicketService
}

// Console is the interactive menu surface.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	deps *Dependencies
	eof  bool
}

// New creates a console reading from in and writing to out.
func New(deps *Dependencies, in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out, deps: deps}
}

// Run drives the main menu until the operator exits or input ends.
// The caller is responsible for the final save on return.
func (c *Console) Run(ctx context.Context) error {
	c.title("BUS TICKETING SYSTEM")

	for !c.eof {
		c.printMenu()
		choice, ok := c.readInt("Enter your choice: ")
		if !ok {
			continue
		}

		switch choice {
		case 1:
			c.createTrip(ctx)
		case 2:
			c.updateTrip(ctx)
		case 3:
			c.deleteTrip(ctx)
		case 4:
			c.inquireTrip(ctx)
		case 5:
			c.listTrips(ctx)
		case 6:
			c.sellTicket(ctx)
		case 7:
			c.cancelTicket(ctx)
		case 0:
			fmt.Fprintln(c.out, "\nSaving data and exiting...")
			return nil
		default:
			c.fail("invalid choice, please try again")
		}

		c.pause()
	}
	return nil
}

func (c *Console) printMenu() {
	c.title("MAIN MENU")
	fmt.Fprintln(c.out, "1. Create New Trip")
	fmt.Fprintln(c.out, "2. Update Trip")
	fmt.Fprintln(c.out, "3. Delete Trip")
	fmt.Fprintln(c.out, "4. Trip Inquiry")
	fmt.Fprintln(c.out, "5. List All Trips")
	fmt.Fprintln(c.out, "6. Sell Ticket")
	fmt.Fprintln(c.out, "7. Cancel Ticket")
	fmt.Fprintln(c.out, "0. Exit")
}

func (c *Console) createTrip(ctx context.Context) {
	c.title("CREATE NEW TRIP")

	id, ok := c.readInt("Enter Trip ID: ")
	if !ok {
		return
	}
	if _, err := c.deps.Trips.Get(ctx, id); err == nil {
		c.fail("a trip with ID %d already exists", id)
		return
	}

	in := usecases.CreateTripInput{ID: id}
	in.DeparturePoint = c.readLine("Enter Departure Point: ")
	in.ArrivalPoint = c.readLine("Enter Arrival Point: ")
	in.TripDate = c.readLine("Enter Trip Date (DD/MM/YYYY): ")
	in.DepartureTime = c.readLine("Enter Departure Time (HH:MM): ")
	in.BusLicensePlate = c.readLine("Enter Bus License Plate: ")
	in.DriverName = c.readLine("Enter Driver's Full Name: ")

	seats, ok := c.readInt("Enter Number of Seats: ")
	if !ok {
		return
	}
	in.TotalSeats = seats

	price, ok := c.readPrice("Enter Ticket Price: ")
	if !ok {
		return
	}
	in.TicketPrice = price

	trip, err := c.deps.Trips.Create(ctx, in)
	if err != nil {
		c.report(err)
		return
	}
	c.success("Trip created successfully!")
	fmt.Fprintf(c.out, "Trip ID: %d\n", trip.ID)
	fmt.Fprintf(c.out, "Route: %s -> %s\n", trip.DeparturePoint, trip.ArrivalPoint)
	fmt.Fprintf(c.out, "Date: %s at %s\n", trip.TripDate, trip.DepartureTime)
}

func (c *Console) updateTrip(ctx context.Context) {
	c.title("UPDATE TRIP")

	id, ok := c.readInt("Enter Trip ID to update: ")
	if !ok {
		return
	}
	trip, err := c.deps.Trips.Get(ctx, id)
	if err != nil {
		c.report(err)
		return
	}

	if trip.SoldSeats() > 0 {
		c.warn("Warning: tickets have already been sold for this trip.")
		if !c.confirm("Do you still want to change this information?") {
			return
		}
	}

	c.section("Current Trip Information")
	c.printTripDetails(trip)

	for !c.eof {
		fmt.Fprintln(c.out, "\n--- What would you like to update? ---")
		fmt.Fprintln(c.out, "1. Departure Point")
		fmt.Fprintln(c.out, "2. Arrival Point")
		fmt.Fprintln(c.out, "3. Trip Date")
		fmt.Fprintln(c.out, "4. Departure Time")
		fmt.Fprintln(c.out, "5. Bus License Plate")
		fmt.Fprintln(c.out, "6. Driver Name")
		fmt.Fprintln(c.out, "7. Total Seats")
		fmt.Fprintln(c.out, "8. Ticket Price")
		fmt.Fprintln(c.out, "0. Done")

		choice, ok := c.readInt("Enter your choice: ")
		if !ok {
			continue
		}

		switch choice {
		case 1, 2, 3, 4, 5, 6:
			field := usecases.TripField(choice)
			value := c.readLine(fmt.Sprintf("Enter new %s: ", field))
			if err := c.deps.Trips.SetField(ctx, id, field, value); err != nil {
				c.report(err)
				continue
			}
			c.success("Trip updated successfully!")
		case 7:
			seats, ok := c.readInt("Enter new Total Seats: ")
			if !ok {
				continue
			}
			if err := c.deps.Trips.Resize(ctx, id, seats); err != nil {
				c.report(err)
				continue
			}
			c.success("Trip updated successfully!")
		case 8:
			price, ok := c.readPrice("Enter new Ticket Price: ")
			if !ok {
				continue
			}
			if err := c.deps.Trips.Reprice(ctx, id, price); err != nil {
				c.report(err)
				continue
			}
			c.success("Trip updated successfully!")
		case 0:
			return
		default:
			c.fail("invalid choice")
		}
	}
}

func (c *Console) deleteTrip(ctx context.Context) {
	c.title("DELETE TRIP")

	id, ok := c.readInt("Enter Trip ID to delete: ")
	if !ok {
		return
	}
	trip, err := c.deps.Trips.Get(ctx, id)
	if err != nil {
		c.report(err)
		return
	}

	c.section("Trip Information")
	fmt.Fprintf(c.out, "Trip ID: %d\n", trip.ID)
	fmt.Fprintf(c.out, "Route: %s -> %s\n", trip.DeparturePoint, trip.ArrivalPoint)
	fmt.Fprintf(c.out, "Date: %s at %s\n", trip.TripDate, trip.DepartureTime)
	fmt.Fprintf(c.out, "Driver: %s\n", trip.DriverName)
	fmt.Fprintf(c.out, "Available Seats: %d/%d\n", trip.AvailableSeats, trip.TotalSeats)

	if sold := trip.SoldSeats(); sold > 0 {
		c.warn("Warning: this trip has %d sold ticket(s)!", sold)
		c.warn("Deleting this trip will also cancel all related tickets.")
	}

	if !c.confirm("\nAre you sure you want to delete this trip?") {
		fmt.Fprintln(c.out, "\nDeletion cancelled.")
		return
	}

	cancelled, err := c.deps.Trips.Delete(ctx, id)
	if err != nil {
		c.report(err)
		return
	}
	c.success("Trip deleted successfully!")
	if cancelled > 0 {
		c.success("%d ticket(s) have been cancelled.", cancelled)
	}
}

func (c *Console) inquireTrip(ctx context.Context) {
	c.title("TRIP INQUIRY")

	id, ok := c.readInt("Enter Trip ID to inquire: ")
	if !ok {
		return
	}
	trip, err := c.deps.Trips.Get(ctx, id)
	if err != nil {
		c.report(err)
		return
	}

	c.title(fmt.Sprintf("TRIP DETAILS - ID: %d", trip.ID))
	c.printTripDetails(trip)

	tickets, err := c.deps.Tickets.ListForTrip(ctx, id)
	if err != nil {
		c.report(err)
		return
	}
	if len(tickets) == 0 {
		fmt.Fprintln(c.out, "\n  No tickets sold for this trip yet.")
		return
	}
	c.section("Passenger List:")
	c.printPassengerTable(tickets)
	fmt.Fprintf(c.out, "  Total Passengers: %d\n", len(tickets))
}

func (c *Console) listTrips(ctx context.Context) {
	c.title("ALL TRIPS LIST")

	trips, err := c.deps.Trips.List(ctx)
	if err != nil {
		c.report(err)
		return
	}
	if len(trips) == 0 {
		fmt.Fprintln(c.out, "\nNo trips found in the system.")
		return
	}

	fmt.Fprintf(c.out, "\nTotal Active Trips: %d\n\n", len(trips))
	c.printTripTable(trips)

	sum, err := c.deps.Trips.Summary(ctx)
	if err != nil {
		c.report(err)
		return
	}
	c.printSummary(sum)
}

func (c *Console) sellTicket(ctx context.Context) {
	c.title("SELL TICKET")

	tripID, ok := c.readInt("Enter Trip ID: ")
	if !ok {
		return
	}
	trip, err := c.deps.Trips.Get(ctx, tripID)
	if err != nil {
		c.report(err)
		return
	}
	if trip.AvailableSeats <= 0 {
		c.report(domain.ErrNoSeatsAvailable)
		return
	}

	c.section("Trip Information")
	fmt.Fprintf(c.out, "Route: %s -> %s\n", trip.DeparturePoint, trip.ArrivalPoint)
	fmt.Fprintf(c.out, "Date: %s at %s\n", trip.TripDate, trip.DepartureTime)
	fmt.Fprintf(c.out, "Available Seats: %d/%d\n", trip.AvailableSeats, trip.TotalSeats)
	fmt.Fprintf(c.out, "Price: %s TL\n", trip.TicketPrice.StringFixed(2))

	sold, err := c.deps.Tickets.ListForTrip(ctx, tripID)
	if err != nil {
		c.report(err)
		return
	}
	occupied := make(map[int]bool, len(sold))
	fmt.Fprint(c.out, "\nOccupied Seats: ")
	for _, t := range sold {
		occupied[t.SeatNumber] = true
		fmt.Fprintf(c.out, "%d ", t.SeatNumber)
	}
	if len(sold) == 0 {
		fmt.Fprint(c.out, "None (All seats available)")
	}
	fmt.Fprintln(c.out)

	var seat int
	for !c.eof {
		n, ok := c.readInt(fmt.Sprintf("Enter Seat Number (1-%d): ", trip.TotalSeats))
		if !ok {
			continue
		}
		if n < 1 || n > trip.TotalSeats {
			c.fail("invalid seat number, please choose between 1 and %d", trip.TotalSeats)
			continue
		}
		if occupied[n] {
			c.fail("seat %d is already occupied, please choose another seat", n)
			continue
		}
		seat = n
		break
	}
	if c.eof {
		return
	}

	c.section("Passenger Information")
	passenger := domain.Passenger{
		FullName:    c.readLine("Full Name: "),
		IDNumber:    c.readLine("ID Number: "),
		PhoneNumber: c.readLine("Phone Number: "),
		Email:       c.readLine("Email: "),
	}

	ticket, err := c.deps.Tickets.Sell(ctx, usecases.SellTicketInput{
		TripID:     tripID,
		SeatNumber: seat,
		Passenger:  passenger,
	})
	if err != nil {
		c.report(err)
		return
	}

	c.success("Ticket sold successfully!")
	fmt.Fprintf(c.out, "Ticket ID: %d\n", ticket.ID)
	fmt.Fprintf(c.out, "Passenger: %s\n", ticket.Passenger.FullName)
	fmt.Fprintf(c.out, "Seat Number: %d\n", ticket.SeatNumber)
	fmt.Fprintf(c.out, "Price: %s TL\n", ticket.Price.StringFixed(2))

	if c.confirm("\nWould you like to create a receipt?") {
		path, err := c.deps.Tickets.Receipt(ctx, ticket.ID)
		if err != nil {
			c.report(err)
			return
		}
		c.success("Receipt created successfully!")
		fmt.Fprintf(c.out, "File saved as: %s\n", path)
	}
}

func (c *Console) cancelTicket(ctx context.Context) {
	c.title("CANCEL TICKET")

	id, ok := c.readInt("Enter Ticket ID to cancel: ")
	if !ok {
		return
	}
	ticket, err := c.deps.Tickets.Get(ctx, id)
	if err != nil {
		c.report(err)
		return
	}
	trip, err := c.deps.Trips.Get(ctx, ticket.TripID)
	if err != nil {
		c.report(err)
		return
	}

	c.section("Ticket Information")
	c.printTicketDetails(ticket, trip)

	if !c.confirm("\nAre you sure you want to cancel this ticket?") {
		fmt.Fprintln(c.out, "\nCancellation aborted.")
		return
	}

	cancelled, err := c.deps.Tickets.Cancel(ctx, id)
	if err != nil {
		c.report(err)
		return
	}
	c.success("Ticket cancelled successfully!")
	fmt.Fprintf(c.out, "Seat %d is now available for Trip ID %d.\n", cancelled.SeatNumber, cancelled.TripID)
	fmt.Fprintf(c.out, "Refund amount: %s TL\n", cancelled.Price.StringFixed(2))
}

// report renders a service error for the operator. Persistence
// failures get a distinct warning: the change was applied in memory
// but did not reach disk.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, domain.ErrPersistenceFailed):
		c.warn("Warning: the change was applied but could not be saved to disk: %v", err)
	case errors.Is(err, domain.ErrTripNotFound):
		c.fail("trip not found")
	case errors.Is(err, domain.ErrTicketNotFound):
		c.fail("ticket not found")
	case errors.Is(err, domain.ErrDuplicateTripID):
		c.fail("a trip with that ID already exists")
	case errors.Is(err, domain.ErrNoSeatsAvailable):
		c.fail("no available seats for this trip")
	case errors.Is(err, domain.ErrSeatOccupied):
		c.fail("that seat is already occupied")
	case errors.Is(err, domain.ErrSeatOutOfRange):
		c.fail("that seat number is out of range")
	case errors.Is(err, domain.ErrInvalidResize):
		c.fail("cannot reduce seats below the number already sold")
	case errors.Is(err, domain.ErrCapacityExceeded):
		c.fail("record limit reached")
	default:
		c.fail("%v", err)
	}
}

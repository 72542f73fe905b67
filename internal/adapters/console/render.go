package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/busdesk/busdesk/internal/core/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Align(lipgloss.Center).
			Width(42).
			Border(lipgloss.DoubleBorder(), true, false)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func (c *Console) title(text string) {
	fmt.Fprintln(c.out, titleStyle.Render(text))
}

func (c *Console) section(text string) {
	fmt.Fprintln(c.out, sectionStyle.Render(text))
}

func (c *Console) success(format string, args ...any) {
	fmt.Fprintln(c.out, successStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

func (c *Console) warn(format string, args ...any) {
	fmt.Fprintln(c.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) fail(format string, args ...any) {
	fmt.Fprintln(c.out, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(faintStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func (c *Console) printTripTable(trips []*domain.Trip) {
	t := newTable("ID", "From", "To", "Date", "Time", "Price", "Seats", "Status")
	for _, trip := range trips {
		t.Row(
			fmt.Sprintf("%d", trip.ID),
			truncate(trip.DeparturePoint, 15),
			truncate(trip.ArrivalPoint, 15),
			trip.TripDate,
			trip.DepartureTime,
			trip.TicketPrice.StringFixed(2),
			fmt.Sprintf("%d/%d", trip.AvailableSeats, trip.TotalSeats),
			trip.Status(),
		)
	}
	fmt.Fprintln(c.out, t.Render())
}

func (c *Console) printPassengerTable(tickets []*domain.Ticket) {
	t := newTable("Seat", "Passenger Name", "ID Number", "Phone")
	for _, ticket := range tickets {
		t.Row(
			fmt.Sprintf("%d", ticket.SeatNumber),
			truncate(ticket.Passenger.FullName, 25),
			ticket.Passenger.IDNumber,
			ticket.Passenger.PhoneNumber,
		)
	}
	fmt.Fprintln(c.out, t.Render())
}

func (c *Console) printTripDetails(trip *domain.Trip) {
	c.section("Route Information:")
	fmt.Fprintf(c.out, "  Departure Point : %s\n", trip.DeparturePoint)
	fmt.Fprintf(c.out, "  Arrival Point   : %s\n", trip.ArrivalPoint)
	fmt.Fprintf(c.out, "  Trip Date       : %s\n", trip.TripDate)
	fmt.Fprintf(c.out, "  Departure Time  : %s\n", trip.DepartureTime)
	c.section("Bus Information:")
	fmt.Fprintf(c.out, "  License Plate   : %s\n", trip.BusLicensePlate)
	fmt.Fprintf(c.out, "  Driver Name     : %s\n", trip.DriverName)
	c.section("Seat Information:")
	fmt.Fprintf(c.out, "  Total Seats     : %d\n", trip.TotalSeats)
	fmt.Fprintf(c.out, "  Available Seats : %d\n", trip.AvailableSeats)
	fmt.Fprintf(c.out, "  Sold Seats      : %d\n", trip.SoldSeats())
	fmt.Fprintf(c.out, "  Occupancy Rate  : %.1f%%\n", trip.Occupancy())
	c.section("Pricing Information:")
	fmt.Fprintf(c.out, "  Ticket Price    : %s TL\n", trip.TicketPrice.StringFixed(2))
}

func (c *Console) printSummary(sum domain.FleetSummary) {
	c.section("Summary:")
	fmt.Fprintf(c.out, "  Total Capacity    : %d seats\n", sum.TotalSeats)
	fmt.Fprintf(c.out, "  Available Seats   : %d seats\n", sum.AvailableSeats)
	fmt.Fprintf(c.out, "  Sold Seats        : %d seats\n", sum.SoldSeats)
	fmt.Fprintf(c.out, "  Overall Occupancy : %.1f%%\n", sum.Occupancy())
	fmt.Fprintf(c.out, "  Total Revenue     : %s TL\n", sum.Revenue.StringFixed(2))
}

func (c *Console) printTicketDetails(ticket *domain.Ticket, trip *domain.Trip) {
	fmt.Fprintf(c.out, "Ticket ID       : %d\n", ticket.ID)
	fmt.Fprintf(c.out, "Trip ID         : %d\n", ticket.TripID)
	fmt.Fprintf(c.out, "Route           : %s -> %s\n", trip.DeparturePoint, trip.ArrivalPoint)
	fmt.Fprintf(c.out, "Date            : %s at %s\n", trip.TripDate, trip.DepartureTime)
	fmt.Fprintf(c.out, "Seat Number     : %d\n", ticket.SeatNumber)
	fmt.Fprintf(c.out, "Passenger Name  : %s\n", ticket.Passenger.FullName)
	fmt.Fprintf(c.out, "ID Number       : %s\n", ticket.Passenger.IDNumber)
	fmt.Fprintf(c.out, "Phone           : %s\n", ticket.Passenger.PhoneNumber)
	fmt.Fprintf(c.out, "Price           : %s TL\n", ticket.Price.StringFixed(2))
	fmt.Fprintf(c.out, "Purchase Date   : %s\n", ticket.PurchaseDate)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max])
}

package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/busdesk/busdesk/internal/core/domain"
)

const receiptRule = "----------------------------------------"
const receiptBar = "========================================"

// ReceiptWriter implements ports.ReceiptWriter, rendering a sold ticket
// to receipt_ticket_<id>.txt in the data directory. Receipts are plain
// text for the passenger; nothing ever reads them back.
type ReceiptWriter struct {
	dir     string
	taxRate decimal.Decimal
}

// NewReceiptWriter creates a receipt writer. taxRate is a fraction,
// e.g. 0.18 for 18% tax.
func NewReceiptWriter(dir string, taxRate decimal.Decimal) *ReceiptWriter {
	return &ReceiptWriter{dir: dir, taxRate: taxRate}
}

func (w *ReceiptWriter) Write(ctx context.Context, ticket *domain.Ticket, trip *domain.Trip) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("receipt_ticket_%d.txt", ticket.ID))
	if err := os.WriteFile(path, []byte(w.render(ticket, trip)), 0o644); err != nil {
		return "", fmt.Errorf("%w: receipt %s: %v", domain.ErrPersistenceFailed, path, err)
	}
	return path, nil
}

func (w *ReceiptWriter) render(ticket *domain.Ticket, trip *domain.Trip) string {
	tax := ticket.Price.Mul(w.taxRate).Round(2)
	total := ticket.Price.Add(tax)

	status := "ACTIVE"
	if !ticket.Active {
		status = "CANCELLED"
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(receiptBar)
	line("          BUS TICKET RECEIPT")
	line(receiptBar)
	line("")

	line("TICKET INFORMATION")
	line(receiptRule)
	line("Ticket ID        : %d", ticket.ID)
	line("Purchase Date    : %s", ticket.PurchaseDate)
	line("Status           : %s", status)
	line("")

	line("TRIP INFORMATION")
	line(receiptRule)
	line("Trip ID          : %d", trip.ID)
	line("Departure Point  : %s", trip.DeparturePoint)
	line("Arrival Point    : %s", trip.ArrivalPoint)
	line("Trip Date        : %s", trip.TripDate)
	line("Departure Time   : %s", trip.DepartureTime)
	line("Seat Number      : %d", ticket.SeatNumber)
	line("")

	line("BUS & DRIVER INFORMATION")
	line(receiptRule)
	line("Bus License Plate: %s", trip.BusLicensePlate)
	line("Driver Name      : %s", trip.DriverName)
	line("")

	line("PASSENGER INFORMATION")
	line(receiptRule)
	line("Full Name        : %s", ticket.Passenger.FullName)
	line("ID Number        : %s", ticket.Passenger.IDNumber)
	line("Phone Number     : %s", ticket.Passenger.PhoneNumber)
	line("Email            : %s", ticket.Passenger.Email)
	line("")

	line("PAYMENT INFORMATION")
	line(receiptRule)
	line("Ticket Price     : %s TL", ticket.Price.StringFixed(2))
	line("Tax (%s%%)        : %s TL", w.taxRate.Mul(decimal.NewFromInt(100)).String(), tax.StringFixed(2))
	line("Total Amount     : %s TL", total.StringFixed(2))
	line("")

	line(receiptBar)
	line("     Thank you for choosing us!")
	line("     Have a safe journey!")
	line(receiptBar)
	line("")

	line("IMPORTANT NOTICES:")
	line("- Please arrive at the departure point")
	line("  at least 30 minutes before departure.")
	line("- This ticket is non-transferable.")
	line("- Please bring your ID for verification.")
	line("- Keep this receipt for your records.")
	line("")

	line("For questions and support:")
	line("Phone: +90 (212) 555-0000")
	line("Email: support@busticket.com")
	line("Website: www.busticket.com")
	line("")

	line(receiptBar)
	line("BARCODE: |||| || ||| | |||| | ||| ||||")
	line("         %010d", ticket.ID)
	line(receiptBar)

	return b.String()
}

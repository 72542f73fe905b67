package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/busdesk/busdesk/internal/core/domain"
)

const (
	delimiter        = "|"
	tripFieldCount   = 11
	ticketFieldCount = 10
)

// encodeTrip renders one trip record line:
// tripID|departure|arrival|date|time|plate|driver|total|available|price|active
func encodeTrip(t *domain.Trip) (string, error) {
	if err := checkTexts(t.DeparturePoint, t.ArrivalPoint, t.TripDate, t.DepartureTime, t.BusLicensePlate, t.DriverName); err != nil {
		return "", err
	}
	fields := []string{
		strconv.Itoa(t.ID),
		t.DeparturePoint,
		t.ArrivalPoint,
		t.TripDate,
		t.DepartureTime,
		t.BusLicensePlate,
		t.DriverName,
		strconv.Itoa(t.TotalSeats),
		strconv.Itoa(t.AvailableSeats),
		t.TicketPrice.StringFixed(2),
		encodeBool(t.Active),
	}
	return strings.Join(fields, delimiter), nil
}

func parseTrip(line string) (*domain.Trip, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != tripFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", tripFieldCount, len(fields))
	}

	t := &domain.Trip{
		DeparturePoint:  fields[1],
		ArrivalPoint:    fields[2],
		TripDate:        fields[3],
		DepartureTime:   fields[4],
		BusLicensePlate: fields[5],
		DriverName:      fields[6],
	}
	var err error
	if t.ID, err = parseInt("trip ID", fields[0]); err != nil {
		return nil, err
	}
	if t.TotalSeats, err = parseInt("total seats", fields[7]); err != nil {
		return nil, err
	}
	if t.AvailableSeats, err = parseInt("available seats", fields[8]); err != nil {
		return nil, err
	}
	if t.TicketPrice, err = parsePrice(fields[9]); err != nil {
		return nil, err
	}
	if t.Active, err = parseBool(fields[10]); err != nil {
		return nil, err
	}
	return t, nil
}

// encodeTicket renders one ticket record line:
// ticketID|tripID|seat|name|idNumber|phone|email|price|purchaseDate|active
func encodeTicket(t *domain.Ticket) (string, error) {
	p := t.Passenger
	if err := checkTexts(p.FullName, p.IDNumber, p.PhoneNumber, p.Email, t.PurchaseDate); err != nil {
		return "", err
	}
	fields := []string{
		strconv.Itoa(t.ID),
		strconv.Itoa(t.TripID),
		strconv.Itoa(t.SeatNumber),
		p.FullName,
		p.IDNumber,
		p.PhoneNumber,
		p.Email,
		t.Price.StringFixed(2),
		t.PurchaseDate,
		encodeBool(t.Active),
	}
	return strings.Join(fields, delimiter), nil
}

func parseTicket(line string) (*domain.Ticket, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != ticketFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", ticketFieldCount, len(fields))
	}

	t := &domain.Ticket{
		Passenger: domain.Passenger{
			FullName:    fields[3],
			IDNumber:    fields[4],
			PhoneNumber: fields[5],
			Email:       fields[6],
		},
		PurchaseDate: fields[8],
	}
	var err error
	if t.ID, err = parseInt("ticket ID", fields[0]); err != nil {
		return nil, err
	}
	if t.TripID, err = parseInt("trip ID", fields[1]); err != nil {
		return nil, err
	}
	if t.SeatNumber, err = parseInt("seat number", fields[2]); err != nil {
		return nil, err
	}
	if t.Price, err = parsePrice(fields[7]); err != nil {
		return nil, err
	}
	if t.Active, err = parseBool(fields[9]); err != nil {
		return nil, err
	}
	return t, nil
}

// checkTexts refuses to encode any text field that would break the
// line format. The input layer already rejects these; this is the
// codec holding its own contract.
func checkTexts(values ...string) error {
	for _, v := range values {
		if strings.ContainsAny(v, delimiter+"\n\r") {
			return fmt.Errorf("text field %q contains delimiter or line break", v)
		}
	}
	return nil
}

func encodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBool(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("active flag must be 0 or 1, got %q", s)
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number", name, s)
	}
	return n, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price %q is not a decimal", s)
	}
	return d, nil
}

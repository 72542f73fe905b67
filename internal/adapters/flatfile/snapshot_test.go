package flatfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/busdesk/busdesk/internal/adapters/flatfile"
	"github.com/busdesk/busdesk/internal/core/domain"
)

func testTrips(t *testing.T) []*domain.Trip {
	t.Helper()
	price := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad decimal %q: %v", s, err)
		}
		return d
	}
	return []*domain.Trip{
		{
			ID:              1,
			DeparturePoint:  "Istanbul",
			ArrivalPoint:    "Ankara",
			TripDate:        "15/09/2026",
			DepartureTime:   "09:30",
			BusLicensePlate: "34 ABC 123",
			DriverName:      "Mehmet Demir",
			TotalSeats:      40,
			AvailableSeats:  38,
			TicketPrice:     price("250.50"),
			Active:          true,
		},
		{
			ID:              2,
			DeparturePoint:  "Izmir",
			ArrivalPoint:    "Bursa",
			TripDate:        "16/09/2026",
			DepartureTime:   "22:15",
			BusLicensePlate: "35 XY 987",
			DriverName:      "Ali Kaya",
			TotalSeats:      30,
			AvailableSeats:  30,
			TicketPrice:     price("99.90"),
			Active:          false, // soft-deleted records persist too
		},
	}
}

func testTickets() []*domain.Ticket {
	return []*domain.Ticket{
		{
			ID:         1,
			TripID:     1,
			SeatNumber: 12,
			Passenger: domain.Passenger{
				FullName:    "Ayse Yilmaz",
				IDNumber:    "12345678901",
				PhoneNumber: "+90 555 123 4567",
				Email:       "ayse@example.com",
			},
			Price:        decimal.RequireFromString("250.50"),
			PurchaseDate: "01/09/2026 14:03:22",
			Active:       true,
		},
		{
			ID:         2,
			TripID:     1,
			SeatNumber: 13,
			Passenger: domain.Passenger{
				FullName:    "Fatma Celik",
				IDNumber:    "98765432109",
				PhoneNumber: "+90 532 987 6543",
				Email:       "fatma@example.com",
			},
			Price:        decimal.RequireFromString("250.50"),
			PurchaseDate: "01/09/2026 15:47:10",
			Active:       false, // cancelled
		},
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	snap := flatfile.NewSnapshot(dir, "trips.txt", "tickets.txt")
	ctx := context.Background()

	trips := testTrips(t)
	tickets := testTickets()
	if err := snap.SaveTrips(ctx, trips); err != nil {
		t.Fatalf("save trips: %v", err)
	}
	if err := snap.SaveTickets(ctx, tickets); err != nil {
		t.Fatalf("save tickets: %v", err)
	}

	gotTrips, err := snap.LoadTrips(ctx)
	if err != nil {
		t.Fatalf("load trips: %v", err)
	}
	if len(gotTrips) != len(trips) {
		t.Fatalf("loaded %d trips, want %d", len(gotTrips), len(trips))
	}
	for i, want := range trips {
		got := gotTrips[i]
		if got.ID != want.ID || got.DeparturePoint != want.DeparturePoint ||
			got.ArrivalPoint != want.ArrivalPoint || got.TripDate != want.TripDate ||
			got.DepartureTime != want.DepartureTime || got.BusLicensePlate != want.BusLicensePlate ||
			got.DriverName != want.DriverName || got.TotalSeats != want.TotalSeats ||
			got.AvailableSeats != want.AvailableSeats || got.Active != want.Active {
			t.Fatalf("trip %d mismatch:\n got %+v\nwant %+v", i, got, want)
		}
		if !got.TicketPrice.Equal(want.TicketPrice) {
			t.Fatalf("trip %d price = %s, want %s", i, got.TicketPrice, want.TicketPrice)
		}
	}

	gotTickets, err := snap.LoadTickets(ctx)
	if err != nil {
		t.Fatalf("load tickets: %v", err)
	}
	if len(gotTickets) != len(tickets) {
		t.Fatalf("loaded %d tickets, want %d", len(gotTickets), len(tickets))
	}
	for i, want := range tickets {
		got := gotTickets[i]
		if got.ID != want.ID || got.TripID != want.TripID || got.SeatNumber != want.SeatNumber ||
			got.Passenger != want.Passenger || got.PurchaseDate != want.PurchaseDate ||
			got.Active != want.Active {
			t.Fatalf("ticket %d mismatch:\n got %+v\nwant %+v", i, got, want)
		}
		if !got.Price.Equal(want.Price) {
			t.Fatalf("ticket %d price = %s, want %s", i, got.Price, want.Price)
		}
	}
}

func TestSnapshot_FileFormat(t *testing.T) {
	dir := t.TempDir()
	snap := flatfile.NewSnapshot(dir, "trips.txt", "tickets.txt")

	if err := snap.SaveTrips(context.Background(), testTrips(t)); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "trips.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if lines[0] != "2" {
		t.Fatalf("count header = %q, want 2", lines[0])
	}
	want := "1|Istanbul|Ankara|15/09/2026|09:30|34 ABC 123|Mehmet Demir|40|38|250.50|1"
	if lines[1] != want {
		t.Fatalf("record line:\n got %q\nwant %q", lines[1], want)
	}
	if !strings.HasSuffix(lines[2], "|99.90|0") {
		t.Fatalf("soft-deleted record line = %q", lines[2])
	}
}

func TestSnapshot_MissingFilesMeanEmpty(t *testing.T) {
	snap := flatfile.NewSnapshot(t.TempDir(), "trips.txt", "tickets.txt")
	ctx := context.Background()

	trips, err := snap.LoadTrips(ctx)
	if err != nil {
		t.Fatalf("load trips: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected no trips, got %d", len(trips))
	}
	tickets, err := snap.LoadTickets(ctx)
	if err != nil {
		t.Fatalf("load tickets: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("expected no tickets, got %d", len(tickets))
	}
}

func TestSnapshot_CorruptFiles(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"non-numeric count", "two\n"},
		{"count mismatch", "3\n1|A|B|d|t|p|n|10|10|5.00|1\n"},
		{"wrong field count", "1\n1|A|B|d|t|p|n|10|10|5.00\n"},
		{"non-numeric seats", "1\n1|A|B|d|t|p|n|ten|10|5.00|1\n"},
		{"bad price", "1\n1|A|B|d|t|p|n|10|10|cheap|1\n"},
		{"bad active flag", "1\n1|A|B|d|t|p|n|10|10|5.00|yes\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "trips.txt"), []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			snap := flatfile.NewSnapshot(dir, "trips.txt", "tickets.txt")
			_, err := snap.LoadTrips(context.Background())
			if !errors.Is(err, domain.ErrCorruptData) {
				t.Fatalf("expected ErrCorruptData, got %v", err)
			}
		})
	}
}

func TestSnapshot_RefusesDelimiterInField(t *testing.T) {
	snap := flatfile.NewSnapshot(t.TempDir(), "trips.txt", "tickets.txt")

	bad := testTrips(t)[:1]
	bad[0].DriverName = "Mehmet|Demir"
	if err := snap.SaveTrips(context.Background(), bad); err == nil {
		t.Fatal("expected encode error for delimiter in field")
	}
}

func TestSnapshot_SaveOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	snap := flatfile.NewSnapshot(dir, "trips.txt", "tickets.txt")
	ctx := context.Background()

	if err := snap.SaveTrips(ctx, testTrips(t)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := snap.SaveTrips(ctx, testTrips(t)[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}

	trips, err := snap.LoadTrips(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("expected 1 trip after overwrite, got %d", len(trips))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/busdesk/busdesk/internal/adapters/console"
	"github.com/busdesk/busdesk/internal/adapters/flatfile"
	"github.com/busdesk/busdesk/internal/adapters/memory"
	"github.com/busdesk/busdesk/internal/core/usecases"
	"github.com/busdesk/busdesk/internal/pkg/config"
	"github.com/busdesk/busdesk/internal/pkg/logging"
)

func main() {
	var (
		dataDir   string
		logLevel  string
		logFormat string
	)
	pflag.StringVar(&dataDir, "data-dir", "", "directory holding the data files (overrides config)")
	pflag.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pflag.StringVar(&logFormat, "log-format", "", "log format: text or json (overrides config)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	// Structured logging on stderr; stdout belongs to the menu.
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	// Persistence
	snap := flatfile.NewSnapshot(cfg.Data.Dir, cfg.Data.TripsFile, cfg.Data.TicketsFile)

	// A corrupt data file is fatal: starting with an empty collection
	// would silently mask data loss on the next save.
	trips, err := snap.LoadTrips(ctx)
	if err != nil {
		log.Fatalf("load trips: %v", err)
	}
	tickets, err := snap.LoadTickets(ctx)
	if err != nil {
		log.Fatalf("load tickets: %v", err)
	}

	// Record store
	store := memory.New(cfg.Limits.MaxTrips, cfg.Limits.MaxTickets)
	store.ReplaceTrips(trips)
	store.ReplaceTickets(tickets)
	slog.Info("data loaded", "trips", len(trips), "tickets", len(tickets))

	receipts := flatfile.NewReceiptWriter(cfg.Data.Dir, decimal.NewFromFloat(cfg.Receipt.TaxRate))

	// Use cases
	tripSvc := usecases.NewTripService(store, store, snap, cfg.Limits.MaxSeats)
	ticketSvc := usecases.NewTicketService(store, store, snap, receipts)

	// Menu
	ui := console.New(&console.Dependencies{
		Trips:   tripSvc,
		Tickets: ticketSvc,
	}, os.Stdin, os.Stdout)

	if err := ui.Run(ctx); err != nil {
		slog.Error("console", "error", err)
	}

	// Final save of both collections before exit.
	if err := snap.SaveTrips(ctx, store.AllTrips()); err != nil {
		slog.Error("final save trips", "error", err)
	}
	if err := snap.SaveTickets(ctx, store.AllTickets()); err != nil {
		slog.Error("final save tickets", "error", err)
	}

	fmt.Println("Thank you for using Bus Ticketing System!")
}

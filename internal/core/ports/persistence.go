package ports

import (
	"context"

	"github.com/busdesk/busdesk/internal/core/domain"
)

// Snapshotter persists whole collections to disk. There is no journal:
// each save fully rewrites the target file, and the file write is the
// commit point of every mutating operation.
type Snapshotter interface {
	SaveTrips(ctx context.Context, trips []*domain.Trip) error
	SaveTickets(ctx context.Context, tickets []*domain.Ticket) error
	// LoadTrips reads the trip file. A missing file yields an empty
	// collection; a malformed one yields ErrCorruptData.
	LoadTrips(ctx context.Context) ([]*domain.Trip, error)
	LoadTickets(ctx context.Context) ([]*domain.Ticket, error)
}

// ReceiptWriter renders a sold ticket into a human-readable file and
// returns the path it wrote. Receipts are write-only output.
type ReceiptWriter interface {
	Write(ctx context.Context, ticket *domain.Ticket, trip *domain.Trip) (string, error)
}

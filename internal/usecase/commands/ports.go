package commands

import (
	"context"

	"needboard/internal/domain/need"
	"needboard/internal/domain/reservation"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository; the
// protocol core depends only on these so it stays storage-agnostic.

type NeedRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*need.Need, error)
	Insert(ctx context.Context, n *need.Need) error
	// DecrementCapacityFrom performs a single atomic compare-and-set:
	// capacity goes observed -> observed-1 only if still exactly observed.
	DecrementCapacityFrom(ctx context.Context, id uuid.UUID, observed int64) (bool, error)
	// IncrementCapacity adds one slot back unconditionally.
	IncrementCapacity(ctx context.Context, id uuid.UUID) error
	// MarkClosed flips state to closed; never reopens.
	MarkClosed(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Insert(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

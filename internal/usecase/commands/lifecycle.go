package commands

import (
	"context"
	"log/slog"

	"needboard/internal/domain/need"
	"needboard/internal/infra"
	"needboard/internal/pkg/clock"
	"needboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNeedNotFound   = errs.New("need not found")
	ErrNeedClosed     = errs.New("need is closed")
	ErrNeedExpired    = errs.New("need deadline has passed")
	ErrNeedExhausted  = errs.New("need has no remaining slots")
	ErrSlotContended  = errs.New("lost slot claim race")
	ErrStorageFailure = errs.New("storage operation failed")
)

// ClaimedSlot carries what the allocator needs to record the reservation:
// the Need snapshot the claim was validated against and the capacity the
// compare-and-set decremented to.
type ClaimedSlot struct {
	Need      *need.Need
	Remaining int64
}

// NeedLifecycle is the sole authority for mutating a Need's remaining
// capacity and its closure transition.
type NeedLifecycle interface {
	// ClaimSlot atomically consumes one slot, or reports why it could not.
	// A lost compare-and-set surfaces as ErrSlotContended without retrying;
	// retry policy belongs to the caller.
	ClaimSlot(ctx context.Context, needID uuid.UUID) (*ClaimedSlot, error)
	// ReleaseSlot returns one slot unconditionally. It never reopens a
	// closed Need. Callers are responsible for invoking it at most once
	// per claimed slot.
	ReleaseSlot(ctx context.Context, needID uuid.UUID) error
}

type needLifecycleImpl struct {
	needs NeedRepository
	clock clock.Clock
}

func NewNeedLifecycle(needs NeedRepository, clock clock.Clock) NeedLifecycle {
	return &needLifecycleImpl{needs: needs, clock: clock}
}

func (l *needLifecycleImpl) ClaimSlot(ctx context.Context, needID uuid.UUID) (*ClaimedSlot, error) {
	n, err := l.needs.FindByID(ctx, needID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNeedNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if err := n.CanClaim(l.clock.Now()); err != nil {
		switch err {
		case need.ErrClosed:
			return nil, ErrNeedClosed
		case need.ErrExpired:
			return nil, ErrNeedExpired
		default:
			return nil, ErrNeedExhausted
		}
	}

	observed := n.CapacityRemaining()
	ok, err := l.needs.DecrementCapacityFrom(ctx, needID, observed)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if !ok {
		// Another writer moved the value (or the need vanished) between
		// our read and the conditional write.
		return nil, ErrSlotContended
	}

	remaining := observed - 1
	if remaining == 0 {
		// Best-effort follow-up: a failed closure write never un-claims
		// the slot that was just consumed.
		if closeErr := l.needs.MarkClosed(ctx, needID); closeErr != nil {
			slog.Warn("failed to close exhausted need",
				"need_id", needID,
				"error", closeErr.Error())
		}
	}

	return &ClaimedSlot{Need: n, Remaining: remaining}, nil
}

func (l *needLifecycleImpl) ReleaseSlot(ctx context.Context, needID uuid.UUID) error {
	if err := l.needs.IncrementCapacity(ctx, needID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNeedNotFound
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

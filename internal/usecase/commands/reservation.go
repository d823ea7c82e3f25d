package commands

import (
	"context"
	"log/slog"
	"strings"

	"needboard/internal/domain/reservation"
	"needboard/internal/infra"
	"needboard/internal/pkg/errs"
	"needboard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput            = errs.New("invalid input")
	ErrAlreadyRequested        = errs.New("volunteer already holds a reservation for this need")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrCompensationFailed      = errs.New("compensating slot release failed")
	ErrReleaseFailed           = errs.New("slot release after cancellation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AllocateParams struct {
	NeedID      uuid.UUID
	VolunteerID string
	Note        string
}

type ReservationCommands interface {
	// Allocate turns a volunteer's request into a durable Reservation with
	// exactly-one-slot-consumed semantics, or fails with capacity unchanged.
	Allocate(ctx context.Context, params AllocateParams) (*queries.ReservationView, error)
	// Cancel deletes the reservation and releases its slot back to the Need.
	Cancel(ctx context.Context, reservationID uuid.UUID, requesterID string) error
}

type reservationCommandsImpl struct {
	lifecycle        NeedLifecycle
	reservations     ReservationRepository
	reservationReads queries.ReservationReadStore
}

func NewReservationCommands(
	lifecycle NeedLifecycle,
	reservations ReservationRepository,
	reservationReads queries.ReservationReadStore,
) ReservationCommands {
	return &reservationCommandsImpl{
		lifecycle:        lifecycle,
		reservations:     reservations,
		reservationReads: reservationReads,
	}
}

// Allocate claims first and records second: whenever a Reservation exists,
// capacity was truly available at that instant. The cost is the explicit
// compensation on the insert-failure path below.
func (r *reservationCommandsImpl) Allocate(ctx context.Context, params AllocateParams) (*queries.ReservationView, error) {
	if params.NeedID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(params.VolunteerID) == "" {
		return nil, ErrInvalidInput
	}
	note, err := reservation.NewNote(params.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	claimed, err := r.lifecycle.ClaimSlot(ctx, params.NeedID)
	if err != nil {
		// No slot was consumed; nothing to compensate.
		return nil, err
	}

	res, err := reservation.NewReservation(claimed.Need, params.VolunteerID, claimed.Remaining, note)
	if err != nil {
		return nil, r.compensate(ctx, params.NeedID, errs.Mark(err, ErrInvalidInput))
	}

	if err := r.reservations.Insert(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, r.compensate(ctx, params.NeedID, errs.Mark(err, ErrAlreadyRequested))
		}
		return nil, r.compensate(ctx, params.NeedID, errs.Mark(err, ErrDatabaseOperationFailed))
	}

	view, err := r.reservationReads.FindByID(ctx, res.ID())
	if err != nil {
		// The slot is consumed and the reservation durably recorded; only
		// the read-back failed.
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// compensate releases the slot claimed for a reservation that could not be
// recorded. If the release itself fails the protocol cannot self-heal: the
// error escalates to ErrCompensationFailed and is logged for manual
// reconciliation.
func (r *reservationCommandsImpl) compensate(ctx context.Context, needID uuid.UUID, cause error) error {
	if relErr := r.lifecycle.ReleaseSlot(ctx, needID); relErr != nil {
		slog.Error("slot leak: compensating release failed, manual reconciliation required",
			"need_id", needID,
			"release_error", relErr.Error(),
			"cause", cause.Error())
		return errs.Mark(cause, ErrCompensationFailed)
	}
	return cause
}

// Cancel deletes first and releases second: if the delete fails nothing is
// released and the slot stays consumed, which is the recoverable direction.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID, requesterID string) error {
	res, err := r.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Ownership of the reservation is checked by the caller; requesterID is
	// kept for the audit trail only.
	slog.Info("canceling reservation",
		"reservation_id", reservationID,
		"need_id", res.NeedID(),
		"requester_id", requesterID)

	if err := r.reservations.Delete(ctx, reservationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := r.lifecycle.ReleaseSlot(ctx, res.NeedID()); err != nil {
		// The reservation is already gone, so a slot has silently left
		// circulation until someone reconciles it.
		slog.Error("slot leak: release after cancellation failed, manual reconciliation required",
			"reservation_id", reservationID,
			"need_id", res.NeedID(),
			"error", err.Error())
		return errs.Mark(err, ErrReleaseFailed)
	}
	return nil
}

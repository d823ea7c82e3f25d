package queries

import (
	"context"

	"needboard/internal/infra"
	"needboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByVolunteer(ctx context.Context, volunteerID string, limit int) ([]*ReservationView, error)
}

type ReservationQueries interface {
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListVolunteerReservations(ctx context.Context, volunteerID string, limit int) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reads ReservationReadStore
}

func NewReservationQueries(reads ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reads: reads}
}

func (q *reservationQueriesImpl) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListVolunteerReservations(ctx context.Context, volunteerID string, limit int) ([]*ReservationView, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	views, err := q.reads.ListByVolunteer(ctx, volunteerID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

package readstore

import (
	"context"
	"time"

	"needboard/internal/infra"
	"needboard/internal/infra/docstore"
	"needboard/internal/infra/repository"
	"needboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type reservationViewRow struct {
	ID               uuid.UUID `db:"id" json:"id"`
	NeedID           uuid.UUID `db:"need_id" json:"need_id"`
	VolunteerID      string    `db:"volunteer_id" json:"volunteer_id"`
	NeedTitle        string    `db:"need_title" json:"need_title"`
	NeedCategory     string    `db:"need_category" json:"need_category"`
	NeedLocation     string    `db:"need_location" json:"need_location"`
	CapacitySnapshot int64     `db:"capacity_snapshot" json:"capacity_snapshot"`
	RequestState     string    `db:"request_state" json:"request_state"`
	Note             string    `db:"note" json:"note"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type ReservationReadStore struct {
	store docstore.Store
}

func NewReservationReadStore(store docstore.Store) *ReservationReadStore {
	return &ReservationReadStore{store: store}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var row reservationViewRow
	if err := r.store.Get(ctx, repository.ReservationsTable, id, &row); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to find reservation view by ID", err)
	}
	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) ListByVolunteer(ctx context.Context, volunteerID string, limit int) ([]*queries.ReservationView, error) {
	var rows []reservationViewRow
	filter := docstore.Filter{"volunteer_id": volunteerID}
	opts := docstore.FindOptions{OrderBy: "created_at DESC", Limit: limit}
	if err := r.store.Find(ctx, repository.ReservationsTable, filter, opts, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by volunteer", err)
	}

	views := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		views[i] = rowToReservationView(row)
	}
	return views, nil
}

func rowToReservationView(row reservationViewRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:               row.ID,
		NeedID:           row.NeedID,
		VolunteerID:      row.VolunteerID,
		NeedTitle:        row.NeedTitle,
		NeedCategory:     row.NeedCategory,
		NeedLocation:     row.NeedLocation,
		CapacitySnapshot: row.CapacitySnapshot,
		RequestState:     row.RequestState,
		Note:             row.Note,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

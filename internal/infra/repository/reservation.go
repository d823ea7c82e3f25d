package repository

import (
	"context"
	"time"

	"needboard/internal/domain/reservation"
	"needboard/internal/infra"
	"needboard/internal/infra/docstore"

	"github.com/google/uuid"
)

const ReservationsTable = "reservations"

// ReservationUniqueKey enforces one live reservation per (need, volunteer).
var ReservationUniqueKey = []string{"need_id", "volunteer_id"}

type reservationRow struct {
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

type ReservationRepository struct {
	store docstore.Store
}

func NewReservationRepository(store docstore.Store) *ReservationRepository {
	return &ReservationRepository{store: store}
}

// Insert relies on the store's unique key over (need_id, volunteer_id) to
// reject a concurrent duplicate by the same volunteer; the duplicate kind
// propagates so the allocator can branch on it.
func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	now := time.Now().UTC()
	row := map[string]any{
		"id":                res.ID(),
		"need_id":           res.NeedID(),
		"volunteer_id":      res.VolunteerID(),
		"need_title":        res.NeedTitle(),
		"need_category":     res.NeedCategory(),
		"need_location":     res.NeedLocation(),
		"capacity_snapshot": res.CapacitySnapshot(),
		"request_state":     res.RequestState().String(),
		"note":              res.Note().String(),
		"created_at":        now,
		"updated_at":        now,
	}
	if err := r.store.InsertUnique(ctx, ReservationsTable, row, ReservationUniqueKey); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return err
		}
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var row reservationRow
	if err := r.store.Get(ctx, ReservationsTable, id, &row); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rowToReservation(row), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, ReservationsTable, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	return nil
}

func rowToReservation(row reservationRow) *reservation.Reservation {
	note, _ := reservation.NewNote(row.Note)
	return reservation.ReconstructReservation(
		row.ID,
		row.NeedID,
		row.VolunteerID,
		row.NeedTitle,
		row.NeedCategory,
		row.NeedLocation,
		row.CapacitySnapshot,
		reservation.RequestState(row.RequestState),
		note,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

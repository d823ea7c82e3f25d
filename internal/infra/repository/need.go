package repository

import (
	"context"
	"time"

	"needboard/internal/domain/need"
	"needboard/internal/infra"
	"needboard/internal/infra/docstore"

	"github.com/google/uuid"
)

const NeedsTable = "needs"

type needRow struct {
	ID                uuid.UUID `db:"id" json:"id"`
	OrganizerID       string    `db:"organizer_id" json:"organizer_id"`
	Title             string    `db:"title" json:"title"`
	Category          string    `db:"category" json:"category"`
	Location          string    `db:"location" json:"location"`
	Description       string    `db:"description" json:"description"`
	CapacityRemaining int64     `db:"capacity_remaining" json:"capacity_remaining"`
	Deadline          time.Time `db:"deadline" json:"deadline"`
	State             string    `db:"state" json:"state"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// NeedRepository is the only writer of capacity_remaining and state. All
// capacity mutations go through the compare-and-set / increment primitives.
type NeedRepository struct {
	store docstore.Store
}

func NewNeedRepository(store docstore.Store) *NeedRepository {
	return &NeedRepository{store: store}
}

func (r *NeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*need.Need, error) {
	var row needRow
	if err := r.store.Get(ctx, NeedsTable, id, &row); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to find need by ID", err)
	}
	return rowToNeed(row), nil
}

func (r *NeedRepository) Insert(ctx context.Context, n *need.Need) error {
	now := time.Now().UTC()
	row := map[string]any{
		"id":                 n.ID(),
		"organizer_id":       n.OrganizerID(),
		"title":              n.Title(),
		"category":           n.Category(),
		"location":           n.Location(),
		"description":        n.Description(),
		"capacity_remaining": n.CapacityRemaining(),
		"deadline":           n.Deadline(),
		"state":              n.State().String(),
		"created_at":         now,
		"updated_at":         now,
	}
	if err := r.store.InsertUnique(ctx, NeedsTable, row, []string{"id"}); err != nil {
		return infra.WrapRepoErr("failed to insert need", err)
	}
	return nil
}

// DecrementCapacityFrom issues the single conditional write: capacity goes
// from observed to observed-1 only if the stored value is still exactly
// observed. A false return means the caller lost the race (or the need
// vanished) and must decide whether to retry from a fresh read.
func (r *NeedRepository) DecrementCapacityFrom(ctx context.Context, id uuid.UUID, observed int64) (bool, error) {
	ok, err := r.store.CompareAndSet(ctx, NeedsTable, id, "capacity_remaining", observed, observed-1)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement need capacity", err)
	}
	return ok, nil
}

// IncrementCapacity is deliberately not compare-and-set: release is a
// compensating action and the increment is commutative under concurrency.
func (r *NeedRepository) IncrementCapacity(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Increment(ctx, NeedsTable, id, "capacity_remaining", 1); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return infra.WrapRepoErr("failed to increment need capacity", err)
	}
	return nil
}

func (r *NeedRepository) MarkClosed(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Update(ctx, NeedsTable, id, map[string]any{"state": need.StateClosed.String()}); err != nil {
		return infra.WrapRepoErr("failed to mark need closed", err)
	}
	return nil
}

func rowToNeed(row needRow) *need.Need {
	return need.ReconstructNeed(
		row.ID,
		row.OrganizerID,
		row.Title,
		row.Category,
		row.Location,
		row.Description,
		row.CapacityRemaining,
		row.Deadline,
		need.State(row.State),
		row.CreatedAt,
		row.UpdatedAt,
	)
}

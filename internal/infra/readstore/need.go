package readstore

import (
	"context"
	"time"

	"needboard/internal/domain/need"
	"needboard/internal/infra"
	"needboard/internal/infra/docstore"
	"needboard/internal/infra/repository"
	"needboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type needViewRow struct {
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

type NeedReadStore struct {
	store docstore.Store
}

func NewNeedReadStore(store docstore.Store) *NeedReadStore {
	return &NeedReadStore{store: store}
}

func (r *NeedReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.NeedView, error) {
	var row needViewRow
	if err := r.store.Get(ctx, repository.NeedsTable, id, &row); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to find need view by ID", err)
	}
	return rowToNeedView(row), nil
}

func (r *NeedReadStore) ListOpen(ctx context.Context, filter queries.NeedFilter, limit int) ([]*queries.NeedView, error) {
	storeFilter := docstore.Filter{"state": need.StateOpen.String()}
	if filter.Category != nil {
		storeFilter["category"] = *filter.Category
	}
	if filter.Location != nil {
		storeFilter["location"] = *filter.Location
	}

	var rows []needViewRow
	opts := docstore.FindOptions{OrderBy: "created_at DESC", Limit: limit}
	if err := r.store.Find(ctx, repository.NeedsTable, storeFilter, opts, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to list open needs", err)
	}

	views := make([]*queries.NeedView, len(rows))
	for i, row := range rows {
		views[i] = rowToNeedView(row)
	}
	return views, nil
}

func rowToNeedView(row needViewRow) *queries.NeedView {
	return &queries.NeedView{
		ID:                row.ID,
		OrganizerID:       row.OrganizerID,
		Title:             row.Title,
		Category:          row.Category,
		Location:          row.Location,
		Description:       row.Description,
		CapacityRemaining: row.CapacityRemaining,
		Deadline:          row.Deadline,
		State:             row.State,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

package queries

import (
	"context"

	"needboard/internal/infra"
	"needboard/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxListLimit caps every listing; there is no pagination beyond it.
const MaxListLimit = 50

var (
	ErrNeedNotFound = errs.New("need not found")
	ErrQueryFailed  = errs.New("query failed")
)

type NeedReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*NeedView, error)
	ListOpen(ctx context.Context, filter NeedFilter, limit int) ([]*NeedView, error)
}

type NeedQueries interface {
	GetNeed(ctx context.Context, id uuid.UUID) (*NeedView, error)
	ListOpenNeeds(ctx context.Context, filter NeedFilter, limit int) ([]*NeedView, error)
}

type needQueriesImpl struct {
	reads NeedReadStore
}

func NewNeedQueries(reads NeedReadStore) NeedQueries {
	return &needQueriesImpl{reads: reads}
}

func (q *needQueriesImpl) GetNeed(ctx context.Context, id uuid.UUID) (*NeedView, error) {
	view, err := q.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNeedNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *needQueriesImpl) ListOpenNeeds(ctx context.Context, filter NeedFilter, limit int) ([]*NeedView, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	views, err := q.reads.ListOpen(ctx, filter, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

package commands

import (
	"context"
	"time"

	"needboard/internal/domain/need"
	"needboard/internal/pkg/errs"
	"needboard/internal/usecase/queries"
)

type PublishNeedParams struct {
	OrganizerID string
	Title       string
	Category    string
	Location    string
	Description string
	Capacity    int64
	Deadline    time.Time
}

// NeedCommands covers the organizer-side data entry around the allocation
// protocol. Publishing is a plain insert; capacity is only ever mutated
// afterwards through the lifecycle manager.
type NeedCommands interface {
	PublishNeed(ctx context.Context, params PublishNeedParams) (*queries.NeedView, error)
}

type needCommandsImpl struct {
	needs     NeedRepository
	needReads queries.NeedReadStore
}

func NewNeedCommands(needs NeedRepository, needReads queries.NeedReadStore) NeedCommands {
	return &needCommandsImpl{needs: needs, needReads: needReads}
}

func (c *needCommandsImpl) PublishNeed(ctx context.Context, params PublishNeedParams) (*queries.NeedView, error) {
	n, err := need.NewNeed(
		params.OrganizerID,
		params.Title,
		params.Category,
		params.Location,
		params.Description,
		params.Capacity,
		params.Deadline,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	if err := c.needs.Insert(ctx, n); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.needReads.FindByID(ctx, n.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

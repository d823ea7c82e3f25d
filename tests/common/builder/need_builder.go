//go:build unit || e2e

package builder

import (
	"time"

	domneed "needboard/internal/domain/need"
	reqdto "needboard/internal/handler/dto/request"
	"needboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type NeedBuilder struct {
	OrganizerID string
	Title       string
	Category    string
	Location    string
	Description string
	Capacity    int64
	Deadline    time.Time
	State       domneed.State
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewNeedBuilder() *NeedBuilder {
	now := time.Now()
	return &NeedBuilder{
		OrganizerID: "org-17",
		Title:       "Beach cleanup",
		Category:    "environment",
		Location:    "Shonan",
		Description: "Pick up litter along the shoreline",
		Capacity:    5,
		Deadline:    now.AddDate(0, 0, 14),
		State:       domneed.StateOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *NeedBuilder) With(mutate func(*NeedBuilder)) *NeedBuilder {
	mutate(b)
	return b
}

func (b *NeedBuilder) BuildDomain() (*domneed.Need, error) {
	return domneed.NewNeed(b.OrganizerID, b.Title, b.Category, b.Location, b.Description, b.Capacity, b.Deadline)
}

// BuildReconstructed bypasses constructor validation so tests can stage
// closed or exhausted needs directly.
func (b *NeedBuilder) BuildReconstructed(id uuid.UUID) *domneed.Need {
	return domneed.ReconstructNeed(
		id,
		b.OrganizerID,
		b.Title,
		b.Category,
		b.Location,
		b.Description,
		b.Capacity,
		b.Deadline,
		b.State,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *NeedBuilder) BuildCreateRequestDTO() reqdto.CreateNeedRequest {
	return reqdto.CreateNeedRequest{
		Title:       b.Title,
		Category:    b.Category,
		Location:    b.Location,
		Description: b.Description,
		Capacity:    b.Capacity,
		Deadline:    b.Deadline,
	}
}

func (b *NeedBuilder) BuildView(id uuid.UUID) *queries.NeedView {
	return &queries.NeedView{
		ID:                id,
		OrganizerID:       b.OrganizerID,
		Title:             b.Title,
		Category:          b.Category,
		Location:          b.Location,
		Description:       b.Description,
		CapacityRemaining: b.Capacity,
		Deadline:          b.Deadline,
		State:             b.State.String(),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

package response

import (
	"time"

	"needboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NeedResponse struct {
	ID                uuid.UUID `json:"id"`
	OrganizerID       string    `json:"organizer_id"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	Location          string    `json:"location"`
	Description       string    `json:"description"`
	CapacityRemaining int64     `json:"capacity_remaining"`
	Deadline          time.Time `json:"deadline"`
	State             string    `json:"state"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromNeedView(view *queries.NeedView) *NeedResponse {
	var resp NeedResponse
	// Field-for-field copy; the response mirrors the read model.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromNeedViews(views []*queries.NeedView) []*NeedResponse {
	resp := make([]*NeedResponse, len(views))
	for i, v := range views {
		resp[i] = FromNeedView(v)
	}
	return resp
}

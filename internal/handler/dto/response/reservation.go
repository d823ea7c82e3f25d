package response

import (
	"time"

	"needboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID               uuid.UUID `json:"id"`
	NeedID           uuid.UUID `json:"need_id"`
	VolunteerID      string    `json:"volunteer_id"`
	NeedTitle        string    `json:"need_title"`
	NeedCategory     string    `json:"need_category"`
	NeedLocation     string    `json:"need_location"`
	CapacitySnapshot int64     `json:"capacity_snapshot"`
	RequestState     string    `json:"request_state"`
	Note             string    `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i, v := range views {
		resp[i] = FromReservationView(v)
	}
	return resp
}

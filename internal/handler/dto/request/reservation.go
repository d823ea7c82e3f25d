package request

type CreateReservationRequest struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}

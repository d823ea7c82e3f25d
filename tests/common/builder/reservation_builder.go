//go:build unit || e2e

package builder

import (
	"time"

	domres "needboard/internal/domain/reservation"
	reqdto "needboard/internal/handler/dto/request"
	"needboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	NeedID           uuid.UUID
	VolunteerID      string
	NeedTitle        string
	NeedCategory     string
	NeedLocation     string
	CapacitySnapshot int64
	RequestState     domres.RequestState
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		NeedID:           uuid.New(),
		VolunteerID:      "vol-42",
		NeedTitle:        "Beach cleanup",
		NeedCategory:     "environment",
		NeedLocation:     "Shonan",
		CapacitySnapshot: 4,
		RequestState:     domres.StateRequested,
		Note:             "Happy to bring gloves",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildReconstructed(id uuid.UUID) *domres.Reservation {
	note, _ := domres.NewNote(b.Note)
	return domres.ReconstructReservation(
		id,
		b.NeedID,
		b.VolunteerID,
		b.NeedTitle,
		b.NeedCategory,
		b.NeedLocation,
		b.CapacitySnapshot,
		b.RequestState,
		note,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{Note: b.Note}
}

func (b *ReservationBuilder) BuildView(id uuid.UUID) *queries.ReservationView {
	return &queries.ReservationView{
		ID:               id,
		NeedID:           b.NeedID,
		VolunteerID:      b.VolunteerID,
		NeedTitle:        b.NeedTitle,
		NeedCategory:     b.NeedCategory,
		NeedLocation:     b.NeedLocation,
		CapacitySnapshot: b.CapacitySnapshot,
		RequestState:     b.RequestState.String(),
		Note:             b.Note,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

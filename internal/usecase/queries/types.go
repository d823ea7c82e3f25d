package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type NeedView struct {
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

type ReservationView struct {
	ID               uuid.UUID `json:"id"`
	NeedID           uuid.UUID `json:"need_id"`
	VolunteerID      string    `json:"volunteer_id"`
	NeedTitle        string    `json:"need_title"`
	NeedCategory     string    `json:"need_category"`
	NeedLocation     string    `json:"need_location"`
	CapacitySnapshot int64     `json:"capacity_snapshot"`
	RequestState     string    `json:"request_state"`
	Note             string    `json:"note"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NeedFilter narrows open-need listings; nil fields match everything.
type NeedFilter struct {
	Category *string
	Location *string
}

package reservation

import (
	"errors"
	"strings"
	"time"

	"needboard/internal/domain/need"

	"github.com/google/uuid"
)

var (
	ErrVolunteerRequired = errors.New("volunteer id is required")
	ErrNeedRequired      = errors.New("need reference is required")
	ErrNegativeSnapshot  = errors.New("capacity snapshot cannot be negative")
)

// Reservation records one volunteer's accepted claim against a Need. It
// embeds a point-in-time snapshot of the Need's descriptive fields and the
// post-claim remaining capacity as a denormalized audit value.
type Reservation struct {
	id               uuid.UUID
	needID           uuid.UUID
	volunteerID      string
	needTitle        string
	needCategory     string
	needLocation     string
	capacitySnapshot int64
	requestState     RequestState
	note             Note
	createdAt        time.Time
	updatedAt        time.Time
}

// NewReservation captures the Need's descriptive fields as they were at
// claim time; postClaimCapacity is the value the claim decremented to.
func NewReservation(n *need.Need, volunteerID string, postClaimCapacity int64, note Note) (*Reservation, error) {
	if n == nil || n.ID() == uuid.Nil {
		return nil, ErrNeedRequired
	}
	if strings.TrimSpace(volunteerID) == "" {
		return nil, ErrVolunteerRequired
	}
	if postClaimCapacity < 0 {
		return nil, ErrNegativeSnapshot
	}

	return &Reservation{
		id:               uuid.New(),
		needID:           n.ID(),
		volunteerID:      volunteerID,
		needTitle:        n.Title(),
		needCategory:     n.Category(),
		needLocation:     n.Location(),
		capacitySnapshot: postClaimCapacity,
		requestState:     StateRequested,
		note:             note,
	}, nil
}

func ReconstructReservation(
	id, needID uuid.UUID,
	volunteerID, needTitle, needCategory, needLocation string,
	capacitySnapshot int64,
	requestState RequestState,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		needID:           needID,
		volunteerID:      volunteerID,
		needTitle:        needTitle,
		needCategory:     needCategory,
		needLocation:     needLocation,
		capacitySnapshot: capacitySnapshot,
		requestState:     requestState,
		note:             note,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) NeedID() uuid.UUID          { return r.needID }
func (r *Reservation) VolunteerID() string        { return r.volunteerID }
func (r *Reservation) NeedTitle() string          { return r.needTitle }
func (r *Reservation) NeedCategory() string       { return r.needCategory }
func (r *Reservation) NeedLocation() string       { return r.needLocation }
func (r *Reservation) CapacitySnapshot() int64    { return r.capacitySnapshot }
func (r *Reservation) RequestState() RequestState { return r.requestState }
func (r *Reservation) Note() Note                 { return r.note }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }

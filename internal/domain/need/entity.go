package need

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrOrganizerRequired = errors.New("organizer id is required")
	ErrInvalidCapacity   = errors.New("capacity must be a positive integer")
	ErrClosed            = errors.New("need is closed")
	ErrExpired           = errors.New("need deadline has passed")
	ErrExhausted         = errors.New("need has no remaining slots")
)

// Need is a capacity-bounded opportunity. capacityRemaining is mutated only
// through the lifecycle manager's claim/release operations; closure is
// forward-only.
type Need struct {
	id                uuid.UUID
	organizerID       string
	title             string
	category          string
	location          string
	description       string
	capacityRemaining int64
	deadline          time.Time
	state             State
	createdAt         time.Time
	updatedAt         time.Time
}

func NewNeed(organizerID, title, category, location, description string, capacity int64, deadline time.Time) (*Need, error) {
	if strings.TrimSpace(organizerID) == "" {
		return nil, ErrOrganizerRequired
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Need{
		id:                uuid.New(),
		organizerID:       organizerID,
		title:             title,
		category:          category,
		location:          location,
		description:       description,
		capacityRemaining: capacity,
		deadline:          deadline,
		state:             StateOpen,
	}, nil
}

func ReconstructNeed(
	id uuid.UUID,
	organizerID, title, category, location, description string,
	capacityRemaining int64,
	deadline time.Time,
	state State,
	createdAt, updatedAt time.Time,
) *Need {
	return &Need{
		id:                id,
		organizerID:       organizerID,
		title:             title,
		category:          category,
		location:          location,
		description:       description,
		capacityRemaining: capacityRemaining,
		deadline:          deadline,
		state:             state,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// CanClaim checks every claim precondition against a snapshot of the Need.
// The capacity check here is only a screen; the authoritative decrement is
// the store-level compare-and-set.
func (n *Need) CanClaim(now time.Time) error {
	if n.state != StateOpen {
		return ErrClosed
	}
	if n.DeadlinePassed(now) {
		return ErrExpired
	}
	if n.capacityRemaining <= 0 {
		return ErrExhausted
	}
	return nil
}

// DeadlinePassed is end-of-day inclusive: a deadline on calendar day D
// permits claims through the last instant of day D.
func (n *Need) DeadlinePassed(now time.Time) bool {
	year, month, day := n.deadline.Date()
	endOfDay := time.Date(year, month, day, 0, 0, 0, 0, n.deadline.Location()).AddDate(0, 0, 1)
	return !now.Before(endOfDay)
}

func (n *Need) IsOpen() bool {
	return n.state == StateOpen
}

func (n *Need) ID() uuid.UUID            { return n.id }
func (n *Need) OrganizerID() string      { return n.organizerID }
func (n *Need) Title() string            { return n.title }
func (n *Need) Category() string         { return n.category }
func (n *Need) Location() string         { return n.location }
func (n *Need) Description() string      { return n.description }
func (n *Need) CapacityRemaining() int64 { return n.capacityRemaining }
func (n *Need) Deadline() time.Time      { return n.deadline }
func (n *Need) State() State             { return n.state }
func (n *Need) CreatedAt() time.Time     { return n.createdAt }
func (n *Need) UpdatedAt() time.Time     { return n.updatedAt }

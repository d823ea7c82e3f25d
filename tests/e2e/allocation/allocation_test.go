//go:build e2e

package allocation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"needboard/internal/handler/dto/response"
	"needboard/tests/common/builder"
	"needboard/tests/common/httptest"
	"needboard/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	needsURL        = "/api/needs"
	reservationsURL = "/api/reservations"
)

type AllocationSuite struct {
	e2e.SharedSuite
}

func (s *AllocationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAllocationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AllocationSuite))
}

func (s *AllocationSuite) publishNeed(t *testing.T, capacity int64) response.NeedResponse {
	t.Helper()

	reqBody := builder.NewNeedBuilder().
		With(func(b *builder.NeedBuilder) {
			b.Capacity = capacity
			b.Deadline = time.Now().AddDate(0, 0, 14)
		}).
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, needsURL, reqBody, "org-17")

	var created response.NeedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func (s *AllocationSuite) getNeed(t *testing.T, id uuid.UUID) response.NeedResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, needsURL+"/"+id.String(), nil, "")
	var need response.NeedResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &need)
	return need
}

func (s *AllocationSuite) allocate(t *testing.T, needID uuid.UUID, volunteerID string) (*response.ReservationResponse, int) {
	t.Helper()
	url := needsURL + "/" + needID.String() + "/reservations"
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"note": "count me in"}, volunteerID)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res, w.Code
}

// =============================================================================
// TestNeedLifecycle - publish and browse needs
// =============================================================================

func (s *AllocationSuite) TestNeedLifecycle() {
	s.Run("published needs show up in open listings", func() {
		t := s.T()
		created := s.publishNeed(t, 5)

		fetched := s.getNeed(t, created.ID)
		if diff := cmp.Diff(created, fetched, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("need mismatch (-created +fetched):\n%s", diff)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, needsURL, nil, "")
		var listed []response.NeedResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, created.ID, listed[0].ID)
	})

	s.Run("publishing requires identity", func() {
		t := s.T()
		reqBody := builder.NewNeedBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, needsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Actor identity required")
	})
}

// =============================================================================
// TestReservationAllocation - slot claims against real conditional updates
// =============================================================================

func (s *AllocationSuite) TestReservationAllocation() {
	s.Run("allocating consumes a slot and records the snapshot", func() {
		t := s.T()
		created := s.publishNeed(t, 3)

		res, code := s.allocate(t, created.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, created.ID, res.NeedID)
		require.Equal(t, "vol-1", res.VolunteerID)
		require.Equal(t, int64(2), res.CapacitySnapshot)
		require.Equal(t, "requested", res.RequestState)
		require.Equal(t, created.Title, res.NeedTitle)

		require.Equal(t, int64(2), s.getNeed(t, created.ID).CapacityRemaining)
	})

	s.Run("second request by the same volunteer conflicts and conserves capacity", func() {
		t := s.T()
		created := s.publishNeed(t, 3)

		_, code := s.allocate(t, created.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)

		_, code = s.allocate(t, created.ID, "vol-1")
		require.Equal(t, http.StatusConflict, code)

		require.Equal(t, int64(2), s.getNeed(t, created.ID).CapacityRemaining)
	})

	s.Run("taking the last slot closes the need", func() {
		t := s.T()
		created := s.publishNeed(t, 1)

		_, code := s.allocate(t, created.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)

		need := s.getNeed(t, created.ID)
		require.Equal(t, int64(0), need.CapacityRemaining)
		require.Equal(t, "closed", need.State)

		_, code = s.allocate(t, created.ID, "vol-2")
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("unknown need returns 404", func() {
		t := s.T()
		_, code := s.allocate(t, uuid.New(), "vol-1")
		require.Equal(t, http.StatusNotFound, code)
	})

	s.Run("concurrent volunteers never oversubscribe", func() {
		t := s.T()
		const capacity = 3
		const racers = 8
		created := s.publishNeed(t, capacity)

		var wg sync.WaitGroup
		codes := make(chan int, racers)
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, code := s.allocate(t, created.ID, fmt.Sprintf("vol-%d", i))
				codes <- code
			}()
		}
		wg.Wait()
		close(codes)

		wins := 0
		for code := range codes {
			if code == http.StatusCreated {
				wins++
			} else {
				require.Contains(t, []int{http.StatusConflict, http.StatusUnprocessableEntity}, code)
			}
		}

		require.LessOrEqual(t, wins, capacity, "more reservations than slots")
		require.Equal(t, int64(capacity-wins), s.getNeed(t, created.ID).CapacityRemaining)
	})
}

// =============================================================================
// TestReservationCancellation - delete-then-release round trips
// =============================================================================

func (s *AllocationSuite) TestReservationCancellation() {
	s.Run("cancel releases the slot and deletes the reservation", func() {
		t := s.T()
		created := s.publishNeed(t, 2)

		res, code := s.allocate(t, created.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, int64(1), s.getNeed(t, created.ID).CapacityRemaining)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+res.ID.String(), nil, "vol-1")
		require.Equal(t, http.StatusNoContent, w.Code)

		require.Equal(t, int64(2), s.getNeed(t, created.ID).CapacityRemaining)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+res.ID.String(), nil, "vol-1")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")

		// The freed slot is claimable again by the same volunteer.
		_, code = s.allocate(t, created.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)
	})

	s.Run("cancelling twice returns 404", func() {
		t := s.T()
		created := s.publishNeed(t, 2)

		res, code := s.allocate(t, created.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)

		url := reservationsURL + "/" + res.ID.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, "vol-1")
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, "vol-1")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})
}

// =============================================================================
// TestReservationListing - volunteer-scoped reads
// =============================================================================

func (s *AllocationSuite) TestReservationListing() {
	s.Run("volunteers see only their own reservations, newest first", func() {
		t := s.T()
		first := s.publishNeed(t, 3)
		second := s.publishNeed(t, 3)

		_, code := s.allocate(t, first.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)
		_, code = s.allocate(t, second.ID, "vol-1")
		require.Equal(t, http.StatusCreated, code)
		_, code = s.allocate(t, first.ID, "vol-2")
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, "vol-1")
		var mine []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 2)
		for _, res := range mine {
			require.Equal(t, "vol-1", res.VolunteerID)
		}
	})

	s.Run("listing requires identity", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Actor identity required")
	})
}

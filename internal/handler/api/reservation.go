package api

import (
	"net/http"
	"strconv"

	reqdto "needboard/internal/handler/dto/request"
	resdto "needboard/internal/handler/dto/response"
	"needboard/internal/handler/httperr"
	"needboard/internal/handler/middleware"
	"needboard/internal/pkg/errs"
	"needboard/internal/usecase/commands"
	"needboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Request a slot
// @Description Allocate one slot of a need to the calling volunteer
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Volunteer identity"
// @Param id path string true "Need ID"
// @Param request body reqdto.CreateReservationRequest false "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /needs/{id}/reservations [post]
func (h *ReservationHandler) Allocate(c *gin.Context) {
	volunteerID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	needID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && bindErr.Error() != "EOF" {
		httperr.Write(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := h.reservationCommands.Allocate(c.Request.Context(), commands.AllocateParams{
		NeedID:      needID,
		VolunteerID: volunteerID,
		Note:        req.Note,
	})
	if err != nil {
		h.writeAllocateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) writeAllocateError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidInput):
		httperr.Write(c, http.StatusBadRequest, "Invalid reservation request")
	case errs.Is(err, commands.ErrNeedNotFound):
		httperr.Write(c, http.StatusNotFound, "Need not found")
	case errs.Is(err, commands.ErrNeedExpired):
		httperr.Write(c, http.StatusUnprocessableEntity, "Need deadline has passed")
	case errs.Is(err, commands.ErrNeedClosed):
		httperr.Write(c, http.StatusUnprocessableEntity, "Need is closed")
	case errs.Is(err, commands.ErrNeedExhausted):
		httperr.Write(c, http.StatusConflict, "No slots left")
	case errs.Is(err, commands.ErrSlotContended):
		httperr.Write(c, http.StatusConflict, "Slot claim lost a concurrent race, try again")
	// Checked before ErrAlreadyRequested: a failed compensation carries both
	// marks and must surface as the state needing manual reconciliation.
	case errs.Is(err, commands.ErrCompensationFailed):
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
	case errs.Is(err, commands.ErrAlreadyRequested):
		httperr.Write(c, http.StatusConflict, "Already requested")
	default:
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
	}
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param X-Actor-ID header string true "Caller identity"
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	view, err := h.reservationQueries.GetReservation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationNotFound):
			httperr.Write(c, http.StatusNotFound, "Reservation not found")
		default:
			httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List the calling volunteer's reservations, newest first
// @Tags reservations
// @Produce json
// @Param X-Actor-ID header string true "Volunteer identity"
// @Param limit query int false "Maximum results (capped)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	volunteerID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.Write(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	views, err := h.reservationQueries.ListVolunteerReservations(c.Request.Context(), volunteerID, limit)
	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation
// @Description Delete a reservation and release its slot back to the need
// @Tags reservations
// @Produce json
// @Param X-Actor-ID header string true "Caller identity"
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	requesterID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id, requesterID); err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			httperr.Write(c, http.StatusNotFound, "Reservation not found")
		default:
			httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

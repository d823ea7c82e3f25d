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

type NeedHandler struct {
	needCommands commands.NeedCommands
	needQueries  queries.NeedQueries
}

func NewNeedHandler(needCommands commands.NeedCommands, needQueries queries.NeedQueries) *NeedHandler {
	return &NeedHandler{
		needCommands: needCommands,
		needQueries:  needQueries,
	}
}

// @Summary Publish need
// @Description Publish a new need with open slots and a deadline
// @Tags needs
// @Accept json
// @Produce json
// @Param X-Actor-ID header string true "Organizer identity"
// @Param request body reqdto.CreateNeedRequest true "Need"
// @Success 201 {object} resdto.NeedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /needs [post]
func (h *NeedHandler) Publish(c *gin.Context) {
	organizerID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req reqdto.CreateNeedRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := h.needCommands.PublishNeed(c.Request.Context(), commands.PublishNeedParams{
		OrganizerID: organizerID,
		Title:       req.Title,
		Category:    req.Category,
		Location:    req.Location,
		Description: req.Description,
		Capacity:    req.Capacity,
		Deadline:    req.Deadline,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidInput):
			httperr.Write(c, http.StatusBadRequest, "Invalid need")
		default:
			httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromNeedView(view))
}

// @Summary Get need
// @Description Get need by ID
// @Tags needs
// @Produce json
// @Param id path string true "Need ID"
// @Success 200 {object} resdto.NeedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /needs/{id} [get]
func (h *NeedHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid need ID format")
		return
	}

	view, err := h.needQueries.GetNeed(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrNeedNotFound):
			httperr.Write(c, http.StatusNotFound, "Need not found")
		default:
			httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromNeedView(view))
}

// @Summary List open needs
// @Description List open needs, newest first, optionally filtered by category and location
// @Tags needs
// @Produce json
// @Param category query string false "Category filter"
// @Param location query string false "Location filter"
// @Param limit query int false "Maximum results (capped)"
// @Success 200 {array} resdto.NeedResponse
// @Router /needs [get]
func (h *NeedHandler) List(c *gin.Context) {
	var filter queries.NeedFilter
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
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

	views, err := h.needQueries.ListOpenNeeds(c.Request.Context(), filter, limit)
	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromNeedViews(views))
}

//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"needboard/internal/handler/api"
	reqdto "needboard/internal/handler/dto/request"
	"needboard/internal/handler/middleware"
	"needboard/internal/pkg/errs"
	"needboard/internal/usecase/commands"
	"needboard/internal/usecase/queries"
	"needboard/tests/common/builder"
	"needboard/tests/common/httptest"
	"needboard/tests/common/testutil"
	commandsmock "needboard/tests/mock/commands"
	queriesmock "needboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidations())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/needs/:id/reservations", middleware.RequireIdentity(), s.handler.Allocate)
	s.router.GET("/reservations", middleware.RequireIdentity(), s.handler.ListMine)
	s.router.GET("/reservations/:id", middleware.RequireIdentity(), s.handler.Get)
	s.router.DELETE("/reservations/:id", middleware.RequireIdentity(), s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestAllocate() {
	needID := uuid.New()
	url := "/needs/" + needID.String() + "/reservations"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) { b.NeedID = needID }).
		BuildView(uuid.New())

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().
			Allocate(gomock.Any(), commands.AllocateParams{
				NeedID:      needID,
				VolunteerID: "vol-42",
				Note:        reqBody.Note,
			}).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "vol-42")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(needID.String(), body["need_id"])
		s.Equal("requested", body["request_state"])
	})

	s.Run("success: empty body allocates without a note", func() {
		s.mockCommands.EXPECT().
			Allocate(gomock.Any(), commands.AllocateParams{NeedID: needID, VolunteerID: "vol-42"}).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "vol-42")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 when note exceeds maximum length", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("note", strings.Repeat("a", 501)))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "vol-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on malformed need id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/needs/not-a-uuid/reservations", reqBody, "vol-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid need ID format")
	})

	s.Run("error: 401 Unauthorized without actor identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Actor identity required")
	})

	s.Run("error: maps allocation errors to proper statuses", func() {
		// Marked errors mirror what Allocate actually returns: the sentinel is
		// attached via errs.Mark on top of the low-level cause.
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid input",
				commandsError:  errs.Mark(errs.New("note exceeds maximum length"), commands.ErrInvalidInput),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid reservation request",
			},
			{
				name:           "need not found",
				commandsError:  commands.ErrNeedNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Need not found",
			},
			{
				name:           "deadline passed",
				commandsError:  commands.ErrNeedExpired,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Need deadline has passed",
			},
			{
				name:           "need closed",
				commandsError:  commands.ErrNeedClosed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Need is closed",
			},
			{
				name:           "no slots left",
				commandsError:  commands.ErrNeedExhausted,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No slots left",
			},
			{
				name:           "lost slot race",
				commandsError:  commands.ErrSlotContended,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "try again",
			},
			{
				name:           "already requested",
				commandsError:  errs.Mark(errs.New("unique key violated"), commands.ErrAlreadyRequested),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Already requested",
			},
			{
				// A failed compensation carries ErrAlreadyRequested underneath
				// but must not be reported as a routine 409: it is the one
				// state requiring manual reconciliation.
				name: "compensation failure outranks already requested",
				commandsError: errs.Mark(
					errs.Mark(errs.New("unique key violated"), commands.ErrAlreadyRequested),
					commands.ErrCompensationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "storage failure",
				commandsError:  errs.Mark(errs.New("connection reset"), commands.ErrStorageFailure),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "database failure",
				commandsError:  errs.Mark(errs.New("connection reset"), commands.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Allocate(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "vol-42")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	returnView := builder.NewReservationBuilder().BuildView(uuid.New())

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "vol-42")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.Equal(returnView.NeedTitle, body["need_title"])
	})

	s.Run("error: 404 when unknown", func() {
		unknownID := uuid.New()
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), unknownID).
			Return(nil, queries.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+unknownID.String(), nil, "vol-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 401 Unauthorized without actor identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Actor identity required")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: lists the caller's reservations", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(uuid.New()),
		}
		s.mockQueries.EXPECT().ListVolunteerReservations(gomock.Any(), "vol-42", 0).
			Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "vol-42")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: forwards the limit", func() {
		s.mockQueries.EXPECT().ListVolunteerReservations(gomock.Any(), "vol-42", 5).
			Return([]*queries.ReservationView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=5", nil, "vol-42")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=ten", nil, "vol-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, "vol-42").
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "vol-42")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 when unknown", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, "vol-42").
			Return(commands.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "vol-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 500 when the released slot leaks", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), reservationID, "vol-42").
			Return(errs.Mark(errs.New("connection reset"), commands.ErrReleaseFailed)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "vol-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "vol-42")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"meetbook/internal/handler/api"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/usecase/commands"
	"meetbook/internal/usecase/queries"
	"meetbook/tests/common/builder"
	"meetbook/tests/common/httptest"
	"meetbook/tests/common/testutil"
	commandsmock "meetbook/tests/mock/commands"
	queriesmock "meetbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		identity := builder.NewUserBuilder().WithEmail("guest@example.com").BuildIdentity()
		c.Set("identity", identity)
		c.Set("jwt_claims", map[string]any{
			"email": identity.Email.Value(),
			"role":  identity.Role.String(),
		})
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMine)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Cancel)
	s.router.DELETE("/meeting/booking/:id", authMiddleware, s.handler.CancelAsOwner)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	returnView := builder.NewBookingBuilder().BuildView()
	reqBody := builder.NewBookingBuilder().
		WithMeetingID(returnView.MeetingID).
		BuildCreateRequestMap("a1b2c3d4e5f6")

	missing := []testCaseBooking{
		{name: "missing field: meetingId (required)", mutate: testutil.Field("meetingId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: slotId (required)", mutate: testutil.Field("slotId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "malformed meetingId", mutate: testutil.Field("meetingId", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with BookingResponse", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.MeetingID, response.MeetingID)
		s.Equal(returnView.Date, response.Date)
		s.Equal(returnView.Slot.StartTime, response.Slot.StartTime)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := builder.NewBookingBuilder().
					WithMeetingID(returnView.MeetingID).
					BuildCreateRequestMap("a1b2c3d4e5f6")
				tc.mutate(requestMap)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown meeting or slot",
				commandsError:  commands.ErrInvalidSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid meeting or slot",
			},
			{
				name:           "occurrence already booked",
				commandsError:  commands.ErrSlotAlreadyBooked,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Slot already booked for this date",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithDate("2024-05-01").BuildView(),
		builder.NewBookingBuilder().WithDate("2024-05-02").BuildView(),
	}

	s.Run("success: returns the caller's bookings", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "guest@example.com").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].Date, response[0].Date)
		s.Equal(views[1].Date, response[1].Date)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "guest@example.com").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()

	cancelCases := []struct {
		name   string
		url    string
		expect func() *gomock.Call
	}{
		{
			name: "own booking",
			url:  "/bookings/" + bookingID.String(),
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().CancelOwn(gomock.Any(), bookingID, gomock.Any())
			},
		},
		{
			name: "as meeting owner",
			url:  "/meeting/booking/" + bookingID.String(),
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().CancelAsMeetingOwner(gomock.Any(), bookingID, gomock.Any())
			},
		},
	}

	for _, cc := range cancelCases {
		s.Run(cc.name, func() {
			s.Run("success: returns 204 No Content", func() {
				cc.expect().Return(nil).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, cc.url, nil, "bearer-token")
				s.Equal(http.StatusNoContent, rec.Code)
			})

			s.Run("error: 400 Bad Request for invalid UUID", func() {
				invalidURL := cc.url[:len(cc.url)-len(bookingID.String())] + "invalid-uuid"
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, invalidURL, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
			})

			s.Run("error: 401 Unauthorized when unauthenticated", func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, cc.url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
			})

			s.Run("error: maps usecase errors to proper statuses", func() {
				testCases := []struct {
					name           string
					commandsError  error
					expectedStatus int
					expectedMsg    string
				}{
					{
						name:           "booking not found",
						commandsError:  commands.ErrBookingNotFound,
						expectedStatus: http.StatusNotFound,
						expectedMsg:    "Booking not found",
					},
					{
						name:           "not allowed",
						commandsError:  commands.ErrForbidden,
						expectedStatus: http.StatusForbidden,
						expectedMsg:    "Not allowed to cancel this booking",
					},
					{
						name:           "internal server error",
						commandsError:  errors.New("database error"),
						expectedStatus: http.StatusInternalServerError,
						expectedMsg:    "Internal server error",
					},
				}

				for _, tc := range testCases {
					s.Run(tc.name, func() {
						cc.expect().Return(tc.commandsError).Times(1)

						rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, cc.url, nil, "bearer-token")
						httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
					})
				}
			})
		})
	}
}

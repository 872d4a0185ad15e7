//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"meetbook/internal/handler/api"
	resdto "meetbook/internal/handler/dto/response"
	"meetbook/internal/usecase/commands"
	"meetbook/tests/common/httptest"
	"meetbook/tests/common/testutil"
	commandsmock "meetbook/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/jwt", s.handler.IssueToken)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestIssueToken() {
	url := "/jwt"

	reqBody := map[string]any{"email": "guest@example.com"}

	s.Run("success: returns 200 OK with TokenResponse", func() {
		s.mockCommands.EXPECT().IssueToken(gomock.Any(), gomock.Any()).
			Return("signed.jwt.token", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed.jwt.token", response.Token)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validation := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}

		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := map[string]any{"email": "guest@example.com"}
				tc.mutate(requestMap)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid email",
				commandsError:  commands.ErrInvalidEmail,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid email",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("signing failed"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().IssueToken(gomock.Any(), gomock.Any()).
					Return("", tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bagtrack/internal/handler/api"
	resdto "bagtrack/internal/handler/dto/response"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/commands"
	"bagtrack/internal/usecase/queries"
	"bagtrack/tests/common/builder"
	"bagtrack/tests/common/httptest"
	"bagtrack/tests/common/testutil"
	commandsmock "bagtrack/tests/mock/commands"
	queriesmock "bagtrack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/auth/otp/send", s.handler.SendCode)
	s.router.POST("/auth/otp/verify", s.handler.VerifyCode)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestSendCode() {
	url := "/auth/otp/send"
	phone := "+966501234567"
	sessionID := uuid.New()
	devCode := "123456"

	s.Run("success: returns session id and expiry", func() {
		s.mockCommands.EXPECT().SendCode(gomock.Any(), phone).
			Return(&commands.SendCodeResult{SessionID: sessionID, ExpiresIn: 300, DevCode: &devCode}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"phone_number": phone}, "")

		var response resdto.SendCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(sessionID, response.SessionID)
		s.Equal(300, response.ExpiresIn)
		s.Require().NotNil(response.DevCode)
		s.Equal(devCode, *response.DevCode)
	})

	s.Run("error: 400 Bad Request when phone_number missing", func() {
		body := testutil.DtoMap(s.T(), map[string]any{"phone_number": phone}, testutil.Field("phone_number", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid phone number",
				commandsError:  errs.ErrInvalidPhoneNumber,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid phone number",
			},
			{
				name:           "rate limited",
				commandsError:  errs.ErrRateLimited,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Too many codes requested",
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
				s.mockCommands.EXPECT().SendCode(gomock.Any(), phone).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"phone_number": phone}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestVerifyCode() {
	url := "/auth/otp/verify"
	phone := "+966501234567"
	sessionID := uuid.New()
	userID := uuid.New()
	body := map[string]any{
		"session_id":   sessionID.String(),
		"phone_number": phone,
		"code":         "123456",
	}

	s.Run("success: returns access token", func() {
		s.mockCommands.EXPECT().VerifyCode(gomock.Any(), sessionID, phone, "123456").
			Return(&commands.VerifyCodeResult{AccessToken: "test-jwt-token", UserID: userID, PhoneNumber: phone}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.VerifyCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(userID, response.UserID)
		s.Equal(phone, response.PhoneNumber)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"session_id", "phone_number", "code"} {
			s.Run("missing "+field, func() {
				mutated := testutil.DtoMap(s.T(), body, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, mutated, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
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
				name:           "session not found",
				commandsError:  errs.ErrSessionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Verification session not found",
			},
			{
				name:           "session expired",
				commandsError:  errs.ErrSessionExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "Verification code expired",
			},
			{
				name:           "session consumed",
				commandsError:  errs.ErrSessionConsumed,
				expectedStatus: http.StatusGone,
				expectedMsg:    "already used",
			},
			{
				name:           "code mismatch",
				commandsError:  errs.ErrCodeMismatch,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Incorrect verification code",
			},
			{
				name:           "too many attempts",
				commandsError:  errs.ErrTooManyAttempts,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Too many failed attempts",
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
				s.mockCommands.EXPECT().VerifyCode(gomock.Any(), sessionID, phone, "123456").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.PhoneNumber, response["phone_number"])
	})

	s.Run("error: returns 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "user not found",
				queriesError:   queries.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

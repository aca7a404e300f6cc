//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "bagtrack/internal/handler/dto/request"
	resdto "bagtrack/internal/handler/dto/response"
	"bagtrack/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Authenticate drives the full OTP exchange against a router running with dev
// mode on, where the send response echoes the generated code.
func Authenticate(t *testing.T, router *gin.Engine, phoneNumber string) resdto.VerifyCodeResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/auth/otp/send",
		reqdto.SendCodeRequest{PhoneNumber: phoneNumber}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var sent resdto.SendCodeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &sent)
	require.NotNil(t, sent.DevCode, "dev mode must be enabled for test authentication")

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/auth/otp/verify",
		reqdto.VerifyCodeRequest{SessionID: sent.SessionID, PhoneNumber: phoneNumber, Code: *sent.DevCode}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var verified resdto.VerifyCodeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &verified)
	require.NotEmpty(t, verified.AccessToken)
	return verified
}

package response

import (
	"bagtrack/internal/usecase/commands"

	"github.com/google/uuid"
)

type SendCodeResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	ExpiresIn int       `json:"expires_in"`
	// DevCode is populated only when the server runs with OTP dev mode on.
	DevCode *string `json:"dev_code,omitempty"`
}

func FromSendCodeResult(result *commands.SendCodeResult) SendCodeResponse {
	return SendCodeResponse{
		SessionID: result.SessionID,
		ExpiresIn: result.ExpiresIn,
		DevCode:   result.DevCode,
	}
}

type VerifyCodeResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	PhoneNumber string    `json:"phone_number"`
}

func FromVerifyCodeResult(result *commands.VerifyCodeResult) VerifyCodeResponse {
	return VerifyCodeResponse{
		AccessToken: result.AccessToken,
		UserID:      result.UserID,
		PhoneNumber: result.PhoneNumber,
	}
}

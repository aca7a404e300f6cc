package request

import "github.com/google/uuid"

type SendCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type VerifyCodeRequest struct {
	SessionID   uuid.UUID `json:"session_id" binding:"required"`
	PhoneNumber string    `json:"phone_number" binding:"required"`
	Code        string    `json:"code" binding:"required"`
}

package user

import (
	"errors"

	"bagtrack/internal/pkg/phone"
)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidRole        = errors.New("invalid role")
)

// PhoneNumber is always stored normalized (E.164, no separators).
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	normalized, err := phone.Normalize(s)
	if err != nil {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: normalized}, nil
}

func (p PhoneNumber) Value() string {
	return p.value
}

//go:build unit || e2e

package builder

import (
	"time"

	"bagtrack/internal/domain/otp"
	"bagtrack/internal/domain/user"
)

type OTPSessionBuilder struct {
	PhoneNumber string
	CodeHash    string
	Now         time.Time
	TTL         time.Duration
	MaxAttempts int
}

func NewOTPSessionBuilder() *OTPSessionBuilder {
	return &OTPSessionBuilder{
		PhoneNumber: "+966501234567",
		CodeHash:    "hashed-123456",
		Now:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TTL:         5 * time.Minute,
		MaxAttempts: 5,
	}
}

func (o *OTPSessionBuilder) With(mutate func(*OTPSessionBuilder)) *OTPSessionBuilder {
	mutate(o)
	return o
}

func (o *OTPSessionBuilder) BuildDomain() (*otp.Session, error) {
	phoneNumber, err := user.NewPhoneNumber(o.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return otp.NewSession(phoneNumber, o.CodeHash, o.Now, o.TTL, o.MaxAttempts), nil
}

package otp

import (
	"errors"
	"time"

	"bagtrack/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrExpired         = errors.New("session expired")
	ErrConsumed        = errors.New("session already consumed")
	ErrCodeMismatch    = errors.New("code mismatch")
	ErrTooManyAttempts = errors.New("too many attempts")
	ErrPhoneMismatch   = errors.New("phone number does not match session")
)

// CodeComparer abstracts the hash comparison so the entity stays free of
// crypto imports. Implemented by otpcode.Compare.
type CodeComparer func(hash, code string) error

// Session is a single-use verification challenge bound to one phone number.
// A consumed or expired session can never verify again; a session that burns
// through its attempt budget is permanently unusable even with the right code.
type Session struct {
	id          uuid.UUID
	phoneNumber user.PhoneNumber
	codeHash    string
	createdAt   time.Time
	expiresAt   time.Time
	attempts    int
	maxAttempts int
	consumed    bool
}

func NewSession(phoneNumber user.PhoneNumber, codeHash string, now time.Time, ttl time.Duration, maxAttempts int) *Session {
	return &Session{
		id:          uuid.New(),
		phoneNumber: phoneNumber,
		codeHash:    codeHash,
		createdAt:   now,
		expiresAt:   now.Add(ttl),
		maxAttempts: maxAttempts,
	}
}

func ReconstructSession(
	id uuid.UUID,
	phoneNumber user.PhoneNumber,
	codeHash string,
	createdAt, expiresAt time.Time,
	attempts, maxAttempts int,
	consumed bool,
) *Session {
	return &Session{
		id:          id,
		phoneNumber: phoneNumber,
		codeHash:    codeHash,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
		attempts:    attempts,
		maxAttempts: maxAttempts,
		consumed:    consumed,
	}
}

func (s *Session) ID() uuid.UUID                 { return s.id }
func (s *Session) PhoneNumber() user.PhoneNumber { return s.phoneNumber }
func (s *Session) CodeHash() string              { return s.codeHash }
func (s *Session) CreatedAt() time.Time          { return s.createdAt }
func (s *Session) ExpiresAt() time.Time          { return s.expiresAt }
func (s *Session) Attempts() int                 { return s.attempts }
func (s *Session) MaxAttempts() int              { return s.maxAttempts }
func (s *Session) IsConsumed() bool              { return s.consumed }

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.expiresAt)
}

// Verify applies one verification attempt and mutates the session state
// accordingly. The caller must persist the session afterwards regardless of
// the outcome, so failed attempts survive a process restart.
func (s *Session) Verify(phoneNumber user.PhoneNumber, code string, compare CodeComparer, now time.Time) error {
	if s.phoneNumber != phoneNumber {
		return ErrPhoneMismatch
	}
	if s.consumed {
		return ErrConsumed
	}
	if s.IsExpired(now) {
		return ErrExpired
	}
	if s.attempts >= s.maxAttempts {
		return ErrTooManyAttempts
	}

	if err := compare(s.codeHash, code); err != nil {
		s.attempts++
		if s.attempts >= s.maxAttempts {
			return ErrTooManyAttempts
		}
		return ErrCodeMismatch
	}

	s.consumed = true
	return nil
}

//go:build unit

package otp_test

import (
	"errors"
	"testing"
	"time"

	"bagtrack/internal/domain/otp"
	"bagtrack/internal/domain/user"
	"bagtrack/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compareExact matches when hash == "hashed-" + code, standing in for the
// bcrypt comparison.
func compareExact(hash, code string) error {
	if hash != "hashed-"+code {
		return errors.New("mismatch")
	}
	return nil
}

func mustPhone(t *testing.T, s string) user.PhoneNumber {
	t.Helper()
	p, err := user.NewPhoneNumber(s)
	require.NoError(t, err)
	return p
}

func TestSessionVerify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	phone := "+966501234567"

	newSession := func(t *testing.T) *otp.Session {
		s, err := builder.NewOTPSessionBuilder().BuildDomain()
		require.NoError(t, err)
		return s
	}

	t.Run("correct code consumes the session", func(t *testing.T) {
		s := newSession(t)

		err := s.Verify(mustPhone(t, phone), "123456", compareExact, now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, s.IsConsumed())
	})

	t.Run("consumed session never verifies again", func(t *testing.T) {
		s := newSession(t)
		require.NoError(t, s.Verify(mustPhone(t, phone), "123456", compareExact, now))

		err := s.Verify(mustPhone(t, phone), "123456", compareExact, now)
		assert.ErrorIs(t, err, otp.ErrConsumed)
	})

	t.Run("phone mismatch is rejected before anything else", func(t *testing.T) {
		s := newSession(t)

		err := s.Verify(mustPhone(t, "+966507654321"), "123456", compareExact, now)
		assert.ErrorIs(t, err, otp.ErrPhoneMismatch)
		assert.False(t, s.IsConsumed())
		assert.Zero(t, s.Attempts(), "mismatched phone must not burn an attempt")
	})

	t.Run("expired session rejected even with the right code", func(t *testing.T) {
		s := newSession(t)

		err := s.Verify(mustPhone(t, phone), "123456", compareExact, now.Add(5*time.Minute+time.Second))
		assert.ErrorIs(t, err, otp.ErrExpired)
		assert.False(t, s.IsConsumed())
	})

	t.Run("boundary: valid exactly at expiry instant", func(t *testing.T) {
		s := newSession(t)

		err := s.Verify(mustPhone(t, phone), "123456", compareExact, now.Add(5*time.Minute))
		assert.NoError(t, err)
	})

	t.Run("wrong code burns an attempt", func(t *testing.T) {
		s := newSession(t)

		err := s.Verify(mustPhone(t, phone), "000000", compareExact, now)
		assert.ErrorIs(t, err, otp.ErrCodeMismatch)
		assert.Equal(t, 1, s.Attempts())
		assert.False(t, s.IsConsumed())
	})

	t.Run("attempt budget exhausts permanently", func(t *testing.T) {
		s := newSession(t)

		for i := 0; i < 4; i++ {
			err := s.Verify(mustPhone(t, phone), "000000", compareExact, now)
			assert.ErrorIs(t, err, otp.ErrCodeMismatch, "attempt %d", i+1)
		}

		// Fifth failure crosses the limit
		err := s.Verify(mustPhone(t, phone), "000000", compareExact, now)
		assert.ErrorIs(t, err, otp.ErrTooManyAttempts)
		assert.Equal(t, 5, s.Attempts())

		// The right code no longer helps
		err = s.Verify(mustPhone(t, phone), "123456", compareExact, now)
		assert.ErrorIs(t, err, otp.ErrTooManyAttempts)
		assert.False(t, s.IsConsumed())
	})

	t.Run("success after a few failures still works", func(t *testing.T) {
		s := newSession(t)

		require.ErrorIs(t, s.Verify(mustPhone(t, phone), "111111", compareExact, now), otp.ErrCodeMismatch)
		require.ErrorIs(t, s.Verify(mustPhone(t, phone), "222222", compareExact, now), otp.ErrCodeMismatch)

		err := s.Verify(mustPhone(t, phone), "123456", compareExact, now)
		require.NoError(t, err)
		assert.True(t, s.IsConsumed())
		assert.Equal(t, 2, s.Attempts())
	})
}

func TestSessionExpiry(t *testing.T) {
	s, err := builder.NewOTPSessionBuilder().BuildDomain()
	require.NoError(t, err)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.False(t, s.IsExpired(created))
	assert.False(t, s.IsExpired(created.Add(5*time.Minute)))
	assert.True(t, s.IsExpired(created.Add(5*time.Minute+time.Nanosecond)))
}

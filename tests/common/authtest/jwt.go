//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bagtrack/internal/domain/user"
	"bagtrack/internal/pkg/config"
	"bagtrack/internal/pkg/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, phoneNumber string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, phoneNumber, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already in the past, for
// exercising rejection paths in the auth middleware.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, phoneNumber string, role user.Role) string {
	t.Helper()

	now := time.Now().Add(-2 * time.Hour)
	claims := jwt.Claims{
		UserID: userID,
		Phone:  phoneNumber,
		Role:   role.String(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return signed
}

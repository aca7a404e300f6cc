package commands

import (
	"context"
	"errors"

	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/pkg/jwt"
)

var ErrUnauthorized = errors.New("unauthorized")

// AuthenticatedUser is what the transport layer stores in the request
// context after a successful bearer token check.
type AuthenticatedUser struct {
	UserID string
	Phone  string
	Role   string
}

type TokenValidator interface {
	Validate(ctx context.Context, token string) (*AuthenticatedUser, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	userRepo   UserRepository
}

func NewTokenValidator(jwtService *jwt.Service, userRepo UserRepository) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService, userRepo: userRepo}
}

func (v *tokenValidatorImpl) Validate(ctx context.Context, token string) (*AuthenticatedUser, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	// A token stays invalid once the account behind it is gone or disabled,
	// no matter how long the claims say it should live.
	u, err := v.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !u.IsActive() {
		return nil, ErrUnauthorized
	}

	return &AuthenticatedUser{
		UserID: claims.UserID.String(),
		Phone:  claims.Phone,
		Role:   claims.Role,
	}, nil
}

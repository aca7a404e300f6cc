package commands

import (
	"context"
	"fmt"
	"log/slog"

	"bagtrack/internal/domain/otp"
	"bagtrack/internal/domain/user"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/clock"
	"bagtrack/internal/pkg/config"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/pkg/jwt"
	"bagtrack/internal/pkg/otpcode"

	"github.com/google/uuid"
)

type SendCodeResult struct {
	SessionID uuid.UUID
	ExpiresIn int // seconds
	// DevCode carries the raw code in non-production configurations only.
	DevCode *string
}

type VerifyCodeResult struct {
	AccessToken string
	UserID      uuid.UUID
	PhoneNumber string
}

type AuthCommands interface {
	SendCode(ctx context.Context, rawPhone string) (*SendCodeResult, error)
	VerifyCode(ctx context.Context, sessionID uuid.UUID, rawPhone, code string) (*VerifyCodeResult, error)
}

type authCommandsImpl struct {
	sessionRepo OTPSessionRepository
	userRepo    UserRepository
	smsSender   SMSSender
	jwtService  *jwt.Service
	clock       clock.Clock
	cfg         config.OTPConfig
}

func NewAuthCommands(
	sessionRepo OTPSessionRepository,
	userRepo UserRepository,
	smsSender SMSSender,
	jwtService *jwt.Service,
	clk clock.Clock,
	cfg config.OTPConfig,
) AuthCommands {
	return &authCommandsImpl{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		smsSender:   smsSender,
		jwtService:  jwtService,
		clock:       clk,
		cfg:         cfg,
	}
}

func (a *authCommandsImpl) SendCode(ctx context.Context, rawPhone string) (*SendCodeResult, error) {
	phoneNumber, err := user.NewPhoneNumber(rawPhone)
	if err != nil {
		return nil, errs.ErrInvalidPhoneNumber
	}

	// Rolling-window rate limit per phone, counting attempts not successes
	since := a.clock.Now().Add(-a.cfg.SendWindow)
	recent, err := a.sessionRepo.CountRecentByPhone(ctx, phoneNumber.Value(), since)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if recent >= a.cfg.MaxSendsPerWindow {
		return nil, errs.ErrRateLimited
	}

	code, err := otpcode.Generate(a.cfg.CodeLength)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate verification code")
	}
	codeHash, err := otpcode.Hash(code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash verification code")
	}

	session := otp.NewSession(phoneNumber, codeHash, a.clock.Now(), a.cfg.ExpiresIn, a.cfg.MaxAttempts)
	if err := a.sessionRepo.Create(ctx, session); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	body := fmt.Sprintf("Your laundry verification code is %s", code)
	if err := a.smsSender.Send(ctx, phoneNumber.Value(), body); err != nil {
		// The session stays valid; the customer can request a resend.
		slog.Warn("failed to dispatch verification SMS", "session_id", session.ID(), "error", err.Error())
	}

	result := &SendCodeResult{
		SessionID: session.ID(),
		ExpiresIn: int(a.cfg.ExpiresIn.Seconds()),
	}
	if a.cfg.DevMode {
		result.DevCode = &code
	}
	return result, nil
}

func (a *authCommandsImpl) VerifyCode(ctx context.Context, sessionID uuid.UUID, rawPhone, code string) (*VerifyCodeResult, error) {
	phoneNumber, err := user.NewPhoneNumber(rawPhone)
	if err != nil {
		return nil, errs.ErrInvalidPhoneNumber
	}

	session, err := a.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if verifyErr := session.Verify(phoneNumber, code, otpcode.Compare, a.clock.Now()); verifyErr != nil {
		return nil, a.mapVerifyError(ctx, session, verifyErr)
	}

	// Conditional consume defends against a concurrent verify racing past the
	// in-memory check; exactly one request wins.
	consumed, err := a.sessionRepo.Consume(ctx, session.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !consumed {
		return nil, errs.ErrSessionConsumed
	}

	account, err := a.userRepo.UpsertByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, account.ID()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.PhoneNumber().Value(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	return &VerifyCodeResult{
		AccessToken: token,
		UserID:      account.ID(),
		PhoneNumber: account.PhoneNumber().Value(),
	}, nil
}

func (a *authCommandsImpl) mapVerifyError(ctx context.Context, session *otp.Session, verifyErr error) error {
	// Failed attempts must survive restarts, so persist the counter before
	// reporting the failure.
	switch verifyErr {
	case otp.ErrCodeMismatch, otp.ErrTooManyAttempts:
		if err := a.sessionRepo.SaveAttempts(ctx, session); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	switch verifyErr {
	case otp.ErrPhoneMismatch:
		// Do not leak that the session exists under another number.
		return errs.ErrSessionNotFound
	case otp.ErrExpired:
		return errs.ErrSessionExpired
	case otp.ErrConsumed:
		return errs.ErrSessionConsumed
	case otp.ErrTooManyAttempts:
		return errs.ErrTooManyAttempts
	case otp.ErrCodeMismatch:
		return errs.ErrCodeMismatch
	default:
		return errs.Wrap(verifyErr, "verification failed")
	}
}

package commands

import (
	"context"
	"time"

	"bagtrack/internal/domain/bag"
	"bagtrack/internal/domain/catalog"
	"bagtrack/internal/domain/location"
	"bagtrack/internal/domain/otp"
	"bagtrack/internal/domain/user"
	"bagtrack/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports implemented by internal/infra/repository.

type OTPSessionRepository interface {
	Create(ctx context.Context, session *otp.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*otp.Session, error)
	// SaveAttempts persists the attempt counter after a failed verify.
	SaveAttempts(ctx context.Context, session *otp.Session) error
	// Consume marks the session used; returns false when another request
	// already consumed it (replay race).
	Consume(ctx context.Context, id uuid.UUID) (bool, error)
	CountRecentByPhone(ctx context.Context, phoneNumber string, since time.Time) (int, error)
	// DeleteDead removes expired and consumed sessions; used by the sweeper job.
	DeleteDead(ctx context.Context, now time.Time) (int64, error)
}

type UserRepository interface {
	// UpsertByPhone returns the existing user for the phone number or
	// creates a customer record on first verification.
	UpsertByPhone(ctx context.Context, phoneNumber user.PhoneNumber) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type LocationRepository interface {
	Create(ctx context.Context, loc *location.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ServiceItemRepository interface {
	Create(ctx context.Context, item *catalog.ServiceItem) error
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.ServiceItem, error)
}

type BagRepository interface {
	Create(ctx context.Context, b *bag.Bag) error
	// FindByIDTx loads the aggregate inside the caller's transaction without
	// locking the row; concurrent writers race to the version-guarded save
	// and exactly one wins.
	FindByIDTx(ctx context.Context, tx db.DBTX, id uuid.UUID) (*bag.Bag, error)
	// SaveTransition writes the new status guarded by the version column and
	// appends the timeline event in the same transaction.
	SaveTransition(ctx context.Context, tx db.DBTX, b *bag.Bag, event bag.Event) error
	SaveLocations(ctx context.Context, tx db.DBTX, b *bag.Bag) error
}

// SMSSender dispatches the verification code out of band. The console
// implementation only logs; a real gateway adapter satisfies the same port.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, body string) error
}

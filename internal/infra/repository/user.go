package repository

import (
	"context"
	"time"

	"bagtrack/internal/domain/user"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/pgconv"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// UpsertByPhone creates a customer record on first verification and returns
// the stored row either way. ON CONFLICT keeps the operation race-free when
// two verifications for a new number land at once.
const upsertUserSQL = `
INSERT INTO users (id, phone_number, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, true, now(), now())
ON CONFLICT (phone_number) DO UPDATE SET updated_at = now()
RETURNING id, phone_number, role, last_login, is_active, created_at, updated_at`

func (r *UserRepository) UpsertByPhone(ctx context.Context, phoneNumber user.PhoneNumber) (*user.User, error) {
	row := r.pool.QueryRow(ctx, upsertUserSQL,
		pgconv.UUIDToPgtype(uuid.New()),
		phoneNumber.Value(),
		user.RoleCustomer.String(),
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user", err)
	}
	return u, nil
}

const selectUserSQL = `
SELECT id, phone_number, role, last_login, is_active, created_at, updated_at
FROM users
WHERE id = $1`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, selectUserSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(userID))
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id                   pgtype.UUID
		phone, role          string
		lastLogin            pgtype.Timestamptz
		isActive             bool
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &phone, &role, &lastLogin, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	phoneNumber, err := user.NewPhoneNumber(phone)
	if err != nil {
		return nil, err
	}
	userRole, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}

	var lastLoginAt *time.Time
	if lastLogin.Valid {
		t := lastLogin.Time
		lastLoginAt = &t
	}

	return user.ReconstructUser(
		uuid.UUID(id.Bytes),
		phoneNumber,
		userRole,
		lastLoginAt,
		isActive,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

// Read side

func (r *UserRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, phone_number, role, is_active FROM users WHERE id = $1`,
		pgconv.UUIDToPgtype(id))

	var (
		userID      pgtype.UUID
		phone, role string
		isActive    bool
	)
	if err := row.Scan(&userID, &phone, &role, &isActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user view", err)
	}

	return &queries.AuthorizedUserView{
		ID:          uuid.UUID(userID.Bytes),
		PhoneNumber: phone,
		Role:        role,
		IsActive:    isActive,
	}, nil
}

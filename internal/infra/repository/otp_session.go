package repository

import (
	"context"
	"time"

	"bagtrack/internal/domain/otp"
	"bagtrack/internal/domain/user"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OTPSessionRepository struct {
	pool *pgxpool.Pool
}

func NewOTPSessionRepository(pool *pgxpool.Pool) *OTPSessionRepository {
	return &OTPSessionRepository{pool: pool}
}

const insertOTPSessionSQL = `
INSERT INTO otp_sessions (id, phone_number, code_hash, attempts, max_attempts, consumed, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *OTPSessionRepository) Create(ctx context.Context, session *otp.Session) error {
	_, err := r.pool.Exec(ctx, insertOTPSessionSQL,
		pgconv.UUIDToPgtype(session.ID()),
		session.PhoneNumber().Value(),
		session.CodeHash(),
		int32(session.Attempts()),
		int32(session.MaxAttempts()),
		session.IsConsumed(),
		pgconv.TimeToPgtype(session.CreatedAt()),
		pgconv.TimeToPgtype(session.ExpiresAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert otp session", err)
	}
	return nil
}

const selectOTPSessionSQL = `
SELECT id, phone_number, code_hash, created_at, expires_at, attempts, max_attempts, consumed
FROM otp_sessions
WHERE id = $1`

func (r *OTPSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*otp.Session, error) {
	row := r.pool.QueryRow(ctx, selectOTPSessionSQL, pgconv.UUIDToPgtype(id))

	var (
		sessionID             pgtype.UUID
		phone, codeHash       string
		createdAt, expiresAt  pgtype.Timestamptz
		attempts, maxAttempts int32
		consumed              bool
	)
	err := row.Scan(&sessionID, &phone, &codeHash, &createdAt, &expiresAt, &attempts, &maxAttempts, &consumed)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("otp session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load otp session", err)
	}

	phoneNumber, err := user.NewPhoneNumber(phone)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt phone number in otp session", err)
	}

	return otp.ReconstructSession(
		uuid.UUID(sessionID.Bytes),
		phoneNumber,
		codeHash,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(expiresAt),
		int(attempts),
		int(maxAttempts),
		consumed,
	), nil
}

func (r *OTPSessionRepository) SaveAttempts(ctx context.Context, session *otp.Session) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE otp_sessions SET attempts = $1 WHERE id = $2`,
		int32(session.Attempts()),
		pgconv.UUIDToPgtype(session.ID()))
	if err != nil {
		return infra.WrapRepoErr("failed to save otp attempts", err)
	}
	return nil
}

// Consume flips the consumed flag atomically. The guard in the WHERE clause
// makes double verification of the same session impossible regardless of
// request interleaving.
func (r *OTPSessionRepository) Consume(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE otp_sessions SET consumed = true WHERE id = $1 AND NOT consumed`,
		pgconv.UUIDToPgtype(id))
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume otp session", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OTPSessionRepository) CountRecentByPhone(ctx context.Context, phoneNumber string, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM otp_sessions WHERE phone_number = $1 AND created_at >= $2`,
		phoneNumber,
		pgconv.TimeToPgtype(since),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count otp sessions", err)
	}
	return count, nil
}

func (r *OTPSessionRepository) DeleteDead(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM otp_sessions WHERE consumed OR expires_at < $1`,
		pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete dead otp sessions", err)
	}
	return tag.RowsAffected(), nil
}

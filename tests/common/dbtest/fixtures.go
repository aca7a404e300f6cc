//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, phoneNumber, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, phone_number, role, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (phone_number) DO NOTHING",
		userID, phoneNumber, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE phone_number = $1", phoneNumber).Scan(&userID)
	}

	return userID
}

func CreateTestLocation(t *testing.T, db DBLike, nameEn, qrToken string) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO locations (id, name_ar, name_en, qr_token, display_order, is_active) VALUES ($1, $2, $3, $4, 0, true) ON CONFLICT (qr_token) DO NOTHING",
		locationID, nameEn, nameEn, qrToken)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM locations WHERE qr_token = $1", qrToken).Scan(&locationID)
	}

	return locationID
}

func CreateTestServiceItem(t *testing.T, db DBLike, nameEn, category string, unitPrice string) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO service_items (id, name_ar, name_en, category, unit_price, display_order, is_active) VALUES ($1, $2, $3, $4, $5, 0, true)",
		itemID, nameEn, nameEn, category, unitPrice)
	require.NoError(t, err)

	return itemID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO locations (id, name_ar, name_en, qr_token, display_order, is_active) VALUES
		    (gen_random_uuid(), 'الفرع الرئيسي', 'Main Branch', 'loc_00000000000000000000000000000001', 1, true),
		    (gen_random_uuid(), 'فرع الجامعة', 'Campus Branch', 'loc_00000000000000000000000000000002', 2, true)
		ON CONFLICT (qr_token) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO service_items (id, name_ar, name_en, category, unit_price, display_order, is_active)
		SELECT gen_random_uuid(), 'غسيل وكي', 'Wash & Iron', 'laundry', 10.00, 1, true
		WHERE NOT EXISTS (SELECT 1 FROM service_items WHERE name_en = 'Wash & Iron');
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

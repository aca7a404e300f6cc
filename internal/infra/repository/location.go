package repository

import (
	"context"

	"bagtrack/internal/domain/location"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/pgconv"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

const insertLocationSQL = `
INSERT INTO locations (id, name_ar, name_en, address_ar, address_en, qr_token, display_order, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`

func (r *LocationRepository) Create(ctx context.Context, loc *location.Location) error {
	var addressAr, addressEn pgtype.Text
	if addr := loc.Address(); addr != nil {
		addressAr = pgconv.StringToPgtype(addr.Ar)
		addressEn = pgconv.StringToPgtype(addr.En)
	}

	_, err := r.pool.Exec(ctx, insertLocationSQL,
		pgconv.UUIDToPgtype(loc.ID()),
		loc.Name().Ar,
		loc.Name().En,
		addressAr,
		addressEn,
		loc.QRToken(),
		int32(loc.DisplayOrder()),
		loc.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert location", err)
	}
	return nil
}

const selectLocationSQL = `
SELECT id, name_ar, name_en, address_ar, address_en, qr_token, display_order, is_active, created_at
FROM locations `

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	row := r.pool.QueryRow(ctx, selectLocationSQL+`WHERE id = $1`, pgconv.UUIDToPgtype(id))

	var (
		locID                pgtype.UUID
		nameAr, nameEn       string
		addressAr, addressEn pgtype.Text
		qrToken              string
		displayOrder         int32
		isActive             bool
		createdAt            pgtype.Timestamptz
	)
	err := row.Scan(&locID, &nameAr, &nameEn, &addressAr, &addressEn, &qrToken, &displayOrder, &isActive, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load location", err)
	}

	var address *location.LocalizedText
	if addressAr.Valid || addressEn.Valid {
		address = &location.LocalizedText{Ar: addressAr.String, En: addressEn.String}
	}

	return location.ReconstructLocation(
		uuid.UUID(locID.Bytes),
		location.LocalizedText{Ar: nameAr, En: nameEn},
		address,
		qrToken,
		int(displayOrder),
		isActive,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *LocationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE locations SET is_active = false WHERE id = $1`,
		pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}

// Read side

const selectLocationViewSQL = `
SELECT id, name_ar, name_en, address_ar, address_en, qr_token, display_order, is_active
FROM locations `

func (r *LocationRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	return r.findView(ctx, selectLocationViewSQL+`WHERE id = $1`, pgconv.UUIDToPgtype(id))
}

func (r *LocationRepository) FindViewByQRToken(ctx context.Context, token string) (*queries.LocationView, error) {
	return r.findView(ctx, selectLocationViewSQL+`WHERE qr_token = $1`, token)
}

func (r *LocationRepository) findView(ctx context.Context, sql string, arg any) (*queries.LocationView, error) {
	view, err := scanLocationView(r.pool.QueryRow(ctx, sql, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load location view", err)
	}
	return view, nil
}

func (r *LocationRepository) ListActiveViews(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := r.pool.Query(ctx,
		selectLocationViewSQL+`WHERE is_active ORDER BY display_order, name_en`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	defer rows.Close()

	views := []*queries.LocationView{}
	for rows.Next() {
		view, err := scanLocationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan location view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read location list", err)
	}
	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocationView(row rowScanner) (*queries.LocationView, error) {
	var (
		id                   pgtype.UUID
		nameAr, nameEn       string
		addressAr, addressEn pgtype.Text
		qrToken              string
		displayOrder         int32
		isActive             bool
	)
	if err := row.Scan(&id, &nameAr, &nameEn, &addressAr, &addressEn, &qrToken, &displayOrder, &isActive); err != nil {
		return nil, err
	}
	return &queries.LocationView{
		ID:           uuid.UUID(id.Bytes),
		NameAr:       nameAr,
		NameEn:       nameEn,
		AddressAr:    pgconv.StringPtrFromPgtype(addressAr),
		AddressEn:    pgconv.StringPtrFromPgtype(addressEn),
		QRToken:      qrToken,
		DisplayOrder: displayOrder,
		IsActive:     isActive,
	}, nil
}

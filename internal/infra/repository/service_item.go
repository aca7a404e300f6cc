package repository

import (
	"context"

	"bagtrack/internal/domain/catalog"
	"bagtrack/internal/domain/location"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/pgconv"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceItemRepository struct {
	pool *pgxpool.Pool
}

func NewServiceItemRepository(pool *pgxpool.Pool) *ServiceItemRepository {
	return &ServiceItemRepository{pool: pool}
}

const insertServiceItemSQL = `
INSERT INTO service_items (id, name_ar, name_en, category, unit_price, display_order, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

func (r *ServiceItemRepository) Create(ctx context.Context, item *catalog.ServiceItem) error {
	_, err := r.pool.Exec(ctx, insertServiceItemSQL,
		pgconv.UUIDToPgtype(item.ID()),
		item.Name().Ar,
		item.Name().En,
		item.Category(),
		pgconv.DecimalToNumeric(item.UnitPrice()),
		int32(item.DisplayOrder()),
		item.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert service item", err)
	}
	return nil
}

// FindActiveByIDs returns only the active catalog entries among ids; callers
// treat a missing key as an unknown or retired service.
func (r *ServiceItemRepository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*catalog.ServiceItem, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*catalog.ServiceItem{}, nil
	}

	pgIDs := make([]pgtype.UUID, 0, len(ids))
	for _, id := range ids {
		pgIDs = append(pgIDs, pgconv.UUIDToPgtype(id))
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name_ar, name_en, category, unit_price, display_order, is_active, created_at
		 FROM service_items
		 WHERE is_active AND id = ANY($1)`,
		pgIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service items", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*catalog.ServiceItem, len(ids))
	for rows.Next() {
		var (
			id             pgtype.UUID
			nameAr, nameEn string
			category       string
			unitPrice      pgtype.Numeric
			displayOrder   int32
			isActive       bool
			createdAt      pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &nameAr, &nameEn, &category, &unitPrice, &displayOrder, &isActive, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service item", err)
		}
		price, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode service price", err)
		}
		item := catalog.ReconstructServiceItem(
			uuid.UUID(id.Bytes),
			location.LocalizedText{Ar: nameAr, En: nameEn},
			category,
			price,
			int(displayOrder),
			isActive,
			pgconv.TimeFromPgtype(createdAt),
		)
		result[item.ID()] = item
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service items", err)
	}
	return result, nil
}

// Read side

const selectServiceItemViewSQL = `
SELECT id, name_ar, name_en, category, unit_price, display_order
FROM service_items `

func (r *ServiceItemRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ServiceItemView, error) {
	row := r.pool.QueryRow(ctx, selectServiceItemViewSQL+`WHERE id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanServiceItemView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load service item view", err)
	}
	return view, nil
}

func (r *ServiceItemRepository) ListActiveViews(ctx context.Context) ([]*queries.ServiceItemView, error) {
	rows, err := r.pool.Query(ctx,
		selectServiceItemViewSQL+`WHERE is_active ORDER BY display_order, name_en`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service items", err)
	}
	defer rows.Close()

	views := []*queries.ServiceItemView{}
	for rows.Next() {
		view, err := scanServiceItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service item view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service item list", err)
	}
	return views, nil
}

func scanServiceItemView(row rowScanner) (*queries.ServiceItemView, error) {
	var (
		id             pgtype.UUID
		nameAr, nameEn string
		category       string
		unitPrice      pgtype.Numeric
		displayOrder   int32
	)
	if err := row.Scan(&id, &nameAr, &nameEn, &category, &unitPrice, &displayOrder); err != nil {
		return nil, err
	}
	price, err := pgconv.DecimalFromNumeric(unitPrice)
	if err != nil {
		return nil, err
	}
	return &queries.ServiceItemView{
		ID:           uuid.UUID(id.Bytes),
		NameAr:       nameAr,
		NameEn:       nameEn,
		Category:     category,
		Price:        price.InexactFloat64(),
		DisplayOrder: displayOrder,
	}, nil
}

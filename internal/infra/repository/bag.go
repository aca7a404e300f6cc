package repository

import (
	"context"

	"bagtrack/internal/domain/bag"
	"bagtrack/internal/infra"
	"bagtrack/internal/infra/db"
	"bagtrack/internal/pkg/pgconv"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BagRepository struct {
	pool *pgxpool.Pool
}

func NewBagRepository(pool *pgxpool.Pool) *BagRepository {
	return &BagRepository{pool: pool}
}

const insertBagSQL = `
INSERT INTO bags (
	id, bag_tag, customer_id, status,
	pickup_location_id, delivery_location_id,
	subtotal, tax_rate, tax_amount, total,
	version, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`

const insertBagItemSQL = `
INSERT INTO bag_items (id, bag_id, service_item_id, quantity, unit_price, total_price)
VALUES ($1, $2, $3, $4, $5, $6)`

const insertBagEventSQL = `
INSERT INTO bag_events (id, bag_id, status, note, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Create persists the aggregate with its line items and the initial timeline
// event in one transaction.
func (r *BagRepository) Create(ctx context.Context, b *bag.Bag) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin bag insert", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quote := b.Quote()
	_, err = tx.Exec(ctx, insertBagSQL,
		pgconv.UUIDToPgtype(b.ID()),
		b.Tag().Value(),
		pgconv.UUIDToPgtype(b.CustomerID()),
		b.Status().String(),
		pgconv.UUIDToPgtype(b.PickupLocationID()),
		pgconv.UUIDToPgtype(b.DeliveryLocationID()),
		pgconv.DecimalToNumeric(quote.Subtotal),
		pgconv.DecimalToNumeric(quote.TaxRate),
		pgconv.DecimalToNumeric(quote.TaxAmount),
		pgconv.DecimalToNumeric(quote.Total),
		b.Version(),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert bag", err)
	}

	for _, item := range b.Items() {
		_, err = tx.Exec(ctx, insertBagItemSQL,
			pgconv.UUIDToPgtype(uuid.New()),
			pgconv.UUIDToPgtype(b.ID()),
			pgconv.UUIDToPgtype(item.ServiceItemID),
			int32(item.Quantity),
			pgconv.DecimalToNumeric(item.UnitPrice),
			pgconv.DecimalToNumeric(item.LineTotal),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert bag item", err)
		}
	}

	for _, ev := range b.Events() {
		if err := r.insertEvent(ctx, tx, b.ID(), ev); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit bag insert", err)
	}
	return nil
}

const selectBagTxSQL = `
SELECT id, bag_tag, customer_id, status,
       pickup_location_id, delivery_location_id,
       subtotal, tax_rate, tax_amount, total,
       version, created_at
FROM bags
WHERE id = $1`

// FindByIDTx reads the aggregate without taking a row lock. The version
// column read here is what SaveTransition/SaveLocations later guard on, so
// a concurrent writer that commits in between turns the save into a conflict.
func (r *BagRepository) FindByIDTx(ctx context.Context, tx db.DBTX, id uuid.UUID) (*bag.Bag, error) {
	row := tx.QueryRow(ctx, selectBagTxSQL, pgconv.UUIDToPgtype(id))

	var (
		bagID, customerID, pickupID, deliveryID pgtype.UUID
		tag, status                             string
		subtotal, taxRate, taxAmount, total     pgtype.Numeric
		version                                 int64
		createdAt                               pgtype.Timestamptz
	)
	err := row.Scan(&bagID, &tag, &customerID, &status,
		&pickupID, &deliveryID,
		&subtotal, &taxRate, &taxAmount, &total,
		&version, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bag not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load bag", err)
	}

	items, err := r.loadItems(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	events, err := r.loadEvents(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	quote, err := scanQuote(subtotal, taxRate, taxAmount, total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bag pricing", err)
	}

	st, err := bag.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt bag status", err)
	}

	bagTag, err := bag.NewBagTag(tag)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt bag tag", err)
	}

	return bag.ReconstructBag(
		uuid.UUID(bagID.Bytes),
		bagTag,
		uuid.UUID(customerID.Bytes),
		st,
		uuid.UUID(pickupID.Bytes),
		uuid.UUID(deliveryID.Bytes),
		items,
		quote,
		version,
		pgconv.TimeFromPgtype(createdAt),
		events,
	), nil
}

const updateBagStatusSQL = `
UPDATE bags
SET status = $1, version = $2, updated_at = now()
WHERE id = $3 AND version = $4`

// SaveTransition writes the advanced status guarded by the version column.
// Zero rows means another writer got there first.
func (r *BagRepository) SaveTransition(ctx context.Context, tx db.DBTX, b *bag.Bag, event bag.Event) error {
	tag, err := tx.Exec(ctx, updateBagStatusSQL,
		b.Status().String(),
		b.Version(),
		pgconv.UUIDToPgtype(b.ID()),
		b.Version()-1,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update bag status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bag version changed", nil, infra.KindConflict)
	}

	return r.insertEvent(ctx, tx, b.ID(), event)
}

const updateBagLocationsSQL = `
UPDATE bags
SET pickup_location_id = $1, delivery_location_id = $2, version = $3, updated_at = now()
WHERE id = $4 AND version = $5`

func (r *BagRepository) SaveLocations(ctx context.Context, tx db.DBTX, b *bag.Bag) error {
	tag, err := tx.Exec(ctx, updateBagLocationsSQL,
		pgconv.UUIDToPgtype(b.PickupLocationID()),
		pgconv.UUIDToPgtype(b.DeliveryLocationID()),
		b.Version(),
		pgconv.UUIDToPgtype(b.ID()),
		b.Version()-1,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update bag locations", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("bag version changed", nil, infra.KindConflict)
	}
	return nil
}

func (r *BagRepository) insertEvent(ctx context.Context, tx db.DBTX, bagID uuid.UUID, ev bag.Event) error {
	_, err := tx.Exec(ctx, insertBagEventSQL,
		pgconv.UUIDToPgtype(ev.ID),
		pgconv.UUIDToPgtype(bagID),
		ev.Status.String(),
		pgconv.StringPtrToPgtype(ev.Note),
		pgconv.TimeToPgtype(ev.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert bag event", err)
	}
	return nil
}

func (r *BagRepository) loadItems(ctx context.Context, tx db.DBTX, bagID uuid.UUID) ([]bag.Item, error) {
	rows, err := tx.Query(ctx,
		`SELECT service_item_id, quantity, unit_price FROM bag_items WHERE bag_id = $1`,
		pgconv.UUIDToPgtype(bagID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bag items", err)
	}
	defer rows.Close()

	var items []bag.Item
	for rows.Next() {
		var (
			serviceID pgtype.UUID
			quantity  int32
			unitPrice pgtype.Numeric
		)
		if err := rows.Scan(&serviceID, &quantity, &unitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bag item", err)
		}
		price, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode item price", err)
		}
		item, err := bag.NewItem(uuid.UUID(serviceID.Bytes), int(quantity), price)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt bag item", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *BagRepository) loadEvents(ctx context.Context, tx db.DBTX, bagID uuid.UUID) ([]bag.Event, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, status, note, created_at FROM bag_events WHERE bag_id = $1 ORDER BY seq`,
		pgconv.UUIDToPgtype(bagID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bag events", err)
	}
	defer rows.Close()

	var events []bag.Event
	for rows.Next() {
		var (
			id        pgtype.UUID
			status    string
			note      pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &status, &note, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bag event", err)
		}
		st, err := bag.NewStatus(status)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt event status", err)
		}
		events = append(events, bag.Event{
			ID:        uuid.UUID(id.Bytes),
			Status:    st,
			Note:      pgconv.StringPtrFromPgtype(note),
			CreatedAt: pgconv.TimeFromPgtype(createdAt),
		})
	}
	return events, rows.Err()
}

// Read side

const selectBagViewSQL = `
SELECT id, bag_tag, customer_id, status,
       pickup_location_id, delivery_location_id,
       subtotal, tax_rate, tax_amount, total, created_at
FROM bags `

func (r *BagRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BagView, error) {
	return r.findView(ctx, selectBagViewSQL+`WHERE id = $1`, pgconv.UUIDToPgtype(id))
}

func (r *BagRepository) FindViewByTag(ctx context.Context, tag string) (*queries.BagView, error) {
	return r.findView(ctx, selectBagViewSQL+`WHERE bag_tag = $1`, tag)
}

func (r *BagRepository) findView(ctx context.Context, sql string, arg any) (*queries.BagView, error) {
	row := r.pool.QueryRow(ctx, sql, arg)

	var (
		bagID, customerID, pickupID, deliveryID pgtype.UUID
		tag, status                             string
		subtotal, taxRate, taxAmount, total     pgtype.Numeric
		createdAt                               pgtype.Timestamptz
	)
	err := row.Scan(&bagID, &tag, &customerID, &status,
		&pickupID, &deliveryID,
		&subtotal, &taxRate, &taxAmount, &total, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("bag not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load bag view", err)
	}

	quote, err := scanQuote(subtotal, taxRate, taxAmount, total)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode bag pricing", err)
	}

	view := &queries.BagView{
		ID:                 uuid.UUID(bagID.Bytes),
		BagTag:             tag,
		QRCode:             "bag:" + tag,
		CustomerID:         uuid.UUID(customerID.Bytes),
		Status:             status,
		PickupLocationID:   uuid.UUID(pickupID.Bytes),
		DeliveryLocationID: uuid.UUID(deliveryID.Bytes),
		Subtotal:           quote.Subtotal.InexactFloat64(),
		TaxRate:            quote.TaxRate.InexactFloat64(),
		TaxAmount:          quote.TaxAmount.InexactFloat64(),
		Total:              quote.Total.InexactFloat64(),
		CreatedAt:          pgconv.TimeFromPgtype(createdAt),
	}

	if err := r.fillItemViews(ctx, view); err != nil {
		return nil, err
	}
	if err := r.fillEventViews(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BagRepository) fillItemViews(ctx context.Context, view *queries.BagView) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, service_item_id, quantity, unit_price, total_price FROM bag_items WHERE bag_id = $1`,
		pgconv.UUIDToPgtype(view.ID))
	if err != nil {
		return infra.WrapRepoErr("failed to load bag item views", err)
	}
	defer rows.Close()

	view.Items = []queries.BagItemView{}
	for rows.Next() {
		var (
			id, serviceID         pgtype.UUID
			quantity              int32
			unitPrice, totalPrice pgtype.Numeric
		)
		if err := rows.Scan(&id, &serviceID, &quantity, &unitPrice, &totalPrice); err != nil {
			return infra.WrapRepoErr("failed to scan bag item view", err)
		}
		up, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return infra.WrapRepoErr("failed to decode item price", err)
		}
		tp, err := pgconv.DecimalFromNumeric(totalPrice)
		if err != nil {
			return infra.WrapRepoErr("failed to decode item total", err)
		}
		view.Items = append(view.Items, queries.BagItemView{
			ID:            uuid.UUID(id.Bytes),
			ServiceItemID: uuid.UUID(serviceID.Bytes),
			Quantity:      quantity,
			UnitPrice:     up.InexactFloat64(),
			TotalPrice:    tp.InexactFloat64(),
		})
	}
	return rows.Err()
}

func (r *BagRepository) fillEventViews(ctx context.Context, view *queries.BagView) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, status, note, created_at FROM bag_events WHERE bag_id = $1 ORDER BY seq`,
		pgconv.UUIDToPgtype(view.ID))
	if err != nil {
		return infra.WrapRepoErr("failed to load bag event views", err)
	}
	defer rows.Close()

	view.Events = []queries.BagEventView{}
	for rows.Next() {
		var (
			id        pgtype.UUID
			status    string
			note      pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &status, &note, &createdAt); err != nil {
			return infra.WrapRepoErr("failed to scan bag event view", err)
		}
		ev := queries.BagEventView{
			ID:        uuid.UUID(id.Bytes),
			Status:    status,
			Note:      pgconv.StringPtrFromPgtype(note),
			CreatedAt: pgconv.TimeFromPgtype(createdAt),
		}
		view.Events = append(view.Events, ev)
		// dropped_at is derived from the first drop event, not stored.
		if ev.Status == bag.StatusDropped.String() && view.DroppedAt == nil {
			t := ev.CreatedAt
			view.DroppedAt = &t
		}
	}
	return rows.Err()
}

const listBagsSQL = `
SELECT id, bag_tag, customer_id, status, total, created_at, count(*) OVER() AS total_count
FROM bags
WHERE ($1::uuid IS NULL OR customer_id = $1)
  AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`

func (r *BagRepository) ListViews(ctx context.Context, filter queries.BagFilter) ([]*queries.BagListItem, int64, error) {
	offset := (filter.Page - 1) * filter.PageSize

	rows, err := r.pool.Query(ctx, listBagsSQL,
		pgconv.UUIDPtrToPgtype(filter.CustomerID),
		pgconv.StringPtrToPgtype(filter.Status),
		int32(filter.PageSize),
		int32(offset),
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list bags", err)
	}
	defer rows.Close()

	items := []*queries.BagListItem{}
	var total int64
	for rows.Next() {
		var (
			id, customerID pgtype.UUID
			tag, status    string
			totalPrice     pgtype.Numeric
			createdAt      pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &tag, &customerID, &status, &totalPrice, &createdAt, &total); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan bag list item", err)
		}
		tp, err := pgconv.DecimalFromNumeric(totalPrice)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to decode bag total", err)
		}
		items = append(items, &queries.BagListItem{
			ID:         uuid.UUID(id.Bytes),
			BagTag:     tag,
			CustomerID: uuid.UUID(customerID.Bytes),
			Status:     status,
			Total:      tp.InexactFloat64(),
			CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read bag list", err)
	}
	return items, total, nil
}

func scanQuote(subtotal, taxRate, taxAmount, total pgtype.Numeric) (bag.Quote, error) {
	var (
		q   bag.Quote
		err error
	)
	if q.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
		return bag.Quote{}, err
	}
	if q.TaxRate, err = pgconv.DecimalFromNumeric(taxRate); err != nil {
		return bag.Quote{}, err
	}
	if q.TaxAmount, err = pgconv.DecimalFromNumeric(taxAmount); err != nil {
		return bag.Quote{}, err
	}
	if q.Total, err = pgconv.DecimalFromNumeric(total); err != nil {
		return bag.Quote{}, err
	}
	return q, nil
}

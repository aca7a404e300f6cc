package commands

import (
	"context"
	"errors"
	"log/slog"

	"bagtrack/internal/domain/bag"
	"bagtrack/internal/domain/catalog"
	"bagtrack/internal/domain/location"
	reqdto "bagtrack/internal/handler/dto/request"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/clock"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Retries for bag tag collisions on insert. The tag space is large enough
// that a second collision in a row means something is broken.
const maxTagRetries = 3

type BagCommands interface {
	CreateBag(ctx context.Context, customerID uuid.UUID, req reqdto.CreateBagRequest) (*queries.BagView, error)
	// UpdateStatus advances a bag one pipeline step (or re-posts the current
	// status with a note). Admin-only; authorization happens in transport.
	UpdateStatus(ctx context.Context, bagID uuid.UUID, status string, note *string) (*queries.BagView, error)
	UpdateLocations(ctx context.Context, actor queries.Actor, bagID uuid.UUID, req reqdto.UpdateBagLocationsRequest) (*queries.BagView, error)
}

type bagCommandsImpl struct {
	bagRepo      BagRepository
	locationRepo LocationRepository
	serviceRepo  ServiceItemRepository
	factory      *bag.Factory
	bagQueries   queries.BagQueries
	db           *pgxpool.Pool
	clock        clock.Clock
}

func NewBagCommands(
	bagRepo BagRepository,
	locationRepo LocationRepository,
	serviceRepo ServiceItemRepository,
	factory *bag.Factory,
	bagQueries queries.BagQueries,
	db *pgxpool.Pool,
	clk clock.Clock,
) BagCommands {
	return &bagCommandsImpl{
		bagRepo:      bagRepo,
		locationRepo: locationRepo,
		serviceRepo:  serviceRepo,
		factory:      factory,
		bagQueries:   bagQueries,
		db:           db,
		clock:        clk,
	}
}

func (c *bagCommandsImpl) CreateBag(ctx context.Context, customerID uuid.UUID, req reqdto.CreateBagRequest) (*queries.BagView, error) {
	pickup, err := c.resolveLocation(ctx, req.PickupLocationID)
	if err != nil {
		return nil, err
	}
	delivery, err := c.resolveLocation(ctx, req.DeliveryLocationID)
	if err != nil {
		return nil, err
	}

	requests := req.ToItemRequests()

	ids := make([]uuid.UUID, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ServiceItemID)
	}
	services, err := c.serviceRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	newBag, err := c.factory.CreateBag(customerID, pickup, delivery, requests, services)
	if err != nil {
		return nil, mapBagDomainError(err)
	}

	if err := c.insertWithTagRetry(ctx, newBag); err != nil {
		return nil, err
	}

	return c.bagQueries.GetByIDSystem(ctx, newBag.ID())
}

func (c *bagCommandsImpl) UpdateStatus(ctx context.Context, bagID uuid.UUID, status string, note *string) (*queries.BagView, error) {
	target, err := bag.NewStatus(status)
	if err != nil {
		return nil, errs.ErrInvalidTransition
	}

	noteVO, err := newNote(note)
	if err != nil {
		return nil, errs.ErrInvalidNote
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, context.Canceled) {
			slog.Debug("transition rollback", "error", rollbackErr.Error())
		}
	}()

	// No row lock here. Concurrent transitions both read the same version
	// and the version-guarded save lets exactly one of them commit.
	b, err := c.bagRepo.FindByIDTx(ctx, tx, bagID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBagNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	event, err := b.Transition(target, noteVO, c.clock.Now())
	if err != nil {
		return nil, errs.ErrInvalidTransition
	}

	if err := c.bagRepo.SaveTransition(ctx, tx, b, event); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrTransitionConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.bagQueries.GetByIDSystem(ctx, b.ID())
}

func (c *bagCommandsImpl) UpdateLocations(ctx context.Context, actor queries.Actor, bagID uuid.UUID, req reqdto.UpdateBagLocationsRequest) (*queries.BagView, error) {
	// Any provided endpoint must resolve to an active location before the
	// aggregate is touched.
	if req.PickupLocationID != nil {
		if _, err := c.resolveLocation(ctx, *req.PickupLocationID); err != nil {
			return nil, err
		}
	}
	if req.DeliveryLocationID != nil {
		if _, err := c.resolveLocation(ctx, *req.DeliveryLocationID); err != nil {
			return nil, err
		}
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	b, err := c.bagRepo.FindByIDTx(ctx, tx, bagID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBagNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !actor.IsAdmin() && !b.IsOwnedBy(actor.UserID) {
		return nil, errs.ErrBagAccessDenied
	}

	if err := b.UpdateLocations(req.PickupLocationID, req.DeliveryLocationID); err != nil {
		return nil, errs.ErrLocationLockedAfterPickup
	}

	if err := c.bagRepo.SaveLocations(ctx, tx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrTransitionConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.bagQueries.GetByIDSystem(ctx, b.ID())
}

func (c *bagCommandsImpl) resolveLocation(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	loc, err := c.locationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLocationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !loc.IsActive() {
		return nil, errs.ErrLocationNotFound
	}
	return loc, nil
}

func (c *bagCommandsImpl) insertWithTagRetry(ctx context.Context, b *bag.Bag) error {
	current := b
	for attempt := 0; ; attempt++ {
		err := c.bagRepo.Create(ctx, current)
		if err == nil {
			if current != b {
				*b = *current
			}
			return nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) || attempt >= maxTagRetries {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		tag, tagErr := bag.GenerateBagTag()
		if tagErr != nil {
			return errs.Wrap(tagErr, "failed to regenerate bag tag")
		}
		slog.Warn("bag tag collision, retrying", "attempt", attempt+1)
		current = c.factory.WithTag(current, tag)
	}
}

func newNote(note *string) (bag.Note, error) {
	if note == nil {
		return bag.Note{}, nil
	}
	return bag.NewNote(*note)
}

func mapBagDomainError(err error) error {
	switch {
	case errors.Is(err, bag.ErrEmptyOrder):
		return errs.ErrEmptyOrder
	case errors.Is(err, bag.ErrInvalidQuantity):
		return errs.ErrInvalidQuantity
	case errors.Is(err, catalog.ErrUnknownServiceItem):
		return errs.ErrUnknownServiceItem
	case errors.Is(err, location.ErrInactiveLocation):
		return errs.ErrLocationNotFound
	default:
		return errs.Wrap(err, "failed to build bag")
	}
}

package queries

import (
	"context"

	"bagtrack/internal/domain/user"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Actor identifies the authenticated caller for read-side access checks.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type BagFilter struct {
	CustomerID *uuid.UUID
	Status     *string
	Page       int
	PageSize   int
}

type BagReadRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*BagView, error)
	FindViewByTag(ctx context.Context, tag string) (*BagView, error)
	ListViews(ctx context.Context, filter BagFilter) ([]*BagListItem, int64, error)
}

type BagQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BagView, error)
	GetByTag(ctx context.Context, actor Actor, tag string) (*BagView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, status *string, page, pageSize int) (*BagPage, error)
	ListAll(ctx context.Context, status *string, page, pageSize int) (*BagPage, error)

	// GetByIDSystem bypasses access checks for read-after-write inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BagView, error)
}

type bagQueriesImpl struct {
	repo BagReadRepo
}

func NewBagQueries(repo BagReadRepo) BagQueries {
	return &bagQueriesImpl{repo: repo}
}

func (q *bagQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BagView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBagNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.authorize(actor, view)
}

func (q *bagQueriesImpl) GetByTag(ctx context.Context, actor Actor, tag string) (*BagView, error) {
	view, err := q.repo.FindViewByTag(ctx, tag)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBagNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return q.authorize(actor, view)
}

func (q *bagQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BagView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBagNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bagQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, status *string, page, pageSize int) (*BagPage, error) {
	return q.list(ctx, BagFilter{CustomerID: &customerID, Status: status, Page: page, PageSize: pageSize})
}

func (q *bagQueriesImpl) ListAll(ctx context.Context, status *string, page, pageSize int) (*BagPage, error) {
	return q.list(ctx, BagFilter{Status: status, Page: page, PageSize: pageSize})
}

func (q *bagQueriesImpl) list(ctx context.Context, filter BagFilter) (*BagPage, error) {
	filter.Page, filter.PageSize = NormalizePage(filter.Page, filter.PageSize)

	items, total, err := q.repo.ListViews(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &BagPage{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}

// A customer reads only their own bags; administrators read everything.
func (q *bagQueriesImpl) authorize(actor Actor, view *BagView) (*BagView, error) {
	if !actor.IsAdmin() && view.CustomerID != actor.UserID {
		return nil, errs.ErrBagAccessDenied
	}
	return view, nil
}

func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

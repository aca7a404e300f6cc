package queries

import (
	"context"

	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceItemReadRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ServiceItemView, error)
	ListActiveViews(ctx context.Context) ([]*ServiceItemView, error)
}

type ServiceItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceItemView, error)
	ListActive(ctx context.Context) ([]*ServiceItemView, error)
}

type serviceItemQueriesImpl struct {
	repo ServiceItemReadRepo
}

func NewServiceItemQueries(repo ServiceItemReadRepo) ServiceItemQueries {
	return &serviceItemQueriesImpl{repo: repo}
}

func (q *serviceItemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceItemView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *serviceItemQueriesImpl) ListActive(ctx context.Context) ([]*ServiceItemView, error) {
	views, err := q.repo.ListActiveViews(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

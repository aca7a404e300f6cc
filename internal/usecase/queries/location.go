package queries

import (
	"context"

	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/errs"

	"github.com/google/uuid"
)

type LocationReadRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	FindViewByQRToken(ctx context.Context, token string) (*LocationView, error)
	ListActiveViews(ctx context.Context) ([]*LocationView, error)
}

type LocationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	// ResolveByQR treats unknown and inactive tokens identically: the
	// scanner only ever learns "not found".
	ResolveByQR(ctx context.Context, token string) (*LocationView, error)
	ListActive(ctx context.Context) ([]*LocationView, error)
}

type locationQueriesImpl struct {
	repo LocationReadRepo
}

func NewLocationQueries(repo LocationReadRepo) LocationQueries {
	return &locationQueriesImpl{repo: repo}
}

func (q *locationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLocationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *locationQueriesImpl) ResolveByQR(ctx context.Context, token string) (*LocationView, error) {
	view, err := q.repo.FindViewByQRToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLocationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, errs.ErrLocationNotFound
	}
	return view, nil
}

func (q *locationQueriesImpl) ListActive(ctx context.Context) ([]*LocationView, error) {
	views, err := q.repo.ListActiveViews(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

package queries

import (
	"context"
	"errors"

	"bagtrack/internal/infra"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserReadRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserReadRepo
}

func NewUserQueries(repo UserReadRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.repo.FindViewByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserNotFound
	}
	return view, nil
}

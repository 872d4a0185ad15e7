package queries

import (
	"context"
	"time"

	"meetbook/internal/domain/user"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
	Count(ctx context.Context) (int64, error)
}

type UserQueries interface {
	List(ctx context.Context) ([]*UserView, error)
	Count(ctx context.Context) (int64, error)
	// RoleOf resolves the caller's stored role. Identities that were issued a
	// token but never registered resolve to the default role.
	RoleOf(ctx context.Context, email string) (user.Role, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}

func (q *userQueriesImpl) Count(ctx context.Context) (int64, error) {
	return q.readStore.Count(ctx)
}

func (q *userQueriesImpl) RoleOf(ctx context.Context, email string) (user.Role, error) {
	view, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.RoleUser, nil
		}
		return "", err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", errs.Wrap(err, "stored role is invalid")
	}
	return role, nil
}

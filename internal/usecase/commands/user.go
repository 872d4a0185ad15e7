package commands

import (
	"context"

	"meetbook/internal/domain/user"
	reqdto "meetbook/internal/handler/dto/request"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/clock"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/queries"
	"meetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateEmail = errs.New("email already registered")
	ErrUserNotFound   = errs.New("user not found")
)

type UserCommands interface {
	Register(ctx context.Context, req reqdto.RegisterUserRequest) (*queries.UserView, error)
	// Delete is admin only; the role check lives in the handler middleware.
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, clock clock.Clock) UserCommands {
	return &userUseCaseImpl{
		uow:   uow,
		clock: clock,
	}
}

func (u *userUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterUserRequest) (*queries.UserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := user.NewUser(req.Name, email, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateEmail)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.UserView{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Email:     entity.Email().Value(),
		Role:      entity.Role().String(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (u *userUseCaseImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

package commands

import (
	"context"

	"meetbook/internal/domain/user"
	reqdto "meetbook/internal/handler/dto/request"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/pkg/jwt"
	"meetbook/internal/usecase/shared"
)

var ErrInvalidEmail = errs.New("invalid email")

type AuthCommands interface {
	// IssueToken exchanges a bare email for a signed token. Unregistered
	// emails get the default role; registration is not a prerequisite for
	// holding a token.
	IssueToken(ctx context.Context, req reqdto.IssueTokenRequest) (string, error)
}

type authUseCaseImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		uow: uow,
		jwt: jwtService,
	}
}

func (u *authUseCaseImpl) IssueToken(ctx context.Context, req reqdto.IssueTokenRequest) (string, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidEmail)
	}

	role := user.RoleUser
	stored, err := u.uow.Reads().UserRoleByEmail(ctx, email.Value())
	switch {
	case err == nil:
		parsed, roleErr := user.NewRole(stored)
		if roleErr != nil {
			return "", errs.Mark(roleErr, ErrDatabaseOperationFailed)
		}
		role = parsed
	case infra.IsKind(err, infra.KindNotFound):
		// no account yet, keep the default role
	default:
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := u.jwt.GenerateToken(email, role)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token")
	}
	return token, nil
}

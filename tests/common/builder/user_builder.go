//go:build unit || e2e

package builder

import (
	"time"

	"meetbook/internal/domain/user"
	"meetbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name  string
	Email string
	Role  string
	Now   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Test User",
		Email: "test@example.com",
		Role:  "user",
		Now:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.Name, email, u.Now)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.New(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.Now,
	}
}

func (u *UserBuilder) BuildIdentity() user.Identity {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic("builder email must be valid: " + err.Error())
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		panic("builder role must be valid: " + err.Error())
	}
	return user.Identity{Email: email, Role: role}
}

func (u *UserBuilder) BuildRegisterRequestMap() map[string]any {
	return map[string]any{
		"name":  u.Name,
		"email": u.Email,
	}
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

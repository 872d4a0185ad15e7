package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id        uuid.UUID
	name      string
	email     Email
	role      Role
	createdAt time.Time
}

// NewUser registers an identity. The role is always RoleUser here; promotion
// to admin happens out-of-band, never through the registration surface.
func NewUser(name string, email Email, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		role:      RoleUser,
		createdAt: now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, role Role, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		role:      role,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

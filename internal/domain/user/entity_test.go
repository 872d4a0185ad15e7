//go:build unit

package user_test

import (
	"testing"

	"meetbook/internal/domain/user"
	"meetbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test User", actual.Name())
		// Registration never grants anything above the default role.
		assert.Equal(t, user.RoleUser, actual.Role())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithName("  Ada  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Ada", actual.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := builder.NewUserBuilder().WithName("   ").BuildDomain()
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		errIs error
	}{
		{name: "valid email OK", email: "valid@example.com"},
		{name: "trimmed email OK", email: "  padded@example.com  "},
		{name: "empty rejected", email: "", errIs: user.ErrInvalidEmail},
		{name: "missing at rejected", email: "invalidemail.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld rejected", email: "user@host", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.email)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, email.Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		role  string
		errIs error
	}{
		{name: "user role OK", role: "user"},
		{name: "admin role OK", role: "admin"},
		{name: "unknown role rejected", role: "superuser", errIs: user.ErrInvalidRole},
		{name: "empty role rejected", role: "", errIs: user.ErrInvalidRole},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			role, err := user.NewRole(c.role)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, role.IsValid())
		})
	}

	assert.True(t, user.RoleAdmin.IsAdmin())
	assert.False(t, user.RoleUser.IsAdmin())
}

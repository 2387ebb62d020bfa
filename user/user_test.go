package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_SetPassword(t *testing.T) {
	t.Run("hashes a valid password", func(t *testing.T) {
		u := &User{}
		err := u.SetPassword("password123")
		require.NoError(t, err)
		assert.NotEmpty(t, u.PasswordHash)
		assert.NotEqual(t, "password123", u.PasswordHash)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		u := &User{}
		err := u.SetPassword("short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
		assert.Empty(t, u.PasswordHash)
	})
}

func TestUser_CheckPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("password123"))

	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("wrongpassword"))
	assert.False(t, u.CheckPassword(""))
}

func TestUser_Validate(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u := &User{Email: "test@example.com", Name: "Tester", Role: RoleInternal}
		assert.NoError(t, u.Validate())
	})

	t.Run("missing email", func(t *testing.T) {
		u := &User{Name: "Tester", Role: RoleInternal}
		assert.ErrorIs(t, u.Validate(), ErrInvalidEmail)
	})

	t.Run("missing name", func(t *testing.T) {
		u := &User{Email: "test@example.com", Role: RoleInternal}
		assert.ErrorIs(t, u.Validate(), ErrInvalidName)
	})

	t.Run("unknown role", func(t *testing.T) {
		u := &User{Email: "test@example.com", Name: "Tester", Role: Role("manager")}
		assert.ErrorIs(t, u.Validate(), ErrInvalidRole)
	})
}

func TestRole_CanEdit(t *testing.T) {
	assert.True(t, RoleAdmin.CanEdit())
	assert.True(t, RoleInternal.CanEdit())
	assert.False(t, RoleExternal.CanEdit())
}

package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLStore_Create(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("successfully create user", func(t *testing.T) {
		u := createTestUser("test@example.com", "Tester", "password123")
		err := store.Create(ctx, u)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.NotZero(t, u.CreatedAt)
	})

	t.Run("duplicate email returns error", func(t *testing.T) {
		u1 := createTestUser("duplicate@example.com", "User One", "password123")
		require.NoError(t, store.Create(ctx, u1))

		u2 := createTestUser("duplicate@example.com", "User Two", "password123")
		err := store.Create(ctx, u2)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("invalid user returns error", func(t *testing.T) {
		u := &User{
			Name: "Tester",
			Role: RoleInternal,
			// Missing email
		}
		err := store.Create(ctx, u)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestMySQLStore_GetByID(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("retrieve existing user", func(t *testing.T) {
		u := createTestUser("get@example.com", "Get User", "password123")
		require.NoError(t, store.Create(ctx, u))

		retrieved, err := store.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.ID, retrieved.ID)
		assert.Equal(t, u.Email, retrieved.Email)
		assert.Equal(t, u.Name, retrieved.Name)
	})

	t.Run("non-existent user returns error", func(t *testing.T) {
		_, err := store.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestMySQLStore_GetByEmail(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("retrieve user by email", func(t *testing.T) {
		u := createTestUser("email@example.com", "Email User", "password123")
		require.NoError(t, store.Create(ctx, u))

		retrieved, err := store.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		assert.Equal(t, u.ID, retrieved.ID)
	})

	t.Run("non-existent email returns error", func(t *testing.T) {
		_, err := store.GetByEmail(ctx, "nonexistent@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestMySQLStore_Update(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("update single field", func(t *testing.T) {
		u := createTestUser("update1@example.com", "Update User", "password123")
		require.NoError(t, store.Create(ctx, u))

		err := store.Update(ctx, u.ID, SetName("New Name"))
		require.NoError(t, err)

		updated, err := store.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
	})

	t.Run("update multiple fields", func(t *testing.T) {
		u := createTestUser("update2@example.com", "Update User Two", "password123")
		require.NoError(t, store.Create(ctx, u))

		err := store.Update(ctx, u.ID,
			SetName("Renamed"),
			SetRole(RoleAdmin),
		)
		require.NoError(t, err)

		updated, err := store.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, RoleAdmin, updated.Role)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		u := createTestUser("update3@example.com", "Update User Three", "password123")
		require.NoError(t, store.Create(ctx, u))

		err := store.Update(ctx, u.ID, SetRole(Role("manager")))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("non-existent user returns error", func(t *testing.T) {
		err := store.Update(ctx, uuid.New(), SetName("Nobody"))
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestMySQLStore_Delete(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("soft-deleted user not found", func(t *testing.T) {
		u := createTestUser("delete@example.com", "Delete User", "password123")
		require.NoError(t, store.Create(ctx, u))

		require.NoError(t, store.Delete(ctx, u.ID))

		_, err := store.GetByID(ctx, u.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("non-existent user returns error", func(t *testing.T) {
		err := store.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestMySQLStore_List(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u := createTestUser(
			"list"+string(rune('a'+i))+"@example.com",
			"List User",
			"password123",
		)
		require.NoError(t, store.Create(ctx, u))
	}

	t.Run("list with limit", func(t *testing.T) {
		users, err := store.List(ctx, 3, 0)
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("list with offset", func(t *testing.T) {
		users, err := store.List(ctx, 10, 3)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/testtrack/logger"
	"github.com/hairizuanbinnoorazman/testtrack/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *user.User {
	return &user.User{
		ID:    uuid.New(),
		Name:  "Tester",
		Email: "tester@example.com",
		Role:  user.RoleInternal,
	}
}

func TestManager_Create(t *testing.T) {
	m := NewManager(time.Hour, logger.NewTestLogger())

	sess, err := m.Create(testUser())
	require.NoError(t, err)

	assert.Len(t, sess.ID, 64)
	assert.Equal(t, user.RoleInternal, sess.Role)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	other, err := m.Create(testUser())
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestManager_Get(t *testing.T) {
	m := NewManager(time.Hour, logger.NewTestLogger())

	t.Run("existing session", func(t *testing.T) {
		created, err := m.Create(testUser())
		require.NoError(t, err)

		got, err := m.Get(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.UserID, got.UserID)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := m.Get("nope")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		expired := NewManager(-time.Minute, logger.NewTestLogger())
		created, err := expired.Create(testUser())
		require.NoError(t, err)

		_, err = expired.Get(created.ID)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(time.Hour, logger.NewTestLogger())

	created, err := m.Create(testUser())
	require.NoError(t, err)

	m.Delete(created.ID)

	_, err = m.Get(created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Cleanup(t *testing.T) {
	store := NewStore()
	now := time.Now()

	store.Set(&Session{ID: "live", ExpiresAt: now.Add(time.Hour)})
	store.Set(&Session{ID: "dead", ExpiresAt: now.Add(-time.Hour)})
	store.Set(&Session{ID: "dead2", ExpiresAt: now.Add(-time.Minute)})

	removed := store.Cleanup()
	assert.Equal(t, 2, removed)

	_, err := store.Get("live")
	assert.NoError(t, err)
	_, err = store.Get("dead")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("upload and download", func(t *testing.T) {
		err := store.Upload(ctx, "imports/a/file.csv", strings.NewReader("Title,Step\n"))
		require.NoError(t, err)

		rc, err := store.Download(ctx, "imports/a/file.csv")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "Title,Step\n", string(data))
	})

	t.Run("exists", func(t *testing.T) {
		require.NoError(t, store.Upload(ctx, "x.txt", strings.NewReader("x")))

		ok, err := store.Exists(ctx, "x.txt")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "missing.txt")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Upload(ctx, "gone.txt", strings.NewReader("x")))
		require.NoError(t, store.Delete(ctx, "gone.txt"))

		ok, err := store.Exists(ctx, "gone.txt")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		err := store.Upload(ctx, "../outside.txt", strings.NewReader("x"))
		assert.Error(t, err)
	})
}

func TestNewBlobStorage(t *testing.T) {
	t.Run("local backend", func(t *testing.T) {
		store, err := NewBlobStorage(Config{Type: "local", BaseDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &LocalStorage{}, store)
	})

	t.Run("local requires base dir", func(t *testing.T) {
		_, err := NewBlobStorage(Config{Type: "local"})
		assert.Error(t, err)
	})

	t.Run("s3 requires bucket", func(t *testing.T) {
		_, err := NewBlobStorage(Config{Type: "s3"})
		assert.Error(t, err)
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		_, err := NewBlobStorage(Config{Type: "ftp"})
		assert.Error(t, err)
	})
}

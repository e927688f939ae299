package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/uploads/",
	})
	require.NoError(t, err)

	t.Run("save then exists", func(t *testing.T) {
		err := store.Save(ctx, "42/token.png", strings.NewReader("png-bytes"), "image/png")
		require.NoError(t, err)

		exists, err := store.Exists(ctx, "42/token.png")
		require.NoError(t, err)
		assert.True(t, exists)

		data, err := os.ReadFile(filepath.Join(store.basePath, "42", "token.png"))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("url joins base and path without doubled slashes", func(t *testing.T) {
		assert.Equal(t, "http://localhost:8080/uploads/42/token.png", store.URL("42/token.png"))
		assert.Equal(t, "http://localhost:8080/uploads/42/token.png", store.URL("/42/token.png"))
	})

	t.Run("delete removes the object", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "42/token.png"))

		exists, err := store.Exists(ctx, "42/token.png")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("deleting a missing object is not an error", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "42/never-there.png"))
	})
}

func TestNewStorageUnknownType(t *testing.T) {
	_, err := New(Config{Type: "ftp"})
	assert.Error(t, err)
}

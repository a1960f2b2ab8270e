package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()

	store, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestLocalStorage(t)
	path := "avatars/user-1/123_abcd.png"

	require.NoError(t, store.Save(ctx, path, strings.NewReader("image-bytes"), "image/png"))

	exists, err := store.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := store.GetSize(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int64(len("image-bytes")), size)

	reader, err := store.Get(ctx, path)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Delete(ctx, path))
	exists, err = store.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	t.Parallel()

	store := newTestLocalStorage(t)
	assert.NoError(t, store.Delete(context.Background(), "avatars/user-1/missing.png"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestLocalStorage(t)

	url, err := store.GetURL(ctx, "covers/user-1/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/covers/user-1/x.jpg", url)

	bare, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	url, err = bare.GetURL(ctx, "covers/user-1/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/files/covers/user-1/x.jpg", url)
}

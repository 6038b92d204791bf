package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveWritesBytesVerbatim(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	payload := []byte{0x00, 0xff, 'n', 'o', 't', ' ', 'a', 'n', ' ', 'i', 'm', 'a', 'g', 'e'}
	key, err := store.Save(context.Background(), payload, SaveOptions{BaseName: "3f2c-photo", Extension: "png"})
	require.NoError(t, err)
	assert.Equal(t, "3f2c-photo.png", key)

	written, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestLocalStorageAcceptsEmptyPayload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	key, err := store.Save(context.Background(), nil, SaveOptions{BaseName: "empty", Extension: "jpg"})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestLocalStorageExclusive(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	key, err := store.Save(ctx, []byte("first"), SaveOptions{BaseName: "same", Extension: "txt", Exclusive: true})
	require.NoError(t, err)
	assert.Equal(t, "same.txt", key)

	_, err = store.Save(ctx, []byte("second"), SaveOptions{BaseName: "same", Extension: "txt", Exclusive: true})
	assert.ErrorIs(t, err, ErrObjectExists)

	written, err := os.ReadFile(filepath.Join(dir, "same.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(written))

	// 非独占写入照常覆盖
	_, err = store.Save(ctx, []byte("third"), SaveOptions{BaseName: "same", Extension: "txt"})
	require.NoError(t, err)
	written, err = os.ReadFile(filepath.Join(dir, "same.txt"))
	require.NoError(t, err)
	assert.Equal(t, "third", string(written))
}

func TestLocalStorageHonoursCancelledContext(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, []byte("x"), SaveOptions{BaseName: "x", Extension: "jpg"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, dir, store.LocalBaseDir())
}

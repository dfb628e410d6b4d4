package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), 1024, []string{"image/png", "image/jpeg"})
	require.NoError(t, err)
	return store
}

func TestDiskStoreSave(t *testing.T) {
	store := newTestStore(t)

	filename, err := store.Save(pngBytes, "image/png", "product_1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "product_1_"))
	assert.True(t, strings.HasSuffix(filename, ".png"))

	data, err := os.ReadFile(filepath.Join(store.dir, filename))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestDiskStoreSaveFilenamesDoNotCollide(t *testing.T) {
	store := newTestStore(t)

	a, err := store.Save(pngBytes, "image/png", "product_1")
	require.NoError(t, err)
	b, err := store.Save(pngBytes, "image/png", "product_1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDiskStoreSaveRejectsDisallowedDeclaredType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(pngBytes, "application/pdf", "product_1")
	assert.ErrorIs(t, err, ErrBadContentType)
}

func TestDiskStoreSaveRejectsSpoofedContent(t *testing.T) {
	store := newTestStore(t)

	// Declared png, bytes are plain text.
	_, err := store.Save([]byte("not an image at all"), "image/png", "product_1")
	assert.ErrorIs(t, err, ErrBadContentType)
}

func TestDiskStoreSaveRejectsOversize(t *testing.T) {
	store := newTestStore(t)

	big := append([]byte{}, pngBytes...)
	big = append(big, make([]byte, 2048)...)
	_, err := store.Save(big, "image/png", "product_1")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDiskStoreDelete(t *testing.T) {
	store := newTestStore(t)

	filename, err := store.Save(pngBytes, "image/png", "product_1")
	require.NoError(t, err)

	store.Delete(filename)
	_, err = os.Stat(filepath.Join(store.dir, filename))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is a silent no-op.
	store.Delete(filename)
	store.Delete("")
}

package fonts

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseapi/internal/storage"
	storeMocks "caseapi/internal/storage/mocks"
)

func TestDirLookup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "case-sans.ttf"), []byte("ttf-bytes"), 0o644))

	src := Dir{Path: dir}

	t.Run("existing font", func(t *testing.T) {
		b, err := src.Lookup(context.Background(), "case-sans.ttf")
		require.NoError(t, err)
		assert.Equal(t, []byte("ttf-bytes"), b)
	})

	t.Run("missing font", func(t *testing.T) {
		_, err := src.Lookup(context.Background(), "nope.ttf")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("path traversal is neutralized", func(t *testing.T) {
		_, err := src.Lookup(context.Background(), "../../../etc/passwd")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestObjectSourceLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := new(storeMocks.MockObjectStore)
		store.On("Get", ctx, "fonts/case-sans.ttf").
			Return(io.NopCloser(strings.NewReader("ttf-bytes")), storage.ObjectInfo{Key: "fonts/case-sans.ttf"}, nil)

		src := ObjectSource{Store: store, Prefix: "fonts/"}
		b, err := src.Lookup(ctx, "case-sans.ttf")

		require.NoError(t, err)
		assert.Equal(t, []byte("ttf-bytes"), b)
		store.AssertExpectations(t)
	})

	t.Run("store error becomes not found", func(t *testing.T) {
		store := new(storeMocks.MockObjectStore)
		store.On("Get", ctx, "fonts/case-sans.ttf").
			Return(nil, storage.ObjectInfo{}, errors.New("no such key"))

		src := ObjectSource{Store: store, Prefix: "fonts/"}
		_, err := src.Lookup(ctx, "case-sans.ttf")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNoneLookup(t *testing.T) {
	_, err := None{}.Lookup(context.Background(), "anything.ttf")
	assert.ErrorIs(t, err, ErrNotFound)
}

package fonts

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"caseapi/internal/storage"
)

// ErrNotFound reports that a typeface is not available from a source. The
// document renderer treats it as a signal to fall back to a built-in face,
// never as a render failure.
var ErrNotFound = errors.New("font not found")

// Source supplies optional typeface bytes by lookup key.
type Source interface {
	Lookup(ctx context.Context, name string) ([]byte, error)
}

// Dir is a Source reading typefaces from a local directory.
type Dir struct {
	Path string
}

func (d Dir) Lookup(_ context.Context, name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(d.Path, filepath.Base(name)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// ObjectSource is a Source fetching typefaces from an object store bucket.
type ObjectSource struct {
	Store  storage.ObjectStore
	Prefix string
}

func (s ObjectSource) Lookup(ctx context.Context, name string) ([]byte, error) {
	rc, _, err := s.Store.Get(ctx, s.Prefix+name)
	if err != nil {
		return nil, ErrNotFound
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// None is a Source with nothing in it, used when no font location is
// configured.
type None struct{}

func (None) Lookup(context.Context, string) ([]byte, error) { return nil, ErrNotFound }

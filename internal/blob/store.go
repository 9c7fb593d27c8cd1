package blob

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound means the requested key has no stored object.
	ErrNotFound = errors.New("blob: object not found")
	// ErrStorage wraps any other backend failure.
	ErrStorage = errors.New("blob: storage failure")
)

// Store uploads, downloads and deletes named PDF objects in a backing
// object store. Implementations translate backend errors into ErrNotFound
// and ErrStorage and treat deleting an absent key as success.
type Store interface {
	// Upload stores size bytes from r under key, overwriting any existing
	// object.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Download returns a reader over the object's bytes and its size.
	// The caller closes the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, int64, error)

	// Delete removes the object. A missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored key. Used by catalog reconciliation.
	List(ctx context.Context) ([]string, error)
}

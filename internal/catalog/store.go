package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means a course or plan index was out of range.
	ErrNotFound = errors.New("catalog: not found")
	// ErrValidation means the request was malformed (bad file type, size,
	// or reorder permutation).
	ErrValidation = errors.New("catalog: validation failed")
	// ErrStorage wraps backing store failures.
	ErrStorage = errors.New("catalog: storage failure")
)

// Store owns the single serialized course list. The catalog is read in full
// and written in full; there is no partial update.
//
// Update is the one read-modify-write seam. Today it is load-mutate-save
// with last-writer-wins semantics; a compare-and-swap version check can be
// added behind it without changing callers.
type Store interface {
	// Load returns the current catalog, or an empty one when absent.
	Load(ctx context.Context) ([]Course, error)

	// Save overwrites the stored catalog.
	Save(ctx context.Context, courses []Course) error

	// Update loads the catalog, applies fn and saves the result. When fn
	// returns an error nothing is written and the error is passed through.
	Update(ctx context.Context, fn func([]Course) ([]Course, error)) error
}

package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps objects as files under a single directory. Keys must be
// sanitizer-shaped; anything else is rejected before touching the
// filesystem.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %v", ErrStorage, dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (l *LocalStore) path(key string) (string, error) {
	if !ValidKey(key) {
		return "", fmt.Errorf("%w: invalid key %q", ErrNotFound, key)
	}
	return filepath.Join(l.dir, key), nil
}

func (l *LocalStore) Upload(_ context.Context, key string, r io.Reader, size int64, _ string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrStorage, key, err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: write %s: %v", ErrStorage, key, err)
	}
	if size >= 0 && n != size {
		_ = os.Remove(path)
		return fmt.Errorf("%w: write %s: short write", ErrStorage, key)
	}

	return nil
}

func (l *LocalStore) Download(_ context.Context, key string) (io.ReadCloser, int64, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: open %s: %v", ErrStorage, key, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("%w: stat %s: %v", ErrStorage, key, err)
	}

	return f, info.Size(), nil
}

func (l *LocalStore) Delete(_ context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return nil // nothing stored under an invalid key
	}

	err = os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (l *LocalStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStorage, err)
	}

	var keys []string
	for _, e := range entries {
		if !e.IsDir() {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store for development and tests. It
// round-trips through JSON on every operation so it exercises the same
// serialization path the redis store does.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) ([]Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decode()
}

func (m *MemoryStore) Save(_ context.Context, courses []Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.encode(courses)
}

func (m *MemoryStore) Update(_ context.Context, fn func([]Course) ([]Course, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	courses, err := m.decode()
	if err != nil {
		return err
	}

	updated, err := fn(courses)
	if err != nil {
		return err
	}

	return m.encode(updated)
}

func (m *MemoryStore) decode() ([]Course, error) {
	if m.data == nil {
		return []Course{}, nil
	}

	var courses []Course
	if err := json.Unmarshal(m.data, &courses); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrStorage, err)
	}
	if courses == nil {
		courses = []Course{}
	}
	return courses, nil
}

func (m *MemoryStore) encode(courses []Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStorage, err)
	}
	m.data = data
	return nil
}

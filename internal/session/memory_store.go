package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for development and tests. Expired
// tokens are dropped lazily on lookup; there is no background sweep.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = m.now().Add(m.ttl)

	return token, nil
}

func (m *MemoryStore) IsLoggedIn(_ context.Context, token string) bool {
	if token == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.tokens[token]
	if !ok {
		return false
	}
	if m.now().After(expiry) {
		delete(m.tokens, token)
		return false
	}

	return true
}

func (m *MemoryStore) Destroy(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if token == "" {
		t.Fatal("Create() returned empty token")
	}

	if !store.IsLoggedIn(ctx, token) {
		t.Error("IsLoggedIn() = false immediately after Create()")
	}

	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if store.IsLoggedIn(ctx, token) {
		t.Error("IsLoggedIn() = true after Destroy()")
	}

	// destroying again must not fail
	if err := store.Destroy(ctx, token); err != nil {
		t.Errorf("Destroy() on missing token error = %v", err)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	if store.IsLoggedIn(context.Background(), "never-created") {
		t.Error("IsLoggedIn() = true for a token that was never created")
	}
	if store.IsLoggedIn(context.Background(), "") {
		t.Error("IsLoggedIn() = true for empty token")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// jump past the TTL
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if store.IsLoggedIn(ctx, token) {
		t.Error("IsLoggedIn() = true past expiry")
	}
}

func TestGenerateTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("GenerateToken() produced duplicate %q", token)
		}
		seen[token] = true
	}
}

package session

import (
	"context"
)

// loggedIn is the sentinel value stored for an authenticated admin session.
// Anything else (including a missing key) reads as logged out.
const loggedIn = "logged_in"

// Store issues and checks opaque admin session tokens.
//
// Implementations hold a single piece of state per token: the logged-in
// sentinel with a time-to-live. There is no refresh operation; a session
// expires exactly once its TTL elapses, regardless of activity.
type Store interface {
	// Create generates a new token, persists it with the store's TTL and
	// returns it.
	Create(ctx context.Context) (string, error)

	// IsLoggedIn reports whether the token maps to a live session. Store
	// errors read as logged out (fail closed), never as an error.
	IsLoggedIn(ctx context.Context, token string) bool

	// Destroy deletes the token. Destroying a missing token is not an error.
	Destroy(ctx context.Context, token string) error
}

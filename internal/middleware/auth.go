package middleware

import (
	"net/http"

	"course-service/internal/session"
)

// AuthMiddleware gates admin routes on a live session token carried in the
// session cookie. Auth decisions are session-based only; it never inspects
// credentials.
type AuthMiddleware struct {
	Store session.Store
}

func NewAuthMiddleware(store session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store}
}

func (a *AuthMiddleware) loggedIn(r *http.Request) bool {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return a.Store.IsLoggedIn(r.Context(), cookie.Value)
}

// RequireAuth refuses unauthenticated requests with 401. Used for the
// mutation endpoints.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.loggedIn(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuthPage redirects unauthenticated requests to the login page.
// Used for the admin HTML views.
func (a *AuthMiddleware) RequireAuthPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.loggedIn(r) {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

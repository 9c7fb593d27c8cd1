package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course-service/internal/session"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	auth := NewAuthMiddleware(store)
	handler := auth.RequireAuth(okHandler())

	token, err := store.Create(context.Background())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
	}{
		{name: "no cookie", cookie: nil, wantStatus: http.StatusUnauthorized},
		{name: "empty cookie", cookie: &http.Cookie{Name: session.CookieName, Value: ""}, wantStatus: http.StatusUnauthorized},
		{name: "unknown token", cookie: &http.Cookie{Name: session.CookieName, Value: "bogus"}, wantStatus: http.StatusUnauthorized},
		{name: "valid token", cookie: &http.Cookie{Name: session.CookieName, Value: token}, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/add-course", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAuthPageRedirects(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	auth := NewAuthMiddleware(store)
	handler := auth.RequireAuthPage(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want /admin/login", loc)
	}
}

func TestRequireAuthAfterDestroy(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(time.Hour)
	auth := NewAuthMiddleware(store)
	handler := auth.RequireAuth(okHandler())

	token, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/add-course", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"course-service/internal/logger"
	"course-service/internal/session"
)

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if !h.verifier.Verify(email, password) {
		logger.Warn("login rejected", map[string]any{"ip": c.ClientIP()})
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		fail(c, "login", err)
		return
	}

	session.SetCookie(c.Writer, token, time.Now().Add(h.sessionTTL), session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("admin logged in", map[string]any{"ip": c.ClientIP()})
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) logout(c *gin.Context) {
	// Best effort: the store delete is idempotent and a failed delete still
	// leaves the client without a cookie.
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		_ = h.sessions.Destroy(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusSeeOther, "/admin/login")
}

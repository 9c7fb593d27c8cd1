package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) userDashboard(c *gin.Context) {
	courses, err := h.catalog.Courses(c.Request.Context())
	if err != nil {
		fail(c, "user dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "user_dashboard.html", gin.H{
		"courses": courses,
	})
}

func (h *Handler) adminDashboard(c *gin.Context) {
	courses, err := h.catalog.Courses(c.Request.Context())
	if err != nil {
		fail(c, "admin dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"courses": courses,
	})
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", nil)
}

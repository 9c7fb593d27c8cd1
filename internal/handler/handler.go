package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"course-service/internal/auth"
	"course-service/internal/blob"
	"course-service/internal/catalog"
	"course-service/internal/logger"
	"course-service/internal/middleware"
	"course-service/internal/session"
)

type Handler struct {
	verifier   *auth.Verifier
	sessions   session.Store
	catalog    *catalog.Service
	blobs      blob.Store
	sessionTTL time.Duration
}

func NewHandler(
	verifier *auth.Verifier,
	sessions session.Store,
	catalogSvc *catalog.Service,
	blobs blob.Store,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		verifier:   verifier,
		sessions:   sessions,
		catalog:    catalogSvc,
		blobs:      blobs,
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, gate *middleware.AuthMiddleware) {
	r.GET("/", h.userDashboard)
	r.GET("/admin/login", h.loginPage)
	r.POST("/admin/login", h.login)
	r.GET("/logout", h.logout)
	r.GET("/download/:filename", h.download)
	r.GET("/logs", h.logs)

	r.GET("/kaithhealthcheck", h.health)
	r.GET("/kaithheathcheck", h.health) // historical alias, still probed

	r.GET("/admin", middleware.GinRequireAuthPage(gate), h.adminDashboard)

	gated := r.Group("/")
	gated.Use(middleware.GinRequireAuth(gate))
	gated.POST("/add-course", h.addCourse)
	gated.POST("/edit-course", h.editCourse)
	gated.POST("/delete-course", h.deleteCourse)
	gated.POST("/add-plan", h.addPlan)
	gated.POST("/edit-plan", h.editPlan)
	gated.POST("/delete-plan", h.deletePlan)
	gated.POST("/update-course-order", h.updateCourseOrder)
	gated.POST("/update-plan-order", h.updatePlanOrder)
	gated.POST("/reconcile", h.reconcile)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// fail maps a service error to an HTTP response. Storage failures are logged
// with context but surface as a generic message only.
func fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, blob.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, catalog.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
	case errors.Is(err, catalog.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("operation failed", map[string]any{
			"op":    op,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

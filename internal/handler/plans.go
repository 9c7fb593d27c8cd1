package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"course-service/internal/catalog"
)

func (h *Handler) addPlan(c *gin.Context) {
	courseIndex, err := formIndex(c, "course_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	upload, cleanup, err := formUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file upload"})
		return
	}
	defer cleanup()

	if err := h.catalog.AddPlan(c.Request.Context(), courseIndex, name, upload); err != nil {
		fail(c, "add plan", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) editPlan(c *gin.Context) {
	courseIndex, err := formIndex(c, "course_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	planIndex, err := formIndex(c, "plan_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	upload, cleanup, err := formUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file upload"})
		return
	}
	defer cleanup()

	if err := h.catalog.EditPlan(c.Request.Context(), courseIndex, planIndex, name, upload); err != nil {
		fail(c, "edit plan", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) deletePlan(c *gin.Context) {
	courseIndex, err := formIndex(c, "course_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	planIndex, err := formIndex(c, "plan_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.DeletePlan(c.Request.Context(), courseIndex, planIndex); err != nil {
		fail(c, "delete plan", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) updatePlanOrder(c *gin.Context) {
	courseIndex, err := formIndex(c, "course_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := formOrder(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.ReorderPlans(c.Request.Context(), courseIndex, order); err != nil {
		fail(c, "reorder plans", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// formUpload extracts the optional "file" multipart field. A missing field
// yields a nil upload. The returned cleanup closes the opened file and is
// safe to call unconditionally.
func formUpload(c *gin.Context) (*catalog.Upload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	if fh.Filename == "" {
		return nil, noop, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}

	return &catalog.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, func() { _ = f.Close() }, nil
}

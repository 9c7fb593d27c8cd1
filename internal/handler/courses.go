package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) addCourse(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := h.catalog.AddCourse(c.Request.Context(), title); err != nil {
		fail(c, "add course", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) editCourse(c *gin.Context) {
	index, err := formIndex(c, "course_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := h.catalog.EditCourse(c.Request.Context(), index, title); err != nil {
		fail(c, "edit course", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) deleteCourse(c *gin.Context) {
	index, err := formIndex(c, "course_index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.DeleteCourse(c.Request.Context(), index); err != nil {
		fail(c, "delete course", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) updateCourseOrder(c *gin.Context) {
	order, err := formOrder(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.catalog.ReorderCourses(c.Request.Context(), order); err != nil {
		fail(c, "reorder courses", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func formIndex(c *gin.Context, field string) (int, error) {
	raw := c.PostForm(field)
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return index, nil
}

// formOrder parses the "order" form field, a JSON array of indices.
func formOrder(c *gin.Context) ([]int, error) {
	raw := c.PostForm("order")
	if raw == "" {
		return nil, fmt.Errorf("order is required")
	}

	var order []int
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, fmt.Errorf("order must be a JSON array of indices")
	}
	return order, nil
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"course-service/internal/blob"
	"course-service/internal/logger"
)

// download proxies the stored PDF through the service. One code path serves
// every backend; no presigned URLs.
func (h *Handler) download(c *gin.Context) {
	key := c.Param("filename")
	if !blob.ValidKey(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	rc, size, err := h.blobs.Download(c.Request.Context(), key)
	if err != nil {
		fail(c, "download", err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, size, "application/pdf", rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%s", key),
	})
}

func (h *Handler) reconcile(c *gin.Context) {
	removed, err := h.catalog.Reconcile(c.Request.Context())
	if err != nil {
		fail(c, "reconcile", err)
		return
	}

	logger.Info("reconcile finished", map[string]any{"removed": removed})
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (h *Handler) logs(c *gin.Context) {
	path := logger.FilePath()
	if path == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no log file configured"})
		return
	}
	c.FileAttachment(path, "logs.txt")
}

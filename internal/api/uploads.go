package api

import (
	"errors"
	"net/http"

	"exhibit-labels/internal/uploads"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UploadHandler struct {
	Uploads *uploads.Handler
	MaxSize int64
	Log     *zap.Logger
}

func NewUploadHandler(u *uploads.Handler, maxSize int64, log *zap.Logger) *UploadHandler {
	return &UploadHandler{Uploads: u, MaxSize: maxSize, Log: log}
}

// Upload accepts one multipart media file and returns the URI it can be
// retrieved from.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part in the request"})
		return
	}
	defer file.Close()

	if h.MaxSize > 0 && header.Size > h.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	name, err := h.Uploads.Accept(file, header.Filename)
	if err != nil {
		if errors.Is(err, uploads.ErrTypeNotAllowed) || errors.Is(err, uploads.ErrNoFilename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Log.Error("Failed to store upload", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"filename":  name,
		"media_uri": "/uploads/" + name,
	})
}

// Serve streams a previously accepted file back. The filename comes from
// the request path, so resolution is guarded against directory escape.
func (h *UploadHandler) Serve(c *gin.Context) {
	path, err := h.Uploads.Resolve(c.Param("filename"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(path)
}

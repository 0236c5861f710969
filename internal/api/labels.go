package api

import (
	"net/http"

	"exhibit-labels/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LabelHandler struct {
	Store *store.LabelStore
	Log   *zap.Logger
}

func NewLabelHandler(s *store.LabelStore, log *zap.Logger) *LabelHandler {
	return &LabelHandler{Store: s, Log: log}
}

// CreateLabel stores a submitted label document under a freshly generated
// identifier and returns the shareable viewer URL.
func (h *LabelHandler) CreateLabel(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil || doc == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No JSON data provided in request body."})
		return
	}

	labelID, err := h.Store.CreateWithNewID(doc)
	if err != nil {
		h.Log.Error("Failed to create label", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Log.Info("Label created", zap.String("label_id", labelID))
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Exhibit label data successfully saved.",
		"label_id": labelID,
		"url":      "/exhibit/" + labelID,
	})
}

func (h *LabelHandler) DeleteLabel(c *gin.Context) {
	labelID := c.Param("label_id")

	removed, err := h.Store.Delete(labelID)
	if err != nil {
		h.Log.Error("Failed to delete label", zap.String("label_id", labelID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label deleted"})
}

// ListLabels returns the sidebar summaries as JSON.
func (h *LabelHandler) ListLabels(c *gin.Context) {
	summaries, err := h.Store.FetchAllSummaries()
	if err != nil {
		h.Log.Error("Failed to list labels", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

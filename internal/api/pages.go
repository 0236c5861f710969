package api

import (
	"errors"
	"html/template"
	"net/http"

	"exhibit-labels/internal/qrcode"
	"exhibit-labels/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PageHandler struct {
	Store   *store.LabelStore
	BaseURL string
	Log     *zap.Logger
}

func NewPageHandler(s *store.LabelStore, baseURL string, log *zap.Logger) *PageHandler {
	return &PageHandler{Store: s, BaseURL: baseURL, Log: log}
}

// Home serves the submission form.
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// ViewExhibit renders the shareable page for one label: the layout chosen
// by the document's template field, a sidebar of all labels, and a QR code
// for the page's canonical URL.
func (h *PageHandler) ViewExhibit(c *gin.Context) {
	labelID := c.Param("label_id")

	doc, err := h.Store.Fetch(labelID)
	if errors.Is(err, store.ErrNotFound) {
		c.HTML(http.StatusNotFound, "error_404.html", gin.H{"LabelID": labelID})
		return
	}
	if err != nil {
		h.Log.Error("Failed to load label", zap.String("label_id", labelID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error_500.html", gin.H{
			"LabelID": labelID,
			"Error":   err.Error(),
		})
		return
	}

	summaries, err := h.Store.FetchAllSummaries()
	if err != nil {
		// The sidebar is decorative; render the label without it.
		h.Log.Error("Failed to load sidebar summaries", zap.Error(err))
		summaries = nil
	}

	viewerURL := h.BaseURL + "/exhibit/" + labelID
	qr, err := qrcode.DataURI(viewerURL)
	if err != nil {
		h.Log.Error("Failed to render QR code", zap.String("url", viewerURL), zap.Error(err))
	}

	c.HTML(http.StatusOK, TemplateFromDocument(doc).File(), gin.H{
		"LabelID": labelID,
		"Data":    doc,
		"Labels":  summaries,
		"URL":     viewerURL,
		// Typed as a URL so html/template keeps the data: scheme.
		"QRCode": template.URL(qr),
	})
}

// NotFound renders the generic not-found page for unmatched routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error_404.html", gin.H{"LabelID": "N/A"})
}

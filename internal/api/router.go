package api

import (
	"net/http"
	"path/filepath"

	"exhibit-labels/internal/config"
	"exhibit-labels/internal/store"
	"exhibit-labels/internal/uploads"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg *config.Config, s *store.LabelStore, u *uploads.Handler, log *zap.Logger) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	labelHandler := NewLabelHandler(s, log)
	uploadHandler := NewUploadHandler(u, cfg.MaxUploadSize, log)
	pageHandler := NewPageHandler(s, cfg.BaseURL, log)

	// Page Routes
	r.GET("/", pageHandler.Home)
	r.GET("/exhibit/:label_id", pageHandler.ViewExhibit)
	r.GET("/uploads/:filename", uploadHandler.Serve)

	// API Routes
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", Health)
		apiGroup.GET("/labels", labelHandler.ListLabels)
		apiGroup.POST("/create_label", labelHandler.CreateLabel)
		apiGroup.DELETE("/delete_label/:label_id", labelHandler.DeleteLabel)
		apiGroup.POST("/upload", uploadHandler.Upload)
	}

	r.NoRoute(pageHandler.NotFound)

	return r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

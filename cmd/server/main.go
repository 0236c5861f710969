package main

import (
	"log"

	"exhibit-labels/internal/api"
	"exhibit-labels/internal/config"
	"exhibit-labels/internal/database"
	"exhibit-labels/internal/store"
	"exhibit-labels/internal/uploads"
	"exhibit-labels/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	zl, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.InitGorm(cfg)
	if err != nil {
		zl.Fatal("Failed to initialize database", zap.Error(err))
	}

	labelStore := store.New(db)

	uploadHandler, err := uploads.New(cfg.UploadDir)
	if err != nil {
		zl.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	r := api.NewRouter(cfg, labelStore, uploadHandler, zl)

	zl.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zl.Fatal("Failed to run server", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "inbox-tldr/cmd/api"
	emailUsecase "inbox-tldr/internal/email/usecase"
	"inbox-tldr/pkg/config"
	"inbox-tldr/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.GinMode == gin.DebugMode)
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summaryUsecase := emailUsecase.NewSummaryUsecase()
	handler := api.NewHandler(summaryUsecase, cfg, zapLogger)

	if err := handler.Start(ctx); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}

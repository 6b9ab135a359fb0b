package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	emailDelivery "inbox-tldr/internal/email/delivery"
	emailUsecase "inbox-tldr/internal/email/usecase"
	"inbox-tldr/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	config *config.Config
	logger *zap.Logger
	engine *gin.Engine
}

func NewHandler(summaryUc emailUsecase.SummaryUsecase, cfg *config.Config, logger *zap.Logger) *Handler {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(
		RequestID(),
		AccessLog(logger),
		Metrics(),
		Recovery(logger),
		CORS(cfg.CORSAllowedOrigins),
	)

	summaryHandler := emailDelivery.NewSummaryHandler(summaryUc)
	SetupRoutes(r, summaryHandler)

	return &Handler{
		config: cfg,
		logger: logger,
		engine: r,
	}
}

// ServeHTTP makes Handler usable directly with httptest
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.engine.ServeHTTP(w, req)
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (h *Handler) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              h.config.Addr(),
		Handler:           h.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		h.logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	h.logger.Info("shutting down server", zap.Duration("timeout", h.config.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

package api

import (
	"net/http"

	emailDelivery "inbox-tldr/internal/email/delivery"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, summaryHandler *emailDelivery.SummaryHandler) {
	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/summarize", summaryHandler.Summarize)
	r.POST("/focus-score", summaryHandler.FocusScore)
	r.POST("/mark-read", summaryHandler.MarkRead)
}

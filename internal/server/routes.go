package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacesedan/sentiresponder/internal/metrics"
)

func registerRoutes(r *gin.Engine, h *Handler, reg *prometheus.Registry) {
	r.POST("/predict/", h.Predict)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler(reg)))
}

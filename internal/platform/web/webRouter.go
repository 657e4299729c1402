package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(r *gin.Engine, handler *WebHandler, gatherer prometheus.Gatherer) {
	api := r.Group("/api")
	{
		api.POST("/analyze", handler.Analyze)
		api.POST("/generate", handler.Generate)
		api.POST("/improve", handler.Improve)
		api.POST("/explain", handler.Explain)
		api.POST("/audit", handler.Audit)
		api.GET("/stats", handler.Stats)
	}

	r.GET("/healthz", handler.Health)
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

func NewRouter(handler *WebHandler, gatherer prometheus.Gatherer, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	SetupRoutes(r, handler, gatherer)
	return r
}

// RequestLogger logs method, route and status. Bodies are never logged.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("clientIp", c.ClientIP()),
		)
	}
}

package gin

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the router for the admin surface.
func NewRouter(cfg *Config, handler *Handler, logger *slog.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	router.GET("/health", handler.Health)

	admin := router.Group("/admin")
	{
		admin.POST("/scrape-product", handler.ScrapeProduct)
		admin.POST("/scrape-product/stream", handler.StreamScrapeProduct)
	}

	return router
}

// RequestLogger logs one line per request via slog.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

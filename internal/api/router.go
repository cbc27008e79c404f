package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kappucake/cakeapi/internal/api/handlers"
	"github.com/kappucake/cakeapi/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, orders handlers.OrderCreator, confirmer handlers.PaymentConfirmer, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "kappucake backend running"})
	}
	router.GET("/health", health)
	router.GET("/", health)

	router.POST("/create-order", handlers.HandleCreateOrder(orders, logger))
	router.POST("/verify-and-email", handlers.HandleVerifyAndEmail(confirmer, logger))

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

package http

import (
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ValenGrassi/cinerack/internal/domain/ports"
	"github.com/ValenGrassi/cinerack/internal/observability"
)

// ginLogger returns a gin.HandlerFunc (middleware) that logs requests using our observability logger
func ginLogger() gin.HandlerFunc {
	logger := observability.New("gin-http", "info")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		clientIP := c.ClientIP()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		observability.HTTPRequestTotal.WithLabelValues(method, c.FullPath(), strconv.Itoa(statusCode)).Inc()

		fields := []interface{}{
			"status", statusCode,
			"method", method,
			"path", path,
			"ip", clientIP,
			"latency_ms", latency.Milliseconds(),
		}

		if query != "" {
			fields = append(fields, "query", query)
		}
		if errorMessage != "" {
			fields = append(fields, "error", errorMessage)
		}

		if statusCode >= 500 {
			logger.Errorw("HTTP request error", fields...)
		} else if statusCode >= 400 {
			logger.Warnw("HTTP request warning", fields...)
		} else {
			logger.Infow("HTTP request", fields...)
		}
	}
}

// ginRecovery returns a gin.HandlerFunc (middleware) that recovers from panics and logs using our observability logger
func ginRecovery() gin.HandlerFunc {
	logger := observability.New("gin-recovery", "info")

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				logger.Errorw("Panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"ip", c.ClientIP(),
					"stack", string(stack),
				)

				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(rackService ports.RackService, healthCheck func() error) *gin.Engine {
	// Set Gin to release mode to disable debug logging
	gin.SetMode(gin.ReleaseMode)

	// Create router without default middleware
	router := gin.New()

	// Add custom recovery middleware (must be first)
	router.Use(ginRecovery())

	// Add custom logger middleware
	router.Use(ginLogger())

	handler := NewHandler(rackService, healthCheck)

	api := router.Group("/api")
	{
		api.GET("/cinemas", handler.ListCinemas)
		api.POST("/cinemas/import", handler.ImportSpreadsheet)
		api.GET("/cinemas/:id", handler.GetCinema)
		api.DELETE("/cinemas/:id", handler.DeleteCinema)
		api.GET("/cinemas/:id/metrics", handler.GetRackMetrics)
		api.GET("/cinemas/:id/audit", handler.ListAuditLog)
		api.PUT("/cinemas/:id/components", handler.ReplaceComponents)
		api.PATCH("/cinemas/:id/components/:componentId", handler.UpdateComponent)
		api.DELETE("/cinemas/:id/components/:componentId", handler.RemoveComponent)
	}

	// Health check and Prometheus scrape endpoint
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(observability.MetricsHandler()))

	return router
}

package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ralfmy/itv-roombot/logger"
)

// Logging emits one structured line per request.
type Logging interface {
	Middleware() gin.HandlerFunc
}

type LoggingImpl struct {
	logger logger.Logger
}

func NewLoggingMiddleware(logger logger.Logger) Logging {
	return &LoggingImpl{
		logger: logger,
	}
}

func (m *LoggingImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
		)
	}
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sheetdesk/domain/core"
	apperrors "sheetdesk/internal/errors"
	"sheetdesk/internal/metrics"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// setupMiddleware configures gin middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(
		requestID(),
		s.accessLog(),
		gin.CustomRecovery(s.recoverPanic),
		allowAllOrigins(),
	)
	if s.metricsPath != "" {
		s.engine.Use(s.collectMetrics())
	}
}

// requestID tags every request with an id, reusing a well-formed inbound X-Request-ID
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := core.ParseRequestID(c.GetHeader(requestIDHeader))
		if err != nil {
			id = core.NewRequestID()
		}
		c.Set(requestIDKey, id.String())
		c.Header(requestIDHeader, id.String())
		c.Next()
	}
}

// allowAllOrigins answers preflight requests directly and lets any origin call the API
func allowAllOrigins() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:   []string{requestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}

// accessLog writes one structured entry per request
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.FullPath() == s.metricsPath && s.metricsPath != "" {
			return
		}
		s.logger.Zap().Info("http request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// collectMetrics records request counters and latency by route template
func (s *Server) collectMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == s.metricsPath {
			return
		}
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(strconv.Itoa(c.Writer.Status()), c.Request.Method, route, time.Since(start).Seconds())
	}
}

// recoverPanic converts a handler panic into a 500 JSON response
func (s *Server) recoverPanic(c *gin.Context, recovered interface{}) {
	s.logger.Error("[recoverPanic] request %s panicked: %v", c.GetString(requestIDKey), recovered)
	s.fail(c, apperrors.InternalError("Internal server error"))
}

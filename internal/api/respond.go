package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sheetdesk/internal"
	apperrors "sheetdesk/internal/errors"
)

// requestLogger returns the server logger tagged with the request id
func (s *Server) requestLogger(c *gin.Context) *internal.Logger {
	return s.logger.With(zap.String(requestIDKey, c.GetString(requestIDKey)))
}

// fail writes err as {"message": ...} with the status of its error code and stops the chain.
// Errors outside the AppError taxonomy are unexpected and logged at error level.
func (s *Server) fail(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	switch {
	case !apperrors.IsAppError(err):
		s.requestLogger(c).Error("[%s] unexpected error: %v", c.FullPath(), err)
	case status >= 500:
		s.requestLogger(c).Warn("[%s] request failed: %v", c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, gin.H{"message": apperrors.PublicMessage(err)})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleIndex reports that the server is up
func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend server is running!"})
}

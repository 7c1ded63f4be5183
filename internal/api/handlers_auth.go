package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"sheetdesk/domain/core"
	apperrors "sheetdesk/internal/errors"
	"sheetdesk/internal/metrics"
	"sheetdesk/models"
)

const (
	msgCredentialsRequired = "Username and password are required"
	msgUserExists          = "User already exists"
	msgInvalidCredentials  = "Invalid credentials"
)

// bindCredentials decodes the JSON body; absent, empty or non-string fields are a validation error
func bindCredentials(c *gin.Context) (*models.Credentials, error) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, apperrors.ValidationError(msgCredentialsRequired)
	}
	return &req, nil
}

// handleRegister adds a new user to the registry
func (s *Server) handleRegister(c *gin.Context) {
	req, err := bindCredentials(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := s.users.CreateUser(ctx, req.User()); err != nil {
		if core.IsConflictError(err) {
			s.fail(c, apperrors.ConflictError(msgUserExists))
			return
		}
		s.fail(c, apperrors.Wrap(err, "Internal server error"))
		return
	}

	if count, err := s.users.CountUsers(ctx); err == nil {
		metrics.SetRegisteredUsers(count)
	}
	s.requestLogger(c).Info("[handleRegister] registered new user: %s", req.Username)

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// handleLogin checks the submitted credentials against the registry.
// Unknown users and wrong passwords get the same response.
func (s *Server) handleLogin(c *gin.Context) {
	req, err := bindCredentials(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	user, err := s.users.GetUser(c.Request.Context(), req.Username)
	if err != nil && !core.IsNotFoundError(err) {
		s.fail(c, apperrors.Wrap(err, "Internal server error"))
		return
	}
	if user == nil || subtle.ConstantTimeCompare([]byte(user.Password), []byte(req.Password)) != 1 {
		s.fail(c, apperrors.AuthenticationError(msgInvalidCredentials))
		return
	}

	s.requestLogger(c).Info("[handleLogin] user logged in: %s", user.Username)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"username": user.Username,
	})
}

package ports

import (
	"context"

	"sheetdesk/models"
)

// UserRepository defines the interface for credential registry operations
type UserRepository interface {
	// GetUser retrieves a user by username. Returns core.ErrUserNotFound when absent.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// CreateUser stores a new user. The existence check and the insert happen
	// atomically; a taken username returns core.ErrUserExists.
	CreateUser(ctx context.Context, user *models.User) error

	// CountUsers returns the number of registered users
	CountUsers(ctx context.Context) (int, error)
}

package memory

import (
	"context"
	"sync"

	"sheetdesk/domain/core"
	"sheetdesk/models"
	"sheetdesk/ports"
)

// UserRepositoryImpl implements UserRepository in process memory.
// Contents are lost when the process exits.
type UserRepositoryImpl struct {
	mu    sync.RWMutex
	users map[string]string
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() ports.UserRepository {
	return &UserRepositoryImpl{users: make(map[string]string)}
}

// GetUser retrieves a user by username
func (r *UserRepositoryImpl) GetUser(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	password, ok := r.users[username]
	r.mu.RUnlock()

	if !ok {
		return nil, core.ErrUserNotFound
	}
	return &models.User{Username: username, Password: password}, nil
}

// CreateUser stores the user unless the username is already registered
func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return core.ErrUserExists
	}
	r.users[user.Username] = user.Password
	return nil
}

// CountUsers returns the number of registered users
func (r *UserRepositoryImpl) CountUsers(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

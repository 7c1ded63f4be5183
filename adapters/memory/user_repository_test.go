package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetdesk/domain/core"
	"sheetdesk/models"
)

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.CreateUser(ctx, &models.User{Username: "alice", Password: "s3cret"}))

	user, err := repo.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "s3cret", user.Password)
}

func TestCreateDuplicateKeepsFirstPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	require.NoError(t, repo.CreateUser(ctx, &models.User{Username: "bob", Password: "first"}))

	err := repo.CreateUser(ctx, &models.User{Username: "bob", Password: "second"})
	assert.ErrorIs(t, err, core.ErrUserExists)
	assert.True(t, core.IsConflictError(err))

	user, err := repo.GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "first", user.Password)

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetUnknownUser(t *testing.T) {
	user, err := NewUserRepository().GetUser(context.Background(), "ghost")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, core.ErrUserNotFound)
	assert.True(t, core.IsNotFoundError(err))
}

func TestConcurrentCreateSameUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	const workers = 64
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.CreateUser(ctx, &models.User{Username: "racer", Password: fmt.Sprintf("pw-%d", i)})
			if err == nil {
				wins.Add(1)
				return
			}
			assert.ErrorIs(t, err, core.ErrUserExists)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewUserRepository()

	err := repo.CreateUser(ctx, &models.User{Username: "late", Password: "pw"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.GetUser(ctx, "late")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.CountUsers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

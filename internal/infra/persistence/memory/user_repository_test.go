package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodlog/internal/domain/entity"
	"foodlog/internal/domain/repository"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := &entity.User{Username: "Alice", Email: "alice@example.com", PasswordCredential: "cred"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Username)

	byName, err := repo.FindByUsername(ctx, "aLiCe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UniquenessIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", Email: "alice@example.com"}))

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "ALICE", "other@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsernameOrEmail(ctx, "bob", "Alice@Example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsernameOrEmail(ctx, "bob", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Create(ctx, &entity.User{Username: "Alice", Email: "new@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestUserRepository_ConcurrentDuplicateCreatesOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, &entity.User{Username: "racer", Email: "racer@example.com"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestUserRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++

		return base.Add(time.Duration(tick) * time.Minute)
	}

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &entity.User{Username: name, Email: name + "@example.com"}))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "third", users[0].Username)
	assert.Equal(t, "first", users[2].Username)
}

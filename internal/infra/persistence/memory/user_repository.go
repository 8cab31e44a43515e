// Package memory provides process-local repository implementations used by tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"foodlog/internal/domain/entity"
	"foodlog/internal/domain/repository"
)

// UserRepository keeps users in a map guarded by a mutex and enforces
// the same case-insensitive uniqueness as the database indexes.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]entity.User
	now    func() time.Time
}

// NewUserRepository returns an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[int64]entity.User),
		now:   time.Now,
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (s *UserRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (s *UserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *UserRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conflicts(username, email), nil
}

func (s *UserRepository) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts(user.Username, user.Email) {
		return repository.ErrDuplicateKey
	}

	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = s.now()
	s.users[user.ID] = *user

	return nil
}

func (s *UserRepository) List(_ context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID > users[j].ID
		}

		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	return users, nil
}

// conflicts must be called with the lock held.
func (s *UserRepository) conflicts(username, email string) bool {
	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) || strings.EqualFold(user.Email, email) {
			return true
		}
	}

	return false
}

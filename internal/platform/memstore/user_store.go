// Package memstore provides in-memory store implementations, used by
// tests and as the development fallback when no database is configured.
package memstore

import (
	"context"
	"sync"

	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/store"
)

// UserStore is a map-backed store.UserStore with the same uniqueness
// semantics as the PostgreSQL implementation.
type UserStore struct {
	mu         sync.RWMutex
	byID       map[int64]*domain.User
	byUsername map[string]int64
	nextID     int64
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:       make(map[int64]*domain.User),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[user.Username]; exists {
		return store.ErrUsernameExists
	}

	user.ID = s.nextID
	s.nextID++

	stored := *user
	s.byID[user.ID] = &stored
	s.byUsername[user.Username] = user.ID
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	out := *s.byID[id]
	return &out, nil
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.byID))
	for id := int64(1); id < s.nextID; id++ {
		if user, ok := s.byID[id]; ok {
			out := *user
			users = append(users, &out)
		}
	}
	return users, nil
}

// Delete removes a user, primarily to exercise the deleted-account path
// in identity resolution.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return store.ErrUserNotFound
	}
	delete(s.byUsername, user.Username)
	delete(s.byID, id)
	return nil
}

package user

import (
	"context"
	"sync"

	"cinelog/internal/identity/models"
	"cinelog/pkg/platform/sentinel"
)

// InMemory keeps user records keyed by normalized email. Callers normalize
// before reaching the store; the store treats the key as opaque.
type InMemory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemory() *InMemory {
	return &InMemory{users: make(map[string]models.User)}
}

func (s *InMemory) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return models.User{}, sentinel.ErrNotFound
	}
	return u, nil
}

// CreateIfEmailAvailable is the uniqueness-enforcing write behind signup: the
// write's rejection is the conflict signal, there is no separate existence
// check to race against.
func (s *InMemory) CreateIfEmailAvailable(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.Email]; exists {
		return sentinel.ErrConflict
	}
	s.users[u.Email] = u
	return nil
}

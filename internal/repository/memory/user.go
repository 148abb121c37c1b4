// Package memory holds the in-memory repository implementations. All
// entity collections live for the process lifetime, seeded from the
// fixtures package at startup; there is no persistence layer behind
// them. Every store is safe for concurrent use.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/eripro/connect/internal/models"
)

type UserStore struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int64
}

func NewUserStore(seed []models.User) *UserStore {
	s := &UserStore{users: append([]models.User(nil), seed...), nextID: 1}
	for _, u := range seed {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	u.ID = s.nextID
	s.nextID++
	s.users = append(s.users, u)
	return &u, nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return nil
}

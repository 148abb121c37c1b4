package memory

import (
	"context"
	"sync"

	"github.com/eripro/connect/internal/models"
	"github.com/google/uuid"
)

type ProductivityStore struct {
	mu    sync.RWMutex
	items []models.ProductivityItem
}

func NewProductivityStore(seed []models.ProductivityItem) *ProductivityStore {
	return &ProductivityStore{items: append([]models.ProductivityItem(nil), seed...)}
}

func (s *ProductivityStore) GetByID(ctx context.Context, id string) (*models.ProductivityItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (s *ProductivityStore) List(ctx context.Context) ([]models.ProductivityItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ProductivityItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *ProductivityStore) Create(ctx context.Context, item *models.ProductivityItem) (*models.ProductivityItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := *item
	it.ID = "item-" + uuid.NewString()
	s.items = append(s.items, it)
	return &it, nil
}

func (s *ProductivityStore) Update(ctx context.Context, item *models.ProductivityItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return nil
		}
	}
	return nil
}

func (s *ProductivityStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/eripro/connect/internal/models"
	"github.com/google/uuid"
)

type ChannelStore struct {
	mu       sync.RWMutex
	channels []models.Channel
}

func NewChannelStore(seed []models.Channel) *ChannelStore {
	return &ChannelStore{channels: append([]models.Channel(nil), seed...)}
}

func (s *ChannelStore) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.channels {
		if s.channels[i].ID == id {
			ch := s.channels[i]
			return &ch, nil
		}
	}
	return nil, nil
}

func (s *ChannelStore) List(ctx context.Context) ([]models.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Channel, len(s.channels))
	copy(out, s.channels)
	return out, nil
}

// FindOrCreateDM looks up the DM channel whose member pair equals
// {user.ID, other.ID} regardless of order, creating it under a fresh
// unique id when absent. The lookup and insert happen under one lock so
// two concurrent composes for the same pair cannot create duplicates.
func (s *ChannelStore) FindOrCreateDM(ctx context.Context, user, other *models.User) (*models.Channel, bool, error) {
	if user.ID == other.ID {
		return nil, false, fmt.Errorf("cannot create DM channel with self (user %d)", user.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.channels {
		ch := &s.channels[i]
		if ch.IsDM() && len(ch.Members) == 2 &&
			ch.HasMember(user.ID) && ch.HasMember(other.ID) {
			found := *ch
			return &found, false, nil
		}
	}

	ch := models.Channel{
		ID:      "dm-" + uuid.NewString(),
		Name:    other.DisplayName(),
		Kind:    models.ChannelKindDM,
		Members: []int64{user.ID, other.ID},
	}
	s.channels = append(s.channels, ch)
	return &ch, true, nil
}

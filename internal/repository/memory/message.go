package memory

import (
	"context"
	"sync"
	"time"

	"github.com/eripro/connect/internal/models"
)

type MessageStore struct {
	mu       sync.RWMutex
	messages []models.Message
	lastID   int64
}

func NewMessageStore(seed []models.Message) *MessageStore {
	s := &MessageStore{messages: append([]models.Message(nil), seed...)}
	for _, m := range seed {
		if m.ID > s.lastID {
			s.lastID = m.ID
		}
	}
	return s
}

// Append stores the message with a monotonically increasing id derived
// from the current unix-milli clock. Two appends within the same
// millisecond still get strictly increasing ids.
func (s *MessageStore) Append(ctx context.Context, msg *models.Message) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := *msg
	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	m.ID = id
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	s.messages = append(s.messages, m)
	return &m, nil
}

func (s *MessageStore) ListByChannel(ctx context.Context, channelID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.ChannelID == channelID {
			out = append(out, m)
		}
	}
	return out, nil
}

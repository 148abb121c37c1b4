package memory

import (
	"context"
	"sync"
)

// UnreadStore tracks per-user unread counts keyed by channel id, plus
// the channel each user currently has open. A message landing in the
// active channel never accrues unread; viewing a channel clears its
// count wholesale. Counts are never decremented individually.
type UnreadStore struct {
	mu     sync.RWMutex
	counts map[int64]map[string]int
	active map[int64]string
}

func NewUnreadStore() *UnreadStore {
	return &UnreadStore{
		counts: make(map[int64]map[string]int),
		active: make(map[int64]string),
	}
}

func (s *UnreadStore) MessageArrived(ctx context.Context, recipients []int64, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, userID := range recipients {
		if s.active[userID] == channelID {
			continue
		}
		if s.counts[userID] == nil {
			s.counts[userID] = make(map[string]int)
		}
		s.counts[userID][channelID]++
	}
	return nil
}

func (s *UnreadStore) ChannelViewed(ctx context.Context, userID int64, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[userID] = channelID
	if m := s.counts[userID]; m != nil {
		delete(m, channelID)
	}
	return nil
}

func (s *UnreadStore) Counts(ctx context.Context, userID int64) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.counts[userID]))
	for ch, n := range s.counts[userID] {
		out[ch] = n
	}
	return out, nil
}

func (s *UnreadStore) TotalUnread(ctx context.Context, userID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, n := range s.counts[userID] {
		total += n
	}
	return total, nil
}

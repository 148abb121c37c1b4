// Package simulator generates background chat traffic so the platform
// feels alive without other people online. On a fixed interval it picks
// a department channel or DM, picks a plausible sender from that
// channel's audience, and posts a canned line through the regular
// messaging path, so simulated traffic accrues unread counts exactly
// like real traffic.
package simulator

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/eripro/connect/internal/chat"
	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/repository"
)

var phrases = []string{
	"Has anyone had a chance to look at the latest figures?",
	"Quick reminder about the sync meeting this afternoon.",
	"I just pushed an update, let me know if anything looks off.",
	"Can someone review my latest proposal when they get a minute?",
	"Great progress this week, team!",
	"Heads up, I'll be out for an hour around lunch.",
	"The client loved the demo. Nice work everyone.",
	"Anyone else seeing slowness on the staging environment?",
	"I've updated the shared doc with the new timeline.",
	"Let's make sure we close out the open items before Friday.",
}

type Simulator struct {
	users    repository.UserRepository
	channels repository.ChannelRepository
	chat     *chat.Service
	interval time.Duration
	log      *zap.Logger
}

func New(
	users repository.UserRepository,
	channels repository.ChannelRepository,
	chatSvc *chat.Service,
	interval time.Duration,
	log *zap.Logger,
) *Simulator {
	return &Simulator{
		users:    users,
		channels: channels,
		chat:     chatSvc,
		interval: interval,
		log:      log,
	}
}

// Run ticks until the context is cancelled. Intended to be launched as
// a goroutine from main.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("activity simulator started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.log.Info("activity simulator stopped")
			return
		case <-ticker.C:
			if err := s.tick(ctx); err != nil {
				s.log.Warn("simulated message failed", zap.Error(err))
			}
		}
	}
}

// tick posts one simulated message into a randomly chosen department
// channel or DM. Channels with no eligible sender are skipped.
func (s *Simulator) tick(ctx context.Context) error {
	channels, err := s.channels.List(ctx)
	if err != nil {
		return err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}

	type candidate struct {
		channel models.Channel
		sender  models.User
	}
	var candidates []candidate
	for _, ch := range channels {
		for _, u := range s.audience(ch, users) {
			candidates = append(candidates, candidate{channel: ch, sender: u})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	pick := candidates[rand.Intn(len(candidates))]
	_, err = s.chat.Post(ctx, &pick.sender, pick.channel.ID, phrases[rand.Intn(len(phrases))], nil)
	return err
}

// audience returns the users who plausibly write in the channel: DM
// members for DMs, department members for department channels. The
// broadcast, general and random channels are left to real users.
func (s *Simulator) audience(ch models.Channel, users []models.User) []models.User {
	if ch.IsDM() {
		var out []models.User
		for _, u := range users {
			if ch.HasMember(u.ID) {
				out = append(out, u)
			}
		}
		return out
	}
	if ch.Broadcast || ch.ID == "general" || ch.ID == "random" {
		return nil
	}
	var out []models.User
	for _, u := range users {
		if u.Department.ChannelID() == ch.ID {
			out = append(out, u)
		}
	}
	return out
}

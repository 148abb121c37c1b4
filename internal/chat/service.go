// Package chat is the messaging core: every message entering the
// system, whether typed by a user or generated by the activity
// simulator, flows through Service.Post so that posting policy and
// unread fan-out are applied in exactly one place.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/policy"
	"github.com/eripro/connect/internal/repository"
)

var (
	ErrChannelNotFound   = errors.New("channel not found")
	ErrChannelNotVisible = errors.New("channel not visible to user")
	ErrPostForbidden     = errors.New("posting to this channel is not allowed")
	ErrSpecialForbidden  = errors.New("job postings are not allowed here")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSelfDM            = errors.New("cannot open a direct message with yourself")
)

type Service struct {
	users    repository.UserRepository
	channels repository.ChannelRepository
	messages repository.MessageRepository
	unread   repository.UnreadTracker
	log      *zap.Logger
}

func NewService(
	users repository.UserRepository,
	channels repository.ChannelRepository,
	messages repository.MessageRepository,
	unread repository.UnreadTracker,
	log *zap.Logger,
) *Service {
	return &Service{
		users:    users,
		channels: channels,
		messages: messages,
		unread:   unread,
		log:      log,
	}
}

// visibleTo reports whether the channel is in the author's visible set.
func visibleTo(user *models.User, channel *models.Channel) bool {
	return policy.VisibleChannels(user, []models.Channel{*channel}).Contains(channel.ID)
}

// Post appends a message to a channel on behalf of author. The message
// kind is decided here, at send time, and never changes afterwards: a
// non-nil job makes it a job posting (subject to the special-post
// gate), otherwise posting policy classifies it as announcement or
// standard. On success every user who can see the channel, except the
// author, accrues one unread.
func (s *Service) Post(ctx context.Context, author *models.User, channelID, body string, job *models.JobPosting) (*models.Message, error) {
	channel, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("load channel: %w", err)
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	if !visibleTo(author, channel) {
		return nil, ErrChannelNotVisible
	}
	if !policy.CanPost(author, channel) {
		return nil, ErrPostForbidden
	}

	kind := policy.Classify(author, channel)
	if job != nil {
		if !policy.CanPostSpecial(author, channel) {
			return nil, ErrSpecialForbidden
		}
		kind = models.MessageJobPosting
	}

	msg, err := s.messages.Append(ctx, &models.Message{
		ChannelID: channel.ID,
		AuthorID:  author.ID,
		Body:      body,
		Job:       job,
		Kind:      kind,
	})
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	recipients, err := s.recipients(ctx, channel, author.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve recipients: %w", err)
	}
	if err := s.unread.MessageArrived(ctx, recipients, channel.ID); err != nil {
		return nil, fmt.Errorf("record unread: %w", err)
	}

	s.log.Debug("message posted",
		zap.String("channel", channel.ID),
		zap.Int64("author", author.ID),
		zap.String("kind", string(kind)),
		zap.Int("recipients", len(recipients)))

	return msg, nil
}

// recipients returns the ids of every user who can see the channel,
// excluding the author.
func (s *Service) recipients(ctx context.Context, channel *models.Channel, authorID int64) ([]int64, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(users))
	for i := range users {
		if users[i].ID == authorID {
			continue
		}
		if visibleTo(&users[i], channel) {
			out = append(out, users[i].ID)
		}
	}
	return out, nil
}

// Transcript returns the channel's messages in arrival order, after
// checking that the user may see the channel.
func (s *Service) Transcript(ctx context.Context, user *models.User, channelID string) ([]models.Message, error) {
	channel, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("load channel: %w", err)
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}
	if !visibleTo(user, channel) {
		return nil, ErrChannelNotVisible
	}
	return s.messages.ListByChannel(ctx, channelID)
}

// Ack marks the channel as the user's active one and clears its unread
// count. The channel must exist and be visible; acking does not require
// posting rights.
func (s *Service) Ack(ctx context.Context, user *models.User, channelID string) error {
	channel, err := s.channels.GetByID(ctx, channelID)
	if err != nil {
		return fmt.Errorf("load channel: %w", err)
	}
	if channel == nil {
		return ErrChannelNotFound
	}
	if !visibleTo(user, channel) {
		return ErrChannelNotVisible
	}
	return s.unread.ChannelViewed(ctx, user.ID, channelID)
}

// ComposeDM finds or creates the direct channel between author and the
// user behind recipientEmail, then posts the first message into it. A
// non-empty subject is rendered as a bold header line above the body.
func (s *Service) ComposeDM(ctx context.Context, author *models.User, recipientEmail, subject, body string) (*models.Channel, *models.Message, error) {
	recipient, err := s.users.GetByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, nil, fmt.Errorf("load recipient: %w", err)
	}
	if recipient == nil {
		return nil, nil, ErrRecipientNotFound
	}
	if recipient.ID == author.ID {
		return nil, nil, ErrSelfDM
	}

	channel, created, err := s.channels.FindOrCreateDM(ctx, author, recipient)
	if err != nil {
		return nil, nil, fmt.Errorf("open dm: %w", err)
	}
	if created {
		s.log.Info("dm channel created",
			zap.String("channel", channel.ID),
			zap.Int64s("members", channel.Members))
	}

	if subject = strings.TrimSpace(subject); subject != "" {
		body = "**Subject: " + subject + "**\n\n" + body
	}

	msg, err := s.Post(ctx, author, channel.ID, body, nil)
	if err != nil {
		return nil, nil, err
	}
	return channel, msg, nil
}

package repository

import (
	"context"

	"github.com/eripro/connect/internal/models"
)

// All repositories follow the same conventions: lookups return nil, nil
// when the entity does not exist, and list methods return empty slices
// (never nil) so JSON serializes to []. Every method takes a context so
// the contracts stay transport-agnostic even though the only
// implementation is the in-memory store.

// UserRepository handles user records.
type UserRepository interface {
	// GetByID returns a user by id. Returns nil, nil if not found.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail returns a user by email, compared case-insensitively.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users in creation order.
	List(ctx context.Context) ([]models.User, error)

	// Create assigns the next id and stores the user.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Update replaces the stored record with the same id.
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user. No-op if absent.
	Delete(ctx context.Context, id int64) error
}

// ChannelRepository handles the channel collection.
type ChannelRepository interface {
	// GetByID returns a channel by id. Returns nil, nil if not found.
	GetByID(ctx context.Context, id string) (*models.Channel, error)

	// List returns all channels in seed/creation order.
	List(ctx context.Context) ([]models.Channel, error)

	// FindOrCreateDM returns the DM channel for the unordered user
	// pair, creating it if none exists. The boolean reports whether a
	// new channel was created. Calling twice with the same pair never
	// yields two channels.
	FindOrCreateDM(ctx context.Context, user, other *models.User) (*models.Channel, bool, error)
}

// MessageRepository handles the append-only message stream.
type MessageRepository interface {
	// Append assigns a monotonically increasing id and a creation
	// timestamp, then stores the message.
	Append(ctx context.Context, msg *models.Message) (*models.Message, error)

	// ListByChannel returns a channel's messages oldest first.
	ListByChannel(ctx context.Context, channelID string) ([]models.Message, error)
}

// ProductivityRepository handles calendar todos and notes.
type ProductivityRepository interface {
	// GetByID returns an item by id. Returns nil, nil if not found.
	GetByID(ctx context.Context, id string) (*models.ProductivityItem, error)

	// List returns all items.
	List(ctx context.Context) ([]models.ProductivityItem, error)

	// Create assigns a fresh id and stores the item.
	Create(ctx context.Context, item *models.ProductivityItem) (*models.ProductivityItem, error)

	// Update replaces the stored item with the same id.
	Update(ctx context.Context, item *models.ProductivityItem) error

	// Delete removes an item. No-op if absent.
	Delete(ctx context.Context, id string) error
}

// UnreadTracker keeps per-user unread counts and the per-user active
// channel. Counts are only ever incremented on arrival and cleared
// wholesale on view; they can never go negative.
type UnreadTracker interface {
	// MessageArrived bumps the count for each recipient whose active
	// channel is not channelID.
	MessageArrived(ctx context.Context, recipients []int64, channelID string) error

	// ChannelViewed clears the user's count for the channel and marks
	// it as the user's active channel.
	ChannelViewed(ctx context.Context, userID int64, channelID string) error

	// Counts returns the user's per-channel unread counts. Channels
	// with zero unread are absent from the map.
	Counts(ctx context.Context, userID int64) (map[string]int, error)

	// TotalUnread sums the user's counts.
	TotalUnread(ctx context.Context, userID int64) (int, error)
}

package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eripro/connect/internal/models"
	"github.com/eripro/connect/internal/policy"
	"github.com/eripro/connect/internal/repository/memory"
)

var (
	superAdmin = models.User{ID: 1, Email: "root@x.com", Role: models.RoleSuperAdmin, Department: models.DeptExecutive}
	engAdmin   = models.User{ID: 2, Email: "admin@x.com", Role: models.RoleAdmin, Department: models.DeptEngineering}
	engDev     = models.User{ID: 5, Email: "dev@x.com", Role: models.RoleEmployee, Department: models.DeptEngineering}
	designer   = models.User{ID: 6, Email: "design@x.com", Role: models.RoleEmployee, Department: models.DeptDesign}
)

func newTestService(t *testing.T) (*Service, *memory.UnreadStore) {
	t.Helper()
	users := memory.NewUserStore([]models.User{superAdmin, engAdmin, engDev, designer})
	channels := memory.NewChannelStore([]models.Channel{
		{ID: policy.ChannelBroadcast, Name: "Broadcast", Kind: models.ChannelKindStandard, Broadcast: true},
		{ID: policy.ChannelGeneral, Name: "# general", Kind: models.ChannelKindStandard},
		{ID: "engineering", Name: "# engineering", Kind: models.ChannelKindStandard},
		{ID: "design", Name: "# design", Kind: models.ChannelKindStandard},
	})
	unread := memory.NewUnreadStore()
	svc := NewService(users, channels, memory.NewMessageStore(nil), unread, zap.NewNop())
	return svc, unread
}

func TestPost_BroadcastRestrictedToSuperAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, &engAdmin, policy.ChannelBroadcast, "hi all", nil)
	assert.ErrorIs(t, err, ErrPostForbidden)

	msg, err := svc.Post(ctx, &superAdmin, policy.ChannelBroadcast, "hi all", nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageAnnouncement, msg.Kind)
}

func TestPost_ForeignDepartmentInvisible(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Post(context.Background(), &engDev, "design", "hello", nil)
	assert.ErrorIs(t, err, ErrChannelNotVisible)
}

func TestPost_AdminOwnDepartmentIsAnnouncement(t *testing.T) {
	svc, unread := newTestService(t)
	ctx := context.Background()

	msg, err := svc.Post(ctx, &engAdmin, "engineering", "standup moved", nil)
	require.NoError(t, err)
	assert.Equal(t, models.MessageAnnouncement, msg.Kind)

	// Fan-out: the engineering dev and the super admin can see the
	// channel; the designer and the author cannot accrue unread.
	for id, want := range map[int64]int{1: 1, 2: 0, 5: 1, 6: 0} {
		total, err := unread.TotalUnread(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, total, "user %d", id)
	}
}

func TestPost_JobPostingGate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	job := &models.JobPosting{Title: "SRE", Company: "EriPro Inc.", Location: "Remote", Description: "On-call"}

	_, err := svc.Post(ctx, &engDev, "engineering", "", job)
	assert.ErrorIs(t, err, ErrSpecialForbidden)

	msg, err := svc.Post(ctx, &engAdmin, "engineering", "", job)
	require.NoError(t, err)
	assert.Equal(t, models.MessageJobPosting, msg.Kind)
	require.NotNil(t, msg.Job)
	assert.Equal(t, "SRE", msg.Job.Title)
}

func TestPost_UnknownChannel(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Post(context.Background(), &engDev, "nope", "x", nil)
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestAck_ClearsUnread(t *testing.T) {
	svc, unread := newTestService(t)
	ctx := context.Background()

	_, err := svc.Post(ctx, &engAdmin, "engineering", "one", nil)
	require.NoError(t, err)
	_, err = svc.Post(ctx, &engAdmin, "engineering", "two", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Ack(ctx, &engDev, "engineering"))
	total, err := unread.TotalUnread(ctx, engDev.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	// Active channel: further messages do not accrue for the viewer.
	_, err = svc.Post(ctx, &engAdmin, "engineering", "three", nil)
	require.NoError(t, err)
	total, err = unread.TotalUnread(ctx, engDev.ID)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestComposeDM(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.ComposeDM(ctx, &engDev, "ghost@x.com", "", "hi")
	assert.ErrorIs(t, err, ErrRecipientNotFound)

	_, _, err = svc.ComposeDM(ctx, &engDev, engDev.Email, "", "hi")
	assert.ErrorIs(t, err, ErrSelfDM)

	channel, msg, err := svc.ComposeDM(ctx, &engDev, designer.Email, "Lunch", "Friday?")
	require.NoError(t, err)
	assert.Equal(t, models.ChannelKindDM, channel.Kind)
	assert.Equal(t, "**Subject: Lunch**\n\nFriday?", msg.Body)

	// Same pair again reuses the channel.
	again, _, err := svc.ComposeDM(ctx, &designer, engDev.Email, "", "sure")
	require.NoError(t, err)
	assert.Equal(t, channel.ID, again.ID)

	transcript, err := svc.Transcript(ctx, &engDev, channel.ID)
	require.NoError(t, err)
	assert.Len(t, transcript, 2)
}

func TestTranscript_VisibilityEnforced(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Transcript(context.Background(), &designer, "engineering")
	assert.ErrorIs(t, err, ErrChannelNotVisible)
}

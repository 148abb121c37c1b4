package memory

import (
	"context"
	"testing"

	"github.com/eripro/connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestUserStore_CreateAssignsNextID(t *testing.T) {
	s := NewUserStore([]models.User{{ID: 3, Email: "a@x.com"}, {ID: 7, Email: "b@x.com"}})

	u, err := s.Create(ctx, &models.User{Email: "c@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), u.ID)
}

func TestUserStore_GetByEmailCaseInsensitive(t *testing.T) {
	s := NewUserStore([]models.User{{ID: 1, Email: "E.Vance@eripro.com"}})

	u, err := s.GetByEmail(ctx, "e.vance@ERIPRO.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID)

	missing, err := s.GetByEmail(ctx, "nobody@eripro.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserStore_Delete(t *testing.T) {
	s := NewUserStore([]models.User{{ID: 1}, {ID: 2}})
	require.NoError(t, s.Delete(ctx, 1))

	u, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, u)

	users, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestChannelStore_FindOrCreateDM_Idempotent(t *testing.T) {
	s := NewChannelStore(nil)
	a := &models.User{ID: 1, FirstName: "Samsom", FatherName: "Dawit"}
	b := &models.User{ID: 6, FirstName: "Winta", FatherName: "Tesfay"}

	first, created, err := s.FindOrCreateDM(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.ChannelKindDM, first.Kind)
	assert.ElementsMatch(t, []int64{1, 6}, first.Members)

	// Second call, reversed pair: same channel, nothing new created.
	second, created, err := s.FindOrCreateDM(ctx, b, a)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	channels, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, channels, 1)
}

func TestChannelStore_FindOrCreateDM_RejectsSelf(t *testing.T) {
	s := NewChannelStore(nil)
	a := &models.User{ID: 1}
	_, _, err := s.FindOrCreateDM(ctx, a, a)
	assert.Error(t, err)
}

func TestMessageStore_AppendMonotonicIDs(t *testing.T) {
	s := NewMessageStore(nil)
	var last int64
	for i := 0; i < 5; i++ {
		m, err := s.Append(ctx, &models.Message{ChannelID: "general", AuthorID: 1, Body: "x"})
		require.NoError(t, err)
		assert.Greater(t, m.ID, last)
		last = m.ID
	}
}

func TestMessageStore_ListByChannel(t *testing.T) {
	s := NewMessageStore(nil)
	_, err := s.Append(ctx, &models.Message{ChannelID: "general", Body: "one"})
	require.NoError(t, err)
	_, err = s.Append(ctx, &models.Message{ChannelID: "random", Body: "two"})
	require.NoError(t, err)
	_, err = s.Append(ctx, &models.Message{ChannelID: "general", Body: "three"})
	require.NoError(t, err)

	msgs, err := s.ListByChannel(ctx, "general")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Body)
	assert.Equal(t, "three", msgs[1].Body)

	empty, err := s.ListByChannel(ctx, "engineering")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestProductivityStore_CRUD(t *testing.T) {
	s := NewProductivityStore(nil)
	item, err := s.Create(ctx, &models.ProductivityItem{
		Kind: models.ItemTodo, Body: "ship it", Date: "2026-08-31",
		TargetScope: models.TargetPersonal, TargetUserID: 5, CreatedBy: 5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	item.Completed = true
	require.NoError(t, s.Update(ctx, item))

	got, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Completed)

	require.NoError(t, s.Delete(ctx, item.ID))
	gone, err := s.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUnreadStore_ArrivalAndView(t *testing.T) {
	s := NewUnreadStore()

	// Three messages into distinct non-active channels.
	require.NoError(t, s.MessageArrived(ctx, []int64{5}, "engineering"))
	require.NoError(t, s.MessageArrived(ctx, []int64{5}, "general"))
	require.NoError(t, s.MessageArrived(ctx, []int64{5}, "random"))

	total, err := s.TotalUnread(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	// Viewing one channel removes exactly its count.
	require.NoError(t, s.MessageArrived(ctx, []int64{5}, "engineering"))
	counts, err := s.Counts(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["engineering"])

	require.NoError(t, s.ChannelViewed(ctx, 5, "engineering"))
	counts, err = s.Counts(ctx, 5)
	require.NoError(t, err)
	_, present := counts["engineering"]
	assert.False(t, present)

	total, err = s.TotalUnread(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestUnreadStore_ActiveChannelNeverAccrues(t *testing.T) {
	s := NewUnreadStore()
	require.NoError(t, s.ChannelViewed(ctx, 5, "general"))
	require.NoError(t, s.MessageArrived(ctx, []int64{5}, "general"))

	total, err := s.TotalUnread(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUnreadStore_PerUserIsolation(t *testing.T) {
	s := NewUnreadStore()
	require.NoError(t, s.ChannelViewed(ctx, 5, "engineering"))
	require.NoError(t, s.MessageArrived(ctx, []int64{5, 6}, "engineering"))

	five, err := s.TotalUnread(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, five)

	six, err := s.TotalUnread(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, six)
}

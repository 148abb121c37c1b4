package policy

import (
	"testing"

	"github.com/eripro/connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChannels() []models.Channel {
	all := []models.Channel{
		{ID: ChannelBroadcast, Name: "Broadcast", Kind: models.ChannelKindStandard, Broadcast: true},
		{ID: ChannelGeneral, Name: "# general", Kind: models.ChannelKindStandard},
		{ID: ChannelRandom, Name: "# random", Kind: models.ChannelKindStandard},
	}
	for _, dep := range models.Departments {
		all = append(all, models.Channel{
			ID:   dep.ChannelID(),
			Name: "# " + dep.ChannelID(),
			Kind: models.ChannelKindStandard,
		})
	}
	all = append(all,
		models.Channel{ID: "dm-1-6", Kind: models.ChannelKindDM, Members: []int64{1, 6}},
		models.Channel{ID: "dm-3-4", Kind: models.ChannelKindDM, Members: []int64{3, 4}},
	)
	return all
}

func TestVisibleChannels_Employee(t *testing.T) {
	user := &models.User{ID: 5, Role: models.RoleEmployee, Department: models.DeptEngineering}
	groups := VisibleChannels(user, testChannels())

	// All three general-purpose channels, in seed order.
	require.Len(t, groups.General, 3)
	assert.Equal(t, ChannelBroadcast, groups.General[0].ID)
	assert.Equal(t, ChannelGeneral, groups.General[1].ID)
	assert.Equal(t, ChannelRandom, groups.General[2].ID)

	// Exactly the user's own department channel.
	require.Len(t, groups.Departments, 1)
	assert.Equal(t, "engineering", groups.Departments[0].ID)

	// No DMs contain user 5.
	assert.Empty(t, groups.DMs)
}

func TestVisibleChannels_SuperAdminSeesAllDepartments(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleSuperAdmin, Department: models.DeptExecutive}
	groups := VisibleChannels(user, testChannels())

	assert.Len(t, groups.Departments, len(models.Departments))
	require.Len(t, groups.DMs, 1)
	assert.Equal(t, "dm-1-6", groups.DMs[0].ID)
}

func TestVisibleChannels_ExcludesForeignDMs(t *testing.T) {
	user := &models.User{ID: 3, Role: models.RoleManager, Department: models.DeptMarketing}
	groups := VisibleChannels(user, testChannels())

	require.Len(t, groups.DMs, 1)
	assert.Equal(t, "dm-3-4", groups.DMs[0].ID)
	assert.False(t, groups.Contains("dm-1-6"))
}

func TestVisibleChannels_MultiWordDepartment(t *testing.T) {
	user := &models.User{ID: 9, Role: models.RoleUser, Department: models.DeptWaterResearch}
	groups := VisibleChannels(user, testChannels())

	require.Len(t, groups.Departments, 1)
	assert.Equal(t, "water-research", groups.Departments[0].ID)
}

func TestVisibleChannels_IndependentOfReadState(t *testing.T) {
	// Visibility takes no read-state input at all; this pins the
	// partition sizes so the contract can't silently change.
	user := &models.User{ID: 6, Role: models.RoleEmployee, Department: models.DeptDesign}
	groups := VisibleChannels(user, testChannels())
	assert.Len(t, groups.All(), 3+1+1)
}

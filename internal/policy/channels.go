package policy

import "github.com/eripro/connect/internal/models"

// General-purpose channel ids. These are seeded once and visible to
// everyone; broadcast is readable by all but postable only by the top
// role (see posting.go).
const (
	ChannelGeneral   = "general"
	ChannelRandom    = "random"
	ChannelBroadcast = "broadcast"
)

func isGeneralPurpose(id string) bool {
	return id == ChannelGeneral || id == ChannelRandom || id == ChannelBroadcast
}

// ChannelGroups is the partition VisibleChannels returns, in display
// order: general-purpose channels, then department channels, then DMs.
type ChannelGroups struct {
	General     []models.Channel `json:"general"`
	Departments []models.Channel `json:"departments"`
	DMs         []models.Channel `json:"dms"`
}

// All flattens the groups in display order.
func (g ChannelGroups) All() []models.Channel {
	out := make([]models.Channel, 0, len(g.General)+len(g.Departments)+len(g.DMs))
	out = append(out, g.General...)
	out = append(out, g.Departments...)
	out = append(out, g.DMs...)
	return out
}

// Contains reports whether any group holds a channel with the given id.
func (g ChannelGroups) Contains(id string) bool {
	for _, ch := range g.All() {
		if ch.ID == id {
			return true
		}
	}
	return false
}

// VisibleChannels computes the subset of channels the user may see,
// preserving the order of the input within each group:
//
//   - every general-purpose channel (general, random, broadcast);
//   - all department channels for a Super Admin, otherwise exactly the
//     channel whose id equals the user's own department channel id;
//   - every DM channel whose member pair contains the user.
//
// Visibility is independent of read state; a channel with unread
// messages is never hidden.
func VisibleChannels(user *models.User, all []models.Channel) ChannelGroups {
	var groups ChannelGroups
	ownDept := user.Department.ChannelID()
	for _, ch := range all {
		switch {
		case ch.IsDM():
			if ch.HasMember(user.ID) {
				groups.DMs = append(groups.DMs, ch)
			}
		case isGeneralPurpose(ch.ID):
			groups.General = append(groups.General, ch)
		default:
			if user.Role == models.RoleSuperAdmin || ch.ID == ownDept {
				groups.Departments = append(groups.Departments, ch)
			}
		}
	}
	return groups
}

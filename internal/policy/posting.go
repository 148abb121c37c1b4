package policy

import "github.com/eripro/connect/internal/models"

// CanPost decides whether the user may post to the channel at all. The
// only hard block is the broadcast channel, which accepts posts from
// Super Admins exclusively; every other visible channel is open.
func CanPost(user *models.User, channel *models.Channel) bool {
	if channel.ID == ChannelBroadcast {
		return user.Role == models.RoleSuperAdmin
	}
	return true
}

// Classify decides the kind a freshly posted message gets. The kind is
// fixed at send time and immutable afterwards. Precedence:
//
//  1. Super Admin posting to broadcast: announcement.
//  2. Admin posting to their own department channel: announcement.
//  3. Super Admin posting to any non-general department channel:
//     announcement.
//  4. Everything else: standard. Manager and Team Lead are never
//     special-cased, even in their own department channel.
func Classify(user *models.User, channel *models.Channel) models.MessageKind {
	if channel.ID == ChannelBroadcast && user.Role == models.RoleSuperAdmin {
		return models.MessageAnnouncement
	}
	if user.Role == models.RoleAdmin && channel.ID == user.Department.ChannelID() {
		return models.MessageAnnouncement
	}
	if user.Role == models.RoleSuperAdmin && !channel.IsDM() &&
		channel.ID != ChannelGeneral && channel.ID != ChannelRandom && channel.ID != ChannelBroadcast {
		return models.MessageAnnouncement
	}
	return models.MessageStandard
}

// CanPostSpecial gates the special-message capability (structured job
// postings): Admins on their own department channel, or Super Admins on
// any non-general, non-random standard channel. Evaluated on its own,
// not derived from Classify.
func CanPostSpecial(user *models.User, channel *models.Channel) bool {
	if user.Role == models.RoleAdmin && channel.ID == user.Department.ChannelID() {
		return true
	}
	return user.Role == models.RoleSuperAdmin && !channel.IsDM() &&
		channel.ID != ChannelGeneral && channel.ID != ChannelRandom
}

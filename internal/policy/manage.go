package policy

import "github.com/eripro/connect/internal/models"

// CanManage decides whether the acting user may edit or delete the
// target user. Both actions are gated identically:
//
//   - never yourself;
//   - only strictly lower rank;
//   - Admins are additionally confined to their own department.
func CanManage(acting, target *models.User) bool {
	if acting.ID == target.ID {
		return false
	}
	if Rank(acting.Role) <= Rank(target.Role) {
		return false
	}
	if acting.Role == models.RoleAdmin {
		return acting.Department == target.Department
	}
	return true
}

// CanViewUserManagement gates access to the user-management surface:
// Admin rank and above.
func CanViewUserManagement(user *models.User) bool {
	return Rank(user.Role) >= Rank(models.RoleAdmin)
}

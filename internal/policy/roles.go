// Package policy holds the pure permission and visibility decisions:
// who sees which channels, who may post what where, who may manage
// whom, and which productivity items a viewer gets. Every function is a
// total, side-effect-free computation over well-formed entities; the
// HTTP layer owns all mutation.
package policy

import "github.com/eripro/connect/internal/models"

// roleRanks is the fixed six-tier hierarchy. All privilege comparisons
// everywhere use these integers, never role-name equality, except where
// a rule explicitly restricts to "same department".
var roleRanks = map[models.Role]int{
	models.RoleSuperAdmin: 6,
	models.RoleAdmin:      5,
	models.RoleManager:    4,
	models.RoleTeamLead:   3,
	models.RoleEmployee:   2,
	models.RoleUser:       1,
}

// Rank returns the role's position in the hierarchy, 1 (User) through
// 6 (Super Admin). Unknown roles rank 0, below everything.
func Rank(role models.Role) int {
	return roleRanks[role]
}

// AssignableRoles lists the roles an acting user may hand out when
// creating or editing another user: strictly lower rank than their own.
func AssignableRoles(acting *models.User) []models.Role {
	var out []models.Role
	for _, role := range models.Roles {
		if Rank(role) < Rank(acting.Role) {
			out = append(out, role)
		}
	}
	return out
}

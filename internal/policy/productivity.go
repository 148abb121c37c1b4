package policy

import (
	"sort"

	"github.com/eripro/connect/internal/models"
)

// DeptFilterAll disables the Super Admin department filter.
const DeptFilterAll = "all"

// VisibleItemsOn filters items down to what the user may see on one
// calendar day. Personal items pass only for their owner. Department
// items pass for members of that department, or for Super Admins
// across all departments. A Super Admin may further narrow department
// items with deptFilter; personal items are always retained regardless
// of the filter, which everyone else ignores.
func VisibleItemsOn(date string, user *models.User, items []models.ProductivityItem, deptFilter string) []models.ProductivityItem {
	out := make([]models.ProductivityItem, 0)
	filtering := user.Role == models.RoleSuperAdmin && deptFilter != "" && deptFilter != DeptFilterAll
	for _, item := range items {
		if item.Date != date {
			continue
		}
		switch item.TargetScope {
		case models.TargetPersonal:
			if item.TargetUserID != user.ID {
				continue
			}
		case models.TargetDepartment:
			if user.Role != models.RoleSuperAdmin && item.TargetDepartment != user.Department {
				continue
			}
			if filtering && string(item.TargetDepartment) != deptFilter {
				continue
			}
		default:
			continue
		}
		out = append(out, item)
	}
	return out
}

// ItemGroup is one display group of productivity items.
type ItemGroup struct {
	Name  string                    `json:"name"`
	Items []models.ProductivityItem `json:"items"`
}

const personalGroupName = "Personal"

// GroupItems arranges visible items for display: the personal group
// always sorts first, followed by department groups in ascending
// department-name order.
func GroupItems(items []models.ProductivityItem) []ItemGroup {
	byName := make(map[string][]models.ProductivityItem)
	for _, item := range items {
		name := personalGroupName
		if item.TargetScope == models.TargetDepartment {
			name = string(item.TargetDepartment)
		}
		byName[name] = append(byName[name], item)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == personalGroupName {
			return true
		}
		if names[j] == personalGroupName {
			return false
		}
		return names[i] < names[j]
	})

	groups := make([]ItemGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, ItemGroup{Name: name, Items: byName[name]})
	}
	return groups
}

// CanCreateDepartmentItem is true for Admins and Super Admins only. An
// Admin may target only their own department; a Super Admin may target
// any department (enforced by CanTargetDepartment).
func CanCreateDepartmentItem(user *models.User) bool {
	return user.Role == models.RoleAdmin || user.Role == models.RoleSuperAdmin
}

// CanTargetDepartment checks a specific department target for a
// department-scoped item.
func CanTargetDepartment(user *models.User, dep models.Department) bool {
	switch user.Role {
	case models.RoleSuperAdmin:
		return true
	case models.RoleAdmin:
		return dep == user.Department
	default:
		return false
	}
}

// CanDeleteItem allows the creator, the personal owner, or a Super
// Admin to remove an item.
func CanDeleteItem(user *models.User, item *models.ProductivityItem) bool {
	if user.Role == models.RoleSuperAdmin {
		return true
	}
	if item.CreatedBy == user.ID {
		return true
	}
	return item.TargetScope == models.TargetPersonal && item.TargetUserID == user.ID
}

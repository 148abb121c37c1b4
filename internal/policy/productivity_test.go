package policy

import (
	"testing"

	"github.com/eripro/connect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = "2026-08-31"

func testItems() []models.ProductivityItem {
	return []models.ProductivityItem{
		{ID: "todo-1", Kind: models.ItemTodo, Date: day, TargetScope: models.TargetPersonal, TargetUserID: 3, CreatedBy: 3},
		{ID: "todo-2", Kind: models.ItemTodo, Date: day, TargetScope: models.TargetPersonal, TargetUserID: 5, CreatedBy: 5},
		{ID: "note-1", Kind: models.ItemNote, Date: "2026-08-30", TargetScope: models.TargetDepartment, TargetDepartment: models.DeptMarketing, CreatedBy: 1},
		{ID: "todo-3", Kind: models.ItemTodo, Date: day, TargetScope: models.TargetDepartment, TargetDepartment: models.DeptEngineering, CreatedBy: 2},
		{ID: "note-2", Kind: models.ItemNote, Date: day, TargetScope: models.TargetDepartment, TargetDepartment: models.DeptMarketing, CreatedBy: 1},
	}
}

func TestVisibleItemsOn_Employee(t *testing.T) {
	u := &models.User{ID: 5, Role: models.RoleEmployee, Department: models.DeptEngineering}
	items := VisibleItemsOn(day, u, testItems(), "")
	require.Len(t, items, 2)
	assert.Equal(t, "todo-2", items[0].ID) // own personal item
	assert.Equal(t, "todo-3", items[1].ID) // own department item
}

func TestVisibleItemsOn_DateMismatchExcluded(t *testing.T) {
	u := &models.User{ID: 1, Role: models.RoleSuperAdmin, Department: models.DeptExecutive}
	for _, item := range VisibleItemsOn(day, u, testItems(), "") {
		assert.Equal(t, day, item.Date)
	}
}

func TestVisibleItemsOn_SuperAdminSeesAllDepartments(t *testing.T) {
	u := &models.User{ID: 1, Role: models.RoleSuperAdmin, Department: models.DeptExecutive}
	items := VisibleItemsOn(day, u, testItems(), DeptFilterAll)
	require.Len(t, items, 2)
	assert.Equal(t, "todo-3", items[0].ID)
	assert.Equal(t, "note-2", items[1].ID)
}

func TestVisibleItemsOn_SuperAdminDepartmentFilterKeepsPersonal(t *testing.T) {
	u := &models.User{ID: 3, Role: models.RoleSuperAdmin, Department: models.DeptExecutive}
	items := VisibleItemsOn(day, u, testItems(), string(models.DeptMarketing))
	require.Len(t, items, 2)
	assert.Equal(t, "todo-1", items[0].ID) // personal survives the filter
	assert.Equal(t, "note-2", items[1].ID)
}

func TestVisibleItemsOn_FilterIgnoredForNonSuperAdmin(t *testing.T) {
	u := &models.User{ID: 5, Role: models.RoleEmployee, Department: models.DeptEngineering}
	with := VisibleItemsOn(day, u, testItems(), string(models.DeptMarketing))
	without := VisibleItemsOn(day, u, testItems(), "")
	assert.Equal(t, without, with)
}

func TestGroupItems_PersonalFirstThenDepartmentsAscending(t *testing.T) {
	items := []models.ProductivityItem{
		{ID: "a", TargetScope: models.TargetDepartment, TargetDepartment: models.DeptMarketing},
		{ID: "b", TargetScope: models.TargetPersonal, TargetUserID: 1},
		{ID: "c", TargetScope: models.TargetDepartment, TargetDepartment: models.DeptEngineering},
		{ID: "d", TargetScope: models.TargetPersonal, TargetUserID: 1},
	}
	groups := GroupItems(items)
	require.Len(t, groups, 3)
	assert.Equal(t, "Personal", groups[0].Name)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Engineering", groups[1].Name)
	assert.Equal(t, "Marketing", groups[2].Name)
}

func TestCanCreateDepartmentItem(t *testing.T) {
	assert.True(t, CanCreateDepartmentItem(&models.User{Role: models.RoleSuperAdmin}))
	assert.True(t, CanCreateDepartmentItem(&models.User{Role: models.RoleAdmin}))
	assert.False(t, CanCreateDepartmentItem(&models.User{Role: models.RoleManager}))
	assert.False(t, CanCreateDepartmentItem(&models.User{Role: models.RoleUser}))
}

func TestCanTargetDepartment(t *testing.T) {
	admin := &models.User{Role: models.RoleAdmin, Department: models.DeptEngineering}
	assert.True(t, CanTargetDepartment(admin, models.DeptEngineering))
	assert.False(t, CanTargetDepartment(admin, models.DeptSales))

	superAdmin := &models.User{Role: models.RoleSuperAdmin, Department: models.DeptExecutive}
	assert.True(t, CanTargetDepartment(superAdmin, models.DeptSales))

	assert.False(t, CanTargetDepartment(&models.User{Role: models.RoleEmployee, Department: models.DeptSales}, models.DeptSales))
}

func TestCanDeleteItem(t *testing.T) {
	item := &models.ProductivityItem{ID: "x", TargetScope: models.TargetPersonal, TargetUserID: 5, CreatedBy: 5}
	owner := &models.User{ID: 5, Role: models.RoleEmployee}
	stranger := &models.User{ID: 6, Role: models.RoleEmployee}
	superAdmin := &models.User{ID: 1, Role: models.RoleSuperAdmin}

	assert.True(t, CanDeleteItem(owner, item))
	assert.False(t, CanDeleteItem(stranger, item))
	assert.True(t, CanDeleteItem(superAdmin, item))

	deptItem := &models.ProductivityItem{ID: "y", TargetScope: models.TargetDepartment, TargetDepartment: models.DeptEngineering, CreatedBy: 2}
	creator := &models.User{ID: 2, Role: models.RoleAdmin, Department: models.DeptEngineering}
	assert.True(t, CanDeleteItem(creator, deptItem))
	assert.False(t, CanDeleteItem(stranger, deptItem))
}

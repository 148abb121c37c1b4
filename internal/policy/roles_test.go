package policy

import (
	"testing"

	"github.com/eripro/connect/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRank_TotalOrder(t *testing.T) {
	// Strictly increasing from User up to Super Admin.
	prev := 0
	for i := len(models.Roles) - 1; i >= 0; i-- {
		r := Rank(models.Roles[i])
		assert.Greater(t, r, prev, "rank of %s", models.Roles[i])
		prev = r
	}
}

func TestRank_UnknownRole(t *testing.T) {
	assert.Equal(t, 0, Rank(models.Role("Intern")))
}

func TestAssignableRoles(t *testing.T) {
	superAdmin := &models.User{Role: models.RoleSuperAdmin}
	admin := &models.User{Role: models.RoleAdmin}
	employee := &models.User{Role: models.RoleEmployee}

	assert.Equal(t, []models.Role{
		models.RoleAdmin, models.RoleManager, models.RoleTeamLead,
		models.RoleEmployee, models.RoleUser,
	}, AssignableRoles(superAdmin))

	assert.Equal(t, []models.Role{
		models.RoleManager, models.RoleTeamLead, models.RoleEmployee, models.RoleUser,
	}, AssignableRoles(admin))

	assert.Equal(t, []models.Role{models.RoleUser}, AssignableRoles(employee))
}

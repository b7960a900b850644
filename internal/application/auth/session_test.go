package auth

import (
	"testing"

	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestMenusForRole(t *testing.T) {
	admin := MenusForRole(entity.RoleAdmin)
	assert.Len(t, admin, 9)
	assert.Contains(t, admin, MenuUsers)
	assert.Contains(t, admin, MenuSettings)

	staff := MenusForRole(entity.RoleFuncionario)
	assert.Len(t, staff, 7)
	assert.NotContains(t, staff, MenuUsers)

	assert.Nil(t, MenusForRole("visitante"))
	assert.Nil(t, MenusForRole(""))
}

func TestCanAccess(t *testing.T) {
	assert.True(t, CanAccess(entity.RoleAdmin, MenuSettings))
	assert.True(t, CanAccess(entity.RoleFuncionario, MenuFleet))
	assert.False(t, CanAccess(entity.RoleFuncionario, MenuSettings))
	assert.False(t, CanAccess("", MenuDashboard))
}

func TestMenusForRole_NoCompartenSlice(t *testing.T) {
	a := MenusForRole(entity.RoleFuncionario)
	a[0] = "alterado"
	assert.Equal(t, MenuDashboard, MenusForRole(entity.RoleFuncionario)[0])
}

func TestSession_IsAdmin(t *testing.T) {
	assert.True(t, Session{Role: entity.RoleAdmin}.IsAdmin())
	assert.False(t, Session{Role: entity.RoleFuncionario}.IsAdmin())
}

package rbac

import (
	"testing"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/stretchr/testify/require"
)

func roleWith(code string, siteScoped bool, perms ...models.PermissionCode) dbmodels.Role {
	role := dbmodels.Role{Code: code, Name: code, SiteScoped: siteScoped}
	for _, perm := range perms {
		role.Permissions = append(role.Permissions, dbmodels.RolePermission{PermissionCode: perm})
	}
	return role
}

func TestResolveUnion(t *testing.T) {
	assignments := []dbmodels.UserRole{
		{Role: roleWith("HR_MANAGER", false, models.PermEmployeeView, models.PermEmployeeCreate)},
		{Role: roleWith("ACCOUNTANT", false, models.PermEmployeeView, models.PermPayrollCalculate)},
	}
	set := Resolve(assignments)

	require.True(t, set.Has(models.PermEmployeeView))
	require.True(t, set.Has(models.PermEmployeeCreate))
	require.True(t, set.Has(models.PermPayrollCalculate))
	require.False(t, set.Has(models.PermPayrollApprove))
	require.False(t, set.IsSuperAdmin())
	require.Equal(t, []string{"employee.create", "employee.view", "payroll.calculate"}, set.Codes())
}

func TestResolveSuperAdminWildcard(t *testing.T) {
	assignments := []dbmodels.UserRole{
		{Role: roleWith(models.RoleCodeSuperAdmin, false)},
	}
	set := Resolve(assignments)

	require.True(t, set.IsSuperAdmin())
	// проверка любого права успешна без явных выдач
	for _, code := range models.AllPermissions {
		require.True(t, set.Has(code))
		require.True(t, set.HasAt(code, "any-worksite"))
	}
}

func TestResolveSiteScoped(t *testing.T) {
	assignments := []dbmodels.UserRole{
		{
			WorksiteID: "site-1",
			Role:       roleWith("SITE_MANAGER", true, models.PermAttendanceEdit),
		},
	}
	set := Resolve(assignments)

	require.True(t, set.HasAt(models.PermAttendanceEdit, "site-1"))
	require.False(t, set.HasAt(models.PermAttendanceEdit, "site-2"))
	// без учета объекта право считается выданным
	require.True(t, set.Has(models.PermAttendanceEdit))
}

func TestResolveScopedAndGlobalMix(t *testing.T) {
	assignments := []dbmodels.UserRole{
		{WorksiteID: "site-1", Role: roleWith("SITE_MANAGER", true, models.PermAttendanceEdit)},
		{Role: roleWith("ACCOUNTANT", false, models.PermAttendanceEdit)},
	}
	set := Resolve(assignments)

	// глобальная выдача перекрывает привязку к объекту
	require.True(t, set.HasAt(models.PermAttendanceEdit, "site-2"))
}

func TestResolveEmpty(t *testing.T) {
	set := Resolve(nil)
	require.False(t, set.Has(models.PermEmployeeView))
	require.Empty(t, set.Codes())
	require.Empty(t, set.Roles())
}

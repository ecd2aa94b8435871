package db

import (
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	migration := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"Role", &dbmodels.Role{}},
		{"Permission", &dbmodels.Permission{}},
		{"RolePermission", &dbmodels.RolePermission{}},
		{"UserRole", &dbmodels.UserRole{}},
		{"Nationality", &dbmodels.Nationality{}},
		{"Profession", &dbmodels.Profession{}},
		{"Department", &dbmodels.Department{}},
		{"Shift", &dbmodels.Shift{}},
		{"DocumentType", &dbmodels.DocumentType{}},
		{"LeaveType", &dbmodels.LeaveType{}},
		{"AssetCategory", &dbmodels.AssetCategory{}},
		{"DocumentRequirement", &dbmodels.DocumentRequirement{}},
		{"Worksite", &dbmodels.Worksite{}},
		{"Employee", &dbmodels.Employee{}},
		{"EmployeeIdentity", &dbmodels.EmployeeIdentity{}},
		{"EmployeeWorkStatus", &dbmodels.EmployeeWorkStatus{}},
		{"EmployeeEmployment", &dbmodels.EmployeeEmployment{}},
		{"EmployeeSalaryProfile", &dbmodels.EmployeeSalaryProfile{}},
		{"AttendancePeriod", &dbmodels.AttendancePeriod{}},
		{"AttendanceRecord", &dbmodels.AttendanceRecord{}},
		{"PayrollRun", &dbmodels.PayrollRun{}},
		{"PayrollItem", &dbmodels.PayrollItem{}},
		{"PayrollEarning", &dbmodels.PayrollEarning{}},
		{"PayrollDeduction", &dbmodels.PayrollDeduction{}},
		{"EmployeeDocument", &dbmodels.EmployeeDocument{}},
		{"DocumentFile", &dbmodels.DocumentFile{}},
		{"AlertRule", &dbmodels.AlertRule{}},
		{"Alert", &dbmodels.Alert{}},
		{"LeaveRequest", &dbmodels.LeaveRequest{}},
		{"Asset", &dbmodels.Asset{}},
		{"AssetAssignment", &dbmodels.AssetAssignment{}},
		{"EmployeeSiteTransfer", &dbmodels.EmployeeSiteTransfer{}},
		{"AuditLog", &dbmodels.AuditLog{}},
	}
	for _, m := range migration {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", m.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}

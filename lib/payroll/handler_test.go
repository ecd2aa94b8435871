package payroll

import (
	"testing"
	"workforce-backend/config"
	attendancestore "workforce-backend/lib/attendance/store"
	auditstore "workforce-backend/lib/audit/store"
	employeestore "workforce-backend/lib/employee/store"
	"workforce-backend/lib/payroll/store"
	"workforce-backend/models"
	payrollapimodels "workforce-backend/models/api/payroll"
	dbmodels "workforce-backend/models/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeAudit struct{}

func (fakeAudit) Log(actorID string, action models.AuditAction, entityType, entityID string, changes dbmodels.EntityChanges) {
}

func (fakeAudit) List(filter auditstore.Filter, page, limit int) ([]dbmodels.AuditLog, int64, error) {
	return nil, 0, nil
}

func testHandler(t *testing.T) (impl, store.Provider) {
	if config.Conf == nil {
		config.Conf = &config.Configuration{}
	}
	config.Conf.Payroll.StandardWorkingDays = 22
	config.Conf.Payroll.StandardShiftHours = 8

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&dbmodels.PayrollRun{},
		&dbmodels.PayrollItem{},
		&dbmodels.PayrollEarning{},
		&dbmodels.PayrollDeduction{},
		&dbmodels.Employee{},
		&dbmodels.EmployeeEmployment{},
		&dbmodels.EmployeeSalaryProfile{},
		&dbmodels.AttendancePeriod{},
		&dbmodels.AttendanceRecord{},
	))
	payrollStore := store.NewInstance(db)
	handler := impl{
		store:      payrollStore,
		employees:  employeestore.NewInstance(db),
		attendance: attendancestore.NewInstance(db),
		audit:      fakeAudit{},
	}
	return handler, payrollStore
}

func seedEmployee(t *testing.T, handler impl) string {
	id, err := handler.employees.Create(dbmodels.Employee{
		LastName:  "Иванов",
		FirstName: "Иван",
		Status:    models.EmployeeStatusActive,
	})
	require.NoError(t, err)
	err = handler.employees.SaveSalaryProfile(dbmodels.EmployeeSalaryProfile{
		EmployeeID:    id,
		PaymentType:   models.PaymentTypeMonthly,
		MonthlySalary: decimal.NewFromInt(100000),
		TaxStatus:     models.TaxStatusResident,
	})
	require.NoError(t, err)
	return id
}

func TestSetAdjustmentFlowsIntoRecalculation(t *testing.T) {
	handler, payrollStore := testHandler(t)
	employeeID := seedEmployee(t, handler)

	runID, err := handler.CreateRun("actor-1", payrollapimodels.RunData{PeriodMonth: "2026-08"})
	require.NoError(t, err)
	require.NoError(t, handler.Calculate("actor-1", runID))

	run, err := payrollStore.GetRun(runID)
	require.NoError(t, err)
	require.NotNil(t, run)
	require.Len(t, run.Items, 1)
	itemID := run.Items[0].ID

	adjustment := decimal.NewFromInt(1500)
	err = handler.SetAdjustment("actor-1", itemID, payrollapimodels.AdjustmentData{
		Amount: adjustment,
		Reason: "доплата за разъездной характер",
	})
	require.NoError(t, err)

	item, err := payrollStore.GetItem(itemID)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.True(t, item.ManualAdjustment.Equal(adjustment))

	run, err = payrollStore.GetRun(runID)
	require.NoError(t, err)
	require.True(t, run.TotalNet.Equal(adjustment), run.TotalNet.String())

	// корректировка переживает пересчет ведомости
	require.NoError(t, handler.Calculate("actor-1", runID))
	run, err = payrollStore.GetRun(runID)
	require.NoError(t, err)
	require.Len(t, run.Items, 1)
	require.Equal(t, employeeID, run.Items[0].EmployeeID)
	require.True(t, run.Items[0].ManualAdjustment.Equal(adjustment))
	require.True(t, run.Items[0].NetAmount.Equal(adjustment))
	require.True(t, run.TotalNet.Equal(adjustment))
}

func TestSetAdjustmentRejectedAfterApproval(t *testing.T) {
	handler, payrollStore := testHandler(t)
	seedEmployee(t, handler)

	runID, err := handler.CreateRun("actor-1", payrollapimodels.RunData{PeriodMonth: "2026-08"})
	require.NoError(t, err)
	require.NoError(t, handler.Calculate("actor-1", runID))
	require.NoError(t, handler.Approve("actor-1", runID))

	run, err := payrollStore.GetRun(runID)
	require.NoError(t, err)
	require.Len(t, run.Items, 1)

	err = handler.SetAdjustment("actor-1", run.Items[0].ID, payrollapimodels.AdjustmentData{
		Amount: decimal.NewFromInt(500),
	})
	require.Error(t, err)
}

func TestSetAdjustmentUnknownItem(t *testing.T) {
	handler, _ := testHandler(t)
	err := handler.SetAdjustment("actor-1", "missing", payrollapimodels.AdjustmentData{
		Amount: decimal.NewFromInt(100),
	})
	require.Error(t, err)
}

package store

import (
	"testing"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) Provider {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&dbmodels.PayrollRun{},
		&dbmodels.PayrollItem{},
		&dbmodels.PayrollEarning{},
		&dbmodels.PayrollDeduction{},
	))
	return NewInstance(db)
}

func TestCreateRunUniquePerMonth(t *testing.T) {
	store := testStore(t)

	id, err := store.CreateRun(dbmodels.PayrollRun{
		WorksiteID:  "site-1",
		PeriodMonth: "2026-08",
		Status:      models.PayrollStatusDraft,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = store.CreateRun(dbmodels.PayrollRun{
		WorksiteID:  "site-1",
		PeriodMonth: "2026-08",
		Status:      models.PayrollStatusDraft,
	})
	require.Error(t, err)

	// другой месяц и другой объект допустимы
	_, err = store.CreateRun(dbmodels.PayrollRun{WorksiteID: "site-1", PeriodMonth: "2026-09", Status: models.PayrollStatusDraft})
	require.NoError(t, err)
	_, err = store.CreateRun(dbmodels.PayrollRun{WorksiteID: "site-2", PeriodMonth: "2026-08", Status: models.PayrollStatusDraft})
	require.NoError(t, err)
}

func TestReplaceItemsIdempotent(t *testing.T) {
	store := testStore(t)
	runID, err := store.CreateRun(dbmodels.PayrollRun{
		WorksiteID:  "site-1",
		PeriodMonth: "2026-08",
		Status:      models.PayrollStatusDraft,
	})
	require.NoError(t, err)

	firstPass := []dbmodels.PayrollItem{
		{RunID: runID, EmployeeID: "emp-1", GrossAmount: decimal.NewFromInt(100000), NetAmount: decimal.NewFromInt(87000)},
		{RunID: runID, EmployeeID: "emp-2", GrossAmount: decimal.NewFromInt(50000), NetAmount: decimal.NewFromInt(43500)},
	}
	err = store.ReplaceItems(runID, firstPass, map[string]interface{}{
		"status":      models.PayrollStatusCalculated,
		"total_gross": decimal.NewFromInt(150000),
	})
	require.NoError(t, err)

	count, err := store.ItemCount(runID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	// пересчет заменяет строки, дублей не остается
	secondPass := []dbmodels.PayrollItem{
		{RunID: runID, EmployeeID: "emp-1", GrossAmount: decimal.NewFromInt(120000), NetAmount: decimal.NewFromInt(104400)},
	}
	err = store.ReplaceItems(runID, secondPass, map[string]interface{}{
		"total_gross": decimal.NewFromInt(120000),
	})
	require.NoError(t, err)

	count, err = store.ItemCount(runID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	run, err := store.GetRun(runID)
	require.NoError(t, err)
	require.Len(t, run.Items, 1)
	require.Equal(t, "emp-1", run.Items[0].EmployeeID)
	require.True(t, run.TotalGross.Equal(decimal.NewFromInt(120000)))
}

func TestApprovedSums(t *testing.T) {
	store := testStore(t)

	earningID, err := store.CreateEarning(dbmodels.PayrollEarning{
		EmployeeID:  "emp-1",
		PeriodMonth: "2026-08",
		Amount:      decimal.NewFromInt(5000),
		Reason:      "премия",
	})
	require.NoError(t, err)
	_, err = store.CreateEarning(dbmodels.PayrollEarning{
		EmployeeID:  "emp-1",
		PeriodMonth: "2026-08",
		Amount:      decimal.NewFromInt(3000),
		Reason:      "доплата",
	})
	require.NoError(t, err)

	// неодобренные начисления в сумму не входят
	sum, err := store.ApprovedEarningsSum("emp-1", "2026-08")
	require.NoError(t, err)
	require.True(t, sum.IsZero())

	require.NoError(t, store.ApproveEarning(earningID))
	sum, err = store.ApprovedEarningsSum("emp-1", "2026-08")
	require.NoError(t, err)
	require.True(t, sum.Equal(decimal.NewFromInt(5000)))

	deductionID, err := store.CreateDeduction(dbmodels.PayrollDeduction{
		EmployeeID:  "emp-1",
		PeriodMonth: "2026-08",
		Amount:      decimal.NewFromInt(1200),
		Reason:      "спецодежда",
	})
	require.NoError(t, err)
	require.NoError(t, store.ApproveDeduction(deductionID))

	dedSum, err := store.ApprovedDeductionsSum("emp-1", "2026-08")
	require.NoError(t, err)
	require.True(t, dedSum.Equal(decimal.NewFromInt(1200)))

	// чужой месяц не учитывается
	sum, err = store.ApprovedEarningsSum("emp-1", "2026-09")
	require.NoError(t, err)
	require.True(t, sum.IsZero())
}

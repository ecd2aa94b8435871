package store

import (
	"testing"
	"time"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) (Provider, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&dbmodels.Employee{},
		&dbmodels.EmployeeIdentity{},
		&dbmodels.EmployeeWorkStatus{},
		&dbmodels.EmployeeEmployment{},
		&dbmodels.EmployeeSalaryProfile{},
	)
	require.NoError(t, err)
	return NewInstance(db), db
}

func TestCreateAssignsEmployeeNo(t *testing.T) {
	store, _ := testStore(t)

	firstID, err := store.Create(dbmodels.Employee{
		LastName:  "Иванов",
		FirstName: "Иван",
		Status:    models.EmployeeStatusActive,
	})
	require.NoError(t, err)
	secondID, err := store.Create(dbmodels.Employee{
		LastName:  "Петров",
		FirstName: "Петр",
		Status:    models.EmployeeStatusActive,
	})
	require.NoError(t, err)
	require.NotEqual(t, firstID, secondID)

	first, err := store.GetByID(firstID)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, "EMP-0001", first.EmployeeNo)

	second, err := store.GetByID(secondID)
	require.NoError(t, err)
	require.NotNil(t, second)
	require.Equal(t, "EMP-0002", second.EmployeeNo)

	byNo, err := store.GetByEmployeeNo("EMP-0002")
	require.NoError(t, err)
	require.NotNil(t, byNo)
	require.Equal(t, secondID, byNo.ID)
}

func TestEmployeeNoBeyondFourDigits(t *testing.T) {
	store, db := testStore(t)
	require.NoError(t, db.Create(&dbmodels.Employee{
		EmployeeNo: "EMP-9999",
		LastName:   "Сидоров",
		FirstName:  "Семен",
		Status:     models.EmployeeStatusActive,
	}).Error)

	id, err := store.Create(dbmodels.Employee{
		LastName:  "Иванов",
		FirstName: "Иван",
		Status:    models.EmployeeStatusActive,
	})
	require.NoError(t, err)
	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "EMP-10000", rec.EmployeeNo)

	nextID, err := store.Create(dbmodels.Employee{
		LastName:  "Петров",
		FirstName: "Петр",
		Status:    models.EmployeeStatusActive,
	})
	require.NoError(t, err)
	next, err := store.GetByID(nextID)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Equal(t, "EMP-10001", next.EmployeeNo)
}

func TestCreateValidation(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.Create(dbmodels.Employee{LastName: "Иванов"})
	require.Error(t, err)
}

func TestSaveSalaryProfileOverwrites(t *testing.T) {
	store, _ := testStore(t)
	id, err := store.Create(dbmodels.Employee{
		LastName:  "Иванов",
		FirstName: "Иван",
		Status:    models.EmployeeStatusActive,
	})
	require.NoError(t, err)

	err = store.SaveSalaryProfile(dbmodels.EmployeeSalaryProfile{
		EmployeeID:    id,
		PaymentType:   models.PaymentTypeMonthly,
		MonthlySalary: decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	err = store.SaveSalaryProfile(dbmodels.EmployeeSalaryProfile{
		EmployeeID:    id,
		PaymentType:   models.PaymentTypeMonthly,
		MonthlySalary: decimal.NewFromInt(120000),
	})
	require.NoError(t, err)

	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.SalaryProfile)
	require.True(t, rec.SalaryProfile.MonthlySalary.Equal(decimal.NewFromInt(120000)))
}

func TestListForPayrollBySite(t *testing.T) {
	store, _ := testStore(t)

	activeID, err := store.Create(dbmodels.Employee{
		LastName:  "Иванов",
		FirstName: "Иван",
		Status:    models.EmployeeStatusActive,
	})
	require.NoError(t, err)
	terminatedID, err := store.Create(dbmodels.Employee{
		LastName:  "Петров",
		FirstName: "Петр",
		Status:    models.EmployeeStatusTerminated,
	})
	require.NoError(t, err)

	for _, employeeID := range []string{activeID, terminatedID} {
		err = store.SaveEmployment(dbmodels.EmployeeEmployment{
			EmployeeID: employeeID,
			WorksiteID: "site-1",
			HireDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	list, err := store.ListForPayroll("site-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, activeID, list[0].ID)

	list, err = store.ListForPayroll("site-2")
	require.NoError(t, err)
	require.Empty(t, list)
}

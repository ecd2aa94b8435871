package store

import (
	"testing"
	"time"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

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
	require.NoError(t, db.AutoMigrate(&dbmodels.AttendancePeriod{}, &dbmodels.AttendanceRecord{}))
	return NewInstance(db)
}

func TestFindOrCreatePeriod(t *testing.T) {
	store := testStore(t)

	period, err := store.FindOrCreatePeriod("site-1", "2026-08")
	require.NoError(t, err)
	require.NotNil(t, period)
	require.Equal(t, models.PeriodStatusOpen, period.Status)

	again, err := store.FindOrCreatePeriod("site-1", "2026-08")
	require.NoError(t, err)
	require.Equal(t, period.ID, again.ID)

	other, err := store.FindOrCreatePeriod("site-1", "2026-09")
	require.NoError(t, err)
	require.NotEqual(t, period.ID, other.ID)

	list, err := store.ListPeriods(PeriodFilter{WorksiteID: "site-1"})
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestUpsertRecordOverwrites(t *testing.T) {
	store := testStore(t)
	period, err := store.FindOrCreatePeriod("site-1", "2026-08")
	require.NoError(t, err)

	date := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	rec := dbmodels.AttendanceRecord{
		EmployeeID:     "emp-1",
		PeriodID:       period.ID,
		WorksiteID:     "site-1",
		Date:           date,
		AttendanceType: models.AttendanceNormal,
		TotalHours:     8,
	}
	id, err := store.UpsertRecord(rec)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec.TotalHours = 10
	rec.OvertimeHours = 2
	secondID, err := store.UpsertRecord(rec)
	require.NoError(t, err)
	// при перезаписи возвращается id сохраненной строки
	require.Equal(t, id, secondID)

	stored, err := store.GetRecord(secondID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, float64(10), stored.TotalHours)

	list, err := store.ListRecordsForMonth("emp-1", "2026-08")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, float64(10), list[0].TotalHours)
	require.Equal(t, float64(2), list[0].OvertimeHours)
}

func TestUpsertRecordValidation(t *testing.T) {
	store := testStore(t)
	_, err := store.UpsertRecord(dbmodels.AttendanceRecord{
		Date:       time.Now(),
		TotalHours: 8,
	})
	require.Error(t, err)

	_, err = store.UpsertRecord(dbmodels.AttendanceRecord{
		EmployeeID: "emp-1",
		Date:       time.Now(),
		TotalHours: -1,
	})
	require.Error(t, err)
}

func TestDeleteRecord(t *testing.T) {
	store := testStore(t)
	period, err := store.FindOrCreatePeriod("site-1", "2026-08")
	require.NoError(t, err)

	id, err := store.UpsertRecord(dbmodels.AttendanceRecord{
		EmployeeID:     "emp-1",
		PeriodID:       period.ID,
		WorksiteID:     "site-1",
		Date:           time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC),
		AttendanceType: models.AttendanceNormal,
		TotalHours:     8,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteRecord(id))
	rec, err := store.GetRecord(id)
	require.NoError(t, err)
	require.Nil(t, rec)
}

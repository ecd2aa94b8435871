package attendance

import (
	"testing"
	"time"
	"workforce-backend/lib/attendance/store"
	auditstore "workforce-backend/lib/audit/store"
	"workforce-backend/models"
	attendanceapimodels "workforce-backend/models/api/attendance"
	dbmodels "workforce-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	period  *dbmodels.AttendancePeriod
	updates map[string]interface{}
}

func (f *fakeStore) FindOrCreatePeriod(worksiteID, periodMonth string) (*dbmodels.AttendancePeriod, error) {
	return f.period, nil
}

func (f *fakeStore) GetPeriod(id string) (*dbmodels.AttendancePeriod, error) {
	if f.period != nil && f.period.ID == id {
		return f.period, nil
	}
	return nil, nil
}

func (f *fakeStore) FindPeriod(worksiteID, periodMonth string) (*dbmodels.AttendancePeriod, error) {
	return f.period, nil
}

func (f *fakeStore) ListPeriods(filter store.PeriodFilter) ([]dbmodels.AttendancePeriod, error) {
	return nil, nil
}

func (f *fakeStore) UpdatePeriod(id string, updMap map[string]interface{}) error {
	f.updates = updMap
	return nil
}

func (f *fakeStore) UpsertRecord(rec dbmodels.AttendanceRecord) (string, error) {
	return "record-1", nil
}

func (f *fakeStore) GetRecord(id string) (*dbmodels.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeStore) ListRecords(filter store.RecordFilter) ([]dbmodels.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeStore) ListRecordsForMonth(employeeID, periodMonth string) ([]dbmodels.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeStore) DeleteRecord(id string) error {
	return nil
}

type fakeAudit struct{}

func (fakeAudit) Log(actorID string, action models.AuditAction, entityType, entityID string, changes dbmodels.EntityChanges) {
}

func (fakeAudit) List(filter auditstore.Filter, page, limit int) ([]dbmodels.AuditLog, int64, error) {
	return nil, 0, nil
}

func testHandler(period *dbmodels.AttendancePeriod) (Provider, *fakeStore) {
	fs := &fakeStore{period: period}
	return impl{store: fs, audit: fakeAudit{}}, fs
}

func testPeriod(status models.PeriodStatus) *dbmodels.AttendancePeriod {
	return &dbmodels.AttendancePeriod{
		BaseModel:   dbmodels.BaseModel{ID: "period-1"},
		WorksiteID:  "site-1",
		PeriodMonth: "2026-08",
		Status:      status,
	}
}

func testRecord() attendanceapimodels.RecordData {
	return attendanceapimodels.RecordData{
		EmployeeID:     "emp-1",
		WorksiteID:     "site-1",
		Date:           time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		AttendanceType: string(models.AttendanceNormal),
		TotalHours:     8,
	}
}

func TestSaveRecordOpenPeriod(t *testing.T) {
	handler, _ := testHandler(testPeriod(models.PeriodStatusOpen))
	id, err := handler.SaveRecord("actor-1", testRecord())
	require.NoError(t, err)
	require.Equal(t, "record-1", id)
}

func TestSaveRecordClosedPeriod(t *testing.T) {
	for _, status := range []models.PeriodStatus{
		models.PeriodStatusSubmitted,
		models.PeriodStatusApproved,
		models.PeriodStatusLocked,
	} {
		handler, _ := testHandler(testPeriod(status))
		_, err := handler.SaveRecord("actor-1", testRecord())
		require.Error(t, err, string(status))
	}
}

func TestSubmitFromOpen(t *testing.T) {
	handler, fs := testHandler(testPeriod(models.PeriodStatusOpen))
	err := handler.Submit("actor-1", "period-1")
	require.NoError(t, err)
	require.Equal(t, models.PeriodStatusSubmitted, fs.updates["status"])
	require.Equal(t, "actor-1", fs.updates["submitted_by"])
}

func TestDoubleSubmitRejected(t *testing.T) {
	handler, fs := testHandler(testPeriod(models.PeriodStatusSubmitted))
	err := handler.Submit("actor-1", "period-1")
	require.Error(t, err)
	require.Nil(t, fs.updates)
}

func TestLockSkippingApproveRejected(t *testing.T) {
	handler, fs := testHandler(testPeriod(models.PeriodStatusSubmitted))
	err := handler.Lock("actor-1", "period-1")
	require.Error(t, err)
	require.Nil(t, fs.updates)

	handler, fs = testHandler(testPeriod(models.PeriodStatusApproved))
	err = handler.Lock("actor-1", "period-1")
	require.NoError(t, err)
	require.Equal(t, models.PeriodStatusLocked, fs.updates["status"])
}

func TestTransitionUnknownPeriod(t *testing.T) {
	handler, _ := testHandler(nil)
	err := handler.Submit("actor-1", "period-1")
	require.Error(t, err)
}

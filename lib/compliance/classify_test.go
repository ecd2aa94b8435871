package compliance

import (
	"testing"
	"time"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/stretchr/testify/require"
)

var classifyNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func docWithExpiry(expiry time.Time) dbmodels.EmployeeDocument {
	return dbmodels.EmployeeDocument{ExpiryDate: &expiry}
}

func TestClassifyExpiringDocument(t *testing.T) {
	docType := dbmodels.DocumentType{HasExpiry: true, DefaultAlertDays: 30}

	status, daysLeft := ClassifyDocument(docWithExpiry(classifyNow.AddDate(0, 0, -5)), docType, classifyNow)
	require.Equal(t, models.DocumentStatusExpired, status)
	require.NotNil(t, daysLeft)
	require.Negative(t, *daysLeft)

	status, daysLeft = ClassifyDocument(docWithExpiry(classifyNow.AddDate(0, 0, 10)), docType, classifyNow)
	require.Equal(t, models.DocumentStatusExpiringSoon, status)
	require.Equal(t, 10, *daysLeft)

	status, daysLeft = ClassifyDocument(docWithExpiry(classifyNow.AddDate(0, 0, 90)), docType, classifyNow)
	require.Equal(t, models.DocumentStatusValid, status)
	require.Equal(t, 90, *daysLeft)
}

func TestClassifyBoundaryDay(t *testing.T) {
	docType := dbmodels.DocumentType{HasExpiry: true, DefaultAlertDays: 30}

	// ровно на границе порога документ уже истекающий
	status, daysLeft := ClassifyDocument(docWithExpiry(classifyNow.AddDate(0, 0, 30)), docType, classifyNow)
	require.Equal(t, models.DocumentStatusExpiringSoon, status)
	require.Equal(t, 30, *daysLeft)

	status, _ = ClassifyDocument(docWithExpiry(classifyNow.AddDate(0, 0, 31)), docType, classifyNow)
	require.Equal(t, models.DocumentStatusValid, status)
}

func TestClassifyNonExpiring(t *testing.T) {
	docType := dbmodels.DocumentType{HasExpiry: false}

	status, daysLeft := ClassifyDocument(dbmodels.EmployeeDocument{}, docType, classifyNow)
	require.Equal(t, models.DocumentStatusUploaded, status)
	require.Nil(t, daysLeft)

	status, _ = ClassifyDocument(dbmodels.EmployeeDocument{IsVerified: true}, docType, classifyNow)
	require.Equal(t, models.DocumentStatusVerified, status)
}

func TestClassifyExpiryKindWithoutDate(t *testing.T) {
	// вид со сроком, но дата не заполнена, считаем как без срока
	docType := dbmodels.DocumentType{HasExpiry: true, DefaultAlertDays: 30}
	status, daysLeft := ClassifyDocument(dbmodels.EmployeeDocument{}, docType, classifyNow)
	require.Equal(t, models.DocumentStatusUploaded, status)
	require.Nil(t, daysLeft)
}

func TestDaysLeftRoundsUp(t *testing.T) {
	require.Equal(t, 1, DaysLeft(classifyNow.Add(time.Hour), classifyNow))
	require.Equal(t, 0, DaysLeft(classifyNow, classifyNow))
	require.Equal(t, -1, DaysLeft(classifyNow.Add(-25*time.Hour), classifyNow))
}

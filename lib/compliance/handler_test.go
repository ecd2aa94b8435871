package compliance

import (
	"context"
	"testing"
	"time"
	auditstore "workforce-backend/lib/audit/store"
	"workforce-backend/lib/compliance/store"
	employeestore "workforce-backend/lib/employee/store"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

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
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&dbmodels.EmployeeDocument{},
		&dbmodels.DocumentFile{},
		&dbmodels.DocumentType{},
		&dbmodels.AlertRule{},
		&dbmodels.Alert{},
		&dbmodels.EmployeeWorkStatus{},
		&dbmodels.EmployeeIdentity{},
	))
	complianceStore := store.NewInstance(db)
	handler := impl{
		store:     complianceStore,
		employees: employeestore.NewInstance(db),
		audit:     fakeAudit{},
	}
	return handler, complianceStore
}

func TestGenerateAlertsNoDuplicates(t *testing.T) {
	handler, complianceStore := testHandler(t)
	ctx := context.Background()

	_, err := complianceStore.SaveRule(dbmodels.AlertRule{
		Name:         "Истечение срока документа",
		TrackedField: dbmodels.AlertFieldDocumentExpiry,
		WarningDays:  30,
		CriticalDays: 7,
		IsActive:     true,
	})
	require.NoError(t, err)

	expiry := time.Now().Add(10 * 24 * time.Hour)
	docID, err := complianceStore.SaveDocument(dbmodels.EmployeeDocument{
		EmployeeID:     "emp-1",
		DocumentTypeID: "type-1",
		Number:         "AB 123456",
		ExpiryDate:     &expiry,
	})
	require.NoError(t, err)

	created, updated, err := handler.GenerateAlerts(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Equal(t, 0, updated)

	// повторный проход не создает дублей
	created, updated, err = handler.GenerateAlerts(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, created)
	require.Equal(t, 0, updated)

	alerts, err := complianceStore.ListAlerts(store.AlertFilter{})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, models.AlertSeverityWarning, alerts[0].Severity)
	require.Equal(t, docID, alerts[0].EntityID)
}

func TestGenerateAlertsEscalationKeepsFlags(t *testing.T) {
	handler, complianceStore := testHandler(t)
	ctx := context.Background()

	_, err := complianceStore.SaveRule(dbmodels.AlertRule{
		Name:         "Истечение срока документа",
		TrackedField: dbmodels.AlertFieldDocumentExpiry,
		WarningDays:  30,
		CriticalDays: 7,
		IsActive:     true,
	})
	require.NoError(t, err)

	expiry := time.Now().Add(10 * 24 * time.Hour)
	docID, err := complianceStore.SaveDocument(dbmodels.EmployeeDocument{
		EmployeeID:     "emp-1",
		DocumentTypeID: "type-1",
		Number:         "AB 123456",
		ExpiryDate:     &expiry,
	})
	require.NoError(t, err)

	_, _, err = handler.GenerateAlerts(ctx)
	require.NoError(t, err)

	alerts, err := complianceStore.ListAlerts(store.AlertFilter{})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.NoError(t, handler.MarkAlertRead(alerts[0].ID))

	// срок сократился до критичного
	critical := time.Now().Add(3 * 24 * time.Hour)
	err = complianceStore.UpdateDocument(docID, map[string]interface{}{"expiry_date": critical})
	require.NoError(t, err)

	created, updated, err := handler.GenerateAlerts(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, created)
	require.Equal(t, 1, updated)

	alerts, err = complianceStore.ListAlerts(store.AlertFilter{})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, models.AlertSeverityCritical, alerts[0].Severity)
	// флаг прочтения не сбрасывается при эскалации
	require.True(t, alerts[0].IsRead)
	require.False(t, alerts[0].IsDismissed)
}

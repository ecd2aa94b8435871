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
	require.NoError(t, db.AutoMigrate(
		&dbmodels.EmployeeDocument{},
		&dbmodels.DocumentFile{},
		&dbmodels.AlertRule{},
		&dbmodels.Alert{},
	))
	return NewInstance(db)
}

func TestNextFileVersion(t *testing.T) {
	store := testStore(t)

	version, err := store.NextFileVersion("doc-1")
	require.NoError(t, err)
	require.Equal(t, 1, version)

	_, err = store.AddFile(dbmodels.DocumentFile{
		DocumentID:  "doc-1",
		VersionNo:   1,
		FileName:    "passport.pdf",
		ContentHash: "abc",
	})
	require.NoError(t, err)

	version, err = store.NextFileVersion("doc-1")
	require.NoError(t, err)
	require.Equal(t, 2, version)

	// версии считаются в рамках документа
	version, err = store.NextFileVersion("doc-2")
	require.NoError(t, err)
	require.Equal(t, 1, version)
}

func TestFindFileByHash(t *testing.T) {
	store := testStore(t)

	id, err := store.AddFile(dbmodels.DocumentFile{
		DocumentID:  "doc-1",
		VersionNo:   1,
		FileName:    "scan.jpg",
		ContentHash: "hash-1",
	})
	require.NoError(t, err)

	found, err := store.FindFileByHash("doc-1", "hash-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, id, found.ID)

	// тот же хэш под другим документом не находится
	found, err = store.FindFileByHash("doc-2", "hash-1")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestAlertPerRuleAndEntity(t *testing.T) {
	store := testStore(t)

	ruleID, err := store.SaveRule(dbmodels.AlertRule{
		Name:         "истечение документа",
		TrackedField: dbmodels.AlertFieldDocumentExpiry,
		WarningDays:  60,
		CriticalDays: 14,
		IsActive:     true,
	})
	require.NoError(t, err)

	alert, err := store.FindAlert(ruleID, "doc-1")
	require.NoError(t, err)
	require.Nil(t, alert)

	alertID, err := store.CreateAlert(dbmodels.Alert{
		RuleID:     ruleID,
		EntityType: "EmployeeDocument",
		EntityID:   "doc-1",
		EmployeeID: "emp-1",
		Severity:   models.AlertSeverityWarning,
		Message:    "срок истекает",
		DueDate:    time.Now().AddDate(0, 0, 20),
	})
	require.NoError(t, err)

	// повторная генерация обновляет существующее, флаги не сбрасываются
	require.NoError(t, store.UpdateAlert(alertID, map[string]interface{}{"is_read": true}))
	require.NoError(t, store.UpdateAlert(alertID, map[string]interface{}{
		"severity": models.AlertSeverityCritical,
		"message":  "срок почти истек",
	}))

	alert, err = store.FindAlert(ruleID, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, alert)
	require.Equal(t, alertID, alert.ID)
	require.Equal(t, models.AlertSeverityCritical, alert.Severity)
	require.True(t, alert.IsRead)

	list, err := store.ListAlerts(AlertFilter{EmployeeID: "emp-1", OnlyOpen: true})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, store.UpdateAlert(alertID, map[string]interface{}{"is_dismissed": true}))
	list, err = store.ListAlerts(AlertFilter{EmployeeID: "emp-1", OnlyOpen: true})
	require.NoError(t, err)
	require.Empty(t, list)
}

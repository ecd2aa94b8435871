package store

import (
	"time"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveDocument(rec dbmodels.EmployeeDocument) (id string, err error)
	GetDocument(id string) (rec *dbmodels.EmployeeDocument, err error)
	FindDocument(employeeID, documentTypeID string) (rec *dbmodels.EmployeeDocument, err error)
	ListDocuments(filter DocumentFilter) (list []dbmodels.EmployeeDocument, err error)
	UpdateDocument(id string, updMap map[string]interface{}) error
	DeleteDocument(id string) error
	// ListExpiring - документы со сроком действия не позже порога
	ListExpiring(before time.Time) (list []dbmodels.EmployeeDocument, err error)
	ListRequirements(workStatusType string) (list []dbmodels.DocumentRequirement, err error)

	AddFile(rec dbmodels.DocumentFile) (id string, err error)
	ListFiles(documentID string) (list []dbmodels.DocumentFile, err error)
	// NextFileVersion - номер следующей версии файла документа
	NextFileVersion(documentID string) (version int, err error)
	FindFileByHash(documentID, contentHash string) (rec *dbmodels.DocumentFile, err error)
	GetFile(id string) (rec *dbmodels.DocumentFile, err error)

	ListActiveRules() (list []dbmodels.AlertRule, err error)
	ListRules() (list []dbmodels.AlertRule, err error)
	GetRule(id string) (rec *dbmodels.AlertRule, err error)
	SaveRule(rec dbmodels.AlertRule) (id string, err error)
	UpdateRule(id string, updMap map[string]interface{}) error

	FindAlert(ruleID, entityID string) (rec *dbmodels.Alert, err error)
	CreateAlert(rec dbmodels.Alert) (id string, err error)
	UpdateAlert(id string, updMap map[string]interface{}) error
	ListAlerts(filter AlertFilter) (list []dbmodels.Alert, err error)

	// ListWorkStatuses - правовые статусы с ограниченным сроком действия
	ListWorkStatuses() (list []dbmodels.EmployeeWorkStatus, err error)
	ListIdentities() (list []dbmodels.EmployeeIdentity, err error)
	GetWorkStatus(employeeID string) (rec *dbmodels.EmployeeWorkStatus, err error)
	GetDocumentType(id string) (rec *dbmodels.DocumentType, err error)
}

type DocumentFilter struct {
	EmployeeID string
}

type AlertFilter struct {
	EmployeeID string
	Severity   string
	OnlyOpen   bool
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveDocument(rec dbmodels.EmployeeDocument) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetDocument(id string) (*dbmodels.EmployeeDocument, error) {
	rec := dbmodels.EmployeeDocument{}
	err := i.db.
		Where("id = ?", id).
		Preload("DocumentType").
		Preload("Files").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindDocument(employeeID, documentTypeID string) (*dbmodels.EmployeeDocument, error) {
	rec := dbmodels.EmployeeDocument{}
	err := i.db.
		Where("employee_id = ? and document_type_id = ?", employeeID, documentTypeID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListDocuments(filter DocumentFilter) (list []dbmodels.EmployeeDocument, err error) {
	list = []dbmodels.EmployeeDocument{}
	tx := i.db.Model(dbmodels.EmployeeDocument{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	err = tx.
		Preload("DocumentType").
		Preload("Files").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateDocument(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.EmployeeDocument{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) DeleteDocument(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&dbmodels.DocumentFile{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dbmodels.EmployeeDocument{}).Error
	})
}

func (i impl) ListExpiring(before time.Time) (list []dbmodels.EmployeeDocument, err error) {
	list = []dbmodels.EmployeeDocument{}
	err = i.db.
		Where("expiry_date is not null and expiry_date <= ?", before).
		Preload("DocumentType").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRequirements(workStatusType string) (list []dbmodels.DocumentRequirement, err error) {
	list = []dbmodels.DocumentRequirement{}
	err = i.db.
		Where("work_status_type = ?", workStatusType).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddFile(rec dbmodels.DocumentFile) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListFiles(documentID string) (list []dbmodels.DocumentFile, err error) {
	list = []dbmodels.DocumentFile{}
	err = i.db.
		Where("document_id = ?", documentID).
		Order("version_no").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) NextFileVersion(documentID string) (version int, err error) {
	var maxVersion int
	err = i.db.Model(dbmodels.DocumentFile{}).
		Select("COALESCE(MAX(version_no), 0)").
		Where("document_id = ?", documentID).
		Scan(&maxVersion).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения версии файла")
	}
	return maxVersion + 1, nil
}

func (i impl) FindFileByHash(documentID, contentHash string) (*dbmodels.DocumentFile, error) {
	rec := dbmodels.DocumentFile{}
	err := i.db.
		Where("document_id = ? and content_hash = ?", documentID, contentHash).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetFile(id string) (*dbmodels.DocumentFile, error) {
	rec := dbmodels.DocumentFile{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListActiveRules() (list []dbmodels.AlertRule, err error) {
	list = []dbmodels.AlertRule{}
	err = i.db.
		Where("is_active = ?", true).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRules() (list []dbmodels.AlertRule, err error) {
	list = []dbmodels.AlertRule{}
	err = i.db.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetRule(id string) (*dbmodels.AlertRule, error) {
	rec := dbmodels.AlertRule{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) SaveRule(rec dbmodels.AlertRule) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateRule(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.AlertRule{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) FindAlert(ruleID, entityID string) (*dbmodels.Alert, error) {
	rec := dbmodels.Alert{}
	err := i.db.
		Where("rule_id = ? and entity_id = ?", ruleID, entityID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) CreateAlert(rec dbmodels.Alert) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateAlert(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Alert{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListAlerts(filter AlertFilter) (list []dbmodels.Alert, err error) {
	list = []dbmodels.Alert{}
	tx := i.db.Model(dbmodels.Alert{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Severity != "" {
		tx = tx.Where("severity = ?", filter.Severity)
	}
	if filter.OnlyOpen {
		tx = tx.Where("is_dismissed = ?", false)
	}
	err = tx.Order("due_date").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListWorkStatuses() (list []dbmodels.EmployeeWorkStatus, err error) {
	list = []dbmodels.EmployeeWorkStatus{}
	err = i.db.
		Where("valid_to is not null and valid_to > ?", time.Time{}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListIdentities() (list []dbmodels.EmployeeIdentity, err error) {
	list = []dbmodels.EmployeeIdentity{}
	err = i.db.
		Where("passport_expiry > ?", time.Time{}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetWorkStatus(employeeID string) (*dbmodels.EmployeeWorkStatus, error) {
	rec := dbmodels.EmployeeWorkStatus{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetDocumentType(id string) (*dbmodels.DocumentType, error) {
	rec := dbmodels.DocumentType{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

package store

import (
	"time"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.EmployeeSiteTransfer) (id string, err error)
	GetByID(id string) (rec *dbmodels.EmployeeSiteTransfer, err error)
	List(filter Filter) (list []dbmodels.EmployeeSiteTransfer, err error)
	Update(id string, updMap map[string]interface{}) error
	// ApproveAndMove атомарно одобряет перевод и переносит
	// занятость работника на целевой объект
	ApproveAndMove(rec dbmodels.EmployeeSiteTransfer, actorID string) error
}

type Filter struct {
	EmployeeID string
	WorksiteID string
	Status     string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmployeeSiteTransfer) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EmployeeSiteTransfer, error) {
	rec := dbmodels.EmployeeSiteTransfer{}
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

func (i impl) List(filter Filter) (list []dbmodels.EmployeeSiteTransfer, err error) {
	list = []dbmodels.EmployeeSiteTransfer{}
	tx := i.db.Model(dbmodels.EmployeeSiteTransfer{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.WorksiteID != "" {
		tx = tx.Where("from_worksite_id = ? or to_worksite_id = ?", filter.WorksiteID, filter.WorksiteID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.EmployeeSiteTransfer{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ApproveAndMove(rec dbmodels.EmployeeSiteTransfer, actorID string) error {
	now := time.Now()
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&dbmodels.EmployeeSiteTransfer{}).
			Where("id = ?", rec.ID).
			Updates(map[string]interface{}{
				"status":     models.TransferStatusApproved,
				"decided_by": actorID,
				"decided_at": &now,
			}).
			Error
		if err != nil {
			return err
		}
		return tx.Model(&dbmodels.EmployeeEmployment{}).
			Where("employee_id = ?", rec.EmployeeID).
			Update("worksite_id", rec.ToWorksiteID).
			Error
	})
}

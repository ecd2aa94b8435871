package store

import (
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.LeaveRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.LeaveRequest, err error)
	List(filter Filter) (list []dbmodels.LeaveRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	// HasOverlap проверяет пересечение с одобренными отпусками работника
	HasOverlap(rec dbmodels.LeaveRequest) (overlap bool, err error)
}

type Filter struct {
	EmployeeID string
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

func (i impl) Create(rec dbmodels.LeaveRequest) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.LeaveRequest, error) {
	rec := dbmodels.LeaveRequest{}
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

func (i impl) List(filter Filter) (list []dbmodels.LeaveRequest, err error) {
	list = []dbmodels.LeaveRequest{}
	tx := i.db.Model(dbmodels.LeaveRequest{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Order("date_from desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.LeaveRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) HasOverlap(rec dbmodels.LeaveRequest) (bool, error) {
	var count int64
	err := i.db.Model(dbmodels.LeaveRequest{}).
		Where("employee_id = ? and status = ?", rec.EmployeeID, models.LeaveStatusApproved).
		Where("date_from <= ? and date_to >= ?", rec.DateTo, rec.DateFrom).
		Where("id <> ?", rec.ID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

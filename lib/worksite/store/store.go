package store

import (
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Worksite) (id string, err error)
	GetByID(id string) (rec *dbmodels.Worksite, err error)
	List(activeOnly bool) (list []dbmodels.Worksite, err error)
	Update(id string, updMap map[string]interface{}) error
	HardDelete(id string) error
	RefCount(id string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Worksite) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	var rowCount int64
	err = i.db.Model(dbmodels.Worksite{}).Where("code = ?", rec.Code).Count(&rowCount).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки уникальности объекта")
	}
	if rowCount != 0 {
		return "", errors.New("объект с таким кодом уже существует")
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Worksite, error) {
	rec := dbmodels.Worksite{}
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

func (i impl) List(activeOnly bool) (list []dbmodels.Worksite, err error) {
	list = []dbmodels.Worksite{}
	tx := i.db.Order("code")
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Worksite{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) HardDelete(id string) error {
	return i.db.Where("id = ?", id).Delete(&dbmodels.Worksite{}).Error
}

// RefCount считает ссылки на объект из занятости, табельных периодов и ведомостей
func (i impl) RefCount(id string) (count int64, err error) {
	var total int64
	counters := []struct {
		model interface{}
	}{
		{&dbmodels.EmployeeEmployment{}},
		{&dbmodels.AttendancePeriod{}},
		{&dbmodels.PayrollRun{}},
		{&dbmodels.Asset{}},
	}
	for _, counter := range counters {
		var cnt int64
		err = i.db.Model(counter.model).Where("worksite_id = ?", id).Count(&cnt).Error
		if err != nil {
			return 0, err
		}
		total += cnt
	}
	return total, nil
}

package dicts

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type store interface {
	Create(kind Kind, rec interface{}) error
	GetByID(kind Kind, id string) (rec interface{}, err error)
	List(kind Kind, activeOnly bool) (list []interface{}, err error)
	Update(kind Kind, id string, updMap map[string]interface{}) error
	HardDelete(kind Kind, id string) error
	RefCount(kind Kind, id string) (int64, error)
	IsUniqueCode(kind Kind, selfID, code string) error
}

func newStore(DB *gorm.DB) store {
	return &storeImpl{
		db: DB,
	}
}

type storeImpl struct {
	db *gorm.DB
}

func (i storeImpl) Create(kind Kind, rec interface{}) error {
	err := i.db.Create(rec).Error
	if err != nil {
		return errors.Wrapf(err, "ошибка создания записи справочника (%v)", kind)
	}
	return nil
}

func (i storeImpl) GetByID(kind Kind, id string) (interface{}, error) {
	rec := kindDefs[kind].newModel()
	err := i.db.
		Where("id = ?", id).
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i storeImpl) List(kind Kind, activeOnly bool) (list []interface{}, err error) {
	def := kindDefs[kind]
	tx := i.db.Model(def.newModel()).Order("code")
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		rec := def.newModel()
		if err = i.db.ScanRows(rows, rec); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, nil
}

func (i storeImpl) Update(kind Kind, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(kindDefs[kind].newModel()).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i storeImpl) HardDelete(kind Kind, id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(kindDefs[kind].newModel()).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i storeImpl) RefCount(kind Kind, id string) (int64, error) {
	return kindDefs[kind].refCount(i.db, id)
}

func (i storeImpl) IsUniqueCode(kind Kind, selfID, code string) error {
	def := kindDefs[kind]
	var rowCount int64
	tx := i.db.Model(def.newModel()).Where("code = ?", code)
	if selfID != "" {
		tx = tx.Where("id <> ?", selfID)
	}
	err := tx.Count(&rowCount).Error
	if err != nil {
		return errors.Wrapf(err, "ошибка проверки уникальности (%v)", kind)
	}
	if rowCount != 0 {
		return errors.Errorf("запись справочника %v с таким кодом уже существует", def.human)
	}
	return nil
}

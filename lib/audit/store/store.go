package store

import (
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AuditLog) error
	List(filter Filter, page, limit int) (list []dbmodels.AuditLog, err error)
	ListCount(filter Filter) (count int64, err error)
}

type Filter struct {
	ActorID    string
	EntityType string
	EntityID   string
	Action     string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) error {
	err := i.db.Create(&rec).Error
	if err != nil {
		return errors.Wrap(err, "ошибка записи в журнал аудита")
	}
	return nil
}

func (i impl) List(filter Filter, page, limit int) (list []dbmodels.AuditLog, err error) {
	list = []dbmodels.AuditLog{}
	tx := i.db.Model(dbmodels.AuditLog{})
	i.addFilter(tx, filter)
	tx.Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter Filter) (count int64, err error) {
	tx := i.db.Model(dbmodels.AuditLog{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения количества записей аудита")
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter Filter) {
	if filter.ActorID != "" {
		tx.Where("actor_id = ?", filter.ActorID)
	}
	if filter.EntityType != "" {
		tx.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		tx.Where("entity_id = ?", filter.EntityID)
	}
	if filter.Action != "" {
		tx.Where("action = ?", filter.Action)
	}
}

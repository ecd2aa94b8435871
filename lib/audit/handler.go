package audit

import (
	"workforce-backend/db"
	"workforce-backend/lib/audit/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Log пишет запись аудита, ошибка записи не прерывает основную операцию
	Log(actorID string, action models.AuditAction, entityType, entityID string, changes dbmodels.EntityChanges)
	List(filter store.Filter, page, limit int) (list []dbmodels.AuditLog, count int64, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) Log(actorID string, action models.AuditAction, entityType, entityID string, changes dbmodels.EntityChanges) {
	rec := dbmodels.AuditLog{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    changes,
	}
	if err := i.store.Create(rec); err != nil {
		log.WithError(err).
			WithField("entity_type", entityType).
			WithField("entity_id", entityID).
			Error("запись аудита не сохранена")
	}
}

func (i impl) List(filter store.Filter, page, limit int) (list []dbmodels.AuditLog, count int64, err error) {
	count, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	list, err = i.store.List(filter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

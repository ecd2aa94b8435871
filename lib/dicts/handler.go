package dicts

import (
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	dictapimodels "workforce-backend/models/api/dict"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actorID string, kind Kind, request dictapimodels.DictData) (id string, err error)
	Update(actorID string, kind Kind, id string, request dictapimodels.DictData) error
	Get(kind Kind, id string) (view dictapimodels.DictView, err error)
	List(kind Kind, activeOnly bool) (list []dictapimodels.DictView, err error)
	// RetireOrDelete удаляет запись без ссылок, иначе снимает признак активности
	RetireOrDelete(actorID string, kind Kind, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: newStore(db.DB),
		audit: audit.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store store
	audit audit.Provider
}

func (i impl) Create(actorID string, kind Kind, request dictapimodels.DictData) (id string, err error) {
	if err = i.store.IsUniqueCode(kind, "", request.Code); err != nil {
		return "", err
	}
	rec, err := toRecord(kind, request)
	if err != nil {
		return "", err
	}
	if err = i.store.Create(kind, rec); err != nil {
		return "", err
	}
	view := toView(rec)
	log.WithField("dict", kind).
		WithField("rec_id", view.ID).
		Info("создана запись справочника")
	i.audit.Log(actorID, models.AuditActionCreate, dictEntityType(kind), view.ID,
		dbmodels.EntityChanges{Description: "создана запись " + request.Code})
	return view.ID, nil
}

func (i impl) Update(actorID string, kind Kind, id string, request dictapimodels.DictData) error {
	existed, err := i.store.GetByID(kind, id)
	if err != nil {
		return err
	}
	if existed == nil {
		return errors.New("запись справочника не найдена")
	}
	old := toView(existed)
	if old.Code != request.Code {
		return errors.New("код записи справочника не меняется")
	}
	updMap := map[string]interface{}{
		"name_ru": request.NameRu,
		"name_en": request.NameEn,
		"name_tr": request.NameTr,
	}
	switch kind {
	case KindShift:
		updMap["start_time"] = request.StartTime
		updMap["end_time"] = request.EndTime
		if request.NightWork != nil {
			updMap["night_work"] = *request.NightWork
		}
	case KindDocumentType:
		if request.HasExpiry != nil {
			updMap["has_expiry"] = *request.HasExpiry
		}
		if request.DefaultAlertDays != nil {
			updMap["default_alert_days"] = *request.DefaultAlertDays
		}
	case KindLeaveType:
		if request.Paid != nil {
			updMap["paid"] = *request.Paid
		}
	}
	if err = i.store.Update(kind, id, updMap); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, dictEntityType(kind), id,
		dbmodels.EntityChanges{Description: "обновлена запись " + request.Code})
	return nil
}

func (i impl) Get(kind Kind, id string) (dictapimodels.DictView, error) {
	rec, err := i.store.GetByID(kind, id)
	if err != nil {
		return dictapimodels.DictView{}, err
	}
	if rec == nil {
		return dictapimodels.DictView{}, errors.New("запись справочника не найдена")
	}
	return toView(rec), nil
}

func (i impl) List(kind Kind, activeOnly bool) (list []dictapimodels.DictView, err error) {
	recList, err := i.store.List(kind, activeOnly)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.DictView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, toView(rec))
	}
	return list, nil
}

func (i impl) RetireOrDelete(actorID string, kind Kind, id string) error {
	logger := log.WithField("dict", kind).WithField("rec_id", id)
	rec, err := i.store.GetByID(kind, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("запись справочника не найдена")
	}
	refs, err := i.store.RefCount(kind, id)
	if err != nil {
		return errors.Wrap(err, "ошибка подсчета ссылок")
	}
	if refs == 0 {
		if err = i.store.HardDelete(kind, id); err != nil {
			return err
		}
		logger.Info("удалена запись справочника")
		i.audit.Log(actorID, models.AuditActionDelete, dictEntityType(kind), id, dbmodels.EntityChanges{})
		return nil
	}
	// запись используется - только деактивация
	if err = i.store.Update(kind, id, map[string]interface{}{"is_active": false}); err != nil {
		return err
	}
	logger.WithField("ref_count", refs).Info("запись справочника деактивирована")
	i.audit.Log(actorID, models.AuditActionDeactivate, dictEntityType(kind), id, dbmodels.EntityChanges{})
	return nil
}

func dictEntityType(kind Kind) string {
	return "Dict:" + string(kind)
}

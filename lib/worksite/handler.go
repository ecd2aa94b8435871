package worksite

import (
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/worksite/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	worksiteapimodels "workforce-backend/models/api/worksite"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actorID string, request worksiteapimodels.WorksiteData) (id string, err error)
	Update(actorID, id string, request worksiteapimodels.WorksitePatch) error
	Get(id string) (view worksiteapimodels.WorksiteView, err error)
	List(activeOnly bool) (list []worksiteapimodels.WorksiteView, err error)
	// RetireOrDelete удаляет объект без ссылок, иначе снимает признак активности
	RetireOrDelete(actorID, id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
		audit: audit.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
	audit audit.Provider
}

const entityType = "Worksite"

func (i impl) Create(actorID string, request worksiteapimodels.WorksiteData) (id string, err error) {
	rec := dbmodels.Worksite{
		Code:         request.Code,
		Name:         request.Name,
		Address:      request.Address,
		Status:       models.WorksiteStatusActive,
		ManagerName:  request.ManagerName,
		ManagerPhone: request.ManagerPhone,
		IsActive:     true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("worksite_id", id).Info("создан объект")
	i.audit.Log(actorID, models.AuditActionCreate, entityType, id,
		dbmodels.EntityChanges{Description: "создан объект " + request.Code})
	return id, nil
}

func (i impl) Update(actorID, id string, request worksiteapimodels.WorksitePatch) error {
	existed, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return errors.New("объект не найден")
	}
	updMap := map[string]interface{}{}
	changes := dbmodels.EntityChanges{}
	if request.Name != nil && *request.Name != existed.Name {
		updMap["name"] = *request.Name
		changes.AddChange("name", existed.Name, *request.Name)
	}
	if request.Address != nil && *request.Address != existed.Address {
		updMap["address"] = *request.Address
		changes.AddChange("address", existed.Address, *request.Address)
	}
	if request.Status != nil {
		newStatus := models.WorksiteStatus(*request.Status)
		if !newStatus.IsValid() {
			return errors.New("некорректный статус объекта")
		}
		if newStatus != existed.Status {
			updMap["status"] = newStatus
			changes.AddChange("status", string(existed.Status), string(newStatus))
		}
	}
	if request.ManagerName != nil && *request.ManagerName != existed.ManagerName {
		updMap["manager_name"] = *request.ManagerName
		changes.AddChange("manager_name", existed.ManagerName, *request.ManagerName)
	}
	if request.ManagerPhone != nil && *request.ManagerPhone != existed.ManagerPhone {
		updMap["manager_phone"] = *request.ManagerPhone
		changes.AddChange("manager_phone", existed.ManagerPhone, *request.ManagerPhone)
	}
	if len(updMap) == 0 {
		return nil
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id, changes)
	return nil
}

func (i impl) Get(id string) (worksiteapimodels.WorksiteView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return worksiteapimodels.WorksiteView{}, err
	}
	if rec == nil {
		return worksiteapimodels.WorksiteView{}, errors.New("объект не найден")
	}
	return convert(*rec), nil
}

func (i impl) List(activeOnly bool) (list []worksiteapimodels.WorksiteView, err error) {
	recList, err := i.store.List(activeOnly)
	if err != nil {
		return nil, err
	}
	list = make([]worksiteapimodels.WorksiteView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convert(rec))
	}
	return list, nil
}

func (i impl) RetireOrDelete(actorID, id string) error {
	logger := log.WithField("worksite_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("объект не найден")
	}
	refs, err := i.store.RefCount(id)
	if err != nil {
		return errors.Wrap(err, "ошибка подсчета ссылок")
	}
	if refs == 0 {
		if err = i.store.HardDelete(id); err != nil {
			return err
		}
		logger.Info("объект удален")
		i.audit.Log(actorID, models.AuditActionDelete, entityType, id, dbmodels.EntityChanges{})
		return nil
	}
	// объект используется - только деактивация
	updMap := map[string]interface{}{
		"is_active": false,
		"status":    models.WorksiteStatusClosed,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	logger.WithField("ref_count", refs).Info("объект деактивирован")
	i.audit.Log(actorID, models.AuditActionDeactivate, entityType, id, dbmodels.EntityChanges{})
	return nil
}

func convert(rec dbmodels.Worksite) worksiteapimodels.WorksiteView {
	return worksiteapimodels.WorksiteView{
		ID:           rec.ID,
		Code:         rec.Code,
		Name:         rec.Name,
		Address:      rec.Address,
		Status:       string(rec.Status),
		ManagerName:  rec.ManagerName,
		ManagerPhone: rec.ManagerPhone,
		IsActive:     rec.IsActive,
	}
}

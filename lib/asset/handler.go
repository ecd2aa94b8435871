package asset

import (
	"time"
	"workforce-backend/db"
	"workforce-backend/lib/asset/store"
	"workforce-backend/lib/audit"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	assetapimodels "workforce-backend/models/api/asset"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actorID string, request assetapimodels.AssetData) (id string, err error)
	Get(id string) (view assetapimodels.AssetView, err error)
	List(filter assetapimodels.AssetFilter) (list []assetapimodels.AssetView, err error)
	Retire(actorID, id string) error
	// Assign выдает имущество работнику, по имуществу
	// допускается одна незакрытая выдача
	Assign(actorID, assetID string, request assetapimodels.AssignRequest) (id string, err error)
	Return(actorID, assetID string) error
	History(assetID string) (list []assetapimodels.AssignmentView, err error)
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

const entityType = "Asset"

func (i impl) Create(actorID string, request assetapimodels.AssetData) (id string, err error) {
	rec := dbmodels.Asset{
		CategoryID:   request.CategoryID,
		WorksiteID:   request.WorksiteID,
		InventoryNo:  request.InventoryNo,
		Name:         request.Name,
		SerialNumber: request.SerialNumber,
		Status:       models.AssetStatusAvailable,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("asset_id", id).Info("создано имущество")
	i.audit.Log(actorID, models.AuditActionCreate, entityType, id,
		dbmodels.EntityChanges{Description: "имущество " + request.InventoryNo})
	return id, nil
}

func (i impl) Get(id string) (assetapimodels.AssetView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return assetapimodels.AssetView{}, err
	}
	if rec == nil {
		return assetapimodels.AssetView{}, errors.New("имущество не найдено")
	}
	view := convert(*rec)
	assignment, err := i.store.ActiveAssignment(id)
	if err != nil {
		return assetapimodels.AssetView{}, err
	}
	if assignment != nil {
		converted := convertAssignment(*assignment)
		view.Assignment = &converted
	}
	return view, nil
}

func (i impl) List(filter assetapimodels.AssetFilter) (list []assetapimodels.AssetView, err error) {
	recList, err := i.store.List(store.Filter{
		CategoryID: filter.CategoryID,
		WorksiteID: filter.WorksiteID,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, err
	}
	list = make([]assetapimodels.AssetView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convert(rec))
	}
	return list, nil
}

func (i impl) Retire(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("имущество не найдено")
	}
	if rec.Status == models.AssetStatusAssigned {
		return errors.New("нельзя списать выданное имущество")
	}
	if err = i.store.Update(id, map[string]interface{}{"status": models.AssetStatusRetired}); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionDeactivate, entityType, id, dbmodels.EntityChanges{})
	return nil
}

func (i impl) Assign(actorID, assetID string, request assetapimodels.AssignRequest) (id string, err error) {
	if request.EmployeeID == "" {
		return "", errors.New("не указан работник")
	}
	rec, err := i.store.GetByID(assetID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("имущество не найдено")
	}
	if rec.Status == models.AssetStatusRetired {
		return "", errors.New("имущество списано")
	}
	active, err := i.store.ActiveAssignment(assetID)
	if err != nil {
		return "", err
	}
	if active != nil {
		return "", errors.New("имущество уже выдано")
	}
	assignment := dbmodels.AssetAssignment{
		AssetID:    assetID,
		EmployeeID: request.EmployeeID,
		IssuedAt:   time.Now(),
		Note:       request.Note,
	}
	id, err = i.store.Assign(assignment)
	if err != nil {
		return "", err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, assetID,
		dbmodels.EntityChanges{Description: "имущество выдано работнику " + request.EmployeeID})
	return id, nil
}

func (i impl) Return(actorID, assetID string) error {
	active, err := i.store.ActiveAssignment(assetID)
	if err != nil {
		return err
	}
	if active == nil {
		return errors.New("по имуществу нет незакрытой выдачи")
	}
	if err = i.store.Return(active.ID); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, assetID,
		dbmodels.EntityChanges{Description: "имущество возвращено"})
	return nil
}

func (i impl) History(assetID string) (list []assetapimodels.AssignmentView, err error) {
	recList, err := i.store.ListAssignments(assetID)
	if err != nil {
		return nil, err
	}
	list = make([]assetapimodels.AssignmentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convertAssignment(rec))
	}
	return list, nil
}

func convert(rec dbmodels.Asset) assetapimodels.AssetView {
	return assetapimodels.AssetView{
		ID:           rec.ID,
		CategoryID:   rec.CategoryID,
		WorksiteID:   rec.WorksiteID,
		InventoryNo:  rec.InventoryNo,
		Name:         rec.Name,
		SerialNumber: rec.SerialNumber,
		Status:       string(rec.Status),
	}
}

func convertAssignment(rec dbmodels.AssetAssignment) assetapimodels.AssignmentView {
	return assetapimodels.AssignmentView{
		ID:         rec.ID,
		AssetID:    rec.AssetID,
		EmployeeID: rec.EmployeeID,
		IssuedAt:   rec.IssuedAt,
		ReturnedAt: rec.ReturnedAt,
		Note:       rec.Note,
	}
}

package transfer

import (
	"time"
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	employeestore "workforce-backend/lib/employee/store"
	"workforce-backend/lib/transfer/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	transferapimodels "workforce-backend/models/api/transfer"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actorID string, request transferapimodels.TransferData) (id string, err error)
	Get(id string) (view transferapimodels.TransferView, err error)
	List(filter transferapimodels.TransferFilter) (list []transferapimodels.TransferView, err error)
	// Approve одобряет перевод и переносит занятость на целевой объект
	Approve(actorID, id string) error
	Reject(actorID, id string, reason string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:     store.NewInstance(db.DB),
		employees: employeestore.NewInstance(db.DB),
		audit:     audit.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employees", instance.employees,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store     store.Provider
	employees employeestore.Provider
	audit     audit.Provider
}

const entityType = "EmployeeSiteTransfer"

func (i impl) Create(actorID string, request transferapimodels.TransferData) (id string, err error) {
	employee, err := i.employees.GetByID(request.EmployeeID)
	if err != nil {
		return "", err
	}
	if employee == nil {
		return "", errors.New("работник не найден")
	}
	fromWorksiteID := ""
	if employee.Employment != nil {
		fromWorksiteID = employee.Employment.WorksiteID
	}
	rec := dbmodels.EmployeeSiteTransfer{
		EmployeeID:     request.EmployeeID,
		FromWorksiteID: fromWorksiteID,
		ToWorksiteID:   request.ToWorksiteID,
		TransferDate:   request.TransferDate,
		Status:         models.TransferStatusPending,
		Reason:         request.Reason,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("transfer_id", id).Info("создана заявка на перевод")
	i.audit.Log(actorID, models.AuditActionCreate, entityType, id,
		dbmodels.EntityChanges{Description: "перевод работника " + employee.EmployeeNo})
	return id, nil
}

func (i impl) Get(id string) (transferapimodels.TransferView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return transferapimodels.TransferView{}, err
	}
	if rec == nil {
		return transferapimodels.TransferView{}, errors.New("перевод не найден")
	}
	return convert(*rec), nil
}

func (i impl) List(filter transferapimodels.TransferFilter) (list []transferapimodels.TransferView, err error) {
	recList, err := i.store.List(store.Filter{
		EmployeeID: filter.EmployeeID,
		WorksiteID: filter.WorksiteID,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, err
	}
	list = make([]transferapimodels.TransferView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convert(rec))
	}
	return list, nil
}

func (i impl) Approve(actorID, id string) error {
	rec, err := i.requirePending(id)
	if err != nil {
		return err
	}
	if err = i.store.ApproveAndMove(*rec, actorID); err != nil {
		return err
	}
	log.WithField("transfer_id", id).
		WithField("to_worksite_id", rec.ToWorksiteID).
		Info("перевод одобрен")
	changes := dbmodels.EntityChanges{}
	changes.AddChange("status", string(models.TransferStatusPending), string(models.TransferStatusApproved))
	changes.AddChange("worksite_id", rec.FromWorksiteID, rec.ToWorksiteID)
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id, changes)
	return nil
}

func (i impl) Reject(actorID, id string, reason string) error {
	rec, err := i.requirePending(id)
	if err != nil {
		return err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":     models.TransferStatusRejected,
		"decided_by": actorID,
		"decided_at": &now,
	}
	if reason != "" {
		updMap["reason"] = reason
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{}
	changes.AddChange("status", string(rec.Status), string(models.TransferStatusRejected))
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id, changes)
	return nil
}

func (i impl) requirePending(id string) (*dbmodels.EmployeeSiteTransfer, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("перевод не найден")
	}
	if rec.Status != models.TransferStatusPending {
		return nil, errors.Errorf("перевод уже рассмотрен (статус %s)", rec.Status)
	}
	return rec, nil
}

func convert(rec dbmodels.EmployeeSiteTransfer) transferapimodels.TransferView {
	return transferapimodels.TransferView{
		ID:             rec.ID,
		EmployeeID:     rec.EmployeeID,
		FromWorksiteID: rec.FromWorksiteID,
		ToWorksiteID:   rec.ToWorksiteID,
		TransferDate:   rec.TransferDate,
		Status:         string(rec.Status),
		Reason:         rec.Reason,
		DecidedBy:      rec.DecidedBy,
		DecidedAt:      rec.DecidedAt,
	}
}

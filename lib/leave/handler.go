package leave

import (
	"time"
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/leave/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	leaveapimodels "workforce-backend/models/api/leave"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actorID string, request leaveapimodels.LeaveData) (id string, err error)
	Get(id string) (view leaveapimodels.LeaveView, err error)
	List(filter leaveapimodels.LeaveFilter) (list []leaveapimodels.LeaveView, err error)
	// Approve одобряет заявку, записи табеля при этом не создаются
	Approve(actorID, id string) error
	Reject(actorID, id string, comment string) error
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

const entityType = "LeaveRequest"

func (i impl) Create(actorID string, request leaveapimodels.LeaveData) (id string, err error) {
	rec := dbmodels.LeaveRequest{
		EmployeeID:  request.EmployeeID,
		LeaveTypeID: request.LeaveTypeID,
		DateFrom:    request.DateFrom,
		DateTo:      request.DateTo,
		Status:      models.LeaveStatusPending,
		Comment:     request.Comment,
	}
	overlap, err := i.store.HasOverlap(rec)
	if err != nil {
		return "", err
	}
	if overlap {
		return "", errors.New("период пересекается с одобренным отпуском")
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("leave_id", id).Info("создана заявка на отпуск")
	i.audit.Log(actorID, models.AuditActionCreate, entityType, id,
		dbmodels.EntityChanges{Description: "заявка на отпуск"})
	return id, nil
}

func (i impl) Get(id string) (leaveapimodels.LeaveView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return leaveapimodels.LeaveView{}, err
	}
	if rec == nil {
		return leaveapimodels.LeaveView{}, errors.New("заявка не найдена")
	}
	return convert(*rec), nil
}

func (i impl) List(filter leaveapimodels.LeaveFilter) (list []leaveapimodels.LeaveView, err error) {
	recList, err := i.store.List(store.Filter{
		EmployeeID: filter.EmployeeID,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, err
	}
	list = make([]leaveapimodels.LeaveView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convert(rec))
	}
	return list, nil
}

func (i impl) Approve(actorID, id string) error {
	return i.decide(actorID, id, models.LeaveStatusApproved, "")
}

func (i impl) Reject(actorID, id string, comment string) error {
	return i.decide(actorID, id, models.LeaveStatusRejected, comment)
}

func (i impl) decide(actorID, id string, status models.LeaveStatus, comment string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("заявка не найдена")
	}
	if rec.Status != models.LeaveStatusPending {
		return errors.Errorf("заявка уже рассмотрена (статус %s)", rec.Status)
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":     status,
		"decided_by": actorID,
		"decided_at": &now,
	}
	if comment != "" {
		updMap["comment"] = comment
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	changes := dbmodels.EntityChanges{}
	changes.AddChange("status", string(rec.Status), string(status))
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id, changes)
	return nil
}

func convert(rec dbmodels.LeaveRequest) leaveapimodels.LeaveView {
	return leaveapimodels.LeaveView{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		LeaveTypeID: rec.LeaveTypeID,
		DateFrom:    rec.DateFrom,
		DateTo:      rec.DateTo,
		Status:      string(rec.Status),
		Comment:     rec.Comment,
		DecidedBy:   rec.DecidedBy,
		DecidedAt:   rec.DecidedAt,
	}
}

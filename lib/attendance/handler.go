package attendance

import (
	"time"
	"workforce-backend/db"
	"workforce-backend/lib/attendance/store"
	"workforce-backend/lib/audit"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	attendanceapimodels "workforce-backend/models/api/attendance"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// SaveRecord создает или перезаписывает запись табеля,
	// период (объект, месяц) создается при первой записи
	SaveRecord(actorID string, request attendanceapimodels.RecordData) (id string, err error)
	DeleteRecord(actorID, id string) error
	ListRecords(filter attendanceapimodels.RecordFilter) (list []attendanceapimodels.RecordView, err error)

	GetPeriod(id string) (view attendanceapimodels.PeriodView, err error)
	ListPeriods(filter attendanceapimodels.PeriodFilter) (list []attendanceapimodels.PeriodView, err error)
	Submit(actorID, periodID string) error
	Approve(actorID, periodID string) error
	Lock(actorID, periodID string) error
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

const (
	periodEntityType = "AttendancePeriod"
	recordEntityType = "AttendanceRecord"
)

func (i impl) SaveRecord(actorID string, request attendanceapimodels.RecordData) (id string, err error) {
	if err = request.Validate(); err != nil {
		return "", err
	}
	attendanceType := models.AttendanceType(request.AttendanceType)
	periodMonth := request.Date.Format("2006-01")
	period, err := i.store.FindOrCreatePeriod(request.WorksiteID, periodMonth)
	if err != nil {
		return "", err
	}
	if period.Status != models.PeriodStatusOpen {
		return "", errors.Errorf("период %s закрыт для изменений (статус %s)", periodMonth, period.Status)
	}
	rec := dbmodels.AttendanceRecord{
		EmployeeID:     request.EmployeeID,
		PeriodID:       period.ID,
		WorksiteID:     request.WorksiteID,
		Date:           request.Date,
		AttendanceType: attendanceType,
		TotalHours:     request.TotalHours,
		OvertimeHours:  request.OvertimeHours,
		NightHours:     request.NightHours,
		Note:           request.Note,
	}
	id, err = i.store.UpsertRecord(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, recordEntityType, id,
		dbmodels.EntityChanges{Description: "запись табеля за " + request.Date.Format("2006-01-02")})
	return id, nil
}

func (i impl) DeleteRecord(actorID, id string) error {
	rec, err := i.store.GetRecord(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("запись табеля не найдена")
	}
	period, err := i.store.GetPeriod(rec.PeriodID)
	if err != nil {
		return err
	}
	if period != nil && period.Status != models.PeriodStatusOpen {
		return errors.Errorf("период %s закрыт для изменений (статус %s)", period.PeriodMonth, period.Status)
	}
	if err = i.store.DeleteRecord(id); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionDelete, recordEntityType, id, dbmodels.EntityChanges{})
	return nil
}

func (i impl) ListRecords(filter attendanceapimodels.RecordFilter) (list []attendanceapimodels.RecordView, err error) {
	if filter.PeriodMonth != "" {
		if err = attendanceapimodels.ValidatePeriodMonth(filter.PeriodMonth); err != nil {
			return nil, err
		}
	}
	recList, err := i.store.ListRecords(store.RecordFilter{
		WorksiteID:  filter.WorksiteID,
		EmployeeID:  filter.EmployeeID,
		PeriodMonth: filter.PeriodMonth,
	})
	if err != nil {
		return nil, err
	}
	list = make([]attendanceapimodels.RecordView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convertRecord(rec))
	}
	return list, nil
}

func (i impl) GetPeriod(id string) (attendanceapimodels.PeriodView, error) {
	rec, err := i.store.GetPeriod(id)
	if err != nil {
		return attendanceapimodels.PeriodView{}, err
	}
	if rec == nil {
		return attendanceapimodels.PeriodView{}, errors.New("период табеля не найден")
	}
	return convertPeriod(*rec), nil
}

func (i impl) ListPeriods(filter attendanceapimodels.PeriodFilter) (list []attendanceapimodels.PeriodView, err error) {
	recList, err := i.store.ListPeriods(store.PeriodFilter{
		WorksiteID:  filter.WorksiteID,
		PeriodMonth: filter.PeriodMonth,
		Status:      filter.Status,
	})
	if err != nil {
		return nil, err
	}
	list = make([]attendanceapimodels.PeriodView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convertPeriod(rec))
	}
	return list, nil
}

func (i impl) Submit(actorID, periodID string) error {
	now := time.Now()
	return i.transition(actorID, periodID, models.PeriodStatusSubmitted, map[string]interface{}{
		"submitted_by": actorID,
		"submitted_at": &now,
	})
}

func (i impl) Approve(actorID, periodID string) error {
	now := time.Now()
	return i.transition(actorID, periodID, models.PeriodStatusApproved, map[string]interface{}{
		"approved_by": actorID,
		"approved_at": &now,
	})
}

func (i impl) Lock(actorID, periodID string) error {
	return i.transition(actorID, periodID, models.PeriodStatusLocked, map[string]interface{}{})
}

func (i impl) transition(actorID, periodID string, next models.PeriodStatus, extra map[string]interface{}) error {
	period, err := i.store.GetPeriod(periodID)
	if err != nil {
		return err
	}
	if period == nil {
		return errors.New("период табеля не найден")
	}
	if !period.Status.CanTransition(next) {
		return errors.Errorf("недопустимый переход статуса периода: %s -> %s", period.Status, next)
	}
	updMap := map[string]interface{}{"status": next}
	for key, value := range extra {
		updMap[key] = value
	}
	if err = i.store.UpdatePeriod(periodID, updMap); err != nil {
		return err
	}
	log.WithField("period_id", periodID).
		WithField("status", next).
		Info("изменен статус периода табеля")
	changes := dbmodels.EntityChanges{}
	changes.AddChange("status", string(period.Status), string(next))
	i.audit.Log(actorID, models.AuditActionUpdate, periodEntityType, periodID, changes)
	return nil
}

func convertRecord(rec dbmodels.AttendanceRecord) attendanceapimodels.RecordView {
	return attendanceapimodels.RecordView{
		ID:                  rec.ID,
		EmployeeID:          rec.EmployeeID,
		PeriodID:            rec.PeriodID,
		WorksiteID:          rec.WorksiteID,
		Date:                rec.Date,
		AttendanceType:      string(rec.AttendanceType),
		AttendanceTypeHuman: rec.AttendanceType.ToHuman(),
		TotalHours:          rec.TotalHours,
		OvertimeHours:       rec.OvertimeHours,
		NightHours:          rec.NightHours,
		Note:                rec.Note,
	}
}

func convertPeriod(rec dbmodels.AttendancePeriod) attendanceapimodels.PeriodView {
	return attendanceapimodels.PeriodView{
		ID:          rec.ID,
		WorksiteID:  rec.WorksiteID,
		PeriodMonth: rec.PeriodMonth,
		Status:      string(rec.Status),
		SubmittedBy: rec.SubmittedBy,
		SubmittedAt: rec.SubmittedAt,
		ApprovedBy:  rec.ApprovedBy,
		ApprovedAt:  rec.ApprovedAt,
	}
}

package store

import (
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	// FindOrCreatePeriod возвращает период (объект, месяц),
	// при отсутствии создает его в статусе OPEN
	FindOrCreatePeriod(worksiteID, periodMonth string) (rec *dbmodels.AttendancePeriod, err error)
	GetPeriod(id string) (rec *dbmodels.AttendancePeriod, err error)
	FindPeriod(worksiteID, periodMonth string) (rec *dbmodels.AttendancePeriod, err error)
	ListPeriods(filter PeriodFilter) (list []dbmodels.AttendancePeriod, err error)
	UpdatePeriod(id string, updMap map[string]interface{}) error

	UpsertRecord(rec dbmodels.AttendanceRecord) (id string, err error)
	GetRecord(id string) (rec *dbmodels.AttendanceRecord, err error)
	ListRecords(filter RecordFilter) (list []dbmodels.AttendanceRecord, err error)
	// ListRecordsForMonth возвращает табель работника за месяц периода
	ListRecordsForMonth(employeeID, periodMonth string) (list []dbmodels.AttendanceRecord, err error)
	DeleteRecord(id string) error
}

type PeriodFilter struct {
	WorksiteID  string
	PeriodMonth string
	Status      string
}

type RecordFilter struct {
	WorksiteID  string
	EmployeeID  string
	PeriodID    string
	PeriodMonth string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) FindOrCreatePeriod(worksiteID, periodMonth string) (*dbmodels.AttendancePeriod, error) {
	existed, err := i.FindPeriod(worksiteID, periodMonth)
	if err != nil {
		return nil, err
	}
	if existed != nil {
		return existed, nil
	}
	rec := dbmodels.AttendancePeriod{
		WorksiteID:  worksiteID,
		PeriodMonth: periodMonth,
		Status:      models.PeriodStatusOpen,
	}
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "worksite_id"}, {Name: "period_month"}},
			DoNothing: true,
		}).
		Create(&rec).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания периода табеля")
	}
	return i.FindPeriod(worksiteID, periodMonth)
}

func (i impl) GetPeriod(id string) (*dbmodels.AttendancePeriod, error) {
	rec := dbmodels.AttendancePeriod{}
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

func (i impl) FindPeriod(worksiteID, periodMonth string) (*dbmodels.AttendancePeriod, error) {
	rec := dbmodels.AttendancePeriod{}
	err := i.db.
		Where("worksite_id = ? and period_month = ?", worksiteID, periodMonth).
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

func (i impl) ListPeriods(filter PeriodFilter) (list []dbmodels.AttendancePeriod, err error) {
	list = []dbmodels.AttendancePeriod{}
	tx := i.db.Model(dbmodels.AttendancePeriod{})
	if filter.WorksiteID != "" {
		tx = tx.Where("worksite_id = ?", filter.WorksiteID)
	}
	if filter.PeriodMonth != "" {
		tx = tx.Where("period_month = ?", filter.PeriodMonth)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Order("period_month desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdatePeriod(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.AttendancePeriod{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) UpsertRecord(rec dbmodels.AttendanceRecord) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"period_id", "worksite_id", "attendance_type",
				"total_hours", "overtime_hours", "night_hours", "note", "updated_at",
			}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	// при конфликте rec.ID содержит id из BeforeCreate,
	// а не id сохраненной строки
	stored := dbmodels.AttendanceRecord{}
	err = i.db.
		Where("employee_id = ? and date = ?", rec.EmployeeID, rec.Date).
		First(&stored).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка чтения записи табеля после сохранения")
	}
	return stored.ID, nil
}

func (i impl) GetRecord(id string) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
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

func (i impl) ListRecords(filter RecordFilter) (list []dbmodels.AttendanceRecord, err error) {
	list = []dbmodels.AttendanceRecord{}
	tx := i.db.Model(dbmodels.AttendanceRecord{})
	if filter.WorksiteID != "" {
		tx = tx.Where("worksite_id = ?", filter.WorksiteID)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.PeriodID != "" {
		tx = tx.Where("period_id = ?", filter.PeriodID)
	}
	if filter.PeriodMonth != "" {
		tx = tx.Where("period_id IN (?)", i.db.
			Model(dbmodels.AttendancePeriod{}).
			Select("id").
			Where("period_month = ?", filter.PeriodMonth))
	}
	err = tx.Order("date").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRecordsForMonth(employeeID, periodMonth string) (list []dbmodels.AttendanceRecord, err error) {
	return i.ListRecords(RecordFilter{EmployeeID: employeeID, PeriodMonth: periodMonth})
}

func (i impl) DeleteRecord(id string) error {
	return i.db.Where("id = ?", id).Delete(&dbmodels.AttendanceRecord{}).Error
}

package dbmodels

import (
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
)

// AttendancePeriod - месячный контейнер табеля по объекту,
// создается при первой записи табеля за (объект, месяц)
type AttendancePeriod struct {
	BaseModel
	WorksiteID  string              `gorm:"type:varchar(36);index;uniqueIndex:idx_period_site_month"`
	PeriodMonth string              `gorm:"type:varchar(7);uniqueIndex:idx_period_site_month"` // YYYY-MM
	Status      models.PeriodStatus `gorm:"type:varchar(20)"`
	SubmittedBy string              `gorm:"type:varchar(36)"`
	SubmittedAt *time.Time
	ApprovedBy  string              `gorm:"type:varchar(36)"`
	ApprovedAt  *time.Time
}

// AttendanceRecord - запись табеля, одна на работника и дату
type AttendanceRecord struct {
	BaseModel
	EmployeeID     string                `gorm:"type:varchar(36);index;uniqueIndex:idx_attendance_emp_date"`
	PeriodID       string                `gorm:"type:varchar(36);index"`
	WorksiteID     string                `gorm:"type:varchar(36);index"`
	Date           time.Time             `gorm:"type:date;uniqueIndex:idx_attendance_emp_date"`
	AttendanceType models.AttendanceType `gorm:"type:varchar(20)"`
	TotalHours     float64
	OvertimeHours  float64
	NightHours     float64
	Note           string `gorm:"type:varchar(500)"`
}

func (r AttendanceRecord) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if r.Date.IsZero() {
		return errors.New("не указана дата табеля")
	}
	if r.TotalHours < 0 || r.OvertimeHours < 0 || r.NightHours < 0 {
		return errors.New("часы не могут быть отрицательными")
	}
	if r.AttendanceType == "" {
		return errors.New("не указан тип явки")
	}
	return nil
}

package attendanceapimodels

import (
	"regexp"
	"time"

	"github.com/pkg/errors"
)

var periodMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidatePeriodMonth проверяет формат месяца YYYY-MM
func ValidatePeriodMonth(periodMonth string) error {
	if !periodMonthRe.MatchString(periodMonth) {
		return errors.Errorf("некорректный месяц периода (%s), ожидается YYYY-MM", periodMonth)
	}
	return nil
}

type RecordData struct {
	EmployeeID     string    `json:"employee_id"`
	WorksiteID     string    `json:"worksite_id"`
	Date           time.Time `json:"date"`
	AttendanceType string    `json:"attendance_type"`
	TotalHours     float64   `json:"total_hours"`
	OvertimeHours  float64   `json:"overtime_hours"`
	NightHours     float64   `json:"night_hours"`
	Note           string    `json:"note"`
}

func (r RecordData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if r.WorksiteID == "" {
		return errors.New("не указан объект")
	}
	if r.Date.IsZero() {
		return errors.New("не указана дата табеля")
	}
	if r.AttendanceType == "" {
		return errors.New("не указан тип явки")
	}
	return nil
}

type RecordView struct {
	ID                  string    `json:"id"`
	EmployeeID          string    `json:"employee_id"`
	PeriodID            string    `json:"period_id"`
	WorksiteID          string    `json:"worksite_id"`
	Date                time.Time `json:"date"`
	AttendanceType      string    `json:"attendance_type"`
	AttendanceTypeHuman string    `json:"attendance_type_human"`
	TotalHours          float64   `json:"total_hours"`
	OvertimeHours       float64   `json:"overtime_hours"`
	NightHours          float64   `json:"night_hours"`
	Note                string    `json:"note"`
}

type RecordFilter struct {
	WorksiteID  string `json:"worksite_id" query:"worksite_id"`
	EmployeeID  string `json:"employee_id" query:"employee_id"`
	PeriodMonth string `json:"period_month" query:"period_month"`
}

type PeriodView struct {
	ID          string     `json:"id"`
	WorksiteID  string     `json:"worksite_id"`
	PeriodMonth string     `json:"period_month"`
	Status      string     `json:"status"`
	SubmittedBy string     `json:"submitted_by,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ApprovedBy  string     `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
}

type PeriodFilter struct {
	WorksiteID  string `json:"worksite_id" query:"worksite_id"`
	PeriodMonth string `json:"period_month" query:"period_month"`
	Status      string `json:"status" query:"status"`
}

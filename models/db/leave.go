package dbmodels

import (
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
)

type LeaveRequest struct {
	BaseModel
	EmployeeID  string             `gorm:"type:varchar(36);index"`
	LeaveTypeID string             `gorm:"type:varchar(36)"`
	DateFrom    time.Time          `gorm:"type:date"`
	DateTo      time.Time          `gorm:"type:date"`
	Status      models.LeaveStatus `gorm:"type:varchar(20);index"`
	Comment     string             `gorm:"type:varchar(500)"`
	DecidedBy   string             `gorm:"type:varchar(36)"`
	DecidedAt   *time.Time
}

func (r LeaveRequest) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if r.LeaveTypeID == "" {
		return errors.New("не указан вид отпуска")
	}
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return errors.New("не указан период отпуска")
	}
	if r.DateTo.Before(r.DateFrom) {
		return errors.New("дата окончания раньше даты начала")
	}
	return nil
}

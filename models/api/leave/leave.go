package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type LeaveData struct {
	EmployeeID  string    `json:"employee_id"`
	LeaveTypeID string    `json:"leave_type_id"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	Comment     string    `json:"comment"`
}

func (r LeaveData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if r.LeaveTypeID == "" {
		return errors.New("не указан вид отпуска")
	}
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return errors.New("не указан период отпуска")
	}
	return nil
}

type LeaveView struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	LeaveTypeID string     `json:"leave_type_id"`
	DateFrom    time.Time  `json:"date_from"`
	DateTo      time.Time  `json:"date_to"`
	Status      string     `json:"status"`
	Comment     string     `json:"comment,omitempty"`
	DecidedBy   string     `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
}

type LeaveFilter struct {
	EmployeeID string `json:"employee_id" query:"employee_id"`
	Status     string `json:"status" query:"status"`
}

type RejectRequest struct {
	Comment string `json:"comment"`
}

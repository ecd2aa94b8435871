package transferapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type TransferData struct {
	EmployeeID   string    `json:"employee_id"`
	ToWorksiteID string    `json:"to_worksite_id"`
	TransferDate time.Time `json:"transfer_date"`
	Reason       string    `json:"reason"`
}

func (r TransferData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if r.ToWorksiteID == "" {
		return errors.New("не указан целевой объект")
	}
	return nil
}

type TransferView struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	FromWorksiteID string     `json:"from_worksite_id,omitempty"`
	ToWorksiteID   string     `json:"to_worksite_id"`
	TransferDate   time.Time  `json:"transfer_date"`
	Status         string     `json:"status"`
	Reason         string     `json:"reason,omitempty"`
	DecidedBy      string     `json:"decided_by,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
}

type TransferFilter struct {
	EmployeeID string `json:"employee_id" query:"employee_id"`
	WorksiteID string `json:"worksite_id" query:"worksite_id"`
	Status     string `json:"status" query:"status"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

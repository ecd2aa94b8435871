package dbmodels

import (
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
)

// EmployeeSiteTransfer - перевод работника между объектами.
// Одобрение переносит занятость на целевой объект
type EmployeeSiteTransfer struct {
	BaseModel
	EmployeeID     string                `gorm:"type:varchar(36);index"`
	FromWorksiteID string                `gorm:"type:varchar(36)"`
	ToWorksiteID   string                `gorm:"type:varchar(36)"`
	TransferDate   time.Time             `gorm:"type:date"`
	Status         models.TransferStatus `gorm:"type:varchar(20);index"`
	Reason         string                `gorm:"type:varchar(500)"`
	DecidedBy      string                `gorm:"type:varchar(36)"`
	DecidedAt      *time.Time
}

func (t EmployeeSiteTransfer) Validate() error {
	if t.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if t.ToWorksiteID == "" {
		return errors.New("не указан целевой объект")
	}
	if t.FromWorksiteID == t.ToWorksiteID {
		return errors.New("перевод на тот же объект недопустим")
	}
	return nil
}

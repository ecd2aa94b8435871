package dbmodels

import (
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
)

// AlertTrackedField - отслеживаемая дата для правил уведомлений
type AlertTrackedField string

const (
	AlertFieldDocumentExpiry  AlertTrackedField = "DOCUMENT_EXPIRY"
	AlertFieldWorkStatusValid AlertTrackedField = "WORK_STATUS_VALID_TO"
	AlertFieldPassportExpiry  AlertTrackedField = "PASSPORT_EXPIRY"
)

// AlertRule - пороги предупреждений по отслеживаемой дате
type AlertRule struct {
	BaseModel
	Name         string            `gorm:"type:varchar(255)"`
	TrackedField AlertTrackedField `gorm:"type:varchar(30);index"`
	WarningDays  int
	CriticalDays int
	NotifyEmail  string `gorm:"type:varchar(255)"`
	IsActive     bool   `gorm:"default:true"`
}

func (r AlertRule) Validate() error {
	if r.TrackedField == "" {
		return errors.New("не указано отслеживаемое поле")
	}
	if r.WarningDays < r.CriticalDays {
		return errors.New("порог предупреждения не может быть меньше критического")
	}
	return nil
}

// Alert - материализованное уведомление.
// Для пары (сущность, правило) существует не более одного открытого уведомления,
// повторная генерация обновляет важность и не трогает флаги прочтения
type Alert struct {
	BaseModel
	RuleID      string               `gorm:"type:varchar(36);index;uniqueIndex:idx_alert_rule_entity"`
	EntityType  string               `gorm:"type:varchar(50)"`
	EntityID    string               `gorm:"type:varchar(36);index;uniqueIndex:idx_alert_rule_entity"`
	EmployeeID  string               `gorm:"type:varchar(36);index"`
	Severity    models.AlertSeverity `gorm:"type:varchar(20)"`
	Message     string               `gorm:"type:varchar(500)"`
	DueDate     time.Time
	IsRead      bool
	IsDismissed bool
}

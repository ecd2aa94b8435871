package dbmodels

import (
	"workforce-backend/models"

	"github.com/pkg/errors"
)

// Worksite - строительный объект, основная единица учета
// для занятости, табелей и расчетных ведомостей
type Worksite struct {
	BaseModel
	Code         string                `gorm:"type:varchar(50);uniqueIndex"`
	Name         string                `gorm:"type:varchar(255)"`
	Address      string                `gorm:"type:varchar(500)"`
	Status       models.WorksiteStatus `gorm:"type:varchar(20)"`
	ManagerName  string                `gorm:"type:varchar(255)"`
	ManagerPhone string                `gorm:"type:varchar(20)"`
	IsActive     bool                  `gorm:"default:true"`
}

func (w Worksite) Validate() error {
	if w.Code == "" {
		return errors.New("не указан код объекта")
	}
	if w.Name == "" {
		return errors.New("не указано название объекта")
	}
	return nil
}

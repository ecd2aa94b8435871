package dbmodels

import (
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
)

type Asset struct {
	BaseModel
	CategoryID   string             `gorm:"type:varchar(36);index"`
	WorksiteID   string             `gorm:"type:varchar(36);index"`
	InventoryNo  string             `gorm:"type:varchar(50);uniqueIndex"`
	Name         string             `gorm:"type:varchar(255)"`
	SerialNumber string             `gorm:"type:varchar(100)"`
	Status       models.AssetStatus `gorm:"type:varchar(20)"`
}

func (a Asset) Validate() error {
	if a.InventoryNo == "" {
		return errors.New("не указан инвентарный номер")
	}
	if a.Name == "" {
		return errors.New("не указано название имущества")
	}
	return nil
}

// AssetAssignment - выдача имущества работнику,
// по каждому имуществу допускается одна незакрытая выдача
type AssetAssignment struct {
	BaseModel
	AssetID    string    `gorm:"type:varchar(36);index"`
	EmployeeID string    `gorm:"type:varchar(36);index"`
	IssuedAt   time.Time
	ReturnedAt *time.Time
	Note       string `gorm:"type:varchar(500)"`
}

package dbmodels

import (
	"github.com/pkg/errors"
)

// DictEntry - общая часть справочников,
// записи не удаляются пока на них есть ссылки, вместо этого снимается признак активности
type DictEntry struct {
	BaseModel
	Code     string `gorm:"type:varchar(50);uniqueIndex"`
	NameRu   string `gorm:"type:varchar(255)"`
	NameEn   string `gorm:"type:varchar(255)"`
	NameTr   string `gorm:"type:varchar(255)"`
	IsActive bool   `gorm:"default:true"`
}

func (d DictEntry) Validate() error {
	if d.Code == "" {
		return errors.New("не указан код записи справочника")
	}
	if d.NameRu == "" {
		return errors.New("не указано название записи справочника")
	}
	return nil
}

func (d DictEntry) NameByLocale(locale string) string {
	switch locale {
	case "en":
		if d.NameEn != "" {
			return d.NameEn
		}
	case "tr":
		if d.NameTr != "" {
			return d.NameTr
		}
	}
	return d.NameRu
}

type Nationality struct {
	DictEntry
}

type Profession struct {
	DictEntry
}

type Department struct {
	DictEntry
}

type Shift struct {
	DictEntry
	StartTime string `gorm:"type:varchar(5)"` // HH:MM
	EndTime   string `gorm:"type:varchar(5)"`
	NightWork bool
}

// DocumentType - вид документа, для истекающих видов задается срок предупреждения
type DocumentType struct {
	DictEntry
	HasExpiry        bool
	DefaultAlertDays int `gorm:"default:30"`
}

type LeaveType struct {
	DictEntry
	Paid bool
}

type AssetCategory struct {
	DictEntry
}

// DocumentRequirement - обязательные виды документов для статуса разрешения на работу
type DocumentRequirement struct {
	BaseModel
	WorkStatusType   string `gorm:"type:varchar(30);index"`
	DocumentTypeCode string `gorm:"type:varchar(50)"`
}

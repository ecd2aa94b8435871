package dictapimodels

import (
	"github.com/pkg/errors"
)

type DictData struct {
	Code   string `json:"code"`
	NameRu string `json:"name_ru"`
	NameEn string `json:"name_en"`
	NameTr string `json:"name_tr"`

	// поля смены
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	NightWork *bool  `json:"night_work,omitempty"`

	// поля вида документа
	HasExpiry        *bool `json:"has_expiry,omitempty"`
	DefaultAlertDays *int  `json:"default_alert_days,omitempty"`

	// поля вида отпуска
	Paid *bool `json:"paid,omitempty"`
}

func (r DictData) Validate() error {
	if r.Code == "" {
		return errors.New("не указан код записи")
	}
	if r.NameRu == "" {
		return errors.New("не указано название записи")
	}
	return nil
}

type DictView struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	NameRu   string `json:"name_ru"`
	NameEn   string `json:"name_en"`
	NameTr   string `json:"name_tr"`
	IsActive bool   `json:"is_active"`

	StartTime        string `json:"start_time,omitempty"`
	EndTime          string `json:"end_time,omitempty"`
	NightWork        bool   `json:"night_work,omitempty"`
	HasExpiry        bool   `json:"has_expiry,omitempty"`
	DefaultAlertDays int    `json:"default_alert_days,omitempty"`
	Paid             bool   `json:"paid,omitempty"`
}

package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"workforce-backend/models"
)

// EntityChanges - снимок изменений для журнала аудита
type EntityChanges struct {
	Description string         `json:"description"` // Комментарий
	Data        []FieldChanges `json:"data"`        // Список изменений
}

func (j *EntityChanges) AddChange(field string, oldValue, newValue any) {
	j.Data = append(j.Data, FieldChanges{Field: field, OldValue: oldValue, NewValue: newValue})
}

type FieldChanges struct {
	Field    string `json:"field"`     // Измененное поле
	OldValue any    `json:"old_value"` // Старое значение
	NewValue any    `json:"new_value"` // Новое значение
}

func (j EntityChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntityChanges) Scan(value any) error {
	switch data := value.(type) {
	case []byte:
		return json.Unmarshal(data, j)
	case string:
		return json.Unmarshal([]byte(data), j)
	}
	return nil
}

// AuditLog - запись журнала по каждой мутирующей операции
type AuditLog struct {
	BaseModel
	ActorID    string             `gorm:"type:varchar(36);index"`
	Action     models.AuditAction `gorm:"type:varchar(20);index"`
	EntityType string             `gorm:"type:varchar(50);index"`
	EntityID   string             `gorm:"type:varchar(36);index"`
	Changes    EntityChanges      `gorm:"type:jsonb"`
}

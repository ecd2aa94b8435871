package documentapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type DocumentData struct {
	EmployeeID     string     `json:"employee_id"`
	DocumentTypeID string     `json:"document_type_id"`
	Number         string     `json:"number"`
	IssuedAt       time.Time  `json:"issued_at"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

func (r DocumentData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if r.DocumentTypeID == "" {
		return errors.New("не указан вид документа")
	}
	return nil
}

type DocumentView struct {
	ID               string     `json:"id"`
	EmployeeID       string     `json:"employee_id"`
	DocumentTypeID   string     `json:"document_type_id"`
	DocumentTypeCode string     `json:"document_type_code,omitempty"`
	Number           string     `json:"number"`
	IssuedAt         time.Time  `json:"issued_at"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	IsVerified       bool       `json:"is_verified"`
	Status           string     `json:"status"`
	StatusHuman      string     `json:"status_human"`
	DaysLeft         *int       `json:"days_left,omitempty"`
	Files            []FileView `json:"files,omitempty"`
}

type FileView struct {
	ID          string    `json:"id"`
	VersionNo   int       `json:"version_no"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type DocumentFilter struct {
	EmployeeID string `json:"employee_id" query:"employee_id"`
	Status     string `json:"status" query:"status"`
}

// ComplianceView - сводка комплектности документов работника,
// недостающие виды считаются от требований правового статуса
type ComplianceView struct {
	EmployeeID   string         `json:"employee_id"`
	WorkStatus   string         `json:"work_status,omitempty"`
	RequiredDocs []string       `json:"required_docs"`
	MissingDocs  []string       `json:"missing_docs"`
	Documents    []DocumentView `json:"documents"`
}

type AlertRuleData struct {
	Name         string `json:"name"`
	TrackedField string `json:"tracked_field"`
	WarningDays  int    `json:"warning_days"`
	CriticalDays int    `json:"critical_days"`
	NotifyEmail  string `json:"notify_email"`
	IsActive     *bool  `json:"is_active"`
}

func (r AlertRuleData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название правила")
	}
	if r.TrackedField == "" {
		return errors.New("не указано отслеживаемое поле")
	}
	if r.WarningDays < 0 || r.CriticalDays < 0 {
		return errors.New("количество дней не может быть отрицательным")
	}
	if r.WarningDays < r.CriticalDays {
		return errors.New("warning_days не может быть меньше critical_days")
	}
	return nil
}

type AlertRuleView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TrackedField string `json:"tracked_field"`
	WarningDays  int    `json:"warning_days"`
	CriticalDays int    `json:"critical_days"`
	NotifyEmail  string `json:"notify_email,omitempty"`
	IsActive     bool   `json:"is_active"`
}

type AlertView struct {
	ID          string    `json:"id"`
	RuleID      string    `json:"rule_id"`
	EntityType  string    `json:"entity_type"`
	EntityID    string    `json:"entity_id"`
	EmployeeID  string    `json:"employee_id"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	DueDate     time.Time `json:"due_date"`
	IsRead      bool      `json:"is_read"`
	IsDismissed bool      `json:"is_dismissed"`
}

type AlertFilter struct {
	EmployeeID string `json:"employee_id" query:"employee_id"`
	Severity   string `json:"severity" query:"severity"`
	OnlyOpen   bool   `json:"only_open" query:"only_open"`
}

package dbmodels

import (
	"fmt"
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Employee - карточка работника.
// Табельный номер уникален и не меняется после создания
type Employee struct {
	BaseModel
	EmployeeNo    string                `gorm:"type:varchar(20);uniqueIndex"`
	LastName      string                `gorm:"type:varchar(150)"`
	FirstName     string                `gorm:"type:varchar(150)"`
	MiddleName    string                `gorm:"type:varchar(150)"`
	BirthDate     time.Time
	Gender        string                `gorm:"type:varchar(10)"`
	Status        models.EmployeeStatus `gorm:"type:varchar(20);index"`
	NationalityID string                `gorm:"type:varchar(36)"`
	ProfessionID  string                `gorm:"type:varchar(36)"`
	DepartmentID  string                `gorm:"type:varchar(36)"`
	PhoneNumber   string                `gorm:"type:varchar(20)"`

	Identity      *EmployeeIdentity      `gorm:"foreignKey:EmployeeID"`
	WorkStatus    *EmployeeWorkStatus    `gorm:"foreignKey:EmployeeID"`
	Employment    *EmployeeEmployment    `gorm:"foreignKey:EmployeeID"`
	SalaryProfile *EmployeeSalaryProfile `gorm:"foreignKey:EmployeeID"`
}

func (e Employee) GetFIO() string {
	if e.MiddleName == "" {
		return fmt.Sprintf("%s %s", e.LastName, e.FirstName)
	}
	return fmt.Sprintf("%s %s %s", e.LastName, e.FirstName, e.MiddleName)
}

func (e Employee) Validate() error {
	if e.LastName == "" || e.FirstName == "" {
		return errors.New("не указано имя работника")
	}
	return nil
}

type EmployeeIdentity struct {
	BaseModel
	EmployeeID     string    `gorm:"type:varchar(36);uniqueIndex"`
	PassportSeries string    `gorm:"type:varchar(10)"`
	PassportNumber string    `gorm:"type:varchar(20)"`
	PassportIssued string    `gorm:"type:varchar(255)"`
	PassportExpiry time.Time
	INN            string    `gorm:"type:varchar(12)"`
	SNILS          string    `gorm:"type:varchar(14)"`
}

// EmployeeWorkStatus - разрешение на работу.
// Тип статуса определяет обязательный набор документов (DocumentRequirement)
type EmployeeWorkStatus struct {
	BaseModel
	EmployeeID     string                `gorm:"type:varchar(36);uniqueIndex"`
	StatusType     models.WorkStatusType `gorm:"type:varchar(30)"`
	InstrumentNo   string                `gorm:"type:varchar(50)"`
	IssuedAt       time.Time
	ValidFrom      time.Time
	ValidTo        time.Time
	IssuingRegion  string                `gorm:"type:varchar(255)"`
}

type EmployeeEmployment struct {
	BaseModel
	EmployeeID string    `gorm:"type:varchar(36);uniqueIndex"`
	WorksiteID string    `gorm:"type:varchar(36);index"`
	Position   string    `gorm:"type:varchar(255)"`
	ShiftID    string    `gorm:"type:varchar(36)"`
	HireDate   time.Time
	EndDate    *time.Time
}

// EmployeeSalaryProfile - параметры оплаты.
// TaxStatus - единственный источник ставки НДФЛ при расчете
type EmployeeSalaryProfile struct {
	BaseModel
	EmployeeID         string             `gorm:"type:varchar(36);uniqueIndex"`
	PaymentType        models.PaymentType `gorm:"type:varchar(20)"`
	SalaryBasis        models.SalaryBasis `gorm:"type:varchar(10);default:'GROSS'"`
	MonthlySalary      decimal.Decimal    `gorm:"type:numeric(14,2)"`
	DailyRate          decimal.Decimal    `gorm:"type:numeric(14,2)"`
	HourlyRate         decimal.Decimal    `gorm:"type:numeric(14,2)"`
	PieceRate          decimal.Decimal    `gorm:"type:numeric(14,2)"`
	OvertimeMultiplier decimal.Decimal    `gorm:"type:numeric(5,2);default:1.5"`
	NightMultiplier    decimal.Decimal    `gorm:"type:numeric(5,2);default:1.2"`
	HolidayMultiplier  decimal.Decimal    `gorm:"type:numeric(5,2);default:2"`
	TaxStatus          models.TaxStatus   `gorm:"type:varchar(20);default:'RESIDENT'"`
}

func (p EmployeeSalaryProfile) Validate() error {
	switch p.PaymentType {
	case models.PaymentTypeMonthly:
		if p.MonthlySalary.IsZero() {
			return errors.New("не указан месячный оклад")
		}
	case models.PaymentTypeDaily:
		if p.DailyRate.IsZero() {
			return errors.New("не указана дневная ставка")
		}
	case models.PaymentTypeHourly:
		if p.HourlyRate.IsZero() {
			return errors.New("не указана часовая ставка")
		}
	case models.PaymentTypePieceRate:
		if p.PieceRate.IsZero() {
			return errors.New("не указана сдельная ставка")
		}
	default:
		return errors.Errorf("неизвестный тип оплаты (%v)", p.PaymentType)
	}
	return nil
}

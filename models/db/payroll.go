package dbmodels

import (
	"time"
	"workforce-backend/models"

	"github.com/shopspring/decimal"
)

// PayrollRun - расчетная ведомость за месяц по объекту
// (или по всем объектам, если WorksiteID пуст)
type PayrollRun struct {
	BaseModel
	WorksiteID  string               `gorm:"type:varchar(36);index"`
	PeriodMonth string               `gorm:"type:varchar(7);index"` // YYYY-MM
	Status      models.PayrollStatus `gorm:"type:varchar(20)"`
	TotalGross  decimal.Decimal      `gorm:"type:numeric(16,2)"`
	TotalNet    decimal.Decimal      `gorm:"type:numeric(16,2)"`
	TotalTax    decimal.Decimal      `gorm:"type:numeric(16,2)"`
	ApprovedBy  string               `gorm:"type:varchar(36)"`
	ApprovedAt  *time.Time

	Items []PayrollItem `gorm:"foreignKey:RunID"`
}

// PayrollItem - строка ведомости по работнику
type PayrollItem struct {
	BaseModel
	RunID            string          `gorm:"type:varchar(36);index;uniqueIndex:idx_payroll_run_emp"`
	EmployeeID       string          `gorm:"type:varchar(36);index;uniqueIndex:idx_payroll_run_emp"`
	WorkedDays       int
	WorkedHours      float64
	OvertimeHours    float64
	NightHours       float64
	HolidayHours     float64
	BaseAmount       decimal.Decimal `gorm:"type:numeric(14,2)"`
	OvertimeAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	NightAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	HolidayAmount    decimal.Decimal `gorm:"type:numeric(14,2)"`
	EarningsAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	GrossAmount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	TaxAmount        decimal.Decimal `gorm:"type:numeric(14,2)"`
	DeductionsAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	ManualAdjustment decimal.Decimal `gorm:"type:numeric(14,2)"`
	NetAmount        decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// PayrollEarning - разовое начисление работнику,
// попадает в ведомость указанного месяца после одобрения
type PayrollEarning struct {
	BaseModel
	EmployeeID  string          `gorm:"type:varchar(36);index"`
	PeriodMonth string          `gorm:"type:varchar(7);index"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Reason      string          `gorm:"type:varchar(255)"`
	Approved    bool
}

// PayrollDeduction - удержание из ведомости месяца
type PayrollDeduction struct {
	BaseModel
	EmployeeID  string          `gorm:"type:varchar(36);index"`
	PeriodMonth string          `gorm:"type:varchar(7);index"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2)"`
	Reason      string          `gorm:"type:varchar(255)"`
	Approved    bool
}

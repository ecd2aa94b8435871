package payrollapimodels

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type RunData struct {
	WorksiteID  string `json:"worksite_id"` // пусто - по всем объектам
	PeriodMonth string `json:"period_month"`
}

type RunFilter struct {
	WorksiteID  string `json:"worksite_id" query:"worksite_id"`
	PeriodMonth string `json:"period_month" query:"period_month"`
	Status      string `json:"status" query:"status"`
}

type RunView struct {
	ID          string          `json:"id"`
	WorksiteID  string          `json:"worksite_id,omitempty"`
	PeriodMonth string          `json:"period_month"`
	Status      string          `json:"status"`
	TotalGross  decimal.Decimal `json:"total_gross"`
	TotalNet    decimal.Decimal `json:"total_net"`
	TotalTax    decimal.Decimal `json:"total_tax"`
	ApprovedBy  string          `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time      `json:"approved_at,omitempty"`
	Items       []ItemView      `json:"items,omitempty"`
}

type ItemView struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	WorkedDays       int             `json:"worked_days"`
	WorkedHours      float64         `json:"worked_hours"`
	OvertimeHours    float64         `json:"overtime_hours"`
	NightHours       float64         `json:"night_hours"`
	HolidayHours     float64         `json:"holiday_hours"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	OvertimeAmount   decimal.Decimal `json:"overtime_amount"`
	NightAmount      decimal.Decimal `json:"night_amount"`
	HolidayAmount    decimal.Decimal `json:"holiday_amount"`
	EarningsAmount   decimal.Decimal `json:"earnings_amount"`
	GrossAmount      decimal.Decimal `json:"gross_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	DeductionsAmount decimal.Decimal `json:"deductions_amount"`
	ManualAdjustment decimal.Decimal `json:"manual_adjustment"`
	NetAmount        decimal.Decimal `json:"net_amount"`
}

// EarningData - разовое начисление или удержание работнику за месяц
type EarningData struct {
	EmployeeID  string          `json:"employee_id"`
	PeriodMonth string          `json:"period_month"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
}

func (r EarningData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	if !r.Amount.IsPositive() {
		return errors.New("сумма должна быть положительной")
	}
	return nil
}

type EarningView struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	PeriodMonth string          `json:"period_month"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	Approved    bool            `json:"approved"`
}

// AdjustmentData - ручная корректировка строки ведомости,
// сумма может быть отрицательной
type AdjustmentData struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

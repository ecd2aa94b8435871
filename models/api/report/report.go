package reportapimodels

import (
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type ExportRequest struct {
	ReportType string        `json:"report_type"`
	Locale     string        `json:"locale"`
	Filters    ExportFilters `json:"filters"`
}

type ExportFilters struct {
	WorksiteID  string `json:"worksite_id"`
	PeriodMonth string `json:"period_month"`
	Status      string `json:"status"`
	// горизонт в днях для выгрузки истекающих документов
	DaysAhead int `json:"days_ahead"`
}

func (r ExportRequest) Validate() error {
	if !models.ReportType(r.ReportType).IsValid() {
		return errors.Errorf("неизвестный тип отчета (%s)", r.ReportType)
	}
	return nil
}

type EmployeeRow struct {
	EmployeeNo string
	FIO        string
	Status     string
	Worksite   string
	Position   string
	Phone      string
}

type AttendanceRow struct {
	EmployeeNo    string
	FIO           string
	PeriodMonth   string
	WorkedDays    int
	TotalHours    float64
	OvertimeHours float64
	NightHours    float64
}

type PayrollRow struct {
	EmployeeNo  string
	FIO         string
	PeriodMonth string
	Gross       decimal.Decimal
	Tax         decimal.Decimal
	Net         decimal.Decimal
}

type ExpiringDocRow struct {
	EmployeeNo   string
	FIO          string
	DocumentType string
	Number       string
	ExpiryDate   time.Time
	DaysLeft     int
	Status       string
}

type AssetRow struct {
	InventoryNo string
	Name        string
	Worksite    string
	Status      string
	AssignedTo  string
}

type TransferRow struct {
	EmployeeNo   string
	FIO          string
	FromWorksite string
	ToWorksite   string
	TransferDate time.Time
	Status       string
}

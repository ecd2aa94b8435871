package models

// ReportType - закрытый набор выгрузок в xlsx
type ReportType string

const (
	ReportEmployeeList      ReportType = "EMPLOYEE_LIST"
	ReportAttendanceSummary ReportType = "ATTENDANCE_SUMMARY"
	ReportPayrollSummary    ReportType = "PAYROLL_SUMMARY"
	ReportExpiringDocuments ReportType = "EXPIRING_DOCUMENTS"
	ReportAssetSummary      ReportType = "ASSET_SUMMARY"
	ReportTransferHistory   ReportType = "TRANSFER_HISTORY"
)

func (r ReportType) IsValid() bool {
	switch r {
	case ReportEmployeeList, ReportAttendanceSummary, ReportPayrollSummary,
		ReportExpiringDocuments, ReportAssetSummary, ReportTransferHistory:
		return true
	}
	return false
}

// Locale выгрузки, определяет язык заголовков таблиц
type Locale string

const (
	LocaleRu Locale = "ru"
	LocaleEn Locale = "en"
	LocaleTr Locale = "tr"
)

func (l Locale) OrDefault() Locale {
	switch l {
	case LocaleRu, LocaleEn, LocaleTr:
		return l
	}
	return LocaleRu
}

package xlsexport

import "workforce-backend/models"

// заголовки колонок по типу отчета и языку выгрузки
var reportHeaders = map[models.ReportType]map[models.Locale][]string{
	models.ReportEmployeeList: {
		models.LocaleRu: {"Табельный номер", "ФИО", "Статус", "Объект", "Должность", "Телефон"},
		models.LocaleEn: {"Employee No", "Full name", "Status", "Worksite", "Position", "Phone"},
		models.LocaleTr: {"Sicil No", "Ad Soyad", "Durum", "Şantiye", "Görev", "Telefon"},
	},
	models.ReportAttendanceSummary: {
		models.LocaleRu: {"Табельный номер", "ФИО", "Месяц", "Отработано дней", "Часы", "Сверхурочные", "Ночные"},
		models.LocaleEn: {"Employee No", "Full name", "Month", "Worked days", "Hours", "Overtime", "Night"},
		models.LocaleTr: {"Sicil No", "Ad Soyad", "Ay", "Çalışılan gün", "Saat", "Fazla mesai", "Gece"},
	},
	models.ReportPayrollSummary: {
		models.LocaleRu: {"Табельный номер", "ФИО", "Месяц", "Начислено", "НДФЛ", "К выплате"},
		models.LocaleEn: {"Employee No", "Full name", "Month", "Gross", "Tax", "Net"},
		models.LocaleTr: {"Sicil No", "Ad Soyad", "Ay", "Brüt", "Vergi", "Net"},
	},
	models.ReportExpiringDocuments: {
		models.LocaleRu: {"Табельный номер", "ФИО", "Документ", "Номер", "Действует до", "Осталось дней", "Статус"},
		models.LocaleEn: {"Employee No", "Full name", "Document", "Number", "Valid until", "Days left", "Status"},
		models.LocaleTr: {"Sicil No", "Ad Soyad", "Belge", "Numara", "Geçerlilik", "Kalan gün", "Durum"},
	},
	models.ReportAssetSummary: {
		models.LocaleRu: {"Инвентарный номер", "Название", "Объект", "Статус", "Выдано"},
		models.LocaleEn: {"Inventory No", "Name", "Worksite", "Status", "Assigned to"},
		models.LocaleTr: {"Envanter No", "Ad", "Şantiye", "Durum", "Zimmetli"},
	},
	models.ReportTransferHistory: {
		models.LocaleRu: {"Табельный номер", "ФИО", "Откуда", "Куда", "Дата", "Статус"},
		models.LocaleEn: {"Employee No", "Full name", "From", "To", "Date", "Status"},
		models.LocaleTr: {"Sicil No", "Ad Soyad", "Nereden", "Nereye", "Tarih", "Durum"},
	},
}

var sheetNames = map[models.ReportType]string{
	models.ReportEmployeeList:      "Работники",
	models.ReportAttendanceSummary: "Табель",
	models.ReportPayrollSummary:    "Зарплата",
	models.ReportExpiringDocuments: "Документы",
	models.ReportAssetSummary:      "Имущество",
	models.ReportTransferHistory:   "Переводы",
}

// Headers возвращает заголовки отчета на выбранном языке
func Headers(reportType models.ReportType, locale models.Locale) []string {
	return reportHeaders[reportType][locale.OrDefault()]
}

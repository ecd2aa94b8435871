package xlsexport

import (
	"bytes"
	"workforce-backend/models"
	reportapimodels "workforce-backend/models/api/report"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportEmployeeList(list []reportapimodels.EmployeeRow, locale models.Locale) (*bytes.Buffer, error)
	ExportAttendanceSummary(list []reportapimodels.AttendanceRow, locale models.Locale) (*bytes.Buffer, error)
	ExportPayrollSummary(list []reportapimodels.PayrollRow, locale models.Locale) (*bytes.Buffer, error)
	ExportExpiringDocuments(list []reportapimodels.ExpiringDocRow, locale models.Locale) (*bytes.Buffer, error)
	ExportAssetSummary(list []reportapimodels.AssetRow, locale models.Locale) (*bytes.Buffer, error)
	ExportTransferHistory(list []reportapimodels.TransferRow, locale models.Locale) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const dateFormat = "02.01.2006"

func (i impl) ExportEmployeeList(list []reportapimodels.EmployeeRow, locale models.Locale) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.EmployeeNo, item.FIO, item.Status, item.Worksite, item.Position, item.Phone,
		})
	}
	return exportSheet(models.ReportEmployeeList, locale, rows)
}

func (i impl) ExportAttendanceSummary(list []reportapimodels.AttendanceRow, locale models.Locale) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.EmployeeNo, item.FIO, item.PeriodMonth,
			item.WorkedDays, item.TotalHours, item.OvertimeHours, item.NightHours,
		})
	}
	return exportSheet(models.ReportAttendanceSummary, locale, rows)
}

func (i impl) ExportPayrollSummary(list []reportapimodels.PayrollRow, locale models.Locale) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		gross, _ := item.Gross.Float64()
		tax, _ := item.Tax.Float64()
		net, _ := item.Net.Float64()
		rows = append(rows, []interface{}{
			item.EmployeeNo, item.FIO, item.PeriodMonth, gross, tax, net,
		})
	}
	return exportSheet(models.ReportPayrollSummary, locale, rows)
}

func (i impl) ExportExpiringDocuments(list []reportapimodels.ExpiringDocRow, locale models.Locale) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.EmployeeNo, item.FIO, item.DocumentType, item.Number,
			item.ExpiryDate.Format(dateFormat), item.DaysLeft, item.Status,
		})
	}
	return exportSheet(models.ReportExpiringDocuments, locale, rows)
}

func (i impl) ExportAssetSummary(list []reportapimodels.AssetRow, locale models.Locale) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.InventoryNo, item.Name, item.Worksite, item.Status, item.AssignedTo,
		})
	}
	return exportSheet(models.ReportAssetSummary, locale, rows)
}

func (i impl) ExportTransferHistory(list []reportapimodels.TransferRow, locale models.Locale) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(list))
	for _, item := range list {
		rows = append(rows, []interface{}{
			item.EmployeeNo, item.FIO, item.FromWorksite, item.ToWorksite,
			item.TransferDate.Format(dateFormat), item.Status,
		})
	}
	return exportSheet(models.ReportTransferHistory, locale, rows)
}

func exportSheet(reportType models.ReportType, locale models.Locale, rows [][]interface{}) (*bytes.Buffer, error) {
	headers := Headers(reportType, locale)
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, headers)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(rows) != 0 {
		if err = writeDataRows(f, sheet, rows, len(headers), row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, sheetNames[reportType])
	return f.WriteToBuffer()
}

func writeDataRows(f *excelize.File, sheet string, rows [][]interface{}, colCount, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, colCount, len(rows)+1); err != nil {
		return err
	}
	for _, values := range rows {
		row++
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}

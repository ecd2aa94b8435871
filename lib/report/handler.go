package report

import (
	"bytes"
	"fmt"
	"time"
	"workforce-backend/db"
	assetstore "workforce-backend/lib/asset/store"
	attendancestore "workforce-backend/lib/attendance/store"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/compliance"
	compliancestore "workforce-backend/lib/compliance/store"
	employeestore "workforce-backend/lib/employee/store"
	xlsexport "workforce-backend/lib/export/xls"
	payrollstore "workforce-backend/lib/payroll/store"
	transferstore "workforce-backend/lib/transfer/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	worksitestore "workforce-backend/lib/worksite/store"
	"workforce-backend/models"
	reportapimodels "workforce-backend/models/api/report"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Export формирует xlsx по закрытому набору типов отчетов
	Export(actorID string, request reportapimodels.ExportRequest) (content *bytes.Buffer, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		exporter:   xlsexport.Instance,
		employees:  employeestore.NewInstance(db.DB),
		worksites:  worksitestore.NewInstance(db.DB),
		attendance: attendancestore.NewInstance(db.DB),
		payroll:    payrollstore.NewInstance(db.DB),
		documents:  compliancestore.NewInstance(db.DB),
		assets:     assetstore.NewInstance(db.DB),
		transfers:  transferstore.NewInstance(db.DB),
		audit:      audit.Instance,
	}
	initchecker.CheckInit(
		"exporter", instance.exporter,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	exporter   xlsexport.Provider
	employees  employeestore.Provider
	worksites  worksitestore.Provider
	attendance attendancestore.Provider
	payroll    payrollstore.Provider
	documents  compliancestore.Provider
	assets     assetstore.Provider
	transfers  transferstore.Provider
	audit      audit.Provider
}

const listLimit = 100000

func (i impl) Export(actorID string, request reportapimodels.ExportRequest) (*bytes.Buffer, string, error) {
	if err := request.Validate(); err != nil {
		return nil, "", err
	}
	reportType := models.ReportType(request.ReportType)
	locale := models.Locale(request.Locale).OrDefault()
	var content *bytes.Buffer
	var err error
	switch reportType {
	case models.ReportEmployeeList:
		content, err = i.exportEmployees(request.Filters, locale)
	case models.ReportAttendanceSummary:
		content, err = i.exportAttendance(request.Filters, locale)
	case models.ReportPayrollSummary:
		content, err = i.exportPayroll(request.Filters, locale)
	case models.ReportExpiringDocuments:
		content, err = i.exportExpiringDocuments(request.Filters, locale)
	case models.ReportAssetSummary:
		content, err = i.exportAssets(request.Filters, locale)
	case models.ReportTransferHistory:
		content, err = i.exportTransfers(request.Filters, locale)
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "ошибка формирования отчета %s", reportType)
	}
	fileName := fmt.Sprintf("%s_%s.xlsx", reportType, time.Now().Format("2006-01-02"))
	log.WithField("report_type", reportType).Info("сформирован отчет")
	i.audit.Log(actorID, models.AuditActionExport, "Report", string(reportType),
		dbmodels.EntityChanges{Description: fileName})
	return content, fileName, nil
}

func (i impl) worksiteNames() (map[string]string, error) {
	list, err := i.worksites.List(false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(list))
	for _, rec := range list {
		names[rec.ID] = rec.Name
	}
	return names, nil
}

func (i impl) listEmployees(worksiteID string) ([]dbmodels.Employee, error) {
	return i.employees.List(employeestore.Filter{WorksiteID: worksiteID}, 1, listLimit)
}

func (i impl) employeeIndex() (map[string]dbmodels.Employee, error) {
	list, err := i.listEmployees("")
	if err != nil {
		return nil, err
	}
	index := make(map[string]dbmodels.Employee, len(list))
	for _, rec := range list {
		index[rec.ID] = rec
	}
	return index, nil
}

func (i impl) exportEmployees(filters reportapimodels.ExportFilters, locale models.Locale) (*bytes.Buffer, error) {
	employees, err := i.listEmployees(filters.WorksiteID)
	if err != nil {
		return nil, err
	}
	worksites, err := i.worksiteNames()
	if err != nil {
		return nil, err
	}
	rows := make([]reportapimodels.EmployeeRow, 0, len(employees))
	for _, employee := range employees {
		if filters.Status != "" && string(employee.Status) != filters.Status {
			continue
		}
		row := reportapimodels.EmployeeRow{
			EmployeeNo: employee.EmployeeNo,
			FIO:        employee.GetFIO(),
			Status:     employee.Status.ToHuman(),
			Phone:      employee.PhoneNumber,
		}
		if employee.Employment != nil {
			row.Worksite = worksites[employee.Employment.WorksiteID]
			row.Position = employee.Employment.Position
		}
		rows = append(rows, row)
	}
	return i.exporter.ExportEmployeeList(rows, locale)
}

func (i impl) exportAttendance(filters reportapimodels.ExportFilters, locale models.Locale) (*bytes.Buffer, error) {
	records, err := i.attendance.ListRecords(attendancestore.RecordFilter{
		WorksiteID:  filters.WorksiteID,
		PeriodMonth: filters.PeriodMonth,
	})
	if err != nil {
		return nil, err
	}
	employees, err := i.employeeIndex()
	if err != nil {
		return nil, err
	}
	// свертка записей по работнику
	byEmployee := map[string]*reportapimodels.AttendanceRow{}
	order := []string{}
	for _, rec := range records {
		row, exist := byEmployee[rec.EmployeeID]
		if !exist {
			employee := employees[rec.EmployeeID]
			row = &reportapimodels.AttendanceRow{
				EmployeeNo:  employee.EmployeeNo,
				FIO:         employee.GetFIO(),
				PeriodMonth: rec.Date.Format("2006-01"),
			}
			byEmployee[rec.EmployeeID] = row
			order = append(order, rec.EmployeeID)
		}
		if rec.TotalHours > 0 {
			row.WorkedDays++
		}
		row.TotalHours += rec.TotalHours
		row.OvertimeHours += rec.OvertimeHours
		row.NightHours += rec.NightHours
	}
	rows := make([]reportapimodels.AttendanceRow, 0, len(order))
	for _, employeeID := range order {
		rows = append(rows, *byEmployee[employeeID])
	}
	return i.exporter.ExportAttendanceSummary(rows, locale)
}

func (i impl) exportPayroll(filters reportapimodels.ExportFilters, locale models.Locale) (*bytes.Buffer, error) {
	runs, err := i.payroll.ListRuns(payrollstore.RunFilter{
		WorksiteID:  filters.WorksiteID,
		PeriodMonth: filters.PeriodMonth,
		Status:      filters.Status,
	})
	if err != nil {
		return nil, err
	}
	employees, err := i.employeeIndex()
	if err != nil {
		return nil, err
	}
	rows := []reportapimodels.PayrollRow{}
	for _, runHead := range runs {
		run, getErr := i.payroll.GetRun(runHead.ID)
		if getErr != nil {
			return nil, getErr
		}
		if run == nil {
			continue
		}
		for _, item := range run.Items {
			employee := employees[item.EmployeeID]
			rows = append(rows, reportapimodels.PayrollRow{
				EmployeeNo:  employee.EmployeeNo,
				FIO:         employee.GetFIO(),
				PeriodMonth: run.PeriodMonth,
				Gross:       item.GrossAmount,
				Tax:         item.TaxAmount,
				Net:         item.NetAmount,
			})
		}
	}
	return i.exporter.ExportPayrollSummary(rows, locale)
}

func (i impl) exportExpiringDocuments(filters reportapimodels.ExportFilters, locale models.Locale) (*bytes.Buffer, error) {
	daysAhead := filters.DaysAhead
	if daysAhead <= 0 {
		daysAhead = 60
	}
	now := time.Now()
	documents, err := i.documents.ListExpiring(now.AddDate(0, 0, daysAhead))
	if err != nil {
		return nil, err
	}
	employees, err := i.employeeIndex()
	if err != nil {
		return nil, err
	}
	rows := make([]reportapimodels.ExpiringDocRow, 0, len(documents))
	for _, doc := range documents {
		employee := employees[doc.EmployeeID]
		docType := dbmodels.DocumentType{}
		if doc.DocumentType != nil {
			docType = *doc.DocumentType
		}
		status, _ := compliance.ClassifyDocument(doc, docType, now)
		rows = append(rows, reportapimodels.ExpiringDocRow{
			EmployeeNo:   employee.EmployeeNo,
			FIO:          employee.GetFIO(),
			DocumentType: docType.NameByLocale(string(locale)),
			Number:       doc.Number,
			ExpiryDate:   *doc.ExpiryDate,
			DaysLeft:     compliance.DaysLeft(*doc.ExpiryDate, now),
			Status:       status.ToHuman(),
		})
	}
	return i.exporter.ExportExpiringDocuments(rows, locale)
}

func (i impl) exportAssets(filters reportapimodels.ExportFilters, locale models.Locale) (*bytes.Buffer, error) {
	assets, err := i.assets.List(assetstore.Filter{
		WorksiteID: filters.WorksiteID,
		Status:     filters.Status,
	})
	if err != nil {
		return nil, err
	}
	worksites, err := i.worksiteNames()
	if err != nil {
		return nil, err
	}
	employees, err := i.employeeIndex()
	if err != nil {
		return nil, err
	}
	rows := make([]reportapimodels.AssetRow, 0, len(assets))
	for _, asset := range assets {
		row := reportapimodels.AssetRow{
			InventoryNo: asset.InventoryNo,
			Name:        asset.Name,
			Worksite:    worksites[asset.WorksiteID],
			Status:      string(asset.Status),
		}
		if asset.Status == models.AssetStatusAssigned {
			assignment, assignErr := i.assets.ActiveAssignment(asset.ID)
			if assignErr != nil {
				return nil, assignErr
			}
			if assignment != nil {
				row.AssignedTo = employees[assignment.EmployeeID].GetFIO()
			}
		}
		rows = append(rows, row)
	}
	return i.exporter.ExportAssetSummary(rows, locale)
}

func (i impl) exportTransfers(filters reportapimodels.ExportFilters, locale models.Locale) (*bytes.Buffer, error) {
	transfers, err := i.transfers.List(transferstore.Filter{
		WorksiteID: filters.WorksiteID,
		Status:     filters.Status,
	})
	if err != nil {
		return nil, err
	}
	worksites, err := i.worksiteNames()
	if err != nil {
		return nil, err
	}
	employees, err := i.employeeIndex()
	if err != nil {
		return nil, err
	}
	rows := make([]reportapimodels.TransferRow, 0, len(transfers))
	for _, rec := range transfers {
		employee := employees[rec.EmployeeID]
		rows = append(rows, reportapimodels.TransferRow{
			EmployeeNo:   employee.EmployeeNo,
			FIO:          employee.GetFIO(),
			FromWorksite: worksites[rec.FromWorksiteID],
			ToWorksite:   worksites[rec.ToWorksiteID],
			TransferDate: rec.TransferDate,
			Status:       string(rec.Status),
		})
	}
	return i.exporter.ExportTransferHistory(rows, locale)
}

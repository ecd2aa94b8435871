package payroll

import (
	"time"
	"workforce-backend/config"
	"workforce-backend/db"
	attendancestore "workforce-backend/lib/attendance/store"
	"workforce-backend/lib/audit"
	employeestore "workforce-backend/lib/employee/store"
	"workforce-backend/lib/payroll/calc"
	"workforce-backend/lib/payroll/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	attendanceapimodels "workforce-backend/models/api/attendance"
	payrollapimodels "workforce-backend/models/api/payroll"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CreateRun(actorID string, request payrollapimodels.RunData) (id string, err error)
	GetRun(id string) (view payrollapimodels.RunView, err error)
	ListRuns(filter payrollapimodels.RunFilter) (list []payrollapimodels.RunView, err error)
	// Calculate пересчитывает ведомость: строки прошлого расчета
	// удаляются, итоги собираются заново из табеля.
	// Ручные корректировки строк переносятся в новый расчет
	Calculate(actorID, runID string) error
	// SetAdjustment задает ручную корректировку строки ведомости,
	// доступно до утверждения ведомости
	SetAdjustment(actorID, itemID string, request payrollapimodels.AdjustmentData) error
	Approve(actorID, runID string) error
	MarkPaid(actorID, runID string) error
	Lock(actorID, runID string) error

	AddEarning(actorID string, request payrollapimodels.EarningData) (id string, err error)
	AddDeduction(actorID string, request payrollapimodels.EarningData) (id string, err error)
	ApproveEarning(actorID, id string) error
	ApproveDeduction(actorID, id string) error
	ListEarnings(employeeID, periodMonth string) (list []payrollapimodels.EarningView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:      store.NewInstance(db.DB),
		employees:  employeestore.NewInstance(db.DB),
		attendance: attendancestore.NewInstance(db.DB),
		audit:      audit.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"employees", instance.employees,
		"attendance", instance.attendance,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store      store.Provider
	employees  employeestore.Provider
	attendance attendancestore.Provider
	audit      audit.Provider
}

const entityType = "PayrollRun"

func (i impl) CreateRun(actorID string, request payrollapimodels.RunData) (id string, err error) {
	if err = attendanceapimodels.ValidatePeriodMonth(request.PeriodMonth); err != nil {
		return "", err
	}
	rec := dbmodels.PayrollRun{
		WorksiteID:  request.WorksiteID,
		PeriodMonth: request.PeriodMonth,
		Status:      models.PayrollStatusDraft,
	}
	id, err = i.store.CreateRun(rec)
	if err != nil {
		return "", err
	}
	log.WithField("run_id", id).
		WithField("period_month", request.PeriodMonth).
		Info("создана расчетная ведомость")
	i.audit.Log(actorID, models.AuditActionCreate, entityType, id,
		dbmodels.EntityChanges{Description: "ведомость за " + request.PeriodMonth})
	return id, nil
}

func (i impl) GetRun(id string) (payrollapimodels.RunView, error) {
	rec, err := i.store.GetRun(id)
	if err != nil {
		return payrollapimodels.RunView{}, err
	}
	if rec == nil {
		return payrollapimodels.RunView{}, errors.New("ведомость не найдена")
	}
	return convertRun(*rec, true), nil
}

func (i impl) ListRuns(filter payrollapimodels.RunFilter) (list []payrollapimodels.RunView, err error) {
	recList, err := i.store.ListRuns(store.RunFilter{
		WorksiteID:  filter.WorksiteID,
		PeriodMonth: filter.PeriodMonth,
		Status:      filter.Status,
	})
	if err != nil {
		return nil, err
	}
	list = make([]payrollapimodels.RunView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convertRun(rec, false))
	}
	return list, nil
}

func (i impl) Calculate(actorID, runID string) error {
	run, err := i.store.GetRun(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return errors.New("ведомость не найдена")
	}
	if !run.Status.AllowCalculation() {
		return errors.Errorf("расчет недоступен в статусе %s", run.Status)
	}
	employees, err := i.employees.ListForPayroll(run.WorksiteID)
	if err != nil {
		return errors.Wrap(err, "ошибка выборки работников для расчета")
	}
	adjustments := make(map[string]decimal.Decimal, len(run.Items))
	for _, item := range run.Items {
		if !item.ManualAdjustment.IsZero() {
			adjustments[item.EmployeeID] = item.ManualAdjustment
		}
	}
	items := make([]dbmodels.PayrollItem, 0, len(employees))
	totalGross, totalNet, totalTax := decimal.Zero, decimal.Zero, decimal.Zero
	for _, employee := range employees {
		if employee.SalaryProfile == nil {
			log.WithField("employee_id", employee.ID).
				Warn("у работника нет зарплатного профиля, пропущен в расчете")
			continue
		}
		item, calcErr := i.calculateItem(employee, run.PeriodMonth, adjustments[employee.ID])
		if calcErr != nil {
			return errors.Wrapf(calcErr, "ошибка расчета по работнику %s", employee.EmployeeNo)
		}
		item.RunID = runID
		items = append(items, item)
		totalGross = totalGross.Add(item.GrossAmount)
		totalNet = totalNet.Add(item.NetAmount)
		totalTax = totalTax.Add(item.TaxAmount)
	}
	updMap := map[string]interface{}{
		"status":      models.PayrollStatusCalculated,
		"total_gross": totalGross,
		"total_net":   totalNet,
		"total_tax":   totalTax,
	}
	if err = i.store.ReplaceItems(runID, items, updMap); err != nil {
		return err
	}
	log.WithField("run_id", runID).
		WithField("item_count", len(items)).
		Info("ведомость рассчитана")
	changes := dbmodels.EntityChanges{Description: "расчет ведомости"}
	changes.AddChange("status", string(run.Status), string(models.PayrollStatusCalculated))
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, runID, changes)
	return nil
}

func (i impl) calculateItem(employee dbmodels.Employee, periodMonth string, adjustment decimal.Decimal) (dbmodels.PayrollItem, error) {
	attendance, err := i.attendance.ListRecordsForMonth(employee.ID, periodMonth)
	if err != nil {
		return dbmodels.PayrollItem{}, err
	}
	earnings, err := i.store.ApprovedEarningsSum(employee.ID, periodMonth)
	if err != nil {
		return dbmodels.PayrollItem{}, err
	}
	deductions, err := i.store.ApprovedDeductionsSum(employee.ID, periodMonth)
	if err != nil {
		return dbmodels.PayrollItem{}, err
	}
	res, err := calc.Compute(calc.Input{
		Profile:          *employee.SalaryProfile,
		Attendance:       attendance,
		Earnings:         earnings,
		Deductions:       deductions,
		ManualAdjustment: adjustment,
		StandardDays:     config.Conf.Payroll.StandardWorkingDays,
		StandardHours:    config.Conf.Payroll.StandardShiftHours,
	})
	if err != nil {
		return dbmodels.PayrollItem{}, err
	}
	return dbmodels.PayrollItem{
		EmployeeID:       employee.ID,
		WorkedDays:       res.WorkedDays,
		WorkedHours:      res.WorkedHours,
		OvertimeHours:    res.OvertimeHours,
		NightHours:       res.NightHours,
		HolidayHours:     res.HolidayHours,
		BaseAmount:       res.BaseAmount,
		OvertimeAmount:   res.OvertimeAmount,
		NightAmount:      res.NightAmount,
		HolidayAmount:    res.HolidayAmount,
		EarningsAmount:   res.EarningsAmount,
		GrossAmount:      res.GrossAmount,
		TaxAmount:        res.TaxAmount,
		DeductionsAmount: res.DeductionsAmount,
		ManualAdjustment: res.ManualAdjustment,
		NetAmount:        res.NetAmount,
	}, nil
}

func (i impl) SetAdjustment(actorID, itemID string, request payrollapimodels.AdjustmentData) error {
	item, err := i.store.GetItem(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.New("строка ведомости не найдена")
	}
	run, err := i.store.GetRun(item.RunID)
	if err != nil {
		return err
	}
	if run == nil {
		return errors.New("ведомость не найдена")
	}
	if !run.Status.AllowCalculation() {
		return errors.Errorf("корректировка недоступна в статусе %s", run.Status)
	}
	delta := request.Amount.Sub(item.ManualAdjustment)
	err = i.store.UpdateItem(itemID, map[string]interface{}{
		"manual_adjustment": request.Amount,
		"net_amount":        item.NetAmount.Add(delta),
	})
	if err != nil {
		return err
	}
	err = i.store.UpdateRun(run.ID, map[string]interface{}{
		"total_net": run.TotalNet.Add(delta),
	})
	if err != nil {
		return err
	}
	log.WithField("item_id", itemID).
		WithField("amount", request.Amount.String()).
		Info("задана корректировка строки ведомости")
	changes := dbmodels.EntityChanges{Description: request.Reason}
	changes.AddChange("manual_adjustment", item.ManualAdjustment.String(), request.Amount.String())
	i.audit.Log(actorID, models.AuditActionUpdate, "PayrollItem", itemID, changes)
	return nil
}

func (i impl) Approve(actorID, runID string) error {
	count, err := i.store.ItemCount(runID)
	if err != nil {
		return err
	}
	if count == 0 {
		return errors.New("нельзя утвердить ведомость без строк")
	}
	now := time.Now()
	return i.transition(actorID, runID, models.PayrollStatusApproved, map[string]interface{}{
		"approved_by": actorID,
		"approved_at": &now,
	})
}

func (i impl) MarkPaid(actorID, runID string) error {
	return i.transition(actorID, runID, models.PayrollStatusPaid, map[string]interface{}{})
}

func (i impl) Lock(actorID, runID string) error {
	return i.transition(actorID, runID, models.PayrollStatusLocked, map[string]interface{}{})
}

func (i impl) transition(actorID, runID string, next models.PayrollStatus, extra map[string]interface{}) error {
	run, err := i.store.GetRun(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return errors.New("ведомость не найдена")
	}
	if !run.Status.CanTransition(next) {
		return errors.Errorf("недопустимый переход статуса ведомости: %s -> %s", run.Status, next)
	}
	updMap := map[string]interface{}{"status": next}
	for key, value := range extra {
		updMap[key] = value
	}
	if err = i.store.UpdateRun(runID, updMap); err != nil {
		return err
	}
	log.WithField("run_id", runID).
		WithField("status", next).
		Info("изменен статус ведомости")
	changes := dbmodels.EntityChanges{}
	changes.AddChange("status", string(run.Status), string(next))
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, runID, changes)
	return nil
}

func (i impl) AddEarning(actorID string, request payrollapimodels.EarningData) (id string, err error) {
	if err = i.validateEarning(request); err != nil {
		return "", err
	}
	rec := dbmodels.PayrollEarning{
		EmployeeID:  request.EmployeeID,
		PeriodMonth: request.PeriodMonth,
		Amount:      request.Amount,
		Reason:      request.Reason,
	}
	id, err = i.store.CreateEarning(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(actorID, models.AuditActionCreate, "PayrollEarning", id,
		dbmodels.EntityChanges{Description: request.Reason})
	return id, nil
}

func (i impl) AddDeduction(actorID string, request payrollapimodels.EarningData) (id string, err error) {
	if err = i.validateEarning(request); err != nil {
		return "", err
	}
	rec := dbmodels.PayrollDeduction{
		EmployeeID:  request.EmployeeID,
		PeriodMonth: request.PeriodMonth,
		Amount:      request.Amount,
		Reason:      request.Reason,
	}
	id, err = i.store.CreateDeduction(rec)
	if err != nil {
		return "", err
	}
	i.audit.Log(actorID, models.AuditActionCreate, "PayrollDeduction", id,
		dbmodels.EntityChanges{Description: request.Reason})
	return id, nil
}

func (i impl) validateEarning(request payrollapimodels.EarningData) error {
	if err := request.Validate(); err != nil {
		return err
	}
	return attendanceapimodels.ValidatePeriodMonth(request.PeriodMonth)
}

func (i impl) ApproveEarning(actorID, id string) error {
	if err := i.store.ApproveEarning(id); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, "PayrollEarning", id,
		dbmodels.EntityChanges{Description: "начисление одобрено"})
	return nil
}

func (i impl) ApproveDeduction(actorID, id string) error {
	if err := i.store.ApproveDeduction(id); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, "PayrollDeduction", id,
		dbmodels.EntityChanges{Description: "удержание одобрено"})
	return nil
}

func (i impl) ListEarnings(employeeID, periodMonth string) (list []payrollapimodels.EarningView, err error) {
	recList, err := i.store.ListEarnings(employeeID, periodMonth)
	if err != nil {
		return nil, err
	}
	list = make([]payrollapimodels.EarningView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, payrollapimodels.EarningView{
			ID:          rec.ID,
			EmployeeID:  rec.EmployeeID,
			PeriodMonth: rec.PeriodMonth,
			Amount:      rec.Amount,
			Reason:      rec.Reason,
			Approved:    rec.Approved,
		})
	}
	return list, nil
}

func convertRun(rec dbmodels.PayrollRun, withItems bool) payrollapimodels.RunView {
	view := payrollapimodels.RunView{
		ID:          rec.ID,
		WorksiteID:  rec.WorksiteID,
		PeriodMonth: rec.PeriodMonth,
		Status:      string(rec.Status),
		TotalGross:  rec.TotalGross,
		TotalNet:    rec.TotalNet,
		TotalTax:    rec.TotalTax,
		ApprovedBy:  rec.ApprovedBy,
		ApprovedAt:  rec.ApprovedAt,
	}
	if withItems {
		view.Items = make([]payrollapimodels.ItemView, 0, len(rec.Items))
		for _, item := range rec.Items {
			view.Items = append(view.Items, convertItem(item))
		}
	}
	return view
}

func convertItem(rec dbmodels.PayrollItem) payrollapimodels.ItemView {
	return payrollapimodels.ItemView{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		WorkedDays:       rec.WorkedDays,
		WorkedHours:      rec.WorkedHours,
		OvertimeHours:    rec.OvertimeHours,
		NightHours:       rec.NightHours,
		HolidayHours:     rec.HolidayHours,
		BaseAmount:       rec.BaseAmount,
		OvertimeAmount:   rec.OvertimeAmount,
		NightAmount:      rec.NightAmount,
		HolidayAmount:    rec.HolidayAmount,
		EarningsAmount:   rec.EarningsAmount,
		GrossAmount:      rec.GrossAmount,
		TaxAmount:        rec.TaxAmount,
		DeductionsAmount: rec.DeductionsAmount,
		ManualAdjustment: rec.ManualAdjustment,
		NetAmount:        rec.NetAmount,
	}
}

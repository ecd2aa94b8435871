package employee

import (
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/employee/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	employeeapimodels "workforce-backend/models/api/employee"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(actorID string, request employeeapimodels.EmployeeData) (id string, err error)
	Update(actorID, id string, request employeeapimodels.EmployeePatch) error
	Get(id string) (view employeeapimodels.EmployeeView, err error)
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, total int64, err error)

	SetIdentity(actorID, id string, request employeeapimodels.IdentityData) error
	SetWorkStatus(actorID, id string, request employeeapimodels.WorkStatusData) error
	SetEmployment(actorID, id string, request employeeapimodels.EmploymentData) error
	SetSalaryProfile(actorID, id string, request employeeapimodels.SalaryProfileData) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
		audit: audit.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
	audit audit.Provider
}

const entityType = "Employee"

func (i impl) Create(actorID string, request employeeapimodels.EmployeeData) (id string, err error) {
	rec := dbmodels.Employee{
		LastName:      request.LastName,
		FirstName:     request.FirstName,
		MiddleName:    request.MiddleName,
		BirthDate:     request.BirthDate,
		Gender:        request.Gender,
		Status:        models.EmployeeStatusActive,
		NationalityID: request.NationalityID,
		ProfessionID:  request.ProfessionID,
		DepartmentID:  request.DepartmentID,
		PhoneNumber:   request.PhoneNumber,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	if request.Identity != nil {
		if err = i.SetIdentity(actorID, id, *request.Identity); err != nil {
			return "", err
		}
	}
	if request.WorkStatus != nil {
		if err = i.SetWorkStatus(actorID, id, *request.WorkStatus); err != nil {
			return "", err
		}
	}
	if request.Employment != nil {
		if err = i.SetEmployment(actorID, id, *request.Employment); err != nil {
			return "", err
		}
	}
	if request.SalaryProfile != nil {
		if err = i.SetSalaryProfile(actorID, id, *request.SalaryProfile); err != nil {
			return "", err
		}
	}
	log.WithField("employee_id", id).Info("создан работник")
	i.audit.Log(actorID, models.AuditActionCreate, entityType, id,
		dbmodels.EntityChanges{Description: "создан работник " + rec.GetFIO()})
	return id, nil
}

func (i impl) Update(actorID, id string, request employeeapimodels.EmployeePatch) error {
	existed, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existed == nil {
		return errors.New("работник не найден")
	}
	updMap := map[string]interface{}{}
	changes := dbmodels.EntityChanges{}
	if request.LastName != nil && *request.LastName != existed.LastName {
		updMap["last_name"] = *request.LastName
		changes.AddChange("last_name", existed.LastName, *request.LastName)
	}
	if request.FirstName != nil && *request.FirstName != existed.FirstName {
		updMap["first_name"] = *request.FirstName
		changes.AddChange("first_name", existed.FirstName, *request.FirstName)
	}
	if request.MiddleName != nil && *request.MiddleName != existed.MiddleName {
		updMap["middle_name"] = *request.MiddleName
		changes.AddChange("middle_name", existed.MiddleName, *request.MiddleName)
	}
	if request.BirthDate != nil {
		updMap["birth_date"] = *request.BirthDate
	}
	if request.Gender != nil && *request.Gender != existed.Gender {
		updMap["gender"] = *request.Gender
		changes.AddChange("gender", existed.Gender, *request.Gender)
	}
	if request.Status != nil && models.EmployeeStatus(*request.Status) != existed.Status {
		updMap["status"] = *request.Status
		changes.AddChange("status", string(existed.Status), *request.Status)
	}
	if request.NationalityID != nil && *request.NationalityID != existed.NationalityID {
		updMap["nationality_id"] = *request.NationalityID
		changes.AddChange("nationality_id", existed.NationalityID, *request.NationalityID)
	}
	if request.ProfessionID != nil && *request.ProfessionID != existed.ProfessionID {
		updMap["profession_id"] = *request.ProfessionID
		changes.AddChange("profession_id", existed.ProfessionID, *request.ProfessionID)
	}
	if request.DepartmentID != nil && *request.DepartmentID != existed.DepartmentID {
		updMap["department_id"] = *request.DepartmentID
		changes.AddChange("department_id", existed.DepartmentID, *request.DepartmentID)
	}
	if request.PhoneNumber != nil && *request.PhoneNumber != existed.PhoneNumber {
		updMap["phone_number"] = *request.PhoneNumber
		changes.AddChange("phone_number", existed.PhoneNumber, *request.PhoneNumber)
	}
	if len(updMap) == 0 {
		return nil
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id, changes)
	return nil
}

func (i impl) Get(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, errors.New("работник не найден")
	}
	return Convert(*rec), nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, total int64, err error) {
	storeFilter := store.Filter{
		Search:        filter.Search,
		Status:        filter.Status,
		WorksiteID:    filter.WorksiteID,
		NationalityID: filter.NationalityID,
		ProfessionID:  filter.ProfessionID,
		DepartmentID:  filter.DepartmentID,
	}
	page, limit := filter.GetPage()
	recList, err := i.store.List(storeFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err = i.store.ListCount(storeFilter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, Convert(rec))
	}
	return list, total, nil
}

func (i impl) SetIdentity(actorID, id string, request employeeapimodels.IdentityData) error {
	if err := i.requireEmployee(id); err != nil {
		return err
	}
	rec := dbmodels.EmployeeIdentity{
		EmployeeID:     id,
		PassportSeries: request.PassportSeries,
		PassportNumber: request.PassportNumber,
		PassportIssued: request.PassportIssued,
		PassportExpiry: request.PassportExpiry,
		INN:            request.INN,
		SNILS:          request.SNILS,
	}
	if err := i.store.SaveIdentity(rec); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id,
		dbmodels.EntityChanges{Description: "обновлены паспортные данные"})
	return nil
}

func (i impl) SetWorkStatus(actorID, id string, request employeeapimodels.WorkStatusData) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if err := i.requireEmployee(id); err != nil {
		return err
	}
	rec := dbmodels.EmployeeWorkStatus{
		EmployeeID:    id,
		StatusType:    models.WorkStatusType(request.StatusType),
		InstrumentNo:  request.InstrumentNo,
		IssuedAt:      request.IssuedAt,
		ValidFrom:     request.ValidFrom,
		ValidTo:       request.ValidTo,
		IssuingRegion: request.IssuingRegion,
	}
	if err := i.store.SaveWorkStatus(rec); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id,
		dbmodels.EntityChanges{Description: "обновлен правовой статус"})
	return nil
}

func (i impl) SetEmployment(actorID, id string, request employeeapimodels.EmploymentData) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if err := i.requireEmployee(id); err != nil {
		return err
	}
	rec := dbmodels.EmployeeEmployment{
		EmployeeID: id,
		WorksiteID: request.WorksiteID,
		Position:   request.Position,
		ShiftID:    request.ShiftID,
		HireDate:   request.HireDate,
		EndDate:    request.EndDate,
	}
	if err := i.store.SaveEmployment(rec); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id,
		dbmodels.EntityChanges{Description: "обновлена занятость"})
	return nil
}

func (i impl) SetSalaryProfile(actorID, id string, request employeeapimodels.SalaryProfileData) error {
	if err := i.requireEmployee(id); err != nil {
		return err
	}
	rec := dbmodels.EmployeeSalaryProfile{
		EmployeeID:         id,
		PaymentType:        models.PaymentType(request.PaymentType),
		SalaryBasis:        models.SalaryBasis(request.SalaryBasis),
		MonthlySalary:      request.MonthlySalary,
		DailyRate:          request.DailyRate,
		HourlyRate:         request.HourlyRate,
		PieceRate:          request.PieceRate,
		OvertimeMultiplier: request.OvertimeMultiplier,
		NightMultiplier:    request.NightMultiplier,
		HolidayMultiplier:  request.HolidayMultiplier,
		TaxStatus:          models.TaxStatus(request.TaxStatus),
	}
	if rec.SalaryBasis == "" {
		rec.SalaryBasis = models.SalaryBasisGross
	}
	if rec.TaxStatus == "" {
		rec.TaxStatus = models.TaxStatusResident
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := i.store.SaveSalaryProfile(rec); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, entityType, id,
		dbmodels.EntityChanges{Description: "обновлен зарплатный профиль"})
	return nil
}

func (i impl) requireEmployee(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("работник не найден")
	}
	return nil
}

// Convert собирает представление работника вместе с подчиненными записями
func Convert(rec dbmodels.Employee) employeeapimodels.EmployeeView {
	view := employeeapimodels.EmployeeView{
		ID:            rec.ID,
		EmployeeNo:    rec.EmployeeNo,
		LastName:      rec.LastName,
		FirstName:     rec.FirstName,
		MiddleName:    rec.MiddleName,
		FIO:           rec.GetFIO(),
		BirthDate:     rec.BirthDate,
		Gender:        rec.Gender,
		Status:        string(rec.Status),
		StatusHuman:   rec.Status.ToHuman(),
		NationalityID: rec.NationalityID,
		ProfessionID:  rec.ProfessionID,
		DepartmentID:  rec.DepartmentID,
		PhoneNumber:   rec.PhoneNumber,
	}
	if rec.Identity != nil {
		view.Identity = &employeeapimodels.IdentityView{
			PassportSeries: rec.Identity.PassportSeries,
			PassportNumber: rec.Identity.PassportNumber,
			PassportIssued: rec.Identity.PassportIssued,
			PassportExpiry: rec.Identity.PassportExpiry,
			INN:            rec.Identity.INN,
			SNILS:          rec.Identity.SNILS,
		}
	}
	if rec.WorkStatus != nil {
		view.WorkStatus = &employeeapimodels.WorkStatusView{
			StatusType:      string(rec.WorkStatus.StatusType),
			StatusTypeHuman: rec.WorkStatus.StatusType.ToHuman(),
			InstrumentNo:    rec.WorkStatus.InstrumentNo,
			IssuedAt:        rec.WorkStatus.IssuedAt,
			ValidFrom:       rec.WorkStatus.ValidFrom,
			ValidTo:         rec.WorkStatus.ValidTo,
			IssuingRegion:   rec.WorkStatus.IssuingRegion,
		}
	}
	if rec.Employment != nil {
		view.Employment = &employeeapimodels.EmploymentView{
			WorksiteID: rec.Employment.WorksiteID,
			Position:   rec.Employment.Position,
			ShiftID:    rec.Employment.ShiftID,
			HireDate:   rec.Employment.HireDate,
			EndDate:    rec.Employment.EndDate,
		}
	}
	if rec.SalaryProfile != nil {
		view.SalaryProfile = &employeeapimodels.SalaryProfileView{
			PaymentType:        string(rec.SalaryProfile.PaymentType),
			SalaryBasis:        string(rec.SalaryProfile.SalaryBasis),
			MonthlySalary:      rec.SalaryProfile.MonthlySalary,
			DailyRate:          rec.SalaryProfile.DailyRate,
			HourlyRate:         rec.SalaryProfile.HourlyRate,
			PieceRate:          rec.SalaryProfile.PieceRate,
			OvertimeMultiplier: rec.SalaryProfile.OvertimeMultiplier,
			NightMultiplier:    rec.SalaryProfile.NightMultiplier,
			HolidayMultiplier:  rec.SalaryProfile.HolidayMultiplier,
			TaxStatus:          string(rec.SalaryProfile.TaxStatus),
		}
	}
	return view
}

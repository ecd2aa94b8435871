package employeeapimodels

import (
	"time"
	apimodels "workforce-backend/models/api"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type EmployeeData struct {
	LastName      string     `json:"last_name"`
	FirstName     string     `json:"first_name"`
	MiddleName    string     `json:"middle_name"`
	BirthDate     time.Time  `json:"birth_date"`
	Gender        string     `json:"gender"`
	NationalityID string     `json:"nationality_id"`
	ProfessionID  string     `json:"profession_id"`
	DepartmentID  string     `json:"department_id"`
	PhoneNumber   string     `json:"phone_number"`

	Identity      *IdentityData      `json:"identity"`
	WorkStatus    *WorkStatusData    `json:"work_status"`
	Employment    *EmploymentData    `json:"employment"`
	SalaryProfile *SalaryProfileData `json:"salary_profile"`
}

func (r EmployeeData) Validate() error {
	if r.LastName == "" || r.FirstName == "" {
		return errors.New("не указано имя работника")
	}
	return nil
}

type EmployeePatch struct {
	LastName      *string    `json:"last_name"`
	FirstName     *string    `json:"first_name"`
	MiddleName    *string    `json:"middle_name"`
	BirthDate     *time.Time `json:"birth_date"`
	Gender        *string    `json:"gender"`
	Status        *string    `json:"status"`
	NationalityID *string    `json:"nationality_id"`
	ProfessionID  *string    `json:"profession_id"`
	DepartmentID  *string    `json:"department_id"`
	PhoneNumber   *string    `json:"phone_number"`
}

type IdentityData struct {
	PassportSeries string    `json:"passport_series"`
	PassportNumber string    `json:"passport_number"`
	PassportIssued string    `json:"passport_issued"`
	PassportExpiry time.Time `json:"passport_expiry"`
	INN            string    `json:"inn"`
	SNILS          string    `json:"snils"`
}

type WorkStatusData struct {
	StatusType    string    `json:"status_type"`
	InstrumentNo  string    `json:"instrument_no"`
	IssuedAt      time.Time `json:"issued_at"`
	ValidFrom     time.Time `json:"valid_from"`
	ValidTo       time.Time `json:"valid_to"`
	IssuingRegion string    `json:"issuing_region"`
}

func (r WorkStatusData) Validate() error {
	if r.StatusType == "" {
		return errors.New("не указан тип разрешения на работу")
	}
	return nil
}

type EmploymentData struct {
	WorksiteID string     `json:"worksite_id"`
	Position   string     `json:"position"`
	ShiftID    string     `json:"shift_id"`
	HireDate   time.Time  `json:"hire_date"`
	EndDate    *time.Time `json:"end_date"`
}

func (r EmploymentData) Validate() error {
	if r.WorksiteID == "" {
		return errors.New("не указан объект")
	}
	return nil
}

type SalaryProfileData struct {
	PaymentType        string          `json:"payment_type"`
	SalaryBasis        string          `json:"salary_basis"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	DailyRate          decimal.Decimal `json:"daily_rate"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	PieceRate          decimal.Decimal `json:"piece_rate"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	NightMultiplier    decimal.Decimal `json:"night_multiplier"`
	HolidayMultiplier  decimal.Decimal `json:"holiday_multiplier"`
	TaxStatus          string          `json:"tax_status"`
}

type EmployeeFilter struct {
	apimodels.PageRequest
	Search        string `json:"search" query:"search"`
	Status        string `json:"status" query:"status"`
	WorksiteID    string `json:"worksite_id" query:"worksite_id"`
	NationalityID string `json:"nationality_id" query:"nationality_id"`
	ProfessionID  string `json:"profession_id" query:"profession_id"`
	DepartmentID  string `json:"department_id" query:"department_id"`
}

type EmployeeView struct {
	ID            string    `json:"id"`
	EmployeeNo    string    `json:"employee_no"`
	LastName      string    `json:"last_name"`
	FirstName     string    `json:"first_name"`
	MiddleName    string    `json:"middle_name"`
	FIO           string    `json:"fio"`
	BirthDate     time.Time `json:"birth_date"`
	Gender        string    `json:"gender"`
	Status        string    `json:"status"`
	StatusHuman   string    `json:"status_human"`
	NationalityID string    `json:"nationality_id"`
	ProfessionID  string    `json:"profession_id"`
	DepartmentID  string    `json:"department_id"`
	PhoneNumber   string    `json:"phone_number"`

	Identity      *IdentityView      `json:"identity,omitempty"`
	WorkStatus    *WorkStatusView    `json:"work_status,omitempty"`
	Employment    *EmploymentView    `json:"employment,omitempty"`
	SalaryProfile *SalaryProfileView `json:"salary_profile,omitempty"`
}

type IdentityView struct {
	PassportSeries string    `json:"passport_series"`
	PassportNumber string    `json:"passport_number"`
	PassportIssued string    `json:"passport_issued"`
	PassportExpiry time.Time `json:"passport_expiry"`
	INN            string    `json:"inn"`
	SNILS          string    `json:"snils"`
}

type WorkStatusView struct {
	StatusType      string    `json:"status_type"`
	StatusTypeHuman string    `json:"status_type_human"`
	InstrumentNo    string    `json:"instrument_no"`
	IssuedAt        time.Time `json:"issued_at"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidTo         time.Time `json:"valid_to"`
	IssuingRegion   string    `json:"issuing_region"`
}

type EmploymentView struct {
	WorksiteID string     `json:"worksite_id"`
	Position   string     `json:"position"`
	ShiftID    string     `json:"shift_id"`
	HireDate   time.Time  `json:"hire_date"`
	EndDate    *time.Time `json:"end_date"`
}

type SalaryProfileView struct {
	PaymentType        string          `json:"payment_type"`
	SalaryBasis        string          `json:"salary_basis"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	DailyRate          decimal.Decimal `json:"daily_rate"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	PieceRate          decimal.Decimal `json:"piece_rate"`
	OvertimeMultiplier decimal.Decimal `json:"overtime_multiplier"`
	NightMultiplier    decimal.Decimal `json:"night_multiplier"`
	HolidayMultiplier  decimal.Decimal `json:"holiday_multiplier"`
	TaxStatus          string          `json:"tax_status"`
}

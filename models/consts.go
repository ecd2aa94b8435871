package models

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

var userStatusHumanName = map[UserStatus]string{
	UserStatusActive:    "Активен",
	UserStatusInactive:  "Отключен",
	UserStatusSuspended: "Заблокирован",
}

func (s UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive   EmployeeStatus = "INACTIVE"
	EmployeeStatusTerminated EmployeeStatus = "TERMINATED"
	EmployeeStatusOnLeave    EmployeeStatus = "ON_LEAVE"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeStatusActive:     "Работает",
	EmployeeStatusInactive:   "Не активен",
	EmployeeStatusTerminated: "Уволен",
	EmployeeStatusOnLeave:    "В отпуске",
}

func (s EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type WorkStatusType string

const (
	WorkStatusLocal           WorkStatusType = "LOCAL"
	WorkStatusPatent          WorkStatusType = "PATENT"
	WorkStatusVisa            WorkStatusType = "VISA"
	WorkStatusWorkPermit      WorkStatusType = "WORK_PERMIT"
	WorkStatusResidencePermit WorkStatusType = "RESIDENCE_PERMIT"
	WorkStatusOther           WorkStatusType = "OTHER"
)

var workStatusHumanName = map[WorkStatusType]string{
	WorkStatusLocal:           "Гражданин РФ",
	WorkStatusPatent:          "Патент",
	WorkStatusVisa:            "Виза",
	WorkStatusWorkPermit:      "Разрешение на работу",
	WorkStatusResidencePermit: "Вид на жительство",
	WorkStatusOther:           "Иное",
}

func (s WorkStatusType) ToHuman() string {
	if human, exist := workStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type PaymentType string

const (
	PaymentTypeMonthly   PaymentType = "MONTHLY"
	PaymentTypeHourly    PaymentType = "HOURLY"
	PaymentTypeDaily     PaymentType = "DAILY"
	PaymentTypePieceRate PaymentType = "PIECE_RATE"
)

type SalaryBasis string

const (
	SalaryBasisNet   SalaryBasis = "NET"
	SalaryBasisGross SalaryBasis = "GROSS"
)

// TaxStatus определяет ставку НДФЛ на момент расчета,
// статус хранится в зарплатном профиле и не пересчитывается из гражданства
type TaxStatus string

const (
	TaxStatusResident    TaxStatus = "RESIDENT"
	TaxStatusNonResident TaxStatus = "NON_RESIDENT"
)

type AttendanceType string

const (
	AttendanceNormal     AttendanceType = "NORMAL"
	AttendanceOvertime   AttendanceType = "OVERTIME"
	AttendanceNightShift AttendanceType = "NIGHT_SHIFT"
	AttendanceHoliday    AttendanceType = "HOLIDAY"
	AttendanceHalfDay    AttendanceType = "HALF_DAY"
	AttendanceAbsent     AttendanceType = "ABSENT"
	AttendanceOnLeave    AttendanceType = "ON_LEAVE"
	AttendanceRestDay    AttendanceType = "REST_DAY"
)

var attendanceTypeHumanName = map[AttendanceType]string{
	AttendanceNormal:     "Явка",
	AttendanceOvertime:   "Сверхурочные",
	AttendanceNightShift: "Ночная смена",
	AttendanceHoliday:    "Работа в праздник",
	AttendanceHalfDay:    "Неполный день",
	AttendanceAbsent:     "Прогул",
	AttendanceOnLeave:    "Отпуск",
	AttendanceRestDay:    "Выходной",
}

func (s AttendanceType) ToHuman() string {
	if human, exist := attendanceTypeHumanName[s]; exist {
		return human
	}
	return string(s)
}

type PeriodStatus string

const (
	PeriodStatusOpen      PeriodStatus = "OPEN"
	PeriodStatusSubmitted PeriodStatus = "SUBMITTED"
	PeriodStatusApproved  PeriodStatus = "APPROVED"
	PeriodStatusLocked    PeriodStatus = "LOCKED"
)

// допустимы только последовательные переходы, без пропуска статусов
var periodFlow = map[PeriodStatus]PeriodStatus{
	PeriodStatusOpen:      PeriodStatusSubmitted,
	PeriodStatusSubmitted: PeriodStatusApproved,
	PeriodStatusApproved:  PeriodStatusLocked,
}

func (s PeriodStatus) CanTransition(next PeriodStatus) bool {
	allowed, exist := periodFlow[s]
	return exist && allowed == next
}

type PayrollStatus string

const (
	PayrollStatusDraft      PayrollStatus = "DRAFT"
	PayrollStatusCalculated PayrollStatus = "CALCULATED"
	PayrollStatusApproved   PayrollStatus = "APPROVED"
	PayrollStatusPaid       PayrollStatus = "PAID"
	PayrollStatusLocked     PayrollStatus = "LOCKED"
)

var payrollFlow = map[PayrollStatus][]PayrollStatus{
	PayrollStatusDraft:      {PayrollStatusCalculated},
	PayrollStatusCalculated: {PayrollStatusApproved},
	PayrollStatusApproved:   {PayrollStatusPaid, PayrollStatusLocked},
}

func (s PayrollStatus) CanTransition(next PayrollStatus) bool {
	for _, allowed := range payrollFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// расчет допустим пока ведомость не утверждена
func (s PayrollStatus) AllowCalculation() bool {
	return s == PayrollStatusDraft || s == PayrollStatusCalculated
}

type TransferStatus string

const (
	TransferStatusPending  TransferStatus = "PENDING"
	TransferStatusApproved TransferStatus = "APPROVED"
	TransferStatusRejected TransferStatus = "REJECTED"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

type DocumentStatus string

const (
	DocumentStatusExpired      DocumentStatus = "EXPIRED"
	DocumentStatusExpiringSoon DocumentStatus = "EXPIRING_SOON"
	DocumentStatusValid        DocumentStatus = "VALID"
	DocumentStatusUploaded     DocumentStatus = "UPLOADED"
	DocumentStatusVerified     DocumentStatus = "VERIFIED"
)

var documentStatusHumanName = map[DocumentStatus]string{
	DocumentStatusExpired:      "Просрочен",
	DocumentStatusExpiringSoon: "Истекает",
	DocumentStatusValid:        "Действителен",
	DocumentStatusUploaded:     "Загружен",
	DocumentStatusVerified:     "Проверен",
}

func (s DocumentStatus) ToHuman() string {
	if human, exist := documentStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type AlertSeverity string

const (
	AlertSeverityWarning  AlertSeverity = "WARNING"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

type AuditAction string

const (
	AuditActionCreate     AuditAction = "CREATE"
	AuditActionUpdate     AuditAction = "UPDATE"
	AuditActionDelete     AuditAction = "DELETE"
	AuditActionDeactivate AuditAction = "DEACTIVATE"
	AuditActionLogin      AuditAction = "LOGIN"
	AuditActionUpload     AuditAction = "UPLOAD"
	AuditActionExport     AuditAction = "EXPORT"
)

type AssetStatus string

const (
	AssetStatusAvailable AssetStatus = "AVAILABLE"
	AssetStatusAssigned  AssetStatus = "ASSIGNED"
	AssetStatusRetired   AssetStatus = "RETIRED"
)

type WorksiteStatus string

const (
	WorksiteStatusActive    WorksiteStatus = "ACTIVE"
	WorksiteStatusSuspended WorksiteStatus = "SUSPENDED"
	WorksiteStatusClosed    WorksiteStatus = "CLOSED"
)

func (s WorksiteStatus) IsValid() bool {
	switch s {
	case WorksiteStatusActive, WorksiteStatusSuspended, WorksiteStatusClosed:
		return true
	}
	return false
}

package models

// PermissionCode - атомарное право вида "модуль.действие"
type PermissionCode string

const (
	PermEmployeeView   PermissionCode = "employee.view"
	PermEmployeeCreate PermissionCode = "employee.create"
	PermEmployeeUpdate PermissionCode = "employee.update"
	PermEmployeeDelete PermissionCode = "employee.delete"

	PermAttendanceView    PermissionCode = "attendance.view"
	PermAttendanceEdit    PermissionCode = "attendance.edit"
	PermAttendanceSubmit  PermissionCode = "attendance.submit"
	PermAttendanceApprove PermissionCode = "attendance.approve"

	PermPayrollView      PermissionCode = "payroll.view"
	PermPayrollCalculate PermissionCode = "payroll.calculate"
	PermPayrollApprove   PermissionCode = "payroll.approve"
	PermPayrollLock      PermissionCode = "payroll.lock"

	PermDocumentView   PermissionCode = "documents.view"
	PermDocumentUpload PermissionCode = "documents.upload"
	PermDocumentVerify PermissionCode = "documents.verify"

	PermAlertView   PermissionCode = "alerts.view"
	PermAlertManage PermissionCode = "alerts.manage"

	PermLeaveView    PermissionCode = "leaves.view"
	PermLeaveManage  PermissionCode = "leaves.manage"
	PermLeaveApprove PermissionCode = "leaves.approve"

	PermAssetView   PermissionCode = "assets.view"
	PermAssetManage PermissionCode = "assets.manage"

	PermTransferView    PermissionCode = "transfers.view"
	PermTransferManage  PermissionCode = "transfers.manage"
	PermTransferApprove PermissionCode = "transfers.approve"

	PermWorksiteView   PermissionCode = "worksites.view"
	PermWorksiteManage PermissionCode = "worksites.manage"

	PermDictManage   PermissionCode = "dicts.manage"
	PermUserManage   PermissionCode = "users.manage"
	PermReportExport PermissionCode = "reports.export"
	PermAuditView    PermissionCode = "audit.view"
)

// AllPermissions - полный каталог прав, заполняется при старте сервиса
var AllPermissions = []PermissionCode{
	PermEmployeeView, PermEmployeeCreate, PermEmployeeUpdate, PermEmployeeDelete,
	PermAttendanceView, PermAttendanceEdit, PermAttendanceSubmit, PermAttendanceApprove,
	PermPayrollView, PermPayrollCalculate, PermPayrollApprove, PermPayrollLock,
	PermDocumentView, PermDocumentUpload, PermDocumentVerify,
	PermAlertView, PermAlertManage,
	PermLeaveView, PermLeaveManage, PermLeaveApprove,
	PermAssetView, PermAssetManage,
	PermTransferView, PermTransferManage, PermTransferApprove,
	PermWorksiteView, PermWorksiteManage,
	PermDictManage, PermUserManage, PermReportExport, PermAuditView,
}

// RoleCodeSuperAdmin - роль с неявным полным доступом,
// проверка прав для нее всегда успешна
const RoleCodeSuperAdmin = "SUPER_ADMIN"

const SystemUser = "Система"

package initializers

import (
	"context"
	"workforce-backend/config"
	"workforce-backend/fiberlog"
	assethandler "workforce-backend/lib/asset"
	attendancehandler "workforce-backend/lib/attendance"
	audithandler "workforce-backend/lib/audit"
	authhandler "workforce-backend/lib/auth"
	compliancehandler "workforce-backend/lib/compliance"
	alertworker "workforce-backend/lib/compliance/alert-worker"
	dictshandler "workforce-backend/lib/dicts"
	employeehandler "workforce-backend/lib/employee"
	xlsexport "workforce-backend/lib/export/xls"
	leavehandler "workforce-backend/lib/leave"
	payrollhandler "workforce-backend/lib/payroll"
	rbachandler "workforce-backend/lib/rbac"
	reporthandler "workforce-backend/lib/report"
	transferhandler "workforce-backend/lib/transfer"
	usershandler "workforce-backend/lib/users"
	worksitehandler "workforce-backend/lib/worksite"
)

var LoggerConfig *fiberlog.Config

// InitAllServices собирает сервисы в порядке зависимостей
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitFileStorage(ctx)
	InitSmtp()
	audithandler.NewHandler()
	rbachandler.NewHandler()
	authhandler.NewHandler()
	usershandler.NewHandler()
	dictshandler.NewHandler()
	worksitehandler.NewHandler()
	employeehandler.NewHandler()
	attendancehandler.NewHandler()
	payrollhandler.NewHandler()
	compliancehandler.NewHandler()
	leavehandler.NewHandler()
	assethandler.NewHandler()
	transferhandler.NewHandler()
	xlsexport.NewHandler()
	reporthandler.NewHandler()

	// Задача формирования уведомлений по срокам документов
	alertworker.StartWorker(ctx)
}

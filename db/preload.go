package db

import (
	"workforce-backend/config"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func InitPreload() {
	fillPermissions()
	fillSystemRoles()
	addSuperAdmin()
	fillDocumentTypes()
	fillDocumentRequirements()
	fillAlertRules()
}

func fillPermissions() {
	for _, code := range models.AllPermissions {
		rec := dbmodels.Permission{Code: code}
		err := DB.Where("code = ?", code).FirstOrCreate(&rec).Error
		if err != nil {
			log.WithError(err).Error("ошибка заполнения каталога прав")
			return
		}
	}
}

var systemRoles = []struct {
	code       string
	name       string
	siteScoped bool
	grants     []models.PermissionCode
}{
	{models.RoleCodeSuperAdmin, "Суперадмин системы", false, nil},
	{"HR_MANAGER", "Кадровик", false, []models.PermissionCode{
		models.PermEmployeeView, models.PermEmployeeCreate, models.PermEmployeeUpdate, models.PermEmployeeDelete,
		models.PermDocumentView, models.PermDocumentUpload, models.PermDocumentVerify,
		models.PermAlertView, models.PermAlertManage,
		models.PermLeaveView, models.PermLeaveManage, models.PermLeaveApprove,
		models.PermTransferView, models.PermTransferManage, models.PermTransferApprove,
		models.PermDictManage, models.PermReportExport,
	}},
	{"SITE_MANAGER", "Начальник участка", true, []models.PermissionCode{
		models.PermEmployeeView,
		models.PermAttendanceView, models.PermAttendanceEdit, models.PermAttendanceSubmit,
		models.PermAssetView, models.PermAssetManage,
		models.PermTransferView, models.PermTransferManage,
	}},
	{"ACCOUNTANT", "Бухгалтер", false, []models.PermissionCode{
		models.PermEmployeeView,
		models.PermAttendanceView, models.PermAttendanceApprove,
		models.PermPayrollView, models.PermPayrollCalculate, models.PermPayrollApprove, models.PermPayrollLock,
		models.PermReportExport,
	}},
}

func fillSystemRoles() {
	for _, role := range systemRoles {
		rec := dbmodels.Role{
			Code:       role.code,
			Name:       role.name,
			IsSystem:   true,
			SiteScoped: role.siteScoped,
		}
		err := DB.Where("code = ?", role.code).FirstOrCreate(&rec).Error
		if err != nil {
			log.WithError(err).Error("ошибка заполнения системных ролей")
			return
		}
		for _, grant := range role.grants {
			link := dbmodels.RolePermission{RoleID: rec.ID, PermissionCode: grant}
			err = DB.Where("role_id = ? AND permission_code = ?", rec.ID, grant).FirstOrCreate(&link).Error
			if err != nil {
				log.WithError(err).Error("ошибка заполнения прав роли")
				return
			}
		}
	}
}

func addSuperAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("суперадмин не добавлен, отсутствует настройка ADMIN_EMAIL")
		return
	}
	var count int64
	err := DB.Model(&dbmodels.User{}).Where("email = ?", config.Conf.Admin.Email).Count(&count).Error
	if err != nil {
		log.WithError(err).Error("ошибка добавления суперадмина")
		return
	}
	if count != 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.Conf.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("ошибка добавления суперадмина")
		return
	}
	rec := dbmodels.User{
		Email:     config.Conf.Admin.Email,
		Password:  string(hash),
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Status:    models.UserStatusActive,
		Locale:    "ru",
	}
	if err = DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("ошибка добавления суперадмина")
		return
	}
	adminRole := dbmodels.Role{}
	if err = DB.Where("code = ?", models.RoleCodeSuperAdmin).First(&adminRole).Error; err != nil {
		log.WithError(err).Error("ошибка добавления суперадмина")
		return
	}
	assign := dbmodels.UserRole{UserID: rec.ID, RoleID: adminRole.ID}
	if err = DB.Create(&assign).Error; err != nil {
		log.WithError(err).Error("ошибка добавления суперадмина")
	}
}

var defaultDocumentTypes = []dbmodels.DocumentType{
	{DictEntry: dbmodels.DictEntry{Code: "PASSPORT", NameRu: "Паспорт", NameEn: "Passport", NameTr: "Pasaport", IsActive: true}, HasExpiry: true, DefaultAlertDays: 90},
	{DictEntry: dbmodels.DictEntry{Code: "PATENT", NameRu: "Патент", NameEn: "Work patent", NameTr: "Çalışma patenti", IsActive: true}, HasExpiry: true, DefaultAlertDays: 30},
	{DictEntry: dbmodels.DictEntry{Code: "VISA", NameRu: "Виза", NameEn: "Visa", NameTr: "Vize", IsActive: true}, HasExpiry: true, DefaultAlertDays: 30},
	{DictEntry: dbmodels.DictEntry{Code: "WORK_PERMIT", NameRu: "Разрешение на работу", NameEn: "Work permit", NameTr: "Çalışma izni", IsActive: true}, HasExpiry: true, DefaultAlertDays: 30},
	{DictEntry: dbmodels.DictEntry{Code: "MIGRATION_CARD", NameRu: "Миграционная карта", NameEn: "Migration card", NameTr: "Göç kartı", IsActive: true}, HasExpiry: true, DefaultAlertDays: 14},
	{DictEntry: dbmodels.DictEntry{Code: "MED_BOOK", NameRu: "Медицинская книжка", NameEn: "Medical book", NameTr: "Sağlık karnesi", IsActive: true}, HasExpiry: true, DefaultAlertDays: 30},
	{DictEntry: dbmodels.DictEntry{Code: "DIPLOMA", NameRu: "Диплом", NameEn: "Diploma", NameTr: "Diploma", IsActive: true}},
}

func fillDocumentTypes() {
	for _, docType := range defaultDocumentTypes {
		rec := docType
		err := DB.Where("code = ?", docType.Code).FirstOrCreate(&rec).Error
		if err != nil {
			log.WithError(err).Error("ошибка заполнения видов документов")
			return
		}
	}
}

// обязательные документы по типу разрешения на работу
var defaultRequirements = map[models.WorkStatusType][]string{
	models.WorkStatusLocal:           {"PASSPORT"},
	models.WorkStatusPatent:          {"PASSPORT", "PATENT", "MIGRATION_CARD"},
	models.WorkStatusVisa:            {"PASSPORT", "VISA", "MIGRATION_CARD"},
	models.WorkStatusWorkPermit:      {"PASSPORT", "WORK_PERMIT", "MIGRATION_CARD"},
	models.WorkStatusResidencePermit: {"PASSPORT"},
}

func fillDocumentRequirements() {
	for statusType, codes := range defaultRequirements {
		for _, code := range codes {
			rec := dbmodels.DocumentRequirement{WorkStatusType: string(statusType), DocumentTypeCode: code}
			err := DB.Where("work_status_type = ? AND document_type_code = ?", statusType, code).FirstOrCreate(&rec).Error
			if err != nil {
				log.WithError(err).Error("ошибка заполнения требований к документам")
				return
			}
		}
	}
}

var defaultAlertRules = []dbmodels.AlertRule{
	{Name: "Истечение срока документа", TrackedField: dbmodels.AlertFieldDocumentExpiry, WarningDays: 30, CriticalDays: 7, IsActive: true},
	{Name: "Истечение разрешения на работу", TrackedField: dbmodels.AlertFieldWorkStatusValid, WarningDays: 30, CriticalDays: 7, IsActive: true},
	{Name: "Истечение срока паспорта", TrackedField: dbmodels.AlertFieldPassportExpiry, WarningDays: 90, CriticalDays: 30, IsActive: true},
}

func fillAlertRules() {
	for _, rule := range defaultAlertRules {
		rec := rule
		err := DB.Where("tracked_field = ?", rule.TrackedField).FirstOrCreate(&rec).Error
		if err != nil {
			log.WithError(err).Error("ошибка заполнения правил уведомлений")
			return
		}
	}
}

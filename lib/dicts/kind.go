package dicts

import (
	dbmodels "workforce-backend/models/db"

	"gorm.io/gorm"
)

// Kind - справочник. Все справочники обслуживаются единым набором операций,
// различия собраны в kindDef
type Kind string

const (
	KindNationality   Kind = "nationality"
	KindProfession    Kind = "profession"
	KindDepartment    Kind = "department"
	KindShift         Kind = "shift"
	KindDocumentType  Kind = "document-type"
	KindLeaveType     Kind = "leave-type"
	KindAssetCategory Kind = "asset-category"
)

type kindDef struct {
	human    string
	newModel func() interface{}
	// количество ссылок на запись, определяет retire-or-delete
	refCount func(db *gorm.DB, id string) (int64, error)
}

var kindDefs = map[Kind]kindDef{
	KindNationality: {
		human:    "гражданство",
		newModel: func() interface{} { return &dbmodels.Nationality{} },
		refCount: countWhere(&dbmodels.Employee{}, "nationality_id = ?"),
	},
	KindProfession: {
		human:    "профессия",
		newModel: func() interface{} { return &dbmodels.Profession{} },
		refCount: countWhere(&dbmodels.Employee{}, "profession_id = ?"),
	},
	KindDepartment: {
		human:    "подразделение",
		newModel: func() interface{} { return &dbmodels.Department{} },
		refCount: countWhere(&dbmodels.Employee{}, "department_id = ?"),
	},
	KindShift: {
		human:    "смена",
		newModel: func() interface{} { return &dbmodels.Shift{} },
		refCount: countWhere(&dbmodels.EmployeeEmployment{}, "shift_id = ?"),
	},
	KindDocumentType: {
		human:    "вид документа",
		newModel: func() interface{} { return &dbmodels.DocumentType{} },
		refCount: countWhere(&dbmodels.EmployeeDocument{}, "document_type_id = ?"),
	},
	KindLeaveType: {
		human:    "вид отпуска",
		newModel: func() interface{} { return &dbmodels.LeaveType{} },
		refCount: countWhere(&dbmodels.LeaveRequest{}, "leave_type_id = ?"),
	},
	KindAssetCategory: {
		human:    "категория имущества",
		newModel: func() interface{} { return &dbmodels.AssetCategory{} },
		refCount: countWhere(&dbmodels.Asset{}, "category_id = ?"),
	},
}

func ParseKind(value string) (Kind, bool) {
	kind := Kind(value)
	_, exist := kindDefs[kind]
	return kind, exist
}

func countWhere(model interface{}, condition string) func(db *gorm.DB, id string) (int64, error) {
	return func(db *gorm.DB, id string) (int64, error) {
		var count int64
		err := db.Model(model).Where(condition, id).Count(&count).Error
		return count, err
	}
}

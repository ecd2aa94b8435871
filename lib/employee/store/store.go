package store

import (
	"fmt"
	"strconv"
	"strings"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	GetByEmployeeNo(employeeNo string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter Filter, page, limit int) (list []dbmodels.Employee, err error)
	ListCount(filter Filter) (count int64, err error)
	// ListForPayroll возвращает работающих сотрудников с зарплатным профилем
	ListForPayroll(worksiteID string) (list []dbmodels.Employee, err error)

	SaveIdentity(rec dbmodels.EmployeeIdentity) error
	SaveWorkStatus(rec dbmodels.EmployeeWorkStatus) error
	SaveEmployment(rec dbmodels.EmployeeEmployment) error
	SaveSalaryProfile(rec dbmodels.EmployeeSalaryProfile) error
}

type Filter struct {
	Search        string
	Status        string
	WorksiteID    string
	NationalityID string
	ProfessionID  string
	DepartmentID  string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		rec.EmployeeNo, err = nextEmployeeNo(tx)
		if err != nil {
			return err
		}
		return tx.Create(&rec).Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// nextEmployeeNo выдает следующий табельный номер вида EMP-0001.
// Номер не переиспользуется после удаления
func nextEmployeeNo(tx *gorm.DB) (string, error) {
	var lastNo string
	// сортировка сначала по длине, строковый максимум
	// ломается после EMP-9999
	err := tx.Model(dbmodels.Employee{}).
		Select("employee_no").
		Order("length(employee_no) desc, employee_no desc").
		Limit(1).
		Scan(&lastNo).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка генерации табельного номера")
	}
	next := 1
	if lastNo != "" {
		seq, convErr := strconv.Atoi(strings.TrimPrefix(lastNo, "EMP-"))
		if convErr != nil {
			return "", errors.Wrapf(convErr, "некорректный табельный номер (%s)", lastNo)
		}
		next = seq + 1
	}
	return fmt.Sprintf("EMP-%04d", next), nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Identity").
		Preload("WorkStatus").
		Preload("Employment").
		Preload("SalaryProfile").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByEmployeeNo(employeeNo string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("employee_no = ?", employeeNo).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(filter Filter, page, limit int) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.Model(dbmodels.Employee{})
	i.addFilter(tx, filter)
	tx.Order("employee_no").
		Limit(limit).
		Offset((page - 1) * limit)
	err = tx.
		Preload("WorkStatus").
		Preload("Employment").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter Filter) (count int64, err error) {
	tx := i.db.Model(dbmodels.Employee{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения количества работников")
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter Filter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(last_name,' ',first_name)) like ? or LOWER(employee_no) like ?", searchValue, searchValue)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.NationalityID != "" {
		tx.Where("nationality_id = ?", filter.NationalityID)
	}
	if filter.ProfessionID != "" {
		tx.Where("profession_id = ?", filter.ProfessionID)
	}
	if filter.DepartmentID != "" {
		tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.WorksiteID != "" {
		tx.Where("id IN (?)", i.db.
			Model(dbmodels.EmployeeEmployment{}).
			Select("employee_id").
			Where("worksite_id = ?", filter.WorksiteID))
	}
}

func (i impl) ListForPayroll(worksiteID string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.Model(dbmodels.Employee{}).
		Where("status = ?", models.EmployeeStatusActive)
	if worksiteID != "" {
		tx = tx.Where("id IN (?)", i.db.
			Model(dbmodels.EmployeeEmployment{}).
			Select("employee_id").
			Where("worksite_id = ?", worksiteID))
	}
	err = tx.Order("employee_no").
		Preload("Employment").
		Preload("SalaryProfile").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SaveIdentity(rec dbmodels.EmployeeIdentity) error {
	return i.upsertByEmployee(&rec)
}

func (i impl) SaveWorkStatus(rec dbmodels.EmployeeWorkStatus) error {
	return i.upsertByEmployee(&rec)
}

func (i impl) SaveEmployment(rec dbmodels.EmployeeEmployment) error {
	return i.upsertByEmployee(&rec)
}

func (i impl) SaveSalaryProfile(rec dbmodels.EmployeeSalaryProfile) error {
	return i.upsertByEmployee(&rec)
}

// upsertByEmployee перезаписывает единственную подчиненную запись работника
func (i impl) upsertByEmployee(rec interface{}) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			UpdateAll: true,
		}).
		Create(rec).
		Error
}

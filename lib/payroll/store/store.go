package store

import (
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Provider interface {
	CreateRun(rec dbmodels.PayrollRun) (id string, err error)
	GetRun(id string) (rec *dbmodels.PayrollRun, err error)
	FindRun(worksiteID, periodMonth string) (rec *dbmodels.PayrollRun, err error)
	ListRuns(filter RunFilter) (list []dbmodels.PayrollRun, err error)
	UpdateRun(id string, updMap map[string]interface{}) error
	// ReplaceItems атомарно заменяет строки ведомости и ее итоги
	ReplaceItems(runID string, items []dbmodels.PayrollItem, updMap map[string]interface{}) error
	ItemCount(runID string) (count int64, err error)
	GetItem(id string) (rec *dbmodels.PayrollItem, err error)
	UpdateItem(id string, updMap map[string]interface{}) error

	CreateEarning(rec dbmodels.PayrollEarning) (id string, err error)
	CreateDeduction(rec dbmodels.PayrollDeduction) (id string, err error)
	ApproveEarning(id string) error
	ApproveDeduction(id string) error
	ListEarnings(employeeID, periodMonth string) (list []dbmodels.PayrollEarning, err error)
	// ApprovedEarningsSum - сумма одобренных начислений работника за месяц
	ApprovedEarningsSum(employeeID, periodMonth string) (sum decimal.Decimal, err error)
	ApprovedDeductionsSum(employeeID, periodMonth string) (sum decimal.Decimal, err error)
}

type RunFilter struct {
	WorksiteID  string
	PeriodMonth string
	Status      string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateRun(rec dbmodels.PayrollRun) (id string, err error) {
	existed, err := i.FindRun(rec.WorksiteID, rec.PeriodMonth)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("ведомость за этот месяц уже существует")
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetRun(id string) (*dbmodels.PayrollRun, error) {
	rec := dbmodels.PayrollRun{}
	err := i.db.
		Where("id = ?", id).
		Preload("Items").
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

func (i impl) FindRun(worksiteID, periodMonth string) (*dbmodels.PayrollRun, error) {
	rec := dbmodels.PayrollRun{}
	err := i.db.
		Where("worksite_id = ? and period_month = ?", worksiteID, periodMonth).
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

func (i impl) ListRuns(filter RunFilter) (list []dbmodels.PayrollRun, err error) {
	list = []dbmodels.PayrollRun{}
	tx := i.db.Model(dbmodels.PayrollRun{})
	if filter.WorksiteID != "" {
		tx = tx.Where("worksite_id = ?", filter.WorksiteID)
	}
	if filter.PeriodMonth != "" {
		tx = tx.Where("period_month = ?", filter.PeriodMonth)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Order("period_month desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateRun(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.PayrollRun{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ReplaceItems(runID string, items []dbmodels.PayrollItem, updMap map[string]interface{}) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", runID).Delete(&dbmodels.PayrollItem{}).Error; err != nil {
			return errors.Wrap(err, "ошибка удаления строк ведомости")
		}
		if len(items) != 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errors.Wrap(err, "ошибка сохранения строк ведомости")
			}
		}
		return tx.Model(&dbmodels.PayrollRun{}).
			Where("id = ?", runID).
			Updates(updMap).
			Error
	})
}

func (i impl) ItemCount(runID string) (count int64, err error) {
	err = i.db.Model(dbmodels.PayrollItem{}).
		Where("run_id = ?", runID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) GetItem(id string) (*dbmodels.PayrollItem, error) {
	rec := dbmodels.PayrollItem{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) UpdateItem(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.PayrollItem{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) CreateEarning(rec dbmodels.PayrollEarning) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateDeduction(rec dbmodels.PayrollDeduction) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ApproveEarning(id string) error {
	return i.db.Model(&dbmodels.PayrollEarning{}).
		Where("id = ?", id).
		Update("approved", true).
		Error
}

func (i impl) ApproveDeduction(id string) error {
	return i.db.Model(&dbmodels.PayrollDeduction{}).
		Where("id = ?", id).
		Update("approved", true).
		Error
}

func (i impl) ListEarnings(employeeID, periodMonth string) (list []dbmodels.PayrollEarning, err error) {
	list = []dbmodels.PayrollEarning{}
	tx := i.db.Model(dbmodels.PayrollEarning{})
	if employeeID != "" {
		tx = tx.Where("employee_id = ?", employeeID)
	}
	if periodMonth != "" {
		tx = tx.Where("period_month = ?", periodMonth)
	}
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ApprovedEarningsSum(employeeID, periodMonth string) (decimal.Decimal, error) {
	return i.approvedSum(dbmodels.PayrollEarning{}, employeeID, periodMonth)
}

func (i impl) ApprovedDeductionsSum(employeeID, periodMonth string) (decimal.Decimal, error) {
	return i.approvedSum(dbmodels.PayrollDeduction{}, employeeID, periodMonth)
}

func (i impl) approvedSum(model interface{}, employeeID, periodMonth string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := i.db.Model(model).
		Select("SUM(amount)").
		Where("employee_id = ? and period_month = ? and approved = ?", employeeID, periodMonth, true).
		Scan(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

package store

import (
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Asset) (id string, err error)
	GetByID(id string) (rec *dbmodels.Asset, err error)
	List(filter Filter) (list []dbmodels.Asset, err error)
	Update(id string, updMap map[string]interface{}) error

	// ActiveAssignment - незакрытая выдача имущества, не более одной
	ActiveAssignment(assetID string) (rec *dbmodels.AssetAssignment, err error)
	// Assign атомарно создает выдачу и пометку имущества
	Assign(rec dbmodels.AssetAssignment) (id string, err error)
	Return(assignmentID string) error
	ListAssignments(assetID string) (list []dbmodels.AssetAssignment, err error)
}

type Filter struct {
	CategoryID string
	WorksiteID string
	Status     string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Asset) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	var rowCount int64
	err = i.db.Model(dbmodels.Asset{}).Where("inventory_no = ?", rec.InventoryNo).Count(&rowCount).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки инвентарного номера")
	}
	if rowCount != 0 {
		return "", errors.New("имущество с таким инвентарным номером уже существует")
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Asset, error) {
	rec := dbmodels.Asset{}
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

func (i impl) List(filter Filter) (list []dbmodels.Asset, err error) {
	list = []dbmodels.Asset{}
	tx := i.db.Model(dbmodels.Asset{})
	if filter.CategoryID != "" {
		tx = tx.Where("category_id = ?", filter.CategoryID)
	}
	if filter.WorksiteID != "" {
		tx = tx.Where("worksite_id = ?", filter.WorksiteID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Order("inventory_no").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Asset{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ActiveAssignment(assetID string) (*dbmodels.AssetAssignment, error) {
	rec := dbmodels.AssetAssignment{}
	err := i.db.
		Where("asset_id = ? and returned_at is null", assetID).
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

func (i impl) Assign(rec dbmodels.AssetAssignment) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		return tx.Model(&dbmodels.Asset{}).
			Where("id = ?", rec.AssetID).
			Update("status", models.AssetStatusAssigned).
			Error
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Return(assignmentID string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.AssetAssignment{}
		if err := tx.Where("id = ?", assignmentID).First(&rec).Error; err != nil {
			return err
		}
		if err := tx.Model(&dbmodels.AssetAssignment{}).
			Where("id = ?", assignmentID).
			Update("returned_at", gorm.Expr("CURRENT_TIMESTAMP")).
			Error; err != nil {
			return err
		}
		return tx.Model(&dbmodels.Asset{}).
			Where("id = ?", rec.AssetID).
			Update("status", models.AssetStatusAvailable).
			Error
	})
}

func (i impl) ListAssignments(assetID string) (list []dbmodels.AssetAssignment, err error) {
	list = []dbmodels.AssetAssignment{}
	err = i.db.
		Where("asset_id = ?", assetID).
		Order("issued_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

package store

import (
	"strings"
	"time"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	Update(id string, updMap map[string]interface{}) error
	SetLastLogin(id string) error
	List(filter Filter, page, limit int) (list []dbmodels.User, err error)
	ListCount(filter Filter) (count int64, err error)

	CreateRole(rec dbmodels.Role, permissions []string) (id string, err error)
	GetRole(id string) (rec *dbmodels.Role, err error)
	ListRoles() (list []dbmodels.Role, err error)
	DeleteRole(id string) error
	AssignRole(rec dbmodels.UserRole) error
	RevokeRole(userID, roleID string) error
}

type Filter struct {
	Search string
	Status string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	existed, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("пользователь с таким email уже существует")
	}
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", id).
		Preload("Roles").
		Preload("Roles.Role").
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
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
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) SetLastLogin(id string) error {
	return i.Update(id, map[string]interface{}{"last_login": time.Now()})
}

func (i impl) List(filter Filter, page, limit int) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(dbmodels.User{})
	i.addFilter(tx, filter)
	tx.Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit)
	err = tx.Preload("Roles.Role").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter Filter) (count int64, err error) {
	tx := i.db.Model(dbmodels.User{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения количества пользователей")
	}
	return count, nil
}

func (i impl) addFilter(tx *gorm.DB, filter Filter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(last_name,' ',first_name)) like ? or LOWER(email) like ?", searchValue, searchValue)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
}

func (i impl) CreateRole(rec dbmodels.Role, permissions []string) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	var rowCount int64
	err = i.db.Model(dbmodels.Role{}).Where("code = ?", rec.Code).Count(&rowCount).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки уникальности роли")
	}
	if rowCount != 0 {
		return "", errors.New("роль с таким кодом уже существует")
	}
	// роль и ее права создаются одной транзакцией
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		for _, permission := range permissions {
			link := dbmodels.RolePermission{
				RoleID:         rec.ID,
				PermissionCode: models.PermissionCode(permission),
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetRole(id string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.
		Where("id = ?", id).
		Preload("Permissions").
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

func (i impl) ListRoles() (list []dbmodels.Role, err error) {
	list = []dbmodels.Role{}
	err = i.db.Preload("Permissions").Order("code").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteRole(id string) error {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&dbmodels.RolePermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&dbmodels.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&dbmodels.Role{}).Error
	})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления роли")
	}
	return nil
}

func (i impl) AssignRole(rec dbmodels.UserRole) error {
	var rowCount int64
	err := i.db.Model(dbmodels.UserRole{}).
		Where("user_id = ? AND role_id = ? AND worksite_id = ?", rec.UserID, rec.RoleID, rec.WorksiteID).
		Count(&rowCount).Error
	if err != nil {
		return err
	}
	if rowCount != 0 {
		return nil
	}
	return i.db.Create(&rec).Error
}

func (i impl) RevokeRole(userID, roleID string) error {
	return i.db.
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&dbmodels.UserRole{}).
		Error
}

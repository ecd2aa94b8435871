package dbmodels

import (
	"fmt"
	"time"
	"workforce-backend/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	Status      models.UserStatus `gorm:"type:varchar(20)"`
	Locale      string `gorm:"type:varchar(5)"`
	Theme       string `gorm:"type:varchar(20)"`
	LastLogin   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Roles []UserRole `gorm:"foreignKey:UserID"`
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%s %s", u.LastName, u.FirstName)
}

func (u User) Validate() error {
	if u.Email == "" {
		return errors.New("не указан email пользователя")
	}
	if u.Password == "" {
		return errors.New("не указан пароль пользователя")
	}
	return nil
}

// Role - именованный набор прав.
// Системные роли недоступны для удаления пользователем,
// site_scoped роли действуют только в рамках объекта из назначения
type Role struct {
	BaseModel
	Code       string `gorm:"type:varchar(50);uniqueIndex"`
	Name       string `gorm:"type:varchar(150)"`
	IsSystem   bool
	SiteScoped bool

	Permissions []RolePermission `gorm:"foreignKey:RoleID"`
}

func (r Role) Validate() error {
	if r.Code == "" {
		return errors.New("не указан код роли")
	}
	if r.Name == "" {
		return errors.New("не указано название роли")
	}
	return nil
}

// Permission - запись каталога прав, заполняется при старте
type Permission struct {
	BaseModel
	Code        models.PermissionCode `gorm:"type:varchar(64);uniqueIndex"`
	Description string                `gorm:"type:varchar(255)"`
}

type RolePermission struct {
	BaseModel
	RoleID         string                `gorm:"type:varchar(36);index;uniqueIndex:idx_role_perm"`
	PermissionCode models.PermissionCode `gorm:"type:varchar(64);uniqueIndex:idx_role_perm"`
}

// UserRole - назначение роли пользователю,
// для site_scoped ролей заполняется WorksiteID
type UserRole struct {
	BaseModel
	UserID     string `gorm:"type:varchar(36);index"`
	RoleID     string `gorm:"type:varchar(36);index"`
	WorksiteID string `gorm:"type:varchar(36)"`

	Role Role `gorm:"foreignKey:RoleID"`
}

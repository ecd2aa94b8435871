package store

import (
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetUserAssignments(userID string) (list []dbmodels.UserRole, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetUserAssignments(userID string) (list []dbmodels.UserRole, err error) {
	list = []dbmodels.UserRole{}
	err = i.db.
		Where("user_id = ?", userID).
		Preload("Role").
		Preload("Role.Permissions").
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

package rbac

import (
	"workforce-backend/db"
	"workforce-backend/lib/rbac/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
)

type Provider interface {
	ResolveForUser(userID string) (PermissionSet, error)
	Check(userID string, code models.PermissionCode) (bool, error)
	CheckAt(userID string, code models.PermissionCode, worksiteID string) (bool, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
}

func (i impl) ResolveForUser(userID string) (PermissionSet, error) {
	assignments, err := i.store.GetUserAssignments(userID)
	if err != nil {
		return PermissionSet{}, err
	}
	return Resolve(assignments), nil
}

func (i impl) Check(userID string, code models.PermissionCode) (bool, error) {
	set, err := i.ResolveForUser(userID)
	if err != nil {
		return false, err
	}
	return set.Has(code), nil
}

func (i impl) CheckAt(userID string, code models.PermissionCode, worksiteID string) (bool, error) {
	set, err := i.ResolveForUser(userID)
	if err != nil {
		return false, err
	}
	return set.HasAt(code, worksiteID), nil
}

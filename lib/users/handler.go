package users

import (
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/users/store"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	usersapimodels "workforce-backend/models/api/users"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Create(actorID string, request usersapimodels.UserData) (id string, err error)
	Get(id string) (view usersapimodels.UserView, err error)
	Update(actorID, id string, patch usersapimodels.UserPatch) error
	Deactivate(actorID, id string) error
	List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, count int64, err error)

	CreateRole(actorID string, request usersapimodels.RoleData) (id string, err error)
	ListRoles() (list []usersapimodels.RoleView, err error)
	DeleteRole(actorID, id string) error
	AssignRole(actorID, userID string, request usersapimodels.AssignRoleRequest) error
	RevokeRole(actorID, userID, roleID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
		audit: audit.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
	audit audit.Provider
}

func (i impl) Create(actorID string, request usersapimodels.UserData) (id string, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "ошибка хеширования пароля")
	}
	locale := request.Locale
	if locale == "" {
		locale = "ru"
	}
	rec := dbmodels.User{
		Email:       request.Email,
		Password:    string(hash),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		PhoneNumber: request.PhoneNumber,
		Status:      models.UserStatusActive,
		Locale:      locale,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("user_id", id).Info("создан пользователь")
	i.audit.Log(actorID, models.AuditActionCreate, "User", id, dbmodels.EntityChanges{Description: "создан пользователь " + request.Email})
	return id, nil
}

func (i impl) Get(id string) (usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, errors.New("пользователь не найден")
	}
	return convertUser(*rec), nil
}

func (i impl) Update(actorID, id string, patch usersapimodels.UserPatch) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("пользователь не найден")
	}
	updMap := map[string]interface{}{}
	changes := []dbmodels.FieldChanges{}
	if patch.FirstName != nil && *patch.FirstName != rec.FirstName {
		updMap["first_name"] = *patch.FirstName
		changes = append(changes, dbmodels.FieldChanges{Field: "first_name", OldValue: rec.FirstName, NewValue: *patch.FirstName})
	}
	if patch.LastName != nil && *patch.LastName != rec.LastName {
		updMap["last_name"] = *patch.LastName
		changes = append(changes, dbmodels.FieldChanges{Field: "last_name", OldValue: rec.LastName, NewValue: *patch.LastName})
	}
	if patch.PhoneNumber != nil && *patch.PhoneNumber != rec.PhoneNumber {
		updMap["phone_number"] = *patch.PhoneNumber
		changes = append(changes, dbmodels.FieldChanges{Field: "phone_number", OldValue: rec.PhoneNumber, NewValue: *patch.PhoneNumber})
	}
	if patch.Locale != nil && *patch.Locale != rec.Locale {
		updMap["locale"] = *patch.Locale
		changes = append(changes, dbmodels.FieldChanges{Field: "locale", OldValue: rec.Locale, NewValue: *patch.Locale})
	}
	if patch.Theme != nil && *patch.Theme != rec.Theme {
		updMap["theme"] = *patch.Theme
		changes = append(changes, dbmodels.FieldChanges{Field: "theme", OldValue: rec.Theme, NewValue: *patch.Theme})
	}
	if patch.Status != nil && models.UserStatus(*patch.Status) != rec.Status {
		updMap["status"] = *patch.Status
		changes = append(changes, dbmodels.FieldChanges{Field: "status", OldValue: string(rec.Status), NewValue: *patch.Status})
	}
	if len(updMap) == 0 {
		return nil
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, "User", id, dbmodels.EntityChanges{Data: changes})
	return nil
}

func (i impl) Deactivate(actorID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("пользователь не найден")
	}
	err = i.store.Update(id, map[string]interface{}{"status": models.UserStatusInactive})
	if err != nil {
		return err
	}
	log.WithField("user_id", id).Info("пользователь отключен")
	i.audit.Log(actorID, models.AuditActionDeactivate, "User", id, dbmodels.EntityChanges{Description: "пользователь отключен"})
	return nil
}

func (i impl) List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, count int64, err error) {
	storeFilter := store.Filter{Search: filter.Search, Status: filter.Status}
	count, err = i.store.ListCount(storeFilter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	recList, err := i.store.List(storeFilter, page, limit)
	if err != nil {
		return nil, 0, err
	}
	list = make([]usersapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convertUser(rec))
	}
	return list, count, nil
}

func (i impl) CreateRole(actorID string, request usersapimodels.RoleData) (id string, err error) {
	rec := dbmodels.Role{
		Code:       request.Code,
		Name:       request.Name,
		SiteScoped: request.SiteScoped,
	}
	id, err = i.store.CreateRole(rec, request.Permissions)
	if err != nil {
		return "", err
	}
	i.audit.Log(actorID, models.AuditActionCreate, "Role", id, dbmodels.EntityChanges{Description: "создана роль " + request.Code})
	return id, nil
}

func (i impl) ListRoles() (list []usersapimodels.RoleView, err error) {
	recList, err := i.store.ListRoles()
	if err != nil {
		return nil, err
	}
	list = make([]usersapimodels.RoleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, convertRole(rec))
	}
	return list, nil
}

func (i impl) DeleteRole(actorID, id string) error {
	rec, err := i.store.GetRole(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("роль не найдена")
	}
	if rec.IsSystem {
		return errors.New("системная роль недоступна для удаления")
	}
	if err = i.store.DeleteRole(id); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionDelete, "Role", id, dbmodels.EntityChanges{Description: "удалена роль " + rec.Code})
	return nil
}

func (i impl) AssignRole(actorID, userID string, request usersapimodels.AssignRoleRequest) error {
	role, err := i.store.GetRole(request.RoleID)
	if err != nil {
		return err
	}
	if role == nil {
		return errors.New("роль не найдена")
	}
	if role.SiteScoped && request.WorksiteID == "" {
		return errors.New("для site_scoped роли требуется объект")
	}
	rec := dbmodels.UserRole{
		UserID:     userID,
		RoleID:     request.RoleID,
		WorksiteID: request.WorksiteID,
	}
	if err = i.store.AssignRole(rec); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, "User", userID, dbmodels.EntityChanges{Description: "назначена роль " + role.Code})
	return nil
}

func (i impl) RevokeRole(actorID, userID, roleID string) error {
	if err := i.store.RevokeRole(userID, roleID); err != nil {
		return err
	}
	i.audit.Log(actorID, models.AuditActionUpdate, "User", userID, dbmodels.EntityChanges{Description: "отозвана роль"})
	return nil
}

func convertUser(rec dbmodels.User) usersapimodels.UserView {
	view := usersapimodels.UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		PhoneNumber: rec.PhoneNumber,
		Status:      string(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		Locale:      rec.Locale,
	}
	for _, assignment := range rec.Roles {
		view.Roles = append(view.Roles, usersapimodels.RoleView{
			ID:         assignment.Role.ID,
			Code:       assignment.Role.Code,
			Name:       assignment.Role.Name,
			IsSystem:   assignment.Role.IsSystem,
			SiteScoped: assignment.Role.SiteScoped,
			WorksiteID: assignment.WorksiteID,
		})
	}
	return view
}

func convertRole(rec dbmodels.Role) usersapimodels.RoleView {
	view := usersapimodels.RoleView{
		ID:         rec.ID,
		Code:       rec.Code,
		Name:       rec.Name,
		IsSystem:   rec.IsSystem,
		SiteScoped: rec.SiteScoped,
	}
	for _, perm := range rec.Permissions {
		view.Permissions = append(view.Permissions, string(perm.PermissionCode))
	}
	return view
}

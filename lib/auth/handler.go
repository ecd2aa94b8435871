package auth

import (
	"workforce-backend/db"
	"workforce-backend/lib/audit"
	"workforce-backend/lib/rbac"
	usersstore "workforce-backend/lib/users/store"
	authutils "workforce-backend/lib/utils/auth-utils"
	initchecker "workforce-backend/lib/utils/init-checker"
	"workforce-backend/models"
	authapimodels "workforce-backend/models/api/auth"
	dbmodels "workforce-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// сообщение намеренно одинаково для неизвестного email и неверного пароля
var errInvalidCredentials = errors.New("неверный email или пароль")

type Provider interface {
	Login(email, password string) (resp authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error)
	Me(userID string) (info authapimodels.UserInfo, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		usersStore: usersstore.NewInstance(db.DB),
		rbac:       rbac.Instance,
		audit:      audit.Instance,
	}
	initchecker.CheckInit(
		"usersStore", instance.usersStore,
		"rbac", instance.rbac,
		"audit", instance.audit,
	)
	Instance = instance
}

type impl struct {
	usersStore usersstore.Provider
	rbac       rbac.Provider
	audit      audit.Provider
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	rec, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка поиска пользователя")
	}
	if rec == nil {
		return authapimodels.JWTResponse{}, errInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(password)); err != nil {
		return authapimodels.JWTResponse{}, errInvalidCredentials
	}
	switch rec.Status {
	case models.UserStatusActive:
	case models.UserStatusInactive:
		return authapimodels.JWTResponse{}, errors.New("учетная запись отключена")
	case models.UserStatusSuspended:
		return authapimodels.JWTResponse{}, errors.New("учетная запись заблокирована")
	default:
		return authapimodels.JWTResponse{}, errors.New("учетная запись недоступна")
	}
	resp, err := i.issueTokens(*rec)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if err = i.usersStore.SetLastLogin(rec.ID); err != nil {
		log.WithError(err).WithField("user_id", rec.ID).Warn("не удалось обновить дату входа")
	}
	i.audit.Log(rec.ID, models.AuditActionLogin, "User", rec.ID, dbmodels.EntityChanges{Description: "вход в систему"})
	return resp, nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if rec == nil {
		return authapimodels.JWTResponse{}, errors.New("пользователь не найден")
	}
	if rec.Status != models.UserStatusActive {
		return authapimodels.JWTResponse{}, errors.New("учетная запись недоступна")
	}
	return i.issueTokens(*rec)
}

func (i impl) Me(userID string) (authapimodels.UserInfo, error) {
	rec, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.UserInfo{}, err
	}
	if rec == nil {
		return authapimodels.UserInfo{}, errors.New("пользователь не найден")
	}
	set, err := i.rbac.ResolveForUser(userID)
	if err != nil {
		return authapimodels.UserInfo{}, err
	}
	return userInfo(*rec, set), nil
}

func (i impl) issueTokens(rec dbmodels.User) (authapimodels.JWTResponse, error) {
	set, err := i.rbac.ResolveForUser(rec.ID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	accessToken, err := authutils.GetToken(rec.ID, rec.GetFullName(), set.IsSuperAdmin())
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка выпуска токена")
	}
	refreshToken, err := authutils.GetRefreshToken(rec.ID, rec.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка выпуска refresh токена")
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userInfo(rec, set),
	}, nil
}

func userInfo(rec dbmodels.User, set rbac.PermissionSet) authapimodels.UserInfo {
	info := authapimodels.UserInfo{
		ID:          rec.ID,
		Email:       rec.Email,
		FullName:    rec.GetFullName(),
		Locale:      rec.Locale,
		Permissions: set.Codes(),
	}
	for _, role := range set.Roles() {
		info.Roles = append(info.Roles, authapimodels.RoleInfo{
			Code:       role.Code,
			Name:       role.Name,
			WorksiteID: role.WorksiteID,
		})
	}
	return info
}

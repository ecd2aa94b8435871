package usersapimodels

import (
	"strings"
	apimodels "workforce-backend/models/api"

	"github.com/pkg/errors"
)

type UserData struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Locale      string `json:"locale"`
}

func (r UserData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указан email")
	}
	if len(r.Password) < 8 {
		return errors.New("пароль короче 8 символов")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указано имя пользователя")
	}
	return nil
}

// UserPatch - частичное обновление, поле меняется только когда указано
type UserPatch struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Locale      *string `json:"locale"`
	Theme       *string `json:"theme"`
	Status      *string `json:"status"`
}

type UserView struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number"`
	Status      string     `json:"status"`
	StatusName  string     `json:"status_name"`
	Locale      string     `json:"locale"`
	Roles       []RoleView `json:"roles"`
}

type RoleData struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	SiteScoped  bool     `json:"site_scoped"`
	Permissions []string `json:"permissions"`
}

func (r RoleData) Validate() error {
	if r.Code == "" {
		return errors.New("не указан код роли")
	}
	if r.Name == "" {
		return errors.New("не указано название роли")
	}
	return nil
}

type RoleView struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	IsSystem    bool     `json:"is_system"`
	SiteScoped  bool     `json:"site_scoped"`
	WorksiteID  string   `json:"worksite_id,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

type AssignRoleRequest struct {
	RoleID     string `json:"role_id"`
	WorksiteID string `json:"worksite_id"`
}

func (r AssignRoleRequest) Validate() error {
	if r.RoleID == "" {
		return errors.New("не указана роль")
	}
	return nil
}

type UserFilter struct {
	apimodels.PageRequest
	Search string `json:"search" query:"search"`
	Status string `json:"status" query:"status"`
}

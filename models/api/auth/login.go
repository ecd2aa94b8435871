package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указан email")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh token")
	}
	return nil
}

type JWTResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         UserInfo `json:"user"`
}

type UserInfo struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Locale      string     `json:"locale"`
	Roles       []RoleInfo `json:"roles"`
	Permissions []string   `json:"permissions"`
}

type RoleInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	WorksiteID string `json:"worksite_id,omitempty"`
}

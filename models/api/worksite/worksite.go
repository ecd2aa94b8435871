package worksiteapimodels

import (
	"github.com/pkg/errors"
)

type WorksiteData struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ManagerName  string `json:"manager_name"`
	ManagerPhone string `json:"manager_phone"`
}

func (r WorksiteData) Validate() error {
	if r.Code == "" {
		return errors.New("не указан код объекта")
	}
	if r.Name == "" {
		return errors.New("не указано название объекта")
	}
	return nil
}

type WorksitePatch struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	Status       *string `json:"status"`
	ManagerName  *string `json:"manager_name"`
	ManagerPhone *string `json:"manager_phone"`
}

type WorksiteView struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	ManagerName  string `json:"manager_name"`
	ManagerPhone string `json:"manager_phone"`
	IsActive     bool   `json:"is_active"`
}

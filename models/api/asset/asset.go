package assetapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type AssetData struct {
	CategoryID   string `json:"category_id"`
	WorksiteID   string `json:"worksite_id"`
	InventoryNo  string `json:"inventory_no"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
}

func (r AssetData) Validate() error {
	if r.InventoryNo == "" {
		return errors.New("не указан инвентарный номер")
	}
	if r.Name == "" {
		return errors.New("не указано название имущества")
	}
	return nil
}

type AssetView struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	WorksiteID   string          `json:"worksite_id,omitempty"`
	InventoryNo  string          `json:"inventory_no"`
	Name         string          `json:"name"`
	SerialNumber string          `json:"serial_number,omitempty"`
	Status       string          `json:"status"`
	Assignment   *AssignmentView `json:"assignment,omitempty"`
}

type AssetFilter struct {
	CategoryID string `json:"category_id" query:"category_id"`
	WorksiteID string `json:"worksite_id" query:"worksite_id"`
	Status     string `json:"status" query:"status"`
}

type AssignRequest struct {
	EmployeeID string `json:"employee_id"`
	Note       string `json:"note"`
}

func (r AssignRequest) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан работник")
	}
	return nil
}

type AssignmentView struct {
	ID         string     `json:"id"`
	AssetID    string     `json:"asset_id"`
	EmployeeID string     `json:"employee_id"`
	IssuedAt   time.Time  `json:"issued_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	Note       string     `json:"note,omitempty"`
}

package dto

import "time"

// CompanySettingsRequest datos de la empresa.
type CompanySettingsRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Document string `json:"document" validate:"max=20"`
	Address  string `json:"address" validate:"max=300"`
	Phone    string `json:"phone" validate:"max=40"`
}

// CompanySettingsResponse datos guardados (vacíos si nunca se configuró).
type CompanySettingsResponse struct {
	Name      string     `json:"name"`
	Document  string     `json:"document"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

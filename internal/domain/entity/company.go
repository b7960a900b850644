package entity

import "time"

// CompanySettings datos de la empresa (fila única id=1) usados en el comprobante.
type CompanySettings struct {
	Name      string
	Document  string // CNPJ
	Address   string
	Phone     string
	UpdatedAt time.Time
}

// DisplayName nombre para el encabezado o "Sys360" si nunca se configuró.
func (c CompanySettings) DisplayName() string {
	if c.Name == "" {
		return "Sys360"
	}
	return c.Name
}

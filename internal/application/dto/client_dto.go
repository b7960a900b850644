package dto

// ClientRequest entrada para crear o actualizar un cliente.
type ClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone" validate:"max=40"`
	Email   string `json:"email" validate:"omitempty,email"`
	CPFCNPJ string `json:"cpf_cnpj" validate:"required,cpf_cnpj"`
	Address string `json:"address" validate:"max=300"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CPFCNPJ      string `json:"cpf_cnpj"`
	DocumentKind string `json:"document_kind"`
	Address      string `json:"address"`
}

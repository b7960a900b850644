package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de creación.
type IDResponse struct {
	ID int64 `json:"id"`
}

// AffectedResponse respuesta de update/delete con filas afectadas.
type AffectedResponse struct {
	RowsAffected int64 `json:"rows_affected"`
}

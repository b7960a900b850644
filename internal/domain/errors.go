package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("registro não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrValidation        = errors.New("validação falhou")
	ErrDuplicate         = errors.New("registro duplicado")
	ErrUnauthorized      = errors.New("usuário ou senha inválidos")
	ErrForbidden         = errors.New("acesso negado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// ValidationError rechazo de una operación con un motivo legible para el operador.
// errors.Is(err, ErrValidation) es verdadero; Cause (si existe) sigue accesible con errors.Is/As.
type ValidationError struct {
	Reason string
	Cause  error
}

// NewValidationError construye el error con motivo formateado.
func NewValidationError(cause error, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Reason devuelve el motivo legible si err es un ValidationError, o err.Error() en otro caso.
func Reason(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return err.Error()
}

package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	onlyDigits = regexp.MustCompile(`\D`)
)

// Validator valida structs con tags `validate`.
type Validator interface {
	Validate(s any) error
}

// DefaultValidator implementación sobre go-playground/validator con reglas propias.
type DefaultValidator struct {
	v *validator.Validate
}

// New crea el validador registrando las reglas de documento (cpf_cnpj) y dinero no negativo.
func New() (*DefaultValidator, error) {
	v := validator.New()
	if err := v.RegisterValidation("cpf_cnpj", validateCPFCNPJ); err != nil {
		return nil, fmt.Errorf("registrar validador cpf_cnpj: %w", err)
	}
	return &DefaultValidator{v: v}, nil
}

// MustNew igual que New pero entra en pánico si el registro falla (solo en arranque).
func MustNew() *DefaultValidator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate valida el struct.
func (v *DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// Var valida un valor suelto con un tag (ej. "email").
func (v *DefaultValidator) Var(field any, tag string) error {
	return v.v.Var(field, tag)
}

// IsValidationError indica si err proviene del validador.
func IsValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// Message convierte los errores del validador en un texto legible, un campo por frase.
func Message(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field()+": "+FieldMessage(fe))
	}
	return strings.Join(parts, "; ")
}

// FieldMessage mensaje para un campo inválido.
func FieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "min":
		return fmt.Sprintf("deve ter no mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ter no máximo %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de [%s]", fe.Param())
	case "cpf_cnpj":
		return "CPF deve ter 11 dígitos ou CNPJ 14 dígitos"
	default:
		return "inválido"
	}
}

// Digits devuelve solo los dígitos de s (CPF/CNPJ, telefone).
func Digits(s string) string {
	return onlyDigits.ReplaceAllString(s, "")
}

func validateCPFCNPJ(fl validator.FieldLevel) bool {
	n := len(Digits(fl.Field().String()))
	return n == 11 || n == 14
}

package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliente struct {
	Nome  string `validate:"required"`
	Doc   string `validate:"required,cpf_cnpj"`
	Email string `validate:"omitempty,email"`
}

func TestValidate_CPFCNPJ(t *testing.T) {
	v := MustNew()

	require.NoError(t, v.Validate(cliente{Nome: "Ana", Doc: "123.456.789-01"}))
	require.NoError(t, v.Validate(cliente{Nome: "Loja", Doc: "12.345.678/0001-90"}))

	err := v.Validate(cliente{Nome: "Ana", Doc: "1234"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, Message(err), "Doc")
}

func TestValidate_Email(t *testing.T) {
	v := MustNew()
	err := v.Validate(cliente{Nome: "Ana", Doc: "12345678901", Email: "ana@"})
	require.Error(t, err)
	assert.Contains(t, Message(err), "e-mail inválido")
}

func TestMessage_ErrorComum(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678901", Digits("123.456.789-01"))
}

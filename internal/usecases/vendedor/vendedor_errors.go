package vendedor

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Erros do contexto de vendedores
var (
	// Erros de validação
	ErrDadosIncompletos = errors.New("dados incompletos")
	ErrCPFInvalido      = errors.New("CPF inválido")
	ErrEmailInvalido    = errors.New("email inválido")
	ErrEstadoInvalido   = errors.New("estado (UF) inválido")

	// Erros de unicidade
	ErrCPFJaCadastrado   = errors.New("CPF já cadastrado")
	ErrEmailJaCadastrado = errors.New("email já cadastrado")

	// Erros de busca
	ErrVendedorNaoEncontrado = errors.New("vendedor não encontrado")

	// Erros de banco de dados
	ErrOperacaoBanco = errors.New("erro ao realizar operação no banco de dados")
)

// VendedorError é um erro com contexto adicional para vendedores
type VendedorError struct {
	Err     error  // Erro base
	CPF     string // CPF do vendedor envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *VendedorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *VendedorError) Unwrap() error {
	return e.Err
}

// NewVendedorError cria um novo VendedorError
func NewVendedorError(err error, cpf string, details string) *VendedorError {
	return &VendedorError{
		Err:     err,
		CPF:     cpf,
		Details: details,
	}
}

// MapearErroValidacao traduz o erro do validator para o erro de domínio do
// primeiro campo rejeitado
func MapearErroValidacao(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return ErrDadosIncompletos
	}

	fieldErr := validationErrors[0]
	if fieldErr.Tag() == "required" {
		return ErrDadosIncompletos
	}

	switch fieldErr.Field() {
	case "CPF":
		return ErrCPFInvalido
	case "Email":
		return ErrEmailInvalido
	case "Estado":
		return ErrEstadoInvalido
	}

	return ErrDadosIncompletos
}

package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Vendedor representa um vendedor cadastrado
type Vendedor struct {
	ID             int       `json:"id"`
	Nome           string    `json:"nome" validate:"required"`
	CPF            string    `json:"cpf" validate:"required,cpf"`
	DataNascimento string    `json:"data_nascimento" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Estado         string    `json:"estado" validate:"required,uf"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// AtualizarVendedorRequest carrega os campos de uma atualização parcial.
// Campos nil não são alterados.
type AtualizarVendedorRequest struct {
	Nome           *string `json:"nome,omitempty"`
	CPF            *string `json:"cpf,omitempty"`
	DataNascimento *string `json:"data_nascimento,omitempty"`
	Email          *string `json:"email,omitempty"`
	Estado         *string `json:"estado,omitempty"`
}

// ResultadoImportacao resume uma importação de vendedores via planilha
type ResultadoImportacao struct {
	ImportID    string `json:"import_id"`
	Criados     int    `json:"criados"`
	Atualizados int    `json:"atualizados"`
}

var ufsValidas = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return ValidarCPF(fl.Field().String())
	})

	_ = validate.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		return ufsValidas[fl.Field().String()]
	})
}

// Validar verifica os campos obrigatórios e os formatos de CPF, email e UF
func (v *Vendedor) Validar() error {
	return validate.Struct(v)
}

// ValidarCPF verifica o formato e os dígitos verificadores de um CPF.
// Aceita o CPF com ou sem pontuação.
func ValidarCPF(cpf string) bool {
	digitos := make([]int, 0, 11)
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digitos = append(digitos, int(r-'0'))
		case r == '.' || r == '-':
			// pontuação é ignorada
		default:
			return false
		}
	}

	if len(digitos) != 11 {
		return false
	}

	// CPFs com todos os dígitos iguais passam no cálculo, mas são inválidos
	todosIguais := true
	for _, d := range digitos[1:] {
		if d != digitos[0] {
			todosIguais = false
			break
		}
	}
	if todosIguais {
		return false
	}

	return digitoVerificador(digitos, 9) == digitos[9] &&
		digitoVerificador(digitos, 10) == digitos[10]
}

func digitoVerificador(digitos []int, tamanho int) int {
	soma := 0
	for i := 0; i < tamanho; i++ {
		soma += digitos[i] * (tamanho + 1 - i)
	}

	resto := (soma * 10) % 11
	if resto == 10 {
		return 0
	}
	return resto
}

package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro retornados pela API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de vendedor (VEN)
	ErrVendedorNotFound = "VEN_001" // Vendedor não encontrado
	ErrCPFAlreadyExists = "VEN_002" // CPF já cadastrado
	ErrEmailExists      = "VEN_003" // Email já cadastrado

	// Erros de planilha (CSV)
	ErrMissingColumns = "CSV_001" // Colunas obrigatórias ausentes
	ErrUnparseableRow = "CSV_002" // Valor de data ou moeda inválido
	ErrUnreadableFile = "CSV_003" // Arquivo ausente ou ilegível

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrArtifactWrite     = "SRV_003" // Erro ao gravar arquivo de saída
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrVendedorNotFound:    http.StatusNotFound,
	ErrCPFAlreadyExists:    http.StatusBadRequest,
	ErrEmailExists:         http.StatusBadRequest,
	ErrMissingColumns:      http.StatusBadRequest,
	ErrUnparseableRow:      http.StatusBadRequest,
	ErrUnreadableFile:      http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrArtifactWrite:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/internal/usecases/vendedor"
	"github.com/aawz/vendedores-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CriarVendedor cadastra um novo vendedor
func CriarVendedor(service vendedor.VendedorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var novo *domain.Vendedor

		if err := json.NewDecoder(r.Body).Decode(&novo); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		criado, err := service.Criar(r.Context(), novo)
		if err != nil {
			logrus.Error(err)
			escreverErroVendedor(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]int{"id": criado.ID}); err != nil {
			logrus.Error(err)
		}
	}
}

// ListarVendedores retorna todos os vendedores cadastrados
func ListarVendedores(service vendedor.VendedorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendedores, err := service.Listar(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendedores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendedores); err != nil {
			logrus.Error(err)
		}
	}
}

// BuscarVendedor retorna um vendedor por ID
func BuscarVendedor(service vendedor.VendedorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idDaRota(w, r)
		if !ok {
			return
		}

		encontrado, err := service.Buscar(r.Context(), id)
		if err != nil {
			logrus.Error(err)
			escreverErroVendedor(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(encontrado); err != nil {
			logrus.Error(err)
		}
	}
}

// AtualizarVendedor aplica uma atualização parcial a um vendedor
func AtualizarVendedor(service vendedor.VendedorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idDaRota(w, r)
		if !ok {
			return
		}

		var req domain.AtualizarVendedorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		atualizado, err := service.Atualizar(r.Context(), id, &req)
		if err != nil {
			logrus.Error(err)
			escreverErroVendedor(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(atualizado); err != nil {
			logrus.Error(err)
		}
	}
}

// RemoverVendedor exclui um vendedor por ID
func RemoverVendedor(service vendedor.VendedorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idDaRota(w, r)
		if !ok {
			return
		}

		if err := service.Remover(r.Context(), id); err != nil {
			logrus.Error(err)
			escreverErroVendedor(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"message": "Vendedor removido com sucesso"}); err != nil {
			logrus.Error(err)
		}
	}
}

func idDaRota(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do vendedor não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do vendedor inválido", nil)
		return 0, false
	}

	return id, true
}

// escreverErroVendedor traduz os erros do serviço de vendedores para a
// resposta HTTP padronizada
func escreverErroVendedor(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vendedor.ErrVendedorNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrVendedorNotFound, "Vendedor não encontrado", nil)
	case errors.Is(err, vendedor.ErrCPFJaCadastrado):
		apiErrors.WriteError(w, apiErrors.ErrCPFAlreadyExists, "CPF já cadastrado", nil)
	case errors.Is(err, vendedor.ErrEmailJaCadastrado):
		apiErrors.WriteError(w, apiErrors.ErrEmailExists, "Email já cadastrado", nil)
	case errors.Is(err, vendedor.ErrDadosIncompletos):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados incompletos", nil)
	case errors.Is(err, vendedor.ErrCPFInvalido),
		errors.Is(err, vendedor.ErrEmailInvalido),
		errors.Is(err, vendedor.ErrEstadoInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)
	}
}

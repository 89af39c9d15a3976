package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/aawz/vendedores-api/internal/planilha"
	"github.com/aawz/vendedores-api/internal/usecases/comissao"
	"github.com/aawz/vendedores-api/internal/usecases/importacao"
	"github.com/aawz/vendedores-api/internal/usecases/vendas"
	"github.com/aawz/vendedores-api/internal/usecases/vendedor"
	"github.com/aawz/vendedores-api/pkg/apiErrors"
)

// Limite de memória para o parse do multipart (32 MB, padrão do net/http)
const maxUploadMemory = 32 << 20

// campo do formulário que carrega a planilha
const campoArquivo = "arquivo"

// ImportarVendedores processa a planilha de cadastro de vendedores
func ImportarVendedores(service importacao.ImportacaoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		arquivo, ok := arquivoDoUpload(w, r)
		if !ok {
			return
		}
		defer arquivo.Close()

		resultado, err := service.ImportarVendedores(r.Context(), arquivo)
		if err != nil {
			logrus.Error(err)
			if !escreverErroPlanilha(w, err) {
				escreverErroVendedor(w, err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"message":     "Vendedores importados com sucesso",
			"import_id":   resultado.ImportID,
			"criados":     resultado.Criados,
			"atualizados": resultado.Atualizados,
		}); err != nil {
			logrus.Error(err)
		}
	}
}

// FormularioImportacao devolve um formulário HTML simples de upload
func FormularioImportacao() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="pt-BR">
<head><title>Importar vendedores</title></head>
<body>
  <h1>Importar vendedores</h1>
  <form method="post" enctype="multipart/form-data">
    <input type="file" name=%q accept=".csv">
    <button type="submit">Enviar</button>
  </form>
</body>
</html>`, campoArquivo)
	}
}

// CalcularComissao calcula as comissões do relatório de vendas enviado e
// responde com o caminho do arquivo gerado
func CalcularComissao(service comissao.ComissaoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		arquivo, ok := arquivoDoUpload(w, r)
		if !ok {
			return
		}
		defer arquivo.Close()

		caminho, err := service.CalcularComissoes(r.Context(), arquivo)
		if err != nil {
			logrus.Error(err)
			if escreverErroPlanilha(w, err) {
				return
			}
			if errors.Is(err, comissao.ErrEscritaArquivo) {
				apiErrors.WriteError(w, apiErrors.ErrArtifactWrite, "Erro ao gravar arquivo de comissões", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular comissões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message":   "Comissões calculadas com sucesso",
			"file_path": caminho,
		}); err != nil {
			logrus.Error(err)
		}
	}
}

// VolumeVendas agrega o volume de vendas por canal e persiste o resultado
func VolumeVendas(service vendas.VolumeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		arquivo, ok := arquivoDoUpload(w, r)
		if !ok {
			return
		}
		defer arquivo.Close()

		if err := service.AgregarVolume(r.Context(), arquivo); err != nil {
			logrus.Error(err)
			if !escreverErroPlanilha(w, err) {
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao persistir volume de vendas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "Volume de vendas agregado com sucesso",
		}); err != nil {
			logrus.Error(err)
		}
	}
}

// VolumePorCanal devolve os agregados de volume já persistidos de um canal
func VolumePorCanal(service vendas.VolumeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		canal := r.URL.Query().Get("canal")

		agregados, err := service.ListarVolume(r.Context(), canal)
		if err != nil {
			logrus.Error(err)
			if errors.Is(err, vendas.ErrCanalDesconhecido) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Canal de venda desconhecido", canal)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar volume de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(agregados); err != nil {
			logrus.Error(err)
		}
	}
}

// arquivoDoUpload extrai a planilha enviada no formulário multipart
func arquivoDoUpload(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrUnreadableFile, "Arquivo não enviado ou ilegível", nil)
		return nil, false
	}

	arquivo, _, err := r.FormFile(campoArquivo)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrUnreadableFile, "Arquivo não enviado ou ilegível", nil)
		return nil, false
	}

	return arquivo, true
}

// escreverErroPlanilha traduz os erros de leitura de planilha. Retorna false
// quando o erro não é de planilha e segue para o tradutor do chamador.
func escreverErroPlanilha(w http.ResponseWriter, err error) bool {
	var colunasAusentes *planilha.ErroColunasAusentes
	if errors.As(err, &colunasAusentes) {
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, colunasAusentes.Error(), colunasAusentes.Colunas)
		return true
	}

	var erroFormato *planilha.ErroFormato
	if errors.As(err, &erroFormato) {
		apiErrors.WriteError(w, apiErrors.ErrUnparseableRow, erroFormato.Error(), nil)
		return true
	}

	if errors.Is(err, planilha.ErrArquivoIlegivel) {
		apiErrors.WriteError(w, apiErrors.ErrUnreadableFile, err.Error(), nil)
		return true
	}

	// Erros de validação de linha da importação também respondem 400
	if errors.Is(err, vendedor.ErrDadosIncompletos) ||
		errors.Is(err, vendedor.ErrCPFInvalido) ||
		errors.Is(err, vendedor.ErrEmailInvalido) ||
		errors.Is(err, vendedor.ErrEstadoInvalido) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return true
	}

	return false
}

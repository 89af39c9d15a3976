// Package comissao calcula a comissão de cada venda de um relatório CSV e
// grava o resultado em um arquivo de saída.
package comissao

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/aawz/vendedores-api/internal/config"
	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/internal/planilha"
	"github.com/aawz/vendedores-api/pkg/log"
	"github.com/aawz/vendedores-api/pkg/utils"
)

// ErrEscritaArquivo marca falhas ao gravar o arquivo de comissões
var ErrEscritaArquivo = errors.New("erro ao gravar arquivo de comissões")

var cabecalhoSaida = []string{"Nome do Vendedor", "Comissão Total", "Comissão com Desconto"}

type ComissaoService interface {
	CalcularComissoes(ctx context.Context, arquivo io.Reader) (string, error)
}

type Service struct {
	cfg config.Comissao
}

func NewService(cfg *config.Config) ComissaoService {
	return &Service{
		cfg: cfg.Comissao,
	}
}

// CalcularComissoes processa o relatório de vendas e grava uma linha de
// comissão por linha de venda no arquivo configurado. Devolve o caminho do
// arquivo gerado.
func (s *Service) CalcularComissoes(ctx context.Context, arquivo io.Reader) (string, error) {
	vendas, err := planilha.LerVendas(arquivo)
	if err != nil {
		return "", err
	}

	resultados := make([]*domain.ResultadoComissao, 0, len(vendas))
	for _, venda := range vendas {
		resultados = append(resultados, s.Calcular(venda))
	}

	if err := s.gravarArquivo(resultados); err != nil {
		return "", err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"vendas":  len(vendas),
		"arquivo": s.cfg.ArquivoSaida,
	}).Info("Cálculo de comissões concluído")

	return s.cfg.ArquivoSaida, nil
}

// Calcular aplica as regras de comissão a uma venda. Os dois descontos
// incidem sobre a comissão total e são cumulativos: o limite é avaliado
// sobre a comissão antes de qualquer desconto.
func (s *Service) Calcular(venda *domain.Venda) *domain.ResultadoComissao {
	total := venda.Valor * s.cfg.Aliquota
	comDesconto := total

	if venda.Canal == domain.CanalOnline {
		comDesconto -= total * s.cfg.DescontoOnline
	}

	if total >= s.cfg.LimiteDesconto {
		comDesconto -= total * s.cfg.DescontoLimite
	}

	return &domain.ResultadoComissao{
		NomeVendedor:        venda.NomeVendedor,
		ComissaoTotal:       utils.RoundWithTwoDecimalPlace(total),
		ComissaoComDesconto: utils.RoundWithTwoDecimalPlace(comDesconto),
	}
}

func (s *Service) gravarArquivo(resultados []*domain.ResultadoComissao) error {
	if err := os.MkdirAll(filepath.Dir(s.cfg.ArquivoSaida), 0o755); err != nil {
		return errors.Wrap(ErrEscritaArquivo, err.Error())
	}

	saida, err := os.Create(s.cfg.ArquivoSaida)
	if err != nil {
		return errors.Wrap(ErrEscritaArquivo, err.Error())
	}
	defer saida.Close()

	escritor := csv.NewWriter(saida)
	if err := escritor.Write(cabecalhoSaida); err != nil {
		return errors.Wrap(ErrEscritaArquivo, err.Error())
	}

	for _, resultado := range resultados {
		registro := []string{
			resultado.NomeVendedor,
			strconv.FormatFloat(resultado.ComissaoTotal, 'f', 2, 64),
			strconv.FormatFloat(resultado.ComissaoComDesconto, 'f', 2, 64),
		}
		if err := escritor.Write(registro); err != nil {
			return errors.Wrap(ErrEscritaArquivo, err.Error())
		}
	}

	escritor.Flush()
	if err := escritor.Error(); err != nil {
		return errors.Wrap(ErrEscritaArquivo, err.Error())
	}

	return nil
}

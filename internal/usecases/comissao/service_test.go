package comissao

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aawz/vendedores-api/internal/config"
	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/internal/planilha"
)

func newTestService(arquivoSaida string) *Service {
	return &Service{
		cfg: config.Comissao{
			Aliquota:       0.10,
			DescontoOnline: 0.20,
			LimiteDesconto: 1000.0,
			DescontoLimite: 0.10,
			ArquivoSaida:   arquivoSaida,
		},
	}
}

func TestCalcular(t *testing.T) {
	service := newTestService("")

	tests := []struct {
		name                string
		venda               *domain.Venda
		comissaoTotal       float64
		comissaoComDesconto float64
	}{
		{
			name:                "Venda Online acima do limite acumula os dois descontos",
			venda:               &domain.Venda{Valor: 12000.00, Canal: domain.CanalOnline, NomeVendedor: "Ana"},
			comissaoTotal:       1200.00,
			comissaoComDesconto: 840.00,
		},
		{
			name:                "Venda em loja física abaixo do limite não tem desconto",
			venda:               &domain.Venda{Valor: 500.00, Canal: domain.CanalLojaFisica, NomeVendedor: "Bruno"},
			comissaoTotal:       50.00,
			comissaoComDesconto: 50.00,
		},
		{
			name:                "Limite avaliado sobre a comissão antes do desconto",
			venda:               &domain.Venda{Valor: 10000.00, Canal: domain.CanalTelefone, NomeVendedor: "Carla"},
			comissaoTotal:       1000.00,
			comissaoComDesconto: 900.00,
		},
		{
			name:                "Venda Online abaixo do limite só tem o desconto de canal",
			venda:               &domain.Venda{Valor: 500.00, Canal: domain.CanalOnline, NomeVendedor: "Davi"},
			comissaoTotal:       50.00,
			comissaoComDesconto: 40.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultado := service.Calcular(tt.venda)

			assert.Equal(t, tt.venda.NomeVendedor, resultado.NomeVendedor)
			assert.Equal(t, tt.comissaoTotal, resultado.ComissaoTotal)
			assert.Equal(t, tt.comissaoComDesconto, resultado.ComissaoComDesconto)
		})
	}
}

func TestCalcularComissoes(t *testing.T) {
	t.Run("Gera uma linha de comissão por venda", func(t *testing.T) {
		arquivoSaida := filepath.Join(t.TempDir(), "comissoes.csv")
		service := newTestService(arquivoSaida)

		conteudo := strings.Join([]string{
			"Data da Venda,Valor da Venda,Custo da Venda,Canal de Venda,Nome do Vendedor",
			`2024-01-15,"R$ 12.000,00","R$ 100,00",Online,Ana`,
			`2024-01-16,"R$ 500,00","R$ 50,00",Loja física,Bruno`,
		}, "\n")

		caminho, err := service.CalcularComissoes(context.Background(), strings.NewReader(conteudo))
		require.NoError(t, err)
		assert.Equal(t, arquivoSaida, caminho)

		gerado, err := os.ReadFile(arquivoSaida)
		require.NoError(t, err)

		linhas := strings.Split(strings.TrimSpace(string(gerado)), "\n")
		require.Len(t, linhas, 3)
		assert.Equal(t, "Nome do Vendedor,Comissão Total,Comissão com Desconto", linhas[0])
		assert.Equal(t, "Ana,1200.00,840.00", linhas[1])
		assert.Equal(t, "Bruno,50.00,50.00", linhas[2])
	})

	t.Run("Coluna ausente não gera arquivo", func(t *testing.T) {
		arquivoSaida := filepath.Join(t.TempDir(), "comissoes.csv")
		service := newTestService(arquivoSaida)

		conteudo := "Data da Venda,Valor da Venda,Canal de Venda,Nome do Vendedor\n" +
			`2024-01-15,"R$ 100,00",Online,Ana`

		_, err := service.CalcularComissoes(context.Background(), strings.NewReader(conteudo))

		var colunasAusentes *planilha.ErroColunasAusentes
		require.ErrorAs(t, err, &colunasAusentes)

		_, statErr := os.Stat(arquivoSaida)
		assert.True(t, os.IsNotExist(statErr))
	})
}

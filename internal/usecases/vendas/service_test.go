package vendas

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aawz/vendedores-api/infrastructure/repository/mocks"
	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/internal/planilha"
)

const cabecalhoVendas = "Data da Venda,Valor da Venda,Custo da Venda,Canal de Venda,Nome do Vendedor"

func TestAgregarVolume(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		conteudo string
		setup    func(volumeRepository *mocks.MockVolumeRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Soma e média por vendedor dentro de cada canal",
			conteudo: strings.Join([]string{
				cabecalhoVendas,
				`2024-01-15,"R$ 100,00","R$ 10,00",Online,Ana`,
				`2024-01-16,"R$ 300,00","R$ 30,00",Online,Ana`,
				`2024-01-16,"R$ 200,00","R$ 20,00",Online,Bruno`,
				`2024-01-17,"R$ 80,00","R$ 8,00",Telefone,Ana`,
			}, "\n"),
			setup: func(volumeRepository *mocks.MockVolumeRepository) {
				volumeRepository.EXPECT().
					SalvarAgregados(ctx, domain.CanalOnline, []*domain.VolumeVendedor{
						{NomeVendedor: "Ana", VolumeTotal: 400.00, Media: 200.00},
						{NomeVendedor: "Bruno", VolumeTotal: 200.00, Media: 200.00},
					}).
					Return(nil)
				volumeRepository.EXPECT().
					SalvarAgregados(ctx, domain.CanalTelefone, []*domain.VolumeVendedor{
						{NomeVendedor: "Ana", VolumeTotal: 80.00, Media: 80.00},
					}).
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Vendas de canal desconhecido são ignoradas",
			conteudo: strings.Join([]string{
				cabecalhoVendas,
				`2024-01-15,"R$ 100,00","R$ 10,00",Online,Ana`,
				`2024-01-16,"R$ 999,00","R$ 99,00",Marketplace,Ana`,
			}, "\n"),
			setup: func(volumeRepository *mocks.MockVolumeRepository) {
				volumeRepository.EXPECT().
					SalvarAgregados(ctx, domain.CanalOnline, []*domain.VolumeVendedor{
						{NomeVendedor: "Ana", VolumeTotal: 100.00, Media: 100.00},
					}).
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha em um canal interrompe sem desfazer os anteriores",
			conteudo: strings.Join([]string{
				cabecalhoVendas,
				`2024-01-15,"R$ 100,00","R$ 10,00",Online,Ana`,
				`2024-01-16,"R$ 200,00","R$ 20,00",Telefone,Bruno`,
			}, "\n"),
			setup: func(volumeRepository *mocks.MockVolumeRepository) {
				volumeRepository.EXPECT().
					SalvarAgregados(ctx, domain.CanalOnline, gomock.Any()).
					Return(nil)
				volumeRepository.EXPECT().
					SalvarAgregados(ctx, domain.CanalTelefone, gomock.Any()).
					Return(errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, domain.CanalTelefone)
			},
		},
		{
			name:     "Coluna ausente não chama o repositório",
			conteudo: "Data da Venda,Valor da Venda,Custo da Venda,Nome do Vendedor\n" + `2024-01-15,"R$ 100,00","R$ 10,00",Ana`,
			setup:    func(volumeRepository *mocks.MockVolumeRepository) {},
			validate: func(t *testing.T, err error) {
				var colunasAusentes *planilha.ErroColunasAusentes
				require.ErrorAs(t, err, &colunasAusentes)
				assert.Equal(t, []string{"Canal de Venda"}, colunasAusentes.Colunas)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volumeRepository := mocks.NewMockVolumeRepository(ctrl)
			tt.setup(volumeRepository)

			service := NewService(volumeRepository)
			err := service.AgregarVolume(ctx, strings.NewReader(tt.conteudo))

			tt.validate(t, err)
		})
	}
}

func TestListarVolume(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("Devolve os agregados persistidos do canal", func(t *testing.T) {
		volumeRepository := mocks.NewMockVolumeRepository(ctrl)
		esperados := []*domain.VolumeVendedor{
			{ID: 1, NomeVendedor: "Ana", VolumeTotal: 400.00, Media: 200.00},
		}
		volumeRepository.EXPECT().ListarPorCanal(ctx, domain.CanalOnline).Return(esperados, nil)

		service := NewService(volumeRepository)
		agregados, err := service.ListarVolume(ctx, domain.CanalOnline)

		require.NoError(t, err)
		assert.Equal(t, esperados, agregados)
	})

	t.Run("Canal desconhecido não chama o repositório", func(t *testing.T) {
		volumeRepository := mocks.NewMockVolumeRepository(ctrl)

		service := NewService(volumeRepository)
		agregados, err := service.ListarVolume(ctx, "Marketplace")

		assert.Nil(t, agregados)
		assert.ErrorIs(t, err, ErrCanalDesconhecido)
	})
}

func TestAgruparPorCanal(t *testing.T) {
	vendas := []*domain.Venda{
		{Valor: 100.00, Canal: domain.CanalOnline, NomeVendedor: "Ana"},
		{Valor: 50.00, Canal: domain.CanalLojaFisica, NomeVendedor: "Bruno"},
		{Valor: 300.00, Canal: domain.CanalOnline, NomeVendedor: "Ana"},
		{Valor: 25.00, Canal: "Catálogo", NomeVendedor: "Ana"},
	}

	porCanal := agruparPorCanal(vendas)

	require.Len(t, porCanal[domain.CanalOnline], 1)
	assert.Equal(t, "Ana", porCanal[domain.CanalOnline][0].nome)
	assert.Equal(t, 400.00, porCanal[domain.CanalOnline][0].total)
	assert.Equal(t, 2, porCanal[domain.CanalOnline][0].quantidade)

	require.Len(t, porCanal[domain.CanalLojaFisica], 1)
	assert.Equal(t, 50.00, porCanal[domain.CanalLojaFisica][0].total)

	assert.Empty(t, porCanal[domain.CanalTelefone])
}

package importacao

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aawz/vendedores-api/infrastructure/repository/mocks"
	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/internal/planilha"
	"github.com/aawz/vendedores-api/internal/usecases/vendedor"
)

const cabecalhoVendedores = "nome,cpf,data_nascimento,email,estado"

func TestImportarVendedores(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		conteudo string
		setup    func(vendedorRepository *mocks.MockVendedorRepository)
		validate func(t *testing.T, resultado *domain.ResultadoImportacao, err error)
	}{
		{
			name: "CPF novo cria e CPF conhecido atualiza",
			conteudo: strings.Join([]string{
				cabecalhoVendedores,
				"Ana Souza,529.982.247-25,1990-03-12,ana.souza@example.com,SP",
				"Bruno Lima,111.444.777-35,1985-07-01,bruno.lima@example.com,RJ",
			}, "\n"),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {
				vendedorRepository.EXPECT().GetByCPF(ctx, "529.982.247-25").Return(nil, nil)
				vendedorRepository.EXPECT().GetByCPF(ctx, "111.444.777-35").
					Return(&domain.Vendedor{ID: 3, CPF: "111.444.777-35", Email: "antigo@example.com"}, nil)
				vendedorRepository.EXPECT().ImportarLote(ctx, gomock.Len(1), gomock.Len(1)).
					DoAndReturn(func(_ context.Context, novos, existentes []*domain.Vendedor) error {
						assert.Equal(t, "529.982.247-25", novos[0].CPF)
						assert.Equal(t, 3, existentes[0].ID)
						assert.Equal(t, "bruno.lima@example.com", existentes[0].Email)
						return nil
					})
			},
			validate: func(t *testing.T, resultado *domain.ResultadoImportacao, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, resultado.ImportID)
				assert.Equal(t, 1, resultado.Criados)
				assert.Equal(t, 1, resultado.Atualizados)
			},
		},
		{
			name: "CPF repetido na planilha conta uma vez e fica com a última linha",
			conteudo: strings.Join([]string{
				cabecalhoVendedores,
				"Ana Souza,529.982.247-25,1990-03-12,ana.souza@example.com,SP",
				"Ana S. Lima,529.982.247-25,1990-03-12,ana.lima@example.com,MG",
			}, "\n"),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {
				vendedorRepository.EXPECT().GetByCPF(ctx, "529.982.247-25").Return(nil, nil)
				vendedorRepository.EXPECT().ImportarLote(ctx, gomock.Len(1), gomock.Len(0)).
					DoAndReturn(func(_ context.Context, novos, existentes []*domain.Vendedor) error {
						assert.Equal(t, "Ana S. Lima", novos[0].Nome)
						assert.Equal(t, "ana.lima@example.com", novos[0].Email)
						assert.Equal(t, "MG", novos[0].Estado)
						return nil
					})
			},
			validate: func(t *testing.T, resultado *domain.ResultadoImportacao, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, resultado.Criados)
				assert.Equal(t, 0, resultado.Atualizados)
			},
		},
		{
			name: "Linha inválida descarta a importação inteira",
			conteudo: strings.Join([]string{
				cabecalhoVendedores,
				"Ana Souza,529.982.247-25,1990-03-12,ana.souza@example.com,SP",
				"Bruno Lima,123.456.789-00,1985-07-01,bruno.lima@example.com,RJ",
			}, "\n"),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {
				vendedorRepository.EXPECT().GetByCPF(ctx, "529.982.247-25").Return(nil, nil)
			},
			validate: func(t *testing.T, resultado *domain.ResultadoImportacao, err error) {
				assert.Nil(t, resultado)
				assert.ErrorIs(t, err, vendedor.ErrCPFInvalido)
			},
		},
		{
			name:     "Coluna ausente não chama o repositório",
			conteudo: "nome,cpf,email,estado\nAna Souza,529.982.247-25,ana.souza@example.com,SP",
			setup:    func(vendedorRepository *mocks.MockVendedorRepository) {},
			validate: func(t *testing.T, resultado *domain.ResultadoImportacao, err error) {
				assert.Nil(t, resultado)

				var colunasAusentes *planilha.ErroColunasAusentes
				require.ErrorAs(t, err, &colunasAusentes)
				assert.Equal(t, []string{"data_nascimento"}, colunasAusentes.Colunas)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
			tt.setup(vendedorRepository)

			service := NewService(vendedorRepository)
			resultado, err := service.ImportarVendedores(ctx, strings.NewReader(tt.conteudo))

			tt.validate(t, resultado, err)
		})
	}
}

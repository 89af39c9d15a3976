package vendedor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aawz/vendedores-api/infrastructure/repository/mocks"
	"github.com/aawz/vendedores-api/internal/domain"
)

func vendedorValido() *domain.Vendedor {
	return &domain.Vendedor{
		Nome:           "Ana Souza",
		CPF:            "529.982.247-25",
		DataNascimento: "1990-03-12",
		Email:          "ana.souza@example.com",
		Estado:         "SP",
	}
}

func TestCriar(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		vendedor *domain.Vendedor
		setup    func(vendedorRepository *mocks.MockVendedorRepository)
		validate func(t *testing.T, criado *domain.Vendedor, err error)
	}{
		{
			name:     "Cria um vendedor válido",
			vendedor: vendedorValido(),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {
				vendedorRepository.EXPECT().GetByCPF(ctx, "529.982.247-25").Return(nil, nil)
				vendedorRepository.EXPECT().GetByEmail(ctx, "ana.souza@example.com").Return(nil, nil)
				vendedorRepository.EXPECT().Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, v *domain.Vendedor) (*domain.Vendedor, error) {
						v.ID = 42
						return v, nil
					})
			},
			validate: func(t *testing.T, criado *domain.Vendedor, err error) {
				require.NoError(t, err)
				assert.Equal(t, 42, criado.ID)
			},
		},
		{
			name:     "CPF já cadastrado impede a criação",
			vendedor: vendedorValido(),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {
				vendedorRepository.EXPECT().GetByCPF(ctx, "529.982.247-25").
					Return(&domain.Vendedor{ID: 7, CPF: "529.982.247-25"}, nil)
			},
			validate: func(t *testing.T, criado *domain.Vendedor, err error) {
				assert.Nil(t, criado)
				assert.ErrorIs(t, err, ErrCPFJaCadastrado)
			},
		},
		{
			name:     "Email já cadastrado impede a criação",
			vendedor: vendedorValido(),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {
				vendedorRepository.EXPECT().GetByCPF(ctx, "529.982.247-25").Return(nil, nil)
				vendedorRepository.EXPECT().GetByEmail(ctx, "ana.souza@example.com").
					Return(&domain.Vendedor{ID: 7, Email: "ana.souza@example.com"}, nil)
			},
			validate: func(t *testing.T, criado *domain.Vendedor, err error) {
				assert.Nil(t, criado)
				assert.ErrorIs(t, err, ErrEmailJaCadastrado)
			},
		},
		{
			name: "CPF inválido não chega ao repositório",
			vendedor: func() *domain.Vendedor {
				v := vendedorValido()
				v.CPF = "123.456.789-00"
				return v
			}(),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {},
			validate: func(t *testing.T, criado *domain.Vendedor, err error) {
				assert.Nil(t, criado)
				assert.ErrorIs(t, err, ErrCPFInvalido)
			},
		},
		{
			name: "Estado desconhecido não chega ao repositório",
			vendedor: func() *domain.Vendedor {
				v := vendedorValido()
				v.Estado = "XX"
				return v
			}(),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {},
			validate: func(t *testing.T, criado *domain.Vendedor, err error) {
				assert.Nil(t, criado)
				assert.ErrorIs(t, err, ErrEstadoInvalido)
			},
		},
		{
			name:     "Falha de banco vira ErrOperacaoBanco",
			vendedor: vendedorValido(),
			setup: func(vendedorRepository *mocks.MockVendedorRepository) {
				vendedorRepository.EXPECT().GetByCPF(ctx, "529.982.247-25").
					Return(nil, errors.New("conexão perdida"))
			},
			validate: func(t *testing.T, criado *domain.Vendedor, err error) {
				assert.Nil(t, criado)
				assert.ErrorIs(t, err, ErrOperacaoBanco)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
			tt.setup(vendedorRepository)

			service := NewService(vendedorRepository)
			criado, err := service.Criar(ctx, tt.vendedor)

			tt.validate(t, criado, err)
		})
	}
}

func TestBuscar(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("Devolve o vendedor pelo ID", func(t *testing.T) {
		vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
		esperado := vendedorValido()
		esperado.ID = 5
		vendedorRepository.EXPECT().GetByID(ctx, 5).Return(esperado, nil)

		service := NewService(vendedorRepository)
		vendedor, err := service.Buscar(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, esperado, vendedor)
	})

	t.Run("ID inexistente devolve ErrVendedorNaoEncontrado", func(t *testing.T) {
		vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
		vendedorRepository.EXPECT().GetByID(ctx, 99).Return(nil, nil)

		service := NewService(vendedorRepository)
		vendedor, err := service.Buscar(ctx, 99)

		assert.Nil(t, vendedor)
		assert.ErrorIs(t, err, ErrVendedorNaoEncontrado)
	})
}

func TestAtualizar(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("Atualização parcial mantém os campos omitidos", func(t *testing.T) {
		vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
		atual := vendedorValido()
		atual.ID = 5
		vendedorRepository.EXPECT().GetByID(ctx, 5).Return(atual, nil)
		vendedorRepository.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		service := NewService(vendedorRepository)
		atualizado, err := service.Atualizar(ctx, 5, &domain.AtualizarVendedorRequest{
			Nome: strPtr("Ana Souza Lima"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Souza Lima", atualizado.Nome)
		assert.Equal(t, "529.982.247-25", atualizado.CPF)
		assert.Equal(t, "ana.souza@example.com", atualizado.Email)
	})

	t.Run("Novo CPF passa pela verificação de unicidade", func(t *testing.T) {
		vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
		atual := vendedorValido()
		atual.ID = 5
		vendedorRepository.EXPECT().GetByID(ctx, 5).Return(atual, nil)
		vendedorRepository.EXPECT().GetByCPF(ctx, "111.444.777-35").
			Return(&domain.Vendedor{ID: 8, CPF: "111.444.777-35"}, nil)

		service := NewService(vendedorRepository)
		atualizado, err := service.Atualizar(ctx, 5, &domain.AtualizarVendedorRequest{
			CPF: strPtr("111.444.777-35"),
		})

		assert.Nil(t, atualizado)
		assert.ErrorIs(t, err, ErrCPFJaCadastrado)
	})

	t.Run("Vendedor inexistente devolve ErrVendedorNaoEncontrado", func(t *testing.T) {
		vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
		vendedorRepository.EXPECT().GetByID(ctx, 99).Return(nil, nil)

		service := NewService(vendedorRepository)
		atualizado, err := service.Atualizar(ctx, 99, &domain.AtualizarVendedorRequest{
			Nome: strPtr("Quem"),
		})

		assert.Nil(t, atualizado)
		assert.ErrorIs(t, err, ErrVendedorNaoEncontrado)
	})
}

func TestRemover(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("Remove um vendedor existente", func(t *testing.T) {
		vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
		vendedorRepository.EXPECT().Delete(ctx, 5).Return(int64(1), nil)

		service := NewService(vendedorRepository)
		assert.NoError(t, service.Remover(ctx, 5))
	})

	t.Run("Nenhuma linha afetada devolve ErrVendedorNaoEncontrado", func(t *testing.T) {
		vendedorRepository := mocks.NewMockVendedorRepository(ctrl)
		vendedorRepository.EXPECT().Delete(ctx, 99).Return(int64(0), nil)

		service := NewService(vendedorRepository)
		assert.ErrorIs(t, service.Remover(ctx, 99), ErrVendedorNaoEncontrado)
	})
}

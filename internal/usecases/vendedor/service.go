package vendedor

import (
	"context"

	"github.com/aawz/vendedores-api/infrastructure/repository"
	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/pkg/log"
)

type VendedorService interface {
	Criar(ctx context.Context, vendedor *domain.Vendedor) (*domain.Vendedor, error)
	Buscar(ctx context.Context, id int) (*domain.Vendedor, error)
	Listar(ctx context.Context) ([]*domain.Vendedor, error)
	Atualizar(ctx context.Context, id int, req *domain.AtualizarVendedorRequest) (*domain.Vendedor, error)
	Remover(ctx context.Context, id int) error
}

type Service struct {
	vendedorRepository repository.VendedorRepository
}

func NewService(vendedorRepository repository.VendedorRepository) VendedorService {
	return &Service{
		vendedorRepository: vendedorRepository,
	}
}

// Criar valida o vendedor, garante a unicidade de CPF e email e persiste o
// novo cadastro
func (s *Service) Criar(ctx context.Context, vendedor *domain.Vendedor) (*domain.Vendedor, error) {
	if err := vendedor.Validar(); err != nil {
		return nil, MapearErroValidacao(err)
	}

	existente, err := s.vendedorRepository.GetByCPF(ctx, vendedor.CPF)
	if err != nil {
		return nil, NewVendedorError(ErrOperacaoBanco, vendedor.CPF, err.Error())
	}
	if existente != nil {
		return nil, NewVendedorError(ErrCPFJaCadastrado, vendedor.CPF, "")
	}

	existente, err = s.vendedorRepository.GetByEmail(ctx, vendedor.Email)
	if err != nil {
		return nil, NewVendedorError(ErrOperacaoBanco, vendedor.CPF, err.Error())
	}
	if existente != nil {
		return nil, NewVendedorError(ErrEmailJaCadastrado, vendedor.CPF, "")
	}

	criado, err := s.vendedorRepository.Create(ctx, vendedor)
	if err != nil {
		return nil, NewVendedorError(ErrOperacaoBanco, vendedor.CPF, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"vendedor_id": criado.ID,
		"estado":      criado.Estado,
	}).Info("Vendedor criado")

	return criado, nil
}

func (s *Service) Buscar(ctx context.Context, id int) (*domain.Vendedor, error) {
	vendedor, err := s.vendedorRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewVendedorError(ErrOperacaoBanco, "", err.Error())
	}
	if vendedor == nil {
		return nil, ErrVendedorNaoEncontrado
	}

	return vendedor, nil
}

func (s *Service) Listar(ctx context.Context) ([]*domain.Vendedor, error) {
	vendedores, err := s.vendedorRepository.List(ctx)
	if err != nil {
		return nil, NewVendedorError(ErrOperacaoBanco, "", err.Error())
	}

	return vendedores, nil
}

// Atualizar aplica uma atualização parcial: somente os campos presentes na
// requisição são alterados. CPF e email alterados passam pelas mesmas
// verificações de unicidade da criação.
func (s *Service) Atualizar(ctx context.Context, id int, req *domain.AtualizarVendedorRequest) (*domain.Vendedor, error) {
	vendedor, err := s.vendedorRepository.GetByID(ctx, id)
	if err != nil {
		return nil, NewVendedorError(ErrOperacaoBanco, "", err.Error())
	}
	if vendedor == nil {
		return nil, ErrVendedorNaoEncontrado
	}

	if req.Nome != nil {
		vendedor.Nome = *req.Nome
	}
	if req.DataNascimento != nil {
		vendedor.DataNascimento = *req.DataNascimento
	}
	if req.Estado != nil {
		vendedor.Estado = *req.Estado
	}

	if req.CPF != nil && *req.CPF != vendedor.CPF {
		existente, err := s.vendedorRepository.GetByCPF(ctx, *req.CPF)
		if err != nil {
			return nil, NewVendedorError(ErrOperacaoBanco, *req.CPF, err.Error())
		}
		if existente != nil {
			return nil, NewVendedorError(ErrCPFJaCadastrado, *req.CPF, "")
		}
		vendedor.CPF = *req.CPF
	}

	if req.Email != nil && *req.Email != vendedor.Email {
		existente, err := s.vendedorRepository.GetByEmail(ctx, *req.Email)
		if err != nil {
			return nil, NewVendedorError(ErrOperacaoBanco, vendedor.CPF, err.Error())
		}
		if existente != nil {
			return nil, NewVendedorError(ErrEmailJaCadastrado, vendedor.CPF, "")
		}
		vendedor.Email = *req.Email
	}

	if err := vendedor.Validar(); err != nil {
		return nil, MapearErroValidacao(err)
	}

	if err := s.vendedorRepository.Update(ctx, vendedor); err != nil {
		return nil, NewVendedorError(ErrOperacaoBanco, vendedor.CPF, err.Error())
	}

	return vendedor, nil
}

func (s *Service) Remover(ctx context.Context, id int) error {
	rowsAffected, err := s.vendedorRepository.Delete(ctx, id)
	if err != nil {
		return NewVendedorError(ErrOperacaoBanco, "", err.Error())
	}
	if rowsAffected == 0 {
		return ErrVendedorNaoEncontrado
	}

	log.ForContext(ctx).WithField("vendedor_id", id).Info("Vendedor removido")
	return nil
}

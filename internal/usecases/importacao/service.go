// Package importacao implementa a carga de vendedores a partir de uma
// planilha CSV. Linhas cujo CPF já existe atualizam o cadastro; as demais
// criam novos vendedores.
package importacao

import (
	"context"
	"io"

	"github.com/aawz/vendedores-api/infrastructure/repository"
	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/internal/planilha"
	"github.com/aawz/vendedores-api/internal/usecases/vendedor"
	"github.com/aawz/vendedores-api/pkg/log"
	"github.com/aawz/vendedores-api/pkg/utils"
)

type ImportacaoService interface {
	ImportarVendedores(ctx context.Context, arquivo io.Reader) (*domain.ResultadoImportacao, error)
}

type Service struct {
	vendedorRepository repository.VendedorRepository
}

func NewService(vendedorRepository repository.VendedorRepository) ImportacaoService {
	return &Service{
		vendedorRepository: vendedorRepository,
	}
}

// ImportarVendedores processa a planilha na ordem do arquivo. Toda linha é
// validada antes de qualquer escrita e a persistência acontece em uma única
// transação: uma linha inválida descarta a importação inteira.
func (s *Service) ImportarVendedores(ctx context.Context, arquivo io.Reader) (*domain.ResultadoImportacao, error) {
	linhas, err := planilha.LerVendedores(arquivo)
	if err != nil {
		return nil, err
	}

	var novos, existentes []*domain.Vendedor
	porCPF := make(map[string]*domain.Vendedor)

	for _, linha := range linhas {
		if err := linha.Validar(); err != nil {
			return nil, vendedor.MapearErroValidacao(err)
		}

		// CPF repetido dentro da planilha: a última linha prevalece,
		// como aconteceria processando linha a linha
		if anterior, ok := porCPF[linha.CPF]; ok {
			copiarCampos(anterior, linha)
			continue
		}

		cadastrado, err := s.vendedorRepository.GetByCPF(ctx, linha.CPF)
		if err != nil {
			return nil, vendedor.NewVendedorError(vendedor.ErrOperacaoBanco, linha.CPF, err.Error())
		}

		if cadastrado != nil {
			copiarCampos(cadastrado, linha)
			existentes = append(existentes, cadastrado)
			porCPF[linha.CPF] = cadastrado
			continue
		}

		novos = append(novos, linha)
		porCPF[linha.CPF] = linha
	}

	if err := s.vendedorRepository.ImportarLote(ctx, novos, existentes); err != nil {
		return nil, vendedor.NewVendedorError(vendedor.ErrOperacaoBanco, "", err.Error())
	}

	importID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	resultado := &domain.ResultadoImportacao{
		ImportID:    importID,
		Criados:     len(novos),
		Atualizados: len(existentes),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"import_id":   resultado.ImportID,
		"criados":     resultado.Criados,
		"atualizados": resultado.Atualizados,
	}).Info("Importação de vendedores concluída")

	return resultado, nil
}

func copiarCampos(destino, origem *domain.Vendedor) {
	destino.Nome = origem.Nome
	destino.DataNascimento = origem.DataNascimento
	destino.Email = origem.Email
	destino.Estado = origem.Estado
}

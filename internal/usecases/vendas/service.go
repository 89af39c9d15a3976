// Package vendas agrega o volume de vendas por vendedor dentro de cada canal
// e persiste o resultado nas tabelas de canal.
package vendas

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aawz/vendedores-api/infrastructure/repository"
	"github.com/aawz/vendedores-api/internal/domain"
	"github.com/aawz/vendedores-api/internal/planilha"
	"github.com/aawz/vendedores-api/pkg/log"
	"github.com/aawz/vendedores-api/pkg/utils"
)

// ErrCanalDesconhecido indica um canal fora do conjunto fixo de canais
var ErrCanalDesconhecido = errors.New("canal de venda desconhecido")

type VolumeService interface {
	AgregarVolume(ctx context.Context, arquivo io.Reader) error
	ListarVolume(ctx context.Context, canal string) ([]*domain.VolumeVendedor, error)
}

type Service struct {
	volumeRepository repository.VolumeRepository
}

func NewService(volumeRepository repository.VolumeRepository) VolumeService {
	return &Service{
		volumeRepository: volumeRepository,
	}
}

// AgregarVolume agrupa as vendas do relatório por vendedor em cada canal
// reconhecido e grava um agregado por grupo. Cada canal é persistido em sua
// própria transação: uma falha não desfaz os canais já gravados.
func (s *Service) AgregarVolume(ctx context.Context, arquivo io.Reader) error {
	vendas, err := planilha.LerVendas(arquivo)
	if err != nil {
		return err
	}

	porCanal := agruparPorCanal(vendas)

	descartadas := len(vendas)
	for _, agrupadas := range porCanal {
		for _, agregado := range agrupadas {
			descartadas -= agregado.quantidade
		}
	}
	if descartadas > 0 {
		// Canais fora do conjunto fixo são ignorados sem erro
		log.ForContext(ctx).Debugf("%d vendas com canal desconhecido foram ignoradas", descartadas)
	}

	for _, canal := range domain.CanaisDeVenda {
		agregados := make([]*domain.VolumeVendedor, 0, len(porCanal[canal]))
		for _, agregado := range porCanal[canal] {
			agregados = append(agregados, &domain.VolumeVendedor{
				NomeVendedor: agregado.nome,
				VolumeTotal:  utils.RoundWithTwoDecimalPlace(agregado.total),
				Media:        utils.RoundWithTwoDecimalPlace(agregado.total / float64(agregado.quantidade)),
			})
		}

		if len(agregados) == 0 {
			continue
		}

		if err := s.volumeRepository.SalvarAgregados(ctx, canal, agregados); err != nil {
			return fmt.Errorf("erro ao persistir agregados do canal %q: %w", canal, err)
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"canal":      canal,
			"vendedores": len(agregados),
		}).Info("Agregados de volume persistidos")
	}

	return nil
}

// ListarVolume devolve os agregados já persistidos de um canal
func (s *Service) ListarVolume(ctx context.Context, canal string) ([]*domain.VolumeVendedor, error) {
	conhecido := false
	for _, c := range domain.CanaisDeVenda {
		if c == canal {
			conhecido = true
			break
		}
	}
	if !conhecido {
		return nil, ErrCanalDesconhecido
	}

	agregados, err := s.volumeRepository.ListarPorCanal(ctx, canal)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agregados do canal %q: %w", canal, err)
	}

	return agregados, nil
}

// volumeAcumulado acumula as vendas de um vendedor dentro de um canal
type volumeAcumulado struct {
	nome       string
	total      float64
	quantidade int
}

// agruparPorCanal agrupa as vendas por vendedor dentro de cada canal
// reconhecido, preservando a ordem de primeira aparição de cada vendedor.
// Vendas de canais desconhecidos não entram em nenhum grupo.
func agruparPorCanal(vendas []*domain.Venda) map[string][]*volumeAcumulado {
	porCanal := make(map[string][]*volumeAcumulado, len(domain.CanaisDeVenda))
	indice := make(map[string]map[string]*volumeAcumulado, len(domain.CanaisDeVenda))

	for _, canal := range domain.CanaisDeVenda {
		indice[canal] = make(map[string]*volumeAcumulado)
	}

	for _, venda := range vendas {
		vendedores, ok := indice[venda.Canal]
		if !ok {
			continue
		}

		acumulado, ok := vendedores[venda.NomeVendedor]
		if !ok {
			acumulado = &volumeAcumulado{nome: venda.NomeVendedor}
			vendedores[venda.NomeVendedor] = acumulado
			porCanal[venda.Canal] = append(porCanal[venda.Canal], acumulado)
		}

		acumulado.total += venda.Valor
		acumulado.quantidade++
	}

	return porCanal
}

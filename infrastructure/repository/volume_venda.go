package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/aawz/vendedores-api/infrastructure/database/postgres"
	"github.com/aawz/vendedores-api/internal/domain"
)

// Cada canal de venda possui sua própria tabela de agregados
var tabelaPorCanal = map[string]string{
	domain.CanalOnline:     "venda_online",
	domain.CanalTelefone:   "venda_telefone",
	domain.CanalLojaFisica: "venda_loja_fisica",
}

type VolumeRepository interface {
	SalvarAgregados(ctx context.Context, canal string, agregados []*domain.VolumeVendedor) error
	ListarPorCanal(ctx context.Context, canal string) ([]*domain.VolumeVendedor, error)
}

type volumeRepository struct {
	conn *postgres.Connection
}

func NewVolumeRepository(conn *postgres.Connection) VolumeRepository {
	return &volumeRepository{
		conn: conn,
	}
}

// SalvarAgregados insere os agregados de um canal em uma única transação.
// Execuções repetidas acrescentam novas linhas, não há upsert.
func (r *volumeRepository) SalvarAgregados(ctx context.Context, canal string, agregados []*domain.VolumeVendedor) error {
	tabela, ok := tabelaPorCanal[canal]
	if !ok {
		return fmt.Errorf("canal de venda desconhecido: %q", canal)
	}

	if len(agregados) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(tabela).
		Columns("nome_do_vendedor", "volume_total", "media")

	for _, agregado := range agregados {
		queryBuilder = queryBuilder.Values(agregado.NomeVendedor, agregado.VolumeTotal, agregado.Media)
	}

	insertSQL, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir agregados do canal %q: %w", canal, err)
		}
		return nil
	})
}

func (r *volumeRepository) ListarPorCanal(ctx context.Context, canal string) ([]*domain.VolumeVendedor, error) {
	tabela, ok := tabelaPorCanal[canal]
	if !ok {
		return nil, fmt.Errorf("canal de venda desconhecido: %q", canal)
	}

	querySQL, args, err := squirrel.
		Select("id", "nome_do_vendedor", "volume_total", "media").
		From(tabela).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar agregados: %w", err)
	}
	defer rows.Close()

	agregados := make([]*domain.VolumeVendedor, 0)
	for rows.Next() {
		var agregado domain.VolumeVendedor
		if err := rows.Scan(
			&agregado.ID,
			&agregado.NomeVendedor,
			&agregado.VolumeTotal,
			&agregado.Media,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		agregados = append(agregados, &agregado)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return agregados, nil
}

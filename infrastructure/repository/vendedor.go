package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/aawz/vendedores-api/infrastructure/database/postgres"
	"github.com/aawz/vendedores-api/internal/domain"
)

const vendedoresTable = "vendedores"

var vendedorColumns = []string{"id", "nome", "cpf", "data_nascimento", "email", "estado", "created_at", "updated_at"}

type VendedorRepository interface {
	Create(ctx context.Context, vendedor *domain.Vendedor) (*domain.Vendedor, error)
	GetByID(ctx context.Context, id int) (*domain.Vendedor, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Vendedor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Vendedor, error)
	List(ctx context.Context) ([]*domain.Vendedor, error)
	Update(ctx context.Context, vendedor *domain.Vendedor) error
	Delete(ctx context.Context, id int) (int64, error)
	ImportarLote(ctx context.Context, novos, existentes []*domain.Vendedor) error
}

type vendedorRepository struct {
	conn *postgres.Connection
}

func NewVendedorRepository(conn *postgres.Connection) VendedorRepository {
	return &vendedorRepository{
		conn: conn,
	}
}

func (r *vendedorRepository) Create(ctx context.Context, vendedor *domain.Vendedor) (*domain.Vendedor, error) {
	insertSQL, args, err := squirrel.
		Insert(vendedoresTable).
		Columns("nome", "cpf", "data_nascimento", "email", "estado").
		Values(vendedor.Nome, vendedor.CPF, vendedor.DataNascimento, vendedor.Email, vendedor.Estado).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRow(ctx, insertSQL, args...).Scan(&vendedor.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir vendedor: %w", err)
	}

	return vendedor, nil
}

func (r *vendedorRepository) GetByID(ctx context.Context, id int) (*domain.Vendedor, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *vendedorRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Vendedor, error) {
	return r.getBy(ctx, squirrel.Eq{"cpf": cpf})
}

func (r *vendedorRepository) GetByEmail(ctx context.Context, email string) (*domain.Vendedor, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

// getBy devolve nil sem erro quando nenhum vendedor corresponde ao filtro
func (r *vendedorRepository) getBy(ctx context.Context, filtro squirrel.Eq) (*domain.Vendedor, error) {
	querySQL, args, err := squirrel.
		Select(vendedorColumns...).
		From(vendedoresTable).
		Where(filtro).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var vendedor domain.Vendedor
	err = r.conn.QueryRow(ctx, querySQL, args...).Scan(
		&vendedor.ID,
		&vendedor.Nome,
		&vendedor.CPF,
		&vendedor.DataNascimento,
		&vendedor.Email,
		&vendedor.Estado,
		&vendedor.CreatedAt,
		&vendedor.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendedor: %w", err)
	}

	return &vendedor, nil
}

func (r *vendedorRepository) List(ctx context.Context) ([]*domain.Vendedor, error) {
	querySQL, args, err := squirrel.
		Select(vendedorColumns...).
		From(vendedoresTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendedores: %w", err)
	}
	defer rows.Close()

	vendedores := make([]*domain.Vendedor, 0)
	for rows.Next() {
		var vendedor domain.Vendedor
		if err := rows.Scan(
			&vendedor.ID,
			&vendedor.Nome,
			&vendedor.CPF,
			&vendedor.DataNascimento,
			&vendedor.Email,
			&vendedor.Estado,
			&vendedor.CreatedAt,
			&vendedor.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		vendedores = append(vendedores, &vendedor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return vendedores, nil
}

func (r *vendedorRepository) Update(ctx context.Context, vendedor *domain.Vendedor) error {
	updateSQL, args, err := updateVendedorSQL(vendedor)
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(ctx, updateSQL, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar vendedor: %w", err)
	}

	return nil
}

func (r *vendedorRepository) Delete(ctx context.Context, id int) (int64, error) {
	deleteSQL, args, err := squirrel.
		Delete(vendedoresTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(ctx, deleteSQL, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover vendedor: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// ImportarLote persiste uma importação inteira em uma única transação:
// ou todas as linhas da planilha entram, ou nenhuma
func (r *vendedorRepository) ImportarLote(ctx context.Context, novos, existentes []*domain.Vendedor) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, vendedor := range novos {
			insertSQL, args, err := squirrel.
				Insert(vendedoresTable).
				Columns("nome", "cpf", "data_nascimento", "email", "estado").
				Values(vendedor.Nome, vendedor.CPF, vendedor.DataNascimento, vendedor.Email, vendedor.Estado).
				Suffix("RETURNING id").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if err := tx.QueryRowContext(ctx, insertSQL, args...).Scan(&vendedor.ID); err != nil {
				return fmt.Errorf("erro ao inserir vendedor %q: %w", vendedor.CPF, err)
			}
		}

		for _, vendedor := range existentes {
			updateSQL, args, err := updateVendedorSQL(vendedor)
			if err != nil {
				return fmt.Errorf("erro ao construir consulta: %w", err)
			}

			if _, err := tx.ExecContext(ctx, updateSQL, args...); err != nil {
				return fmt.Errorf("erro ao atualizar vendedor %q: %w", vendedor.CPF, err)
			}
		}

		return nil
	})
}

func updateVendedorSQL(vendedor *domain.Vendedor) (string, []interface{}, error) {
	return squirrel.
		Update(vendedoresTable).
		Set("nome", vendedor.Nome).
		Set("cpf", vendedor.CPF).
		Set("data_nascimento", vendedor.DataNascimento).
		Set("email", vendedor.Email).
		Set("estado", vendedor.Estado).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vendedor.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

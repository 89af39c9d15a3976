package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/aawz/vendedores-api/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	db *sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{db: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *Connection) Close() error {
	return c.db.Close()
}

func (c *Connection) Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, sql, args...)
}

func (c *Connection) Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, sql, args...)
}

func (c *Connection) QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, sql, args...)
}

// RunInTransaction executa fn dentro de uma transação. Qualquer erro (ou
// panic) causa rollback de tudo que foi executado por fn.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*RecordsR
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return Repository{
		RecordsR: NewRecordsRepository(db),
		db:       db,
	}
}

// Tx scopes record operations to one database transaction. The capture
// transaction runs its dedupe lookup and writes through a Tx so that a
// failure after the insert leaves no trace.
type Tx struct {
	*RecordsR
	tx *sqlx.Tx
}

func (r Repository) Begin(ctx context.Context) (*Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Tx{
		RecordsR: NewRecordsRepository(tx),
		tx:       tx,
	}, nil
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

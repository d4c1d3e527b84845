package database

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLTx is the database/sql counterpart of Tx.
type SQLTx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLDatabase mirrors Database for drivers reached through database/sql.
type SQLDatabase struct {
	db *sql.DB
}

func NewSQLDatabase(db *sql.DB) *SQLDatabase {
	return &SQLDatabase{db: db}
}

func (db *SQLDatabase) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.loadSQL(ctx).ExecContext(ctx, query, args...)
}

func (db *SQLDatabase) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.loadSQL(ctx).QueryContext(ctx, query, args...)
}

func (db *SQLDatabase) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.loadSQL(ctx).QueryRowContext(ctx, query, args...)
}

func (db *SQLDatabase) DB() *sql.DB {
	return db.db
}

func (db *SQLDatabase) RunInTx(ctx context.Context, f func(context.Context) error) error {
	if sqlTxFromContext(ctx) != nil {
		return f(ctx)
	}

	tx, err := db.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	return finish(context.WithValue(ctx, sqlTxCtxKey{}, tx), stdTx{tx}, f)
}

type stdTx struct{ tx *sql.Tx }

func (t stdTx) commit(context.Context) error   { return t.tx.Commit() }
func (t stdTx) rollback(context.Context) error { return t.tx.Rollback() }

type sqlTxCtxKey struct{}

func sqlTxFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(sqlTxCtxKey{}).(*sql.Tx)

	return tx
}

func (db *SQLDatabase) loadSQL(ctx context.Context) SQLTx {
	if tx := sqlTxFromContext(ctx); tx != nil {
		return tx
	}

	return db.db
}

package ports

import (
	"context"
	"errors"
)

// ErrNoRows is the driver-neutral no-rows signal. The storage adapters
// translate pgx.ErrNoRows and sql.ErrNoRows into it.
var ErrNoRows = errors.New("no rows in result set")

type Row interface {
	Scan(dest ...any) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Tx is exclusively owned by the single request running the mutation and is
// released, committed or rolled back, before the handler returns.
type Tx interface {
	QueryRow(ctx context.Context, query string, args ...any) Row
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Querier interface {
	QueryRow(ctx context.Context, query string, args ...any) Row
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Begin(ctx context.Context) (Tx, error)
}

// IDB is the injected record store. Lifecycle belongs to the service entry
// point: opened in Run, closed in Stop.
type IDB interface {
	Querier
	Dialect() string
	IsAlive(ctx context.Context) error
	Close() error
}

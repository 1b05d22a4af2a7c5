package db

import (
	"context"
	"database/sql"
	"fmt"

	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// sqliteSchema mirrors the postgres migrations in sqlite dialect. The sqlite
// store bootstraps itself; golang-migrate is only used for postgres.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash BLOB NOT NULL,
	role TEXT NOT NULL CONSTRAINT accounts_role_check CHECK (role IN ('customer', 'driver', 'admin')),
	phone TEXT,
	vehicle_type TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS trips (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	customer_id INTEGER NOT NULL REFERENCES accounts(id),
	driver_id INTEGER REFERENCES accounts(id),
	pickup_location TEXT NOT NULL,
	dropoff_location TEXT NOT NULL,
	vehicle_type TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending' CONSTRAINT trips_status_check CHECK (status IN ('pending', 'accepted', 'picked_up', 'in_transit', 'delivered', 'cancelled')),
	price REAL NOT NULL CONSTRAINT trips_price_check CHECK (price >= 0),
	distance REAL,
	estimated_time INTEGER,
	actual_time INTEGER,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id INTEGER NOT NULL REFERENCES trips(id),
	amount REAL NOT NULL CONSTRAINT payments_amount_check CHECK (amount >= 0),
	status TEXT NOT NULL DEFAULT 'pending' CONSTRAINT payments_status_check CHECK (status IN ('pending', 'completed', 'failed', 'refunded')),
	method TEXT NOT NULL CONSTRAINT payments_method_check CHECK (method IN ('card', 'cash', 'mobile_money', 'wallet', 'bank_transfer')),
	transaction_id TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLite is the embedded record store used for local runs and tests. It
// implements the same ports.IDB surface as the postgres store.
type SQLite struct {
	db    *sql.DB
	mylog mylogger.Logger
}

func NewSQLite(ctx context.Context, path string, mylog mylogger.Logger) (*SQLite, error) {
	// sqlite leaves foreign_keys off per connection unless asked, which would
	// make the REFERENCES clauses below inert.
	handle, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single writer keeps transaction semantics simple; sqlite serializes
	// writes anyway.
	handle.SetMaxOpenConns(1)

	if _, err := handle.ExecContext(ctx, sqliteSchema); err != nil {
		handle.Close()
		return nil, fmt.Errorf("bootstrap sqlite schema: %w", err)
	}

	return &SQLite{
		db:    handle,
		mylog: mylog,
	}, nil
}

func (s *SQLite) Dialect() string {
	return "sqlite"
}

func (s *SQLite) IsAlive(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) QueryRow(ctx context.Context, query string, args ...any) ports.Row {
	return sqlRow{row: s.db.QueryRowContext(ctx, query, args...)}
}

func (s *SQLite) Query(ctx context.Context, query string, args ...any) (ports.Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateErr(err)
	}
	return sqlRows{rows: rows}, nil
}

func (s *SQLite) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.RowsAffected()
}

func (s *SQLite) Begin(ctx context.Context) (ports.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, translateErr(err)
	}
	return sqlTx{tx: tx}, nil
}

type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	return translateErr(r.row.Scan(dest...))
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Next() bool             { return r.rows.Next() }
func (r sqlRows) Scan(dest ...any) error { return translateErr(r.rows.Scan(dest...)) }
func (r sqlRows) Err() error             { return translateErr(r.rows.Err()) }
func (r sqlRows) Close()                 { _ = r.rows.Close() }

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) ports.Row {
	return sqlRow{row: t.tx.QueryRowContext(ctx, query, args...)}
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateErr(err)
	}
	return res.RowsAffected()
}

func (t sqlTx) Commit(ctx context.Context) error {
	return translateErr(t.tx.Commit())
}

func (t sqlTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback()
}

package db

import (
	"context"
	"fmt"
	"strings"

	"loadgo/config"
	"loadgo/internal/admin-service/core/ports"
	"loadgo/internal/mylogger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the postgres record store. It is constructed explicitly and handed to
// the repos and the guard executor; nothing reaches for a package-level pool.
type DB struct {
	pool  *pgxpool.Pool
	mylog mylogger.Logger
}

func New(ctx context.Context, dbCfg *config.DBconfig, mylog mylogger.Logger) (*DB, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Database,
	)

	poolCfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(dbCfg.MigrationsPath, url, mylog); err != nil {
		pool.Close()
		return nil, err
	}

	return &DB{
		pool:  pool,
		mylog: mylog,
	}, nil
}

func runMigrations(path, url string, mylog mylogger.Logger) error {
	m, err := migrate.New("file://"+path, url)
	if err != nil {
		mylog.Warn("migration init failed, skipping", "path", path, "err", err.Error())
		return nil
	}
	if err := m.Up(); err != nil {
		if strings.Contains(err.Error(), "no change") {
			mylog.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("migration up: %w", err)
	}
	mylog.Info("migrations applied")
	return nil
}

func (d *DB) Dialect() string {
	return "postgres"
}

func (d *DB) IsAlive(ctx context.Context) error {
	if d.pool == nil {
		return fmt.Errorf("DB is not initialized")
	}
	return d.pool.Ping(ctx)
}

func (d *DB) Close() error {
	d.pool.Close()
	return nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) ports.Row {
	return pgRow{row: d.pool.QueryRow(ctx, query, args...)}
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (ports.Rows, error) {
	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateErr(err)
	}
	return pgRows{rows: rows}, nil
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := d.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, translateErr(err)
	}
	return tag.RowsAffected(), nil
}

func (d *DB) Begin(ctx context.Context) (ports.Tx, error) {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, translateErr(err)
	}
	return pgTx{tx: tx}, nil
}

type pgRow struct {
	row pgx.Row
}

func (r pgRow) Scan(dest ...any) error {
	return translateErr(r.row.Scan(dest...))
}

type pgRows struct {
	rows pgx.Rows
}

func (r pgRows) Next() bool             { return r.rows.Next() }
func (r pgRows) Scan(dest ...any) error { return translateErr(r.rows.Scan(dest...)) }
func (r pgRows) Err() error             { return translateErr(r.rows.Err()) }
func (r pgRows) Close()                 { r.rows.Close() }

type pgTx struct {
	tx pgx.Tx
}

func (t pgTx) QueryRow(ctx context.Context, query string, args ...any) ports.Row {
	return pgRow{row: t.tx.QueryRow(ctx, query, args...)}
}

func (t pgTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, translateErr(err)
	}
	return tag.RowsAffected(), nil
}

func (t pgTx) Commit(ctx context.Context) error {
	return translateErr(t.tx.Commit(ctx))
}

func (t pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// Package xpgx adapts a pgx pool to squirrel built queries.
package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the read side of a pgx pool, connection or transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is satisfied by *pgxpool.Pool.
type Pool interface {
	Querier
	Ping(ctx context.Context) error
	Close()
}

type Config struct {
	DSN            string
	MaxConns       int32
	ConnectRetries uint64
}

// Connect opens a pool and waits for the database to answer a ping.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(backoff.WithMaxRetries(b, cfg.ConnectRetries), ctx),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}

// Getx runs query and scans exactly one row into T by db tags.
// pgx.ErrNoRows is returned untouched when nothing matches.
func Getx[T any](ctx context.Context, q Querier, query sq.Sqlizer) (T, error) {
	var zero T

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
}

// Selectx runs query and scans every row into T by db tags.
func Selectx[T any](ctx context.Context, q Querier, query sq.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// Countx runs a single column integer query such as select count(*).
func Countx(ctx context.Context, q Querier, query sq.Sqlizer) (int, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err = q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}

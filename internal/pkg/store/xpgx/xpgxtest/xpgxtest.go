// Package xpgxtest provides an in-memory xpgx.Pool that replays canned result sets.
package xpgxtest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Result is one canned answer, consumed by the next Query or QueryRow call.
type Result struct {
	Columns []string
	Rows    [][]any
	Err     error
}

// Call is a query the pool received.
type Call struct {
	SQL  string
	Args []any
}

type Pool struct {
	mu      sync.Mutex
	results []Result
	calls   []Call
	PingErr error
}

func New(results ...Result) *Pool {
	return &Pool{results: results}
}

func (p *Pool) Push(r Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, r)
}

func (p *Pool) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

func (p *Pool) next(sql string, args []any) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, Call{SQL: sql, Args: args})
	if len(p.results) == 0 {
		return Result{}, fmt.Errorf("xpgxtest: unexpected query %q", sql)
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r, nil
}

func (p *Pool) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r, err := p.next(sql, args)
	if err != nil {
		return nil, err
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return &rows{result: r}, nil
}

func (p *Pool) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r, err := p.next(sql, args)
	if err != nil {
		return row{err: err}
	}
	if r.Err != nil {
		return row{err: r.Err}
	}
	if len(r.Rows) == 0 {
		return row{err: pgx.ErrNoRows}
	}
	return row{values: r.Rows[0]}
}

func (p *Pool) Ping(context.Context) error { return p.PingErr }

func (p *Pool) Close() {}

type row struct {
	values []any
	err    error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type rows struct {
	result Result
	idx    int
	closed bool
}

func (r *rows) Close()                        { r.closed = true }
func (r *rows) Err() error                    { return nil }
func (r *rows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *rows) Conn() *pgx.Conn               { return nil }
func (r *rows) RawValues() [][]byte           { return nil }

func (r *rows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.result.Columns))
	for i, c := range r.result.Columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *rows) Next() bool {
	if r.closed || r.idx >= len(r.result.Rows) {
		r.closed = true
		return false
	}
	r.idx++
	return true
}

func (r *rows) Values() ([]any, error) {
	return r.result.Rows[r.idx-1], nil
}

func (r *rows) Scan(dest ...any) error {
	if len(dest) == 1 {
		if rs, ok := dest[0].(pgx.RowScanner); ok {
			return rs.ScanRow(r)
		}
	}
	return assign(r.result.Rows[r.idx-1], dest)
}

// assign copies values into dest the way pgx would for the simple types the store uses.
func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("xpgxtest: %d values for %d destinations", len(values), len(dest))
	}

	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("xpgxtest: destination %d is not a pointer", i)
		}
		target := dv.Elem()

		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		v := reflect.ValueOf(values[i])
		if target.Kind() == reflect.Pointer && v.Type() != target.Type() {
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(v.Convert(target.Type().Elem()))
			target.Set(p)
			continue
		}
		if !v.CanConvert(target.Type()) {
			return fmt.Errorf("xpgxtest: cannot assign %T to %s", values[i], target.Type())
		}
		target.Set(v.Convert(target.Type()))
	}

	return nil
}

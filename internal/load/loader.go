//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package load persists warehouse tables into the destination store with
// full-replace semantics: each table is dropped, recreated, and written
// in bounded-size chunks. The load is NOT atomic across tables; a
// failure partway leaves earlier tables committed and later ones absent
// or stale. Single-writer discipline is an operational requirement, not
// enforced here.
package load

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgEdge/pgedge-etl/internal/logging"
	"github.com/pgEdge/pgedge-etl/internal/store"
	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

// Kind classifies load failures.
type Kind int

const (
	// KindConnectionFailed means the destination could not be reached.
	KindConnectionFailed Kind = iota

	// KindWriteFailed means DDL or a chunk insert failed.
	KindWriteFailed
)

func (k Kind) String() string {
	switch k {
	case KindConnectionFailed:
		return "connection failed"
	case KindWriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

// Error reports a load failure.
type Error struct {
	Kind  Kind
	Table string
	Err   error
}

func (e *Error) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("load %s: %s: %v", e.Table, e.Kind, e.Err)
	}
	return fmt.Sprintf("load: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Connect opens the destination store for loading.
func Connect(ctx context.Context, driver, connection string) (*store.Store, error) {
	st, err := store.Open(ctx, driver, connection)
	if err != nil {
		return nil, &Error{Kind: KindConnectionFailed, Err: err}
	}
	return st, nil
}

// Loader writes warehouse tables to a destination store.
type Loader struct {
	store     *store.Store
	chunkSize int
}

// New creates a Loader writing through st in chunks of chunkSize rows.
func New(st *store.Store, chunkSize int) *Loader {
	return &Loader{store: st, chunkSize: chunkSize}
}

// LoadAll writes every table in order and returns per-table row counts.
// It stops at the first failure.
func (l *Loader) LoadAll(ctx context.Context, tables []*warehouse.Table) (map[string]int64, error) {
	counts := make(map[string]int64, len(tables))
	for _, t := range tables {
		n, err := l.loadTable(ctx, t)
		if err != nil {
			return counts, err
		}
		counts[strings.ToLower(t.Name)] = n
	}
	return counts, nil
}

// loadTable replaces one destination table wholesale.
func (l *Loader) loadTable(ctx context.Context, t *warehouse.Table) (int64, error) {
	name := strings.ToLower(t.Name)
	dialect := l.store.Dialect()

	logging.Info().
		Str("table", name).
		Int("rows", len(t.Rows)).
		Msg("Loading table")

	dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s", dialect.QuoteIdent(name))
	if _, err := l.store.DB().ExecContext(ctx, dropSQL); err != nil {
		return 0, &Error{Kind: KindWriteFailed, Table: name, Err: err}
	}

	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = fmt.Sprintf("%s %s", dialect.QuoteIdent(c.Name), dialect.ColumnType(c.Kind))
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)",
		dialect.QuoteIdent(name), strings.Join(defs, ", "))
	if _, err := l.store.DB().ExecContext(ctx, createSQL); err != nil {
		return 0, &Error{Kind: KindWriteFailed, Table: name, Err: err}
	}

	reporter := NewProgressReporter(name, int64(len(t.Rows)))
	var written int64
	for start := 0; start < len(t.Rows); start += l.chunkSize {
		end := min(start+l.chunkSize, len(t.Rows))
		chunk := t.Rows[start:end]
		if err := l.writeChunk(ctx, name, t.ColumnNames(), chunk); err != nil {
			return written, &Error{Kind: KindWriteFailed, Table: name, Err: err}
		}
		written += int64(len(chunk))
		reporter.Update(int64(len(chunk)))
	}
	reporter.Done()

	return written, nil
}

// writeChunk inserts one chunk of rows inside a single transaction using
// a multi-row INSERT.
func (l *Loader) writeChunk(ctx context.Context, table string, columns []string, rows [][]any) error {
	dialect := l.store.Dialect()

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = dialect.QuoteIdent(c)
	}

	var (
		groups = make([]string, 0, len(rows))
		args   = make([]any, 0, len(rows)*len(columns))
		n      = 1
	)
	for _, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row has %d values, expected %d", len(row), len(columns))
		}
		ph := make([]string, len(row))
		for i := range row {
			ph[i] = dialect.Placeholder(n)
			n++
		}
		groups = append(groups, "("+strings.Join(ph, ", ")+")")
		args = append(args, row...)
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		dialect.QuoteIdent(table), strings.Join(quoted, ", "), strings.Join(groups, ", "))

	tx, err := l.store.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert chunk: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit chunk: %w", err)
	}
	return nil
}

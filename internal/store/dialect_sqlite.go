//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

import (
	"context"
	"database/sql"

	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

// sqliteDialect targets the CGO-free modernc.org/sqlite driver. SQLite is
// the file-backed destination; dates are stored with TEXT affinity.
type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) Placeholder(int) string { return "?" }

func (sqliteDialect) QuoteIdent(name string) string { return `"` + name + `"` }

func (sqliteDialect) ColumnType(k warehouse.ColumnKind) string {
	switch k {
	case warehouse.KindInt:
		return "INTEGER"
	case warehouse.KindFloat:
		return "REAL"
	case warehouse.KindDate:
		return "DATE"
	default:
		return "TEXT"
	}
}

func (sqliteDialect) TableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var name string
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
		table).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d sqliteDialect) TableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	// PRAGMA does not accept bound parameters; the identifier is quoted.
	rows, err := db.QueryContext(ctx, "PRAGMA table_info("+d.QuoteIdent(table)+")")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid        int
			name       string
			typ        string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

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
	"fmt"

	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

// postgresDialect targets PostgreSQL through pgx's database/sql adapter.
type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) Placeholder(i int) string { return fmt.Sprintf("$%d", i) }

func (postgresDialect) QuoteIdent(name string) string { return `"` + name + `"` }

func (postgresDialect) ColumnType(k warehouse.ColumnKind) string {
	switch k {
	case warehouse.KindInt:
		return "BIGINT"
	case warehouse.KindFloat:
		return "DOUBLE PRECISION"
	case warehouse.KindDate:
		return "DATE"
	default:
		return "TEXT"
	}
}

func (postgresDialect) TableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_schema = 'public' AND table_name = $1
        )
    `, table).Scan(&exists)
	return exists, err
}

func (postgresDialect) TableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT column_name FROM information_schema.columns
        WHERE table_schema = 'public' AND table_name = $1
        ORDER BY ordinal_position
    `, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

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

// mysqlDialect targets MySQL/MariaDB.
type mysqlDialect struct{}

func (mysqlDialect) Name() string { return "mysql" }

func (mysqlDialect) Placeholder(int) string { return "?" }

func (mysqlDialect) QuoteIdent(name string) string { return "`" + name + "`" }

func (mysqlDialect) ColumnType(k warehouse.ColumnKind) string {
	switch k {
	case warehouse.KindInt:
		return "BIGINT"
	case warehouse.KindFloat:
		return "DOUBLE"
	case warehouse.KindDate:
		return "DATE"
	default:
		return "TEXT"
	}
}

func (mysqlDialect) TableExists(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `
        SELECT COUNT(*) FROM information_schema.tables
        WHERE table_schema = DATABASE() AND table_name = ?
    `, table).Scan(&count)
	return count > 0, err
}

func (mysqlDialect) TableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT column_name FROM information_schema.columns
        WHERE table_schema = DATABASE() AND table_name = ?
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

//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package store provides destination store access for pgedge-etl. All
// engines are driven through database/sql; a Dialect supplies the
// engine-specific SQL (placeholders, identifier quoting, column types,
// and schema introspection).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Destination drivers.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/pgEdge/pgedge-etl/internal/logging"
	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

// Dialect supplies engine-specific SQL.
type Dialect interface {
	// Name returns the dialect name (sqlite, postgres, mysql).
	Name() string

	// Placeholder returns the parameter placeholder for 1-based index i.
	Placeholder(i int) string

	// QuoteIdent quotes a table or column identifier.
	QuoteIdent(name string) string

	// ColumnType maps a warehouse column kind onto a SQL column type.
	ColumnType(k warehouse.ColumnKind) string

	// TableExists reports whether a table exists in the destination.
	TableExists(ctx context.Context, db *sql.DB, table string) (bool, error)

	// TableColumns returns the ordered column names of a table.
	TableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error)
}

// Store is an open destination connection paired with its dialect.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects to the destination identified by driver and connection
// string and verifies the connection with a ping.
func Open(ctx context.Context, driver, connection string) (*Store, error) {
	var (
		dialect    Dialect
		driverName string
	)
	switch driver {
	case "sqlite":
		dialect, driverName = sqliteDialect{}, "sqlite"
	case "postgres":
		dialect, driverName = postgresDialect{}, "pgx"
	case "mysql":
		dialect, driverName = mysqlDialect{}, "mysql"
	default:
		return nil, fmt.Errorf("unknown driver: %s", driver)
	}

	db, err := sql.Open(driverName, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s destination: %w", driver, err)
	}

	logging.Debug().
		Str("driver", driver).
		Msg("Connected to destination store")

	return &Store{db: db, dialect: dialect}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the store's dialect.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// TableExists reports whether a table exists in the destination.
func (s *Store) TableExists(ctx context.Context, table string) (bool, error) {
	return s.dialect.TableExists(ctx, s.db, table)
}

// TableColumns returns the ordered column names of a table.
func (s *Store) TableColumns(ctx context.Context, table string) ([]string, error) {
	return s.dialect.TableColumns(ctx, s.db, table)
}

// RowCount returns the number of rows in a table.
func (s *Store) RowCount(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.dialect.QuoteIdent(table))
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

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
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-etl/internal/logging"
	"github.com/pgEdge/pgedge-etl/pkg/version"
)

const metadataTable = "etl_metadata"

// SaveMetadata records load-run metadata in the destination. The table
// is rewritten key-by-key with delete-then-insert so the same SQL works
// on every supported engine.
func (s *Store) SaveMetadata(ctx context.Context, rowCounts map[string]int64) error {
	createSQL := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    meta_key   TEXT,
    meta_value TEXT
)`, s.dialect.QuoteIdent(metadataTable))
	if _, err := s.db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	var totalRows int64
	for _, n := range rowCounts {
		totalRows += n
	}

	metadata := map[string]string{
		"version":     version.Short(),
		"loaded_at":   time.Now().UTC().Format(time.RFC3339),
		"total_rows":  fmt.Sprintf("%d", totalRows),
		"table_count": fmt.Sprintf("%d", len(rowCounts)),
	}

	deleteSQL := fmt.Sprintf("DELETE FROM %s WHERE meta_key = %s",
		s.dialect.QuoteIdent(metadataTable), s.dialect.Placeholder(1))
	insertSQL := fmt.Sprintf("INSERT INTO %s (meta_key, meta_value) VALUES (%s, %s)",
		s.dialect.QuoteIdent(metadataTable), s.dialect.Placeholder(1), s.dialect.Placeholder(2))

	for key, value := range metadata {
		if _, err := s.db.ExecContext(ctx, deleteSQL, key); err != nil {
			return fmt.Errorf("failed to clear metadata %s: %w", key, err)
		}
		if _, err := s.db.ExecContext(ctx, insertSQL, key, value); err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Int64("total_rows", totalRows).
		Msg("Saved load metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func (s *Store) GetMetadataValue(ctx context.Context, key string) (string, error) {
	query := fmt.Sprintf("SELECT meta_value FROM %s WHERE meta_key = %s",
		s.dialect.QuoteIdent(metadataTable), s.dialect.Placeholder(1))
	var value string
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

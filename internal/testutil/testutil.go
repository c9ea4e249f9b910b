//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package testutil provides utilities for store-backed tests. Tests run
// against a throwaway file-backed SQLite store so no external services
// are required.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pgEdge/pgedge-etl/internal/store"
)

// OpenTestStore opens a SQLite store backed by a file in a test-scoped
// temporary directory. The store is closed and the file removed when the
// test finishes.
func OpenTestStore(t *testing.T) *store.Store {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "etl_test.db")
	st, err := store.Open(ctx, "sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Logf("Warning: failed to close test store: %v", err)
		}
	})
	return st
}

//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package verify checks persisted warehouse state against the expected
// schema contract. It is purely a presence/shape check: table existence
// and column names, never types or data values. Contract mismatches are
// reported as a structured result, not returned as errors.
package verify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pgEdge/pgedge-etl/internal/logging"
	"github.com/pgEdge/pgedge-etl/internal/store"
)

// TableResult is the verification outcome for one expected table.
type TableResult struct {
	Table string

	// Exists reports whether the table was found in the destination.
	Exists bool

	// MissingColumns are expected columns absent from the actual table.
	// Extra actual columns are tolerated and not reported.
	MissingColumns []string

	// ColumnCount is the actual column count (when the table exists).
	ColumnCount int

	// RowCount is the actual row count (when the table fully matches).
	RowCount int64
}

// Passed reports whether this table satisfies the contract.
func (t TableResult) Passed() bool {
	return t.Exists && len(t.MissingColumns) == 0
}

// Result is the outcome of a verification run.
type Result struct {
	Tables    []TableResult
	AllPassed bool
}

// Run verifies each expected table in order against the destination.
// expected maps table names to ordered expected column names. Only store
// access failures are returned as errors.
func Run(ctx context.Context, st *store.Store, expected map[string][]string, order []string) (*Result, error) {
	logging.Info().
		Int("tables", len(order)).
		Msg("Verifying warehouse schema")

	result := &Result{AllPassed: true}
	for _, table := range order {
		expectedCols, ok := expected[table]
		if !ok {
			return nil, fmt.Errorf("no expected columns for table %s", table)
		}

		tr := TableResult{Table: table}
		exists, err := st.TableExists(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to check table %s: %w", table, err)
		}
		tr.Exists = exists

		if exists {
			actual, err := st.TableColumns(ctx, table)
			if err != nil {
				return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
			}
			tr.ColumnCount = len(actual)

			have := make(map[string]bool, len(actual))
			for _, c := range actual {
				have[c] = true
			}
			for _, c := range expectedCols {
				if !have[c] {
					tr.MissingColumns = append(tr.MissingColumns, c)
				}
			}

			if len(tr.MissingColumns) == 0 {
				count, err := st.RowCount(ctx, table)
				if err != nil {
					return nil, fmt.Errorf("failed to count rows of %s: %w", table, err)
				}
				tr.RowCount = count
			}
		}

		if !tr.Passed() {
			result.AllPassed = false
		}
		result.Tables = append(result.Tables, tr)
	}

	logging.Info().
		Bool("all_passed", result.AllPassed).
		Msg("Verification complete")

	return result, nil
}

// Print writes a human-readable verification report.
func (r *Result) Print(w io.Writer) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "DATA WAREHOUSE SCHEMA VERIFICATION")
	fmt.Fprintln(w, line)

	for _, t := range r.Tables {
		switch {
		case !t.Exists:
			fmt.Fprintf(w, "FAIL %s: table not found\n", t.Table)
		case len(t.MissingColumns) > 0:
			fmt.Fprintf(w, "FAIL %s: missing columns: %s\n",
				t.Table, strings.Join(t.MissingColumns, ", "))
		default:
			fmt.Fprintf(w, "OK   %s: %d rows, %d columns\n",
				t.Table, t.RowCount, t.ColumnCount)
		}
	}

	fmt.Fprintln(w, line)
	if r.AllPassed {
		fmt.Fprintln(w, "ALL TABLES VERIFIED SUCCESSFULLY")
	} else {
		fmt.Fprintln(w, "SOME ISSUES FOUND - see above")
	}
}

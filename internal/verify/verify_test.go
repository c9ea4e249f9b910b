//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package verify

import (
	"context"
	"strings"
	"testing"

	"github.com/pgEdge/pgedge-etl/internal/testutil"
)

func TestRunAllPassing(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	_, err := st.DB().ExecContext(ctx,
		`CREATE TABLE customer_dim (customer_key INTEGER, customer_name TEXT)`)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	_, err = st.DB().ExecContext(ctx,
		`INSERT INTO customer_dim VALUES (1, 'Alice Ng'), (2, 'Bob Ruiz')`)
	if err != nil {
		t.Fatalf("Failed to insert rows: %v", err)
	}

	expected := map[string][]string{
		"customer_dim": {"customer_key", "customer_name"},
	}
	result, err := Run(ctx, st, expected, []string{"customer_dim"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if !result.AllPassed {
		t.Error("Expected AllPassed for matching schema")
	}
	if len(result.Tables) != 1 {
		t.Fatalf("Expected 1 table result, got %d", len(result.Tables))
	}
	tr := result.Tables[0]
	if !tr.Exists || !tr.Passed() {
		t.Errorf("Table result = %+v, want passing", tr)
	}
	if tr.RowCount != 2 {
		t.Errorf("RowCount = %d, want 2", tr.RowCount)
	}
	if tr.ColumnCount != 2 {
		t.Errorf("ColumnCount = %d, want 2", tr.ColumnCount)
	}
}

func TestRunMissingTable(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	expected := map[string][]string{
		"sales_fact": {"order_number"},
	}
	result, err := Run(ctx, st, expected, []string{"sales_fact"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.AllPassed {
		t.Error("AllPassed should be false when a table is missing")
	}
	tr := result.Tables[0]
	if tr.Exists {
		t.Error("Missing table reported as existing")
	}
	if tr.Passed() {
		t.Error("Missing table reported as passing")
	}
}

func TestRunMissingColumns(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	// "profit" renamed, "currency_code" absent.
	_, err := st.DB().ExecContext(ctx,
		`CREATE TABLE sales_fact (order_number INTEGER, quantity INTEGER, profit_usd REAL)`)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	expected := map[string][]string{
		"sales_fact": {"order_number", "quantity", "profit", "currency_code"},
	}
	result, err := Run(ctx, st, expected, []string{"sales_fact"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.AllPassed {
		t.Error("AllPassed should be false with missing columns")
	}
	tr := result.Tables[0]
	if !tr.Exists {
		t.Error("Existing table reported as missing")
	}
	if len(tr.MissingColumns) != 2 {
		t.Fatalf("MissingColumns = %v, want 2 entries", tr.MissingColumns)
	}
	want := map[string]bool{"profit": true, "currency_code": true}
	for _, c := range tr.MissingColumns {
		if !want[c] {
			t.Errorf("Unexpected missing column %q", c)
		}
	}
}

func TestRunToleratesExtraColumns(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	_, err := st.DB().ExecContext(ctx,
		`CREATE TABLE sales_fact (order_number INTEGER, quantity INTEGER, season TEXT, order_year INTEGER)`)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	expected := map[string][]string{
		"sales_fact": {"order_number", "quantity"},
	}
	result, err := Run(ctx, st, expected, []string{"sales_fact"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if !result.AllPassed {
		t.Error("Extra columns beyond the contract must be tolerated")
	}
	if result.Tables[0].ColumnCount != 4 {
		t.Errorf("ColumnCount = %d, want 4", result.Tables[0].ColumnCount)
	}
}

func TestRunUnknownExpectedTable(t *testing.T) {
	st := testutil.OpenTestStore(t)
	_, err := Run(context.Background(), st, map[string][]string{}, []string{"mystery"})
	if err == nil {
		t.Error("Expected error for table with no expected columns, got nil")
	}
}

func TestResultPrint(t *testing.T) {
	result := &Result{
		Tables: []TableResult{
			{Table: "customer_dim", Exists: true, ColumnCount: 10, RowCount: 500},
			{Table: "product_dim", Exists: false},
			{Table: "sales_fact", Exists: true, MissingColumns: []string{"profit"}},
		},
		AllPassed: false,
	}

	var buf strings.Builder
	result.Print(&buf)
	out := buf.String()

	if !strings.Contains(out, "OK   customer_dim: 500 rows, 10 columns") {
		t.Errorf("Missing OK line in output:\n%s", out)
	}
	if !strings.Contains(out, "FAIL product_dim: table not found") {
		t.Errorf("Missing table-not-found line in output:\n%s", out)
	}
	if !strings.Contains(out, "FAIL sales_fact: missing columns: profit") {
		t.Errorf("Missing missing-columns line in output:\n%s", out)
	}
	if !strings.Contains(out, "SOME ISSUES FOUND") {
		t.Errorf("Missing failure summary in output:\n%s", out)
	}

	passing := &Result{
		Tables:    []TableResult{{Table: "customer_dim", Exists: true}},
		AllPassed: true,
	}
	buf.Reset()
	passing.Print(&buf)
	if !strings.Contains(buf.String(), "ALL TABLES VERIFIED SUCCESSFULLY") {
		t.Errorf("Missing success summary in output:\n%s", buf.String())
	}
}

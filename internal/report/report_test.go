//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package report

import (
	"context"
	"strings"
	"testing"

	"github.com/pgEdge/pgedge-etl/internal/testutil"
)

func TestOrdersByYear(t *testing.T) {
	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	_, err := st.DB().ExecContext(ctx,
		`CREATE TABLE sales_fact (order_date TEXT, delivery_date TEXT)`)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	_, err = st.DB().ExecContext(ctx, `INSERT INTO sales_fact VALUES
		('2020-05-01', '2020-05-04'),
		('2020-06-10', NULL),
		('2021-01-15', '2021-01-18'),
		('2021-02-20', '2021-02-22'),
		('2021-03-25', NULL)`)
	if err != nil {
		t.Fatalf("Failed to insert rows: %v", err)
	}

	summaries, err := OrdersByYear(ctx, st)
	if err != nil {
		t.Fatalf("OrdersByYear error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("Expected 2 year summaries, got %d", len(summaries))
	}
	// Sorted ascending by year.
	if summaries[0].Year != 2020 || summaries[1].Year != 2021 {
		t.Errorf("Years = %d, %d, want 2020, 2021", summaries[0].Year, summaries[1].Year)
	}
	if summaries[0].TotalOrders != 2 || summaries[0].WithDelivery != 1 {
		t.Errorf("2020 summary = %+v, want 2 total, 1 with delivery", summaries[0])
	}
	if summaries[1].TotalOrders != 3 || summaries[1].WithDelivery != 2 {
		t.Errorf("2021 summary = %+v, want 3 total, 2 with delivery", summaries[1])
	}
}

func TestOrdersByYearMissingTable(t *testing.T) {
	st := testutil.OpenTestStore(t)
	if _, err := OrdersByYear(context.Background(), st); err == nil {
		t.Error("Expected error when sales_fact is absent, got nil")
	}
}

func TestAsDate(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "iso string", value: "2021-03-05"},
		{name: "datetime string", value: "2021-03-05 00:00:00"},
		{name: "byte slice", value: []byte("2021-03-05")},
		{name: "unparseable string", value: "yesterday", wantErr: true},
		{name: "unsupported type", value: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asDate(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("asDate(%v) expected error, got %v", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("asDate(%v) unexpected error: %v", tt.value, err)
			}
			if got.Year() != 2021 || got.Month() != 3 || got.Day() != 5 {
				t.Errorf("asDate(%v) = %v, want 2021-03-05", tt.value, got)
			}
		})
	}
}

func TestPrint(t *testing.T) {
	summaries := []YearSummary{
		{Year: 2020, TotalOrders: 150, WithDelivery: 100},
		{Year: 2021, TotalOrders: 300, WithDelivery: 250},
	}

	var buf strings.Builder
	Print(&buf, summaries)
	out := buf.String()

	if !strings.Contains(out, "Year | Total Orders | With Delivery Date") {
		t.Errorf("Missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "2020") || !strings.Contains(out, "2021") {
		t.Errorf("Missing year rows in output:\n%s", out)
	}
}

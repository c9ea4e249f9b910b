//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package load

import (
	"context"
	"testing"

	"github.com/pgEdge/pgedge-etl/internal/extract"
	"github.com/pgEdge/pgedge-etl/internal/testutil"
	"github.com/pgEdge/pgedge-etl/internal/verify"
	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

// TestPipelineRoundTrip drives transform and load end to end against a
// throwaway store, then checks the persisted schema with the verifier.
func TestPipelineRoundTrip(t *testing.T) {
	data := &extract.Data{
		Sales: []*extract.RawSale{
			{OrderNumber: 1, OrderDate: "3/1/2021", DeliveryDate: "3/5/2021", CustomerKey: 10, StoreKey: 1, ProductKey: 101, Quantity: 2, CurrencyCode: "USD"},
			{OrderNumber: 2, OrderDate: "12/20/2021", CustomerKey: 11, StoreKey: 1, ProductKey: 999, Quantity: 1, CurrencyCode: "EUR"},
			{OrderNumber: 3, OrderDate: "6/10/2021", DeliveryDate: "6/12/2021", CustomerKey: 10, StoreKey: 2, ProductKey: 102, Quantity: 4, CurrencyCode: "USD"},
		},
		Customers: []*extract.RawCustomer{
			{CustomerKey: 10, Gender: "Female", Name: "Alice Ng", City: "Portland", StateCode: "OR", State: "Oregon", ZipCode: "97201", Country: "United States", Continent: "North America", Birthday: "7/4/1985"},
			{CustomerKey: 11, Gender: "Male", Name: "Bob Ruiz", City: "Austin", StateCode: "TX", State: "Texas", ZipCode: "78701", Country: "United States", Continent: "North America", Birthday: "1/15/1990"},
		},
		Products: []*extract.RawProduct{
			{ProductKey: 101, ProductName: "Laptop A", Brand: "Contoso", Color: "Black", UnitCostUSD: "$500.00", UnitPriceUSD: "$800.00", Subcategory: "Laptops", Category: "Computers"},
			{ProductKey: 102, ProductName: "Headphones B", Brand: "Fabrikam", Color: "White", UnitCostUSD: "$20.00", UnitPriceUSD: "$60.00", Subcategory: "Headphones", Category: "Audio"},
		},
		Stores: []*extract.RawStore{
			{StoreKey: 1, Country: "United States", State: "Oregon", SquareMeters: 1200, OpenDate: "3/1/2010"},
			{StoreKey: 2, Country: "United States", State: "Texas", SquareMeters: 900, OpenDate: "8/15/2012"},
		},
		ExchangeRates: []*extract.RawExchangeRate{
			{Date: "3/1/2021", Currency: "USD", Exchange: "1.0000"},
			{Date: "3/1/2021", Currency: "EUR", Exchange: "0.8500"},
		},
	}

	star, err := warehouse.Build(data)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	st := testutil.OpenTestStore(t)
	ctx := context.Background()

	loader := New(st, 2)
	counts, err := loader.LoadAll(ctx, star.Tables())
	if err != nil {
		t.Fatalf("LoadAll error: %v", err)
	}

	if counts[warehouse.SalesFactTable] != 3 {
		t.Errorf("sales_fact count = %d, want 3", counts[warehouse.SalesFactTable])
	}
	if counts[warehouse.CustomerDimTable] != 2 {
		t.Errorf("customer_dim count = %d, want 2", counts[warehouse.CustomerDimTable])
	}

	result, err := verify.Run(ctx, st, warehouse.Contract(), warehouse.ContractTableNames)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !result.AllPassed {
		for _, tr := range result.Tables {
			if !tr.Passed() {
				t.Errorf("Table %s failed: exists=%v missing=%v", tr.Table, tr.Exists, tr.MissingColumns)
			}
		}
		t.Fatal("Schema verification failed after load")
	}

	// The unmatched product key leaves its metric columns NULL.
	var nullMetrics int64
	row := st.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sales_fact WHERE total_revenue IS NULL AND profit IS NULL`)
	if err := row.Scan(&nullMetrics); err != nil {
		t.Fatalf("Failed to count NULL metric rows: %v", err)
	}
	if nullMetrics != 1 {
		t.Errorf("NULL metric rows = %d, want 1", nullMetrics)
	}
}

func TestConnectBadDriver(t *testing.T) {
	_, err := Connect(context.Background(), "oracle", "whatever")
	if err == nil {
		t.Fatal("Expected error for unknown driver, got nil")
	}
	lerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Error is %T, want *Error", err)
	}
	if lerr.Kind != KindConnectionFailed {
		t.Errorf("Kind = %v, want %v", lerr.Kind, KindConnectionFailed)
	}
}

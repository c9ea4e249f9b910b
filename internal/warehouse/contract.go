//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

// Persisted table names.
const (
	CustomerDimTable           = "customer_dim"
	ProductCategoryDimTable    = "product_category_dim"
	ProductSubcategoryDimTable = "product_subcategory_dim"
	ProductDimTable            = "product_dim"
	StoreDimTable              = "store_dim"
	ExchangeRatesDimTable      = "exchange_rates_dim"
	SalesFactTable             = "sales_fact"
)

// ContractTableNames lists the contract tables in verification order.
var ContractTableNames = []string{
	CustomerDimTable,
	ProductDimTable,
	ProductCategoryDimTable,
	ProductSubcategoryDimTable,
	StoreDimTable,
	ExchangeRatesDimTable,
	SalesFactTable,
}

// Contract returns the persisted schema contract: each table name mapped
// to its expected column names. The verifier checks persisted state
// against this map; loaders may write additional columns beyond it
// (derived analysis columns on the fact table), but never fewer.
func Contract() map[string][]string {
	return map[string][]string{
		CustomerDimTable: {
			"customer_key", "gender", "customer_name", "city", "state_code",
			"state", "zip_code", "country", "continent", "birthday",
		},
		ProductDimTable: {
			"product_key", "product_name", "brand", "color",
			"category_key", "subcategory_key", "unit_cost_usd", "unit_price_usd",
		},
		ProductCategoryDimTable: {
			"category_key", "category",
		},
		ProductSubcategoryDimTable: {
			"subcategory_key", "subcategory",
		},
		StoreDimTable: {
			"store_key", "store_name", "country", "state", "square_meters", "open_date",
		},
		ExchangeRatesDimTable: {
			"date", "currency_code", "exchange",
		},
		SalesFactTable: {
			"order_number", "customer_key", "product_key", "store_key",
			"order_date", "delivery_date", "quantity", "unit_cost_usd",
			"unit_price_usd", "total_revenue", "profit", "currency_code",
		},
	}
}

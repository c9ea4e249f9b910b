//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package extract

// Raw record types mirror the source extracts column-for-column. Header
// names in the csv tags are the verbatim source headers; no renaming or
// value transformation happens during extraction. Date and currency
// columns stay as strings until the clean phase.

// RawSale is one row of the Sales extract.
type RawSale struct {
	OrderNumber  int64  `csv:"Order Number"`
	OrderDate    string `csv:"Order Date"`
	DeliveryDate string `csv:"Delivery Date"`
	CustomerKey  int64  `csv:"CustomerKey"`
	StoreKey     int64  `csv:"StoreKey"`
	ProductKey   int64  `csv:"ProductKey"`
	Quantity     int    `csv:"Quantity"`
	CurrencyCode string `csv:"Currency Code"`
}

// RawCustomer is one row of the Customers extract.
type RawCustomer struct {
	CustomerKey int64  `csv:"CustomerKey"`
	Gender      string `csv:"Gender"`
	Name        string `csv:"Name"`
	City        string `csv:"City"`
	StateCode   string `csv:"State Code"`
	State       string `csv:"State"`
	ZipCode     string `csv:"Zip Code"`
	Country     string `csv:"Country"`
	Continent   string `csv:"Continent"`
	Birthday    string `csv:"Birthday"`
}

// RawProduct is one row of the Products extract. CategoryKey and
// SubcategoryKey are optional source columns; they stay empty when the
// extract does not carry them.
type RawProduct struct {
	ProductKey     int64  `csv:"ProductKey"`
	ProductName    string `csv:"Product Name"`
	Brand          string `csv:"Brand"`
	Color          string `csv:"Color"`
	UnitCostUSD    string `csv:"Unit Cost USD"`
	UnitPriceUSD   string `csv:"Unit Price USD"`
	SubcategoryKey string `csv:"SubcategoryKey"`
	Subcategory    string `csv:"Subcategory"`
	CategoryKey    string `csv:"CategoryKey"`
	Category       string `csv:"Category"`
}

// RawStore is one row of the Stores extract.
type RawStore struct {
	StoreKey     int64  `csv:"StoreKey"`
	Country      string `csv:"Country"`
	State        string `csv:"State"`
	SquareMeters int    `csv:"Square Meters"`
	OpenDate     string `csv:"Open Date"`
}

// RawExchangeRate is one row of the Exchange_Rates extract.
type RawExchangeRate struct {
	Date     string `csv:"Date"`
	Currency string `csv:"Currency"`
	Exchange string `csv:"Exchange"`
}

// Data bundles the five decoded extracts.
type Data struct {
	Sales         []*RawSale
	Customers     []*RawCustomer
	Products      []*RawProduct
	Stores        []*RawStore
	ExchangeRates []*RawExchangeRate
}

//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"time"

	"github.com/pgEdge/pgedge-etl/internal/extract"
	"github.com/pgEdge/pgedge-etl/internal/logging"
)

// Star holds the fully built star schema for one pipeline run.
type Star struct {
	Categories    []Category
	Subcategories []Subcategory
	Products      []Product
	Customers     []Customer
	Stores        []Store
	ExchangeRates []ExchangeRate
	Facts         []SalesFact
}

// Build constructs every dimension and the fact table from the raw
// extracts. Everything is recomputed from scratch; nothing carries over
// between runs.
func Build(data *extract.Data) (*Star, error) {
	logging.Info().Msg("Building dimensions and fact table")

	categories, err := BuildCategoryDim(data.Products)
	if err != nil {
		return nil, err
	}
	subcategories, err := BuildSubcategoryDim(data.Products)
	if err != nil {
		return nil, err
	}
	products, err := BuildProductDim(data.Products, categories, subcategories)
	if err != nil {
		return nil, err
	}
	customers, err := BuildCustomerDim(data.Customers)
	if err != nil {
		return nil, err
	}
	stores, err := BuildStoreDim(data.Stores)
	if err != nil {
		return nil, err
	}
	rates, err := BuildExchangeRateDim(data.ExchangeRates)
	if err != nil {
		return nil, err
	}
	facts, err := BuildSalesFact(data.Sales, products)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("categories", len(categories)).
		Int("subcategories", len(subcategories)).
		Int("products", len(products)).
		Int("customers", len(customers)).
		Int("stores", len(stores)).
		Int("exchange_rates", len(rates)).
		Int("facts", len(facts)).
		Msg("Star schema built")

	return &Star{
		Categories:    categories,
		Subcategories: subcategories,
		Products:      products,
		Customers:     customers,
		Stores:        stores,
		ExchangeRates: rates,
		Facts:         facts,
	}, nil
}

// Tables projects the star schema onto the persisted tables in load
// order: dimensions first, fact last. Column order follows the schema
// contract; the fact table appends the derived analysis columns after
// the contract columns.
func (s *Star) Tables() []*Table {
	return []*Table{
		s.categoryTable(),
		s.subcategoryTable(),
		s.productTable(),
		s.customerTable(),
		s.storeTable(),
		s.exchangeRateTable(),
		s.factTable(),
	}
}

func (s *Star) categoryTable() *Table {
	t := &Table{
		Name: ProductCategoryDimTable,
		Columns: []Column{
			{Name: "category_key", Kind: KindInt},
			{Name: "category", Kind: KindText},
		},
	}
	for _, c := range s.Categories {
		t.Rows = append(t.Rows, []any{c.Key, c.Name})
	}
	return t
}

func (s *Star) subcategoryTable() *Table {
	t := &Table{
		Name: ProductSubcategoryDimTable,
		Columns: []Column{
			{Name: "subcategory_key", Kind: KindInt},
			{Name: "subcategory", Kind: KindText},
			{Name: "category", Kind: KindText},
		},
	}
	for _, sc := range s.Subcategories {
		t.Rows = append(t.Rows, []any{sc.Key, sc.Name, sc.ParentCategory})
	}
	return t
}

func (s *Star) productTable() *Table {
	t := &Table{
		Name: ProductDimTable,
		Columns: []Column{
			{Name: "product_key", Kind: KindInt},
			{Name: "product_name", Kind: KindText},
			{Name: "brand", Kind: KindText},
			{Name: "color", Kind: KindText},
			{Name: "category_key", Kind: KindInt},
			{Name: "subcategory_key", Kind: KindInt},
			{Name: "unit_cost_usd", Kind: KindFloat},
			{Name: "unit_price_usd", Kind: KindFloat},
		},
	}
	for _, p := range s.Products {
		t.Rows = append(t.Rows, []any{
			p.Key, p.Name, p.Brand, p.Color,
			p.CategoryKey, p.SubcategoryKey, p.UnitCostUSD, p.UnitPriceUSD,
		})
	}
	return t
}

func (s *Star) customerTable() *Table {
	t := &Table{
		Name: CustomerDimTable,
		Columns: []Column{
			{Name: "customer_key", Kind: KindInt},
			{Name: "gender", Kind: KindText},
			{Name: "customer_name", Kind: KindText},
			{Name: "city", Kind: KindText},
			{Name: "state_code", Kind: KindText},
			{Name: "state", Kind: KindText},
			{Name: "zip_code", Kind: KindText},
			{Name: "country", Kind: KindText},
			{Name: "continent", Kind: KindText},
			{Name: "birthday", Kind: KindDate},
		},
	}
	for _, c := range s.Customers {
		t.Rows = append(t.Rows, []any{
			c.Key, c.Gender, c.Name, c.City, c.StateCode,
			c.State, c.ZipCode, c.Country, c.Continent, c.Birthday,
		})
	}
	return t
}

func (s *Star) storeTable() *Table {
	t := &Table{
		Name: StoreDimTable,
		Columns: []Column{
			{Name: "store_key", Kind: KindInt},
			{Name: "store_name", Kind: KindText},
			{Name: "country", Kind: KindText},
			{Name: "state", Kind: KindText},
			{Name: "square_meters", Kind: KindInt},
			{Name: "open_date", Kind: KindDate},
		},
	}
	for _, st := range s.Stores {
		t.Rows = append(t.Rows, []any{
			st.Key, st.Name, st.Country, st.State, int64(st.SquareMeters), st.OpenDate,
		})
	}
	return t
}

func (s *Star) exchangeRateTable() *Table {
	t := &Table{
		Name: ExchangeRatesDimTable,
		Columns: []Column{
			{Name: "date", Kind: KindDate},
			{Name: "currency_code", Kind: KindText},
			{Name: "exchange", Kind: KindFloat},
		},
	}
	for _, r := range s.ExchangeRates {
		t.Rows = append(t.Rows, []any{r.Date, r.Currency, r.Rate})
	}
	return t
}

func (s *Star) factTable() *Table {
	t := &Table{
		Name: SalesFactTable,
		Columns: []Column{
			{Name: "order_number", Kind: KindInt},
			{Name: "customer_key", Kind: KindInt},
			{Name: "product_key", Kind: KindInt},
			{Name: "store_key", Kind: KindInt},
			{Name: "order_date", Kind: KindDate},
			{Name: "delivery_date", Kind: KindDate},
			{Name: "quantity", Kind: KindInt},
			{Name: "unit_cost_usd", Kind: KindFloat},
			{Name: "unit_price_usd", Kind: KindFloat},
			{Name: "total_revenue", Kind: KindFloat},
			{Name: "profit", Kind: KindFloat},
			{Name: "currency_code", Kind: KindText},
			{Name: "delivery_time_days", Kind: KindInt},
			{Name: "season", Kind: KindText},
			{Name: "order_month", Kind: KindInt},
			{Name: "order_year", Kind: KindInt},
		},
	}
	for i := range s.Facts {
		f := &s.Facts[i]
		t.Rows = append(t.Rows, []any{
			f.OrderNumber, f.CustomerKey, f.ProductKey, f.StoreKey,
			f.OrderDate, nullableTime(f.DeliveryDate), int64(f.Quantity),
			nullableFloat(f.UnitCostUSD), nullableFloat(f.UnitPriceUSD),
			nullableFloat(f.TotalRevenueUSD), nullableFloat(f.ProfitUSD),
			f.CurrencyCode, nullableInt(f.DeliveryTimeDays),
			f.Season, int64(f.OrderMonth), int64(f.OrderYear),
		})
	}
	return t
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullableInt(i *int) any {
	if i == nil {
		return nil
	}
	return int64(*i)
}

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
	"fmt"
	"strconv"
	"time"

	"github.com/pgEdge/pgedge-etl/internal/clean"
	"github.com/pgEdge/pgedge-etl/internal/extract"
)

// Category is one row of product_category_dim.
type Category struct {
	Key  int64
	Name string
}

// Subcategory is one row of product_subcategory_dim. ParentCategory is a
// denormalized link carried through from the products extract.
type Subcategory struct {
	Key            int64
	Name           string
	ParentCategory string
}

// Product is one row of product_dim with cleaned currency values.
type Product struct {
	Key            int64
	Name           string
	Brand          string
	Color          string
	CategoryKey    int64
	SubcategoryKey int64
	UnitCostUSD    float64
	UnitPriceUSD   float64
}

// Customer is one row of customer_dim.
type Customer struct {
	Key       int64
	Gender    string
	Name      string
	City      string
	StateCode string
	State     string
	ZipCode   string
	Country   string
	Continent string
	Birthday  time.Time
}

// Store is one row of store_dim. Name is synthesized because the source
// extract carries no store name.
type Store struct {
	Key          int64
	Name         string
	Country      string
	State        string
	SquareMeters int
	OpenDate     time.Time
}

// ExchangeRate is one row of exchange_rates_dim, keyed by (date, currency).
type ExchangeRate struct {
	Date     time.Time
	Currency string
	Rate     float64
}

// keyAssigner hands out keys for a named dimension value. When the source
// carries an explicit key it is reused as-is; otherwise sequential keys
// are assigned starting at 1 in first-occurrence order.
type keyAssigner struct {
	byName map[string]int64
	next   int64
}

func newKeyAssigner() *keyAssigner {
	return &keyAssigner{byName: make(map[string]int64), next: 1}
}

// assign returns the key for name and whether name was seen before.
// nativeKey is the raw source key column value, empty when absent.
func (a *keyAssigner) assign(name, nativeKey string) (int64, bool, error) {
	if key, ok := a.byName[name]; ok {
		return key, true, nil
	}
	if nativeKey != "" {
		key, err := strconv.ParseInt(nativeKey, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("invalid native key %q for %q: %w", nativeKey, name, err)
		}
		a.byName[name] = key
		return key, false, nil
	}
	key := a.next
	a.next++
	a.byName[name] = key
	return key, false, nil
}

// BuildCategoryDim deduplicates product categories in first-occurrence
// order and assigns keys.
func BuildCategoryDim(products []*extract.RawProduct) ([]Category, error) {
	assigner := newKeyAssigner()
	var dim []Category
	for _, p := range products {
		key, seen, err := assigner.assign(p.Category, p.CategoryKey)
		if err != nil {
			return nil, err
		}
		if !seen {
			dim = append(dim, Category{Key: key, Name: p.Category})
		}
	}
	return dim, nil
}

// BuildSubcategoryDim deduplicates product subcategories in
// first-occurrence order and assigns keys.
func BuildSubcategoryDim(products []*extract.RawProduct) ([]Subcategory, error) {
	assigner := newKeyAssigner()
	var dim []Subcategory
	for _, p := range products {
		key, seen, err := assigner.assign(p.Subcategory, p.SubcategoryKey)
		if err != nil {
			return nil, err
		}
		if !seen {
			dim = append(dim, Subcategory{Key: key, Name: p.Subcategory, ParentCategory: p.Category})
		}
	}
	return dim, nil
}

// BuildProductDim deduplicates products by their natural key, cleans the
// currency columns, and resolves category/subcategory keys against the
// already-built dimensions.
func BuildProductDim(products []*extract.RawProduct, categories []Category, subcategories []Subcategory) ([]Product, error) {
	catKeys := make(map[string]int64, len(categories))
	for _, c := range categories {
		catKeys[c.Name] = c.Key
	}
	subKeys := make(map[string]int64, len(subcategories))
	for _, s := range subcategories {
		subKeys[s.Name] = s.Key
	}

	seen := make(map[int64]bool, len(products))
	dim := make([]Product, 0, len(products))
	for _, p := range products {
		if seen[p.ProductKey] {
			continue
		}
		seen[p.ProductKey] = true

		cost, err := clean.Currency(p.UnitCostUSD)
		if err != nil {
			return nil, fmt.Errorf("product %d unit cost: %w", p.ProductKey, err)
		}
		price, err := clean.Currency(p.UnitPriceUSD)
		if err != nil {
			return nil, fmt.Errorf("product %d unit price: %w", p.ProductKey, err)
		}

		dim = append(dim, Product{
			Key:            p.ProductKey,
			Name:           p.ProductName,
			Brand:          p.Brand,
			Color:          p.Color,
			CategoryKey:    catKeys[p.Category],
			SubcategoryKey: subKeys[p.Subcategory],
			UnitCostUSD:    cost,
			UnitPriceUSD:   price,
		})
	}
	return dim, nil
}

// BuildCustomerDim deduplicates customers by their natural key and
// normalizes the birthday column.
func BuildCustomerDim(customers []*extract.RawCustomer) ([]Customer, error) {
	seen := make(map[int64]bool, len(customers))
	dim := make([]Customer, 0, len(customers))
	for _, c := range customers {
		if seen[c.CustomerKey] {
			continue
		}
		seen[c.CustomerKey] = true

		birthday, err := clean.Date(c.Birthday)
		if err != nil {
			return nil, fmt.Errorf("customer %d birthday: %w", c.CustomerKey, err)
		}

		dim = append(dim, Customer{
			Key:       c.CustomerKey,
			Gender:    c.Gender,
			Name:      c.Name,
			City:      c.City,
			StateCode: c.StateCode,
			State:     c.State,
			ZipCode:   c.ZipCode,
			Country:   c.Country,
			Continent: c.Continent,
			Birthday:  birthday,
		})
	}
	return dim, nil
}

// BuildStoreDim deduplicates stores by their natural key, normalizes the
// open date, and synthesizes a display name.
func BuildStoreDim(stores []*extract.RawStore) ([]Store, error) {
	seen := make(map[int64]bool, len(stores))
	dim := make([]Store, 0, len(stores))
	for _, s := range stores {
		if seen[s.StoreKey] {
			continue
		}
		seen[s.StoreKey] = true

		openDate, err := clean.Date(s.OpenDate)
		if err != nil {
			return nil, fmt.Errorf("store %d open date: %w", s.StoreKey, err)
		}

		dim = append(dim, Store{
			Key:          s.StoreKey,
			Name:         "Store " + strconv.FormatInt(s.StoreKey, 10),
			Country:      s.Country,
			State:        s.State,
			SquareMeters: s.SquareMeters,
			OpenDate:     openDate,
		})
	}
	return dim, nil
}

// BuildExchangeRateDim deduplicates exchange rates by the composite
// (date, currency) key.
func BuildExchangeRateDim(rates []*extract.RawExchangeRate) ([]ExchangeRate, error) {
	type rateKey struct {
		date     time.Time
		currency string
	}
	seen := make(map[rateKey]bool, len(rates))
	dim := make([]ExchangeRate, 0, len(rates))
	for _, r := range rates {
		date, err := clean.Date(r.Date)
		if err != nil {
			return nil, fmt.Errorf("exchange rate date: %w", err)
		}
		rate, err := clean.Currency(r.Exchange)
		if err != nil {
			return nil, fmt.Errorf("exchange rate value: %w", err)
		}

		k := rateKey{date: date, currency: r.Currency}
		if seen[k] {
			continue
		}
		seen[k] = true
		dim = append(dim, ExchangeRate{Date: date, Currency: r.Currency, Rate: rate})
	}
	return dim, nil
}

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
	"time"

	"github.com/pgEdge/pgedge-etl/internal/clean"
	"github.com/pgEdge/pgedge-etl/internal/extract"
)

// Season labels for the seasonality metric. Peak covers November and
// December, the electronics holiday season.
const (
	SeasonPeak    = "Peak"
	SeasonOffPeak = "Off-Peak"
)

// SalesFact is one row of sales_fact: one per source sale row. Pointer
// fields are NULL when the delivery date is missing or the product key
// has no match in the products extract.
type SalesFact struct {
	OrderNumber      int64
	CustomerKey      int64
	ProductKey       int64
	StoreKey         int64
	OrderDate        time.Time
	DeliveryDate     *time.Time
	Quantity         int
	UnitCostUSD      *float64
	UnitPriceUSD     *float64
	TotalRevenueUSD  *float64
	ProfitUSD        *float64
	DeliveryTimeDays *int
	Season           string
	OrderMonth       int
	OrderYear        int
	CurrencyCode     string
}

// SeasonOf returns the season label for an order month.
func SeasonOf(month time.Month) string {
	if month == time.November || month == time.December {
		return SeasonPeak
	}
	return SeasonOffPeak
}

// BuildSalesFact joins the sales extract against the product dimension
// on product_key (left outer: sales rows are never dropped) and computes
// the derived metrics. The output row count always equals the input row
// count; unmatched products leave cost, price, revenue, and profit NULL.
func BuildSalesFact(sales []*extract.RawSale, products []Product) ([]SalesFact, error) {
	index := make(map[int64]*Product, len(products))
	for i := range products {
		index[products[i].Key] = &products[i]
	}

	facts := make([]SalesFact, 0, len(sales))
	for _, s := range sales {
		orderDate, err := clean.Date(s.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("order %d order date: %w", s.OrderNumber, err)
		}
		deliveryDate, err := clean.NullableDate(s.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("order %d delivery date: %w", s.OrderNumber, err)
		}

		f := SalesFact{
			OrderNumber:  s.OrderNumber,
			CustomerKey:  s.CustomerKey,
			ProductKey:   s.ProductKey,
			StoreKey:     s.StoreKey,
			OrderDate:    orderDate,
			DeliveryDate: deliveryDate,
			Quantity:     s.Quantity,
			Season:       SeasonOf(orderDate.Month()),
			OrderMonth:   int(orderDate.Month()),
			OrderYear:    orderDate.Year(),
			CurrencyCode: s.CurrencyCode,
		}

		if p, ok := index[s.ProductKey]; ok {
			cost := p.UnitCostUSD
			price := p.UnitPriceUSD
			revenue := float64(s.Quantity) * price
			profit := float64(s.Quantity) * (price - cost)
			f.UnitCostUSD = &cost
			f.UnitPriceUSD = &price
			f.TotalRevenueUSD = &revenue
			f.ProfitUSD = &profit
		}

		if deliveryDate != nil {
			// May be negative; kept as a data-quality signal.
			days := int(deliveryDate.Sub(orderDate) / (24 * time.Hour))
			f.DeliveryTimeDays = &days
		}

		facts = append(facts, f)
	}
	return facts, nil
}

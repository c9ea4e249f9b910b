//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package report summarizes persisted fact data: per-year order totals
// and delivery-date coverage. Aggregation happens in Go so the same code
// serves every destination engine.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/pgEdge/pgedge-etl/internal/store"
	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

// YearSummary aggregates sales_fact rows for one order year.
type YearSummary struct {
	Year         int
	TotalOrders  int64
	WithDelivery int64
}

// OrdersByYear reads sales_fact back from the destination and groups
// order counts by year.
func OrdersByYear(ctx context.Context, st *store.Store) ([]YearSummary, error) {
	dialect := st.Dialect()
	query := fmt.Sprintf("SELECT %s, %s FROM %s",
		dialect.QuoteIdent("order_date"),
		dialect.QuoteIdent("delivery_date"),
		dialect.QuoteIdent(warehouse.SalesFactTable))

	rows, err := st.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", warehouse.SalesFactTable, err)
	}
	defer rows.Close()

	byYear := make(map[int]*YearSummary)
	for rows.Next() {
		var orderDate, deliveryDate any
		if err := rows.Scan(&orderDate, &deliveryDate); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", warehouse.SalesFactTable, err)
		}

		ordered, err := asDate(orderDate)
		if err != nil {
			return nil, fmt.Errorf("bad order_date: %w", err)
		}

		summary, ok := byYear[ordered.Year()]
		if !ok {
			summary = &YearSummary{Year: ordered.Year()}
			byYear[ordered.Year()] = summary
		}
		summary.TotalOrders++
		if deliveryDate != nil {
			summary.WithDelivery++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summaries := make([]YearSummary, 0, len(byYear))
	for _, s := range byYear {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Year < summaries[j].Year })
	return summaries, nil
}

// asDate coerces a driver-specific date value. SQLite hands back TEXT,
// the other engines time.Time.
func asDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case string:
		return parseDateString(d)
	case []byte:
		return parseDateString(string(d))
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %T", v)
	}
}

func parseDateString(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// Print writes the per-year report.
func Print(w io.Writer, summaries []YearSummary) {
	fmt.Fprintln(w, "Year | Total Orders | With Delivery Date")
	fmt.Fprintln(w, "---------------------------------------------")
	for _, s := range summaries {
		fmt.Fprintf(w, "%d | %12d | %18d\n", s.Year, s.TotalOrders, s.WithDelivery)
	}
}

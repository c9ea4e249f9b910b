//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package warehouse builds the star schema for the electronics retail
// data warehouse: deduplicated dimension tables with stable keys and a
// sales fact table with derived business metrics.
package warehouse

// ColumnKind is the logical type of a warehouse column. Each store
// dialect maps kinds onto its own SQL types.
type ColumnKind int

const (
	KindInt ColumnKind = iota
	KindFloat
	KindText
	KindDate
)

func (k ColumnKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Column describes one column of a warehouse table.
type Column struct {
	Name string
	Kind ColumnKind
}

// Table is a named, ordered set of columns with row data. Row values
// are int64, float64, string, or time.Time; nil marks SQL NULL.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// ColumnNames returns the ordered column names.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

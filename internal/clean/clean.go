//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package clean normalizes raw field representations into typed values:
// symbol-prefixed currency strings into floats and date strings into
// calendar dates.
package clean

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind classifies cleaning failures.
type Kind int

const (
	// KindUnparseable means a currency value was non-empty but not numeric
	// after stripping symbols and separators.
	KindUnparseable Kind = iota

	// KindInvalidDate means a date value was non-empty but matched no
	// accepted layout.
	KindInvalidDate
)

func (k Kind) String() string {
	switch k {
	case KindUnparseable:
		return "unparseable"
	case KindInvalidDate:
		return "invalid date"
	default:
		return "unknown"
	}
}

// Error reports a cleaning failure for one value.
type Error struct {
	Kind  Kind
	Value string
}

func (e *Error) Error() string {
	return fmt.Sprintf("clean: %s value %q", e.Kind, e.Value)
}

// dateLayouts are the accepted date formats, tried in order. The raw
// extracts use M/D/YYYY; ISO dates are accepted so cleaning a cleaned
// value round-trips.
var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"January 2, 2006",
}

// Currency parses a currency value into a float. Missing values become
// 0.0. Currency symbols, grouping separators, and surrounding whitespace
// are stripped before parsing. Applying Currency to the rendering of its
// own output yields the same number.
func Currency(value string) (float64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0.0, nil
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &Error{Kind: KindUnparseable, Value: value}
	}
	return f, nil
}

// Date parses a required date value.
func Date(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &Error{Kind: KindInvalidDate, Value: value}
}

// NullableDate parses an optional date value. Missing values stay nil.
func NullableDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := Date(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

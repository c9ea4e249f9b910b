//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package clean

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    float64
		wantErr bool
	}{
		{name: "plain number", value: "12.5", want: 12.5},
		{name: "dollar sign", value: "$6.62", want: 6.62},
		{name: "thousands separator", value: "$1,234.50", want: 1234.50},
		{name: "multiple separators", value: "$1,234,567.89", want: 1234567.89},
		{name: "surrounding whitespace", value: "  $99.99  ", want: 99.99},
		{name: "space after symbol", value: "$ 6.62", want: 6.62},
		{name: "empty is zero", value: "", want: 0.0},
		{name: "whitespace only is zero", value: "   ", want: 0.0},
		{name: "integer value", value: "$100", want: 100.0},
		{name: "not a number", value: "$abc", wantErr: true},
		{name: "garbage", value: "n/a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Currency(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Currency(%q) expected error, got %v", tt.value, got)
				}
				var cerr *Error
				if !errors.As(err, &cerr) {
					t.Fatalf("Currency(%q) error is %T, want *Error", tt.value, err)
				}
				if cerr.Kind != KindUnparseable {
					t.Errorf("Currency(%q) kind = %v, want %v", tt.value, cerr.Kind, KindUnparseable)
				}
				return
			}
			if err != nil {
				t.Fatalf("Currency(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Currency(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestCurrencyIdempotent(t *testing.T) {
	// Cleaning the rendering of a cleaned value yields the same number.
	values := []string{"$1,234.50", "$6.62", "0.25", "$100"}
	for _, v := range values {
		first, err := Currency(v)
		if err != nil {
			t.Fatalf("Currency(%q) error: %v", v, err)
		}
		second, err := Currency(strconv.FormatFloat(first, 'f', -1, 64))
		if err != nil {
			t.Fatalf("Currency of cleaned %q error: %v", v, err)
		}
		if first != second {
			t.Errorf("Currency not idempotent for %q: %v != %v", v, first, second)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "slash format",
			value: "3/17/2021",
			want:  time.Date(2021, 3, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "slash format padded",
			value: "03/05/2021",
			want:  time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "iso format",
			value: "2021-03-17",
			want:  time.Date(2021, 3, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "long format",
			value: "March 17, 2021",
			want:  time.Date(2021, 3, 17, 0, 0, 0, 0, time.UTC),
		},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "not a date", wantErr: true},
		{name: "impossible date", value: "13/45/2021", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Date(%q) expected error, got %v", tt.value, got)
				}
				var cerr *Error
				if !errors.As(err, &cerr) {
					t.Fatalf("Date(%q) error is %T, want *Error", tt.value, err)
				}
				if cerr.Kind != KindInvalidDate {
					t.Errorf("Date(%q) kind = %v, want %v", tt.value, cerr.Kind, KindInvalidDate)
				}
				return
			}
			if err != nil {
				t.Fatalf("Date(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Date(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNullableDate(t *testing.T) {
	got, err := NullableDate("")
	if err != nil {
		t.Fatalf("NullableDate(\"\") unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("NullableDate(\"\") = %v, want nil", got)
	}

	got, err = NullableDate("  ")
	if err != nil {
		t.Fatalf("NullableDate whitespace unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("NullableDate whitespace = %v, want nil", got)
	}

	got, err = NullableDate("12/25/2021")
	if err != nil {
		t.Fatalf("NullableDate unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("NullableDate returned nil for present date")
	}
	want := time.Date(2021, 12, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NullableDate = %v, want %v", got, want)
	}

	_, err = NullableDate("bogus")
	if err == nil {
		t.Error("NullableDate(\"bogus\") expected error, got nil")
	}
}

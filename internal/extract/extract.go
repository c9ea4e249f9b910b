//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package extract reads the five raw CSV extracts into typed records.
// Column names pass through verbatim from the source; cleaning and
// renaming happen in later phases.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/pgEdge/pgedge-etl/internal/logging"
)

// Source file names within the data directory.
const (
	SalesFile         = "Sales.csv"
	CustomersFile     = "Customers.csv"
	ProductsFile      = "Products.csv"
	StoresFile        = "Stores.csv"
	ExchangeRatesFile = "Exchange_Rates.csv"
)

// Kind classifies extraction failures.
type Kind int

const (
	// KindNotFound means the source file does not exist.
	KindNotFound Kind = iota

	// KindDecode means the source exists but could not be decoded under
	// the declared encoding or parsed as CSV.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindDecode:
		return "decode error"
	default:
		return "unknown"
	}
}

// Error reports an extraction failure for one source.
type Error struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Source identifies a data directory and the declared text encoding of
// the extracts within it.
type Source struct {
	Dir      string
	Encoding string // "latin1" or "utf8"
}

// reader opens one source file and wraps it with the declared decoder.
// The caller owns the returned closer.
func (s Source) reader(name string) (io.Reader, io.Closer, error) {
	path := filepath.Join(s.Dir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &Error{Kind: KindNotFound, Source: name, Err: err}
		}
		return nil, nil, &Error{Kind: KindDecode, Source: name, Err: err}
	}

	var r io.Reader = f
	if s.Encoding == "latin1" {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	return r, f, nil
}

// decode reads one source file into out, which must be a pointer to a
// slice of raw record pointers.
func (s Source) decode(name string, out any) error {
	r, closer, err := s.reader(name)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := gocsv.Unmarshal(r, out); err != nil {
		return &Error{Kind: KindDecode, Source: name, Err: err}
	}
	return nil
}

// ExtractAll decodes the five raw extracts from the source directory.
// It fails on the first missing or undecodable source.
func ExtractAll(src Source) (*Data, error) {
	logging.Info().
		Str("dir", src.Dir).
		Str("encoding", src.Encoding).
		Msg("Extracting raw data")

	data := &Data{}
	if err := src.decode(SalesFile, &data.Sales); err != nil {
		return nil, err
	}
	if err := src.decode(CustomersFile, &data.Customers); err != nil {
		return nil, err
	}
	if err := src.decode(ProductsFile, &data.Products); err != nil {
		return nil, err
	}
	if err := src.decode(StoresFile, &data.Stores); err != nil {
		return nil, err
	}
	if err := src.decode(ExchangeRatesFile, &data.ExchangeRates); err != nil {
		return nil, err
	}

	logging.Info().
		Int("sales", len(data.Sales)).
		Int("customers", len(data.Customers)).
		Int("products", len(data.Products)).
		Int("stores", len(data.Stores)).
		Int("exchange_rates", len(data.ExchangeRates)).
		Msg("Extraction complete")

	return data, nil
}

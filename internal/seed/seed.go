//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package seed generates the five raw CSV extracts with synthetic data so
// the pipeline can be exercised without the original dataset. Generated
// data deliberately includes the rough edges the pipeline must handle:
// symbol-prefixed currency strings, blank delivery dates, and a small
// share of sales pointing at product keys that do not exist.
package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/pgEdge/pgedge-etl/internal/extract"
	"github.com/pgEdge/pgedge-etl/internal/logging"
)

// Reference data. Mirrors the category mix of the real extracts.
var (
	categories = map[string][]string{
		"Computers":        {"Desktops", "Laptops", "Monitors"},
		"Cell phones":      {"Smart phones & PDAs", "Touch Screen Phones"},
		"Audio":            {"Headphones", "Recording Pen"},
		"TV and Video":     {"Televisions", "Home Theater System"},
		"Home Appliances":  {"Washers & Dryers", "Refrigerators", "Microwaves"},
		"Cameras":          {"Digital Cameras", "Camcorders"},
	}
	brands     = []string{"Contoso", "Fabrikam", "Litware", "Proseware", "Adventure Works", "Wide World"}
	colors     = []string{"Black", "White", "Silver", "Red", "Blue", "Grey"}
	currencies = []string{"USD", "EUR", "GBP", "CAD", "AUD"}
	continents = []string{"North America", "Europe", "Australia"}
)

// Counts sets how many rows each extract receives.
type Counts struct {
	Sales     int
	Customers int
	Products  int
	Stores    int
}

// Seeder writes synthetic extracts into a data directory.
type Seeder struct {
	faker *gofakeit.Faker
	dir   string
}

// New creates a Seeder writing into dir with a fixed seed so repeated
// runs produce identical extracts.
func New(dir string, seedValue uint64) *Seeder {
	return &Seeder{
		faker: gofakeit.New(seedValue),
		dir:   dir,
	}
}

// GenerateAll writes all five extracts.
func (s *Seeder) GenerateAll(counts Counts) error {
	logging.Info().
		Str("dir", s.dir).
		Int("sales", counts.Sales).
		Int("customers", counts.Customers).
		Int("products", counts.Products).
		Int("stores", counts.Stores).
		Msg("Generating sample extracts")

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := s.generateProducts(counts.Products); err != nil {
		return err
	}
	if err := s.generateCustomers(counts.Customers); err != nil {
		return err
	}
	if err := s.generateStores(counts.Stores); err != nil {
		return err
	}
	if err := s.generateExchangeRates(); err != nil {
		return err
	}
	if err := s.generateSales(counts); err != nil {
		return err
	}

	logging.Info().Msg("Sample extracts complete")
	return nil
}

// writeCSV writes one extract file.
func (s *Seeder) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	w.Flush()
	return w.Error()
}

func (s *Seeder) generateProducts(count int) error {
	catNames := make([]string, 0, len(categories))
	for name := range categories {
		catNames = append(catNames, name)
	}

	rows := make([][]string, 0, count)
	for i := 1; i <= count; i++ {
		category := catNames[s.faker.IntRange(0, len(catNames)-1)]
		subs := categories[category]
		subcategory := subs[s.faker.IntRange(0, len(subs)-1)]
		brand := brands[s.faker.IntRange(0, len(brands)-1)]

		cost := s.faker.Price(5, 1500)
		// Margin between 15% and 80% over cost.
		price := cost * s.faker.Float64Range(1.15, 1.80)

		rows = append(rows, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%s %s %s", brand, subcategory, s.faker.LetterN(3)),
			brand,
			colors[s.faker.IntRange(0, len(colors)-1)],
			currencyString(cost),
			currencyString(price),
			subcategory,
			category,
		})
	}

	header := []string{
		"ProductKey", "Product Name", "Brand", "Color",
		"Unit Cost USD", "Unit Price USD", "Subcategory", "Category",
	}
	return s.writeCSV(extract.ProductsFile, header, rows)
}

func (s *Seeder) generateCustomers(count int) error {
	rows := make([][]string, 0, count)
	for i := 1; i <= count; i++ {
		gender := "Male"
		if s.faker.Bool() {
			gender = "Female"
		}
		birthday := s.faker.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))

		rows = append(rows, []string{
			strconv.Itoa(i),
			gender,
			s.faker.Name(),
			s.faker.City(),
			s.faker.StateAbr(),
			s.faker.State(),
			s.faker.Zip(),
			"United States",
			continents[0],
			formatDate(birthday),
		})
	}

	header := []string{
		"CustomerKey", "Gender", "Name", "City", "State Code",
		"State", "Zip Code", "Country", "Continent", "Birthday",
	}
	return s.writeCSV(extract.CustomersFile, header, rows)
}

func (s *Seeder) generateStores(count int) error {
	rows := make([][]string, 0, count)
	for i := 1; i <= count; i++ {
		open := s.faker.DateRange(
			time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))

		rows = append(rows, []string{
			strconv.Itoa(i),
			"United States",
			s.faker.State(),
			strconv.Itoa(s.faker.IntRange(200, 2500)),
			formatDate(open),
		})
	}

	header := []string{"StoreKey", "Country", "State", "Square Meters", "Open Date"}
	return s.writeCSV(extract.StoresFile, header, rows)
}

func (s *Seeder) generateExchangeRates() error {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	var rows [][]string
	for day := 0; day < 365; day++ {
		date := start.AddDate(0, 0, day)
		for _, currency := range currencies {
			rate := 1.0
			if currency != "USD" {
				rate = s.faker.Float64Range(0.6, 1.6)
			}
			rows = append(rows, []string{
				formatDate(date),
				currency,
				strconv.FormatFloat(rate, 'f', 4, 64),
			})
		}
	}

	header := []string{"Date", "Currency", "Exchange"}
	return s.writeCSV(extract.ExchangeRatesFile, header, rows)
}

func (s *Seeder) generateSales(counts Counts) error {
	rows := make([][]string, 0, counts.Sales)
	for i := 1; i <= counts.Sales; i++ {
		orderDate := s.faker.DateRange(
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC))

		// Roughly a quarter of orders have no recorded delivery.
		delivery := ""
		if s.faker.IntRange(1, 4) != 1 {
			delivery = formatDate(orderDate.AddDate(0, 0, s.faker.IntRange(1, 14)))
		}

		// A small share of sales reference product keys missing from the
		// products extract, exercising the left-join NULL path.
		productKey := s.faker.IntRange(1, counts.Products)
		if s.faker.IntRange(1, 50) == 1 {
			productKey = counts.Products + s.faker.IntRange(1, 100)
		}

		rows = append(rows, []string{
			strconv.Itoa(366000 + i),
			formatDate(orderDate),
			delivery,
			strconv.Itoa(s.faker.IntRange(1, counts.Customers)),
			strconv.Itoa(s.faker.IntRange(1, counts.Stores)),
			strconv.Itoa(productKey),
			strconv.Itoa(s.faker.IntRange(1, 10)),
			currencies[s.faker.IntRange(0, len(currencies)-1)],
		})
	}

	header := []string{
		"Order Number", "Order Date", "Delivery Date", "CustomerKey",
		"StoreKey", "ProductKey", "Quantity", "Currency Code",
	}
	return s.writeCSV(extract.SalesFile, header, rows)
}

// currencyString renders a float the way the real extracts do, with a
// dollar sign and thousands separators.
func currencyString(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	// Insert thousands separators into the integer part.
	dot := len(s) - 3
	intPart := s[:dot]
	out := ""
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out += ","
		}
		out += string(r)
	}
	return "$" + out + s[dot:]
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

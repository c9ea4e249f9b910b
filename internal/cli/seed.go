//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-etl/internal/seed"
)

var (
	seedSales     int
	seedCustomers int
	seedProducts  int
	seedStores    int
	seedValue     uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate sample CSV extracts into the data directory",
	Long: `Seed writes synthetic versions of the five raw extracts (sales,
customers, products, stores, exchange rates) so the pipeline can be run
without the original dataset. The same seed value always produces the
same extracts.

Example:
  pgedge-etl seed --data-dir ./data --sales 10000`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedSales, "sales", 0,
		"number of sales rows to generate")
	seedCmd.Flags().IntVar(&seedCustomers, "customers", 0,
		"number of customer rows to generate")
	seedCmd.Flags().IntVar(&seedProducts, "products", 0,
		"number of product rows to generate")
	seedCmd.Flags().IntVar(&seedStores, "stores", 0,
		"number of store rows to generate")
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 42,
		"random seed for reproducible extracts")
}

func runSeed(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if seedSales > 0 {
		cfg.Seed.Sales = seedSales
	}
	if seedCustomers > 0 {
		cfg.Seed.Customers = seedCustomers
	}
	if seedProducts > 0 {
		cfg.Seed.Products = seedProducts
	}
	if seedStores > 0 {
		cfg.Seed.Stores = seedStores
	}

	// Validate configuration
	if err := cfg.ValidateSeed(); err != nil {
		return err
	}

	seeder := seed.New(cfg.DataDir, seedValue)
	return seeder.GenerateAll(seed.Counts{
		Sales:     cfg.Seed.Sales,
		Customers: cfg.Seed.Customers,
		Products:  cfg.Seed.Products,
		Stores:    cfg.Seed.Stores,
	})
}

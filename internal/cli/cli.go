//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-etl.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-etl/internal/config"
	"github.com/pgEdge/pgedge-etl/internal/logging"
	"github.com/pgEdge/pgedge-etl/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	driver     string
	dataDir    string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-etl",
		Short: "Star-schema warehouse builder for electronics retail sales",
		Long: `pgedge-etl builds a dimensional data warehouse (star schema) from five
flat CSV extracts: sales, customers, products, stores, and exchange
rates. It cleans raw values, derives business metrics, and persists the
dimension and fact tables into a relational store with full-replace
semantics.

The load is one sequential batch per invocation and is NOT atomic across
tables: a failure partway leaves earlier tables committed. Do not run
two loads against the same destination concurrently.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-etl.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"destination connection string")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "",
		"destination driver (sqlite, postgres, mysql)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"directory containing the raw CSV extracts")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(seedCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if driver != "" {
		cfg.Driver = driver
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-etl.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for pgedge-etl.
type Config struct {
	// Connection is the destination connection string. Its form depends on
	// the driver: a file path or DSN for sqlite, a postgres:// URL for
	// postgres, a user:pass@tcp(host:port)/db DSN for mysql.
	Connection string `mapstructure:"connection"`

	// Driver selects the destination store (sqlite, postgres, mysql).
	Driver string `mapstructure:"driver"`

	// DataDir is the directory containing the five raw CSV extracts.
	DataDir string `mapstructure:"data_dir"`

	// Encoding is the declared text encoding of the raw extracts.
	// Supported: latin1, utf8.
	Encoding string `mapstructure:"encoding"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Load holds configuration for the load phase.
	Load LoadConfig `mapstructure:"load"`

	// Seed holds configuration for the seed subcommand.
	Seed SeedConfig `mapstructure:"seed"`
}

// LoadConfig holds configuration for the load phase.
type LoadConfig struct {
	// ChunkSize is the number of rows written per batch insert.
	ChunkSize int `mapstructure:"chunk_size"`
}

// SeedConfig holds row counts for generated sample extracts.
type SeedConfig struct {
	// Sales is the number of sales rows to generate.
	Sales int `mapstructure:"sales"`

	// Customers is the number of customer rows to generate.
	Customers int `mapstructure:"customers"`

	// Products is the number of product rows to generate.
	Products int `mapstructure:"products"`

	// Stores is the number of store rows to generate.
	Stores int `mapstructure:"stores"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Driver:   "sqlite",
		DataDir:  "data",
		Encoding: "latin1",
		LogLevel: "info",
		Load: LoadConfig{
			ChunkSize: 1000,
		},
		Seed: SeedConfig{
			Sales:     5000,
			Customers: 500,
			Products:  200,
			Stores:    30,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-etl.yaml
// 3. ~/.config/pgedge-etl/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("pgedge-etl")
	v.SetConfigType("yaml")

	// Add config paths
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-etl"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	switch c.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("driver must be one of sqlite, postgres, mysql")
	}
	return nil
}

// ValidateRun checks configuration required for the run command.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	if c.Encoding != "latin1" && c.Encoding != "utf8" {
		return fmt.Errorf("encoding must be 'latin1' or 'utf8'")
	}
	if c.Load.ChunkSize < 1 {
		return fmt.Errorf("load chunk_size must be at least 1")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed command.
func (c *Config) ValidateSeed() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}
	if c.Seed.Sales < 1 || c.Seed.Customers < 1 || c.Seed.Products < 1 || c.Seed.Stores < 1 {
		return fmt.Errorf("seed row counts must be at least 1")
	}
	return nil
}

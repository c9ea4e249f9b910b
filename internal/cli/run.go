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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-etl/internal/extract"
	"github.com/pgEdge/pgedge-etl/internal/load"
	"github.com/pgEdge/pgedge-etl/internal/logging"
	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

var (
	runChunkSize int
	runEncoding  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full extract-transform-load pipeline",
	Long: `Run the batch pipeline: extract the five CSV sources, clean raw
values, build the dimension and fact tables, and load them into the
configured destination with full-replace semantics. Any failure aborts
the remainder of the run; no retries are performed.

Example:
  pgedge-etl run --driver sqlite --connection warehouse.db --data-dir ./data
  pgedge-etl run --driver postgres --connection "postgres://user@host/dw"`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&runChunkSize, "chunk-size", 0,
		"rows per batch insert")
	runCmd.Flags().StringVar(&runEncoding, "encoding", "",
		"source text encoding (latin1, utf8)")
}

func runRun(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if runChunkSize > 0 {
		cfg.Load.ChunkSize = runChunkSize
	}
	if runEncoding != "" {
		cfg.Encoding = runEncoding
	}

	// Validate configuration
	if err := cfg.ValidateRun(); err != nil {
		return err
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Str("data_dir", cfg.DataDir).
		Int("chunk_size", cfg.Load.ChunkSize).
		Msg("Starting pipeline run")

	// Extract
	data, err := extract.ExtractAll(extract.Source{
		Dir:      cfg.DataDir,
		Encoding: cfg.Encoding,
	})
	if err != nil {
		return err
	}

	// Transform
	star, err := warehouse.Build(data)
	if err != nil {
		return fmt.Errorf("failed to build star schema: %w", err)
	}

	// Load
	ctx := context.Background()
	st, err := load.Connect(ctx, cfg.Driver, cfg.Connection)
	if err != nil {
		return err
	}
	defer st.Close()

	loader := load.New(st, cfg.Load.ChunkSize)
	counts, err := loader.LoadAll(ctx, star.Tables())
	if err != nil {
		return err
	}

	if err := st.SaveMetadata(ctx, counts); err != nil {
		return fmt.Errorf("failed to save load metadata: %w", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	logging.Info().
		Int("tables", len(counts)).
		Int64("rows", total).
		Msg("Pipeline run complete")

	return nil
}

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

	"github.com/pgEdge/pgedge-etl/internal/report"
	"github.com/pgEdge/pgedge-etl/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize loaded fact data by order year",
	Long: `Report reads sales_fact back from the destination and prints order
totals and delivery-date coverage per year.

Example:
  pgedge-etl report --driver sqlite --connection warehouse.db`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Driver, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to destination: %w", err)
	}
	defer st.Close()

	summaries, err := report.OrdersByYear(ctx, st)
	if err != nil {
		return err
	}

	report.Print(cmd.OutOrStdout(), summaries)
	return nil
}

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

	"github.com/pgEdge/pgedge-etl/internal/store"
	"github.com/pgEdge/pgedge-etl/internal/verify"
	"github.com/pgEdge/pgedge-etl/internal/warehouse"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the persisted warehouse schema against the contract",
	Long: `Verify reads the destination store independently of the load path and
checks that every contract table exists with its expected columns,
reporting row counts for matching tables. Extra columns are tolerated.
Exits non-zero when any table is missing or incomplete.

Example:
  pgedge-etl verify --driver sqlite --connection warehouse.db`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Driver, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to destination: %w", err)
	}
	defer st.Close()

	result, err := verify.Run(ctx, st, warehouse.Contract(), warehouse.ContractTableNames)
	if err != nil {
		return err
	}

	result.Print(cmd.OutOrStdout())
	if !result.AllPassed {
		return fmt.Errorf("schema verification failed")
	}
	return nil
}

//-------------------------------------------------------------------------
//
// pgEdge ETL
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package load

import (
	"github.com/pgEdge/pgedge-etl/internal/logging"
)

// defaultProgressInterval is how often progress is logged, in rows.
const defaultProgressInterval = 10000

// ProgressReporter tracks and reports table load progress.
type ProgressReporter struct {
	tableName        string
	totalRows        int64
	currentRow       int64
	progressInterval int64
}

// NewProgressReporter creates a progress reporter for one table.
func NewProgressReporter(tableName string, totalRows int64) *ProgressReporter {
	return &ProgressReporter{
		tableName:        tableName,
		totalRows:        totalRows,
		progressInterval: defaultProgressInterval,
	}
}

// Update updates the progress and logs if an interval was crossed.
func (p *ProgressReporter) Update(rowsWritten int64) {
	oldRow := p.currentRow
	p.currentRow += rowsWritten

	if p.currentRow/p.progressInterval > oldRow/p.progressInterval {
		pct := float64(p.currentRow) / float64(p.totalRows) * 100
		logging.Info().
			Str("table", p.tableName).
			Int64("rows", p.currentRow).
			Int64("total", p.totalRows).
			Float64("percent", pct).
			Msg("Writing rows")
	}
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("table", p.tableName).
		Int64("rows", p.currentRow).
		Msg("Table complete")
}

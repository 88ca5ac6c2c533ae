// Package repository persists sort run records for benchmark history.
package repository

import (
	"context"

	"github.com/hypersort/pkg/model"
)

// RunRepository defines the interface for run history operations.
type RunRepository interface {
	// SaveRun stores a completed run record.
	SaveRun(ctx context.Context, run *model.RunRecord) error

	// ListRuns retrieves the most recent run records, newest first.
	ListRuns(ctx context.Context, limit int) ([]*model.RunRecord, error)

	// ListRunsForInput retrieves recent runs for one input file, newest
	// first, for speedup comparison across process counts.
	ListRunsForInput(ctx context.Context, inputFile string, limit int) ([]*model.RunRecord, error)
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hypersort/pkg/model"
)

// GormRunRepository implements RunRepository using GORM.
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GormRunRepository and ensures the
// run table exists.
func NewGormRunRepository(db *gorm.DB) (*GormRunRepository, error) {
	if err := db.AutoMigrate(&SortRun{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run table: %w", err)
	}
	return &GormRunRepository{db: db}, nil
}

// SaveRun stores a completed run record.
func (r *GormRunRepository) SaveRun(ctx context.Context, run *model.RunRecord) error {
	row := fromModel(run)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	run.ID = row.ID
	return nil
}

// ListRuns retrieves the most recent run records, newest first.
func (r *GormRunRepository) ListRuns(ctx context.Context, limit int) ([]*model.RunRecord, error) {
	var rows []SortRun
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	result := make([]*model.RunRecord, len(rows))
	for i, row := range rows {
		result[i] = row.ToModel()
	}
	return result, nil
}

// ListRunsForInput retrieves recent runs for one input file, newest first.
func (r *GormRunRepository) ListRunsForInput(ctx context.Context, inputFile string, limit int) ([]*model.RunRecord, error) {
	var rows []SortRun
	err := r.db.WithContext(ctx).
		Where("input_file = ?", inputFile).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs for %s: %w", inputFile, err)
	}

	result := make([]*model.RunRecord, len(rows))
	for i, row := range rows {
		result[i] = row.ToModel()
	}
	return result, nil
}

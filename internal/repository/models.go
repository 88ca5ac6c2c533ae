package repository

import (
	"time"

	"github.com/hypersort/pkg/model"
)

// SortRun represents the sort_runs table.
type SortRun struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	InputFile   string    `gorm:"column:input_file;type:varchar(512);index"`
	N           int       `gorm:"column:n"`
	Procs       int       `gorm:"column:procs"`
	PrimeCount  int       `gorm:"column:prime_count"`
	ElapsedSecs float64   `gorm:"column:elapsed_secs"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for SortRun.
func (SortRun) TableName() string {
	return "sort_runs"
}

// ToModel converts SortRun to model.RunRecord.
func (r *SortRun) ToModel() *model.RunRecord {
	return &model.RunRecord{
		ID:          r.ID,
		InputFile:   r.InputFile,
		N:           r.N,
		Procs:       r.Procs,
		PrimeCount:  r.PrimeCount,
		ElapsedSecs: r.ElapsedSecs,
		CreatedAt:   r.CreatedAt,
	}
}

// fromModel converts model.RunRecord to SortRun.
func fromModel(run *model.RunRecord) *SortRun {
	return &SortRun{
		ID:          run.ID,
		InputFile:   run.InputFile,
		N:           run.N,
		Procs:       run.Procs,
		PrimeCount:  run.PrimeCount,
		ElapsedSecs: run.ElapsedSecs,
		CreatedAt:   run.CreatedAt,
	}
}

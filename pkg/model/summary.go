// Package model defines the data types shared across hypersort components.
package model

import (
	"time"
)

// SortSummary is the root-side result of one distributed sort run.
type SortSummary struct {
	InputFile   string        `json:"input_file"`
	N           int           `json:"n"`
	Procs       int           `json:"procs"`
	PrimeCount  int           `json:"prime_count"`
	Elapsed     time.Duration `json:"-"`
	ElapsedSecs float64       `json:"elapsed_secs"`
	Phases      []PhaseTiming `json:"phases,omitempty"`
	SortedAt    time.Time     `json:"sorted_at"`
}

// PhaseTiming is the duration of one phase of the run.
type PhaseTiming struct {
	Name string  `json:"name"`
	Secs float64 `json:"secs"`
}

// BaselineSummary is the result of the sequential comparison run.
type BaselineSummary struct {
	InputFile   string    `json:"input_file"`
	N           int       `json:"n"`
	PrimeCount  int       `json:"prime_count"`
	ElapsedSecs float64   `json:"elapsed_secs"`
	SortedAt    time.Time `json:"sorted_at"`
}

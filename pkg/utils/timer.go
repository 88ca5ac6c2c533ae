package utils

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase represents a single timing phase.
type Phase struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	completed bool
}

// PhaseTimer provides a fluent handle for timing a single phase.
type PhaseTimer struct {
	timer     *Timer
	phaseName string
}

// Stop stops the phase timer and records the duration.
// Safe to call multiple times; only the first call has effect.
func (pt *PhaseTimer) Stop() time.Duration {
	return pt.timer.StopPhase(pt.phaseName)
}

// Timer records named phases of a run, in insertion order.
// Safe for concurrent use.
type Timer struct {
	mu         sync.RWMutex
	name       string
	startTime  time.Time
	phases     map[string]*Phase
	phaseOrder []string
	clock      Clock
}

// NewTimer creates a new Timer with the given name.
func NewTimer(name string) *Timer {
	return NewTimerWithClock(name, NewRealClock())
}

// NewTimerWithClock creates a new Timer using the given clock.
func NewTimerWithClock(name string, clock Clock) *Timer {
	return &Timer{
		name:      name,
		startTime: clock.Now(),
		phases:    make(map[string]*Phase),
		clock:     clock,
	}
}

// Start starts timing a new phase.
// Returns a PhaseTimer that can be used with defer for automatic completion.
func (t *Timer) Start(phaseName string) *PhaseTimer {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.phases[phaseName] = &Phase{
		Name:      phaseName,
		StartTime: t.clock.Now(),
	}
	t.phaseOrder = append(t.phaseOrder, phaseName)

	return &PhaseTimer{timer: t, phaseName: phaseName}
}

// StopPhase stops timing a phase and returns its duration.
func (t *Timer) StopPhase(phaseName string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	phase, ok := t.phases[phaseName]
	if !ok || phase.completed {
		if phase != nil {
			return phase.Duration
		}
		return 0
	}

	phase.EndTime = t.clock.Now()
	phase.Duration = phase.EndTime.Sub(phase.StartTime)
	phase.completed = true

	return phase.Duration
}

// GetDuration returns the duration of a completed phase.
func (t *Timer) GetDuration(phaseName string) time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if phase, ok := t.phases[phaseName]; ok {
		return phase.Duration
	}
	return 0
}

// TotalDuration returns the total duration since the timer was created.
func (t *Timer) TotalDuration() time.Duration {
	return t.clock.Since(t.startTime)
}

// Summary returns a formatted summary of all timing phases.
func (t *Timer) Summary() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== %s Timing Summary ===\n", t.name))
	for i, name := range t.phaseOrder {
		sb.WriteString(fmt.Sprintf("Phase %d - %s: %v\n", i+1, name, t.phases[name].Duration))
	}
	sb.WriteString(fmt.Sprintf("Total: %v\n", t.TotalDuration()))
	return sb.String()
}

// TimeFunc times the execution of a function and records it as a phase.
func (t *Timer) TimeFunc(phaseName string, fn func()) time.Duration {
	pt := t.Start(phaseName)
	fn()
	return pt.Stop()
}

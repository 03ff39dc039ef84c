// Package threshold implements runtime adjustment of the multiplication
// crossover scores based on observed timings.
package threshold

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/bigcalc/internal/bigint"
)

const (
	// AdjustmentInterval is the number of recorded multiplications between
	// threshold checks.
	AdjustmentInterval = 5

	// MinSamplesForAdjustment is the minimum number of samples needed on
	// each side of a crossover before adjusting it.
	MinSamplesForAdjustment = 3

	// MaxSampleHistory is the number of samples kept for analysis.
	MaxSampleHistory = 20

	// SpeedupThreshold is the minimum speedup ratio, in time per score
	// unit, required to move a crossover toward the faster algorithm.
	SpeedupThreshold = 1.2

	// HysteresisMargin prevents oscillation: a crossover must move by at
	// least this relative amount to be applied. One adjustment step moves
	// 10%, so the margin must sit below that.
	HysteresisMargin = 0.05
)

// Sample records one observed multiplication.
type Sample struct {
	// Score is the limb-count product the dispatcher scored the operands at.
	Score int
	// Duration is how long the multiplication took.
	Duration time.Duration
	// Algorithm identifies the path taken: "schoolbook", "toom2" or "toom3".
	Algorithm string
}

// Stats is a point-in-time snapshot of the manager.
type Stats struct {
	CurrentToom2, CurrentToom3   int
	OriginalToom2, OriginalToom3 int
	SamplesCollected             int
	Recorded                     int
}

// Manager tunes the bigint multiplication thresholds from a ring buffer of
// observed samples. The zero value is not usable; use NewManager.
type Manager struct {
	mu     sync.RWMutex
	logger zerolog.Logger

	currentToom2, currentToom3   int
	originalToom2, originalToom3 int

	samples  [MaxSampleHistory]Sample
	count    int // total samples ever recorded
	head     int // next ring slot to write
	recorded int // samples since the last adjustment check
}

// NewManager creates a manager seeded with the active bigint thresholds.
func NewManager() *Manager {
	t2, t3 := bigint.Thresholds()
	return &Manager{
		logger:        zerolog.Nop(),
		currentToom2:  t2,
		currentToom3:  t3,
		originalToom2: t2,
		originalToom3: t3,
	}
}

// SetLogger configures the logger for adjustment events.
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = l
}

// Record stores one multiplication sample and, every AdjustmentInterval
// samples, re-evaluates the crossovers.
func (m *Manager) Record(s Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.samples[m.head] = s
	m.head = (m.head + 1) % MaxSampleHistory
	m.count++
	m.recorded++
	if m.recorded < AdjustmentInterval {
		return
	}
	m.recorded = 0
	m.adjustLocked()
}

// window returns the live ring-buffer contents.
func (m *Manager) window() []Sample {
	n := min(m.count, MaxSampleHistory)
	return m.samples[:n]
}

// adjustLocked compares the per-score-unit cost of adjacent algorithms and
// nudges each crossover toward the cheaper side, within hysteresis.
func (m *Manager) adjustLocked() {
	if t2 := m.analyze("schoolbook", "toom2", m.currentToom2, m.originalToom2); m.significantChange(m.currentToom2, t2) {
		m.logger.Info().
			Int("old", m.currentToom2).
			Int("new", t2).
			Msg("adjusting toom2 threshold")
		m.currentToom2 = t2
	}
	if t3 := m.analyze("toom2", "toom3", m.currentToom3, m.originalToom3); m.significantChange(m.currentToom3, t3) {
		m.logger.Info().
			Int("old", m.currentToom3).
			Int("new", t3).
			Msg("adjusting toom3 threshold")
		m.currentToom3 = t3
	}
	bigint.SetThresholds(m.currentToom2, m.currentToom3)
}

// analyze returns the adjusted crossover between the below and above
// algorithms, or current when there is not enough signal.
func (m *Manager) analyze(below, above string, current, original int) int {
	var belowCost, aboveCost float64
	var belowN, aboveN int
	for _, s := range m.window() {
		if s.Score <= 0 || s.Duration <= 0 {
			continue
		}
		cost := float64(s.Duration.Nanoseconds()) / float64(s.Score)
		switch s.Algorithm {
		case below:
			belowCost += cost
			belowN++
		case above:
			aboveCost += cost
			aboveN++
		}
	}
	if belowN < MinSamplesForAdjustment || aboveN < MinSamplesForAdjustment {
		return current
	}
	ratio := (belowCost / float64(belowN)) / (aboveCost / float64(aboveN))
	switch {
	case ratio > SpeedupThreshold:
		// The heavier algorithm is paying off; lower the crossover.
		next := current * 9 / 10
		return max(next, original/4)
	case ratio < 1/SpeedupThreshold:
		// The heavier algorithm is losing; raise the crossover.
		next := current * 11 / 10
		return min(next, original*4)
	default:
		return current
	}
}

// significantChange reports whether moving from oldVal to newVal clears the
// hysteresis margin.
func (m *Manager) significantChange(oldVal, newVal int) bool {
	if oldVal == 0 {
		return newVal != 0
	}
	change := float64(newVal-oldVal) / float64(oldVal)
	if change < 0 {
		change = -change
	}
	return change > HysteresisMargin
}

// GetStats returns a snapshot of the manager's state.
func (m *Manager) GetStats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		CurrentToom2:     m.currentToom2,
		CurrentToom3:     m.currentToom3,
		OriginalToom2:    m.originalToom2,
		OriginalToom3:    m.originalToom3,
		SamplesCollected: min(m.count, MaxSampleHistory),
		Recorded:         m.count,
	}
}

// Reset clears all samples and restores the original thresholds.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentToom2 = m.originalToom2
	m.currentToom3 = m.originalToom3
	m.count = 0
	m.head = 0
	m.recorded = 0
	bigint.SetThresholds(m.currentToom2, m.currentToom3)
}

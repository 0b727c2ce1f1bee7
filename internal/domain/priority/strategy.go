// Package priority implements the task scoring engine: four
// interchangeable scoring strategies, the name-based registry that
// selects between them, and the business-day date math the
// deadline-sensitive strategies rely on.
//
// Every strategy is a pure function of its inputs. No strategy holds
// state between calls or mutates the task it scores, so a single
// instance of each is shared process-wide and may be used from any
// number of goroutines.
package priority

import (
	"math"
	"time"

	"github.com/phrazzld/task-analyzer-api/internal/domain"
)

// Canonical strategy names accepted by the registry.
const (
	StrategySmartBalance   = "smart_balance"
	StrategyFastestWins    = "fastest_wins"
	StrategyHighImpact     = "high_impact"
	StrategyDeadlineDriven = "deadline_driven"
)

// explanationSeparator joins the per-factor explanation fragments of a
// composite score.
const explanationSeparator = " • "

// Strategy scores a single task.
//
// all is the full batch the task belongs to; only the dependency
// factor uses it and it may be nil. weights is meaningful only to
// SmartBalance and is ignored by every other strategy. today is the
// reference date for deadline math, injected by the caller so that
// scoring is deterministic under test.
type Strategy interface {
	// Name returns the canonical registry name of the strategy.
	Name() string

	// Score computes the task's priority score and a human-readable
	// explanation of how it was derived. Higher scores mean higher
	// priority.
	Score(task domain.Task, all []domain.Task, weights map[string]float64, today time.Time) (float64, string)
}

// clampImportance forces an importance rating into the valid 1-10
// range. Upstream validation should already have rejected out-of-range
// values; this is the core's second line of defense.
func clampImportance(importance int) int {
	if importance < 1 {
		return 1
	}
	if importance > 10 {
		return 10
	}
	return importance
}

// clampHours forces an hour estimate to be at least 1.
func clampHours(hours int) int {
	if hours < 1 {
		return 1
	}
	return hours
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package domain

import "time"

// DueDateLayout is the calendar-date format used for task due dates.
const DueDateLayout = "2006-01-02"

// Priority levels assigned to scored tasks. The thresholds are
// strategy-agnostic: every strategy's raw score is bucketed the same
// way even though the strategies use different scales.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"

	highPriorityThreshold   = 70
	mediumPriorityThreshold = 30
)

// Task represents a single task handed in for analysis. Instances are
// request-scoped and owned by the caller; the scoring core never
// mutates them.
//
// ID is optional on input. An ID of zero means "unset": the analysis
// pipeline assigns a positional fallback (index+1) before scoring, and
// the cycle detector skips unidentified tasks entirely.
type Task struct {
	ID    int    `json:"id"`
	Title string `json:"title"`

	// DueDate is an ISO calendar date (YYYY-MM-DD) or empty for "no
	// deadline". It is kept as a string so the scoring core can apply
	// its own degrade-on-parse-failure policy even when invoked with
	// informally validated data.
	DueDate string `json:"due_date,omitempty"`

	// EstimatedHours is the expected time to complete. Values below 1
	// are clamped by the scorers as a second line of defense.
	EstimatedHours int `json:"estimated_hours"`

	// Importance is a 1-10 rating. Out-of-range values are clamped,
	// not rejected.
	Importance int `json:"importance"`

	// Dependencies lists the task IDs this task depends on. IDs that
	// do not appear in the batch are tolerated.
	Dependencies []int `json:"dependencies"`
}

// HasID reports whether the task carries an explicit identifier.
func (t Task) HasID() bool {
	return t.ID != 0
}

// ParseDueDate parses the task's due date. The second return value is
// false when the date is absent or malformed; callers treat both cases
// as "no deadline".
func (t Task) ParseDueDate() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DueDateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ScoredTask is a Task decorated with the output of a scoring strategy.
type ScoredTask struct {
	Task

	// Score is the raw strategy score. Unbounded above; some
	// strategies can produce negative values.
	Score float64 `json:"score"`

	// Explanation is the human-readable breakdown of the score,
	// built from per-factor fragments.
	Explanation string `json:"explanation"`

	// PriorityLevel is the coarse HIGH/MEDIUM/LOW bucket derived from
	// Score via PriorityLevelFor.
	PriorityLevel string `json:"priority_level"`
}

// PriorityLevelFor buckets a raw score into a priority tier.
// Thresholds are inclusive on the lower bound: >=70 is HIGH, >=30 is
// MEDIUM, everything below is LOW.
func PriorityLevelFor(score float64) string {
	switch {
	case score >= highPriorityThreshold:
		return PriorityHigh
	case score >= mediumPriorityThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

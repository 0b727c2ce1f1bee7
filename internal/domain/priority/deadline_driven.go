package priority

import (
	"fmt"
	"time"

	"github.com/phrazzld/task-analyzer-api/internal/domain"
)

// DeadlineDriven scores purely on business-day proximity to the due
// date. Unlike SmartBalance's urgency term, lateness grows without
// bound: an overdue task scores 150 plus one point per business day
// late, so the most neglected deadlines always surface first.
type DeadlineDriven struct{}

// Name returns the registry name of the strategy.
func (DeadlineDriven) Name() string { return StrategyDeadlineDriven }

// Score maps the due-date distance onto the strategy's own scale.
// Missing or unparseable dates score zero. all and weights are
// ignored.
func (DeadlineDriven) Score(
	task domain.Task,
	_ []domain.Task,
	_ map[string]float64,
	today time.Time,
) (float64, string) {
	if task.DueDate == "" {
		return 0, "No due date"
	}
	due, ok := task.ParseDueDate()
	if !ok {
		return 0, "Invalid due date"
	}

	days := BusinessDaysBetween(today, due)
	switch {
	case days < 0:
		return float64(150 - days), fmt.Sprintf("Overdue by %d business day(s)", -days)
	case days == 0:
		return 120, "Due today"
	case days <= 5:
		return float64(100 - days*10), fmt.Sprintf("Due in %d business day(s)", days)
	default:
		score := 30 - days
		if score < 0 {
			score = 0
		}
		return float64(score), fmt.Sprintf("Due in %d business day(s)", days)
	}
}

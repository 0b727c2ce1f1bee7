package priority

import (
	"fmt"
	"time"

	"github.com/phrazzld/task-analyzer-api/internal/domain"
)

// FastestWins scores tasks purely by effort, favoring the shortest
// ones: 100 minus five points per estimated hour, floored at zero.
type FastestWins struct{}

// Name returns the registry name of the strategy.
func (FastestWins) Name() string { return StrategyFastestWins }

// Score ignores all and weights; it is a pure function of the
// (clamped) hour estimate.
func (FastestWins) Score(
	task domain.Task,
	_ []domain.Task,
	_ map[string]float64,
	_ time.Time,
) (float64, string) {
	hours := clampHours(task.EstimatedHours)

	score := 100 - hours*5
	if score < 0 {
		score = 0
	}
	return float64(score), fmt.Sprintf("Quick task strategy: %d hour(s)", hours)
}

// HighImpact scores tasks purely by their importance rating.
type HighImpact struct{}

// Name returns the registry name of the strategy.
func (HighImpact) Name() string { return StrategyHighImpact }

// Score ignores all and weights; it is a pure function of the
// (clamped) importance rating.
func (HighImpact) Score(
	task domain.Task,
	_ []domain.Task,
	_ map[string]float64,
	_ time.Time,
) (float64, string) {
	importance := clampImportance(task.Importance)
	return float64(importance * 10), fmt.Sprintf("High impact strategy: %d/10 importance", importance)
}

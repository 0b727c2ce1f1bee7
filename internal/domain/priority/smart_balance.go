package priority

import (
	"fmt"
	"math"
	"time"

	"github.com/phrazzld/task-analyzer-api/internal/domain"
)

// Weight component keys for SmartBalance. A custom weight vector must
// carry exactly these four keys.
const (
	WeightUrgency      = "urgency"
	WeightImportance   = "importance"
	WeightEffort       = "effort"
	WeightDependencies = "dependencies"
)

// weightSumTolerance is the allowed deviation of a custom weight
// vector's sum from 1.0.
const weightSumTolerance = 0.01

// RequiredWeightKeys lists the keys a custom weight vector must
// contain, in a stable order suitable for error messages.
var RequiredWeightKeys = []string{
	WeightUrgency,
	WeightImportance,
	WeightEffort,
	WeightDependencies,
}

// defaultWeights is SmartBalance's built-in weight vector.
var defaultWeights = map[string]float64{
	WeightUrgency:      0.40,
	WeightImportance:   0.30,
	WeightEffort:       0.20,
	WeightDependencies: 0.10,
}

// ValidWeights reports whether w is a usable custom weight vector:
// exactly the four required keys, no others, with the values summing
// to 1.0 within tolerance. A nil map is not valid.
func ValidWeights(w map[string]float64) bool {
	if len(w) != len(RequiredWeightKeys) {
		return false
	}
	sum := 0.0
	for _, key := range RequiredWeightKeys {
		v, ok := w[key]
		if !ok {
			return false
		}
		sum += v
	}
	return math.Abs(sum-1.0) <= weightSumTolerance
}

// SmartBalance is the balanced scoring strategy: a weighted sum of
// urgency, importance, effort, and dependency sub-scores. It is the
// only strategy that honors a custom weight vector; an invalid or
// partial vector falls back to the built-in defaults without error
// (callers that need to surface the fallback check ValidWeights
// themselves).
type SmartBalance struct{}

// Name returns the registry name of the strategy.
func (SmartBalance) Name() string { return StrategySmartBalance }

// Score computes the weighted sum of the four sub-scores, rounded to
// two decimal places. The dependency factor is only evaluated when the
// full batch is supplied. The explanation joins the per-factor
// fragments, omitting factors that contributed nothing to say.
func (SmartBalance) Score(
	task domain.Task,
	all []domain.Task,
	weights map[string]float64,
	today time.Time,
) (float64, string) {
	w := weights
	if !ValidWeights(w) {
		w = defaultWeights
	}

	score := 0.0
	explanations := make([]string, 0, 4)

	urgency, urgencyText := urgencyScore(task, today)
	score += urgency * w[WeightUrgency]
	explanations = append(explanations, urgencyText)

	importance, importanceText := importanceScore(task)
	score += importance * w[WeightImportance]
	explanations = append(explanations, importanceText)

	effort, effortText := effortScore(task)
	score += effort * w[WeightEffort]
	explanations = append(explanations, effortText)

	if len(all) > 0 {
		deps, depsText := dependencyScore(task, all)
		score += deps * w[WeightDependencies]
		if depsText != "" {
			explanations = append(explanations, depsText)
		}
	}

	return round2(score), joinFragments(explanations)
}

// urgencyScore maps the business-day distance to the due date onto a
// roughly 0-100 scale. Missing or unparseable dates degrade to zero
// urgency rather than failing; an overdue task pins to the maximum
// regardless of how late it is.
func urgencyScore(task domain.Task, today time.Time) (float64, string) {
	if task.DueDate == "" {
		return 0, "No due date set"
	}
	due, ok := task.ParseDueDate()
	if !ok {
		return 0, "Invalid due date"
	}

	days := BusinessDaysBetween(today, due)
	switch {
	case days < 0:
		return 100, fmt.Sprintf("OVERDUE by %d business day(s)", -days)
	case days == 0:
		return 90, "Due TODAY"
	case days == 1:
		return 80, "Due next business day"
	case days <= 3:
		return 50, fmt.Sprintf("Due in %d business days", days)
	case days <= 5:
		return 30, fmt.Sprintf("Due in %d business days", days)
	case days <= 10:
		return 15, "Due within two weeks"
	default:
		return 5, "Due date is distant"
	}
}

// importanceScore scales the clamped 1-10 importance rating onto a
// 10-100 scale.
func importanceScore(task domain.Task) (float64, string) {
	importance := clampImportance(task.Importance)
	score := float64(importance * 10)

	switch {
	case importance >= 8:
		return score, fmt.Sprintf("High importance (%d/10)", importance)
	case importance >= 5:
		return score, fmt.Sprintf("Medium importance (%d/10)", importance)
	default:
		return score, fmt.Sprintf("Low importance (%d/10)", importance)
	}
}

// effortScore rewards quick wins and penalizes large tasks. The scale
// is deliberately small relative to urgency and importance.
func effortScore(task domain.Task) (float64, string) {
	hours := clampHours(task.EstimatedHours)

	switch {
	case hours < 2:
		return 20, fmt.Sprintf("Quick win (%dh)", hours)
	case hours <= 4:
		return 10, fmt.Sprintf("Moderate effort (%dh)", hours)
	case hours <= 8:
		return 0, fmt.Sprintf("Standard task (%dh)", hours)
	default:
		return -10, fmt.Sprintf("Large task (%dh)", hours)
	}
}

// dependencyScore weighs what the rest of the batch says about this
// task. Being a blocker (other tasks list this task as a dependency)
// dominates: each waiting task adds 15 points. Only a task that blocks
// nothing is penalized for being blocked itself. A task on neither
// side contributes zero and emits no explanation fragment.
func dependencyScore(task domain.Task, all []domain.Task) (float64, string) {
	blockers := 0
	for _, other := range all {
		for _, dep := range other.Dependencies {
			if dep == task.ID {
				blockers++
				break
			}
		}
	}

	if blockers > 0 {
		return float64(blockers * 15), fmt.Sprintf("Blocks %d task(s)", blockers)
	}
	if len(task.Dependencies) > 0 {
		return -20, fmt.Sprintf("Waiting on %d task(s)", len(task.Dependencies))
	}
	return 0, ""
}

// joinFragments joins non-empty explanation fragments with the
// standard separator.
func joinFragments(fragments []string) string {
	out := ""
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if out != "" {
			out += explanationSeparator
		}
		out += f
	}
	return out
}

package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/phrazzld/task-analyzer-api/internal/domain"
	"github.com/phrazzld/task-analyzer-api/internal/domain/depgraph"
	"github.com/phrazzld/task-analyzer-api/internal/domain/priority"
)

// maxSuggestions caps how many ranked suggestions Suggest returns.
const maxSuggestions = 3

// reasonSeparator joins the parts of a suggestion's reasoning text.
const reasonSeparator = " | "

// AnalysisResult is the output of Analyze: the scored batch plus the
// metadata the serving layer relays to callers.
type AnalysisResult struct {
	// Tasks is the scored batch, sorted descending by score. Tasks
	// with equal scores keep their relative input order.
	Tasks []domain.ScoredTask `json:"tasks"`

	// StrategyUsed is the canonical name of the strategy that actually
	// scored the batch.
	StrategyUsed string `json:"strategy_used"`

	// StrategyDefaulted is true when the requested strategy name was
	// unknown and the registry fell back to smart_balance.
	StrategyDefaulted bool `json:"strategy_defaulted"`

	// TotalTasks is the number of tasks analyzed.
	TotalTasks int `json:"total_tasks"`

	// CustomWeightsApplied is true when the caller supplied a weight
	// vector that passed validation and was therefore honored instead
	// of the built-in defaults.
	CustomWeightsApplied bool `json:"custom_weights_applied"`
}

// Suggestion is one ranked recommendation from Suggest.
type Suggestion struct {
	Rank   int               `json:"rank"`
	Task   domain.ScoredTask `json:"task"`
	Score  float64           `json:"score"`
	Reason string            `json:"reason"`
}

// SuggestResult is the output of Suggest.
type SuggestResult struct {
	Suggestions       []Suggestion `json:"suggestions"`
	TotalAnalyzed     int          `json:"total_analyzed"`
	StrategyUsed      string       `json:"strategy_used"`
	StrategyDefaulted bool         `json:"strategy_defaulted"`
}

// ValidationResult is the output of Validate.
type ValidationResult struct {
	HasCircularDependencies bool             `json:"has_circular_dependencies"`
	Cycles                  []depgraph.Cycle `json:"cycles"`
	CycleCount              int              `json:"cycle_count"`
	IsValid                 bool             `json:"is_valid"`
	Message                 string           `json:"message"`
}

// Analyzer is the analysis pipeline: it resolves the scoring strategy,
// scores a batch, assigns priority tiers, and sorts the result. It
// holds no per-request state, so a single instance serves concurrent
// requests.
type Analyzer struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewAnalyzer creates an Analyzer that scores against the current
// wall-clock date.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return NewAnalyzerWithClock(logger, time.Now)
}

// NewAnalyzerWithClock creates an Analyzer with an injected clock.
// Tests use this to pin the "today" reference date so deadline math is
// deterministic.
func NewAnalyzerWithClock(logger *slog.Logger, now func() time.Time) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger, now: now}
}

// Analyze scores every task in the batch with the named strategy and
// returns the batch sorted descending by score.
//
// Tasks without an ID are assigned their position in the batch plus
// one before scoring, so dependency-aware factors see a fully
// identified batch. The sort is stable: equal scores keep input order.
// An empty batch yields an empty result, never an error.
func (a *Analyzer) Analyze(
	tasks []domain.Task,
	strategyName string,
	weights map[string]float64,
) AnalysisResult {
	resolved := priority.Resolve(strategyName)
	batch := assignFallbackIDs(tasks)
	today := a.now()

	scored := make([]domain.ScoredTask, len(batch))
	for i, task := range batch {
		score, explanation := resolved.Strategy.Score(task, batch, weights, today)
		scored[i] = domain.ScoredTask{
			Task:          task,
			Score:         score,
			Explanation:   explanation,
			PriorityLevel: domain.PriorityLevelFor(score),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	a.logger.Debug("batch analyzed",
		"strategy", resolved.Strategy.Name(),
		"strategy_defaulted", resolved.UsedDefault,
		"total_tasks", len(scored))

	return AnalysisResult{
		Tasks:                scored,
		StrategyUsed:         resolved.Strategy.Name(),
		StrategyDefaulted:    resolved.UsedDefault,
		TotalTasks:           len(scored),
		CustomWeightsApplied: priority.ValidWeights(weights),
	}
}

// Suggest runs the analysis pipeline and decorates the top results
// with rank-specific reasoning. A batch with fewer tasks than the cap
// simply yields fewer suggestions.
func (a *Analyzer) Suggest(
	tasks []domain.Task,
	strategyName string,
	weights map[string]float64,
) SuggestResult {
	analysis := a.Analyze(tasks, strategyName, weights)

	top := analysis.Tasks
	if len(top) > maxSuggestions {
		top = top[:maxSuggestions]
	}

	suggestions := make([]Suggestion, 0, len(top))
	for i, task := range top {
		rank := i + 1
		suggestions = append(suggestions, Suggestion{
			Rank:   rank,
			Task:   task,
			Score:  task.Score,
			Reason: suggestionReason(task, rank),
		})
	}

	return SuggestResult{
		Suggestions:       suggestions,
		TotalAnalyzed:     analysis.TotalTasks,
		StrategyUsed:      analysis.StrategyUsed,
		StrategyDefaulted: analysis.StrategyDefaulted,
	}
}

// Validate checks the batch for circular dependency chains. Tasks
// without an ID get the same positional fallback as Analyze so that a
// batch submitted without IDs is still fully checkable.
func (a *Analyzer) Validate(tasks []domain.Task) ValidationResult {
	cycles := depgraph.Detect(assignFallbackIDs(tasks))
	if cycles == nil {
		cycles = []depgraph.Cycle{}
	}

	message := "Dependencies are valid"
	if len(cycles) > 0 {
		message = fmt.Sprintf("Found %d circular dependency cycle(s)", len(cycles))
	}

	return ValidationResult{
		HasCircularDependencies: len(cycles) > 0,
		Cycles:                  cycles,
		CycleCount:              len(cycles),
		IsValid:                 len(cycles) == 0,
		Message:                 message,
	}
}

// assignFallbackIDs returns a copy of the batch with every unset task
// ID replaced by the task's position plus one. The input slice is
// never modified.
func assignFallbackIDs(tasks []domain.Task) []domain.Task {
	batch := make([]domain.Task, len(tasks))
	for i, task := range tasks {
		if !task.HasID() {
			task.ID = i + 1
		}
		batch[i] = task
	}
	return batch
}

// suggestionReason builds the multi-part reasoning text for a ranked
// suggestion: the rank and tier, the strategy's factor breakdown, and
// an actionable recommendation.
func suggestionReason(task domain.ScoredTask, rank int) string {
	parts := []string{
		fmt.Sprintf("Ranked #%d with %s priority (score: %s)", rank, task.PriorityLevel, formatScore(task.Score)),
		fmt.Sprintf("Factors: %s", task.Explanation),
	}

	switch rank {
	case 1:
		parts = append(parts, "Recommendation: Start with this task immediately")
	case 2:
		parts = append(parts, "Recommendation: Work on this after completing the top task")
	default:
		parts = append(parts, "Recommendation: Plan to complete this task today if possible")
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += reasonSeparator + p
	}
	return out
}

// formatScore renders a score without trailing zeros (92.5, not
// 92.50).
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

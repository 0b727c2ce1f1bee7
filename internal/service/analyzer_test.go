package service

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/task-analyzer-api/internal/domain"
	"github.com/phrazzld/task-analyzer-api/internal/domain/priority"
)

// fixedToday pins the analysis reference date to Wednesday 2025-06-11.
func fixedToday() time.Time {
	return time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)
}

func newTestAnalyzer() *Analyzer {
	return NewAnalyzerWithClock(slog.Default(), fixedToday)
}

func TestAnalyzeSortsDescendingByScore(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	tasks := []domain.Task{
		{ID: 1, Title: "low", Importance: 2, EstimatedHours: 1},
		{ID: 2, Title: "high", Importance: 9, EstimatedHours: 1},
		{ID: 3, Title: "mid", Importance: 5, EstimatedHours: 1},
	}

	result := analyzer.Analyze(tasks, priority.StrategyHighImpact, nil)

	require.Len(t, result.Tasks, 3)
	for i := 1; i < len(result.Tasks); i++ {
		assert.GreaterOrEqual(t, result.Tasks[i-1].Score, result.Tasks[i].Score,
			"tasks must be sorted descending by score")
	}
	assert.Equal(t, 2, result.Tasks[0].ID)
	assert.Equal(t, 1, result.Tasks[2].ID)
}

func TestAnalyzeEqualScoresKeepInputOrder(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	// FastestWins gives identical scores to identical estimates, so
	// the stable sort must preserve submission order.
	tasks := []domain.Task{
		{ID: 10, Title: "first", EstimatedHours: 3, Importance: 5},
		{ID: 20, Title: "second", EstimatedHours: 3, Importance: 5},
		{ID: 30, Title: "third", EstimatedHours: 3, Importance: 5},
	}

	result := analyzer.Analyze(tasks, priority.StrategyFastestWins, nil)

	require.Len(t, result.Tasks, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{
		result.Tasks[0].ID, result.Tasks[1].ID, result.Tasks[2].ID,
	})
}

func TestAnalyzeAssignsPositionalIDs(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	tasks := []domain.Task{
		{Title: "anonymous a", EstimatedHours: 3, Importance: 5},
		{ID: 42, Title: "identified", EstimatedHours: 3, Importance: 5},
		{Title: "anonymous c", EstimatedHours: 3, Importance: 5},
	}

	result := analyzer.Analyze(tasks, priority.StrategyFastestWins, nil)

	ids := map[string]int{}
	for _, st := range result.Tasks {
		ids[st.Title] = st.ID
	}
	assert.Equal(t, 1, ids["anonymous a"], "first task gets index+1")
	assert.Equal(t, 42, ids["identified"], "explicit ids are preserved")
	assert.Equal(t, 3, ids["anonymous c"], "fallback ids follow input position")

	// The input batch itself must stay untouched.
	assert.Equal(t, 0, tasks[0].ID)
	assert.Equal(t, 0, tasks[2].ID)
}

func TestAnalyzePriorityTiers(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	tasks := []domain.Task{
		{ID: 1, Title: "high", Importance: 8, EstimatedHours: 2},   // 80
		{ID: 2, Title: "medium", Importance: 5, EstimatedHours: 2}, // 50
		{ID: 3, Title: "low", Importance: 2, EstimatedHours: 2},    // 20
		{ID: 4, Title: "boundary high", Importance: 7, EstimatedHours: 2},  // 70
		{ID: 5, Title: "boundary medium", Importance: 3, EstimatedHours: 2}, // 30
	}

	result := analyzer.Analyze(tasks, priority.StrategyHighImpact, nil)

	levels := map[int]string{}
	for _, st := range result.Tasks {
		levels[st.ID] = st.PriorityLevel
	}
	assert.Equal(t, domain.PriorityHigh, levels[1])
	assert.Equal(t, domain.PriorityMedium, levels[2])
	assert.Equal(t, domain.PriorityLow, levels[3])
	assert.Equal(t, domain.PriorityHigh, levels[4], "70 is inclusive for HIGH")
	assert.Equal(t, domain.PriorityMedium, levels[5], "30 is inclusive for MEDIUM")
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	result := analyzer.Analyze(nil, priority.StrategySmartBalance, nil)

	assert.Empty(t, result.Tasks)
	assert.Equal(t, 0, result.TotalTasks)
	assert.Equal(t, priority.StrategySmartBalance, result.StrategyUsed)
}

func TestAnalyzeStrategyFallbackMetadata(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	tasks := []domain.Task{{ID: 1, Title: "t", Importance: 5, EstimatedHours: 2}}

	result := analyzer.Analyze(tasks, "does_not_exist", nil)

	assert.Equal(t, priority.StrategySmartBalance, result.StrategyUsed)
	assert.True(t, result.StrategyDefaulted, "unknown names must surface the fallback")

	result = analyzer.Analyze(tasks, priority.StrategyDeadlineDriven, nil)
	assert.Equal(t, priority.StrategyDeadlineDriven, result.StrategyUsed)
	assert.False(t, result.StrategyDefaulted)
}

func TestAnalyzeCustomWeightsMetadata(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	tasks := []domain.Task{{ID: 1, Title: "t", Importance: 5, EstimatedHours: 2}}
	valid := map[string]float64{
		"urgency": 0.25, "importance": 0.25, "effort": 0.25, "dependencies": 0.25,
	}
	invalid := map[string]float64{"urgency": 0.9}

	assert.True(t, analyzer.Analyze(tasks, "", valid).CustomWeightsApplied)
	assert.False(t, analyzer.Analyze(tasks, "", invalid).CustomWeightsApplied,
		"an unusable vector silently defaults but must not claim it was applied")
	assert.False(t, analyzer.Analyze(tasks, "", nil).CustomWeightsApplied)
}

func TestAnalyzeDependencyFactorSeesWholeBatch(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	tasks := []domain.Task{
		{ID: 1, Title: "foundation", Importance: 5, EstimatedHours: 5},
		{ID: 2, Title: "a", Importance: 5, EstimatedHours: 5, Dependencies: []int{1}},
		{ID: 3, Title: "b", Importance: 5, EstimatedHours: 5, Dependencies: []int{1}},
	}

	result := analyzer.Analyze(tasks, priority.StrategySmartBalance, nil)

	require.Len(t, result.Tasks, 3)
	top := result.Tasks[0]
	assert.Equal(t, 1, top.ID, "the blocker should rank first")
	assert.Contains(t, top.Explanation, "Blocks 2 task(s)")
}

func TestSuggestReturnsTopThree(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	var tasks []domain.Task
	for i := 1; i <= 6; i++ {
		tasks = append(tasks, domain.Task{
			ID:             i,
			Title:          fmt.Sprintf("task %d", i),
			Importance:     i,
			EstimatedHours: 2,
		})
	}

	result := analyzer.Suggest(tasks, priority.StrategyHighImpact, nil)

	require.Len(t, result.Suggestions, 3)
	assert.Equal(t, 6, result.TotalAnalyzed)

	for i, s := range result.Suggestions {
		assert.Equal(t, i+1, s.Rank)
		assert.Equal(t, s.Task.Score, s.Score)
		assert.Contains(t, s.Reason, fmt.Sprintf("Ranked #%d", i+1))
		assert.Contains(t, s.Reason, "Factors: ")
	}

	// Highest importance first.
	assert.Equal(t, 6, result.Suggestions[0].Task.ID)

	assert.Contains(t, result.Suggestions[0].Reason, "Start with this task immediately")
	assert.Contains(t, result.Suggestions[1].Reason, "Work on this after completing the top task")
	assert.Contains(t, result.Suggestions[2].Reason, "Plan to complete this task today if possible")
}

func TestSuggestFewerTasksThanCap(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	tasks := []domain.Task{
		{ID: 1, Title: "only one", Importance: 5, EstimatedHours: 2},
	}

	result := analyzer.Suggest(tasks, "", nil)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, 1, result.Suggestions[0].Rank)

	empty := analyzer.Suggest(nil, "", nil)
	assert.Empty(t, empty.Suggestions)
	assert.Equal(t, 0, empty.TotalAnalyzed)
}

func TestSuggestReasonScoreFormatting(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	// HighImpact yields whole numbers; the reason must not render
	// trailing zeros.
	tasks := []domain.Task{{ID: 1, Title: "t", Importance: 9, EstimatedHours: 2}}
	result := analyzer.Suggest(tasks, priority.StrategyHighImpact, nil)

	require.Len(t, result.Suggestions, 1)
	assert.Contains(t, result.Suggestions[0].Reason, "(score: 90)")
	assert.False(t, strings.Contains(result.Suggestions[0].Reason, "90.00"),
		"score should be rendered without trailing zeros")
}

func TestValidateReportsCycles(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	t.Run("acyclic batch is valid", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Title: "a"},
			{ID: 2, Title: "b", Dependencies: []int{1}},
		}
		result := analyzer.Validate(tasks)

		assert.False(t, result.HasCircularDependencies)
		assert.True(t, result.IsValid)
		assert.Equal(t, 0, result.CycleCount)
		assert.NotNil(t, result.Cycles, "cycles must serialize as an empty list, not null")
		assert.Equal(t, "Dependencies are valid", result.Message)
	})

	t.Run("cyclic batch is invalid", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Title: "a", Dependencies: []int{2}},
			{ID: 2, Title: "b", Dependencies: []int{1}},
		}
		result := analyzer.Validate(tasks)

		assert.True(t, result.HasCircularDependencies)
		assert.False(t, result.IsValid)
		assert.Equal(t, 1, result.CycleCount)
		assert.Equal(t, "Found 1 circular dependency cycle(s)", result.Message)
	})

	t.Run("tasks without ids get positional ones before detection", func(t *testing.T) {
		// Positions 1 and 2; the second depends on the first while the
		// first depends on the second's fallback id.
		tasks := []domain.Task{
			{Title: "a", Dependencies: []int{2}},
			{Title: "b", Dependencies: []int{1}},
		}
		result := analyzer.Validate(tasks)
		assert.True(t, result.HasCircularDependencies)
	})
}

func TestAnalyzeLargeBatch(t *testing.T) {
	t.Parallel()
	analyzer := newTestAnalyzer()

	// 10k synthetic tasks; the scan is O(n^2) worst case for the
	// dependency factor, so keep the strategy linear here and assert
	// the pipeline simply completes and stays sorted.
	const n = 10000
	tasks := make([]domain.Task, n)
	for i := 0; i < n; i++ {
		tasks[i] = domain.Task{
			ID:             i + 1,
			Title:          fmt.Sprintf("task %d", i+1),
			Importance:     i%10 + 1,
			EstimatedHours: i%16 + 1,
		}
	}

	result := analyzer.Analyze(tasks, priority.StrategyFastestWins, nil)

	require.Len(t, result.Tasks, n)
	for i := 1; i < n; i++ {
		require.GreaterOrEqual(t, result.Tasks[i-1].Score, result.Tasks[i].Score)
	}
}

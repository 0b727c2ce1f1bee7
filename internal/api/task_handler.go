package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-analyzer-api/internal/api/shared"
	"github.com/phrazzld/task-analyzer-api/internal/service"
)

// TaskHandler handles the task analysis HTTP endpoints. It owns no
// state beyond its collaborators; the analysis itself is request-scoped.
type TaskHandler struct {
	analyzer *service.Analyzer
	logger   *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(analyzer *service.Analyzer, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

// AnalyzeTasks handles POST /api/tasks/analyze requests. It scores the
// submitted batch with the requested strategy and responds with the
// tasks sorted descending by score plus analysis metadata.
func (h *TaskHandler) AnalyzeTasks(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeTasksRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result := h.analyzer.Analyze(toDomainTasks(req.Tasks), req.Strategy, req.Weights)

	h.logger.Debug("analyze request served",
		"strategy", result.StrategyUsed,
		"total_tasks", result.TotalTasks,
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// SuggestTasks handles POST /api/tasks/suggest requests. It runs the
// same analysis as AnalyzeTasks and responds with up to three ranked
// suggestions, each carrying generated reasoning text.
func (h *TaskHandler) SuggestTasks(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeTasksRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result := h.analyzer.Suggest(toDomainTasks(req.Tasks), req.Strategy, req.Weights)

	h.logger.Debug("suggest request served",
		"strategy", result.StrategyUsed,
		"total_analyzed", result.TotalAnalyzed,
		"suggestions", len(result.Suggestions),
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ValidateDependencies handles POST /api/tasks/validate requests. It
// checks the submitted batch for circular dependency chains and
// responds with the cycles found, if any.
func (h *TaskHandler) ValidateDependencies(w http.ResponseWriter, r *http.Request) {
	var req ValidateDependenciesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result := h.analyzer.Validate(toDomainTasks(req.Tasks))

	h.logger.Debug("validate request served",
		"cycle_count", result.CycleCount,
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

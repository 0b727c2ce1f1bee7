package api

import (
	"fmt"
	"strings"

	"github.com/phrazzld/task-analyzer-api/internal/api/shared"
	"github.com/phrazzld/task-analyzer-api/internal/domain"
	"github.com/phrazzld/task-analyzer-api/internal/domain/priority"
)

// Common request structures for the task analysis endpoints.

// TaskPayload is one task as submitted by the caller. Field-level
// validation happens here, at the edge; the scoring core re-clamps
// out-of-range business values as a second line of defense.
type TaskPayload struct {
	// ID is optional. Tasks submitted without one get a positional
	// fallback assigned by the pipeline.
	ID *int `json:"id"`

	Title string `json:"title" validate:"required,max=200"`

	// DueDate is an optional ISO calendar date (YYYY-MM-DD). Past
	// dates are allowed; they surface as overdue.
	DueDate string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`

	EstimatedHours int `json:"estimated_hours" validate:"required,min=1"`

	Importance int `json:"importance" validate:"required,min=1,max=10"`

	Dependencies []int `json:"dependencies"`
}

// AnalyzeTasksRequest is the payload for the analyze and suggest
// endpoints.
type AnalyzeTasksRequest struct {
	// Tasks must be present in the body. An explicit empty list is a
	// valid batch; omitting the field altogether is not.
	Tasks []TaskPayload `json:"tasks" validate:"required,dive"`

	// Strategy selects the scoring strategy. Empty means smart_balance.
	Strategy string `json:"strategy" validate:"omitempty,oneof=smart_balance fastest_wins high_impact deadline_driven"`

	// Weights optionally overrides SmartBalance's component weights.
	Weights map[string]float64 `json:"weights"`
}

// Validate layers the weight-vector rules on top of the tag-based
// field validation: when a vector is supplied it must carry exactly
// the four component keys and sum to 1.0 within tolerance.
func (req *AnalyzeTasksRequest) Validate() error {
	if err := shared.ValidateStruct(req); err != nil {
		return err
	}
	if req.Weights != nil && !priority.ValidWeights(req.Weights) {
		return fmt.Errorf(
			"weights must contain exactly {%s} and sum to 1.0 (within 0.01)",
			strings.Join(priority.RequiredWeightKeys, ", "),
		)
	}
	return nil
}

// ValidateDependenciesRequest is the payload for the dependency
// validation endpoint. Only IDs and dependency lists are strictly
// needed, but the payload shape is shared with analysis so callers can
// submit the same batch to every endpoint.
type ValidateDependenciesRequest struct {
	Tasks []TaskPayload `json:"tasks" validate:"required,dive"`
}

// toDomainTasks converts submitted payloads into domain tasks.
func toDomainTasks(payloads []TaskPayload) []domain.Task {
	tasks := make([]domain.Task, len(payloads))
	for i, p := range payloads {
		id := 0
		if p.ID != nil {
			id = *p.ID
		}
		deps := p.Dependencies
		if deps == nil {
			deps = []int{}
		}
		tasks[i] = domain.Task{
			ID:             id,
			Title:          p.Title,
			DueDate:        p.DueDate,
			EstimatedHours: p.EstimatedHours,
			Importance:     p.Importance,
			Dependencies:   deps,
		}
	}
	return tasks
}

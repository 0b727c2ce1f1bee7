package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/task-analyzer-api/internal/domain"
)

// taskFile is the on-disk batch format. It mirrors the HTTP request
// body: the batch plus an optional strategy name and weight override.
type taskFile struct {
	Tasks    []taskEntry        `json:"tasks"    yaml:"tasks"`
	Strategy string             `json:"strategy" yaml:"strategy"`
	Weights  map[string]float64 `json:"weights"  yaml:"weights"`
}

// taskEntry is one task in the file. ID is optional; the pipeline
// assigns a positional fallback when it is absent.
type taskEntry struct {
	ID             *int   `json:"id"              yaml:"id"`
	Title          string `json:"title"           yaml:"title"`
	DueDate        string `json:"due_date"        yaml:"due_date"`
	EstimatedHours int    `json:"estimated_hours" yaml:"estimated_hours"`
	Importance     int    `json:"importance"      yaml:"importance"`
	Dependencies   []int  `json:"dependencies"    yaml:"dependencies"`
}

// loadTaskFile reads a batch from path. The format is chosen by file
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func loadTaskFile(path string) (*taskFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}

	var file taskFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML task file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON task file %s: %w", path, err)
		}
	}

	return &file, nil
}

// domainTasks converts the file entries into domain tasks.
func (f *taskFile) domainTasks() []domain.Task {
	tasks := make([]domain.Task, len(f.Tasks))
	for i, e := range f.Tasks {
		id := 0
		if e.ID != nil {
			id = *e.ID
		}
		deps := e.Dependencies
		if deps == nil {
			deps = []int{}
		}
		tasks[i] = domain.Task{
			ID:             id,
			Title:          e.Title,
			DueDate:        e.DueDate,
			EstimatedHours: e.EstimatedHours,
			Importance:     e.Importance,
			Dependencies:   deps,
		}
	}
	return tasks
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

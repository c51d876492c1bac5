// Package scenario runs the composed demonstration steps in order and
// captures what each one wrote, so the run can be summarized afterwards.
package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"solid-lab/sink"
)

// Step is one demonstration: a name and the single operation it invokes on
// an already-constructed variant.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Result records what one step produced.
type Result struct {
	ID       uuid.UUID
	Name     string
	Lines    []string
	Duration time.Duration
}

// Execute runs the steps sequentially. The recorder must be part of the
// sink chain the variants write to; its growth between steps is what gets
// attributed to each step. Execution stops at the first failing step.
func Execute(ctx context.Context, log *slog.Logger, recorder *sink.Memory, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		before := recorder.Len()
		start := time.Now()
		if err := step.Run(ctx); err != nil {
			return results, fmt.Errorf("step %q: %w", step.Name, err)
		}
		lines := recorder.Lines()[before:]
		result := Result{
			ID:       uuid.New(),
			Name:     step.Name,
			Lines:    lines,
			Duration: time.Since(start),
		}
		results = append(results, result)
		log.Debug("Step completed", "name", step.Name, "lines", len(lines))
	}
	return results, nil
}

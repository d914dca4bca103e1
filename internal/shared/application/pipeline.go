package application

import (
	"context"
	"log/slog"
)

// StepPolicy determines how a pipeline step's failure is handled.
type StepPolicy int

const (
	// Required steps short-circuit the pipeline on failure.
	Required StepPolicy = iota
	// BestEffort steps log their failure and let the pipeline continue.
	BestEffort
)

// Step is a named unit of work in a pipeline.
type Step struct {
	Name   string
	Policy StepPolicy
	Run    func(ctx context.Context) error
}

// PipelineResult records the outcome of a pipeline run.
type PipelineResult struct {
	// Completed lists the names of steps that ran without error.
	Completed []string
	// Degraded lists best-effort steps that failed.
	Degraded []string
}

// IsDegraded reports whether any best-effort step failed.
func (r *PipelineResult) IsDegraded() bool {
	return len(r.Degraded) > 0
}

// Pipeline executes steps in order, applying each step's failure policy.
type Pipeline struct {
	logger *slog.Logger
}

// NewPipeline creates a pipeline runner.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger}
}

// Execute runs the steps in order. A required step's error aborts the run and
// is returned together with the partial result. A best-effort step's error is
// logged, recorded as a degradation, and the run continues.
func (p *Pipeline) Execute(ctx context.Context, steps []Step) (*PipelineResult, error) {
	result := &PipelineResult{
		Completed: make([]string, 0, len(steps)),
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := step.Run(ctx)
		if err == nil {
			result.Completed = append(result.Completed, step.Name)
			continue
		}

		if step.Policy == BestEffort {
			p.logger.Warn("best-effort step failed",
				"step", step.Name,
				"error", err,
			)
			result.Degraded = append(result.Degraded, step.Name)
			continue
		}

		p.logger.Error("required step failed",
			"step", step.Name,
			"error", err,
		)
		return result, err
	}

	return result, nil
}

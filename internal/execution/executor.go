package execution

import (
	"context"

	"touca/internal/config"
	"touca/internal/domain"
)

// Runner executes discovered workflows against the effective configuration
type Runner interface {
	Run(ctx context.Context, cfg config.Values, workflows []domain.WorkflowRef) error
}

// RunnerFunc adapts a function to the Runner interface
type RunnerFunc func(ctx context.Context, cfg config.Values, workflows []domain.WorkflowRef) error

// Run calls f
func (f RunnerFunc) Run(ctx context.Context, cfg config.Values, workflows []domain.WorkflowRef) error {
	return f(ctx, cfg, workflows)
}

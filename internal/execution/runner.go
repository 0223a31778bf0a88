package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"touca/internal/config"
	"touca/internal/domain"
	"touca/internal/ui"
)

var (
	// ErrNoWorkflows is returned when there is nothing to run
	ErrNoWorkflows = errors.New("no workflow is registered")
	// ErrNoTestcases is returned when neither testcases nor a testcase file were given
	ErrNoTestcases = errors.New("cannot proceed without a test case: use --testcase or --testcase-file")
)

// CaseRunner runs every workflow for every selected testcase, in order
type CaseRunner struct {
	out      io.Writer
	progress io.Writer
	viewer   ui.Viewer
	log      *zap.Logger
}

// NewCaseRunner creates a CaseRunner printing results to out and the
// progress bar to progress. Either writer may be io.Discard.
func NewCaseRunner(out, progress io.Writer, log *zap.Logger) *CaseRunner {
	if log == nil {
		log = zap.NewNop()
	}
	return &CaseRunner{out: out, progress: progress, log: log}
}

// SetViewer sets a viewer opened when a run finishes with failures
func (r *CaseRunner) SetViewer(viewer ui.Viewer) {
	r.viewer = viewer
}

// Run implements Runner
func (r *CaseRunner) Run(ctx context.Context, cfg config.Values, workflows []domain.WorkflowRef) error {
	opts, err := config.Decode(cfg)
	if err != nil {
		return err
	}
	if len(workflows) == 0 {
		return ErrNoWorkflows
	}
	testcases, err := ResolveTestcases(opts)
	if err != nil {
		return err
	}
	if len(testcases) == 0 {
		return ErrNoTestcases
	}

	printer := ui.NewPrinter(r.out, opts.ColoredOutput)
	printer.PrintHeader(opts.Version, len(workflows), len(testcases))

	results, stats, err := r.execute(ctx, testcases, workflows)
	if err != nil {
		return err
	}

	printer.PrintResults(results)
	printer.PrintFooter(stats)

	if r.viewer != nil && stats.Failed > 0 {
		return r.viewer.View(results)
	}
	return nil
}

func (r *CaseRunner) execute(ctx context.Context, testcases []string, workflows []domain.WorkflowRef) ([]domain.CaseResult, domain.RunStats, error) {
	bar := ui.NewProgressBar(len(testcases), r.progress)
	stats := domain.RunStats{Total: len(testcases)}
	results := make([]domain.CaseResult, 0, len(testcases))
	start := time.Now()

	for _, testcase := range testcases {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		result := runCase(ctx, testcase, workflows)
		results = append(results, result)
		if result.Status == domain.StatusPass {
			stats.Passed++
		} else {
			stats.Failed++
			r.log.Debug("testcase failed", zap.String("testcase", testcase), zap.Strings("errors", result.Errors))
		}
		bar.Update(stats.Passed, stats.Failed)
	}

	bar.Finish()
	stats.Duration = time.Since(start)
	return results, stats, nil
}

func runCase(ctx context.Context, testcase string, workflows []domain.WorkflowRef) domain.CaseResult {
	start := time.Now()
	result := domain.CaseResult{Testcase: testcase, Status: domain.StatusPass}

	for _, wf := range workflows {
		if err := runWorkflow(ctx, wf, testcase); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", wf.Name, err))
		}
	}

	if len(result.Errors) > 0 {
		result.Status = domain.StatusFail
	}
	result.Duration = time.Since(start)
	return result
}

// runWorkflow converts a panicking workflow into an error
func runWorkflow(ctx context.Context, wf domain.WorkflowRef, testcase string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return wf.Workflow.Run(ctx, testcase)
}

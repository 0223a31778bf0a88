package execution

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"touca/internal/config"
	"touca/internal/discovery"
	"touca/internal/domain"
	"touca/internal/loader"
)

// Orchestrator discovers workflows and hands them to a Runner
type Orchestrator struct {
	workDir string
	scanner *discovery.Scanner
	filter  *discovery.Filter
	loader  *loader.Loader
	runner  Runner
	log     *zap.Logger
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(
	workDir string,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	ld *loader.Loader,
	runner Runner,
	log *zap.Logger,
) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		workDir: workDir,
		scanner: scanner,
		filter:  filter,
		loader:  ld,
		runner:  runner,
		log:     log,
	}
}

// Discover scans the invocation's test directory and extracts the workflows
// of every module found, one module at a time. The first module that fails
// to load aborts discovery. Workflows are not deduplicated across modules.
func (o *Orchestrator) Discover(inv config.Invocation) ([]domain.WorkflowRef, error) {
	modules, err := o.DiscoverModules(inv)
	if err != nil {
		return nil, err
	}
	var workflows []domain.WorkflowRef
	for _, m := range modules {
		workflows = append(workflows, m.Workflows...)
	}
	return workflows, nil
}

// DiscoverModules is like Discover but keeps workflows grouped by module,
// including modules that declare none.
func (o *Orchestrator) DiscoverModules(inv config.Invocation) ([]domain.DiscoveredModule, error) {
	testDir := inv.ResolveTestDir(o.workDir)
	refs, err := o.scanner.Scan(testDir)
	if err != nil {
		return nil, err
	}
	refs = o.filter.FilterByName(refs, inv.NameFilter)
	o.log.Debug("discovered modules", zap.String("dir", testDir), zap.Int("count", len(refs)))

	modules := make([]domain.DiscoveredModule, 0, len(refs))
	for _, ref := range refs {
		module := domain.DiscoveredModule{Ref: ref}
		err := o.loader.Load(ref, func(m *loader.LoadedModule) error {
			for name, w := range loader.Extract(m) {
				module.Workflows = append(module.Workflows, domain.WorkflowRef{Name: name, Module: ref.RelPath, Workflow: w})
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}
	return modules, nil
}

// Run discovers workflows, builds the effective configuration and invokes
// the runner. Errors from the runner are returned as-is.
func (o *Orchestrator) Run(ctx context.Context, inv config.Invocation) error {
	workflows, err := o.Discover(inv)
	if err != nil {
		return fmt.Errorf("discover workflows: %w", err)
	}
	o.log.Info("workflows ready", zap.Int("count", len(workflows)))

	cfg := config.Load(inv, o.workDir, o.log)
	return o.runner.Run(ctx, cfg, workflows)
}

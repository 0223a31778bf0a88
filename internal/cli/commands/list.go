package commands

import (
	"github.com/spf13/cobra"

	"touca/internal/config"
	"touca/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	env *Env
}

// NewListCommand creates a new ListCommand
func NewListCommand(env *Env) *ListCommand {
	return &ListCommand{env: env}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	inv := lc.env.Flags.ToInvocation(nil)
	modules, err := lc.env.Orchestrator(nil).DiscoverModules(inv)
	if err != nil {
		return err
	}

	opts, err := config.Decode(config.Load(inv, lc.env.WorkDir, nil))
	if err != nil {
		return err
	}

	tree := make([]ui.ModuleWorkflows, 0, len(modules))
	for _, m := range modules {
		entry := ui.ModuleWorkflows{Module: m.Ref.RelPath}
		for _, w := range m.Workflows {
			entry.Workflows = append(entry.Workflows, w.Name)
		}
		tree = append(tree, entry)
	}

	ui.NewPrinter(cmd.OutOrStdout(), opts.ColoredOutput).PrintWorkflowTree(tree)
	return nil
}

package commands

import (
	"github.com/spf13/cobra"

	"touca/internal/execution"
	"touca/internal/logger"
	"touca/internal/ui"
)

// ExecuteCommand handles the execute command
type ExecuteCommand struct {
	env *Env
}

// NewExecuteCommand creates a new ExecuteCommand
func NewExecuteCommand(env *Env) *ExecuteCommand {
	return &ExecuteCommand{env: env}
}

// Execute runs the command
func (ec *ExecuteCommand) Execute(cmd *cobra.Command, args []string) error {
	runner := execution.NewCaseRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger.L())
	if ec.env.Flags.OpenFailures {
		runner.SetViewer(ui.NewFailureViewer())
	}

	return ec.env.Orchestrator(runner).Run(cmd.Context(), ec.env.Flags.ToInvocation(args))
}

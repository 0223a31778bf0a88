package commands

import (
	"github.com/spf13/cobra"

	"touca/internal/config"
	"touca/internal/logger"
	"touca/internal/ui"
)

// ConfigCommand handles the config command
type ConfigCommand struct {
	env *Env
}

// NewConfigCommand creates a new ConfigCommand
func NewConfigCommand(env *Env) *ConfigCommand {
	return &ConfigCommand{env: env}
}

// Execute runs the command
func (cc *ConfigCommand) Execute(cmd *cobra.Command, args []string) error {
	values := config.Load(cc.env.Flags.ToInvocation(args), cc.env.WorkDir, logger.L())
	opts, err := config.Decode(values)
	if err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout(), opts.ColoredOutput).PrintConfig(values)
	return nil
}

package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with every subcommand registered
func NewRootCommand(version string) *cobra.Command {
	env, err := DefaultEnv()
	if err != nil {
		return &cobra.Command{
			Use: "touca",
			RunE: func(*cobra.Command, []string) error {
				return err
			},
		}
	}
	return NewRootCommandWithEnv(version, env)
}

// NewRootCommandWithEnv creates the root command over env
func NewRootCommandWithEnv(version string, env *Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "touca",
		Short:         "Discover and run regression test workflows",
		Long:          `Discovers source files declaring touca workflows, loads the workflows linked into this binary and runs them against the selected testcases.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(env, args, cmd.ErrOrStderr())
		},
	}

	NewCommands(env).Register(rootCmd, env.Flags)
	return rootCmd
}

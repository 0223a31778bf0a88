package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"touca/internal/cli"
	"touca/internal/config"
	"touca/internal/discovery"
	"touca/internal/execution"
	"touca/internal/loader"
	"touca/internal/logger"
	"touca/pkg/registry"
)

// Env holds what the commands share
type Env struct {
	WorkDir    string
	Registry   *registry.Registry
	SearchPath *loader.SearchPath
	Flags      *cli.Flags
}

// DefaultEnv returns an Env for the current process
func DefaultEnv() (*Env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Env{
		WorkDir:    wd,
		Registry:   registry.Default,
		SearchPath: loader.DefaultSearchPath,
		Flags:      &cli.Flags{},
	}, nil
}

// Orchestrator creates an Orchestrator handing workflows to runner
func (e *Env) Orchestrator(runner execution.Runner) *execution.Orchestrator {
	log := logger.L()
	return execution.NewOrchestrator(
		e.WorkDir,
		discovery.NewScanner(e.WorkDir, config.DefaultSkipDirs, log),
		discovery.NewFilter(),
		loader.NewLoader(e.Registry, e.SearchPath, log),
		runner,
		log,
	)
}

// Commands holds all CLI commands
type Commands struct {
	Execute *ExecuteCommand
	List    *ListCommand
	Config  *ConfigCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(env *Env) *Commands {
	return &Commands{
		Execute: NewExecuteCommand(env),
		List:    NewListCommand(env),
		Config:  NewConfigCommand(env),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, cli.FlagConfig, "", "Path to the configuration file (default $TOUCA_HOME/config or ~/.touca/config)")
	rootCmd.SetGlobalNormalizationFunc(cli.NormalizeFlagName)

	// Execute command
	executeCmd := &cobra.Command{
		Use:     "execute [testcase...]",
		Aliases: []string{"run"},
		Short:   "Discover and run workflows",
		Long:    "Scan the test directory for source files declaring workflows, load them and run every workflow for every selected testcase",
		Args:    cobra.ArbitraryArgs,
		PreRunE: validateSelection,
		RunE:    c.Execute.Execute,
	}
	addDiscoveryFlags(executeCmd, flags)
	addSelectionFlags(executeCmd, flags)
	executeCmd.Flags().BoolVar(&flags.OpenFailures, cli.FlagOpenFailures, false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(executeCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered workflows",
		Long:  "Scan and load workflow sources without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	addDiscoveryFlags(listCmd, flags)
	rootCmd.AddCommand(listCmd)

	// Config command
	configCmd := &cobra.Command{
		Use:     "config [testcase...]",
		Short:   "Show the effective configuration",
		Long:    "Merge defaults, the configuration file, TOUCA_* environment variables and flags, and print the result",
		Args:    cobra.ArbitraryArgs,
		PreRunE: validateSelection,
		RunE:    c.Config.Execute,
	}
	addSelectionFlags(configCmd, flags)
	rootCmd.AddCommand(configCmd)
}

func addDiscoveryFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.TestDir, cli.FlagTestDir, "", "Path to the directory with workflow sources (default: working directory)")
	cmd.Flags().StringVarP(&flags.NameFilter, cli.FlagFilter, "f", "", "Filter source files by name pattern (supports wildcards, e.g., '*_suite.go' or '*students*')")
}

func addSelectionFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.Revision, cli.FlagRevision, "", "Version of the code under test")
	cmd.Flags().StringArrayVar(&flags.Testcases, cli.FlagTestcase, nil, "One or more testcases to feed to the workflows (alias --testcases)")
	cmd.Flags().StringVar(&flags.TestcaseFile, cli.FlagTestcaseFile, "", "Single file listing testcases to feed to the workflows")
}

func validateSelection(cmd *cobra.Command, args []string) error {
	return cli.ValidateSelection(cmd.Flags(), args)
}

// initLogger configures the application logger from the effective
// configuration of the invocation
func initLogger(env *Env, args []string, stderr io.Writer) {
	values := config.Load(env.Flags.ToInvocation(args), env.WorkDir, nil)
	opts, err := config.Decode(values)
	if err != nil {
		opts = config.Options{LogLevel: config.DefaultLogLevel, ColoredOutput: true}
	}
	logger.Init(&logger.Config{Level: opts.LogLevel, Colored: opts.ColoredOutput, Output: stderr})
}

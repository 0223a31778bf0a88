// Package touca is the entry point for test suites. Suite source files
// declare workflows with Workflow and the suite's main calls Main:
//
//	var _ = touca.Workflow("students", func(ctx context.Context, testcase string) error {
//		student, err := findStudent(testcase)
//		...
//	})
//
//	func main() { touca.Main() }
//
// Running the binary with `execute --testdir <dir>` scans dir for source files
// declaring workflows and runs those linked into the binary.
package touca

import (
	"fmt"
	"os"
	"runtime"

	"touca/internal/cli/commands"
	"touca/internal/logger"
	"touca/pkg/registry"
)

// Version is reported by the command line.
var Version = "dev"

// Workflow declares a workflow in the calling source file.
func Workflow(name string, fn registry.Func) *registry.Workflow {
	return registry.Default.AddWorkflow(callerFile(), name, fn)
}

// Setup registers code to run when the calling source file is loaded.
// A returned error or panic aborts the run.
func Setup(fn registry.SetupFunc) {
	registry.Default.AddSetup(callerFile(), fn)
}

// Export adds a non-workflow member to the calling source file's module.
func Export(name string, v any) {
	registry.Default.Add(callerFile(), name, v)
}

// Main runs the command line and exits with status 1 on failure.
func Main() {
	err := commands.NewRootCommand(Version).Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func callerFile() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("touca: cannot determine declaring source file")
	}
	return file
}

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"touca/internal/config"
)

// Flag names shared by commands
const (
	FlagConfig       = "config"
	FlagTestDir      = "testdir"
	FlagRevision     = "revision"
	FlagTestcase     = "testcase"
	FlagTestcaseFile = "testcase-file"
	FlagFilter       = "filter"
	FlagOpenFailures = "open-failures"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile   string
	TestDir      string
	Revision     string
	Testcases    []string
	TestcaseFile string
	NameFilter   string
	OpenFailures bool
}

// ToInvocation converts flags and positional testcase arguments to an Invocation
func (f *Flags) ToInvocation(args []string) config.Invocation {
	var testcases []string
	testcases = append(testcases, f.Testcases...)
	testcases = append(testcases, args...)
	return config.Invocation{
		TestDir:      f.TestDir,
		Revision:     f.Revision,
		Testcases:    testcases,
		TestcaseFile: f.TestcaseFile,
		ConfigFile:   f.ConfigFile,
		NameFilter:   f.NameFilter,
	}
}

// NormalizeFlagName maps flag aliases to their canonical names
func NormalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "testcases" {
		name = FlagTestcase
	}
	return pflag.NormalizedName(name)
}

// MutuallyExclusiveOptionError is returned when testcases are given both
// directly and through a testcase file
type MutuallyExclusiveOptionError struct {
	Options []string
}

func (e *MutuallyExclusiveOptionError) Error() string {
	return fmt.Sprintf("options %q are mutually exclusive", e.Options)
}

// ValidateSelection rejects invocations selecting testcases both by
// identifier and by file
func ValidateSelection(flags *pflag.FlagSet, args []string) error {
	byID := len(args) > 0 || flags.Changed(FlagTestcase)
	byFile := flags.Changed(FlagTestcaseFile)
	if byID && byFile {
		return &MutuallyExclusiveOptionError{Options: []string{"--" + FlagTestcase, "--" + FlagTestcaseFile}}
	}
	return nil
}

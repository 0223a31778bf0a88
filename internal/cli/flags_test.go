package cli

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touca/internal/config"
)

func parse(t *testing.T, args ...string) (*Flags, *pflag.FlagSet) {
	t.Helper()
	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetNormalizeFunc(NormalizeFlagName)
	fs.StringArrayVar(&flags.Testcases, FlagTestcase, nil, "")
	fs.StringVar(&flags.TestcaseFile, FlagTestcaseFile, "", "")
	fs.StringVar(&flags.Revision, FlagRevision, "", "")
	require.NoError(t, fs.Parse(args))
	return &flags, fs
}

func TestFlags_ToInvocation(t *testing.T) {
	flags, fs := parse(t, "--testcase", "A", "--testcases", "B", "C", "--revision", "v1")

	inv := flags.ToInvocation(fs.Args())
	assert.Equal(t, config.Invocation{Revision: "v1", Testcases: []string{"A", "B", "C"}}, inv)
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"identifiers only", []string{"--testcase", "X"}, false},
		{"file only", []string{"--testcase-file", "list.txt"}, false},
		{"neither", nil, false},
		{"both", []string{"--testcase", "X", "--testcase-file", "list.txt"}, true},
		{"alias and file", []string{"--testcases", "X", "--testcase-file", "list.txt"}, true},
		{"positional and file", []string{"--testcase-file", "list.txt", "X"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fs := parse(t, tt.args...)
			err := ValidateSelection(fs, fs.Args())
			var exclusive *MutuallyExclusiveOptionError
			assert.Equal(t, tt.wantErr, errors.As(err, &exclusive))
		})
	}
}

package config

import "path/filepath"

// Invocation holds the values supplied on the command line
type Invocation struct {
	TestDir      string
	Revision     string
	Testcases    []string
	TestcaseFile string

	ConfigFile string
	NameFilter string
}

// Values returns the options supplied by the invocation. Options that were
// not supplied are absent so they never override lower-precedence sources.
func (i Invocation) Values() Values {
	values := make(Values)
	if i.Revision != "" {
		values[KeyVersion] = i.Revision
	}
	if len(i.Testcases) > 0 {
		values[KeyTestcases] = append([]string(nil), i.Testcases...)
	}
	if i.TestcaseFile != "" {
		values[KeyTestcaseFile] = i.TestcaseFile
	}
	return values
}

// ResolveTestDir returns the absolute test directory. A relative or empty
// TestDir is resolved against workDir.
func (i Invocation) ResolveTestDir(workDir string) string {
	if filepath.IsAbs(i.TestDir) {
		return filepath.Clean(i.TestDir)
	}
	return filepath.Join(workDir, i.TestDir)
}

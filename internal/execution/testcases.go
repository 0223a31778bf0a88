package execution

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"touca/internal/config"
)

// ReadTestcaseFile reads testcase identifiers from path, one per line.
// Blank lines and lines starting with # are skipped.
func ReadTestcaseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("testcase file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open testcase file: %w", err)
	}
	defer f.Close()

	var testcases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		testcases = append(testcases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read testcase file: %w", err)
	}
	return testcases, nil
}

// ResolveTestcases returns the testcases selected by opts: the testcases
// option followed by the contents of the testcase file, if any.
func ResolveTestcases(opts config.Options) ([]string, error) {
	testcases := append([]string(nil), opts.Testcases...)
	if opts.TestcaseFile == "" {
		return testcases, nil
	}
	fromFile, err := ReadTestcaseFile(opts.TestcaseFile)
	if err != nil {
		return nil, err
	}
	return append(testcases, fromFile...), nil
}

package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Values maps option names to values
type Values map[string]any

// SortedKeys returns the option names in v, sorted
func (v Values) SortedKeys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Options is the typed view of the effective configuration
type Options struct {
	APIURL        string   `mapstructure:"api-url"`
	LogLevel      string   `mapstructure:"log-level"`
	SaveAsBinary  bool     `mapstructure:"save-as-binary"`
	SaveAsJSON    bool     `mapstructure:"save-as-json"`
	Offline       bool     `mapstructure:"offline"`
	Overwrite     bool     `mapstructure:"overwrite"`
	ColoredOutput bool     `mapstructure:"colored-output"`
	Version       string   `mapstructure:"version"`
	Testcases     []string `mapstructure:"testcases"`
	TestcaseFile  string   `mapstructure:"testcase-file"`
}

// Merge combines sources given in increasing precedence. For every option
// the last non-nil value wins, except testcases which are concatenated in
// source order. Sources are not modified.
func Merge(sources ...Values) Values {
	out := make(Values)
	var testcases []string
	hasTestcases := false

	for _, src := range sources {
		for key, value := range src {
			if value == nil {
				continue
			}
			if key == KeyTestcases {
				testcases = append(testcases, toStrings(value)...)
				hasTestcases = true
				continue
			}
			out[key] = value
		}
	}

	if hasTestcases {
		out[KeyTestcases] = testcases
	}
	return out
}

// Decode converts values into Options. Strings are converted to bools where
// needed, so values read from files and the environment decode as expected.
func Decode(v Values) (Options, error) {
	var opts Options
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return opts, err
	}
	if err := decoder.Decode(map[string]any(v)); err != nil {
		return opts, fmt.Errorf("decode configuration: %w", err)
	}
	return opts, nil
}

// Load builds the effective configuration for an invocation from the
// defaults, the config file, the environment and the invocation itself.
// An unreadable config file or .env file is logged and ignored.
func Load(inv Invocation, workDir string, log *zap.Logger) Values {
	if log == nil {
		log = zap.NewNop()
	}

	path := inv.ConfigFile
	if path == "" {
		path = DefaultPath()
	}
	file, err := LoadFile(path)
	if err != nil {
		log.Warn("ignoring configuration file", zap.Error(err))
		file = nil
	}

	env, err := FromEnv(filepath.Join(workDir, DotEnvFile))
	if err != nil {
		log.Warn("ignoring .env file", zap.Error(err))
	}

	return Merge(Defaults(), file, env, inv.Values())
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case string:
		return splitList(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(t)}
	}
}

// splitList parses a comma separated list, dropping empty items
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// ConfigError is returned for a config file that exists but cannot be used
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DefaultPath returns the config file location: $TOUCA_CONFIG_FILE, then
// $TOUCA_HOME/config, then ~/.touca/config.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG_FILE"); p != "" {
		return p
	}
	if home := os.Getenv(EnvPrefix + "HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".touca", "config")
}

// LoadFile reads the settings section of the INI config file at path.
// A missing file, or one without a settings section, yields nil values.
func LoadFile(path string) (Values, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if !file.HasSection(SettingsSection) {
		return nil, nil
	}

	values := make(Values)
	for _, key := range file.Section(SettingsSection).Keys() {
		if key.Name() == KeyTestcases {
			values[KeyTestcases] = splitList(key.String())
			continue
		}
		values[key.Name()] = key.String()
	}
	return values, nil
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvName returns the environment variable that sets option key
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// FromEnv reads TOUCA_* option variables from the process environment and
// the .env file at dotenvPath. The process environment takes precedence.
// Values from the environment are returned even when the .env file is
// malformed, together with a *ConfigError.
func FromEnv(dotenvPath string) (Values, error) {
	var dotenv map[string]string
	var loadErr error
	if dotenvPath != "" {
		m, err := godotenv.Read(dotenvPath)
		switch {
		case err == nil:
			dotenv = m
		case !errors.Is(err, fs.ErrNotExist):
			loadErr = &ConfigError{Path: dotenvPath, Err: err}
		}
	}

	values := make(Values)
	for _, key := range Keys {
		name := EnvName(key)
		value, ok := os.LookupEnv(name)
		if !ok {
			value, ok = dotenv[name]
		}
		if !ok {
			continue
		}
		if key == KeyTestcases {
			values[key] = splitList(value)
			continue
		}
		values[key] = value
	}
	return values, loadErr
}

package config

// Recognised option names
const (
	KeyAPIURL        = "api-url"
	KeyLogLevel      = "log-level"
	KeySaveAsBinary  = "save-as-binary"
	KeySaveAsJSON    = "save-as-json"
	KeyOffline       = "offline"
	KeyOverwrite     = "overwrite"
	KeyColoredOutput = "colored-output"
	KeyVersion       = "version"
	KeyTestcases     = "testcases"
	KeyTestcaseFile  = "testcase-file"
)

const (
	// DefaultAPIURL is the default results service endpoint
	DefaultAPIURL = "https://api.touca.io"
	// DefaultLogLevel is the default log verbosity
	DefaultLogLevel = "info"
	// SettingsSection is the config file section holding option values
	SettingsSection = "settings"
	// EnvPrefix prefixes environment variables that set options
	EnvPrefix = "TOUCA_"
	// DotEnvFile is read from the working directory when present
	DotEnvFile = ".env"
)

// Keys lists every recognised option
var Keys = []string{
	KeyAPIURL,
	KeyLogLevel,
	KeySaveAsBinary,
	KeySaveAsJSON,
	KeyOffline,
	KeyOverwrite,
	KeyColoredOutput,
	KeyVersion,
	KeyTestcases,
	KeyTestcaseFile,
}

// DefaultSkipDirs are the directories never scanned for workflow sources
var DefaultSkipDirs = []string{
	"vendor",
	"testdata",
	"node_modules",
}

// Defaults returns the built-in option values
func Defaults() Values {
	return Values{
		KeyAPIURL:        DefaultAPIURL,
		KeyLogLevel:      DefaultLogLevel,
		KeySaveAsBinary:  false,
		KeySaveAsJSON:    false,
		KeyOffline:       false,
		KeyOverwrite:     false,
		KeyColoredOutput: true,
	}
}

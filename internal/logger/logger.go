package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log *zap.Logger
	mu  sync.Mutex
)

// Config controls the application logger
type Config struct {
	Level   string // debug, info, warn, error
	Colored bool
	Output  io.Writer // defaults to stderr
}

// Init replaces the application logger. It is called once with defaults at
// startup and again once the effective configuration is known.
func Init(cfg *Config) *zap.Logger {
	l := New(cfg)
	mu.Lock()
	log = l
	mu.Unlock()
	return l
}

// New builds a console logger from cfg
func New(cfg *Config) *zap.Logger {
	if cfg == nil {
		cfg = &Config{Level: "info", Colored: true}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if cfg.Colored {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(out), ParseLevel(cfg.Level))
	return zap.New(core)
}

// ParseLevel maps a log-level option to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// L returns the application logger
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = New(nil)
	}
	return log
}

// Sync flushes buffered log entries
func Sync() {
	_ = L().Sync()
}

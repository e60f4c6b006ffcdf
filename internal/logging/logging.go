// Package logging configures the application logger. Because the terminal
// is owned by the interactive UI, logs go to a file under the XDG state
// directory instead of stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogPath returns the log file location, honoring DOCDOT_LOG,
// then XDG_STATE_HOME, then ~/.local/state.
func DefaultLogPath() (string, error) {
	if p := os.Getenv("DOCDOT_LOG"); p != "" {
		return p, nil
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "docdot", "docdot.log"), nil
}

// New opens a file-backed logger at the given path, creating parent
// directories as needed.
func New(path string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// NewDefault opens the logger at DefaultLogPath, falling back to a no-op
// logger when the filesystem is unavailable.
func NewDefault(debug bool) *zap.Logger {
	path, err := DefaultLogPath()
	if err != nil {
		return zap.NewNop()
	}
	logger, err := New(path, debug)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// openLogger opens the log file for appending. The TUI owns the terminal, so
// nothing is logged to stderr. On error the returned logger discards output
// and is still safe to use.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	newLogger := func(w io.Writer) *log.Logger {
		return log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Prefix:          "neonpong",
			Level:           level,
		})
	}

	if path == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	path, err := expandHome(path)
	if err != nil {
		return newLogger(io.Discard), func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil //nolint:errcheck // Best-effort close on exit
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

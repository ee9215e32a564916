package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// parseLogLevel parses a log level string.
// Returns log.InfoLevel if the level string is invalid.
func parseLogLevel(level string) log.Level {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		return log.WarnLevel
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// openFileLogger creates a logger writing to the XDG state log file.
// The terminal belongs to the game while it runs, so local play never logs
// to stderr. On failure a discarding logger is returned.
func openFileLogger(level string) (*log.Logger, io.Closer) {
	logPath, err := xdg.StateFile("platformer/platformer.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not get log path: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           parseLogLevel(level),
	})
	return logger, f
}

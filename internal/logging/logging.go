// Package logging configures the process-wide slog logger and records fatal
// startup failures to a log file next to the catalog database.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Setup installs the default logger: text handler on stderr, Info level, or
// Debug when debug is set.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// WriteStartupError appends err to startup_error.log inside dir. Failures are
// swallowed: this runs on the way to a non-zero exit and must not mask the
// original error.
func WriteStartupError(dir, filename string, err error) {
	if err == nil {
		return
	}

	f, ferr := os.OpenFile(filepath.Join(dir, filename), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if ferr != nil {
		return
	}
	defer func() { _ = f.Close() }()

	_, _ = fmt.Fprintf(f, "%s %v\n", time.Now().Format(time.RFC3339), err)
}

// Package logging configures log/slog for the two ways billform runs: the
// full-screen TUI logs to a file, CLI commands log to stderr.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/thenoetrevino/billform/internal/config"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// LogFileName is the file under <data dir>/logs that the TUI writes to
const LogFileName = config.AppName + ".log"

// Init initializes file logging, writing to ~/.billform/logs/billform.log.
// The TUI owns the terminal, so nothing may be written to stdout or stderr.
// Uses text format for human readability.
func Init() error {
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(logDir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	setDefault(slog.New(handler))

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

// Setup configures colored stderr logging for CLI commands at the level
// given by LOG_LEVEL (debug, info, warn, error; default warn so command
// output stays clean).
func Setup() {
	SetupWriter(os.Stderr, LevelFromEnv())
}

// SetupWriter configures colored logging to w at the given level
func SetupWriter(w io.Writer, level slog.Level) {
	setDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}),
	))
}

// LevelFromEnv reads LOG_LEVEL
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func setDefault(l *slog.Logger) {
	Logger = l
	slog.SetDefault(l)
}

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// New builds the process logger on stdout and installs it as the slog default.
// Unknown levels fall back to info and unknown formats to JSON; config
// validation rejects them earlier.
func New(logFormat, logLevel string) *slog.Logger {
	level, err := ParseLevel(logLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	logger := slog.New(newHandler(os.Stdout, logFormat, level))

	slog.SetDefault(logger)

	return logger
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(logLevel string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("unknown log level %q", logLevel)
}

// ValidateFormat accepts json and text.
func ValidateFormat(logFormat string) error {
	switch logFormat {
	case FormatJSON, FormatText:
		return nil
	}

	return fmt.Errorf("unknown log format %q", logFormat)
}

func newHandler(w io.Writer, logFormat string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	if logFormat == FormatText {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}

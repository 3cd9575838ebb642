package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

func ParseLogLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "none", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelDisabled, fmt.Errorf("invalid log level '%s' (must be trace, debug, info, warn, error or off)", level)
	}
}

// NewLogger returns a structured logger that writes to w, normally stderr so
// the balance line stays alone on stdout.
func NewLogger(w io.Writer, level pterm.LogLevel) *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(w).WithLevel(level)
}

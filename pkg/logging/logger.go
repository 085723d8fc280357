package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment variables read by the logging setup.
const (
	EnvLogLevel = "SUBSTRATE_LOG_LEVEL"
	EnvJSONLog  = "SUBSTRATE_JSON_LOG"
)

// DefaultLevel is used when neither the CLI nor the environment sets one.
const DefaultLevel = "warn"

// NewLogger creates an hclog logger with the standard settings.
//
// level may carry a "json:" prefix ("json:debug") to force JSON output.
// Human-readable output is prefixed line by line.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	actualLevel, jsonFormat := ParseLevel(level)
	if os.Getenv(EnvJSONLog) == "1" {
		jsonFormat = true
	}

	if !jsonFormat {
		output = NewPrefixWriter("☕ ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(actualLevel),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel splits a "json:<level>" string into the level and a JSON flag.
// A bare "json" means JSON at info level.
func ParseLevel(level string) (string, bool) {
	if !strings.HasPrefix(level, "json") {
		return level, false
	}
	if _, rest, ok := strings.Cut(level, ":"); ok && rest != "" {
		return rest, true
	}
	return "info", true
}

// ResolveLogLevel picks the log level and reports where it came from.
// Priority: CLI flag, SUBSTRATE_LOG_LEVEL, DefaultLevel.
func ResolveLogLevel(cliLevel string) (level, source string) {
	if cliLevel != "" {
		return cliLevel, "CLI --log-level"
	}
	if envLevel := os.Getenv(EnvLogLevel); envLevel != "" {
		return envLevel, EnvLogLevel
	}
	return DefaultLevel, "default"
}

// OrNull returns logger, or a logger that discards everything when nil.
func OrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger
}

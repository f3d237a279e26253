package cli

import (
	"fmt"
	"strings"

	"github.com/vk/cliwire/internal/argv"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config carries the binary-level settings peeled off the argument vector.
// Everything else in the arguments belongs to the adapter pipeline.
type Config struct {
	LogLevel   string
	LogFormat  string
	ConfigPath string
	// Post selects the POST adapter variant instead of the default GET one.
	Post bool
}

// Reserved names the flags this package consumes. The entrypoint passes them
// to the adapter as extra reserved keys so they never leak into a query
// string.
func Reserved() []string {
	return []string{"log-level", "log-format", "config", "post"}
}

// Bools names this package's boolean flags. They must be declared to the
// tokenizer so "--post users" keeps "users" as a positional segment instead
// of capturing it as the flag's value.
func Bools() []string {
	return []string{"post"}
}

// Parse extracts the binary-level settings from args and validates them.
// Unlike a flag.FlagSet, unknown flags are not an error here: they are the
// adapter's input.
func Parse(args []string) (*Config, error) {
	parsed := argv.ParseWith(args, argv.Config{Bools: Bools()})

	cfg := &Config{
		LogLevel:   strings.ToLower(parsed.String("log-level")),
		LogFormat:  strings.ToLower(parsed.String("log-format")),
		ConfigPath: parsed.String("config"),
		Post:       parsed.Bool("post"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)}
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)}
	}

	return cfg, nil
}

package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/cliwire/internal/request"
)

// Options holds all the necessary configuration for an App instance to run.
// It is read-only during a single invocation.
type Options struct {
	// Variant fixes the HTTP method and the environment-merge policy.
	Variant request.Variant

	// Base is the default path prefix; a --base flag overrides it.
	Base string
	// Env carries caller-supplied environment overrides.
	Env map[string]string
	// EnvFile is the default dotenv file; an --env-file flag overrides it.
	EnvFile string
	// Environ is the host process environment in os.Environ form. It is
	// threaded explicitly so the pipeline never reads process-global state;
	// only the PostVariant merge consults it.
	Environ []string
	// Reserved names extra flags excluded from query-string projection, on
	// top of the built-in reserved set.
	Reserved []string
	// Bools declares extra boolean flag names for tokenizing, on top of the
	// runner's own. Callers that reserve a boolean flag should declare it
	// here so it never swallows a following positional.
	Bools []string
	// BeforeFetch configures pre-dispatch hooks. Only the PostVariant runs
	// hooks.
	BeforeFetch request.HookSet
	// CommandBase overrides the detected invocation prefix used in command
	// examples.
	CommandBase string
}

// App binds an in-process handler to adapter options and a logger.
type App struct {
	handler http.Handler
	opts    Options
	logger  *slog.Logger
}

// New constructs an App. A nil logger discards all log output, which keeps
// the library quiet unless the caller opts in.
func New(handler http.Handler, opts Options, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{handler: handler, opts: opts, logger: logger}
}

// Handler returns the bound handler. This is primarily for testing.
func (a *App) Handler() http.Handler {
	return a.handler
}

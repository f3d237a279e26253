package app

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vk/cliwire/internal/argv"
	"github.com/vk/cliwire/internal/ctxlog"
	"github.com/vk/cliwire/internal/dispatch"
	"github.com/vk/cliwire/internal/envmerge"
	"github.com/vk/cliwire/internal/introspect"
	"github.com/vk/cliwire/internal/request"
	"github.com/vk/cliwire/internal/urlbuild"
)

// Result is the outcome of one invocation. Lines are returned instead of
// printed so the caller decides what to do with them.
type Result struct {
	Code     int
	Lines    []string
	Request  *http.Request
	Response *dispatch.Response
}

// runnerReserved names the flags the runner itself consumes in addition to
// urlbuild.DefaultReserved.
var runnerReserved = []string{"json", "list", "help", "env-file", "config"}

// runnerBools names the runner's own boolean flags. Declaring them keeps a
// following positional out of their value slot, so "--list users" still
// triggers list mode.
var runnerBools = []string{"json", "list", "help"}

// Run executes one invocation: list mode when --list or --help is present,
// dispatch mode otherwise. Every invocation ends in exactly one of the two
// modes.
func (a *App) Run(ctx context.Context, rawArgs []string) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	args := argv.ParseWith(rawArgs, argv.Config{
		Bools: append(runnerBools, a.opts.Bools...),
	})
	a.logger.Debug("Arguments parsed.",
		"positional", args.Positional, "flags", args.Names(), "tail_len", len(args.Tail))

	if args.Bool("list") || args.Bool("help") {
		return a.runList(), nil
	}
	return a.runDispatch(ctx, args)
}

// runList enumerates the handler's registered routes for the variant's
// method and renders one example line per route. A handler without a
// readable route registry yields zero lines, not a failure.
func (a *App) runList() *Result {
	commandBase := a.opts.CommandBase
	if commandBase == "" {
		commandBase = introspect.DetectCommandBase()
	}
	paths := introspect.ListRoutes(a.handler, a.opts.Variant.Method())
	a.logger.Debug("List mode.", "routes", len(paths), "command_base", commandBase)

	return &Result{Code: 0, Lines: introspect.BuildExamples(paths, commandBase)}
}

func (a *App) runDispatch(ctx context.Context, args *argv.Args) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	base := a.opts.Base
	if flagBase := args.String("base"); flagBase != "" {
		base = flagBase
	}
	urlOpts := urlbuild.Options{Base: base, Reserved: a.reservedSet()}

	envFile := a.opts.EnvFile
	if flagFile := args.String("env-file"); flagFile != "" {
		envFile = flagFile
	}
	env, err := envmerge.Resolve(a.opts.Variant.EnvMode(), a.opts.Environ, envFile, a.opts.Env, args.Strings("env"))
	if err != nil {
		return nil, err
	}

	req, err := request.Build(a.opts.Variant, args, urlOpts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Request built.", "method", req.Method, "url", req.URL.String())

	if a.opts.Variant == request.PostVariant {
		req = request.ApplyHook(a.opts.BeforeFetch.Resolve(args), req, args)
	}

	resp, err := dispatch.Do(ctx, a.handler, req, env)
	if err != nil {
		return nil, err
	}
	logger.Debug("Response received.", "status", resp.StatusCode, "ok", resp.OK())

	line, err := formatResponse(resp, args.Bool("json"))
	if err != nil {
		return nil, err
	}

	code := 1
	if resp.OK() {
		code = 0
	}
	return &Result{Code: code, Lines: []string{line}, Request: req, Response: resp}, nil
}

func (a *App) reservedSet() map[string]bool {
	reserved := make(map[string]bool, len(runnerReserved)+len(a.opts.Reserved))
	for _, name := range runnerReserved {
		reserved[name] = true
	}
	for _, name := range a.opts.Reserved {
		reserved[name] = true
	}
	return reserved
}

// jsonEnvelope is the shape emitted in --json mode. Field order matters for
// the rendered output: status first, then data.
type jsonEnvelope struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

// formatResponse renders the response body as a single output string. In
// json mode the body is wrapped in a pretty-printed {status, data} envelope;
// a body that fails to parse as JSON is carried as raw text in data rather
// than surfaced as an error.
func formatResponse(resp *dispatch.Response, asJSON bool) (string, error) {
	if !asJSON {
		return resp.Text(), nil
	}

	envelope := jsonEnvelope{Status: resp.StatusCode}
	var parsed any
	if err := json.Unmarshal(resp.Bytes(), &parsed); err == nil {
		envelope.Data = parsed
	} else {
		envelope.Data = resp.Text()
	}

	rendered, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", err
	}
	return string(rendered), nil
}

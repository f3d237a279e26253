package request

import (
	"net/http"

	"github.com/vk/cliwire/internal/argv"
)

// Hook is a caller-supplied transformation applied to the built request
// immediately before dispatch. Returning nil keeps the original request;
// returning a request replaces it wholesale.
type Hook func(req *http.Request, args *argv.Args) *http.Request

// HookSet configures pre-dispatch hooks: either a single function applied to
// every request, or a table keyed by command name (the first positional
// segment). Fn takes precedence when both are set.
type HookSet struct {
	Fn        Hook
	ByCommand map[string]Hook
}

// Resolve returns the hook to run for the given arguments, or nil when no
// hook applies. A keyed table with an undetermined command resolves to nil.
func (hs HookSet) Resolve(args *argv.Args) Hook {
	if hs.Fn != nil {
		return hs.Fn
	}
	if len(hs.ByCommand) == 0 {
		return nil
	}
	command, ok := args.Command()
	if !ok {
		return nil
	}
	return hs.ByCommand[command]
}

// ApplyHook runs the hook, treating a nil return as "keep the original".
// A nil hook is a no-op.
func ApplyHook(hook Hook, req *http.Request, args *argv.Args) *http.Request {
	if hook == nil {
		return req
	}
	if replaced := hook(req, args); replaced != nil {
		return replaced
	}
	return req
}

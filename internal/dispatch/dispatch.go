// Package dispatch invokes an in-process http.Handler with a built request
// and captures the result. The environment mapping travels in the request
// context so handlers can read it without touching process-global state.
package dispatch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
)

// envKey is an unexported type to prevent collisions with context keys from
// other packages.
type envKey struct{}

// WithEnv returns a new context carrying the resolved environment mapping.
func WithEnv(ctx context.Context, env map[string]string) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// EnvFrom extracts the environment mapping from a context. Handlers running
// outside the adapter see an empty mapping.
func EnvFrom(ctx context.Context) map[string]string {
	if env, ok := ctx.Value(envKey{}).(map[string]string); ok {
		return env
	}
	return map[string]string{}
}

// Response is the captured result of one dispatch.
type Response struct {
	StatusCode int
	Header     http.Header
	body       []byte
}

// OK reports whether the status code indicates success, matching the Fetch
// API convention the handler contract is modeled on.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.body)
}

// Bytes returns a copy of the response body, so callers cannot mutate the
// captured response.
func (r *Response) Bytes() []byte {
	out := make([]byte, len(r.body))
	copy(out, r.body)
	return out
}

// Do serves req against handler and returns the captured response. There are
// no retries and no timeout: once invoked, the handler runs to completion
// and any panic it raises propagates unmodified to the caller.
func Do(ctx context.Context, handler http.Handler, req *http.Request, env map[string]string) (*Response, error) {
	if handler == nil {
		return nil, errors.New("dispatch: handler is nil")
	}
	if req == nil {
		return nil, errors.New("dispatch: request is nil")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(WithEnv(ctx, env)))

	return &Response{
		StatusCode: rec.Code,
		Header:     rec.Header().Clone(),
		body:       rec.Body.Bytes(),
	}, nil
}

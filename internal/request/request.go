// Package request builds the in-process HTTP request from parsed arguments
// and resolves the optional pre-dispatch hook that may replace it.
package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vk/cliwire/internal/argv"
	"github.com/vk/cliwire/internal/envmerge"
	"github.com/vk/cliwire/internal/urlbuild"
)

// Variant fixes the HTTP method of an adapter instance. The two variants are
// distinct named configurations rather than a runtime switch because they
// also diverge in environment-merge policy (see envmerge.Mode).
type Variant int

const (
	// GetVariant builds GET requests with no body; tail tokens are ignored.
	GetVariant Variant = iota
	// PostVariant builds POST requests whose body is the JSON encoding of
	// the key=value tail tokens, when any are present.
	PostVariant
)

// Method returns the fixed HTTP method of the variant.
func (v Variant) Method() string {
	if v == PostVariant {
		return http.MethodPost
	}
	return http.MethodGet
}

// EnvMode returns the environment-merge policy of the variant.
func (v Variant) EnvMode() envmerge.Mode {
	if v == PostVariant {
		return envmerge.WithProcessEnv
	}
	return envmerge.OverridesOnly
}

// Build constructs the request for the variant. For PostVariant, tail tokens
// are split on the first "=" (a token without "=" maps to an empty-string
// value); the resulting mapping is JSON-encoded as the body only when
// non-empty, in which case a content-type: application/json header is set.
func Build(variant Variant, args *argv.Args, opts urlbuild.Options) (*http.Request, error) {
	u, err := urlbuild.Build(args, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	if variant != PostVariant {
		return http.NewRequest(http.MethodGet, u.String(), nil)
	}

	fields := tailFields(args.Tail)
	if len(fields) == 0 {
		return http.NewRequest(http.MethodPost, u.String(), nil)
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func tailFields(tail []string) map[string]string {
	if len(tail) == 0 {
		return nil
	}
	fields := make(map[string]string, len(tail))
	for _, token := range tail {
		key, value := envmerge.SplitToken(token)
		fields[key] = value
	}
	return fields
}

// Package envmerge resolves the environment mapping handed to the dispatched
// handler. Values come from up to four layers, merged low to high: the host
// process environment, an optional .env file, caller-supplied overrides, and
// repeated --env KEY=VALUE flags.
package envmerge

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// Mode selects which base layers participate in the merge. The two adapter
// variants historically diverge here and the divergence is preserved on
// purpose: the GET variant never consults the process environment, the POST
// variant merges it in at the lowest precedence.
type Mode int

const (
	// OverridesOnly ignores the process environment (GET variant).
	OverridesOnly Mode = iota
	// WithProcessEnv merges the process environment first (POST variant).
	WithProcessEnv
)

// Resolve merges the environment layers. environ carries the process
// environment in os.Environ form and is only consulted under WithProcessEnv.
// envFile, when non-empty, names a dotenv file; a load failure is a real
// error since the user named the file explicitly. flagTokens are the raw
// --env values; a token without "=" maps to an empty-string value and later
// occurrences overwrite earlier ones for the same key.
func Resolve(mode Mode, environ []string, envFile string, overrides map[string]string, flagTokens []string) (map[string]string, error) {
	resolved := make(map[string]string)

	if mode == WithProcessEnv {
		for _, entry := range environ {
			key, value := SplitToken(entry)
			resolved[key] = value
		}
	}

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %q: %w", envFile, err)
		}
		for key, value := range fileVars {
			resolved[key] = value
		}
	}

	for key, value := range overrides {
		resolved[key] = value
	}

	for _, token := range flagTokens {
		key, value := SplitToken(token)
		resolved[key] = value
	}

	return resolved, nil
}

// SplitToken splits a KEY=VALUE token on the first "=". A token without "="
// yields an empty-string value rather than an error.
func SplitToken(token string) (string, string) {
	key, value, _ := strings.Cut(token, "=")
	return key, value
}

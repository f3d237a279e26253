package introspect

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackCommandBase is used when the invoking executable cannot be
// determined.
const FallbackCommandBase = "cli"

// RouteToSegments splits a normalized route path into example tokens,
// rendering each ":name" placeholder as "<name>".
func RouteToSegments(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		if rest, found := strings.CutPrefix(segment, ":"); found && rest != "" {
			segment = "<" + rest + ">"
		}
		segments = append(segments, segment)
	}
	return segments
}

// BuildExample renders one invocation example for a route path.
func BuildExample(path, commandBase string) string {
	parts := append([]string{commandBase}, RouteToSegments(path)...)
	return strings.Join(parts, " ")
}

// BuildExamples maps BuildExample over a route list, preserving input order.
func BuildExamples(paths []string, commandBase string) []string {
	examples := make([]string, 0, len(paths))
	for _, path := range paths {
		examples = append(examples, BuildExample(path, commandBase))
	}
	return examples
}

// DetectCommandBase produces a representative invocation prefix from the
// running executable: its path relative to the working directory when it
// lives below it, otherwise its base name. Detection failures fall back to
// FallbackCommandBase. This senses the environment and is therefore kept
// apart from the pure example builders above.
func DetectCommandBase() string {
	exe, err := os.Executable()
	if err != nil {
		return FallbackCommandBase
	}
	return commandBase(exe, workingDir())
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

func commandBase(exe, wd string) string {
	if exe == "" {
		return FallbackCommandBase
	}
	if wd != "" {
		if rel, err := filepath.Rel(wd, exe); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return filepath.Base(exe)
}

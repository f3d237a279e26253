// Package introspect enumerates a handler's registered routes and turns them
// into human-readable command examples.
//
// Route listing is best-effort by design: it reads whatever registry the
// handler happens to expose. The conversion from "whatever the handler
// exposes" to plain path strings is confined to ListRoutes so a framework
// change touches exactly one function.
package introspect

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Route describes one registered endpoint.
type Route struct {
	Method string
	Path   string
}

// RouteLister is the optional registry capability a handler can implement
// when it is not a chi router. Absence degrades listing to an empty result,
// never a failure.
type RouteLister interface {
	Routes() []Route
}

// ListRoutes returns the handler's registered paths for the given HTTP
// method, in declaration order, with placeholders normalized to the
// colon-prefixed form (":name"). A handler exposing no readable registry
// yields nil.
func ListRoutes(handler http.Handler, method string) []string {
	method = strings.ToUpper(method)

	if router, ok := handler.(chi.Routes); ok {
		return walkChi(router, method)
	}
	if lister, ok := handler.(RouteLister); ok {
		var paths []string
		for _, route := range lister.Routes() {
			if strings.EqualFold(route.Method, method) {
				paths = append(paths, NormalizePath(route.Path))
			}
		}
		return paths
	}
	return nil
}

func walkChi(router chi.Routes, method string) []string {
	var paths []string
	// Walk only fails when a walk function fails; ours never does.
	_ = chi.Walk(router, func(routeMethod, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if routeMethod == method {
			paths = append(paths, NormalizePath(route))
		}
		return nil
	})
	return paths
}

// NormalizePath rewrites every "{name}" placeholder segment to ":name" and
// trims a trailing slash on non-root paths.
func NormalizePath(path string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") && len(segment) > 2 {
			segments[i] = ":" + segment[1:len(segment)-1]
		}
	}
	return strings.Join(segments, "/")
}

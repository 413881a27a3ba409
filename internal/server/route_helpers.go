package server

import (
	"net/http"
	"strings"

	"github.com/ternarybob/finsight/internal/handlers"
)

// MethodRouter maps HTTP methods to handlers
type MethodRouter map[string]http.HandlerFunc

// RouteByMethod dispatches on the request method, answering 405 for anything unlisted
func RouteByMethod(w http.ResponseWriter, r *http.Request, routes MethodRouter) {
	handler, ok := routes[r.Method]
	if !ok {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	handler(w, r)
}

// Subroutes maps the last path segment below a resource to its handler
type Subroutes map[string]http.HandlerFunc

// resourcePath splits /prefix/{id}[/{segment}] into its parts.
// ok is false for an empty id or deeper paths.
func resourcePath(path, prefix string) (id, segment string, ok bool) {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		return parts[0], "", true
	case 2:
		return parts[0], parts[1], true
	default:
		return "", "", false
	}
}

// RouteSubresource dispatches /prefix/{id}/{segment} by exact segment.
// Returns false when the segment has no handler.
func RouteSubresource(w http.ResponseWriter, r *http.Request, prefix string, routes Subroutes) bool {
	_, segment, ok := resourcePath(r.URL.Path, prefix)
	if !ok || segment == "" {
		return false
	}
	handler, found := routes[segment]
	if !found {
		return false
	}
	handler(w, r)
	return true
}

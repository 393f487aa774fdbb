package sharedpath

import (
	"net/http"
	"strings"
)

// SplitPathParts normalizes a slash-delimited route suffix into non-empty path segments.
func SplitPathParts(path string) []string {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// ByMethod dispatches GET (and HEAD) to get and POST to post. A nil handler
// is treated as not allowed.
func ByMethod(w http.ResponseWriter, r *http.Request, get http.HandlerFunc, post http.HandlerFunc) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if get != nil {
			get(w, r)
			return
		}
	case http.MethodPost:
		if post != nil {
			post(w, r)
			return
		}
	}
	allowed := make([]string, 0, 2)
	if get != nil {
		allowed = append(allowed, http.MethodGet)
	}
	if post != nil {
		allowed = append(allowed, http.MethodPost)
	}
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

// GetOnly wraps a read-only handler.
func GetOnly(get http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ByMethod(w, r, get, nil)
	}
}

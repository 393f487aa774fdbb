// Package httpmux mounts the dashboard's routes on the process mux.
package httpmux

import (
	"io/fs"
	"net/http"

	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
)

// MountStatic serves staticFS under the static prefix.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountAdminRoutes mounts the page routes under the root path.
func MountAdminRoutes(rootMux *http.ServeMux, adminHandler http.Handler) {
	if rootMux == nil || adminHandler == nil {
		return
	}
	rootMux.Handle(routepath.Root, adminHandler)
}

// MountOperational serves the metrics and health endpoints.
func MountOperational(rootMux *http.ServeMux, metrics http.Handler, healthz http.HandlerFunc) {
	if rootMux == nil {
		return
	}
	if metrics != nil {
		rootMux.Handle(routepath.Metrics, metrics)
	}
	if healthz != nil {
		rootMux.HandleFunc(routepath.Healthz, healthz)
	}
}

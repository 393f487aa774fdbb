package dashboard

import (
	"net/http"

	sharedpath "github.com/louisbranch/conectareparo/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/conectareparo/internal/services/admin/routepath"
)

// Service defines dashboard route handlers consumed by this route module.
type Service interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleDashboardContent(w http.ResponseWriter, r *http.Request)
	// HandleNotFound renders paths no other module claims.
	HandleNotFound(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires dashboard routes into the provided mux. The root
// pattern catches every unmatched path, so anything but "/" is not found.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			service.HandleNotFound(w, r)
			return
		}
		sharedpath.ByMethod(w, r, service.HandleDashboard, nil)
	})
	mux.HandleFunc(routepath.DashboardContent, sharedpath.GetOnly(service.HandleDashboardContent))
}

package maintenances

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/conectareparo/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/conectareparo/internal/services/shared/route"
)

// Service defines maintenance route handlers consumed by this route module.
// Actions live under their maintenance, so their pages are routed here too.
type Service interface {
	HandleMaintenancesPage(w http.ResponseWriter, r *http.Request)
	HandleMaintenancesTable(w http.ResponseWriter, r *http.Request)
	HandleMaintenanceNew(w http.ResponseWriter, r *http.Request)
	HandleMaintenanceCreate(w http.ResponseWriter, r *http.Request)
	HandleMaintenanceDetail(w http.ResponseWriter, r *http.Request, maintenanceID string, tab string)
	HandleMaintenanceEdit(w http.ResponseWriter, r *http.Request, maintenanceID string)
	HandleMaintenanceUpdate(w http.ResponseWriter, r *http.Request, maintenanceID string)
	HandleActionNew(w http.ResponseWriter, r *http.Request, maintenanceID string)
	HandleActionCreate(w http.ResponseWriter, r *http.Request, maintenanceID string)
	HandleActionDetail(w http.ResponseWriter, r *http.Request, maintenanceID string, actionID string)
	HandleActionEdit(w http.ResponseWriter, r *http.Request, maintenanceID string, actionID string)
	HandleActionUpdate(w http.ResponseWriter, r *http.Request, maintenanceID string, actionID string)
}

// RegisterRoutes wires maintenance routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Maintenances, sharedpath.GetOnly(service.HandleMaintenancesPage))
	mux.HandleFunc(routepath.MaintenancesTable, sharedpath.GetOnly(service.HandleMaintenancesTable))
	mux.HandleFunc(routepath.MaintenancesNew, func(w http.ResponseWriter, r *http.Request) {
		sharedpath.ByMethod(w, r, service.HandleMaintenanceNew, service.HandleMaintenanceCreate)
	})
	mux.HandleFunc(routepath.MaintenancesPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleMaintenancePath(w, r, service)
	})
}

// HandleMaintenancePath parses maintenance detail subroutes and dispatches
// to service handlers:
//
//	/maintenances/{id}
//	/maintenances/{id}/edit
//	/maintenances/{id}/actions
//	/maintenances/{id}/pledges
//	/maintenances/{id}/actions/new
//	/maintenances/{id}/actions/{actionId}
//	/maintenances/{id}/actions/{actionId}/edit
func HandleMaintenancePath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.MaintenancesPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 0 {
		http.NotFound(w, r)
		return
	}
	maintenanceID := parts[0]
	switch {
	case len(parts) == 1:
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandleMaintenanceDetail(w, r, maintenanceID, routepath.TabDetails)
		}, nil)
	case len(parts) == 2 && parts[1] == "edit":
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandleMaintenanceEdit(w, r, maintenanceID)
		}, func(w http.ResponseWriter, r *http.Request) {
			service.HandleMaintenanceUpdate(w, r, maintenanceID)
		})
	case len(parts) == 2 && (parts[1] == routepath.TabActions || parts[1] == routepath.TabPledges):
		tab := parts[1]
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandleMaintenanceDetail(w, r, maintenanceID, tab)
		}, nil)
	case len(parts) == 3 && parts[1] == routepath.TabActions && parts[2] == "new":
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandleActionNew(w, r, maintenanceID)
		}, func(w http.ResponseWriter, r *http.Request) {
			service.HandleActionCreate(w, r, maintenanceID)
		})
	case len(parts) == 3 && parts[1] == routepath.TabActions:
		actionID := parts[2]
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandleActionDetail(w, r, maintenanceID, actionID)
		}, nil)
	case len(parts) == 4 && parts[1] == routepath.TabActions && parts[3] == "edit":
		actionID := parts[2]
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandleActionEdit(w, r, maintenanceID, actionID)
		}, func(w http.ResponseWriter, r *http.Request) {
			service.HandleActionUpdate(w, r, maintenanceID, actionID)
		})
	default:
		http.NotFound(w, r)
	}
}

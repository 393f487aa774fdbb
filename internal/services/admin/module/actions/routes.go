package actions

import (
	"net/http"

	sharedpath "github.com/louisbranch/conectareparo/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/conectareparo/internal/services/admin/routepath"
)

// Service defines action listing route handlers consumed by this route module.
type Service interface {
	HandleActionsPage(w http.ResponseWriter, r *http.Request)
	HandleActionsTable(w http.ResponseWriter, r *http.Request)
	HandleActionsExport(w http.ResponseWriter, r *http.Request)
	HandleMaterialRow(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires action routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Actions, sharedpath.GetOnly(service.HandleActionsPage))
	mux.HandleFunc(routepath.ActionsTable, sharedpath.GetOnly(service.HandleActionsTable))
	mux.HandleFunc(routepath.ActionsExport, sharedpath.GetOnly(service.HandleActionsExport))
	mux.HandleFunc(routepath.ActionsMaterialRow, sharedpath.GetOnly(service.HandleMaterialRow))
}

package history

import (
	"net/http"

	sharedpath "github.com/louisbranch/conectareparo/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/conectareparo/internal/services/admin/routepath"
)

// Service defines history route handlers consumed by this route module.
type Service interface {
	HandleHistoryPage(w http.ResponseWriter, r *http.Request)
	HandleHistoryTable(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires history routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.History, sharedpath.GetOnly(service.HandleHistoryPage))
	mux.HandleFunc(routepath.HistoryTable, sharedpath.GetOnly(service.HandleHistoryTable))
}

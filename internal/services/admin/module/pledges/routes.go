package pledges

import (
	"net/http"
	"strings"

	sharedpath "github.com/louisbranch/conectareparo/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/conectareparo/internal/services/shared/route"
)

// Service defines pledge route handlers consumed by this route module.
type Service interface {
	HandlePledgesPage(w http.ResponseWriter, r *http.Request)
	HandlePledgesTable(w http.ResponseWriter, r *http.Request)
	HandlePledgeNew(w http.ResponseWriter, r *http.Request)
	HandlePledgeCreate(w http.ResponseWriter, r *http.Request)
	HandlePledgeDetail(w http.ResponseWriter, r *http.Request, pledgeID string)
	HandlePledgeEdit(w http.ResponseWriter, r *http.Request, pledgeID string)
	HandlePledgeUpdate(w http.ResponseWriter, r *http.Request, pledgeID string)
}

// RegisterRoutes wires pledge routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Pledges, sharedpath.GetOnly(service.HandlePledgesPage))
	mux.HandleFunc(routepath.PledgesTable, sharedpath.GetOnly(service.HandlePledgesTable))
	mux.HandleFunc(routepath.PledgesNew, func(w http.ResponseWriter, r *http.Request) {
		sharedpath.ByMethod(w, r, service.HandlePledgeNew, service.HandlePledgeCreate)
	})
	mux.HandleFunc(routepath.PledgesPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandlePledgePath(w, r, service)
	})
}

// HandlePledgePath parses pledge detail subroutes and dispatches to service handlers.
func HandlePledgePath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.PledgesPrefix)
	parts := sharedpath.SplitPathParts(path)
	switch {
	case len(parts) == 1:
		pledgeID := parts[0]
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandlePledgeDetail(w, r, pledgeID)
		}, nil)
	case len(parts) == 2 && parts[1] == "edit":
		pledgeID := parts[0]
		sharedpath.ByMethod(w, r, func(w http.ResponseWriter, r *http.Request) {
			service.HandlePledgeEdit(w, r, pledgeID)
		}, func(w http.ResponseWriter, r *http.Request) {
			service.HandlePledgeUpdate(w, r, pledgeID)
		})
	default:
		http.NotFound(w, r)
	}
}

package admin

import (
	"context"
	"html"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/conectareparo/internal/repair"
	"github.com/louisbranch/conectareparo/internal/services/admin/i18n"
	"github.com/louisbranch/conectareparo/internal/services/admin/integration/restclient"
	actionsmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/actions"
	dashboardmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/dashboard"
	historymodule "github.com/louisbranch/conectareparo/internal/services/admin/module/history"
	maintenancesmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/maintenances"
	pledgesmodule "github.com/louisbranch/conectareparo/internal/services/admin/module/pledges"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/message"
)

const (
	// recentActivityLimit caps the dashboard activity feed.
	recentActivityLimit = 10
	// activityWriteTimeout bounds a best-effort activity log write.
	activityWriteTimeout = 2 * time.Second
	// flashParam carries the post-redirect notice code.
	flashParam = "message"
)

// MaintenanceAPI is the remote API surface the dashboard consumes.
type MaintenanceAPI interface {
	ListMaintenances(ctx context.Context, filter restclient.MaintenanceFilter) (restclient.Page[repair.Maintenance], error)
	ListAllMaintenances(ctx context.Context, filter restclient.MaintenanceFilter) ([]repair.Maintenance, error)
	GetMaintenance(ctx context.Context, id string) (repair.Maintenance, error)
	GetMaintenanceDetail(ctx context.Context, id string) (repair.MaintenanceDetail, error)
	CreateMaintenance(ctx context.Context, input repair.NewMaintenance) (repair.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id string, update repair.MaintenanceUpdate) (repair.Maintenance, error)

	ListMaintenanceActions(ctx context.Context, maintenanceID string) ([]repair.Action, error)
	ListActions(ctx context.Context) ([]repair.Action, error)
	GetAction(ctx context.Context, maintenanceID, actionID string) (repair.Action, error)
	CreateAction(ctx context.Context, maintenanceID string, input repair.NewAction) (repair.Action, error)
	UpdateAction(ctx context.Context, maintenanceID, actionID string, input repair.ActionUpdate) (repair.Action, error)

	ListPledges(ctx context.Context, filter restclient.PledgeFilter) (restclient.Page[repair.Pledge], error)
	ListAllPledges(ctx context.Context, filter restclient.PledgeFilter) ([]repair.Pledge, error)
	GetPledge(ctx context.Context, id string) (repair.Pledge, error)
	CreatePledge(ctx context.Context, input repair.NewPledge) (repair.Pledge, error)
	UpdatePledge(ctx context.Context, id string, update repair.PledgeUpdate) (repair.Pledge, error)
}

// Handler routes admin dashboard requests.
type Handler struct {
	api       MaintenanceAPI
	activity  storage.ActivityStore
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewHandler builds the HTTP handler for the dashboard pages. activity may
// be nil, in which case nothing is recorded and the feed stays empty.
func NewHandler(api MaintenanceAPI, activity storage.ActivityStore) http.Handler {
	return newHandler(api, activity).routes()
}

func newHandler(api MaintenanceAPI, activity storage.ActivityStore) *Handler {
	return &Handler{
		api:       api,
		activity:  activity,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request, nav string) templates.PageContext {
	page := templates.PageContext{
		Lang: lang,
		Loc:  loc,
		Nav:  nav,
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
		page.Flash = flashAlert(loc, r.URL.Query().Get(flashParam))
	}
	return page
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	dashboardmodule.RegisterRoutes(mux, newDashboardModuleService(h))
	maintenancesmodule.RegisterRoutes(mux, newMaintenancesModuleService(h))
	actionsmodule.RegisterRoutes(mux, newActionsModuleService(h))
	pledgesmodule.RegisterRoutes(mux, newPledgesModuleService(h))
	historymodule.RegisterRoutes(mux, newHistoryModuleService(h))
	return mux
}

// recordActivity logs a mutation. Failures never reach the user.
func (h *Handler) recordActivity(ctx context.Context, activity storage.Activity) {
	if h.activity == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), activityWriteTimeout)
	defer cancel()
	activity.CreatedAt = h.now()
	if err := h.activity.RecordActivity(ctx, activity); err != nil {
		log.Printf("record activity: %v", err)
	}
}

// sanitize strips markup from free text before it is sent upstream. The
// policy escapes the text it keeps, so entities are decoded again: the API
// stores plain text and templates escape on render.
func (h *Handler) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(h.sanitizer.Sanitize(value)))
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

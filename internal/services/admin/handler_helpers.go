package admin

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	apperrors "github.com/louisbranch/conectareparo/internal/platform/errors"
	"github.com/louisbranch/conectareparo/internal/services/admin/integration/restclient"
	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	"github.com/louisbranch/conectareparo/internal/services/admin/table"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"github.com/louisbranch/conectareparo/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// Flash codes carried by the message query parameter after a redirect.
const (
	flashMaintenanceCreated = "maintenance_created"
	flashMaintenanceUpdated = "maintenance_updated"
	flashPledgeCreated      = "pledge_created"
	flashPledgeUpdated      = "pledge_updated"
	flashActionCreated      = "action_created"
	flashActionUpdated      = "action_updated"
	flashNothingChanged     = "nothing_changed"
)

var flashCodes = map[string]string{
	flashMaintenanceCreated: templates.AlertSuccess,
	flashMaintenanceUpdated: templates.AlertSuccess,
	flashPledgeCreated:      templates.AlertSuccess,
	flashPledgeUpdated:      templates.AlertSuccess,
	flashActionCreated:      templates.AlertSuccess,
	flashActionUpdated:      templates.AlertSuccess,
	flashNothingChanged:     templates.AlertInfo,
}

// flashAlert localizes a known flash code; anything else is ignored.
func flashAlert(loc *message.Printer, code string) templates.AlertView {
	code = strings.TrimSpace(code)
	kind, ok := flashCodes[code]
	if !ok {
		return templates.AlertView{}
	}
	return templates.AlertView{Kind: kind, Message: loc.Sprintf("flash." + code)}
}

// renderPage renders body inside the layout, or only the main content for
// HTMX navigation.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page templates.PageContext, title string, body templ.Component) {
	h.renderPageStatus(w, r, page, title, body, http.StatusOK)
}

func (h *Handler) renderPageStatus(w http.ResponseWriter, r *http.Request, page templates.PageContext, title string, body templ.Component, status int) {
	htmx.RenderPageStatus(
		w,
		r,
		nil,
		templates.Layout(page, title, body),
		htmx.TitleTag(templates.ComposePageTitle(title)),
		status,
	)
}

// renderFragment writes a partial such as a table without the layout.
func renderFragment(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component).ServeHTTP(w, r)
}

// errorAlert turns an API or domain error into a localized notice. The
// upstream message is kept as detail.
func errorAlert(loc *message.Printer, err error) templates.AlertView {
	code := apperrors.CodeOf(err)
	return templates.AlertView{
		Kind:    templates.AlertError,
		Message: loc.Sprintf(code.MessageKey()),
		Detail:  apperrors.MetadataOf(err, restclient.MetadataUpstreamMessage),
	}
}

// renderError renders a full error page with the status mapped from err.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, page templates.PageContext, op string, err error) {
	if err == nil {
		return
	}
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s: %v", op, err)
	}
	loc := page.Loc
	title := templates.T(loc, "title.error")
	if apperrors.CodeOf(err) == apperrors.CodeNotFound {
		title = templates.T(loc, "title.not_found")
	}
	printer, _ := loc.(*message.Printer)
	alert := templates.AlertView{Kind: templates.AlertError, Message: title}
	if printer != nil {
		alert = errorAlert(printer, err)
	}
	view := templates.MessagePageView{
		Heading:   templates.PageHeading{Title: title},
		Alert:     alert,
		BackURL:   routepath.Root,
		BackLabel: templates.T(loc, "action.back_to_dashboard"),
	}
	h.renderPageStatus(w, r, page, title, templates.MessagePage(view), status)
}

// renderNotFound renders the not found page without calling the API.
func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request, page templates.PageContext) {
	h.renderError(w, r, page, "not found", apperrors.New(apperrors.CodeNotFound, "not found"))
}

// renderTableError replaces a table with an error notice inside the same
// container so later filter submissions still find their target.
func renderTableError(w http.ResponseWriter, r *http.Request, loc *message.Printer, tableID string, op string, err error) {
	log.Printf("%s: %v", op, err)
	alert := errorAlert(loc, err)
	component := templates.Table(templates.TableView{ID: tableID, EmptyMessage: joinAlert(alert)})
	templ.Handler(component, templ.WithStatus(apperrors.HTTPStatus(err))).ServeHTTP(w, r)
}

func joinAlert(alert templates.AlertView) string {
	if alert.Detail == "" || alert.Detail == alert.Message {
		return alert.Message
	}
	return alert.Message + " " + alert.Detail
}

// validID reports whether id is a well-formed resource identifier.
func validID(id string) bool {
	_, err := uuid.Parse(strings.TrimSpace(id))
	return err == nil
}

// tableSummary formats the "showing x-y of z" line under a table.
func tableSummary(loc *message.Printer) func(table.Page) string {
	return func(page table.Page) string {
		if page.TotalElements == 0 {
			return loc.Sprintf("table.empty")
		}
		return loc.Sprintf("table.summary", page.StartItem, page.EndItem, page.TotalElements)
	}
}

// replaceTableURL records the filtered page URL when the filter form
// triggered the table reload.
func replaceTableURL(w http.ResponseWriter, r *http.Request, tableID string, q table.Query, pageURL string) {
	if htmx.TriggerID(r) != templates.FilterFormID(tableID) {
		return
	}
	htmx.ReplaceURL(w, q.URL(pageURL))
}

func listPageHeading(loc *message.Printer, titleKey, subtitleKey, actionURL, actionKey string) templates.PageHeading {
	heading := templates.PageHeading{
		Title:    loc.Sprintf(titleKey),
		Subtitle: loc.Sprintf(subtitleKey),
		Breadcrumbs: []templates.Breadcrumb{
			{Label: loc.Sprintf("nav.dashboard"), URL: routepath.Root},
			{Label: loc.Sprintf(titleKey)},
		},
	}
	if actionURL != "" {
		heading.ActionURL = actionURL
		heading.ActionLabel = loc.Sprintf(actionKey)
	}
	return heading
}

// hiddenQuery keeps sort and size across filter submissions.
func hiddenQuery(q table.Query) []templates.HiddenField {
	values := q.Values()
	fields := make([]templates.HiddenField, 0, 2)
	for _, key := range []string{table.ParamOrderBy, table.ParamSize} {
		if value := values.Get(key); value != "" {
			fields = append(fields, templates.HiddenField{Name: key, Value: value})
		}
	}
	return fields
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}

package admin

import (
	"net/http"

	"github.com/louisbranch/conectareparo/internal/repair"
	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	"github.com/louisbranch/conectareparo/internal/services/admin/table"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"golang.org/x/text/message"
)

const historyTableID = "history-table"

var historyQueryConfig = table.QueryConfig{
	DefaultOrderBy: "createdAt desc",
	Sortable:       maintenancesQueryConfig.Sortable,
	Filters:        []string{filterStatus, filterCategory},
}

func historyStatusOptions(loc *message.Printer, selected string) []templates.OptionView {
	status, _ := repair.ParseMaintenanceStatus(selected)
	options := []templates.OptionView{{Value: "", Label: loc.Sprintf("filter.status_any")}}
	for _, candidate := range []repair.MaintenanceStatus{repair.MaintenanceCompleted, repair.MaintenanceCanceled} {
		options = append(options, templates.OptionView{
			Value:    string(candidate),
			Label:    maintenanceStatusBadge(candidate, loc).Label,
			Selected: candidate == status,
		})
	}
	return options
}

func (h *Handler) handleHistoryPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavHistory)
	q := table.ParseQuery(r.URL.Query(), historyQueryConfig)
	category, _ := repair.ParseCategory(q.Filter(filterCategory))

	view := templates.ListPageView{
		Heading: listPageHeading(loc, "history.title", "history.subtitle", "", ""),
		Filters: templates.FilterBarView{
			TableURL:          routepath.HistoryTable,
			PageURL:           routepath.History,
			TableID:           historyTableID,
			SearchName:        table.ParamSearch,
			Search:            q.Search,
			SearchPlaceholder: loc.Sprintf("maintenances.search_placeholder"),
			Selects: []templates.SelectView{
				{Name: filterStatus, Label: loc.Sprintf("field.status"), Options: historyStatusOptions(loc, q.Filter(filterStatus))},
				{Name: filterCategory, Label: loc.Sprintf("field.category"), Options: categoryOptions(loc, category, loc.Sprintf("filter.category_any"))},
			},
			Hidden: hiddenQuery(q),
		},
		TableURL:       q.URL(routepath.HistoryTable),
		LoadingMessage: loc.Sprintf("table.loading"),
	}
	h.renderPage(w, r, page, loc.Sprintf("history.title"), templates.ListPage(view))
}

// handleHistoryTable lists completed and canceled maintenances. A terminal
// status narrows the list; any other value shows both.
func (h *Handler) handleHistoryTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	q := table.ParseQuery(r.URL.Query(), historyQueryConfig)
	spec := maintenanceTableSpec(loc, lang, historyTableID)
	spec.EmptyMessage = loc.Sprintf("history.empty")

	statusFilter := repair.StatusFilterInactive
	if status, err := repair.ParseMaintenanceStatus(q.Filter(filterStatus)); err == nil && status.Terminal() {
		statusFilter = repair.StatusFilter(status)
	}
	result, err := h.listMaintenances(r.Context(), spec, q, statusFilter)
	if err != nil {
		renderTableError(w, r, loc, historyTableID, "list history", err)
		return
	}

	links := table.Links{TableURL: routepath.HistoryTable, PageURL: routepath.History}
	replaceTableURL(w, r, historyTableID, q, routepath.History)
	renderFragment(w, r, templates.Table(table.Render(spec, result, q, links, tableSummary(loc))))
}

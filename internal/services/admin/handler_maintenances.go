package admin

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/conectareparo/internal/platform/errors"
	"github.com/louisbranch/conectareparo/internal/repair"
	"github.com/louisbranch/conectareparo/internal/services/admin/integration/restclient"
	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
	"github.com/louisbranch/conectareparo/internal/services/admin/table"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"github.com/louisbranch/conectareparo/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

const (
	maintenancesTableID = "maintenances-table"

	filterStatus   = "status"
	filterCategory = "category"
)

var maintenancesQueryConfig = table.QueryConfig{
	DefaultOrderBy: "createdAt desc",
	Sortable:       []string{"title", "category", "status", "scheduledDate", "createdAt"},
	Filters:        []string{filterStatus, filterCategory},
}

// maintenanceTableSpec describes the maintenances table. tableID lets the
// history page reuse the columns.
func maintenanceTableSpec(loc *message.Printer, lang string, tableID string) table.Spec[repair.Maintenance] {
	return table.Spec[repair.Maintenance]{
		ID:           tableID,
		ActionsLabel: loc.Sprintf("table.actions"),
		EmptyMessage: loc.Sprintf("maintenances.empty"),
		RowID:        func(m repair.Maintenance) string { return m.ID },
		Columns: []table.Column[repair.Maintenance]{
			{
				Key:        "title",
				Header:     loc.Sprintf("field.title"),
				Sortable:   true,
				Searchable: true,
				Value:      func(m repair.Maintenance) string { return m.Title },
				Cell: func(m repair.Maintenance) templates.TableCellView {
					return templates.TableCellView{
						Text:    m.Title,
						Subtext: truncate(m.Description, 80),
						Href:    routepath.Maintenance(m.ID),
					}
				},
			},
			{
				Key:      "category",
				Header:   loc.Sprintf("field.category"),
				Sortable: true,
				Value:    func(m repair.Maintenance) string { return string(m.Category) },
				Cell: func(m repair.Maintenance) templates.TableCellView {
					badge := categoryBadge(m.Category, loc)
					return templates.TableCellView{Badge: &badge}
				},
			},
			{
				Key:      "status",
				Header:   loc.Sprintf("field.status"),
				Sortable: true,
				Value:    func(m repair.Maintenance) string { return string(m.Status) },
				Cell: func(m repair.Maintenance) templates.TableCellView {
					badge := maintenanceStatusBadge(m.Status, loc)
					return templates.TableCellView{Badge: &badge}
				},
			},
			{
				Key:      "scheduledDate",
				Header:   loc.Sprintf("field.scheduled_date"),
				Sortable: true,
				Value:    func(m repair.Maintenance) string { return formatDate(m.ScheduledDate, lang) },
				Less: func(a, b repair.Maintenance) int {
					return a.ScheduledDate.Compare(b.ScheduledDate.Time)
				},
			},
			{
				Key:      "createdAt",
				Header:   loc.Sprintf("field.created_at"),
				Sortable: true,
				Class:    "hidden md:table-cell",
				Value:    func(m repair.Maintenance) string { return formatDateTime(m.CreatedAt, lang) },
				Less: func(a, b repair.Maintenance) int {
					return a.CreatedAt.Compare(b.CreatedAt.Time)
				},
			},
		},
		Actions: []table.RowAction[repair.Maintenance]{
			{Label: loc.Sprintf("action.view"), Href: routepath.Maintenances + "/{id}"},
			{
				Label:   loc.Sprintf("action.edit"),
				Href:    routepath.Maintenances + "/{id}/edit",
				Visible: func(m repair.Maintenance) bool { return !m.Status.Terminal() },
			},
			{
				Label:   loc.Sprintf("action.new_action"),
				Href:    routepath.Maintenances + "/{id}/actions/new",
				Visible: func(m repair.Maintenance) bool { return m.AcceptsActions() },
			},
		},
	}
}

func maintenanceStatusFilterOptions(loc *message.Printer, selected string) []templates.OptionView {
	options := []templates.OptionView{
		{Value: "", Label: loc.Sprintf("filter.status_any")},
		{Value: string(repair.StatusFilterActive), Label: loc.Sprintf("filter.status_active")},
		{Value: string(repair.StatusFilterInactive), Label: loc.Sprintf("filter.status_inactive")},
	}
	for _, status := range repair.MaintenanceStatuses {
		options = append(options, templates.OptionView{Value: string(status), Label: maintenanceStatusBadge(status, loc).Label})
	}
	normalized := string(repair.ParseStatusFilter(selected))
	if normalized == string(repair.StatusFilterAll) {
		normalized = ""
	}
	for i := range options {
		options[i].Selected = options[i].Value == normalized
	}
	return options
}

func (h *Handler) handleMaintenancesPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	q := table.ParseQuery(r.URL.Query(), maintenancesQueryConfig)

	category, _ := repair.ParseCategory(q.Filter(filterCategory))
	view := templates.ListPageView{
		Heading: listPageHeading(loc, "maintenances.title", "maintenances.subtitle", routepath.MaintenancesNew, "action.new_maintenance"),
		Filters: templates.FilterBarView{
			TableURL:          routepath.MaintenancesTable,
			PageURL:           routepath.Maintenances,
			TableID:           maintenancesTableID,
			SearchName:        table.ParamSearch,
			Search:            q.Search,
			SearchPlaceholder: loc.Sprintf("maintenances.search_placeholder"),
			Selects: []templates.SelectView{
				{Name: filterStatus, Label: loc.Sprintf("field.status"), Options: maintenanceStatusFilterOptions(loc, q.Filter(filterStatus))},
				{Name: filterCategory, Label: loc.Sprintf("field.category"), Options: categoryOptions(loc, category, loc.Sprintf("filter.category_any"))},
			},
			Hidden: hiddenQuery(q),
		},
		TableURL:       q.URL(routepath.MaintenancesTable),
		LoadingMessage: loc.Sprintf("table.loading"),
	}
	h.renderPage(w, r, page, loc.Sprintf("maintenances.title"), templates.ListPage(view))
}

func (h *Handler) handleMaintenancesTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	q := table.ParseQuery(r.URL.Query(), maintenancesQueryConfig)
	spec := maintenanceTableSpec(loc, lang, maintenancesTableID)

	result, err := h.listMaintenances(r.Context(), spec, q, repair.ParseStatusFilter(q.Filter(filterStatus)))
	if err != nil {
		renderTableError(w, r, loc, maintenancesTableID, "list maintenances", err)
		return
	}
	links := table.Links{TableURL: routepath.MaintenancesTable, PageURL: routepath.Maintenances}
	replaceTableURL(w, r, maintenancesTableID, q, routepath.Maintenances)
	renderFragment(w, r, templates.Table(table.Render(spec, result, q, links, tableSummary(loc))))
}

// listMaintenances loads one page of maintenances. Concrete statuses are
// filtered, sorted and paged by the API. Pseudo statuses group several
// statuses the API cannot select at once, so every match is fetched and
// shaped here.
func (h *Handler) listMaintenances(ctx context.Context, spec table.Spec[repair.Maintenance], q table.Query, statusFilter repair.StatusFilter) (table.Result[repair.Maintenance], error) {
	category, _ := repair.ParseCategory(q.Filter(filterCategory))
	if statusFilter.Pseudo() {
		rows, err := h.api.ListAllMaintenances(ctx, restclient.MaintenanceFilter{Category: category, Search: q.Search})
		if err != nil {
			return table.Result[repair.Maintenance]{}, err
		}
		local := q
		local.Search = ""
		local.Filters = map[string]string{filterStatus: string(statusFilter)}
		return table.Apply(rows, spec, local, map[string]table.Matcher[repair.Maintenance]{
			filterStatus: func(m repair.Maintenance, value string) bool {
				return repair.StatusFilter(value).Matches(m.Status)
			},
		}), nil
	}

	status, _ := statusFilter.Status()
	filter := restclient.MaintenanceFilter{
		Status:   status,
		Category: category,
		Search:   q.Search,
		PageRequest: restclient.PageRequest{
			Page: q.Page - 1,
			Size: q.PageSize,
			Sort: []string{restclient.SortParam(q.SortKey, q.SortDesc)},
		},
	}
	page, err := h.api.ListMaintenances(ctx, filter)
	if err != nil {
		return table.Result[repair.Maintenance]{}, err
	}
	if page.TotalPages > 0 && filter.Page >= page.TotalPages {
		filter.Page = page.TotalPages - 1
		if page, err = h.api.ListMaintenances(ctx, filter); err != nil {
			return table.Result[repair.Maintenance]{}, err
		}
	}
	return table.Result[repair.Maintenance]{
		Rows: page.Content,
		Page: table.NewPage(page.Number+1, q.PageSize, page.TotalElements),
	}, nil
}

const (
	maintenanceActionsTableID = "maintenance-actions-table"
	maintenancePledgesTableID = "maintenance-pledges-table"
)

func (h *Handler) handleMaintenanceDetail(w http.ResponseWriter, r *http.Request, maintenanceID string, tab string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	if !validID(maintenanceID) {
		h.renderNotFound(w, r, page)
		return
	}
	detail, err := h.api.GetMaintenanceDetail(r.Context(), maintenanceID)
	if err != nil {
		h.renderError(w, r, page, "get maintenance detail", err)
		return
	}
	m := detail.Maintenance

	view := templates.DetailPageView{
		Heading: maintenanceHeading(loc, m),
		Buttons: maintenanceButtons(loc, m),
		Tabs: []templates.TabView{
			{Label: loc.Sprintf("tab.details"), Href: routepath.MaintenanceTab(m.ID, routepath.TabDetails), Active: tab == routepath.TabDetails},
			{Label: loc.Sprintf("tab.actions", len(detail.Actions)), Href: routepath.MaintenanceTab(m.ID, routepath.TabActions), Active: tab == routepath.TabActions},
			{Label: loc.Sprintf("tab.pledges", len(detail.Pledges)), Href: routepath.MaintenanceTab(m.ID, routepath.TabPledges), Active: tab == routepath.TabPledges},
		},
	}
	if m.Status.Terminal() {
		view.Notice = templates.AlertView{Kind: templates.AlertInfo, Message: loc.Sprintf("maintenances.terminal_notice")}
	}

	switch tab {
	case routepath.TabActions:
		spec := actionTableSpec(loc, lang, maintenanceActionsTableID, m.ID, false)
		q := table.ParseQuery(r.URL.Query(), actionsQueryConfig)
		links := table.Links{TableURL: routepath.MaintenanceActions(m.ID), PageURL: routepath.MaintenanceActions(m.ID)}
		tableView := table.Render(spec, table.Apply(detail.Actions, spec, q, nil), q, links, tableSummary(loc))
		if htmx.TargetID(r) == spec.ID {
			renderFragment(w, r, templates.Table(tableView))
			return
		}
		view.Table = &tableView
	case routepath.TabPledges:
		spec := pledgeTableSpec(loc, lang, maintenancePledgesTableID, false)
		q := table.ParseQuery(r.URL.Query(), pledgesQueryConfig)
		links := table.Links{TableURL: routepath.MaintenancePledges(m.ID), PageURL: routepath.MaintenancePledges(m.ID)}
		tableView := table.Render(spec, table.Apply(detail.Pledges, spec, q, nil), q, links, tableSummary(loc))
		if htmx.TargetID(r) == spec.ID {
			renderFragment(w, r, templates.Table(tableView))
			return
		}
		view.Table = &tableView
	default:
		view.Sections = []templates.DetailSection{maintenanceSection(loc, lang, m)}
	}
	h.renderPage(w, r, page, m.Title, templates.DetailPage(view))
}

func maintenanceHeading(loc *message.Printer, m repair.Maintenance) templates.PageHeading {
	return templates.PageHeading{
		Title: m.Title,
		Breadcrumbs: []templates.Breadcrumb{
			{Label: loc.Sprintf("nav.dashboard"), URL: routepath.Root},
			{Label: loc.Sprintf("maintenances.title"), URL: routepath.Maintenances},
			{Label: m.Title},
		},
		Badges: []templates.BadgeView{maintenanceStatusBadge(m.Status, loc), categoryBadge(m.Category, loc)},
	}
}

func maintenanceButtons(loc *message.Printer, m repair.Maintenance) []templates.ButtonView {
	var buttons []templates.ButtonView
	if !m.Status.Terminal() {
		buttons = append(buttons, templates.ButtonView{Label: loc.Sprintf("action.edit"), Href: routepath.MaintenanceEdit(m.ID)})
	}
	if m.AcceptsActions() {
		buttons = append(buttons, templates.ButtonView{Label: loc.Sprintf("action.new_action"), Href: routepath.MaintenanceActionNew(m.ID), Primary: true})
	}
	if m.Status.Active() {
		buttons = append(buttons, templates.ButtonView{Label: loc.Sprintf("action.new_pledge"), Href: routepath.PledgeNewFor(m.ID)})
	}
	return buttons
}

func maintenanceSection(loc *message.Printer, lang string, m repair.Maintenance) templates.DetailSection {
	status := maintenanceStatusBadge(m.Status, loc)
	category := categoryBadge(m.Category, loc)
	return templates.DetailSection{
		Title: loc.Sprintf("maintenances.section_details"),
		Fields: []templates.DetailField{
			{Label: loc.Sprintf("field.title"), Value: m.Title},
			{Label: loc.Sprintf("field.status"), Badge: &status},
			{Label: loc.Sprintf("field.category"), Badge: &category},
			{Label: loc.Sprintf("field.scheduled_date"), Value: formatDate(m.ScheduledDate, lang)},
			{Label: loc.Sprintf("field.created_at"), Value: formatDateTime(m.CreatedAt, lang)},
			{Label: loc.Sprintf("field.updated_at"), Value: formatDateTime(m.UpdatedAt, lang)},
			{Label: loc.Sprintf("field.description"), Value: m.Description, Multiline: true},
		},
	}
}

// maintenanceFormValues is the submitted or prefilled state of a
// maintenance form.
type maintenanceFormValues struct {
	Title         string
	Description   string
	Category      repair.Category
	ScheduledDate string
	Status        repair.MaintenanceStatus
}

func maintenanceFormFromRequest(h *Handler, r *http.Request) maintenanceFormValues {
	category, err := repair.ParseCategory(r.PostForm.Get("category"))
	if err != nil {
		category = repair.Category(strings.TrimSpace(r.PostForm.Get("category")))
	}
	status, err := repair.ParseMaintenanceStatus(r.PostForm.Get("status"))
	if err != nil {
		status = repair.MaintenanceStatus(strings.TrimSpace(r.PostForm.Get("status")))
	}
	return maintenanceFormValues{
		Title:         h.sanitize(r.PostForm.Get("title")),
		Description:   h.sanitize(r.PostForm.Get("description")),
		Category:      category,
		ScheduledDate: strings.TrimSpace(r.PostForm.Get("scheduledDate")),
		Status:        status,
	}
}

// maintenanceForm builds the create form, or the edit form when current is
// set.
func maintenanceForm(loc *message.Printer, values maintenanceFormValues, errs fieldErrors, alert templates.AlertView, current *repair.Maintenance) templates.FormView {
	form := templates.FormView{
		Error:       alert,
		CancelLabel: loc.Sprintf("action.cancel"),
		Fields: []templates.FieldView{
			{
				Name: "title", Label: loc.Sprintf("field.title"), Value: values.Title,
				Placeholder: loc.Sprintf("placeholder.maintenance_title"),
				Error:       errs.get("title"), Required: true, MaxLength: 100,
			},
			{
				Name: "category", Label: loc.Sprintf("field.category"), Kind: templates.FieldSelect,
				Value: string(values.Category), Options: categoryOptions(loc, values.Category, loc.Sprintf("placeholder.select")),
				Error: errs.get("category"), Required: true,
			},
		},
	}
	if current == nil {
		form.Heading = templates.PageHeading{
			Title: loc.Sprintf("maintenances.new_title"),
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("maintenances.title"), URL: routepath.Maintenances},
				{Label: loc.Sprintf("maintenances.new_title")},
			},
		}
		form.Action = routepath.MaintenancesNew
		form.SubmitLabel = loc.Sprintf("action.create")
		form.CancelURL = routepath.Maintenances
		form.Fields = append(form.Fields, templates.FieldView{
			Name: "scheduledDate", Label: loc.Sprintf("field.scheduled_date"), Kind: templates.FieldDate,
			Value: values.ScheduledDate, Error: errs.get("scheduledDate"), Required: true,
		})
	} else {
		form.Heading = templates.PageHeading{
			Title: loc.Sprintf("maintenances.edit_title"),
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("maintenances.title"), URL: routepath.Maintenances},
				{Label: current.Title, URL: routepath.Maintenance(current.ID)},
				{Label: loc.Sprintf("maintenances.edit_title")},
			},
		}
		form.Action = routepath.MaintenanceEdit(current.ID)
		form.SubmitLabel = loc.Sprintf("action.save")
		form.CancelURL = routepath.Maintenance(current.ID)
		form.Fields = append(form.Fields, templates.FieldView{
			Name: "status", Label: loc.Sprintf("field.status"), Kind: templates.FieldSelect,
			Value: string(values.Status), Options: maintenanceTransitionOptions(loc, current.Status, values.Status),
			Error: errs.get("status"), Required: true,
		})
	}
	form.Fields = append(form.Fields, templates.FieldView{
		Name: "description", Label: loc.Sprintf("field.description"), Kind: templates.FieldTextarea,
		Value: values.Description, Placeholder: loc.Sprintf("placeholder.maintenance_description"),
		Error: errs.get("description"), Required: true, MaxLength: 3000, Rows: 6,
	})
	return form
}

func (h *Handler) handleMaintenanceNew(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	form := maintenanceForm(loc, maintenanceFormValues{}, nil, templates.AlertView{}, nil)
	h.renderPage(w, r, page, form.Heading.Title, templates.Form(form))
}

func (h *Handler) handleMaintenanceCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := parseForm(w, r); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_form"), http.StatusBadRequest)
		return
	}
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	values := maintenanceFormFromRequest(h, r)

	scheduled, ok := formTimestamp(values.ScheduledDate)
	errs := repair.FieldErrors{}
	if !ok {
		errs["scheduledDate"] = repair.FieldError{Key: repair.KeyInvalidDate}
	}
	input := repair.NewMaintenance{
		Title:         values.Title,
		Description:   values.Description,
		Category:      values.Category,
		ScheduledDate: scheduled,
	}
	errs = mergeFieldErrors(errs, input.Validate())
	if len(errs) > 0 {
		form := maintenanceForm(loc, values, localizeFieldErrors(loc, errs), formErrorAlert(loc), nil)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), http.StatusUnprocessableEntity)
		return
	}

	created, err := h.api.CreateMaintenance(r.Context(), input)
	if err != nil {
		form := maintenanceForm(loc, values, nil, errorAlert(loc, err), nil)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), apperrors.HTTPStatus(err))
		return
	}
	h.recordActivity(r.Context(), storage.Activity{
		Kind:     storage.KindMaintenanceCreated,
		EntityID: created.ID,
		Summary:  created.Title,
	})
	htmx.Redirect(w, r, routepath.WithMessage(routepath.Maintenance(created.ID), flashMaintenanceCreated))
}

// loadEditableMaintenance fetches a maintenance for editing. Completed and
// canceled maintenances cannot be edited.
func (h *Handler) loadEditableMaintenance(ctx context.Context, maintenanceID string) (repair.Maintenance, error) {
	m, err := h.api.GetMaintenance(ctx, maintenanceID)
	if err != nil {
		return repair.Maintenance{}, err
	}
	if m.Status.Terminal() {
		return repair.Maintenance{}, apperrors.New(apperrors.CodeFailedPrecondition, "maintenance is "+string(m.Status))
	}
	return m, nil
}

func (h *Handler) handleMaintenanceEdit(w http.ResponseWriter, r *http.Request, maintenanceID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	if !validID(maintenanceID) {
		h.renderNotFound(w, r, page)
		return
	}
	m, err := h.loadEditableMaintenance(r.Context(), maintenanceID)
	if err != nil {
		h.renderError(w, r, page, "get maintenance", err)
		return
	}
	values := maintenanceFormValues{
		Title:         m.Title,
		Description:   m.Description,
		Category:      m.Category,
		ScheduledDate: dateInput(m.ScheduledDate),
		Status:        m.Status,
	}
	form := maintenanceForm(loc, values, nil, templates.AlertView{}, &m)
	h.renderPage(w, r, page, form.Heading.Title, templates.Form(form))
}

func (h *Handler) handleMaintenanceUpdate(w http.ResponseWriter, r *http.Request, maintenanceID string) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	if !validID(maintenanceID) {
		h.renderNotFound(w, r, page)
		return
	}
	if err := parseForm(w, r); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_form"), http.StatusBadRequest)
		return
	}
	m, err := h.loadEditableMaintenance(r.Context(), maintenanceID)
	if err != nil {
		h.renderError(w, r, page, "get maintenance", err)
		return
	}

	values := maintenanceFormFromRequest(h, r)
	update := repair.DiffMaintenance(m, repair.MaintenanceEdit{
		Title:       values.Title,
		Description: values.Description,
		Category:    values.Category,
		Status:      values.Status,
	})
	if errs := update.Validate(m.Status); len(errs) > 0 {
		form := maintenanceForm(loc, values, localizeFieldErrors(loc, errs), formErrorAlert(loc), &m)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), http.StatusUnprocessableEntity)
		return
	}
	if update.Empty() {
		alert := errorAlert(loc, apperrors.New(apperrors.CodeMaintenanceNothingToSave, "nothing to save"))
		form := maintenanceForm(loc, values, nil, alert, &m)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), http.StatusUnprocessableEntity)
		return
	}

	updated, err := h.api.UpdateMaintenance(r.Context(), m.ID, update)
	if err != nil {
		form := maintenanceForm(loc, values, nil, errorAlert(loc, err), &m)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), apperrors.HTTPStatus(err))
		return
	}
	h.recordActivity(r.Context(), storage.Activity{
		Kind:     storage.KindMaintenanceUpdated,
		EntityID: m.ID,
		Summary:  firstNonEmpty(updated.Title, m.Title),
	})
	htmx.Redirect(w, r, routepath.WithMessage(routepath.Maintenance(m.ID), flashMaintenanceUpdated))
}

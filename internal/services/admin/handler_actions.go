package admin

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/conectareparo/internal/platform/errors"
	"github.com/louisbranch/conectareparo/internal/repair"
	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
	"github.com/louisbranch/conectareparo/internal/services/admin/table"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"github.com/louisbranch/conectareparo/internal/services/shared/htmx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

const (
	actionsTableID = "actions-table"
	filterOutcome  = "outcomeStatus"
	actionsCSVName = "actions.csv"
)

var actionsQueryConfig = table.QueryConfig{
	DefaultOrderBy: "createdAt desc",
	Sortable:       []string{"maintenanceTitle", "executedBy", "outcomeStatus", "startDate", "completionDate", "createdAt"},
	Filters:        []string{filterOutcome},
}

// actionTableSpec describes an actions table. Rows without a maintenance id
// fall back to maintenanceID, which is set when listing one maintenance.
func actionTableSpec(loc *message.Printer, lang string, tableID string, maintenanceID string, withMaintenance bool) table.Spec[repair.Action] {
	parentID := func(a repair.Action) string { return firstNonEmpty(a.MaintenanceID, maintenanceID) }
	columns := make([]table.Column[repair.Action], 0, 7)
	if withMaintenance {
		columns = append(columns, table.Column[repair.Action]{
			Key:        "maintenanceTitle",
			Header:     loc.Sprintf("field.maintenance"),
			Sortable:   true,
			Searchable: true,
			Value:      func(a repair.Action) string { return a.MaintenanceTitle },
			Cell: func(a repair.Action) templates.TableCellView {
				return templates.TableCellView{Text: a.MaintenanceTitle, Href: routepath.Maintenance(parentID(a))}
			},
		})
	}
	columns = append(columns,
		table.Column[repair.Action]{
			Key:        "executedBy",
			Header:     loc.Sprintf("field.executed_by"),
			Sortable:   true,
			Searchable: true,
			Value:      func(a repair.Action) string { return a.ExecutedBy },
			Cell: func(a repair.Action) templates.TableCellView {
				return templates.TableCellView{
					Text:    a.ExecutedBy,
					Subtext: truncate(a.ActionDescription, 80),
					Href:    routepath.MaintenanceAction(parentID(a), a.ID),
				}
			},
		},
		table.Column[repair.Action]{
			Key:        "actionDescription",
			Searchable: true,
			Hidden:     true,
			Value:      func(a repair.Action) string { return a.ActionDescription },
		},
		table.Column[repair.Action]{
			Key:      "outcomeStatus",
			Header:   loc.Sprintf("field.outcome"),
			Sortable: true,
			Value:    func(a repair.Action) string { return string(a.OutcomeStatus) },
			Cell: func(a repair.Action) templates.TableCellView {
				badge := outcomeBadge(a.OutcomeStatus, loc)
				return templates.TableCellView{Badge: &badge}
			},
		},
		table.Column[repair.Action]{
			Key:      "startDate",
			Header:   loc.Sprintf("field.start_date"),
			Sortable: true,
			Value:    func(a repair.Action) string { return formatDateTime(a.StartDate, lang) },
			Less:     func(a, b repair.Action) int { return a.StartDate.Compare(b.StartDate.Time) },
		},
		table.Column[repair.Action]{
			Key:      "completionDate",
			Header:   loc.Sprintf("field.completion_date"),
			Sortable: true,
			Class:    "hidden md:table-cell",
			Value:    func(a repair.Action) string { return formatDateTime(a.CompletionDate, lang) },
			Less:     func(a, b repair.Action) int { return a.CompletionDate.Compare(b.CompletionDate.Time) },
		},
		table.Column[repair.Action]{
			Key:    "materials",
			Header: loc.Sprintf("field.materials"),
			Class:  "hidden lg:table-cell",
			Value:  func(a repair.Action) string { return strconv.Itoa(len(a.MaterialsUsed)) },
		},
		table.Column[repair.Action]{
			Key:      "createdAt",
			Header:   loc.Sprintf("field.created_at"),
			Sortable: true,
			Class:    "hidden xl:table-cell",
			Value:    func(a repair.Action) string { return formatDateTime(a.CreatedAt, lang) },
			Less:     func(a, b repair.Action) int { return a.CreatedAt.Compare(b.CreatedAt.Time) },
		},
	)

	return table.Spec[repair.Action]{
		ID:           tableID,
		Columns:      columns,
		ActionsLabel: loc.Sprintf("table.actions"),
		EmptyMessage: loc.Sprintf("actions.empty"),
		RowID:        func(a repair.Action) string { return a.ID },
		Replacements: func(a repair.Action) map[string]string {
			return map[string]string{"id": a.ID, "maintenanceId": parentID(a)}
		},
		Actions: []table.RowAction[repair.Action]{
			{Label: loc.Sprintf("action.view"), Href: routepath.Maintenances + "/{maintenanceId}/actions/{id}"},
			{Label: loc.Sprintf("action.edit"), Href: routepath.Maintenances + "/{maintenanceId}/actions/{id}/edit"},
		},
	}
}

func (h *Handler) handleActionsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavActions)
	q := table.ParseQuery(r.URL.Query(), actionsQueryConfig)
	outcome, _ := repair.ParseOutcomeStatus(q.Filter(filterOutcome))

	view := templates.ListPageView{
		Heading: listPageHeading(loc, "actions.title", "actions.subtitle", "", ""),
		Filters: templates.FilterBarView{
			TableURL:          routepath.ActionsTable,
			PageURL:           routepath.Actions,
			TableID:           actionsTableID,
			SearchName:        table.ParamSearch,
			Search:            q.Search,
			SearchPlaceholder: loc.Sprintf("actions.search_placeholder"),
			Selects: []templates.SelectView{
				{Name: filterOutcome, Label: loc.Sprintf("field.outcome"), Options: outcomeOptions(loc, outcome, loc.Sprintf("filter.outcome_any"))},
			},
			Hidden:      hiddenQuery(q),
			ExportURL:   q.URL(routepath.ActionsExport),
			ExportLabel: loc.Sprintf("action.export_csv"),
		},
		TableURL:       q.URL(routepath.ActionsTable),
		LoadingMessage: loc.Sprintf("table.loading"),
	}
	h.renderPage(w, r, page, loc.Sprintf("actions.title"), templates.ListPage(view))
}

func (h *Handler) handleActionsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	q := table.ParseQuery(r.URL.Query(), actionsQueryConfig)
	spec := actionTableSpec(loc, lang, actionsTableID, "", true)

	actions, err := h.api.ListActions(r.Context())
	if err != nil {
		renderTableError(w, r, loc, actionsTableID, "list actions", err)
		return
	}
	result := table.Apply(actions, spec, q, nil)
	links := table.Links{TableURL: routepath.ActionsTable, PageURL: routepath.Actions}
	replaceTableURL(w, r, actionsTableID, q, routepath.Actions)
	renderFragment(w, r, templates.Table(table.Render(spec, result, q, links, tableSummary(loc))))
}

// handleActionsExport writes every action matching the current filters as
// CSV, ignoring pagination.
func (h *Handler) handleActionsExport(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	q := table.ParseQuery(r.URL.Query(), actionsQueryConfig)
	spec := actionTableSpec(loc, lang, actionsTableID, "", true)

	actions, err := h.api.ListActions(r.Context())
	if err != nil {
		page := h.pageContext(lang, loc, r, templates.NavActions)
		h.renderError(w, r, page, "export actions", err)
		return
	}
	q.Page = 1
	q.PageSize = max(len(actions), 1)
	rows := table.Apply(actions, spec, q, nil).Rows

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+actionsCSVName+`"`)
	// UTF-8 byte order mark.
	_, _ = w.Write([]byte("\ufeff"))
	out := csv.NewWriter(w)
	_ = out.Write([]string{
		loc.Sprintf("field.id"),
		loc.Sprintf("field.maintenance"),
		loc.Sprintf("field.executed_by"),
		loc.Sprintf("field.outcome"),
		loc.Sprintf("field.start_date"),
		loc.Sprintf("field.completion_date"),
		loc.Sprintf("field.action_description"),
		loc.Sprintf("field.materials"),
		loc.Sprintf("field.created_at"),
	})
	for _, action := range rows {
		materials := make([]string, 0, len(action.MaterialsUsed))
		for _, material := range action.MaterialsUsed {
			materials = append(materials, strings.TrimSpace(material.ItemName+" "+formatQuantity(material)))
		}
		_ = out.Write([]string{
			action.ID,
			csvCell(action.MaintenanceTitle),
			csvCell(action.ExecutedBy),
			outcomeBadge(action.OutcomeStatus, loc).Label,
			formatDateTime(action.StartDate, lang),
			formatDateTime(action.CompletionDate, lang),
			csvCell(action.ActionDescription),
			csvCell(strings.Join(materials, "; ")),
			formatDateTime(action.CreatedAt, lang),
		})
	}
	out.Flush()
	if err := out.Error(); err != nil {
		log.Printf("export actions: %v", err)
	}
}

// csvCell neutralizes values a spreadsheet would evaluate as a formula.
func csvCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + value
	}
	return value
}

func (h *Handler) handleMaterialRow(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	renderFragment(w, r, templates.MaterialRow(materialRowView(loc, repair.NewMaterial{}, -1, nil)))
}

// loadAction fetches an action together with its maintenance.
func (h *Handler) loadAction(r *http.Request, maintenanceID, actionID string) (repair.Maintenance, repair.Action, error) {
	var (
		m      repair.Maintenance
		action repair.Action
	)
	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		var err error
		m, err = h.api.GetMaintenance(ctx, maintenanceID)
		return err
	})
	group.Go(func() error {
		var err error
		action, err = h.api.GetAction(ctx, maintenanceID, actionID)
		return err
	})
	if err := group.Wait(); err != nil {
		return repair.Maintenance{}, repair.Action{}, err
	}
	m.ID = firstNonEmpty(m.ID, maintenanceID)
	action.ID = firstNonEmpty(action.ID, actionID)
	return m, action, nil
}

func errMaintenanceClosed(m repair.Maintenance) error {
	return apperrors.New(apperrors.CodeFailedPrecondition, "maintenance "+m.ID+" is "+string(m.Status))
}

func (h *Handler) handleActionDetail(w http.ResponseWriter, r *http.Request, maintenanceID, actionID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	if !validID(maintenanceID) || !validID(actionID) {
		h.renderNotFound(w, r, page)
		return
	}
	m, action, err := h.loadAction(r, maintenanceID, actionID)
	if err != nil {
		h.renderError(w, r, page, "get action", err)
		return
	}

	title := loc.Sprintf("actions.detail_title", action.ExecutedBy)
	outcome := outcomeBadge(action.OutcomeStatus, loc)
	view := templates.DetailPageView{
		Heading: templates.PageHeading{
			Title: title,
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("maintenances.title"), URL: routepath.Maintenances},
				{Label: m.Title, URL: routepath.Maintenance(m.ID)},
				{Label: loc.Sprintf("nav.actions"), URL: routepath.MaintenanceActions(m.ID)},
				{Label: title},
			},
			Badges: []templates.BadgeView{outcome},
		},
		Sections: []templates.DetailSection{
			{
				Title: loc.Sprintf("actions.section_details"),
				Fields: []templates.DetailField{
					{Label: loc.Sprintf("field.maintenance"), Value: m.Title, Href: routepath.Maintenance(m.ID)},
					{Label: loc.Sprintf("field.executed_by"), Value: action.ExecutedBy},
					{Label: loc.Sprintf("field.outcome"), Badge: &outcome},
					{Label: loc.Sprintf("field.start_date"), Value: formatDateTime(action.StartDate, lang)},
					{Label: loc.Sprintf("field.completion_date"), Value: formatDateTime(action.CompletionDate, lang)},
					{Label: loc.Sprintf("field.created_at"), Value: formatDateTime(action.CreatedAt, lang)},
					{Label: loc.Sprintf("field.action_description"), Value: action.ActionDescription, Multiline: true},
				},
			},
			materialsSection(loc, action.MaterialsUsed),
		},
	}
	if m.AcceptsActions() {
		view.Buttons = []templates.ButtonView{{Label: loc.Sprintf("action.edit"), Href: routepath.MaintenanceActionEdit(m.ID, action.ID), Primary: true}}
	} else {
		view.Notice = templates.AlertView{Kind: templates.AlertInfo, Message: loc.Sprintf("actions.locked_notice")}
	}
	h.renderPage(w, r, page, title, templates.DetailPage(view))
}

func materialsSection(loc *message.Printer, materials []repair.Material) templates.DetailSection {
	section := templates.DetailSection{Title: loc.Sprintf("field.materials")}
	if len(materials) == 0 {
		section.Fields = []templates.DetailField{{Label: loc.Sprintf("actions.no_materials")}}
		return section
	}
	for _, material := range materials {
		section.Fields = append(section.Fields, templates.DetailField{Label: material.ItemName, Value: formatQuantity(material)})
	}
	return section
}

// actionFormValues is the submitted or prefilled state of an action form.
type actionFormValues struct {
	ExecutedBy        string
	StartDate         string
	CompletionDate    string
	ActionDescription string
	OutcomeStatus     repair.OutcomeStatus
	Materials         []repair.NewMaterial
}

func actionFormFromAction(action repair.NewAction) actionFormValues {
	return actionFormValues{
		ExecutedBy:        action.ExecutedBy,
		StartDate:         dateTimeInput(action.StartDate),
		CompletionDate:    dateTimeInput(action.CompletionDate),
		ActionDescription: action.ActionDescription,
		OutcomeStatus:     action.OutcomeStatus,
		Materials:         action.MaterialsUsed,
	}
}

// actionFromRequest reads the action form. Errors cover unparseable dates
// and quantities; the rest is left to NewAction.Validate.
func (h *Handler) actionFromRequest(r *http.Request) (repair.NewAction, actionFormValues, repair.FieldErrors) {
	outcome, err := repair.ParseOutcomeStatus(r.PostForm.Get("outcomeStatus"))
	if err != nil {
		outcome = repair.OutcomeStatus(strings.TrimSpace(r.PostForm.Get("outcomeStatus")))
	}
	materials, errs := h.materialRowsFromForm(r)
	values := actionFormValues{
		ExecutedBy:        h.sanitize(r.PostForm.Get("executedBy")),
		StartDate:         strings.TrimSpace(r.PostForm.Get("startDate")),
		CompletionDate:    strings.TrimSpace(r.PostForm.Get("completionDate")),
		ActionDescription: h.sanitize(r.PostForm.Get("actionDescription")),
		OutcomeStatus:     outcome,
		Materials:         materials,
	}
	start, ok := formTimestamp(values.StartDate)
	if !ok {
		errs["startDate"] = repair.FieldError{Key: repair.KeyInvalidDate}
	}
	completion, ok := formTimestamp(values.CompletionDate)
	if !ok {
		errs["completionDate"] = repair.FieldError{Key: repair.KeyInvalidDate}
	}
	input := repair.NewAction{
		ExecutedBy:        values.ExecutedBy,
		StartDate:         start,
		CompletionDate:    completion,
		ActionDescription: values.ActionDescription,
		MaterialsUsed:     materials,
		OutcomeStatus:     outcome,
	}
	return input, values, mergeFieldErrors(errs, input.Validate())
}

// actionForm builds the create form, or the edit form when actionID is set.
func actionForm(loc *message.Printer, m repair.Maintenance, actionID string, values actionFormValues, errs fieldErrors, alert templates.AlertView) templates.FormView {
	form := templates.FormView{
		Error:       alert,
		CancelLabel: loc.Sprintf("action.cancel"),
		Fields: []templates.FieldView{
			{
				Name: "executedBy", Label: loc.Sprintf("field.executed_by"), Value: values.ExecutedBy,
				Placeholder: loc.Sprintf("placeholder.executed_by"),
				Error:       errs.get("executedBy"), Required: true, MaxLength: 100,
			},
			{
				Name: "outcomeStatus", Label: loc.Sprintf("field.outcome"), Kind: templates.FieldSelect,
				Value: string(values.OutcomeStatus), Options: outcomeOptions(loc, values.OutcomeStatus, loc.Sprintf("placeholder.select")),
				Error: errs.get("outcomeStatus"), Required: true,
			},
			{
				Name: "startDate", Label: loc.Sprintf("field.start_date"), Kind: templates.FieldDateTime,
				Value: values.StartDate, Error: errs.get("startDate"), Required: true,
			},
			{
				Name: "completionDate", Label: loc.Sprintf("field.completion_date"), Kind: templates.FieldDateTime,
				Value: values.CompletionDate, Error: errs.get("completionDate"), Required: true,
			},
			{
				Name: "actionDescription", Label: loc.Sprintf("field.action_description"), Kind: templates.FieldTextarea,
				Value: values.ActionDescription, Placeholder: loc.Sprintf("placeholder.action_description"),
				Error: errs.get("actionDescription"), Required: true, MaxLength: 2000, Rows: 6,
			},
		},
		Materials: &templates.MaterialsView{
			Title:        loc.Sprintf("field.materials"),
			AddLabel:     loc.Sprintf("action.add_material"),
			AddURL:       routepath.ActionsMaterialRow,
			EmptyMessage: loc.Sprintf("actions.materials_hint"),
		},
	}
	for i, material := range values.Materials {
		form.Materials.Rows = append(form.Materials.Rows, materialRowView(loc, material, i, errs))
	}

	crumbs := []templates.Breadcrumb{
		{Label: loc.Sprintf("maintenances.title"), URL: routepath.Maintenances},
		{Label: m.Title, URL: routepath.Maintenance(m.ID)},
	}
	if actionID == "" {
		form.Heading = templates.PageHeading{Title: loc.Sprintf("actions.new_title"), Subtitle: m.Title}
		form.Action = routepath.MaintenanceActionNew(m.ID)
		form.SubmitLabel = loc.Sprintf("action.create")
		form.CancelURL = routepath.MaintenanceActions(m.ID)
	} else {
		form.Heading = templates.PageHeading{Title: loc.Sprintf("actions.edit_title"), Subtitle: m.Title}
		form.Action = routepath.MaintenanceActionEdit(m.ID, actionID)
		form.SubmitLabel = loc.Sprintf("action.save")
		form.CancelURL = routepath.MaintenanceAction(m.ID, actionID)
	}
	form.Heading.Breadcrumbs = append(crumbs, templates.Breadcrumb{Label: form.Heading.Title})
	return form
}

func (h *Handler) handleActionNew(w http.ResponseWriter, r *http.Request, maintenanceID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	if !validID(maintenanceID) {
		h.renderNotFound(w, r, page)
		return
	}
	m, err := h.api.GetMaintenance(r.Context(), maintenanceID)
	if err == nil && !m.AcceptsActions() {
		err = errMaintenanceClosed(m)
	}
	if err != nil {
		h.renderError(w, r, page, "get maintenance", err)
		return
	}
	form := actionForm(loc, m, "", actionFormValues{}, nil, templates.AlertView{})
	h.renderPage(w, r, page, form.Heading.Title, templates.Form(form))
}

func (h *Handler) handleActionCreate(w http.ResponseWriter, r *http.Request, maintenanceID string) {
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
	m, err := h.api.GetMaintenance(r.Context(), maintenanceID)
	if err == nil && !m.AcceptsActions() {
		err = errMaintenanceClosed(m)
	}
	if err != nil {
		h.renderError(w, r, page, "get maintenance", err)
		return
	}

	input, values, errs := h.actionFromRequest(r)
	if len(errs) > 0 {
		form := actionForm(loc, m, "", values, localizeFieldErrors(loc, errs), formErrorAlert(loc))
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), http.StatusUnprocessableEntity)
		return
	}
	created, err := h.api.CreateAction(r.Context(), m.ID, input)
	if err != nil {
		form := actionForm(loc, m, "", values, nil, errorAlert(loc, err))
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), apperrors.HTTPStatus(err))
		return
	}
	h.recordActivity(r.Context(), storage.Activity{
		Kind:     storage.KindActionCreated,
		EntityID: created.ID,
		ParentID: m.ID,
		Summary:  m.Title + ": " + input.ExecutedBy,
	})
	target := routepath.MaintenanceActions(m.ID)
	if created.ID != "" {
		target = routepath.MaintenanceAction(m.ID, created.ID)
	}
	htmx.Redirect(w, r, routepath.WithMessage(target, flashActionCreated))
}

func (h *Handler) handleActionEdit(w http.ResponseWriter, r *http.Request, maintenanceID, actionID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	if !validID(maintenanceID) || !validID(actionID) {
		h.renderNotFound(w, r, page)
		return
	}
	m, action, err := h.loadAction(r, maintenanceID, actionID)
	if err == nil && !m.AcceptsActions() {
		err = errMaintenanceClosed(m)
	}
	if err != nil {
		h.renderError(w, r, page, "get action", err)
		return
	}
	form := actionForm(loc, m, action.ID, actionFormFromAction(repair.ActionFrom(action)), nil, templates.AlertView{})
	h.renderPage(w, r, page, form.Heading.Title, templates.Form(form))
}

func (h *Handler) handleActionUpdate(w http.ResponseWriter, r *http.Request, maintenanceID, actionID string) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	page := h.pageContext(lang, loc, r, templates.NavMaintenances)
	if !validID(maintenanceID) || !validID(actionID) {
		h.renderNotFound(w, r, page)
		return
	}
	if err := parseForm(w, r); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_form"), http.StatusBadRequest)
		return
	}
	m, action, err := h.loadAction(r, maintenanceID, actionID)
	if err == nil && !m.AcceptsActions() {
		err = errMaintenanceClosed(m)
	}
	if err != nil {
		h.renderError(w, r, page, "get action", err)
		return
	}

	input, values, errs := h.actionFromRequest(r)
	if len(errs) > 0 {
		form := actionForm(loc, m, action.ID, values, localizeFieldErrors(loc, errs), formErrorAlert(loc))
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), http.StatusUnprocessableEntity)
		return
	}
	if _, err := h.api.UpdateAction(r.Context(), m.ID, action.ID, input); err != nil {
		form := actionForm(loc, m, action.ID, values, nil, errorAlert(loc, err))
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), apperrors.HTTPStatus(err))
		return
	}
	h.recordActivity(r.Context(), storage.Activity{
		Kind:     storage.KindActionUpdated,
		EntityID: action.ID,
		ParentID: m.ID,
		Summary:  m.Title + ": " + input.ExecutedBy,
	})
	htmx.Redirect(w, r, routepath.WithMessage(routepath.MaintenanceAction(m.ID, action.ID), flashActionUpdated))
}

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
	pledgesTableID = "pledges-table"
	filterType     = "type"
)

var pledgesQueryConfig = table.QueryConfig{
	DefaultOrderBy: "createdAt desc",
	Sortable:       []string{"volunteerName", "type", "status", "createdAt"},
	Filters:        []string{filterStatus, filterType},
}

// pledgeTableSpec describes a pledges table.
func pledgeTableSpec(loc *message.Printer, lang string, tableID string, withMaintenance bool) table.Spec[repair.Pledge] {
	columns := []table.Column[repair.Pledge]{
		{
			Key:        "volunteerName",
			Header:     loc.Sprintf("field.volunteer_name"),
			Sortable:   true,
			Searchable: true,
			Value:      func(p repair.Pledge) string { return p.VolunteerName },
			Cell: func(p repair.Pledge) templates.TableCellView {
				return templates.TableCellView{Text: p.VolunteerName, Subtext: p.VolunteerContact, Href: routepath.Pledge(p.ID)}
			},
		},
		{
			Key:        "description",
			Searchable: true,
			Hidden:     true,
			Value:      func(p repair.Pledge) string { return p.Description },
		},
		{
			Key:      "type",
			Header:   loc.Sprintf("field.pledge_type"),
			Sortable: true,
			Value:    func(p repair.Pledge) string { return string(p.Type) },
			Cell: func(p repair.Pledge) templates.TableCellView {
				badge := pledgeTypeBadge(p.Type, loc)
				return templates.TableCellView{Badge: &badge}
			},
		},
		{
			Key:      "status",
			Header:   loc.Sprintf("field.status"),
			Sortable: true,
			Value:    func(p repair.Pledge) string { return string(p.Status) },
			Cell: func(p repair.Pledge) templates.TableCellView {
				badge := pledgeStatusBadge(p.Status, loc)
				return templates.TableCellView{Badge: &badge}
			},
		},
	}
	if withMaintenance {
		columns = append(columns, table.Column[repair.Pledge]{
			Key:        "maintenanceTitle",
			Header:     loc.Sprintf("field.maintenance"),
			Searchable: true,
			Class:      "hidden md:table-cell",
			Value:      func(p repair.Pledge) string { return p.MaintenanceTitle },
			Cell: func(p repair.Pledge) templates.TableCellView {
				if p.MaintenanceID == "" {
					return templates.TableCellView{Text: p.MaintenanceTitle}
				}
				return templates.TableCellView{Text: p.MaintenanceTitle, Href: routepath.Maintenance(p.MaintenanceID)}
			},
		})
	}
	columns = append(columns, table.Column[repair.Pledge]{
		Key:      "createdAt",
		Header:   loc.Sprintf("field.created_at"),
		Sortable: true,
		Class:    "hidden lg:table-cell",
		Value:    func(p repair.Pledge) string { return formatDateTime(p.CreatedAt, lang) },
		Less:     func(a, b repair.Pledge) int { return a.CreatedAt.Compare(b.CreatedAt.Time) },
	})

	return table.Spec[repair.Pledge]{
		ID:           tableID,
		Columns:      columns,
		ActionsLabel: loc.Sprintf("table.actions"),
		EmptyMessage: loc.Sprintf("pledges.empty"),
		RowID:        func(p repair.Pledge) string { return p.ID },
		Actions: []table.RowAction[repair.Pledge]{
			{Label: loc.Sprintf("action.view"), Href: routepath.Pledges + "/{id}"},
			{
				Label:   loc.Sprintf("action.edit"),
				Href:    routepath.Pledges + "/{id}/edit",
				Visible: func(p repair.Pledge) bool { return !p.Status.Terminal() },
			},
		},
	}
}

func pledgeStatusFilterOptions(loc *message.Printer, selected repair.PledgeStatus) []templates.OptionView {
	options := []templates.OptionView{{Value: "", Label: loc.Sprintf("filter.status_any")}}
	for _, status := range repair.PledgeStatuses {
		options = append(options, templates.OptionView{
			Value:    string(status),
			Label:    pledgeStatusBadge(status, loc).Label,
			Selected: status == selected,
		})
	}
	return options
}

func (h *Handler) handlePledgesPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavPledges)
	q := table.ParseQuery(r.URL.Query(), pledgesQueryConfig)
	status, _ := repair.ParsePledgeStatus(q.Filter(filterStatus))
	pledgeType, _ := repair.ParsePledgeType(q.Filter(filterType))

	view := templates.ListPageView{
		Heading: listPageHeading(loc, "pledges.title", "pledges.subtitle", routepath.PledgesNew, "action.new_pledge"),
		Filters: templates.FilterBarView{
			TableURL:          routepath.PledgesTable,
			PageURL:           routepath.Pledges,
			TableID:           pledgesTableID,
			SearchName:        table.ParamSearch,
			Search:            q.Search,
			SearchPlaceholder: loc.Sprintf("pledges.search_placeholder"),
			Selects: []templates.SelectView{
				{Name: filterStatus, Label: loc.Sprintf("field.status"), Options: pledgeStatusFilterOptions(loc, status)},
				{Name: filterType, Label: loc.Sprintf("field.pledge_type"), Options: pledgeTypeOptions(loc, pledgeType, loc.Sprintf("filter.type_any"))},
			},
			Hidden: hiddenQuery(q),
		},
		TableURL:       q.URL(routepath.PledgesTable),
		LoadingMessage: loc.Sprintf("table.loading"),
	}
	h.renderPage(w, r, page, loc.Sprintf("pledges.title"), templates.ListPage(view))
}

func (h *Handler) handlePledgesTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	q := table.ParseQuery(r.URL.Query(), pledgesQueryConfig)
	spec := pledgeTableSpec(loc, lang, pledgesTableID, true)

	result, err := h.listPledges(r.Context(), q)
	if err != nil {
		renderTableError(w, r, loc, pledgesTableID, "list pledges", err)
		return
	}
	links := table.Links{TableURL: routepath.PledgesTable, PageURL: routepath.Pledges}
	replaceTableURL(w, r, pledgesTableID, q, routepath.Pledges)
	renderFragment(w, r, templates.Table(table.Render(spec, result, q, links, tableSummary(loc))))
}

// listPledges loads one page of pledges filtered, sorted and paged by the API.
func (h *Handler) listPledges(ctx context.Context, q table.Query) (table.Result[repair.Pledge], error) {
	status, _ := repair.ParsePledgeStatus(q.Filter(filterStatus))
	pledgeType, _ := repair.ParsePledgeType(q.Filter(filterType))
	filter := restclient.PledgeFilter{
		Status: status,
		Type:   pledgeType,
		Search: q.Search,
		PageRequest: restclient.PageRequest{
			Page: q.Page - 1,
			Size: q.PageSize,
			Sort: []string{restclient.SortParam(q.SortKey, q.SortDesc)},
		},
	}
	page, err := h.api.ListPledges(ctx, filter)
	if err != nil {
		return table.Result[repair.Pledge]{}, err
	}
	if page.TotalPages > 0 && filter.Page >= page.TotalPages {
		filter.Page = page.TotalPages - 1
		if page, err = h.api.ListPledges(ctx, filter); err != nil {
			return table.Result[repair.Pledge]{}, err
		}
	}
	return table.Result[repair.Pledge]{
		Rows: page.Content,
		Page: table.NewPage(page.Number+1, q.PageSize, page.TotalElements),
	}, nil
}

func (h *Handler) handlePledgeDetail(w http.ResponseWriter, r *http.Request, pledgeID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavPledges)
	if !validID(pledgeID) {
		h.renderNotFound(w, r, page)
		return
	}
	pledge, err := h.api.GetPledge(r.Context(), pledgeID)
	if err != nil {
		h.renderError(w, r, page, "get pledge", err)
		return
	}
	pledge.ID = firstNonEmpty(pledge.ID, pledgeID)

	status := pledgeStatusBadge(pledge.Status, loc)
	pledgeType := pledgeTypeBadge(pledge.Type, loc)
	maintenance := templates.DetailField{Label: loc.Sprintf("field.maintenance"), Value: pledge.MaintenanceTitle}
	if pledge.MaintenanceID != "" {
		maintenance.Value = firstNonEmpty(pledge.MaintenanceTitle, pledge.MaintenanceID)
		maintenance.Href = routepath.Maintenance(pledge.MaintenanceID)
	}
	view := templates.DetailPageView{
		Heading: templates.PageHeading{
			Title: pledge.VolunteerName,
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("nav.dashboard"), URL: routepath.Root},
				{Label: loc.Sprintf("pledges.title"), URL: routepath.Pledges},
				{Label: pledge.VolunteerName},
			},
			Badges: []templates.BadgeView{status, pledgeType},
		},
		Sections: []templates.DetailSection{{
			Title: loc.Sprintf("pledges.section_details"),
			Fields: []templates.DetailField{
				{Label: loc.Sprintf("field.volunteer_name"), Value: pledge.VolunteerName},
				{Label: loc.Sprintf("field.volunteer_contact"), Value: pledge.VolunteerContact},
				{Label: loc.Sprintf("field.pledge_type"), Badge: &pledgeType},
				{Label: loc.Sprintf("field.status"), Badge: &status},
				maintenance,
				{Label: loc.Sprintf("field.created_at"), Value: formatDateTime(pledge.CreatedAt, lang)},
				{Label: loc.Sprintf("field.updated_at"), Value: formatDateTime(pledge.UpdatedAt, lang)},
				{Label: loc.Sprintf("field.description"), Value: pledge.Description, Multiline: true},
			},
		}},
	}
	if pledge.Status.Terminal() {
		view.Notice = templates.AlertView{Kind: templates.AlertInfo, Message: loc.Sprintf("pledges.terminal_notice")}
	} else {
		view.Buttons = []templates.ButtonView{{Label: loc.Sprintf("action.edit"), Href: routepath.PledgeEdit(pledge.ID), Primary: true}}
	}
	h.renderPage(w, r, page, pledge.VolunteerName, templates.DetailPage(view))
}

// pledgeFormValues is the submitted or prefilled state of a pledge form.
type pledgeFormValues struct {
	VolunteerName    string
	VolunteerContact string
	Description      string
	Type             repair.PledgeType
	Status           repair.PledgeStatus
	MaintenanceID    string
}

func (h *Handler) pledgeFormFromRequest(r *http.Request) pledgeFormValues {
	pledgeType, err := repair.ParsePledgeType(r.PostForm.Get("type"))
	if err != nil {
		pledgeType = repair.PledgeType(strings.TrimSpace(r.PostForm.Get("type")))
	}
	status, err := repair.ParsePledgeStatus(r.PostForm.Get("status"))
	if err != nil {
		status = repair.PledgeStatus(strings.TrimSpace(r.PostForm.Get("status")))
	}
	return pledgeFormValues{
		VolunteerName:    h.sanitize(r.PostForm.Get("volunteerName")),
		VolunteerContact: h.sanitize(r.PostForm.Get("volunteerContact")),
		Description:      h.sanitize(r.PostForm.Get("description")),
		Type:             pledgeType,
		Status:           status,
		MaintenanceID:    strings.TrimSpace(r.PostForm.Get("maintenanceId")),
	}
}

// activeMaintenanceOptions lists the maintenances a pledge may be offered to.
func (h *Handler) activeMaintenanceOptions(ctx context.Context, loc *message.Printer, selected string) ([]templates.OptionView, error) {
	maintenances, err := h.api.ListAllMaintenances(ctx, restclient.MaintenanceFilter{})
	if err != nil {
		return nil, err
	}
	options := []templates.OptionView{{Value: "", Label: loc.Sprintf("placeholder.select_maintenance")}}
	for _, m := range maintenances {
		if !m.Status.Active() {
			continue
		}
		options = append(options, templates.OptionView{Value: m.ID, Label: m.Title, Selected: m.ID == selected})
	}
	return options, nil
}

// pledgeForm builds the create form, or the edit form when current is set.
// maintenances lists the selectable maintenances on create.
func pledgeForm(loc *message.Printer, values pledgeFormValues, errs fieldErrors, alert templates.AlertView, current *repair.Pledge, maintenances []templates.OptionView) templates.FormView {
	form := templates.FormView{
		Error:       alert,
		CancelLabel: loc.Sprintf("action.cancel"),
	}
	if current == nil {
		form.Heading = templates.PageHeading{
			Title: loc.Sprintf("pledges.new_title"),
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("pledges.title"), URL: routepath.Pledges},
				{Label: loc.Sprintf("pledges.new_title")},
			},
		}
		form.Action = routepath.PledgesNew
		form.SubmitLabel = loc.Sprintf("action.create")
		form.CancelURL = routepath.Pledges
		if values.MaintenanceID != "" {
			form.CancelURL = routepath.MaintenancePledges(values.MaintenanceID)
		}
		form.Fields = append(form.Fields, templates.FieldView{
			Name: "maintenanceId", Label: loc.Sprintf("field.maintenance"), Kind: templates.FieldSelect,
			Value: values.MaintenanceID, Options: maintenances,
			Error: errs.get("maintenanceId"), Required: true,
		})
	} else {
		form.Heading = templates.PageHeading{
			Title: loc.Sprintf("pledges.edit_title"),
			Breadcrumbs: []templates.Breadcrumb{
				{Label: loc.Sprintf("pledges.title"), URL: routepath.Pledges},
				{Label: current.VolunteerName, URL: routepath.Pledge(current.ID)},
				{Label: loc.Sprintf("pledges.edit_title")},
			},
		}
		form.Action = routepath.PledgeEdit(current.ID)
		form.SubmitLabel = loc.Sprintf("action.save")
		form.CancelURL = routepath.Pledge(current.ID)
	}
	form.Fields = append(form.Fields,
		templates.FieldView{
			Name: "volunteerName", Label: loc.Sprintf("field.volunteer_name"), Value: values.VolunteerName,
			Placeholder: loc.Sprintf("placeholder.volunteer_name"),
			Error:       errs.get("volunteerName"), Required: true, MaxLength: 100,
		},
		templates.FieldView{
			Name: "volunteerContact", Label: loc.Sprintf("field.volunteer_contact"), Value: values.VolunteerContact,
			Placeholder: loc.Sprintf("placeholder.volunteer_contact"),
			Error:       errs.get("volunteerContact"), Required: true, MaxLength: 30,
		},
		templates.FieldView{
			Name: "type", Label: loc.Sprintf("field.pledge_type"), Kind: templates.FieldSelect,
			Value: string(values.Type), Options: pledgeTypeOptions(loc, values.Type, loc.Sprintf("placeholder.select")),
			Error: errs.get("type"), Required: true,
		},
	)
	if current != nil {
		form.Fields = append(form.Fields, templates.FieldView{
			Name: "status", Label: loc.Sprintf("field.status"), Kind: templates.FieldSelect,
			Value: string(values.Status), Options: pledgeTransitionOptions(loc, current.Status, values.Status),
			Error: errs.get("status"), Required: true,
		})
	}
	form.Fields = append(form.Fields, templates.FieldView{
		Name: "description", Label: loc.Sprintf("field.description"), Kind: templates.FieldTextarea,
		Value: values.Description, Placeholder: loc.Sprintf("placeholder.pledge_description"),
		Error: errs.get("description"), Required: true, MaxLength: 3000, Rows: 5,
	})
	return form
}

func (h *Handler) handlePledgeNew(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavPledges)
	values := pledgeFormValues{MaintenanceID: strings.TrimSpace(r.URL.Query().Get("maintenanceId"))}
	if values.MaintenanceID != "" && !validID(values.MaintenanceID) {
		values.MaintenanceID = ""
	}
	options, err := h.activeMaintenanceOptions(r.Context(), loc, values.MaintenanceID)
	if err != nil {
		h.renderError(w, r, page, "list maintenances", err)
		return
	}
	form := pledgeForm(loc, values, nil, templates.AlertView{}, nil, options)
	h.renderPage(w, r, page, form.Heading.Title, templates.Form(form))
}

func (h *Handler) handlePledgeCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := parseForm(w, r); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_form"), http.StatusBadRequest)
		return
	}
	page := h.pageContext(lang, loc, r, templates.NavPledges)
	values := h.pledgeFormFromRequest(r)
	input := repair.NewPledge{
		VolunteerName:    values.VolunteerName,
		VolunteerContact: values.VolunteerContact,
		Description:      values.Description,
		Type:             values.Type,
		MaintenanceID:    values.MaintenanceID,
	}
	errs := input.Validate()
	if values.MaintenanceID != "" && !validID(values.MaintenanceID) {
		errs["maintenanceId"] = repair.FieldError{Key: repair.KeyInvalidChoice}
	}

	renderForm := func(fieldErrs fieldErrors, alert templates.AlertView, status int) {
		options, err := h.activeMaintenanceOptions(r.Context(), loc, values.MaintenanceID)
		if err != nil {
			h.renderError(w, r, page, "list maintenances", err)
			return
		}
		form := pledgeForm(loc, values, fieldErrs, alert, nil, options)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), status)
	}
	if len(errs) > 0 {
		renderForm(localizeFieldErrors(loc, errs), formErrorAlert(loc), http.StatusUnprocessableEntity)
		return
	}
	created, err := h.api.CreatePledge(r.Context(), input)
	if err != nil {
		renderForm(nil, errorAlert(loc, err), apperrors.HTTPStatus(err))
		return
	}
	h.recordActivity(r.Context(), storage.Activity{
		Kind:     storage.KindPledgeCreated,
		EntityID: created.ID,
		ParentID: input.MaintenanceID,
		Summary:  input.VolunteerName,
	})
	target := routepath.MaintenancePledges(input.MaintenanceID)
	if created.ID != "" {
		target = routepath.Pledge(created.ID)
	}
	htmx.Redirect(w, r, routepath.WithMessage(target, flashPledgeCreated))
}

// loadEditablePledge fetches a pledge for editing. Rejected, completed and
// canceled pledges cannot be edited.
func (h *Handler) loadEditablePledge(ctx context.Context, pledgeID string) (repair.Pledge, error) {
	pledge, err := h.api.GetPledge(ctx, pledgeID)
	if err != nil {
		return repair.Pledge{}, err
	}
	pledge.ID = firstNonEmpty(pledge.ID, pledgeID)
	if pledge.Status.Terminal() {
		return repair.Pledge{}, apperrors.New(apperrors.CodeFailedPrecondition, "pledge is "+string(pledge.Status))
	}
	return pledge, nil
}

func (h *Handler) handlePledgeEdit(w http.ResponseWriter, r *http.Request, pledgeID string) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavPledges)
	if !validID(pledgeID) {
		h.renderNotFound(w, r, page)
		return
	}
	pledge, err := h.loadEditablePledge(r.Context(), pledgeID)
	if err != nil {
		h.renderError(w, r, page, "get pledge", err)
		return
	}
	values := pledgeFormValues{
		VolunteerName:    pledge.VolunteerName,
		VolunteerContact: pledge.VolunteerContact,
		Description:      pledge.Description,
		Type:             pledge.Type,
		Status:           pledge.Status,
		MaintenanceID:    pledge.MaintenanceID,
	}
	form := pledgeForm(loc, values, nil, templates.AlertView{}, &pledge, nil)
	h.renderPage(w, r, page, form.Heading.Title, templates.Form(form))
}

func (h *Handler) handlePledgeUpdate(w http.ResponseWriter, r *http.Request, pledgeID string) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	page := h.pageContext(lang, loc, r, templates.NavPledges)
	if !validID(pledgeID) {
		h.renderNotFound(w, r, page)
		return
	}
	if err := parseForm(w, r); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_form"), http.StatusBadRequest)
		return
	}
	pledge, err := h.loadEditablePledge(r.Context(), pledgeID)
	if err != nil {
		h.renderError(w, r, page, "get pledge", err)
		return
	}

	values := h.pledgeFormFromRequest(r)
	update := repair.DiffPledge(pledge, repair.PledgeEdit{
		VolunteerName:    values.VolunteerName,
		VolunteerContact: values.VolunteerContact,
		Description:      values.Description,
		Type:             values.Type,
		Status:           values.Status,
	})
	if errs := update.Validate(pledge.Status); len(errs) > 0 {
		form := pledgeForm(loc, values, localizeFieldErrors(loc, errs), formErrorAlert(loc), &pledge, nil)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), http.StatusUnprocessableEntity)
		return
	}
	if update.Empty() {
		alert := errorAlert(loc, apperrors.New(apperrors.CodePledgeNothingToSave, "nothing to save"))
		form := pledgeForm(loc, values, nil, alert, &pledge, nil)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), http.StatusUnprocessableEntity)
		return
	}
	updated, err := h.api.UpdatePledge(r.Context(), pledge.ID, update)
	if err != nil {
		form := pledgeForm(loc, values, nil, errorAlert(loc, err), &pledge, nil)
		h.renderPageStatus(w, r, page, form.Heading.Title, templates.Form(form), apperrors.HTTPStatus(err))
		return
	}
	h.recordActivity(r.Context(), storage.Activity{
		Kind:     storage.KindPledgeUpdated,
		EntityID: pledge.ID,
		ParentID: pledge.MaintenanceID,
		Summary:  firstNonEmpty(updated.VolunteerName, values.VolunteerName, pledge.VolunteerName),
	})
	htmx.Redirect(w, r, routepath.WithMessage(routepath.Pledge(pledge.ID), flashPledgeUpdated))
}

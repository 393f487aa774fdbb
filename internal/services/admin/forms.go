package admin

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/conectareparo/internal/repair"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// Form field names posted by the action form's material rows.
const (
	fieldMaterialItemName = "materialItemName"
	fieldMaterialQuantity = "materialQuantity"
	fieldMaterialUnit     = "materialUnit"
)

// maxFormBytes bounds a posted form.
const maxFormBytes = 1 << 20

// fieldErrors holds localized messages keyed by field name.
type fieldErrors map[string]string

func localizeFieldErrors(loc *message.Printer, errs repair.FieldErrors) fieldErrors {
	out := make(fieldErrors, len(errs))
	for field, fieldErr := range errs {
		out[field] = loc.Sprintf(fieldErr.Key, fieldErr.Args...)
	}
	return out
}

func (e fieldErrors) get(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// mergeFieldErrors copies src into dst, keeping the first error per field.
func mergeFieldErrors(dst, src repair.FieldErrors) repair.FieldErrors {
	if dst == nil {
		dst = repair.FieldErrors{}
	}
	for field, fieldErr := range src {
		if _, exists := dst[field]; !exists {
			dst[field] = fieldErr
		}
	}
	return dst
}

// parseForm reads a url-encoded body capped at maxFormBytes.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}

// formTimestamp parses a date or datetime-local value. A blank value is the
// zero timestamp; a malformed one reports invalid.
func formTimestamp(raw string) (repair.Timestamp, bool) {
	ts, err := repair.ParseTimestamp(raw)
	if err != nil {
		return repair.Timestamp{}, false
	}
	return ts, true
}

// normalizeQuantity accepts a decimal comma and renders the shortest
// decimal form. Unparseable input is returned trimmed for validation to
// reject.
func normalizeQuantity(raw string) (json.Number, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return json.Number(raw), false
	}
	return json.Number(strconv.FormatFloat(value, 'f', -1, 64)), true
}

// materialRowsFromForm reads the parallel material arrays. Rows with every
// field blank are dropped. Quantities that are not numbers are reported
// against the row index they end up at.
func (h *Handler) materialRowsFromForm(r *http.Request) ([]repair.NewMaterial, repair.FieldErrors) {
	names := r.PostForm[fieldMaterialItemName]
	quantities := r.PostForm[fieldMaterialQuantity]
	units := r.PostForm[fieldMaterialUnit]
	count := max(len(names), len(quantities), len(units))

	materials := make([]repair.NewMaterial, 0, count)
	errs := repair.FieldErrors{}
	for i := 0; i < count; i++ {
		quantity, ok := normalizeQuantity(valueAt(quantities, i))
		material := repair.NewMaterial{
			ItemName:      h.sanitize(valueAt(names, i)),
			Quantity:      quantity,
			UnitOfMeasure: h.sanitize(valueAt(units, i)),
		}
		if material.Blank() {
			continue
		}
		if !ok {
			errs[repair.MaterialField(len(materials), "quantity")] = repair.FieldError{Key: repair.KeyPositive}
		}
		materials = append(materials, material)
	}
	return materials, errs
}

func valueAt(values []string, index int) string {
	if index < len(values) {
		return values[index]
	}
	return ""
}

// materialRowView builds one material row, optionally prefilled.
func materialRowView(loc *message.Printer, material repair.NewMaterial, index int, errs fieldErrors) templates.MaterialRowView {
	return templates.MaterialRowView{
		ItemName: templates.FieldView{
			Name:        fieldMaterialItemName,
			Label:       loc.Sprintf("field.material_item_name"),
			Value:       material.ItemName,
			Placeholder: loc.Sprintf("placeholder.material_item_name"),
			Error:       errs.get(repair.MaterialField(index, "itemName")),
			MaxLength:   100,
		},
		Quantity: templates.FieldView{
			Name:  fieldMaterialQuantity,
			Label: loc.Sprintf("field.material_quantity"),
			Kind:  templates.FieldText,
			Value: material.Quantity.String(),
			Error: errs.get(repair.MaterialField(index, "quantity")),
		},
		Unit: templates.FieldView{
			Name:        fieldMaterialUnit,
			Label:       loc.Sprintf("field.material_unit"),
			Value:       material.UnitOfMeasure,
			Placeholder: loc.Sprintf("placeholder.material_unit"),
			Error:       errs.get(repair.MaterialField(index, "unitOfMeasure")),
			MaxLength:   30,
		},
		RemoveLabel: loc.Sprintf("action.remove_material"),
	}
}

func categoryOptions(loc *message.Printer, selected repair.Category, placeholder string) []templates.OptionView {
	options := make([]templates.OptionView, 0, len(repair.Categories)+1)
	if placeholder != "" {
		options = append(options, templates.OptionView{Value: "", Label: placeholder})
	}
	for _, category := range repair.Categories {
		options = append(options, templates.OptionView{
			Value:    string(category),
			Label:    categoryLabel(category, loc),
			Selected: category == selected,
		})
	}
	return options
}

// maintenanceTransitionOptions lists the statuses current may move to,
// current included.
func maintenanceTransitionOptions(loc *message.Printer, current repair.MaintenanceStatus, selected repair.MaintenanceStatus) []templates.OptionView {
	options := make([]templates.OptionView, 0, len(repair.MaintenanceStatuses))
	for _, status := range repair.MaintenanceStatuses {
		if !current.CanTransition(status) {
			continue
		}
		options = append(options, templates.OptionView{
			Value:    string(status),
			Label:    maintenanceStatusBadge(status, loc).Label,
			Selected: status == selected,
		})
	}
	return options
}

func pledgeTransitionOptions(loc *message.Printer, current repair.PledgeStatus, selected repair.PledgeStatus) []templates.OptionView {
	options := make([]templates.OptionView, 0, len(repair.PledgeStatuses))
	for _, status := range repair.PledgeStatuses {
		if !current.CanTransition(status) {
			continue
		}
		options = append(options, templates.OptionView{
			Value:    string(status),
			Label:    pledgeStatusBadge(status, loc).Label,
			Selected: status == selected,
		})
	}
	return options
}

func pledgeTypeOptions(loc *message.Printer, selected repair.PledgeType, placeholder string) []templates.OptionView {
	options := make([]templates.OptionView, 0, len(repair.PledgeTypes)+1)
	if placeholder != "" {
		options = append(options, templates.OptionView{Value: "", Label: placeholder})
	}
	for _, pledgeType := range repair.PledgeTypes {
		options = append(options, templates.OptionView{
			Value:    string(pledgeType),
			Label:    pledgeTypeBadge(pledgeType, loc).Label,
			Selected: pledgeType == selected,
		})
	}
	return options
}

func outcomeOptions(loc *message.Printer, selected repair.OutcomeStatus, placeholder string) []templates.OptionView {
	options := make([]templates.OptionView, 0, len(repair.OutcomeStatuses)+1)
	if placeholder != "" {
		options = append(options, templates.OptionView{Value: "", Label: placeholder})
	}
	for _, outcome := range repair.OutcomeStatuses {
		options = append(options, templates.OptionView{
			Value:    string(outcome),
			Label:    outcomeBadge(outcome, loc).Label,
			Selected: outcome == selected,
		})
	}
	return options
}

// formErrorAlert is the summary shown above a form that failed validation.
func formErrorAlert(loc *message.Printer) templates.AlertView {
	return templates.AlertView{Kind: templates.AlertError, Message: loc.Sprintf("error.form_invalid")}
}

package templates

import "strconv"

// Field input kinds.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
	FieldDate     = "date"
	FieldDateTime = "datetime-local"
	FieldNumber   = "number"
	FieldHidden   = "hidden"
)

// MaterialsContainerID is the element material rows are appended to.
const MaterialsContainerID = "material-rows"

// FormView is a create or edit form.
type FormView struct {
	Heading PageHeading
	// Action is the POST target.
	Action      string
	SubmitLabel string
	CancelLabel string
	CancelURL   string
	// Error is shown above the fields, for example an API failure.
	Error     AlertView
	Fields    []FieldView
	Materials *MaterialsView
}

// FieldView is one form input with its label and validation message.
type FieldView struct {
	Name        string
	Label       string
	Kind        string
	Value       string
	Placeholder string
	Help        string
	Error       string
	Options     []OptionView
	Required    bool
	Disabled    bool
	MaxLength   int
	Rows        int
	Step        string
}

// MaterialsView is the repeatable list of materials on an action form.
type MaterialsView struct {
	Title        string
	AddLabel     string
	AddURL       string
	EmptyMessage string
	Error        string
	Rows         []MaterialRowView
}

// MaterialRowView is one material line.
type MaterialRowView struct {
	ItemName    FieldView
	Quantity    FieldView
	Unit        FieldView
	RemoveLabel string
}

// MessagePageView is a standalone notice page such as not found.
type MessagePageView struct {
	Heading   PageHeading
	Alert     AlertView
	BackURL   string
	BackLabel string
}

func fieldWrapperClass(field FieldView) string {
	if field.Kind == FieldTextarea {
		return "form-control md:col-span-2"
	}
	return "form-control"
}

func inputType(field FieldView) string {
	if field.Kind == "" {
		return FieldText
	}
	return field.Kind
}

func textareaRows(field FieldView) string {
	if field.Rows <= 0 {
		return "4"
	}
	return strconv.Itoa(field.Rows)
}

// optionSelected marks the option matching the field value; a blank value
// never selects the placeholder option implicitly.
func optionSelected(field FieldView, option OptionView) bool {
	return option.Selected || (option.Value == field.Value && option.Value != "")
}

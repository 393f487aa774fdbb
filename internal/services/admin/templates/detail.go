package templates

// DetailPageView renders a record: heading, buttons, optional tabs and
// either field sections or a table.
type DetailPageView struct {
	Heading  PageHeading
	Buttons  []ButtonView
	Notice   AlertView
	Tabs     []TabView
	Sections []DetailSection
	Table    *TableView
	// TableTitle labels Table when set.
	TableTitle string
}

// ButtonView is a link styled as a button.
type ButtonView struct {
	Label   string
	Href    string
	Primary bool
}

// TabView is one tab of a detail page.
type TabView struct {
	Label  string
	Href   string
	Active bool
}

// DetailSection groups fields under a title.
type DetailSection struct {
	Title  string
	Fields []DetailField
}

// DetailField is one labelled value.
type DetailField struct {
	Label string
	Value string
	Href  string
	Badge *BadgeView
	// Multiline preserves line breaks in Value.
	Multiline bool
}

func buttonClass(button ButtonView) string {
	if button.Primary {
		return "btn btn-primary btn-sm"
	}
	return "btn btn-outline btn-sm"
}

package templates

// FilterBarView is the search and select bar above a list table.
type FilterBarView struct {
	// TableURL is the fragment endpoint the form submits to.
	TableURL string
	// PageURL is the form action without htmx.
	PageURL string
	// TableID is the element the response replaces.
	TableID string
	// SearchName is the query key of the search box; empty hides it.
	SearchName        string
	Search            string
	SearchPlaceholder string
	Selects           []SelectView
	// Hidden keeps extra query values such as the sort order.
	Hidden []HiddenField
	// ExportURL renders a download link when set.
	ExportURL   string
	ExportLabel string
}

// SelectView is a labelled select input.
type SelectView struct {
	Name    string
	Label   string
	Options []OptionView
}

// OptionView is one select option.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// HiddenField is a hidden form input.
type HiddenField struct {
	Name  string
	Value string
}

// ListPageView is a list page: heading, filters and a lazily loaded table.
type ListPageView struct {
	Heading PageHeading
	Filters FilterBarView
	// TableURL includes the current query so the first load matches the URL.
	TableURL       string
	LoadingMessage string
}

// FilterFormID names the filter form of a table; table handlers use it to
// tell filter submissions apart from pager and sort clicks.
func FilterFormID(tableID string) string {
	return tableID + "-filters"
}

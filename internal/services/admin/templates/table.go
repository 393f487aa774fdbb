package templates

// TableView is a rendered data table with sorting and pagination links.
type TableView struct {
	// ID names the container element that table links swap.
	ID           string
	Headers      []TableHeaderView
	Rows         []TableRowView
	ActionsLabel string
	EmptyMessage string
	Pagination   PaginationView
}

// TableHeaderView is one column header.
type TableHeaderView struct {
	Label    string
	Class    string
	Sortable bool
	Active   bool
	Desc     bool
	Sort     TableLink
}

// TableRowView is one body row.
type TableRowView struct {
	ID      string
	Cells   []TableCellView
	Actions []LinkView
}

// TableCellView is one body cell. Badge takes precedence over Text.
type TableCellView struct {
	Text    string
	Subtext string
	Href    string
	Class   string
	Badge   *BadgeView
}

// LinkView is a plain navigation link.
type LinkView struct {
	Label string
	Href  string
}

// TableLink reloads the table fragment from URL and records PushURL in the
// browser history.
type TableLink struct {
	URL     string
	PushURL string
}

// PaginationView holds the pager below a table.
type PaginationView struct {
	Summary string
	Prev    *TableLink
	Next    *TableLink
	Pages   []PageLinkView
}

// PageLinkView is one pager entry; Ellipsis entries have no link.
type PageLinkView struct {
	Label    string
	Link     TableLink
	Current  bool
	Ellipsis bool
}

func hasRowActions(view TableView) bool {
	for _, row := range view.Rows {
		if len(row.Actions) > 0 {
			return true
		}
	}
	return false
}

func ariaSort(header TableHeaderView) string {
	switch {
	case !header.Active:
		return "none"
	case header.Desc:
		return "descending"
	default:
		return "ascending"
	}
}

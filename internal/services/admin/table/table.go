// Package table shapes and renders tabular data for the dashboard: it
// filters, searches, sorts and paginates rows held in memory and turns a
// column spec into a table view.
package table

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column describes one table column over rows of type T.
type Column[T any] struct {
	// Key is the sort and filter key; it matches the API field name.
	Key      string
	Header   string
	Sortable bool
	// Searchable columns take part in free-text search.
	Searchable bool
	// Hidden columns are searched and filtered but not rendered.
	Hidden bool
	Class  string
	// Value is the plain text of the cell, used for search and default sort.
	Value func(T) string
	// Cell overrides the rendered cell; Value is still used for search.
	Cell func(T) templates.TableCellView
	// Less compares two rows; nil sorts by Value with a case-insensitive collator.
	Less func(a, b T) int
}

// RowAction is a link in the row menu. Href may contain {key} placeholders
// filled from the row's replacements.
type RowAction[T any] struct {
	Label string
	Href  string
	// Visible hides the action for some rows when set.
	Visible func(T) bool
}

// Spec describes a whole table.
type Spec[T any] struct {
	ID           string
	Columns      []Column[T]
	Actions      []RowAction[T]
	ActionsLabel string
	EmptyMessage string
	RowID        func(T) string
	// Replacements supplies placeholder values for action links. When nil
	// {id} is replaced by RowID.
	Replacements func(T) map[string]string
}

// Matcher reports whether a row matches a filter value.
type Matcher[T any] func(row T, value string) bool

// Result is one page of shaped rows.
type Result[T any] struct {
	Rows []T
	Page Page
}

// Column returns the column with key.
func (s Spec[T]) Column(key string) (Column[T], bool) {
	for _, column := range s.Columns {
		if column.Key == key {
			return column, true
		}
	}
	return Column[T]{}, false
}

// SortableKeys lists the keys of sortable columns.
func (s Spec[T]) SortableKeys() []string {
	keys := make([]string, 0, len(s.Columns))
	for _, column := range s.Columns {
		if column.Sortable {
			keys = append(keys, column.Key)
		}
	}
	return keys
}

// Apply filters, searches, sorts and paginates rows. Filters without a
// matcher compare the column Value case-insensitively. The input slice is
// not modified.
func Apply[T any](rows []T, spec Spec[T], q Query, matchers map[string]Matcher[T]) Result[T] {
	filtered := make([]T, 0, len(rows))
	search := strings.ToLower(q.Search)
	for _, row := range rows {
		if !matchesFilters(row, spec, q.Filters, matchers) {
			continue
		}
		if search != "" && !matchesSearch(row, spec, search) {
			continue
		}
		filtered = append(filtered, row)
	}

	if column, ok := spec.Column(q.SortKey); ok && column.Sortable {
		compare := comparator(column)
		slices.SortStableFunc(filtered, func(a, b T) int {
			if q.SortDesc {
				return compare(b, a)
			}
			return compare(a, b)
		})
	}

	page := NewPage(q.Page, q.PageSize, int64(len(filtered)))
	if page.TotalElements == 0 {
		return Result[T]{Rows: []T{}, Page: page}
	}
	return Result[T]{Rows: filtered[page.StartItem-1 : page.EndItem], Page: page}
}

func matchesFilters[T any](row T, spec Spec[T], filters map[string]string, matchers map[string]Matcher[T]) bool {
	for key, value := range filters {
		if value == "" {
			continue
		}
		if matcher, ok := matchers[key]; ok {
			if !matcher(row, value) {
				return false
			}
			continue
		}
		column, ok := spec.Column(key)
		if !ok || column.Value == nil {
			continue
		}
		if !strings.EqualFold(column.Value(row), value) {
			return false
		}
	}
	return true
}

func matchesSearch[T any](row T, spec Spec[T], search string) bool {
	for _, column := range spec.Columns {
		if !column.Searchable || column.Value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(column.Value(row)), search) {
			return true
		}
	}
	return false
}

func comparator[T any](column Column[T]) func(a, b T) int {
	if column.Less != nil {
		return column.Less
	}
	collator := collate.New(language.BrazilianPortuguese, collate.IgnoreCase, collate.IgnoreDiacritics)
	return func(a, b T) int {
		return collator.CompareString(cellValue(column, a), cellValue(column, b))
	}
}

func cellValue[T any](column Column[T], row T) string {
	if column.Value == nil {
		return ""
	}
	return column.Value(row)
}

// Links holds the fragment and page URLs a table navigates between.
type Links struct {
	// TableURL serves the table fragment.
	TableURL string
	// PageURL is the full page recorded in browser history.
	PageURL string
}

// Link builds the table link for q.
func (l Links) Link(q Query) templates.TableLink {
	return templates.TableLink{URL: q.URL(l.TableURL), PushURL: q.URL(l.PageURL)}
}

// Render builds the table view for one page of rows. summary formats the
// result summary line.
func Render[T any](spec Spec[T], result Result[T], q Query, links Links, summary func(Page) string) templates.TableView {
	q.Page = result.Page.Number
	view := templates.TableView{
		ID:           spec.ID,
		ActionsLabel: spec.ActionsLabel,
		EmptyMessage: spec.EmptyMessage,
		Headers:      make([]templates.TableHeaderView, 0, len(spec.Columns)),
		Rows:         make([]templates.TableRowView, 0, len(result.Rows)),
	}
	for _, column := range spec.Columns {
		if column.Hidden {
			continue
		}
		header := templates.TableHeaderView{Label: column.Header, Class: column.Class, Sortable: column.Sortable}
		if column.Sortable {
			header.Active = q.SortKey == column.Key
			header.Desc = header.Active && q.SortDesc
			header.Sort = links.Link(q.WithSort(column.Key))
		}
		view.Headers = append(view.Headers, header)
	}
	for _, row := range result.Rows {
		view.Rows = append(view.Rows, renderRow(spec, row))
	}
	view.Pagination = renderPagination(result.Page, q, links, summary)
	return view
}

func renderRow[T any](spec Spec[T], row T) templates.TableRowView {
	out := templates.TableRowView{Cells: make([]templates.TableCellView, 0, len(spec.Columns))}
	if spec.RowID != nil {
		out.ID = spec.ID + "-" + spec.RowID(row)
	}
	for _, column := range spec.Columns {
		if column.Hidden {
			continue
		}
		cell := templates.TableCellView{Text: cellValue(column, row)}
		if column.Cell != nil {
			cell = column.Cell(row)
		}
		if cell.Class == "" {
			cell.Class = column.Class
		}
		out.Cells = append(out.Cells, cell)
	}
	if len(spec.Actions) == 0 {
		return out
	}
	replacer := hrefReplacer(spec, row)
	for _, action := range spec.Actions {
		if action.Visible != nil && !action.Visible(row) {
			continue
		}
		out.Actions = append(out.Actions, templates.LinkView{Label: action.Label, Href: replacer.Replace(action.Href)})
	}
	return out
}

// hrefReplacer expands {key} placeholders with path-escaped row values.
func hrefReplacer[T any](spec Spec[T], row T) *strings.Replacer {
	var replacements map[string]string
	switch {
	case spec.Replacements != nil:
		replacements = spec.Replacements(row)
	case spec.RowID != nil:
		replacements = map[string]string{"id": spec.RowID(row)}
	}
	pairs := make([]string, 0, len(replacements)*2)
	for key, value := range replacements {
		pairs = append(pairs, "{"+key+"}", url.PathEscape(value))
	}
	return strings.NewReplacer(pairs...)
}

func renderPagination(page Page, q Query, links Links, summary func(Page) string) templates.PaginationView {
	view := templates.PaginationView{}
	if summary != nil {
		view.Summary = summary(page)
	}
	if page.HasPrev() {
		link := links.Link(q.WithPage(page.Number - 1))
		view.Prev = &link
	}
	if page.HasNext() {
		link := links.Link(q.WithPage(page.Number + 1))
		view.Next = &link
	}
	for _, entry := range Window(page.Number, page.TotalPages, WindowSize) {
		if entry.Ellipsis {
			view.Pages = append(view.Pages, templates.PageLinkView{Ellipsis: true})
			continue
		}
		view.Pages = append(view.Pages, templates.PageLinkView{
			Label:   strconv.Itoa(entry.Page),
			Link:    links.Link(q.WithPage(entry.Page)),
			Current: entry.Page == page.Number,
		})
	}
	return view
}

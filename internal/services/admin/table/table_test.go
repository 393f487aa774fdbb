package table

import (
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
)

type item struct {
	id     string
	name   string
	status string
	rank   int
}

func itemSpec() Spec[item] {
	return Spec[item]{
		ID:           "items",
		ActionsLabel: "Ações",
		EmptyMessage: "vazio",
		RowID:        func(i item) string { return i.id },
		Columns: []Column[item]{
			{Key: "name", Header: "Nome", Sortable: true, Searchable: true, Value: func(i item) string { return i.name }},
			{Key: "status", Header: "Status", Value: func(i item) string { return i.status }},
			{Key: "rank", Header: "Rank", Sortable: true, Less: func(a, b item) int { return a.rank - b.rank }},
		},
		Actions: []RowAction[item]{
			{Label: "Ver", Href: "/items/{id}"},
			{Label: "Editar", Href: "/items/{id}/edit", Visible: func(i item) bool { return i.status != "DONE" }},
		},
	}
}

func names(rows []item) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.name)
	}
	return out
}

func TestWindow(t *testing.T) {
	t.Parallel()

	page := func(n int) WindowEntry { return WindowEntry{Page: n} }
	gap := WindowEntry{Ellipsis: true}
	tests := []struct {
		name           string
		current, total int
		want           []WindowEntry
	}{
		{name: "empty", current: 1, total: 0, want: nil},
		{name: "few pages", current: 2, total: 3, want: []WindowEntry{page(1), page(2), page(3)}},
		{name: "start", current: 1, total: 10, want: []WindowEntry{page(1), page(2), page(3), page(4), page(5), gap, page(10)}},
		{name: "middle", current: 5, total: 10, want: []WindowEntry{page(1), gap, page(3), page(4), page(5), page(6), page(7), gap, page(10)}},
		{name: "end", current: 10, total: 10, want: []WindowEntry{page(1), gap, page(6), page(7), page(8), page(9), page(10)}},
		{name: "adjacent first", current: 4, total: 10, want: []WindowEntry{page(1), page(2), page(3), page(4), page(5), page(6), gap, page(10)}},
		{name: "adjacent last", current: 8, total: 9, want: []WindowEntry{page(1), gap, page(5), page(6), page(7), page(8), page(9)}},
		{name: "clamped", current: 99, total: 6, want: []WindowEntry{page(1), page(2), page(3), page(4), page(5), page(6)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, Window(tc.current, tc.total, WindowSize)); diff != "" {
				t.Fatalf("Window(%d, %d) (-want +got):\n%s", tc.current, tc.total, diff)
			}
		})
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		number, size int
		total        int64
		want         Page
	}{
		{name: "empty", number: 3, size: 25, total: 0, want: Page{Number: 1, Size: 25}},
		{name: "first", number: 1, size: 25, total: 60, want: Page{Number: 1, Size: 25, TotalElements: 60, TotalPages: 3, StartItem: 1, EndItem: 25}},
		{name: "last partial", number: 3, size: 25, total: 60, want: Page{Number: 3, Size: 25, TotalElements: 60, TotalPages: 3, StartItem: 51, EndItem: 60}},
		{name: "beyond last", number: 7, size: 25, total: 60, want: Page{Number: 3, Size: 25, TotalElements: 60, TotalPages: 3, StartItem: 51, EndItem: 60}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, NewPage(tc.number, tc.size, tc.total)); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	cfg := QueryConfig{DefaultOrderBy: "rank desc", Sortable: []string{"name", "rank"}, Filters: []string{"status"}}

	q := ParseQuery(url.Values{}, cfg)
	if q.SortKey != "rank" || !q.SortDesc || q.Page != 1 || q.PageSize != DefaultPageSize {
		t.Fatalf("unexpected defaults: %+v", q)
	}

	q = ParseQuery(url.Values{
		"q":        {"  porta "},
		"status":   {"OPEN"},
		"order_by": {"name"},
		"page":     {"3"},
		"size":     {"500"},
		"ignored":  {"x"},
	}, cfg)
	want := Query{Search: "porta", Filters: map[string]string{"status": "OPEN"}, SortKey: "name", Page: 3, PageSize: 100}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Fatalf("query (-want +got):\n%s", diff)
	}

	q = ParseQuery(url.Values{"order_by": {"status desc"}}, cfg)
	if q.SortKey != "rank" || !q.SortDesc {
		t.Fatalf("expected fallback to default order, got %+v", q)
	}
}

func TestQueryValuesRoundTrip(t *testing.T) {
	t.Parallel()

	q := Query{Search: "a b", Filters: map[string]string{"status": "OPEN"}, SortKey: "name", SortDesc: true, Page: 2, PageSize: DefaultPageSize}
	if got := q.URL("/items"); got != "/items?order_by=name+desc&page=2&q=a+b&status=OPEN" {
		t.Fatalf("URL() = %q", got)
	}
	if got := (Query{Page: 1}).URL("/items"); got != "/items" {
		t.Fatalf("empty query URL = %q", got)
	}
}

func TestWithSortToggles(t *testing.T) {
	t.Parallel()

	q := Query{SortKey: "name", Page: 4}
	flipped := q.WithSort("name")
	if !flipped.SortDesc || flipped.Page != 1 {
		t.Fatalf("expected flip to desc on page 1, got %+v", flipped)
	}
	if back := flipped.WithSort("name"); back.SortDesc {
		t.Fatalf("expected flip back to asc, got %+v", back)
	}
	other := flipped.WithSort("rank")
	if other.SortKey != "rank" || other.SortDesc {
		t.Fatalf("new key should start ascending, got %+v", other)
	}
}

func TestApplyFiltersSearchesSortsAndPaginates(t *testing.T) {
	t.Parallel()

	rows := []item{
		{id: "1", name: "Órgão", status: "OPEN", rank: 3},
		{id: "2", name: "banheiro", status: "OPEN", rank: 1},
		{id: "3", name: "Antena", status: "DONE", rank: 2},
		{id: "4", name: "cozinha", status: "open", rank: 4},
	}
	spec := itemSpec()

	got := Apply(rows, spec, Query{SortKey: "name", Page: 1, PageSize: 10}, nil)
	if diff := cmp.Diff([]string{"Antena", "banheiro", "cozinha", "Órgão"}, names(got.Rows)); diff != "" {
		t.Fatalf("collated sort (-want +got):\n%s", diff)
	}

	got = Apply(rows, spec, Query{Filters: map[string]string{"status": "OPEN"}, SortKey: "rank", SortDesc: true, Page: 1, PageSize: 2}, nil)
	if diff := cmp.Diff([]string{"cozinha", "Órgão"}, names(got.Rows)); diff != "" {
		t.Fatalf("filtered desc page (-want +got):\n%s", diff)
	}
	if got.Page.TotalElements != 3 || got.Page.TotalPages != 2 {
		t.Fatalf("unexpected page: %+v", got.Page)
	}

	got = Apply(rows, spec, Query{Search: "AN", Page: 1, PageSize: 10}, nil)
	if diff := cmp.Diff([]string{"banheiro", "Antena"}, names(got.Rows)); diff != "" {
		t.Fatalf("search keeps input order (-want +got):\n%s", diff)
	}

	matchers := map[string]Matcher[item]{
		"active": func(row item, value string) bool { return (row.status != "DONE") == (value == "true") },
	}
	got = Apply(rows, spec, Query{Filters: map[string]string{"active": "false"}, Page: 1, PageSize: 10}, matchers)
	if diff := cmp.Diff([]string{"Antena"}, names(got.Rows)); diff != "" {
		t.Fatalf("matcher filter (-want +got):\n%s", diff)
	}

	got = Apply(rows, spec, Query{Search: "zzz", Page: 1, PageSize: 10}, nil)
	if len(got.Rows) != 0 || got.Page.StartItem != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
	if rows[0].name != "Órgão" {
		t.Fatal("input slice was reordered")
	}
}

func TestApplySortIsStable(t *testing.T) {
	t.Parallel()

	rows := []item{{id: "a", name: "x", rank: 1}, {id: "b", name: "y", rank: 1}, {id: "c", name: "z", rank: 0}}
	got := Apply(rows, itemSpec(), Query{SortKey: "rank", Page: 1, PageSize: 10}, nil)
	if diff := cmp.Diff([]string{"z", "x", "y"}, names(got.Rows)); diff != "" {
		t.Fatalf("stable sort (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	rows := make([]item, 0, 30)
	for i := range 30 {
		status := "OPEN"
		if i == 0 {
			status = "DONE"
		}
		rows = append(rows, item{id: "id/" + string(rune('a'+i%26)), name: "n", status: status, rank: i})
	}
	spec := itemSpec()
	q := Query{SortKey: "rank", Page: 1, PageSize: 25, Filters: map[string]string{}}
	result := Apply(rows, spec, q, nil)
	links := Links{TableURL: "/items/table", PageURL: "/items"}
	view := Render(spec, result, q, links, func(p Page) string {
		return "Mostrando " + itoa(p.StartItem) + "-" + itoa(p.EndItem) + " de " + itoa(p.TotalElements) + " resultados"
	})

	if view.ID != "items" || len(view.Rows) != 25 {
		t.Fatalf("unexpected view: id=%q rows=%d", view.ID, len(view.Rows))
	}
	if view.Pagination.Summary != "Mostrando 1-25 de 30 resultados" {
		t.Fatalf("summary = %q", view.Pagination.Summary)
	}

	rank := view.Headers[2]
	if !rank.Active || rank.Desc {
		t.Fatalf("rank header should be active ascending: %+v", rank)
	}
	if diff := cmp.Diff(templates.TableLink{URL: "/items/table?order_by=rank+desc", PushURL: "/items?order_by=rank+desc"}, rank.Sort); diff != "" {
		t.Fatalf("toggle link (-want +got):\n%s", diff)
	}
	name := view.Headers[0]
	if name.Active || name.Sort.URL != "/items/table?order_by=name" {
		t.Fatalf("name header: %+v", name)
	}
	if view.Headers[1].Sortable {
		t.Fatal("status column is not sortable")
	}

	first := view.Rows[0]
	if first.ID != "items-id/a" {
		t.Fatalf("row id = %q", first.ID)
	}
	if len(first.Actions) != 1 || first.Actions[0].Href != "/items/id%2Fa" {
		t.Fatalf("actions for DONE row: %+v", first.Actions)
	}
	if len(view.Rows[1].Actions) != 2 {
		t.Fatalf("expected edit action on open row: %+v", view.Rows[1].Actions)
	}

	if view.Pagination.Prev != nil || view.Pagination.Next == nil {
		t.Fatalf("unexpected prev/next: %+v", view.Pagination)
	}
	if !strings.Contains(view.Pagination.Next.URL, "page=2") {
		t.Fatalf("next link = %q", view.Pagination.Next.URL)
	}
	if len(view.Pagination.Pages) != 2 || !view.Pagination.Pages[0].Current {
		t.Fatalf("pages: %+v", view.Pagination.Pages)
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

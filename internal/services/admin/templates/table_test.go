package templates

import (
	"strings"
	"testing"
)

func TestTableRendersEmptyMessage(t *testing.T) {
	t.Parallel()

	got := renderString(t, Table(TableView{ID: "maintenances-table", EmptyMessage: "Nenhum registro encontrado"}))
	if !strings.Contains(got, `id="maintenances-table"`) {
		t.Fatalf("missing container id: %q", got)
	}
	if !strings.Contains(got, "Nenhum registro encontrado") {
		t.Fatalf("missing empty message: %q", got)
	}
	if strings.Contains(got, "<table") {
		t.Fatalf("empty table should not render rows: %q", got)
	}
}

func TestTableRendersSortAndPager(t *testing.T) {
	t.Parallel()

	view := TableView{
		ID:           "t",
		ActionsLabel: "Ações",
		Headers: []TableHeaderView{
			{Label: "Título", Sortable: true, Active: true, Desc: true, Sort: TableLink{URL: "/m/table?sort=title", PushURL: "/m?sort=title"}},
			{Label: "Status"},
		},
		Rows: []TableRowView{{
			ID:      "row-1",
			Cells:   []TableCellView{{Text: "Porta", Href: "/m/1", Subtext: "quebrada"}, {Badge: &BadgeView{Label: "Aberto"}}},
			Actions: []LinkView{{Label: "Editar", Href: "/m/1/edit"}},
		}},
		Pagination: PaginationView{
			Summary: "Mostrando 1-1 de 30 resultados",
			Next:    &TableLink{URL: "/m/table?page=2", PushURL: "/m?page=2"},
			Pages: []PageLinkView{
				{Label: "1", Current: true, Link: TableLink{URL: "/m/table?page=1", PushURL: "/m?page=1"}},
				{Label: "2", Link: TableLink{URL: "/m/table?page=2", PushURL: "/m?page=2"}},
			},
		},
	}
	got := renderString(t, Table(view))
	for _, want := range []string{
		`aria-sort="descending"`,
		`hx-get="/m/table?sort=title"`,
		`hx-push-url="/m?sort=title"`,
		`hx-target="#t"`,
		`aria-current="page"`,
		`href="/m/1/edit"`,
		"Mostrando 1-1 de 30 resultados",
		"quebrada",
		">Ações<",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("table output missing %q: %s", want, got)
		}
	}
}

func TestTableHidesPagerForSinglePage(t *testing.T) {
	t.Parallel()

	got := renderString(t, Table(TableView{
		ID:         "t",
		Rows:       []TableRowView{{Cells: []TableCellView{{Text: "x"}}}},
		Pagination: PaginationView{Summary: "s", Pages: []PageLinkView{{Label: "1", Current: true}}},
	}))
	if strings.Contains(got, `class="join"`) {
		t.Fatalf("single page should not render pager: %s", got)
	}
}

func TestTableSanitizesUnsafeLinks(t *testing.T) {
	t.Parallel()

	got := renderString(t, Table(TableView{
		ID: "t",
		Rows: []TableRowView{{
			Cells:   []TableCellView{{Text: "Porta", Href: "javascript:alert(1)"}},
			Actions: []LinkView{{Label: "Editar", Href: "javascript:alert(2)"}},
		}},
	}))
	if strings.Contains(got, "javascript:") {
		t.Fatalf("unsafe href rendered: %s", got)
	}
	if strings.Count(got, "about:invalid#TemplFailedSanitizationURL") != 2 {
		t.Fatalf("expected both links to be sanitized: %s", got)
	}
}

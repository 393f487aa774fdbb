package templates

import (
	"strings"
	"testing"
)

func TestFormRendersFieldErrors(t *testing.T) {
	t.Parallel()

	view := FormView{
		Action:      "/maintenances/new",
		SubmitLabel: "Salvar",
		CancelLabel: "Cancelar",
		CancelURL:   "/maintenances",
		Fields: []FieldView{
			{Name: "title", Label: "Título", Value: "ab", Required: true, MaxLength: 255, Error: "muito curto"},
			{Name: "category", Label: "Categoria", Kind: FieldSelect, Value: "HVAC", Options: []OptionView{{Value: "", Label: "-"}, {Value: "HVAC", Label: "HVAC"}}},
			{Name: "description", Label: "Descrição", Kind: FieldTextarea, Value: "<script>"},
			{Name: "maintenanceId", Kind: FieldHidden, Value: "abc"},
		},
	}
	got := renderString(t, Form(view))
	for _, want := range []string{
		`action="/maintenances/new"`,
		`aria-invalid="true"`,
		"input-error",
		"muito curto",
		`maxlength="255"`,
		`<option value="HVAC" selected>`,
		`<option value="">`,
		"&lt;script&gt;",
		`type="hidden" name="maintenanceId" value="abc"`,
		`href="/maintenances"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("form output missing %q: %s", want, got)
		}
	}
}

func TestMaterialRowRendersRemoveButton(t *testing.T) {
	t.Parallel()

	got := renderString(t, MaterialRow(MaterialRowView{
		ItemName:    FieldView{Name: "materialItemName", Label: "Item", Value: "Cano"},
		Quantity:    FieldView{Name: "materialQuantity", Label: "Quantidade", Kind: FieldNumber, Value: "2"},
		Unit:        FieldView{Name: "materialUnit", Label: "Unidade", Value: "m"},
		RemoveLabel: "Remover",
	}))
	for _, want := range []string{"material-row", `name="materialItemName"`, `type="number"`, "hx-on:click", "Remover"} {
		if !strings.Contains(got, want) {
			t.Fatalf("material row missing %q: %s", want, got)
		}
	}
}

func TestDetailPageRendersTabsAndEmptyValues(t *testing.T) {
	t.Parallel()

	got := renderString(t, DetailPage(DetailPageView{
		Heading: PageHeading{Title: "Porta"},
		Tabs: []TabView{
			{Label: "Detalhes", Href: "/m/1", Active: true},
			{Label: "Ações", Href: "/m/1?tab=actions"},
		},
		Sections: []DetailSection{{Title: "Geral", Fields: []DetailField{
			{Label: "Agendada", Value: ""},
			{Label: "Status", Badge: &BadgeView{Label: "Aberto"}},
		}}},
	}))
	for _, want := range []string{"tab tab-active", `aria-selected="true"`, "&mdash;", "Aberto"} {
		if !strings.Contains(got, want) {
			t.Fatalf("detail output missing %q: %s", want, got)
		}
	}
}

func TestLayoutMarksActiveNav(t *testing.T) {
	t.Parallel()

	got := renderString(t, Layout(PageContext{Lang: "en-US", Nav: NavActions, CurrentPath: "/actions"}, "Actions", Alert(AlertView{Message: "hi"})))
	for _, want := range []string{`lang="en-US"`, "<title>Actions | Conecta Reparo</title>", `hx-boost="true"`, `href="/actions" class="active"`, `id="main"`, "hi"} {
		if !strings.Contains(got, want) {
			t.Fatalf("layout missing %q: %s", want, got)
		}
	}
}

package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

type fakeLocalizer struct {
	value string
}

func (f fakeLocalizer) Sprintf(key message.Reference, args ...any) string {
	return f.value
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestTranslateFallback(t *testing.T) {
	if T(nil, "hello") != "hello" {
		t.Fatal("expected key fallback")
	}

	if T(nil, message.Reference(123)) != "" {
		t.Fatal("expected empty string for non-string key")
	}
}

func TestTranslateLocalizer(t *testing.T) {
	loc := fakeLocalizer{value: "translated"}
	if T(loc, "hello") != "translated" {
		t.Fatal("expected translated value")
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "Conecta Reparo"},
		{in: "Manutenções", want: "Manutenções | Conecta Reparo"},
		{in: "Manutenções | Conecta Reparo", want: "Manutenções | Conecta Reparo"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.in); got != tc.want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAppendQueryParam(t *testing.T) {
	t.Parallel()

	if got := AppendQueryParam("/maintenances", "status", "OPEN"); got != "/maintenances?status=OPEN" {
		t.Fatalf("got %q", got)
	}
	if got := AppendQueryParam("/maintenances?page=2", "q", "a b"); got != "/maintenances?page=2&q=a+b" {
		t.Fatalf("got %q", got)
	}
}

func TestBadgeEscapesLabel(t *testing.T) {
	t.Parallel()

	got := renderString(t, Badge(BadgeView{Label: "<b>Falha</b>", Variant: VariantDestructive, Icon: "🔒"}))
	if !strings.Contains(got, "badge-error") {
		t.Fatalf("missing variant class: %q", got)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("label not escaped: %q", got)
	}
	if !strings.Contains(got, "🔒") {
		t.Fatalf("missing icon: %q", got)
	}
}

func TestAlertHidesEmptyAndDuplicateDetail(t *testing.T) {
	t.Parallel()

	if got := renderString(t, Alert(AlertView{})); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	got := renderString(t, Alert(AlertView{Kind: AlertError, Message: "Falhou", Detail: "Falhou"}))
	if strings.Count(got, "Falhou") != 1 {
		t.Fatalf("duplicate detail rendered: %q", got)
	}
	got = renderString(t, Alert(AlertView{Kind: AlertError, Message: "Falhou", Detail: "status inválido"}))
	if !strings.Contains(got, "alert-error") || !strings.Contains(got, "status inválido") {
		t.Fatalf("unexpected alert: %q", got)
	}
}

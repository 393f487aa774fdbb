package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "Conecta Reparo" {
		t.Fatalf("AppName = %q, want %q", AppName, "Conecta Reparo")
	}
}

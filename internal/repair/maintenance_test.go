package repair

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestNewMaintenanceValidate(t *testing.T) {
	t.Parallel()

	valid := NewMaintenance{
		Title:         "Vazamento na pia",
		Description:   "Há um vazamento constante na pia da cozinha.",
		Category:      CategoryPlumbing,
		ScheduledDate: NewTimestamp(time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC)),
	}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid payload, got %v", errs)
	}

	invalid := NewMaintenance{
		Title:       "Pia",
		Description: strings.Repeat("x", 3001),
		Category:    "ROOF",
	}
	got := invalid.Validate()
	want := FieldErrors{
		"title":         {Key: KeyLengthBetween, Args: []any{5, 100}},
		"description":   {Key: KeyMaxLength, Args: []any{3000}},
		"category":      {Key: KeyInvalidChoice},
		"scheduledDate": {Key: KeyRequired},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Validate() mismatch (-want +got):\n%s", diff)
	}
	if got.Err() == nil {
		t.Fatal("expected Err() to report failures")
	}
	if !strings.HasPrefix(got.Error(), "invalid fields: category") {
		t.Fatalf("unexpected error text %q", got.Error())
	}
}

func TestDiffMaintenanceOnlyChangedFields(t *testing.T) {
	t.Parallel()

	original := Maintenance{
		ID:          "m-1",
		Title:       "Troca de lâmpadas",
		Description: "Corredor principal",
		Category:    CategoryElectrical,
		Status:      MaintenanceOpen,
	}

	unchanged := DiffMaintenance(original, MaintenanceEdit{
		Title:       " Troca de lâmpadas ",
		Description: "Corredor principal",
		Category:    CategoryElectrical,
		Status:      MaintenanceOpen,
	})
	if !unchanged.Empty() {
		t.Fatalf("expected empty diff, got %+v", unchanged)
	}

	changed := DiffMaintenance(original, MaintenanceEdit{
		Title:       "Troca de lâmpadas",
		Description: "Corredor e recepção",
		Category:    CategoryElectrical,
		Status:      MaintenanceInProgress,
	})
	want := MaintenanceUpdate{
		Description: ptr("Corredor e recepção"),
		Status:      ptr(MaintenanceInProgress),
	}
	if diff := cmp.Diff(want, changed); diff != "" {
		t.Fatalf("DiffMaintenance() mismatch (-want +got):\n%s", diff)
	}
}

func TestMaintenanceUpdateValidateTransition(t *testing.T) {
	t.Parallel()

	update := MaintenanceUpdate{Status: ptr(MaintenanceOpen)}
	errs := update.Validate(MaintenanceInProgress)
	if errs["status"].Key != KeyInvalidTransition {
		t.Fatalf("expected transition error, got %v", errs)
	}

	update = MaintenanceUpdate{Title: ptr("abc"), Status: ptr(MaintenanceCompleted)}
	errs = update.Validate(MaintenanceInProgress)
	if _, ok := errs["status"]; ok {
		t.Fatalf("unexpected status error: %v", errs)
	}
	if errs["title"].Key != KeyLengthBetween {
		t.Fatalf("expected title length error, got %v", errs)
	}
}

func TestMaintenanceAcceptsActions(t *testing.T) {
	t.Parallel()

	if !(Maintenance{Status: MaintenanceInProgress}).AcceptsActions() {
		t.Fatal("in progress maintenance should accept actions")
	}
	if (Maintenance{Status: MaintenanceCompleted}).AcceptsActions() {
		t.Fatal("completed maintenance should not accept actions")
	}
}

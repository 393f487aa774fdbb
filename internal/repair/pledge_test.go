package repair

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPledgeValidate(t *testing.T) {
	t.Parallel()

	valid := NewPledge{
		VolunteerName:    "Maria Souza",
		VolunteerContact: "maria@example.com",
		Description:      "Posso doar dois sacos de cimento.",
		Type:             PledgeMaterial,
		MaintenanceID:    "m-1",
	}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid payload, got %v", errs)
	}

	got := NewPledge{VolunteerName: "Ana", VolunteerContact: "  ", Type: "MONEY"}.Validate()
	want := FieldErrors{
		"volunteerName":    {Key: KeyLengthBetween, Args: []any{5, 100}},
		"volunteerContact": {Key: KeyRequired},
		"description":      {Key: KeyRequired},
		"type":             {Key: KeyInvalidChoice},
		"maintenanceId":    {Key: KeyRequired},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffPledge(t *testing.T) {
	t.Parallel()

	original := Pledge{
		VolunteerName:    "Maria Souza",
		VolunteerContact: "maria@example.com",
		Description:      "Cimento",
		Type:             PledgeMaterial,
		Status:           PledgeOffered,
	}
	update := DiffPledge(original, PledgeEdit{
		VolunteerName:    "Maria Souza",
		VolunteerContact: "(11) 99999-0000",
		Description:      "Cimento",
		Type:             PledgeMaterial,
		Status:           PledgePending,
	})
	want := PledgeUpdate{
		VolunteerContact: ptr("(11) 99999-0000"),
		Status:           ptr(PledgePending),
	}
	if diff := cmp.Diff(want, update); diff != "" {
		t.Fatalf("DiffPledge() mismatch (-want +got):\n%s", diff)
	}
	if errs := update.Validate(original.Status); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestPledgeUpdateRejectsTerminalTransition(t *testing.T) {
	t.Parallel()

	update := PledgeUpdate{Status: ptr(PledgeOffered)}
	if errs := update.Validate(PledgeRejected); errs["status"].Key != KeyInvalidTransition {
		t.Fatalf("expected transition error, got %v", errs)
	}
	if !(PledgeUpdate{}).Empty() {
		t.Fatal("zero update should be empty")
	}
}

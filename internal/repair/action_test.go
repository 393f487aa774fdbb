package repair

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewActionValidate(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC)
	valid := NewAction{
		ExecutedBy:        "João Silva",
		StartDate:         NewTimestamp(start),
		CompletionDate:    NewTimestamp(start.Add(2 * time.Hour)),
		ActionDescription: "Substituição do cano danificado.",
		MaterialsUsed: []NewMaterial{
			{ItemName: "Cano PVC", Quantity: "1", UnitOfMeasure: "un"},
		},
		OutcomeStatus: OutcomeSuccess,
	}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid payload, got %v", errs)
	}

	invalid := NewAction{
		ExecutedBy:        "Jo",
		StartDate:         NewTimestamp(start),
		CompletionDate:    NewTimestamp(start.Add(-time.Minute)),
		ActionDescription: "curta",
		MaterialsUsed: []NewMaterial{
			{ItemName: "Selante", Quantity: "0", UnitOfMeasure: ""},
			{ItemName: "", Quantity: "abc", UnitOfMeasure: "kg"},
		},
		OutcomeStatus: "MAYBE",
	}
	got := invalid.Validate()
	want := FieldErrors{
		"executedBy":                    {Key: KeyLengthBetween, Args: []any{3, 100}},
		"actionDescription":             {Key: KeyLengthBetween, Args: []any{10, 2000}},
		"completionDate":                {Key: KeyCompletionBeforeStart},
		"outcomeStatus":                 {Key: KeyInvalidChoice},
		"materialsUsed.0.quantity":      {Key: KeyPositive},
		"materialsUsed.0.unitOfMeasure": {Key: KeyRequired},
		"materialsUsed.1.itemName":      {Key: KeyRequired},
		"materialsUsed.1.quantity":      {Key: KeyPositive},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestActionDecodeAcceptsPublicID(t *testing.T) {
	t.Parallel()

	payload := `{
		"publicId": "a-1",
		"maintenanceId": "m-1",
		"executedBy": "João Silva",
		"startDate": "2025-10-10T10:10:10Z",
		"completionDate": "2025-10-10T12:10:10.5-03:00",
		"actionDescription": "Reparo do vazamento",
		"materialsUsed": [{"publicId": "mat-1", "itemName": "Cano", "quantity": 1.5, "unitOfMeasure": "m"}],
		"outcomeStatus": "SUCCESS",
		"createdAt": "2025-10-10T13:00:00.123456"
	}`
	var action Action
	if err := json.Unmarshal([]byte(payload), &action); err != nil {
		t.Fatalf("decode action: %v", err)
	}
	if action.ID != "a-1" || action.MaintenanceID != "m-1" {
		t.Fatalf("unexpected ids: %+v", action)
	}
	if len(action.MaterialsUsed) != 1 || action.MaterialsUsed[0].ID != "mat-1" || action.MaterialsUsed[0].Quantity != "1.5" {
		t.Fatalf("unexpected materials: %+v", action.MaterialsUsed)
	}
	wantCreated := time.Date(2025, 10, 10, 13, 0, 0, 123456000, time.UTC)
	if !action.CreatedAt.Equal(wantCreated) {
		t.Fatalf("createdAt = %v, want %v", action.CreatedAt, wantCreated)
	}
}

func TestActionFromCopiesMaterials(t *testing.T) {
	t.Parallel()

	action := Action{
		ExecutedBy:    "João Silva",
		OutcomeStatus: OutcomeFailure,
		MaterialsUsed: []Material{{ID: "mat-1", ItemName: "Fita", Quantity: "2", UnitOfMeasure: "un"}},
	}
	got := ActionFrom(action)
	want := NewAction{
		ExecutedBy:    "João Silva",
		OutcomeStatus: OutcomeFailure,
		MaterialsUsed: []NewMaterial{{ItemName: "Fita", Quantity: "2", UnitOfMeasure: "un"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ActionFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMaterialBlank(t *testing.T) {
	t.Parallel()

	if !(NewMaterial{ItemName: " "}).Blank() {
		t.Fatal("expected blank line")
	}
	if (NewMaterial{UnitOfMeasure: "kg"}).Blank() {
		t.Fatal("expected non-blank line")
	}
}

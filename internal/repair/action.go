package repair

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Action is one intervention carried out for a maintenance request.
type Action struct {
	ID                string        `json:"id"`
	MaintenanceID     string        `json:"maintenanceId,omitempty"`
	MaintenanceTitle  string        `json:"maintenanceTitle,omitempty"`
	ExecutedBy        string        `json:"executedBy"`
	StartDate         Timestamp     `json:"startDate"`
	CompletionDate    Timestamp     `json:"completionDate"`
	ActionDescription string        `json:"actionDescription"`
	MaterialsUsed     []Material    `json:"materialsUsed"`
	OutcomeStatus     OutcomeStatus `json:"outcomeStatus"`
	CreatedAt         Timestamp     `json:"createdAt"`
	UpdatedAt         Timestamp     `json:"updatedAt"`
}

// Material is a supply consumed by an action.
type Material struct {
	ID            string      `json:"id"`
	ItemName      string      `json:"itemName"`
	Quantity      json.Number `json:"quantity"`
	UnitOfMeasure string      `json:"unitOfMeasure"`
}

// NewMaterial is a material line submitted with an action.
type NewMaterial struct {
	ItemName      string      `json:"itemName"`
	Quantity      json.Number `json:"quantity"`
	UnitOfMeasure string      `json:"unitOfMeasure"`
}

// Blank reports whether every field of the line was left empty. Blank
// lines are dropped from forms instead of failing validation.
func (m NewMaterial) Blank() bool {
	return strings.TrimSpace(m.ItemName) == "" &&
		strings.TrimSpace(m.Quantity.String()) == "" &&
		strings.TrimSpace(m.UnitOfMeasure) == ""
}

// NewAction is the payload that records an action. The API replaces the
// whole action with the same shape on update.
type NewAction struct {
	ExecutedBy        string        `json:"executedBy"`
	StartDate         Timestamp     `json:"startDate"`
	CompletionDate    Timestamp     `json:"completionDate"`
	ActionDescription string        `json:"actionDescription"`
	MaterialsUsed     []NewMaterial `json:"materialsUsed"`
	OutcomeStatus     OutcomeStatus `json:"outcomeStatus"`
}

// ActionUpdate is the PUT payload replacing an action.
type ActionUpdate = NewAction

// ActionFrom copies an existing action into an editable payload.
func ActionFrom(action Action) NewAction {
	materials := make([]NewMaterial, 0, len(action.MaterialsUsed))
	for _, material := range action.MaterialsUsed {
		materials = append(materials, NewMaterial{
			ItemName:      material.ItemName,
			Quantity:      material.Quantity,
			UnitOfMeasure: material.UnitOfMeasure,
		})
	}
	return NewAction{
		ExecutedBy:        action.ExecutedBy,
		StartDate:         action.StartDate,
		CompletionDate:    action.CompletionDate,
		ActionDescription: action.ActionDescription,
		MaterialsUsed:     materials,
		OutcomeStatus:     action.OutcomeStatus,
	}
}

// Validate checks the payload against the API's constraints. Material
// errors are keyed "materialsUsed.<index>.<field>".
func (a NewAction) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.requireLength("executedBy", a.ExecutedBy, 3, 100)
	errs.requireLength("actionDescription", a.ActionDescription, 10, 2000)
	if a.StartDate.IsZero() {
		errs.add("startDate", KeyRequired)
	}
	if a.CompletionDate.IsZero() {
		errs.add("completionDate", KeyRequired)
	}
	if !a.StartDate.IsZero() && !a.CompletionDate.IsZero() && a.CompletionDate.Before(a.StartDate.Time) {
		errs.add("completionDate", KeyCompletionBeforeStart)
	}
	if !validChoice(a.OutcomeStatus, OutcomeStatuses) {
		errs.add("outcomeStatus", KeyInvalidChoice)
	}
	for i, material := range a.MaterialsUsed {
		errs.requireText(MaterialField(i, "itemName"), material.ItemName)
		errs.requirePositive(MaterialField(i, "quantity"), material.Quantity.String())
		errs.requireText(MaterialField(i, "unitOfMeasure"), material.UnitOfMeasure)
	}
	return errs
}

// MaterialField names the form field of a material line attribute.
func MaterialField(index int, name string) string {
	return "materialsUsed." + strconv.Itoa(index) + "." + name
}

// UnmarshalJSON also accepts the API's "publicId" spelling of the identifier.
func (a *Action) UnmarshalJSON(data []byte) error {
	type plain Action
	var decoded struct {
		plain
		PublicID string `json:"publicId"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*a = Action(decoded.plain)
	if a.ID == "" {
		a.ID = decoded.PublicID
	}
	return nil
}

// UnmarshalJSON also accepts the API's "publicId" spelling of the identifier.
func (m *Material) UnmarshalJSON(data []byte) error {
	type plain Material
	var decoded struct {
		plain
		PublicID string `json:"publicId"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*m = Material(decoded.plain)
	if m.ID == "" {
		m.ID = decoded.PublicID
	}
	return nil
}

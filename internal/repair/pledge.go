package repair

import "strings"

// Pledge is a volunteer's offer of material or labor for a maintenance.
type Pledge struct {
	ID               string       `json:"id"`
	VolunteerName    string       `json:"volunteerName"`
	VolunteerContact string       `json:"volunteerContact"`
	Description      string       `json:"description"`
	Type             PledgeType   `json:"type"`
	Status           PledgeStatus `json:"status"`
	CreatedAt        Timestamp    `json:"createdAt"`
	UpdatedAt        Timestamp    `json:"updatedAt"`
	MaintenanceID    string       `json:"maintenanceId,omitempty"`
	MaintenanceTitle string       `json:"maintenanceTitle,omitempty"`
}

// Terminal reports whether the pledge status can no longer change.
func (s PledgeStatus) Terminal() bool {
	return s == PledgeCanceled || s == PledgeCompleted || s == PledgeRejected
}

// Open reports whether the pledge still awaits a resolution.
func (s PledgeStatus) Open() bool {
	return s == PledgeOffered || s == PledgePending
}

// CanTransition reports whether a pledge in s may move to next.
func (s PledgeStatus) CanTransition(next PledgeStatus) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	return validChoice(next, PledgeStatuses)
}

// NewPledge is the payload that records a volunteer offer.
type NewPledge struct {
	VolunteerName    string     `json:"volunteerName"`
	VolunteerContact string     `json:"volunteerContact"`
	Description      string     `json:"description"`
	Type             PledgeType `json:"type"`
	MaintenanceID    string     `json:"maintenanceId"`
}

// Validate checks the payload against the API's constraints.
func (p NewPledge) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.requireLength("volunteerName", p.VolunteerName, 5, 100)
	errs.requireLength("volunteerContact", p.VolunteerContact, 5, 30)
	errs.requireMaxLength("description", p.Description, 3000)
	if !validChoice(p.Type, PledgeTypes) {
		errs.add("type", KeyInvalidChoice)
	}
	errs.requireText("maintenanceId", p.MaintenanceID)
	return errs
}

// PledgeEdit is the full state of the pledge edit form.
type PledgeEdit struct {
	VolunteerName    string
	VolunteerContact string
	Description      string
	Type             PledgeType
	Status           PledgeStatus
}

// PledgeUpdate is a PATCH payload; nil fields are left unchanged.
type PledgeUpdate struct {
	VolunteerName    *string       `json:"volunteerName,omitempty"`
	VolunteerContact *string       `json:"volunteerContact,omitempty"`
	Description      *string       `json:"description,omitempty"`
	Type             *PledgeType   `json:"type,omitempty"`
	Status           *PledgeStatus `json:"status,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u PledgeUpdate) Empty() bool {
	return u.VolunteerName == nil && u.VolunteerContact == nil && u.Description == nil &&
		u.Type == nil && u.Status == nil
}

// DiffPledge builds a patch holding only the fields edit changes.
func DiffPledge(original Pledge, edit PledgeEdit) PledgeUpdate {
	var update PledgeUpdate
	if name := strings.TrimSpace(edit.VolunteerName); name != original.VolunteerName {
		update.VolunteerName = &name
	}
	if contact := strings.TrimSpace(edit.VolunteerContact); contact != original.VolunteerContact {
		update.VolunteerContact = &contact
	}
	if description := strings.TrimSpace(edit.Description); description != original.Description {
		update.Description = &description
	}
	if edit.Type != "" && edit.Type != original.Type {
		pledgeType := edit.Type
		update.Type = &pledgeType
	}
	if edit.Status != "" && edit.Status != original.Status {
		status := edit.Status
		update.Status = &status
	}
	return update
}

// Validate checks the changed fields and the status transition from current.
func (u PledgeUpdate) Validate(current PledgeStatus) FieldErrors {
	errs := FieldErrors{}
	if u.VolunteerName != nil {
		errs.requireLength("volunteerName", *u.VolunteerName, 5, 100)
	}
	if u.VolunteerContact != nil {
		errs.requireLength("volunteerContact", *u.VolunteerContact, 5, 30)
	}
	if u.Description != nil {
		errs.requireMaxLength("description", *u.Description, 3000)
	}
	if u.Type != nil && !validChoice(*u.Type, PledgeTypes) {
		errs.add("type", KeyInvalidChoice)
	}
	if u.Status != nil {
		switch {
		case !validChoice(*u.Status, PledgeStatuses):
			errs.add("status", KeyInvalidChoice)
		case !current.CanTransition(*u.Status):
			errs.add("status", KeyInvalidTransition)
		}
	}
	return errs
}

package repair

import "strings"

// Maintenance is a request to repair part of a community health facility.
type Maintenance struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Category      Category          `json:"category"`
	ScheduledDate Timestamp         `json:"scheduledDate"`
	Status        MaintenanceStatus `json:"status"`
	CreatedAt     Timestamp         `json:"createdAt"`
	UpdatedAt     Timestamp         `json:"updatedAt"`
}

// MaintenanceDetail is a maintenance with its actions and pledges.
type MaintenanceDetail struct {
	Maintenance
	Actions []Action
	Pledges []Pledge
}

// Active reports whether the status still accepts work.
func (s MaintenanceStatus) Active() bool {
	return s == MaintenanceOpen || s == MaintenanceInProgress
}

// Terminal reports whether the status can no longer change.
func (s MaintenanceStatus) Terminal() bool {
	return s == MaintenanceCompleted || s == MaintenanceCanceled
}

// CanTransition reports whether a maintenance in s may move to next.
// Staying in the same status is always allowed.
func (s MaintenanceStatus) CanTransition(next MaintenanceStatus) bool {
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if s == MaintenanceInProgress && next == MaintenanceOpen {
		return false
	}
	return validChoice(next, MaintenanceStatuses)
}

// AcceptsActions reports whether actions may be recorded or edited.
func (m Maintenance) AcceptsActions() bool {
	return m.Status.Active()
}

// NewMaintenance is the payload that opens a maintenance request.
type NewMaintenance struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	ScheduledDate Timestamp `json:"scheduledDate"`
}

// Validate checks the payload against the API's constraints.
func (m NewMaintenance) Validate() FieldErrors {
	errs := FieldErrors{}
	errs.requireLength("title", m.Title, 5, 100)
	errs.requireMaxLength("description", m.Description, 3000)
	if !validChoice(m.Category, Categories) {
		errs.add("category", KeyInvalidChoice)
	}
	if m.ScheduledDate.IsZero() {
		errs.add("scheduledDate", KeyRequired)
	}
	return errs
}

// MaintenanceEdit is the full state of the maintenance edit form.
type MaintenanceEdit struct {
	Title       string
	Description string
	Category    Category
	Status      MaintenanceStatus
}

// MaintenanceUpdate is a PATCH payload; nil fields are left unchanged.
type MaintenanceUpdate struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Category    *Category          `json:"category,omitempty"`
	Status      *MaintenanceStatus `json:"status,omitempty"`
}

// Empty reports whether the update changes nothing.
func (u MaintenanceUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Category == nil && u.Status == nil
}

// DiffMaintenance builds a patch holding only the fields edit changes.
func DiffMaintenance(original Maintenance, edit MaintenanceEdit) MaintenanceUpdate {
	var update MaintenanceUpdate
	if title := strings.TrimSpace(edit.Title); title != original.Title {
		update.Title = &title
	}
	if description := strings.TrimSpace(edit.Description); description != original.Description {
		update.Description = &description
	}
	if edit.Category != "" && edit.Category != original.Category {
		category := edit.Category
		update.Category = &category
	}
	if edit.Status != "" && edit.Status != original.Status {
		status := edit.Status
		update.Status = &status
	}
	return update
}

// Validate checks the changed fields and the status transition from current.
func (u MaintenanceUpdate) Validate(current MaintenanceStatus) FieldErrors {
	errs := FieldErrors{}
	if u.Title != nil {
		errs.requireLength("title", *u.Title, 5, 100)
	}
	if u.Description != nil {
		errs.requireMaxLength("description", *u.Description, 3000)
	}
	if u.Category != nil && !validChoice(*u.Category, Categories) {
		errs.add("category", KeyInvalidChoice)
	}
	if u.Status != nil {
		switch {
		case !validChoice(*u.Status, MaintenanceStatuses):
			errs.add("status", KeyInvalidChoice)
		case !current.CanTransition(*u.Status):
			errs.add("status", KeyInvalidTransition)
		}
	}
	return errs
}

// StatusFilter is the list page's status selector. Besides concrete
// statuses it accepts the pseudo values active, inactive and all.
type StatusFilter string

const (
	StatusFilterNone     StatusFilter = ""
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// ParseStatusFilter normalizes a raw selector value. Unknown values select
// nothing in particular.
func ParseStatusFilter(raw string) StatusFilter {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case string(StatusFilterAll), string(StatusFilterActive), string(StatusFilterInactive):
		return StatusFilter(strings.ToLower(raw))
	}
	if status, err := ParseMaintenanceStatus(raw); err == nil {
		return StatusFilter(status)
	}
	return StatusFilterNone
}

// Pseudo reports whether the filter groups several statuses.
func (f StatusFilter) Pseudo() bool {
	return f == StatusFilterActive || f == StatusFilterInactive
}

// Status returns the concrete status selected, if any.
func (f StatusFilter) Status() (MaintenanceStatus, bool) {
	status := MaintenanceStatus(f)
	if validChoice(status, MaintenanceStatuses) {
		return status, true
	}
	return "", false
}

// Matches reports whether status passes the filter.
func (f StatusFilter) Matches(status MaintenanceStatus) bool {
	switch f {
	case StatusFilterNone, StatusFilterAll:
		return true
	case StatusFilterActive:
		return status.Active()
	case StatusFilterInactive:
		return !status.Active()
	default:
		return MaintenanceStatus(f) == status
	}
}

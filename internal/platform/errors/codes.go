// Package errors provides structured error handling shared by the dashboard
// and its remote API client.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeNotFound           Code = "NOT_FOUND"

	// Upstream errors
	CodeUnavailable Code = "UNAVAILABLE"

	// Maintenance errors
	CodeMaintenanceInvalidStatusTransition Code = "MAINTENANCE_INVALID_STATUS_TRANSITION"
	CodeMaintenanceNothingToSave           Code = "MAINTENANCE_NOTHING_TO_SAVE"

	// Pledge errors
	CodePledgeInvalidStatusTransition Code = "PLEDGE_INVALID_STATUS_TRANSITION"
	CodePledgeNothingToSave           Code = "PLEDGE_NOTHING_TO_SAVE"

	// Form errors
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// HTTPStatus maps domain codes to the status a dashboard response should carry.
func (c Code) HTTPStatus() int {
	switch c {
	// Unprocessable - the submitted form can be corrected and resubmitted
	case CodeInvalidArgument,
		CodeValidationFailed,
		CodeMaintenanceNothingToSave,
		CodePledgeNothingToSave:
		return http.StatusUnprocessableEntity

	// Conflict - state doesn't allow operation
	case CodeFailedPrecondition,
		CodeMaintenanceInvalidStatusTransition,
		CodePledgeInvalidStatusTransition:
		return http.StatusConflict

	case CodeNotFound:
		return http.StatusNotFound

	case CodeUnavailable:
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// MessageKey returns the localization key used to render the code to users.
func (c Code) MessageKey() string {
	switch c {
	case CodeInvalidArgument, CodeValidationFailed:
		return "error.invalid_argument"
	case CodeFailedPrecondition:
		return "error.failed_precondition"
	case CodeNotFound:
		return "error.not_found"
	case CodeUnavailable:
		return "error.unavailable"
	case CodeMaintenanceInvalidStatusTransition, CodePledgeInvalidStatusTransition:
		return "error.invalid_status_transition"
	case CodeMaintenanceNothingToSave, CodePledgeNothingToSave:
		return "error.nothing_to_save"
	default:
		return "error.unknown"
	}
}

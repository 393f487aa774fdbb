// Package repair models maintenance requests, volunteer pledges and the
// actions taken to resolve maintenance requests, as exchanged with the
// remote maintenance API.
package repair

import (
	"fmt"
	"strings"
)

// MaintenanceStatus is the lifecycle state of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "OPEN"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceCanceled   MaintenanceStatus = "CANCELED"
)

// MaintenanceStatuses lists statuses in display order.
var MaintenanceStatuses = []MaintenanceStatus{
	MaintenanceOpen,
	MaintenanceInProgress,
	MaintenanceCompleted,
	MaintenanceCanceled,
}

// Category classifies the facility area a maintenance request affects.
type Category string

const (
	CategoryBuilding   Category = "BUILDING"
	CategoryElectrical Category = "ELECTRICAL"
	CategoryPlumbing   Category = "PLUMBING"
	CategoryHVAC       Category = "HVAC"
	CategoryFurniture  Category = "FURNITURE"
	CategoryGardening  Category = "GARDENING"
	CategorySecurity   Category = "SECURITY"
	CategoryOthers     Category = "OTHERS"
)

// Categories lists categories in display order.
var Categories = []Category{
	CategoryBuilding,
	CategoryElectrical,
	CategoryPlumbing,
	CategoryHVAC,
	CategoryFurniture,
	CategoryGardening,
	CategorySecurity,
	CategoryOthers,
}

// PledgeStatus is the lifecycle state of a volunteer pledge.
type PledgeStatus string

const (
	PledgeOffered   PledgeStatus = "OFFERED"
	PledgePending   PledgeStatus = "PENDING"
	PledgeRejected  PledgeStatus = "REJECTED"
	PledgeCompleted PledgeStatus = "COMPLETED"
	PledgeCanceled  PledgeStatus = "CANCELED"
)

// PledgeStatuses lists statuses in display order.
var PledgeStatuses = []PledgeStatus{
	PledgeOffered,
	PledgePending,
	PledgeRejected,
	PledgeCompleted,
	PledgeCanceled,
}

// PledgeType distinguishes material donations from offered labor.
type PledgeType string

const (
	PledgeMaterial PledgeType = "MATERIAL"
	PledgeLabor    PledgeType = "LABOR"
)

// PledgeTypes lists pledge types in display order.
var PledgeTypes = []PledgeType{PledgeMaterial, PledgeLabor}

// OutcomeStatus reports how a maintenance action ended.
type OutcomeStatus string

const (
	OutcomeSuccess        OutcomeStatus = "SUCCESS"
	OutcomePartialSuccess OutcomeStatus = "PARTIAL_SUCCESS"
	OutcomeFailure        OutcomeStatus = "FAILURE"
)

// OutcomeStatuses lists outcomes in display order.
var OutcomeStatuses = []OutcomeStatus{OutcomeSuccess, OutcomePartialSuccess, OutcomeFailure}

// ParseMaintenanceStatus parses a status name, ignoring case and surrounding space.
func ParseMaintenanceStatus(raw string) (MaintenanceStatus, error) {
	return parseEnum(raw, "maintenance status", MaintenanceStatuses)
}

// ParseCategory parses a category name, ignoring case and surrounding space.
func ParseCategory(raw string) (Category, error) {
	return parseEnum(raw, "category", Categories)
}

// ParsePledgeStatus parses a pledge status name, ignoring case and surrounding space.
func ParsePledgeStatus(raw string) (PledgeStatus, error) {
	return parseEnum(raw, "pledge status", PledgeStatuses)
}

// ParsePledgeType parses a pledge type name, ignoring case and surrounding space.
func ParsePledgeType(raw string) (PledgeType, error) {
	return parseEnum(raw, "pledge type", PledgeTypes)
}

// ParseOutcomeStatus parses an outcome name, ignoring case and surrounding space.
func ParseOutcomeStatus(raw string) (OutcomeStatus, error) {
	return parseEnum(raw, "outcome status", OutcomeStatuses)
}

func parseEnum[T ~string](raw, kind string, values []T) (T, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, value := range values {
		if string(value) == normalized {
			return value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, raw)
}

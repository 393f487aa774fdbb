package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
	Metrics      = "/metrics"
	Healthz      = "/healthz"
)

const (
	DashboardContent = "/dashboard/content"
)

const (
	Maintenances       = "/maintenances"
	MaintenancesTable  = "/maintenances/table"
	MaintenancesNew    = "/maintenances/new"
	MaintenancesPrefix = "/maintenances/"
)

const (
	Actions            = "/actions"
	ActionsTable       = "/actions/table"
	ActionsExport      = "/actions/export.csv"
	ActionsMaterialRow = "/actions/material-row"
)

const (
	Pledges       = "/pledges"
	PledgesTable  = "/pledges/table"
	PledgesNew    = "/pledges/new"
	PledgesPrefix = "/pledges/"
)

const (
	History      = "/history"
	HistoryTable = "/history/table"
)

// Maintenance detail tabs.
const (
	TabDetails = "details"
	TabActions = "actions"
	TabPledges = "pledges"
)

func Maintenance(maintenanceID string) string {
	return Maintenances + "/" + escapeSegment(maintenanceID)
}

func MaintenanceEdit(maintenanceID string) string {
	return Maintenance(maintenanceID) + "/edit"
}

func MaintenanceTab(maintenanceID string, tab string) string {
	switch tab {
	case TabActions, TabPledges:
		return Maintenance(maintenanceID) + "/" + tab
	default:
		return Maintenance(maintenanceID)
	}
}

func MaintenanceActions(maintenanceID string) string {
	return MaintenanceTab(maintenanceID, TabActions)
}

func MaintenancePledges(maintenanceID string) string {
	return MaintenanceTab(maintenanceID, TabPledges)
}

func MaintenanceActionNew(maintenanceID string) string {
	return MaintenanceActions(maintenanceID) + "/new"
}

func MaintenanceAction(maintenanceID string, actionID string) string {
	return MaintenanceActions(maintenanceID) + "/" + escapeSegment(actionID)
}

func MaintenanceActionEdit(maintenanceID string, actionID string) string {
	return MaintenanceAction(maintenanceID, actionID) + "/edit"
}

func Pledge(pledgeID string) string {
	return Pledges + "/" + escapeSegment(pledgeID)
}

func PledgeEdit(pledgeID string) string {
	return Pledge(pledgeID) + "/edit"
}

func PledgeNewFor(maintenanceID string) string {
	maintenanceID = strings.TrimSpace(maintenanceID)
	if maintenanceID == "" {
		return PledgesNew
	}
	return PledgesNew + "?" + url.Values{"maintenanceId": {maintenanceID}}.Encode()
}

// WithMessage appends a flash message to target.
func WithMessage(target string, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return target
	}
	separator := "?"
	if strings.Contains(target, "?") {
		separator = "&"
	}
	return target + separator + url.Values{"message": {message}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

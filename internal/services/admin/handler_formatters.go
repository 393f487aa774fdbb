package admin

import (
	"strings"
	"time"

	"github.com/louisbranch/conectareparo/internal/repair"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"golang.org/x/text/message"
)

const (
	dateInputLayout     = "2006-01-02"
	dateTimeInputLayout = "2006-01-02T15:04"
)

// maintenanceStatusBadge returns the badge for a maintenance status.
func maintenanceStatusBadge(status repair.MaintenanceStatus, loc *message.Printer) templates.BadgeView {
	switch status {
	case repair.MaintenanceOpen:
		return templates.BadgeView{Label: loc.Sprintf("status.maintenance.OPEN"), Variant: templates.VariantDefault}
	case repair.MaintenanceInProgress:
		return templates.BadgeView{Label: loc.Sprintf("status.maintenance.IN_PROGRESS"), Variant: templates.VariantWarning}
	case repair.MaintenanceCompleted:
		return templates.BadgeView{Label: loc.Sprintf("status.maintenance.COMPLETED"), Variant: templates.VariantSuccess}
	case repair.MaintenanceCanceled:
		return templates.BadgeView{Label: loc.Sprintf("status.maintenance.CANCELED"), Variant: templates.VariantDestructive}
	default:
		return unknownBadge(string(status), loc)
	}
}

func pledgeStatusBadge(status repair.PledgeStatus, loc *message.Printer) templates.BadgeView {
	switch status {
	case repair.PledgeOffered:
		return templates.BadgeView{Label: loc.Sprintf("status.pledge.OFFERED"), Variant: templates.VariantDefault}
	case repair.PledgePending:
		return templates.BadgeView{Label: loc.Sprintf("status.pledge.PENDING"), Variant: templates.VariantWarning}
	case repair.PledgeRejected:
		return templates.BadgeView{Label: loc.Sprintf("status.pledge.REJECTED"), Variant: templates.VariantDestructive}
	case repair.PledgeCompleted:
		return templates.BadgeView{Label: loc.Sprintf("status.pledge.COMPLETED"), Variant: templates.VariantSuccess}
	case repair.PledgeCanceled:
		return templates.BadgeView{Label: loc.Sprintf("status.pledge.CANCELED"), Variant: templates.VariantSecondary}
	default:
		return unknownBadge(string(status), loc)
	}
}

func outcomeBadge(outcome repair.OutcomeStatus, loc *message.Printer) templates.BadgeView {
	switch outcome {
	case repair.OutcomeSuccess:
		return templates.BadgeView{Label: loc.Sprintf("outcome.SUCCESS"), Variant: templates.VariantSuccess}
	case repair.OutcomePartialSuccess:
		return templates.BadgeView{Label: loc.Sprintf("outcome.PARTIAL_SUCCESS"), Variant: templates.VariantWarning}
	case repair.OutcomeFailure:
		return templates.BadgeView{Label: loc.Sprintf("outcome.FAILURE"), Variant: templates.VariantDestructive}
	default:
		return unknownBadge(string(outcome), loc)
	}
}

func categoryBadge(category repair.Category, loc *message.Printer) templates.BadgeView {
	badge := templates.BadgeView{Label: categoryLabel(category, loc), Variant: templates.VariantSecondary}
	switch category {
	case repair.CategoryBuilding:
		badge.Icon = "🏢"
	case repair.CategoryElectrical:
		badge.Icon = "⚡"
		badge.Variant = templates.VariantWarning
	case repair.CategoryPlumbing:
		badge.Icon = "🔧"
	case repair.CategoryHVAC:
		badge.Icon = "❄️"
	case repair.CategoryFurniture:
		badge.Icon = "🪑"
	case repair.CategoryGardening:
		badge.Icon = "🌿"
		badge.Variant = templates.VariantSuccess
	case repair.CategorySecurity:
		badge.Icon = "🔒"
		badge.Variant = templates.VariantDestructive
	case repair.CategoryOthers:
		badge.Icon = "📦"
	}
	return badge
}

func categoryLabel(category repair.Category, loc *message.Printer) string {
	switch category {
	case repair.CategoryBuilding, repair.CategoryElectrical, repair.CategoryPlumbing, repair.CategoryHVAC,
		repair.CategoryFurniture, repair.CategoryGardening, repair.CategorySecurity, repair.CategoryOthers:
		return loc.Sprintf("category." + string(category))
	default:
		return fallbackLabel(string(category), loc)
	}
}

func pledgeTypeBadge(pledgeType repair.PledgeType, loc *message.Printer) templates.BadgeView {
	switch pledgeType {
	case repair.PledgeMaterial:
		return templates.BadgeView{Label: loc.Sprintf("pledge_type.MATERIAL"), Variant: templates.VariantSecondary, Icon: "📦"}
	case repair.PledgeLabor:
		return templates.BadgeView{Label: loc.Sprintf("pledge_type.LABOR"), Variant: templates.VariantWarning, Icon: "🔧"}
	default:
		return unknownBadge(string(pledgeType), loc)
	}
}

func unknownBadge(value string, loc *message.Printer) templates.BadgeView {
	return templates.BadgeView{Label: fallbackLabel(value, loc), Variant: templates.VariantOutline}
}

func fallbackLabel(value string, loc *message.Printer) string {
	if strings.TrimSpace(value) == "" {
		return loc.Sprintf("label.unspecified")
	}
	return value
}

// dateLayout returns the display layout for dates in lang.
func dateLayout(lang string) string {
	if strings.HasPrefix(lang, "en") {
		return "01/02/2006"
	}
	return "02/01/2006"
}

func dateTimeLayout(lang string) string {
	if strings.HasPrefix(lang, "en") {
		return "01/02/2006 3:04 PM"
	}
	return "02/01/2006 15:04"
}

// formatDate renders a date, or an empty string for zero values.
func formatDate(ts repair.Timestamp, lang string) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(dateLayout(lang))
}

func formatDateTime(ts repair.Timestamp, lang string) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(dateTimeLayout(lang))
}

func formatTime(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	return formatDateTime(repair.NewTimestamp(t), lang)
}

// dateInput formats a timestamp for an <input type="date">.
func dateInput(ts repair.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(dateInputLayout)
}

func dateTimeInput(ts repair.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(dateTimeInputLayout)
}

// formatQuantity renders a material quantity with its unit.
func formatQuantity(material repair.Material) string {
	quantity := strings.TrimSpace(material.Quantity.String())
	unit := strings.TrimSpace(material.UnitOfMeasure)
	if unit == "" {
		return quantity
	}
	return quantity + " " + unit
}

// truncate shortens text to limit runes, marking the cut with an ellipsis.
func truncate(value string, limit int) string {
	runes := []rune(strings.TrimSpace(value))
	if limit <= 0 || len(runes) <= limit {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

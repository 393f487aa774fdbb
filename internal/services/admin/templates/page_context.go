package templates

// PageContext provides shared layout context for dashboard pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// Nav is the active sidebar section, one of the Nav* constants.
	Nav string
	// Flash is shown above the page content.
	Flash AlertView
}

// Sidebar sections.
const (
	NavDashboard    = "dashboard"
	NavMaintenances = "maintenances"
	NavActions      = "actions"
	NavPledges      = "pledges"
	NavHistory      = "history"
)

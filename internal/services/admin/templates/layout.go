package templates

import (
	"strings"

	"github.com/louisbranch/conectareparo/internal/platform/branding"
	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
)

const (
	htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	daisyUIURL    = "https://cdn.jsdelivr.net/npm/daisyui@4.12.14/dist/full.min.css"
	tailwindURL   = "https://cdn.tailwindcss.com"
	// htmxConfig swaps error responses too; error pages and re-rendered
	// forms carry 4xx and 5xx statuses.
	htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"...","swap":true}]}`
)

// MainID is the element htmx navigation swaps.
const MainID = "main"

type navItem struct {
	key   string
	label string
	href  string
}

var navItems = []navItem{
	{key: NavDashboard, label: "nav.dashboard", href: routepath.Root},
	{key: NavMaintenances, label: "nav.maintenances", href: routepath.Maintenances},
	{key: NavActions, label: "nav.actions", href: routepath.Actions},
	{key: NavPledges, label: "nav.pledges", href: routepath.Pledges},
	{key: NavHistory, label: "nav.history", href: routepath.History},
}

// ComposePageTitle appends the product name to a page title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	suffix := " | " + branding.AppName
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, suffix) {
		return title
	}
	return title + suffix
}

func pageLang(page PageContext) string {
	if page.Lang == "" {
		return "pt-BR"
	}
	return page.Lang
}

// activeLanguageLabel names the selected language for the switcher button.
func activeLanguageLabel(page PageContext) string {
	for _, option := range LanguageOptions(page, page.Loc) {
		if option.Active {
			return option.Label
		}
	}
	return ""
}

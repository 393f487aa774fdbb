package templates

// DashboardPageView is the dashboard shell; its content loads lazily.
type DashboardPageView struct {
	Heading        PageHeading
	ContentURL     string
	LoadingMessage string
}

// DashboardView holds the dashboard counters and recent activity.
type DashboardView struct {
	Stats []StatView
	// Error reports counters that could not be loaded.
	Error         AlertView
	ActivityTitle string
	ActivityEmpty string
	Activity      []ActivityView
}

// StatView is one counter card.
type StatView struct {
	Label       string
	Value       string
	Description string
	Href        string
}

// ActivityView is one entry of the recent activity feed.
type ActivityView struct {
	Kind    string
	Summary string
	Href    string
	When    string
}

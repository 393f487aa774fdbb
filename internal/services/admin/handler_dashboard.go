package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/conectareparo/internal/repair"
	"github.com/louisbranch/conectareparo/internal/services/admin/integration/restclient"
	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
	"github.com/louisbranch/conectareparo/internal/services/admin/templates"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

const (
	// recentActionsWindow is the period counted by the recent actions card.
	recentActionsWindow = 30 * 24 * time.Hour
	// missingStat replaces a counter that could not be loaded.
	missingStat = "—"
)

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r, templates.NavDashboard)
	view := templates.DashboardPageView{
		Heading: templates.PageHeading{
			Title:       loc.Sprintf("dashboard.title"),
			Subtitle:    loc.Sprintf("dashboard.subtitle"),
			ActionURL:   routepath.MaintenancesNew,
			ActionLabel: loc.Sprintf("action.new_maintenance"),
		},
		ContentURL:     routepath.DashboardContent,
		LoadingMessage: loc.Sprintf("dashboard.loading"),
	}
	h.renderPage(w, r, page, loc.Sprintf("dashboard.title"), templates.DashboardPage(view))
}

// dashboardCounts holds the dashboard counters. A negative value marks a
// counter that failed to load.
type dashboardCounts struct {
	activeMaintenances int64
	openPledges        int64
	recentActions      int64
	volunteers         int64
}

// handleDashboardContent loads the counters concurrently. Each counter fails
// on its own; the page still renders with the others.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	counts := dashboardCounts{activeMaintenances: -1, openPledges: -1, recentActions: -1, volunteers: -1}
	var activity []storage.Activity

	// The group has no shared context: one failed counter must not cancel
	// the others. Wait reports the first failure for the warning banner.
	ctx := r.Context()
	var g errgroup.Group
	count := func(name string, dst *int64, load func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := load(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}
	count("count active maintenances", &counts.activeMaintenances, h.countActiveMaintenances)
	count("count open pledges", &counts.openPledges, h.countOpenPledges)
	count("count recent actions", &counts.recentActions, h.countRecentActions)
	count("count volunteers", &counts.volunteers, h.countVolunteers)
	if h.activity != nil {
		// The feed is optional and never raises the banner.
		g.Go(func() error {
			entries, err := h.activity.ListRecentActivity(ctx, recentActivityLimit)
			if err != nil {
				log.Printf("list recent activity: %v", err)
				return nil
			}
			activity = entries
			return nil
		})
	}
	statsErr := g.Wait()

	view := templates.DashboardView{
		Stats: []templates.StatView{
			{
				Label:       loc.Sprintf("dashboard.stat.active_maintenances"),
				Value:       statValue(counts.activeMaintenances),
				Description: loc.Sprintf("dashboard.stat.active_maintenances_desc"),
				Href:        routepath.Maintenances + "?" + filterStatus + "=" + string(repair.StatusFilterActive),
			},
			{
				Label:       loc.Sprintf("dashboard.stat.open_pledges"),
				Value:       statValue(counts.openPledges),
				Description: loc.Sprintf("dashboard.stat.open_pledges_desc"),
				Href:        routepath.Pledges,
			},
			{
				Label:       loc.Sprintf("dashboard.stat.recent_actions"),
				Value:       statValue(counts.recentActions),
				Description: loc.Sprintf("dashboard.stat.recent_actions_desc"),
				Href:        routepath.Actions,
			},
			{
				Label:       loc.Sprintf("dashboard.stat.volunteers"),
				Value:       statValue(counts.volunteers),
				Description: loc.Sprintf("dashboard.stat.volunteers_desc"),
			},
		},
		ActivityTitle: loc.Sprintf("dashboard.activity_title"),
		ActivityEmpty: loc.Sprintf("dashboard.activity_empty"),
		Activity:      activityViews(loc, lang, activity),
	}
	if statsErr != nil {
		log.Printf("dashboard counters: %v", statsErr)
		view.Error = templates.AlertView{Kind: templates.AlertError, Message: loc.Sprintf("dashboard.stats_error")}
	}
	renderFragment(w, r, templates.DashboardContent(view))
}

func statValue(count int64) string {
	if count < 0 {
		return missingStat
	}
	return strconv.FormatInt(count, 10)
}

// countActiveMaintenances sums open and in progress maintenances using
// single-row pages so only the totals are transferred.
func (h *Handler) countActiveMaintenances(ctx context.Context) (int64, error) {
	var total int64
	for _, status := range []repair.MaintenanceStatus{repair.MaintenanceOpen, repair.MaintenanceInProgress} {
		page, err := h.api.ListMaintenances(ctx, restclient.MaintenanceFilter{
			Status:      status,
			PageRequest: restclient.PageRequest{Size: 1},
		})
		if err != nil {
			return 0, err
		}
		total += page.TotalElements
	}
	return total, nil
}

func (h *Handler) countOpenPledges(ctx context.Context) (int64, error) {
	var total int64
	for _, status := range []repair.PledgeStatus{repair.PledgeOffered, repair.PledgePending} {
		page, err := h.api.ListPledges(ctx, restclient.PledgeFilter{
			Status:      status,
			PageRequest: restclient.PageRequest{Size: 1},
		})
		if err != nil {
			return 0, err
		}
		total += page.TotalElements
	}
	return total, nil
}

func (h *Handler) countRecentActions(ctx context.Context) (int64, error) {
	actions, err := h.api.ListActions(ctx)
	if err != nil {
		return 0, err
	}
	since := h.now().Add(-recentActionsWindow)
	var total int64
	for _, action := range actions {
		if !action.CreatedAt.Before(since) {
			total++
		}
	}
	return total, nil
}

// countVolunteers counts distinct volunteers by contact, falling back to the
// name when no contact was given.
func (h *Handler) countVolunteers(ctx context.Context) (int64, error) {
	pledges, err := h.api.ListAllPledges(ctx, restclient.PledgeFilter{})
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(pledges))
	for _, pledge := range pledges {
		key := strings.ToLower(strings.TrimSpace(firstNonEmpty(pledge.VolunteerContact, pledge.VolunteerName)))
		if key == "" {
			continue
		}
		seen[key] = struct{}{}
	}
	return int64(len(seen)), nil
}

func activityViews(loc *message.Printer, lang string, entries []storage.Activity) []templates.ActivityView {
	views := make([]templates.ActivityView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, templates.ActivityView{
			Kind:    loc.Sprintf("activity." + string(entry.Kind)),
			Summary: entry.Summary,
			Href:    activityHref(entry),
			When:    formatTime(entry.CreatedAt, lang),
		})
	}
	return views
}

func activityHref(entry storage.Activity) string {
	if entry.EntityID == "" {
		return ""
	}
	switch entry.Kind {
	case storage.KindMaintenanceCreated, storage.KindMaintenanceUpdated:
		return routepath.Maintenance(entry.EntityID)
	case storage.KindActionCreated, storage.KindActionUpdated:
		if entry.ParentID == "" {
			return ""
		}
		return routepath.MaintenanceAction(entry.ParentID, entry.EntityID)
	case storage.KindPledgeCreated, storage.KindPledgeUpdated:
		return routepath.Pledge(entry.EntityID)
	}
	return ""
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	h.renderNotFound(w, r, h.pageContext(lang, loc, r, ""))
}

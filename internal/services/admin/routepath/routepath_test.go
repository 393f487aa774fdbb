package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		Root:               "/",
		StaticPrefix:       "/static/",
		DashboardContent:   "/dashboard/content",
		Maintenances:       "/maintenances",
		MaintenancesTable:  "/maintenances/table",
		MaintenancesNew:    "/maintenances/new",
		MaintenancesPrefix: "/maintenances/",
		Actions:            "/actions",
		ActionsTable:       "/actions/table",
		ActionsExport:      "/actions/export.csv",
		Pledges:            "/pledges",
		PledgesTable:       "/pledges/table",
		PledgesNew:         "/pledges/new",
		History:            "/history",
		HistoryTable:       "/history/table",
	}
	for got, want := range tests {
		if got != want {
			t.Fatalf("route = %q, want %q", got, want)
		}
	}
}

func TestRouteBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "maintenance", got: Maintenance(" m-1 "), want: "/maintenances/m-1"},
		{name: "maintenance edit", got: MaintenanceEdit("m-1"), want: "/maintenances/m-1/edit"},
		{name: "details tab", got: MaintenanceTab("m-1", TabDetails), want: "/maintenances/m-1"},
		{name: "unknown tab", got: MaintenanceTab("m-1", "other"), want: "/maintenances/m-1"},
		{name: "actions tab", got: MaintenanceActions("m-1"), want: "/maintenances/m-1/actions"},
		{name: "pledges tab", got: MaintenancePledges("m-1"), want: "/maintenances/m-1/pledges"},
		{name: "action new", got: MaintenanceActionNew("m-1"), want: "/maintenances/m-1/actions/new"},
		{name: "action", got: MaintenanceAction("m-1", "a-1"), want: "/maintenances/m-1/actions/a-1"},
		{name: "action edit", got: MaintenanceActionEdit("m-1", "a-1"), want: "/maintenances/m-1/actions/a-1/edit"},
		{name: "pledge", got: Pledge("p-1"), want: "/pledges/p-1"},
		{name: "pledge edit", got: PledgeEdit("p-1"), want: "/pledges/p-1/edit"},
		{name: "pledge new", got: PledgeNewFor(""), want: "/pledges/new"},
		{name: "pledge new for maintenance", got: PledgeNewFor("m-1"), want: "/pledges/new?maintenanceId=m-1"},
		{name: "escaped", got: Pledge("a/b"), want: "/pledges/a%2Fb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.got != tc.want {
				t.Fatalf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestWithMessage(t *testing.T) {
	t.Parallel()

	if got := WithMessage("/pledges/p-1", "Salvo com sucesso"); got != "/pledges/p-1?message=Salvo+com+sucesso" {
		t.Fatalf("WithMessage = %q", got)
	}
	if got := WithMessage("/pledges/new?maintenanceId=m-1", "ok"); got != "/pledges/new?maintenanceId=m-1&message=ok" {
		t.Fatalf("WithMessage = %q", got)
	}
	if got := WithMessage("/pledges", " "); got != "/pledges" {
		t.Fatalf("WithMessage = %q", got)
	}
}

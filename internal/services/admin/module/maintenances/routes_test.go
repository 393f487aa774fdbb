package maintenances

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall        string
	lastMaintenance string
	lastAction      string
	lastTab         string
}

func (f *fakeService) HandleMaintenancesPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "maintenances_page"
}

func (f *fakeService) HandleMaintenancesTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "maintenances_table"
}

func (f *fakeService) HandleMaintenanceNew(http.ResponseWriter, *http.Request) {
	f.lastCall = "maintenance_new"
}

func (f *fakeService) HandleMaintenanceCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "maintenance_create"
}

func (f *fakeService) HandleMaintenanceDetail(_ http.ResponseWriter, _ *http.Request, maintenanceID string, tab string) {
	f.lastCall = "maintenance_detail"
	f.lastMaintenance = maintenanceID
	f.lastTab = tab
}

func (f *fakeService) HandleMaintenanceEdit(_ http.ResponseWriter, _ *http.Request, maintenanceID string) {
	f.lastCall = "maintenance_edit"
	f.lastMaintenance = maintenanceID
}

func (f *fakeService) HandleMaintenanceUpdate(_ http.ResponseWriter, _ *http.Request, maintenanceID string) {
	f.lastCall = "maintenance_update"
	f.lastMaintenance = maintenanceID
}

func (f *fakeService) HandleActionNew(_ http.ResponseWriter, _ *http.Request, maintenanceID string) {
	f.lastCall = "action_new"
	f.lastMaintenance = maintenanceID
}

func (f *fakeService) HandleActionCreate(_ http.ResponseWriter, _ *http.Request, maintenanceID string) {
	f.lastCall = "action_create"
	f.lastMaintenance = maintenanceID
}

func (f *fakeService) HandleActionDetail(_ http.ResponseWriter, _ *http.Request, maintenanceID string, actionID string) {
	f.lastCall = "action_detail"
	f.lastMaintenance = maintenanceID
	f.lastAction = actionID
}

func (f *fakeService) HandleActionEdit(_ http.ResponseWriter, _ *http.Request, maintenanceID string, actionID string) {
	f.lastCall = "action_edit"
	f.lastMaintenance = maintenanceID
	f.lastAction = actionID
}

func (f *fakeService) HandleActionUpdate(_ http.ResponseWriter, _ *http.Request, maintenanceID string, actionID string) {
	f.lastCall = "action_update"
	f.lastMaintenance = maintenanceID
	f.lastAction = actionID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method          string
		path            string
		wantCode        int
		wantCall        string
		wantMaintenance string
		wantAction      string
		wantTab         string
	}{
		{method: http.MethodGet, path: "/maintenances", wantCode: http.StatusOK, wantCall: "maintenances_page"},
		{method: http.MethodGet, path: "/maintenances/table", wantCode: http.StatusOK, wantCall: "maintenances_table"},
		{method: http.MethodGet, path: "/maintenances/new", wantCode: http.StatusOK, wantCall: "maintenance_new"},
		{method: http.MethodPost, path: "/maintenances/new", wantCode: http.StatusOK, wantCall: "maintenance_create"},
		{method: http.MethodGet, path: "/maintenances/m-1", wantCode: http.StatusOK, wantCall: "maintenance_detail", wantMaintenance: "m-1", wantTab: "details"},
		{method: http.MethodGet, path: "/maintenances/m-1/actions", wantCode: http.StatusOK, wantCall: "maintenance_detail", wantMaintenance: "m-1", wantTab: "actions"},
		{method: http.MethodGet, path: "/maintenances/m-1/pledges", wantCode: http.StatusOK, wantCall: "maintenance_detail", wantMaintenance: "m-1", wantTab: "pledges"},
		{method: http.MethodGet, path: "/maintenances/m-1/edit", wantCode: http.StatusOK, wantCall: "maintenance_edit", wantMaintenance: "m-1"},
		{method: http.MethodPost, path: "/maintenances/m-1/edit", wantCode: http.StatusOK, wantCall: "maintenance_update", wantMaintenance: "m-1"},
		{method: http.MethodGet, path: "/maintenances/m-1/actions/new", wantCode: http.StatusOK, wantCall: "action_new", wantMaintenance: "m-1"},
		{method: http.MethodPost, path: "/maintenances/m-1/actions/new", wantCode: http.StatusOK, wantCall: "action_create", wantMaintenance: "m-1"},
		{method: http.MethodGet, path: "/maintenances/m-1/actions/a-1", wantCode: http.StatusOK, wantCall: "action_detail", wantMaintenance: "m-1", wantAction: "a-1"},
		{method: http.MethodGet, path: "/maintenances/m-1/actions/a-1/edit", wantCode: http.StatusOK, wantCall: "action_edit", wantMaintenance: "m-1", wantAction: "a-1"},
		{method: http.MethodPost, path: "/maintenances/m-1/actions/a-1/edit", wantCode: http.StatusOK, wantCall: "action_update", wantMaintenance: "m-1", wantAction: "a-1"},
		{method: http.MethodPost, path: "/maintenances/m-1", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodPost, path: "/maintenances", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/maintenances/m-1/unknown", wantCode: http.StatusNotFound},
		{method: http.MethodGet, path: "/maintenances/m-1/actions/a-1/history", wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			*svc = fakeService{}

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastMaintenance != tc.wantMaintenance {
				t.Fatalf("lastMaintenance = %q, want %q", svc.lastMaintenance, tc.wantMaintenance)
			}
			if svc.lastAction != tc.wantAction {
				t.Fatalf("lastAction = %q, want %q", svc.lastAction, tc.wantAction)
			}
			if svc.lastTab != tc.wantTab {
				t.Fatalf("lastTab = %q, want %q", svc.lastTab, tc.wantTab)
			}
		})
	}
}

func TestHandleMaintenancePathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	req := httptest.NewRequest(http.MethodGet, "/maintenances/m-1/", nil)
	rec := httptest.NewRecorder()

	HandleMaintenancePath(rec, req, svc)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if location := rec.Header().Get("Location"); location != "/maintenances/m-1" {
		t.Fatalf("location = %q, want %q", location, "/maintenances/m-1")
	}
}

package actions

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleActionsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "actions_page"
}

func (f *fakeService) HandleActionsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "actions_table"
}

func (f *fakeService) HandleActionsExport(http.ResponseWriter, *http.Request) {
	f.lastCall = "actions_export"
}

func (f *fakeService) HandleMaterialRow(http.ResponseWriter, *http.Request) {
	f.lastCall = "material_row"
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantCall string
	}{
		{method: http.MethodGet, path: "/actions", wantCode: http.StatusOK, wantCall: "actions_page"},
		{method: http.MethodGet, path: "/actions/table", wantCode: http.StatusOK, wantCall: "actions_table"},
		{method: http.MethodGet, path: "/actions/export.csv", wantCode: http.StatusOK, wantCall: "actions_export"},
		{method: http.MethodGet, path: "/actions/material-row", wantCode: http.StatusOK, wantCall: "material_row"},
		{method: http.MethodPost, path: "/actions", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			svc.lastCall = ""
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
		})
	}
}

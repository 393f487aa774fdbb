package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleDashboard(http.ResponseWriter, *http.Request) {
	f.lastCall = "dashboard"
}

func (f *fakeService) HandleDashboardContent(http.ResponseWriter, *http.Request) {
	f.lastCall = "dashboard_content"
}

func (f *fakeService) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	f.lastCall = "not_found"
	http.NotFound(w, r)
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
		{method: http.MethodGet, path: "/", wantCode: http.StatusOK, wantCall: "dashboard"},
		{method: http.MethodGet, path: "/dashboard/content", wantCode: http.StatusOK, wantCall: "dashboard_content"},
		{method: http.MethodGet, path: "/unknown", wantCode: http.StatusNotFound, wantCall: "not_found"},
		{method: http.MethodPost, path: "/", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			svc.lastCall = ""

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

package pledges

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall   string
	lastPledge string
}

func (f *fakeService) HandlePledgesPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "pledges_page"
}

func (f *fakeService) HandlePledgesTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "pledges_table"
}

func (f *fakeService) HandlePledgeNew(http.ResponseWriter, *http.Request) {
	f.lastCall = "pledge_new"
}

func (f *fakeService) HandlePledgeCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "pledge_create"
}

func (f *fakeService) HandlePledgeDetail(_ http.ResponseWriter, _ *http.Request, pledgeID string) {
	f.lastCall = "pledge_detail"
	f.lastPledge = pledgeID
}

func (f *fakeService) HandlePledgeEdit(_ http.ResponseWriter, _ *http.Request, pledgeID string) {
	f.lastCall = "pledge_edit"
	f.lastPledge = pledgeID
}

func (f *fakeService) HandlePledgeUpdate(_ http.ResponseWriter, _ *http.Request, pledgeID string) {
	f.lastCall = "pledge_update"
	f.lastPledge = pledgeID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method     string
		path       string
		wantCode   int
		wantCall   string
		wantPledge string
	}{
		{method: http.MethodGet, path: "/pledges", wantCode: http.StatusOK, wantCall: "pledges_page"},
		{method: http.MethodGet, path: "/pledges/table", wantCode: http.StatusOK, wantCall: "pledges_table"},
		{method: http.MethodGet, path: "/pledges/new", wantCode: http.StatusOK, wantCall: "pledge_new"},
		{method: http.MethodPost, path: "/pledges/new", wantCode: http.StatusOK, wantCall: "pledge_create"},
		{method: http.MethodGet, path: "/pledges/p-1", wantCode: http.StatusOK, wantCall: "pledge_detail", wantPledge: "p-1"},
		{method: http.MethodGet, path: "/pledges/p-1/edit", wantCode: http.StatusOK, wantCall: "pledge_edit", wantPledge: "p-1"},
		{method: http.MethodPost, path: "/pledges/p-1/edit", wantCode: http.StatusOK, wantCall: "pledge_update", wantPledge: "p-1"},
		{method: http.MethodPost, path: "/pledges/p-1", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/pledges/p-1/status", wantCode: http.StatusNotFound},
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
			if svc.lastPledge != tc.wantPledge {
				t.Fatalf("lastPledge = %q, want %q", svc.lastPledge, tc.wantPledge)
			}
		})
	}
}

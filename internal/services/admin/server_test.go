package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/conectareparo/internal/platform/telemetry/metrics"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
)

// TestListenAndServeNilServer verifies nil server returns an error.
func TestListenAndServeNilServer(t *testing.T) {
	var s *Server
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}

func TestCloseNilServer(t *testing.T) {
	var s *Server
	s.Close()
}

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
	}{
		{name: "blank address", config: Config{APIURL: "http://localhost:8080"}},
		{name: "unsupported api scheme", config: Config{HTTPAddr: "127.0.0.1:0", APIURL: "ftp://localhost"}},
		{name: "unparseable api url", config: Config{HTTPAddr: "127.0.0.1:0", APIURL: "http://[::1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewServer(tc.config); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestListenAndServeStopsOnCancel verifies the server exits on context cancel.
func TestListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		APIURL:   "http://127.0.0.1:1",
		DBPath:   filepath.Join(t.TempDir(), "data", "admin.db"),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer server.Close()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe(ctx)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop on cancel")
	}
}

func TestServerHandlerRoutes(t *testing.T) {
	t.Parallel()

	handler := newServerHandler(&fakeAPI{}, nil, metrics.New("admin_test"))
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantContains string
		wantHeader   [2]string
	}{
		{name: "health", path: "/healthz", wantStatus: http.StatusOK, wantContains: "ok"},
		{name: "static asset", path: "/static/admin.css", wantStatus: http.StatusOK, wantHeader: [2]string{"Cache-Control", staticMaxAge}},
		{name: "trailing slash", path: "/maintenances/", wantStatus: http.StatusMovedPermanently, wantHeader: [2]string{"Location", "/maintenances"}},
		{name: "dashboard", path: "/", wantStatus: http.StatusOK, wantContains: "<!doctype html>"},
		{name: "unknown", path: "/missing", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantContains != "" && !strings.Contains(rec.Body.String(), tc.wantContains) {
				t.Fatalf("body missing %q", tc.wantContains)
			}
			if key := tc.wantHeader[0]; key != "" && rec.Header().Get(key) != tc.wantHeader[1] {
				t.Fatalf("%s = %q, want %q", key, rec.Header().Get(key), tc.wantHeader[1])
			}
		})
	}
}

func TestServerHandlerExportsRequestMetrics(t *testing.T) {
	t.Parallel()

	handler := newServerHandler(&fakeAPI{}, nil, metrics.New("admin_test"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/maintenances/"+testMaintenanceID+"/edit", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "admin_test_http_requests_total") {
		t.Fatalf("missing request counter in %q", body)
	}
	if !strings.Contains(body, `route="/maintenances/{id}/edit"`) {
		t.Fatalf("route label must collapse identifiers")
	}
}

func TestOpenAdminStoreCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "admin.db")
	store, err := openAdminStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file: %v", err)
	}
	ctx := context.Background()
	if err := store.RecordActivity(ctx, storage.Activity{
		Kind:      storage.KindMaintenanceCreated,
		EntityID:  testMaintenanceID,
		Summary:   "Troca de lâmpadas",
		CreatedAt: fixedNow,
	}); err != nil {
		t.Fatalf("record activity: %v", err)
	}
	entries, err := store.ListRecentActivity(ctx, 5)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(entries) != 1 || entries[0].Summary != "Troca de lâmpadas" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

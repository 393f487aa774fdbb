package restclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/louisbranch/conectareparo/internal/platform/errors"
	"github.com/louisbranch/conectareparo/internal/repair"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type recordedCall struct {
	op     string
	status int
}

type fakeObserver struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeObserver) ObserveAPICall(operation string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{op: operation, status: status})
}

func newTestClient(t *testing.T, handler http.Handler, observer Observer) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(Config{
		BaseURL:   server.URL,
		Timeout:   time.Second,
		Observer:  observer,
		RetryBase: time.Millisecond,
		RetryMax:  2 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, value any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestNewValidatesBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{name: "default", baseURL: "", want: DefaultBaseURL},
		{name: "trailing slash", baseURL: "http://api.local:8080/", want: "http://api.local:8080"},
		{name: "prefix", baseURL: "https://api.local/root", want: "https://api.local/root"},
		{name: "scheme", baseURL: "ftp://api.local", wantErr: true},
		{name: "host", baseURL: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := New(Config{BaseURL: tt.baseURL})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%q) expected error", tt.baseURL)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q): %v", tt.baseURL, err)
			}
			if got := client.BaseURL(); got != tt.want {
				t.Fatalf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListMaintenancesSendsFilter(t *testing.T) {
	t.Parallel()

	observer := &fakeObserver{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/maintenances" {
			t.Errorf("path = %q", r.URL.Path)
		}
		query := r.URL.Query()
		if got := query.Get("status"); got != "OPEN" {
			t.Errorf("status = %q", got)
		}
		if got := query.Get("category"); got != "PLUMBING" {
			t.Errorf("category = %q", got)
		}
		if got := query.Get("search"); got != "pia" {
			t.Errorf("search = %q", got)
		}
		if got := query.Get("page"); got != "2" {
			t.Errorf("page = %q", got)
		}
		if diff := cmp.Diff([]string{"title,asc", "createdAt,desc"}, query["sort"]); diff != "" {
			t.Errorf("sort mismatch (-want +got):\n%s", diff)
		}
		w.Write([]byte(`{"content":[{"id":"m-1","title":"Pia quebrada","status":"OPEN","category":"PLUMBING",
			"createdAt":"2025-03-01T10:00:00"}],"totalPages":3,"totalElements":21,"number":2,"size":10,
			"first":false,"last":true,"empty":false}`))
	}), observer)

	page, err := client.ListMaintenances(context.Background(), MaintenanceFilter{
		Status:   repair.MaintenanceOpen,
		Category: repair.CategoryPlumbing,
		Search:   " pia ",
		PageRequest: PageRequest{
			Page: 2,
			Size: 10,
			Sort: []string{SortParam("title", false), SortParam("createdAt", true)},
		},
	})
	if err != nil {
		t.Fatalf("ListMaintenances: %v", err)
	}
	if page.TotalElements != 21 || page.TotalPages != 3 || !page.Last {
		t.Fatalf("page envelope = %+v", page)
	}
	if len(page.Content) != 1 || page.Content[0].Title != "Pia quebrada" {
		t.Fatalf("content = %+v", page.Content)
	}
	want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if !page.Content[0].CreatedAt.Equal(want) {
		t.Fatalf("createdAt = %v, want %v", page.Content[0].CreatedAt, want)
	}
	if diff := cmp.Diff([]recordedCall{{op: "list_maintenances", status: http.StatusOK}}, observer.calls, cmp.AllowUnexported(recordedCall{})); diff != "" {
		t.Fatalf("observed calls mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIErrorsMapToCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    apperrors.Code
		wantMessage string
	}{
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"timestamp":"2025-03-01T10:00:00","status":404,"error":"Not Found","message":"Maintenance not found","path":"/api/v1/maintenances/x"}`,
			wantCode:    apperrors.CodeNotFound,
			wantMessage: "Maintenance not found",
		},
		{
			name:        "bad request",
			status:      http.StatusBadRequest,
			body:        `{"status":400,"message":"title: size must be between 5 and 100"}`,
			wantCode:    apperrors.CodeInvalidArgument,
			wantMessage: "title: size must be between 5 and 100",
		},
		{
			name:        "conflict",
			status:      http.StatusConflict,
			body:        `{"message":"Cannot change status of a completed maintenance"}`,
			wantCode:    apperrors.CodeFailedPrecondition,
			wantMessage: "Cannot change status of a completed maintenance",
		},
		{
			name:        "unprocessable",
			status:      http.StatusUnprocessableEntity,
			body:        `{"message":"Invalid transition"}`,
			wantCode:    apperrors.CodeFailedPrecondition,
			wantMessage: "Invalid transition",
		},
		{
			name:        "empty body",
			status:      http.StatusInternalServerError,
			wantCode:    apperrors.CodeUnavailable,
			wantMessage: "HTTP error! status: 500",
		},
		{
			name:        "html body",
			status:      http.StatusForbidden,
			body:        `<html>denied</html>`,
			wantCode:    apperrors.CodeUnavailable,
			wantMessage: "HTTP error! status: 403",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}), nil)

			_, err := client.CreateMaintenance(context.Background(), repair.NewMaintenance{Title: "Telhado"})
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("CodeOf = %q, want %q", got, tt.wantCode)
			}
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError in chain: %v", err)
			}
			if apiErr.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
			if apiErr.Status != tt.status {
				t.Fatalf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if got := apperrors.MetadataOf(err, MetadataUpstreamMessage); got != tt.wantMessage {
				t.Fatalf("upstream metadata = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestGetRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	observer := &fakeObserver{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, repair.Pledge{ID: "p-1", VolunteerName: "Maria Souza"})
	}), observer)

	pledge, err := client.GetPledge(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetPledge: %v", err)
	}
	if pledge.VolunteerName != "Maria Souza" {
		t.Fatalf("pledge = %+v", pledge)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("calls = %d, want 3", got)
	}
	want := []recordedCall{
		{op: "get_pledge", status: http.StatusServiceUnavailable},
		{op: "get_pledge", status: http.StatusServiceUnavailable},
		{op: "get_pledge", status: http.StatusOK},
	}
	if diff := cmp.Diff(want, observer.calls, cmp.AllowUnexported(recordedCall{})); diff != "" {
		t.Fatalf("observed calls mismatch (-want +got):\n%s", diff)
	}
}

func TestGetGivesUpAfterAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}), nil)

	_, err := client.ListActions(context.Background())
	if got := apperrors.CodeOf(err); got != apperrors.CodeUnavailable {
		t.Fatalf("CodeOf = %q, want %q", got, apperrors.CodeUnavailable)
	}
	if got := calls.Load(); got != DefaultAttempts {
		t.Fatalf("calls = %d, want %d", got, DefaultAttempts)
	}
}

func TestWritesAreNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), nil)

	title := "Trocar lâmpadas"
	_, err := client.UpdateMaintenance(context.Background(), "m-1", repair.MaintenanceUpdate{Title: &title})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestNotFoundIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}), nil)

	_, err := client.GetMaintenance(context.Background(), "missing")
	if got := apperrors.CodeOf(err); got != apperrors.CodeNotFound {
		t.Fatalf("CodeOf = %q, want %q", got, apperrors.CodeNotFound)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestTransportErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := New(Config{BaseURL: baseURL, Attempts: 2, RetryBase: time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = client.GetMaintenance(context.Background(), "m-1")
	if got := apperrors.CodeOf(err); got != apperrors.CodeUnavailable {
		t.Fatalf("CodeOf = %q, want %q (%v)", got, apperrors.CodeUnavailable, err)
	}
}

func TestCanceledContextStopsRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cancel()
		w.WriteHeader(http.StatusServiceUnavailable)
	}), nil)

	_, err := client.ListActions(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}

func TestRequestBodiesAndHeaders(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/api/v1/maintenances/m-1/actions/a-1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["executedBy"] != "Equipe Zeladoria" {
			t.Errorf("executedBy = %v", body["executedBy"])
		}
		if body["startDate"] != "2025-03-01T08:00:00Z" {
			t.Errorf("startDate = %v", body["startDate"])
		}
		materials, _ := body["materialsUsed"].([]any)
		if len(materials) != 1 {
			t.Errorf("materialsUsed = %v", body["materialsUsed"])
		}
		w.Write([]byte(`{"publicId":"a-1","executedBy":"Equipe Zeladoria","outcomeStatus":"SUCCESS"}`))
	}), nil)

	action, err := client.UpdateAction(context.Background(), "m-1", "a-1", repair.ActionUpdate{
		ExecutedBy:        "Equipe Zeladoria",
		StartDate:         repair.NewTimestamp(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)),
		CompletionDate:    repair.NewTimestamp(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		ActionDescription: "Troca do sifão da pia",
		MaterialsUsed:     []repair.NewMaterial{{ItemName: "Sifão", Quantity: "1", UnitOfMeasure: "un"}},
		OutcomeStatus:     repair.OutcomeSuccess,
	})
	if err != nil {
		t.Fatalf("UpdateAction: %v", err)
	}
	if action.ID != "a-1" {
		t.Fatalf("action id = %q, want a-1", action.ID)
	}
}

func TestGetMaintenanceDetailFansOut(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/maintenances/m-1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, repair.Maintenance{ID: "m-1", Title: "Telhado da recepção"})
	})
	mux.HandleFunc("GET /api/v1/maintenances/m-1/actions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []repair.Action{{ID: "a-1"}, {ID: "a-2"}})
	})
	mux.HandleFunc("GET /api/v1/pledges", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("maintenanceId"); got != "m-1" {
			t.Errorf("maintenanceId = %q", got)
		}
		writeJSON(t, w, http.StatusOK, Page[repair.Pledge]{
			Content:    []repair.Pledge{{ID: "p-1"}},
			TotalPages: 1,
			Last:       true,
		})
	})
	client := newTestClient(t, mux, nil)

	detail, err := client.GetMaintenanceDetail(context.Background(), "m-1")
	if err != nil {
		t.Fatalf("GetMaintenanceDetail: %v", err)
	}
	if detail.Title != "Telhado da recepção" || len(detail.Actions) != 2 || len(detail.Pledges) != 1 {
		t.Fatalf("detail = %+v", detail)
	}
}

func TestGetMaintenanceDetailFailsWhenAnyCallFails(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/maintenances/m-1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, repair.Maintenance{ID: "m-1"})
	})
	mux.HandleFunc("GET /api/v1/maintenances/m-1/actions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, APIError{Message: "Maintenance not found"})
	})
	mux.HandleFunc("GET /api/v1/pledges", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, Page[repair.Pledge]{Last: true})
	})
	client := newTestClient(t, mux, nil)

	_, err := client.GetMaintenanceDetail(context.Background(), "m-1")
	if got := apperrors.CodeOf(err); got != apperrors.CodeNotFound {
		t.Fatalf("CodeOf = %q, want %q", got, apperrors.CodeNotFound)
	}
}

func TestListAllPledgesDrainsPages(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("size"); got != "100" {
			t.Errorf("size = %q", got)
		}
		switch r.URL.Query().Get("page") {
		case "":
			writeJSON(t, w, http.StatusOK, Page[repair.Pledge]{Content: []repair.Pledge{{ID: "p-1"}}, TotalPages: 2})
		case "1":
			writeJSON(t, w, http.StatusOK, Page[repair.Pledge]{Content: []repair.Pledge{{ID: "p-2"}}, TotalPages: 2, Number: 1, Last: true})
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}), nil)

	pledges, err := client.ListAllPledges(context.Background(), PledgeFilter{Status: repair.PledgeOffered})
	if err != nil {
		t.Fatalf("ListAllPledges: %v", err)
	}
	var ids []string
	for _, pledge := range pledges {
		ids = append(ids, pledge.ID)
	}
	if diff := cmp.Diff([]string{"p-1", "p-2"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestsCarryTraceContext(t *testing.T) {
	t.Parallel()

	provider := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	var traceparent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("Traceparent")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:        server.URL,
		TracerProvider: provider,
		Propagator:     propagation.TraceContext{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, span := provider.Tracer("test").Start(context.Background(), "parent")
	defer span.End()

	if _, err := client.ListActions(ctx); err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if !strings.Contains(traceparent, span.SpanContext().TraceID().String()) {
		t.Fatalf("traceparent = %q, want trace id %s", traceparent, span.SpanContext().TraceID())
	}
}

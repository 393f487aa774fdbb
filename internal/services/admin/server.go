package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/conectareparo/internal/platform/telemetry/metrics"
	"github.com/louisbranch/conectareparo/internal/platform/timeouts"
	"github.com/louisbranch/conectareparo/internal/services/admin/integration/restclient"
	"github.com/louisbranch/conectareparo/internal/services/admin/routepath"
	"github.com/louisbranch/conectareparo/internal/services/admin/static"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
	adminsqlite "github.com/louisbranch/conectareparo/internal/services/admin/storage/sqlite"
	"github.com/louisbranch/conectareparo/internal/services/admin/transport/httpmux"
	"github.com/louisbranch/conectareparo/internal/services/shared/route"
)

// metricsSubsystem prefixes the dashboard's Prometheus series.
const metricsSubsystem = "admin"

// staticMaxAge is the browser cache lifetime of embedded assets.
const staticMaxAge = "public, max-age=3600"

// Config defines the inputs for the dashboard process.
type Config struct {
	HTTPAddr string
	// APIURL is the root of the remote maintenance API.
	APIURL     string
	APITimeout time.Duration
	// DBPath locates the activity log database. Empty disables it.
	DBPath string
}

// Server hosts the dashboard over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
}

// NewServer builds a configured dashboard server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.APITimeout <= 0 {
		config.APITimeout = timeouts.APIRequest
	}

	m := metrics.New(metricsSubsystem)
	api, err := restclient.New(restclient.Config{
		BaseURL:  config.APIURL,
		Timeout:  config.APITimeout,
		Observer: m,
	})
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	var store storage.Store
	if path := strings.TrimSpace(config.DBPath); path != "" {
		sqliteStore, err := openAdminStore(path)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	}

	handler := newServerHandler(api, store, m)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("admin using api %s", api.BaseURL())
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// newServerHandler assembles the process mux: pages, static assets,
// metrics and health, wrapped in request metrics and logging.
func newServerHandler(api MaintenanceAPI, store storage.Store, m *metrics.Metrics) http.Handler {
	var activity storage.ActivityStore
	if store != nil {
		activity = store
	}
	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS, withStaticCache)
	httpmux.MountOperational(rootMux, m.Handler(), handleHealthz)
	httpmux.MountAdminRoutes(rootMux, NewHandler(api, activity))
	return withRequestLog(m.Middleware(withTrailingSlashRedirect(rootMux)))
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func withStaticCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", staticMaxAge)
		next.ServeHTTP(w, r)
	})
}

func withTrailingSlashRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route.RedirectTrailingSlash(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRequestLog logs one line per request, skipping static and operational
// endpoints.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if skipRequestLog(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		recorder := metrics.NewStatusRecorder(w)
		next.ServeHTTP(recorder, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.RequestURI(), recorder.Status(), time.Since(start).Round(time.Millisecond))
	})
}

func skipRequestLog(path string) bool {
	return strings.HasPrefix(path, routepath.StaticPrefix) || path == routepath.Metrics || path == routepath.Healthz
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the activity store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}

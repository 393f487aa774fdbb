package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.db")
	for range 2 {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	}
}

func TestRecordAndListActivity(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	entries := []storage.Activity{
		{Kind: storage.KindMaintenanceCreated, EntityID: "m-1", Summary: "Porta quebrada", CreatedAt: base},
		{Kind: storage.KindActionCreated, EntityID: "a-1", ParentID: "m-1", Summary: "Troca da fechadura", CreatedAt: base.Add(time.Hour)},
		{Kind: storage.KindPledgeUpdated, EntityID: "p-1", Summary: "Maria", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, entry := range entries {
		if err := store.RecordActivity(ctx, entry); err != nil {
			t.Fatalf("record activity: %v", err)
		}
	}

	got, err := store.ListRecentActivity(ctx, 2)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	want := []storage.Activity{
		{ID: 3, Kind: storage.KindPledgeUpdated, EntityID: "p-1", Summary: "Maria", CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, Kind: storage.KindActionCreated, EntityID: "a-1", ParentID: "m-1", Summary: "Troca da fechadura", CreatedAt: base.Add(time.Hour)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("activity (-want +got):\n%s", diff)
	}

	none, err := store.ListRecentActivity(ctx, 0)
	if err != nil || len(none) != 0 {
		t.Fatalf("zero limit = %v, %v", none, err)
	}
}

func TestListActivityOrdersWithinSecond(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	later := base.Add(510 * time.Millisecond)
	earlier := base.Add(500 * time.Millisecond)
	for _, entry := range []storage.Activity{
		{Kind: storage.KindMaintenanceUpdated, EntityID: "m-2", Summary: "later", CreatedAt: later},
		{Kind: storage.KindMaintenanceUpdated, EntityID: "m-1", Summary: "earlier", CreatedAt: earlier},
	} {
		if err := store.RecordActivity(ctx, entry); err != nil {
			t.Fatalf("record activity: %v", err)
		}
	}

	got, err := store.ListRecentActivity(ctx, 2)
	if err != nil {
		t.Fatalf("list activity: %v", err)
	}
	if len(got) != 2 || got[0].Summary != "later" || got[1].Summary != "earlier" {
		t.Fatalf("unexpected order %+v", got)
	}
	if !got[0].CreatedAt.Equal(later) {
		t.Fatalf("created at = %v, want %v", got[0].CreatedAt, later)
	}
}

func TestRecordActivityDefaultsTime(t *testing.T) {
	store := openTempStore(t)

	if err := store.RecordActivity(context.Background(), storage.Activity{Kind: storage.KindPledgeCreated, EntityID: "p-2"}); err != nil {
		t.Fatalf("record activity: %v", err)
	}

	var storedAt string
	row := store.sqlDB.QueryRow("SELECT created_at FROM activity_log WHERE entity_id = ?", "p-2")
	if err := row.Scan(&storedAt); err != nil {
		t.Fatalf("scan activity: %v", err)
	}
	if storedAt == "" {
		t.Fatal("expected created_at to be set")
	}
}

func TestRecordActivityValidation(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.RecordActivity(ctx, storage.Activity{EntityID: "m-1"}); err == nil {
		t.Fatal("expected error for empty kind")
	}
	if err := store.RecordActivity(ctx, storage.Activity{Kind: storage.KindMaintenanceCreated}); err == nil {
		t.Fatal("expected error for empty entity id")
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if err := store.RecordActivity(canceled, storage.Activity{Kind: storage.KindMaintenanceCreated, EntityID: "m-1"}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestRecordActivityRequiresStore(t *testing.T) {
	var store *Store
	if err := store.RecordActivity(context.Background(), storage.Activity{Kind: storage.KindMaintenanceCreated, EntityID: "m-1"}); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := store.ListRecentActivity(context.Background(), 5); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admin.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil && err != sql.ErrConnDone {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

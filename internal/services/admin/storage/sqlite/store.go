package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/conectareparo/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage"
	"github.com/louisbranch/conectareparo/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// timeFormat is fixed width so created_at sorts lexically in time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// maxActivityLimit caps a single activity listing.
const maxActivityLimit = 200

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordActivity appends an activity entry.
func (s *Store) RecordActivity(ctx context.Context, activity storage.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(string(activity.Kind)) == "" {
		return fmt.Errorf("activity kind is required")
	}
	if strings.TrimSpace(activity.EntityID) == "" {
		return fmt.Errorf("activity entity id is required")
	}
	createdAt := activity.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO activity_log (kind, entity_id, parent_id, summary, created_at) VALUES (?, ?, ?, ?, ?)`,
		string(activity.Kind),
		activity.EntityID,
		activity.ParentID,
		activity.Summary,
		createdAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecentActivity returns up to limit entries, newest first.
func (s *Store) ListRecentActivity(ctx context.Context, limit int) ([]storage.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return []storage.Activity{}, nil
	}
	limit = min(limit, maxActivityLimit)

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, kind, entity_id, parent_id, summary, created_at
		FROM activity_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	activities := make([]storage.Activity, 0, limit)
	for rows.Next() {
		var (
			activity  storage.Activity
			kind      string
			createdAt string
		)
		if err := rows.Scan(&activity.ID, &kind, &activity.EntityID, &activity.ParentID, &activity.Summary, &createdAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activity.Kind = storage.ActivityKind(kind)
		parsed, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse activity time %q: %w", createdAt, err)
		}
		activity.CreatedAt = parsed
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return activities, nil
}

var _ storage.Store = (*Store)(nil)

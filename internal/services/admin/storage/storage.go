package storage

import (
	"context"
	"time"
)

// ActivityKind names a mutation the dashboard performed.
type ActivityKind string

const (
	KindMaintenanceCreated ActivityKind = "maintenance.created"
	KindMaintenanceUpdated ActivityKind = "maintenance.updated"
	KindPledgeCreated      ActivityKind = "pledge.created"
	KindPledgeUpdated      ActivityKind = "pledge.updated"
	KindActionCreated      ActivityKind = "action.created"
	KindActionUpdated      ActivityKind = "action.updated"
)

// Activity is one recorded mutation.
type Activity struct {
	ID   int64
	Kind ActivityKind
	// EntityID is the record the mutation touched.
	EntityID string
	// ParentID is the owning maintenance of an action or pledge.
	ParentID  string
	Summary   string
	CreatedAt time.Time
}

// ActivityStore persists the dashboard's own activity log.
type ActivityStore interface {
	RecordActivity(ctx context.Context, activity Activity) error
	// ListRecentActivity returns up to limit entries, newest first.
	ListRecentActivity(ctx context.Context, limit int) ([]Activity, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	ActivityStore
	Close() error
}

package model

import (
	"time"
)

type SyncStatus string

const (
	SyncPending  SyncStatus = "pending"
	SyncInFlight SyncStatus = "in_flight"
	SyncSynced   SyncStatus = "synced"
	SyncError    SyncStatus = "error"
)

// SyncMetadata tracks how the last in-memory snapshot relates to the
// remote copy.
type SyncMetadata struct {
	SyncStatus   SyncStatus `json:"syncStatus"`
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
	ErrorMessage *string    `json:"errorMessage,omitempty"`
}

func DefaultSyncMetadata() SyncMetadata {
	return SyncMetadata{SyncStatus: SyncPending}
}

// SyncPayload is the shape pushed to the remote service.
type SyncPayload struct {
	Goals         []GoalWithTasks `json:"goals"`
	InboxTasks    []Task          `json:"inboxTasks"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

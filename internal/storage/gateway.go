// Package storage is the durability layer: it reads and writes the full
// state snapshot to local storage. Failures never reach the caller —
// Load degrades to "absent", Save and Clear degrade to no-ops, and
// everything is logged at this boundary. A failed save only affects
// durability, never the in-memory state or the sync status.
package storage

import (
	"github.com/droxer/TaskMind/internal/model"
)

// SchemaVersion is written into every persisted envelope. Loaders accept
// version 0 (field absent) as the pre-versioned shape.
const SchemaVersion = 1

type Gateway interface {
	// Load returns the last saved snapshot, or ok=false if none exists
	// or the read/parse failed.
	Load() (model.Snapshot, bool)

	// Save overwrites the persisted snapshot with the given one.
	Save(snap model.Snapshot)

	// Clear removes the persisted snapshot entirely.
	Clear()
}

// envelope is the on-disk shape: the snapshot keys at top level plus a
// schema version for future migrations.
type envelope struct {
	Version int `json:"version,omitempty"`
	model.Snapshot
}

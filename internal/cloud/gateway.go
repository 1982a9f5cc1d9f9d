// Package cloud is the remote reconciliation boundary. The gateway
// pushes the full goals/tasks state and pulls a remote snapshot; the
// transport must be idempotent under retry, since the store re-pushes
// whole snapshots without deduplicating.
package cloud

import (
	"context"
	"time"

	"github.com/droxer/TaskMind/internal/model"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Result is the outcome of a push attempt. Exactly one of Timestamp,
// Reason or Err is meaningful, selected by Status.
type Result struct {
	Status    Status
	Timestamp time.Time
	Reason    string
	Err       error
}

func Success(ts time.Time) Result {
	return Result{Status: StatusSuccess, Timestamp: ts}
}

func Skipped(reason string) Result {
	return Result{Status: StatusSkipped, Reason: reason}
}

func Error(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// RemoteSnapshot is what a pull yields: the remote goals/tasks state
// without local preferences.
type RemoteSnapshot struct {
	Goals      []model.GoalWithTasks `json:"goals"`
	InboxTasks []model.Task          `json:"inboxTasks"`
}

type Gateway interface {
	// Push attempts to transmit the payload. A cancelled or timed-out
	// context surfaces as an error result, never as a hang.
	Push(ctx context.Context, payload model.SyncPayload) Result

	// Pull fetches the remote snapshot, or ok=false if none exists.
	Pull(ctx context.Context) (RemoteSnapshot, bool, error)
}

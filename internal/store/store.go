// Package store holds the authoritative in-memory state: goals, inbox
// tasks, preferences and sync metadata. All mutations go through the
// Store; nothing else may touch the collections. Every mutation marks
// the sync status pending and hands the full snapshot to a background
// writer that persists it and pushes it to the cloud gateway.
package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/droxer/TaskMind/internal/cloud"
	"github.com/droxer/TaskMind/internal/ident"
	"github.com/droxer/TaskMind/internal/model"
	"github.com/droxer/TaskMind/internal/storage"
)

const defaultPushTimeout = 15 * time.Second

type Options struct {
	Storage storage.Gateway
	Cloud   cloud.Gateway
	Logger  *log.Logger

	// PushTimeout bounds a single push attempt so a stalled transport
	// cannot leave the status in_flight forever.
	PushTimeout time.Duration

	// Now is the clock; defaults to time.Now. Overridable in tests.
	Now func() time.Time
}

type Store struct {
	mu    sync.RWMutex
	goals []model.GoalWithTasks
	inbox []model.Task
	prefs model.UserPreferences
	meta  model.SyncMetadata

	// seq increments on every mutation; a push completion is dropped
	// unless the state it pushed is still the latest.
	seq uint64

	storage     storage.Gateway
	cloud       cloud.Gateway
	logger      *log.Logger
	now         func() time.Time
	pushTimeout time.Duration

	writer *writer
}

func New(opts Options) (*Store, error) {
	if opts.Storage == nil {
		return nil, errors.New("storage gateway is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Cloud == nil {
		opts.Cloud = cloud.NewPlaceholderGateway(false, opts.Logger)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PushTimeout <= 0 {
		opts.PushTimeout = defaultPushTimeout
	}

	s := &Store{
		goals:       []model.GoalWithTasks{},
		inbox:       []model.Task{},
		prefs:       model.DefaultPreferences(),
		meta:        model.DefaultSyncMetadata(),
		storage:     opts.Storage,
		cloud:       opts.Cloud,
		logger:      opts.Logger,
		now:         opts.Now,
		pushTimeout: opts.PushTimeout,
	}
	s.writer = newWriter(s)
	return s, nil
}

// Hydrate loads the persisted snapshot into memory. Absent snapshots
// leave the defaults untouched. Safe to call once at startup; it does
// not trigger the persistence pipeline.
func (s *Store) Hydrate() {
	snap, ok := s.storage.Load()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = snap.Goals
	s.inbox = snap.InboxTasks
	s.prefs = snap.Preferences
	s.meta = model.DefaultSyncMetadata()
}

// Reset is the user-initiated "clear data" action: it removes the
// persisted snapshot and empties goals and inbox tasks. Preferences and
// sync metadata are left untouched.
func (s *Store) Reset() {
	s.storage.Clear()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = []model.GoalWithTasks{}
	s.inbox = []model.Task{}
}

// MarkSynced records a successful sync at the given time, clearing any
// prior error.
func (s *Store) MarkSynced(ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = model.SyncMetadata{SyncStatus: model.SyncSynced, LastSyncedAt: &ts}
}

// Close drains any queued snapshot write and stops the background
// writer. Mutations after Close still apply in memory but are no longer
// persisted.
func (s *Store) Close() {
	s.writer.stop()
}

// Flush blocks until the background writer has no queued or in-flight
// work. Primarily for tests and orderly shutdown.
func (s *Store) Flush() {
	s.writer.flush()
}

// markPendingLocked is the side effect common to every mutation.
func (s *Store) markPendingLocked() {
	s.seq++
	s.meta.SyncStatus = model.SyncPending
}

// scheduleLocked captures the current snapshot and hands it to the
// background writer. Must be called with the lock held, after
// markPendingLocked.
func (s *Store) scheduleLocked() {
	s.writer.enqueue(job{snapshot: s.snapshotLocked(), seq: s.seq})
}

func (s *Store) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Goals:       copyGoals(s.goals),
		InboxTasks:  copyTasks(s.inbox),
		Preferences: s.prefs,
	}
}

func (s *Store) newTaskID() model.TaskID {
	return model.TaskID(ident.NewTaskID())
}

func (s *Store) newGoalID() model.GoalID {
	return model.GoalID(ident.NewGoalID())
}

func copyTasks(ts []model.Task) []model.Task {
	out := make([]model.Task, len(ts))
	copy(out, ts)
	return out
}

func copyGoals(gs []model.GoalWithTasks) []model.GoalWithTasks {
	out := make([]model.GoalWithTasks, len(gs))
	for i, g := range gs {
		g.Tasks = copyTasks(g.Tasks)
		out[i] = g
	}
	return out
}

// Goals returns a copy of the goals collection, newest first.
func (s *Store) Goals() []model.GoalWithTasks {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyGoals(s.goals)
}

// InboxTasks returns a copy of the inbox, newest first.
func (s *Store) InboxTasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTasks(s.inbox)
}

func (s *Store) Preferences() model.UserPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

func (s *Store) SyncMetadata() model.SyncMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Snapshot returns the complete current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

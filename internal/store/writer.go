package store

import (
	"context"
	"sync"

	"github.com/droxer/TaskMind/internal/cloud"
	"github.com/droxer/TaskMind/internal/model"
)

type job struct {
	snapshot model.Snapshot
	seq      uint64
}

// writer serializes snapshot writes: one in-flight persist+push at a
// time, with latest-wins coalescing of anything queued behind it. This
// replaces the fire-and-forget-per-mutation design, where rapid
// mutations could interleave whole-snapshot writes out of order.
type writer struct {
	s *Store

	mu      sync.Mutex
	cond    *sync.Cond
	pending *job
	idle    bool
	stopped bool

	signal chan struct{}
	quit   chan struct{}
	done   chan struct{}
}

func newWriter(s *Store) *writer {
	w := &writer{
		s:      s,
		idle:   true,
		signal: make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *writer) enqueue(j job) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.pending = &j
	w.idle = false
	w.mu.Unlock()

	select {
	case w.signal <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.signal:
			w.drain()
		case <-w.quit:
			w.drain()
			return
		}
	}
}

func (w *writer) drain() {
	for {
		w.mu.Lock()
		j := w.pending
		w.pending = nil
		if j == nil {
			w.idle = true
			w.cond.Broadcast()
			w.mu.Unlock()
			return
		}
		w.mu.Unlock()

		w.s.runPipeline(*j)
	}
}

func (w *writer) flush() {
	w.mu.Lock()
	for !w.idle {
		w.cond.Wait()
	}
	w.mu.Unlock()
}

func (w *writer) stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.stopped = true
	w.mu.Unlock()

	close(w.quit)
	<-w.done
}

// runPipeline is the asynchronous half of every mutation: persist the
// snapshot, then attempt a cloud push and fold the result back into the
// sync metadata.
func (s *Store) runPipeline(j job) {
	s.storage.Save(j.snapshot)

	s.mu.Lock()
	if s.seq == j.seq {
		// Make the attempt observable to concurrent readers.
		s.meta.SyncStatus = model.SyncInFlight
	}
	payload := model.SyncPayload{
		Goals:         j.snapshot.Goals,
		InboxTasks:    j.snapshot.InboxTasks,
		LastUpdatedAt: s.now(),
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
	defer cancel()
	res := s.cloud.Push(ctx, payload)
	s.completePush(j.seq, res)
}

func (s *Store) completePush(seq uint64, res cloud.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq != seq {
		// A newer mutation reset the machine to pending and queued its
		// own push; this result describes stale state.
		return
	}

	switch res.Status {
	case cloud.StatusSuccess:
		ts := res.Timestamp
		s.meta = model.SyncMetadata{SyncStatus: model.SyncSynced, LastSyncedAt: &ts}
	case cloud.StatusError:
		msg := "sync failed"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		s.meta = model.SyncMetadata{SyncStatus: model.SyncError, ErrorMessage: &msg}
	case cloud.StatusSkipped:
		s.meta.SyncStatus = model.SyncPending
	}
}

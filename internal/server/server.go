// Package server exposes the store's operations over HTTP.
package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/droxer/TaskMind/internal/genai"
	"github.com/droxer/TaskMind/internal/httpmw"
	"github.com/droxer/TaskMind/internal/store"
)

type Options struct {
	Store  *store.Store
	GenAI  *genai.Client
	Logger *log.Logger
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := &Handler{
		store:  opts.Store,
		genai:  opts.GenAI,
		logger: opts.Logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/goals", h.GoalsRoot)
	mux.HandleFunc("/api/goals/", h.GoalsSub)
	mux.HandleFunc("/api/goals/breakdown", h.Breakdown)
	mux.HandleFunc("/api/tasks", h.TasksRoot)
	mux.HandleFunc("/api/tasks/", h.TasksSub)
	mux.HandleFunc("/api/preferences", h.PreferencesRoot)
	mux.HandleFunc("/api/sync/status", h.SyncStatus)
	mux.HandleFunc("/api/reset", h.Reset)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "taskmind",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		// The store is in-memory and always answers once constructed.
		_ = opts.Store.SyncMetadata()
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "taskmind",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}

package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/droxer/TaskMind/internal/genai"
	"github.com/droxer/TaskMind/internal/model"
	"github.com/droxer/TaskMind/internal/store"
)

type Handler struct {
	store  *store.Store
	genai  *genai.Client
	logger *log.Logger
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// /api/goals  (collection)
func (h *Handler) GoalsRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Goals())

	case http.MethodPost:
		var in store.CreateGoalInput
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		if strings.TrimSpace(in.Title) == "" {
			writeErr(w, http.StatusBadRequest, "title is required")
			return
		}
		goal := h.store.CreateGoal(in)
		writeJSON(w, http.StatusCreated, goal)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// /api/goals/{id}[/tasks]
func (h *Handler) GoalsSub(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/goals/")
	parts := strings.SplitN(rest, "/", 2)
	id := model.GoalID(parts[0])
	if id == "" {
		writeErr(w, http.StatusBadRequest, "goal id is required")
		return
	}

	if len(parts) == 2 {
		if parts[1] == "tasks" && r.Method == http.MethodPost {
			h.attachTasks(w, r, id)
			return
		}
		writeErr(w, http.StatusNotFound, "unknown route")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var p store.GoalPatch
		if err := decodeJSON(r, &p); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		h.store.UpdateGoal(id, p)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	case http.MethodDelete:
		h.store.DeleteGoal(id)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) attachTasks(w http.ResponseWriter, r *http.Request, id model.GoalID) {
	var tasks []model.Task
	if err := decodeJSON(r, &tasks); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	h.store.AttachTasksToGoal(id, tasks)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.InboxTasks())

	case http.MethodPost:
		var in store.CreateTaskInput
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		if strings.TrimSpace(in.Title) == "" {
			writeErr(w, http.StatusBadRequest, "title is required")
			return
		}
		task := h.store.CreateTask(in)
		writeJSON(w, http.StatusCreated, task)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// /api/tasks/{id}[/toggle]
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	parts := strings.SplitN(rest, "/", 2)
	id := model.TaskID(parts[0])
	if id == "" {
		writeErr(w, http.StatusBadRequest, "task id is required")
		return
	}

	if len(parts) == 2 {
		if parts[1] == "toggle" && r.Method == http.MethodPost {
			h.store.ToggleTaskStatus(id)
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
			return
		}
		writeErr(w, http.StatusNotFound, "unknown route")
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var p store.TaskPatch
		if err := decodeJSON(r, &p); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		h.store.UpdateTask(id, p)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	case http.MethodDelete:
		h.store.DeleteTask(id)
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// /api/preferences
func (h *Handler) PreferencesRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.store.Preferences())

	case http.MethodPatch:
		var p store.PreferencesPatch
		if err := decodeJSON(r, &p); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		h.store.SetPreferences(p)
		writeJSON(w, http.StatusOK, h.store.Preferences())

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// /api/sync/status
func (h *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.store.SyncMetadata())
}

// /api/reset is the user-visible "clear data" action.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	h.store.Reset()
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

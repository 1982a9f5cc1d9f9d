package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droxer/TaskMind/internal/genai"
	"github.com/droxer/TaskMind/internal/model"
	"github.com/droxer/TaskMind/internal/storage"
	"github.com/droxer/TaskMind/internal/store"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()

	gw, err := storage.NewFileGateway(t.TempDir(), discard())
	require.NoError(t, err)

	s, err := store.New(store.Options{Storage: gw, Logger: discard()})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	h, err := NewHandler(Options{
		Store:  s,
		GenAI:  genai.NewClient("", time.Second, discard()),
		Logger: discard(),
	})
	require.NoError(t, err)
	return h, s
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGoals_CreateListDelete(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/goals", map[string]any{"title": "Ship v1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[model.GoalWithTasks](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ship v1", created.Title)
	assert.Equal(t, model.GoalNotStarted, created.Status)

	rec = doJSON(t, h, http.MethodGet, "/api/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	goals := decodeBody[[]model.GoalWithTasks](t, rec)
	require.Len(t, goals, 1)

	rec = doJSON(t, h, http.MethodDelete, "/api/goals/"+string(created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/goals", nil)
	goals = decodeBody[[]model.GoalWithTasks](t, rec)
	assert.Empty(t, goals)
}

func TestGoals_CreateRejectsEmptyTitle(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/goals", map[string]any{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoals_PatchUpdatesTitle(t *testing.T) {
	h, s := newTestServer(t)

	created := decodeBody[model.GoalWithTasks](t,
		doJSON(t, h, http.MethodPost, "/api/goals", map[string]any{"title": "Draft"}))

	rec := doJSON(t, h, http.MethodPatch, "/api/goals/"+string(created.ID),
		map[string]any{"title": "Final", "status": "in_progress"})
	require.Equal(t, http.StatusOK, rec.Code)

	goals := s.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "Final", goals[0].Title)
	assert.Equal(t, model.GoalInProgress, goals[0].Status)
}

func TestTasks_CreateToggleDelete(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/tasks", map[string]any{"title": "Buy milk"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[model.Task](t, rec)
	assert.Equal(t, model.TaskTodo, created.Status)

	rec = doJSON(t, h, http.MethodPost, "/api/tasks/"+string(created.ID)+"/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/tasks", nil)
	tasks := decodeBody[[]model.Task](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, model.TaskDone, tasks[0].Status)

	rec = doJSON(t, h, http.MethodDelete, "/api/tasks/"+string(created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	tasks = decodeBody[[]model.Task](t, doJSON(t, h, http.MethodGet, "/api/tasks", nil))
	assert.Empty(t, tasks)
}

func TestPreferences_PatchMergesAndReturnsFull(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPatch, "/api/preferences", map[string]any{"theme": "dark"})
	require.Equal(t, http.StatusOK, rec.Code)
	prefs := decodeBody[model.UserPreferences](t, rec)
	assert.Equal(t, model.ThemeDark, prefs.Theme)
	// Unmentioned keys keep their defaults.
	assert.True(t, prefs.NotificationsEnabled)
	assert.True(t, prefs.GenAIEnabled)
}

func TestSyncStatus_ReportsMetadata(t *testing.T) {
	h, s := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/sync/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	meta := decodeBody[model.SyncMetadata](t, rec)
	assert.Equal(t, s.SyncMetadata().SyncStatus, meta.SyncStatus)
}

func TestReset_EmptiesCollections(t *testing.T) {
	h, s := newTestServer(t)

	doJSON(t, h, http.MethodPost, "/api/goals", map[string]any{"title": "Goal"})
	doJSON(t, h, http.MethodPost, "/api/tasks", map[string]any{"title": "Task"})

	rec := doJSON(t, h, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, s.Goals())
	assert.Empty(t, s.InboxTasks())
	// Preferences survive a reset.
	assert.Equal(t, model.DefaultPreferences(), s.Preferences())
}

func TestBreakdown_FallsBackWithoutEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/goals/breakdown", map[string]any{"goal": "Run a marathon"})
	require.Equal(t, http.StatusCreated, rec.Code)

	goal := decodeBody[model.GoalWithTasks](t, rec)
	assert.Equal(t, "Run a marathon", goal.Title)
	require.NotNil(t, goal.AISummary)
	assert.Equal(t, "Break down goals into actionable steps to stay on track.", *goal.AISummary)
	require.Len(t, goal.Tasks, 3)
	assert.Equal(t, "Clarify success criteria", goal.Tasks[0].Title)
	for _, task := range goal.Tasks {
		assert.True(t, task.AISuggested)
		assert.Equal(t, goal.ID, *task.GoalID)
	}
}

func TestBreakdown_UsesEndpointSuggestions(t *testing.T) {
	genaiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/goal-breakdown", r.URL.Path)
		_ = json.NewEncoder(w).Encode(genai.BreakdownResponse{
			Summary: "Two steps.",
			Tasks: []genai.TaskSuggestion{
				{Title: "First", Priority: model.PriorityHigh},
				{Title: "Second", Priority: model.PriorityLow},
			},
		})
	}))
	defer genaiSrv.Close()

	gw, err := storage.NewFileGateway(t.TempDir(), discard())
	require.NoError(t, err)
	s, err := store.New(store.Options{Storage: gw, Logger: discard()})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	h, err := NewHandler(Options{
		Store:  s,
		GenAI:  genai.NewClient(genaiSrv.URL, time.Second, discard()),
		Logger: discard(),
	})
	require.NoError(t, err)

	rec := doJSON(t, h, http.MethodPost, "/api/goals/breakdown", map[string]any{"goal": "Learn Go"})
	require.Equal(t, http.StatusCreated, rec.Code)

	goal := decodeBody[model.GoalWithTasks](t, rec)
	require.NotNil(t, goal.AISummary)
	assert.Equal(t, "Two steps.", *goal.AISummary)
	require.Len(t, goal.Tasks, 2)
	assert.Equal(t, "First", goal.Tasks[0].Title)
}

func TestBreakdown_SkipsGenAIWhenDisabled(t *testing.T) {
	h, s := newTestServer(t)

	s.SetPreferences(store.PreferencesPatch{GenAIEnabled: boolPtr(false)})

	rec := doJSON(t, h, http.MethodPost, "/api/goals/breakdown", map[string]any{"goal": "Quiet goal"})
	require.Equal(t, http.StatusCreated, rec.Code)

	goal := decodeBody[model.GoalWithTasks](t, rec)
	assert.Nil(t, goal.AISummary)
	assert.Empty(t, goal.Tasks)
}

func TestRouting_UnknownSubrouteIs404(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/tasks/abc/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, body["ok"])
}

func boolPtr(b bool) *bool { return &b }

package genai

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droxer/TaskMind/internal/model"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRequestBreakdown_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/goal-breakdown", r.URL.Path)

		var req BreakdownRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Learn Go", req.Goal)

		_ = json.NewEncoder(w).Encode(BreakdownResponse{
			Summary: "Three steps.",
			Tasks: []TaskSuggestion{
				{Title: "Read the language tour", Priority: model.PriorityHigh},
				{Title: "Write a toy server", Priority: model.PriorityMedium},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, discard())
	resp := c.RequestBreakdown(context.Background(), BreakdownRequest{Goal: "Learn Go"})

	assert.Equal(t, "Three steps.", resp.Summary)
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, "Read the language tour", resp.Tasks[0].Title)
}

func TestRequestBreakdown_NoEndpointFallsBack(t *testing.T) {
	c := NewClient("", 0, discard())
	resp := c.RequestBreakdown(context.Background(), BreakdownRequest{Goal: "anything"})
	assert.Equal(t, FallbackBreakdown(), resp)
}

func TestRequestBreakdown_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, discard())
	resp := c.RequestBreakdown(context.Background(), BreakdownRequest{Goal: "anything"})
	assert.Equal(t, FallbackBreakdown(), resp)
}

func TestRequestBreakdown_EmptyTasksFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(BreakdownResponse{Summary: "empty", Tasks: nil})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0, discard())
	resp := c.RequestBreakdown(context.Background(), BreakdownRequest{Goal: "anything"})
	assert.Equal(t, FallbackBreakdown(), resp)
}

func TestRequestBreakdown_CancelledContextFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(FallbackBreakdown())
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, 0, discard())
	resp := c.RequestBreakdown(ctx, BreakdownRequest{Goal: "anything"})
	assert.Equal(t, FallbackBreakdown(), resp)
}

func TestFallbackBreakdown_Shape(t *testing.T) {
	fb := FallbackBreakdown()
	require.Len(t, fb.Tasks, 3)
	assert.Equal(t, model.PriorityHigh, fb.Tasks[0].Priority)
	assert.Equal(t, model.PriorityMedium, fb.Tasks[1].Priority)
	assert.Equal(t, model.PriorityMedium, fb.Tasks[2].Priority)
}

package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/droxer/TaskMind/internal/genai"
	"github.com/droxer/TaskMind/internal/store"
)

type breakdownRequest struct {
	Goal       string  `json:"goal"`
	TargetDate *string `json:"targetDate,omitempty"`
	Context    *string `json:"context,omitempty"`
}

// Breakdown creates a goal from a free-text prompt. When the user has
// generative suggestions enabled, the goal is seeded with the tasks the
// service (or its fallback) proposes; otherwise a bare goal is created.
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req breakdownRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad json")
		return
	}
	req.Goal = strings.TrimSpace(req.Goal)
	if req.Goal == "" {
		writeErr(w, http.StatusBadRequest, "goal is required")
		return
	}

	in := store.CreateGoalInput{
		Title:      req.Goal,
		TargetDate: req.TargetDate,
	}

	if h.store.Preferences().GenAIEnabled && h.genai != nil {
		resp := h.genai.RequestBreakdown(r.Context(), genai.BreakdownRequest{
			Goal:       req.Goal,
			TargetDate: req.TargetDate,
			Context:    req.Context,
		})
		summary := resp.Summary
		in.AISummary = &summary
		in.AIPrompt = &req.Goal
		in.Tasks = seedsFromSuggestions(resp.Tasks, time.Now())
	}

	goal := h.store.CreateGoal(in)
	writeJSON(w, http.StatusCreated, goal)
}

func seedsFromSuggestions(suggestions []genai.TaskSuggestion, now time.Time) []store.TaskSeed {
	seeds := make([]store.TaskSeed, 0, len(suggestions))
	for _, sg := range suggestions {
		seed := store.TaskSeed{
			Title:       sg.Title,
			Notes:       sg.Description,
			Priority:    sg.Priority,
			AISuggested: true,
		}
		if sg.DueInDays != nil && *sg.DueInDays >= 0 {
			due := now.AddDate(0, 0, *sg.DueInDays).Format("2006-01-02")
			seed.DueDate = &due
		}
		seeds = append(seeds, seed)
	}
	return seeds
}

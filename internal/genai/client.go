// Package genai talks to the external generative service that breaks a
// goal down into suggested tasks. The exchange is an opaque
// request/response contract; on any transport failure, or a response
// with zero tasks, callers get a fixed fallback breakdown instead of an
// error.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/droxer/TaskMind/internal/model"
)

type BreakdownRequest struct {
	Goal       string  `json:"goal"`
	TargetDate *string `json:"targetDate,omitempty"`
	Context    *string `json:"context,omitempty"`
}

type TaskSuggestion struct {
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Priority    model.Priority `json:"priority"`
	DueInDays   *int           `json:"dueInDays,omitempty"`
}

type BreakdownResponse struct {
	Summary string           `json:"summary"`
	Tasks   []TaskSuggestion `json:"tasks"`
}

// FallbackBreakdown is returned whenever the service is unreachable,
// misbehaves, or is not configured.
func FallbackBreakdown() BreakdownResponse {
	return BreakdownResponse{
		Summary: "Break down goals into actionable steps to stay on track.",
		Tasks: []TaskSuggestion{
			{Title: "Clarify success criteria", Priority: model.PriorityHigh},
			{Title: "Identify potential blockers", Priority: model.PriorityMedium},
			{Title: "Schedule review milestones", Priority: model.PriorityMedium},
		},
	}
}

type Client struct {
	endpoint string
	http     *http.Client
	logger   *log.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// RequestBreakdown asks the service to decompose a goal. It never
// returns an error: failures degrade to the fallback breakdown.
func (c *Client) RequestBreakdown(ctx context.Context, req BreakdownRequest) BreakdownResponse {
	if c.endpoint == "" {
		return FallbackBreakdown()
	}

	resp, err := c.requestBreakdown(ctx, req)
	if err != nil {
		c.logger.Printf("[genai] breakdown failed, using fallback: %v", err)
		return FallbackBreakdown()
	}
	return resp
}

func (c *Client) requestBreakdown(ctx context.Context, req BreakdownRequest) (BreakdownResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return BreakdownResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/goal-breakdown", bytes.NewReader(body))
	if err != nil {
		return BreakdownResponse{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return BreakdownResponse{}, fmt.Errorf("call endpoint: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return BreakdownResponse{}, fmt.Errorf("endpoint returned status %d", httpResp.StatusCode)
	}

	var out BreakdownResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return BreakdownResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Tasks) == 0 {
		return BreakdownResponse{}, fmt.Errorf("malformed response: no tasks")
	}
	return out, nil
}

package model

import (
	"time"
)

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
)

type Goal struct {
	ID          GoalID     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	TargetDate  *string    `json:"targetDate,omitempty"`
	Status      GoalStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Provenance of a generative breakdown, if one produced this goal.
	AISummary *string `json:"aiSummary,omitempty"`
	AIPrompt  *string `json:"aiPrompt,omitempty"`
}

// GoalWithTasks is a goal plus its owned task list, newest first.
type GoalWithTasks struct {
	Goal
	Tasks []Task `json:"tasks"`
}

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalNotStarted, GoalInProgress, GoalCompleted:
		return true
	}
	return false
}

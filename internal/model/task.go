package model

import (
	"time"
)

type TaskID string

type GoalID string

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type Task struct {
	ID       TaskID     `json:"id"`
	GoalID   *GoalID    `json:"goalId,omitempty"`
	Title    string     `json:"title"`
	Notes    *string    `json:"notes,omitempty"`
	Priority Priority   `json:"priority"`
	DueDate  *string    `json:"dueDate,omitempty"`
	Status   TaskStatus `json:"status"`

	// ReminderAt is carried for forward compatibility; no operation
	// reads or writes it yet.
	ReminderAt *string `json:"reminderAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	AISuggested bool `json:"aiSuggested"`
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

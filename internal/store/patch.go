package store

import (
	"github.com/droxer/TaskMind/internal/model"
)

// GoalPatch is a partial goal update.
// nil pointer => "no change"
// empty string for optional fields (Description/TargetDate/...) => clear
type GoalPatch struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	TargetDate  *string           `json:"targetDate,omitempty"`
	Status      *model.GoalStatus `json:"status,omitempty"`
	AISummary   *string           `json:"aiSummary,omitempty"`
	AIPrompt    *string           `json:"aiPrompt,omitempty"`
}

// TaskPatch is a partial task update. The task id and its owning goal
// are immutable; moving a task between containers is not an update.
type TaskPatch struct {
	Title      *string           `json:"title,omitempty"`
	Notes      *string           `json:"notes,omitempty"`
	Priority   *model.Priority   `json:"priority,omitempty"`
	DueDate    *string           `json:"dueDate,omitempty"`
	Status     *model.TaskStatus `json:"status,omitempty"`
	ReminderAt *string           `json:"reminderAt,omitempty"`
}

type PreferencesPatch struct {
	Theme                *model.Theme    `json:"theme,omitempty"`
	Language             *model.Language `json:"language,omitempty"`
	NotificationsEnabled *bool           `json:"notificationsEnabled,omitempty"`
	GenAIEnabled         *bool           `json:"genAiEnabled,omitempty"`
	SyncOnCellular       *bool           `json:"syncOnCellular,omitempty"`
}

func optString(dst **string, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil
	} else {
		v := *src
		*dst = &v
	}
}

func applyGoalPatch(g *model.Goal, p GoalPatch) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	optString(&g.Description, p.Description)
	optString(&g.TargetDate, p.TargetDate)
	if p.Status != nil && p.Status.Valid() {
		g.Status = *p.Status
	}
	optString(&g.AISummary, p.AISummary)
	optString(&g.AIPrompt, p.AIPrompt)
}

func applyTaskPatch(t *model.Task, p TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	optString(&t.Notes, p.Notes)
	if p.Priority != nil && p.Priority.Valid() {
		t.Priority = *p.Priority
	}
	optString(&t.DueDate, p.DueDate)
	if p.Status != nil && p.Status.Valid() {
		t.Status = *p.Status
	}
	optString(&t.ReminderAt, p.ReminderAt)
}

func applyPreferencesPatch(prefs *model.UserPreferences, p PreferencesPatch) {
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
	if p.Language != nil {
		prefs.Language = *p.Language
	}
	if p.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.GenAIEnabled != nil {
		prefs.GenAIEnabled = *p.GenAIEnabled
	}
	if p.SyncOnCellular != nil {
		prefs.SyncOnCellular = *p.SyncOnCellular
	}
}

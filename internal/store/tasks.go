package store

import (
	"github.com/droxer/TaskMind/internal/model"
)

type CreateTaskInput struct {
	Title       string         `json:"title"`
	Notes       *string        `json:"notes,omitempty"`
	Priority    model.Priority `json:"priority,omitempty"`
	DueDate     *string        `json:"dueDate,omitempty"`
	GoalID      *model.GoalID  `json:"goalId,omitempty"`
	AISuggested bool           `json:"aiSuggested,omitempty"`
}

// CreateTask creates a task and prepends it to its container: the
// referenced goal's list when the goal id resolves, the inbox otherwise.
// An unresolvable goal id keeps the reference on the task but the task
// lands in the inbox.
func (s *Store) CreateTask(in CreateTaskInput) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	priority := in.Priority
	if !priority.Valid() {
		priority = model.PriorityMedium
	}
	task := model.Task{
		ID:          s.newTaskID(),
		GoalID:      in.GoalID,
		Title:       in.Title,
		Notes:       in.Notes,
		Priority:    priority,
		DueDate:     in.DueDate,
		Status:      model.TaskTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
		AISuggested: in.AISuggested,
	}

	attached := false
	if in.GoalID != nil {
		if idx, ok := s.goalIndexLocked(*in.GoalID); ok {
			s.goals[idx].Tasks = append([]model.Task{task}, s.goals[idx].Tasks...)
			s.goals[idx].UpdatedAt = now
			attached = true
		}
	}
	if !attached {
		s.inbox = append([]model.Task{task}, s.inbox...)
	}

	s.markPendingLocked()
	s.scheduleLocked()
	return task
}

// UpdateTask merges the patch into the task, wherever it lives, and
// refreshes the owning goal's UpdatedAt when applicable. Unknown ids
// are silently ignored.
func (s *Store) UpdateTask(id model.TaskID, p TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, loc, ok := s.findTaskLocked(id)
	if !ok {
		return
	}

	now := s.now()
	applyTaskPatch(task, p)
	task.UpdatedAt = now
	if goalID, inGoal := loc.OwningGoal(); inGoal {
		if idx, ok := s.goalIndexLocked(goalID); ok {
			s.goals[idx].UpdatedAt = now
		}
	}

	s.markPendingLocked()
	s.scheduleLocked()
}

// ToggleTaskStatus flips a task between todo and done. Anything not
// already done becomes done. Unknown ids are silently ignored.
func (s *Store) ToggleTaskStatus(id model.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, loc, ok := s.findTaskLocked(id)
	if !ok {
		return
	}

	now := s.now()
	if task.Status == model.TaskDone {
		task.Status = model.TaskTodo
	} else {
		task.Status = model.TaskDone
	}
	task.UpdatedAt = now
	if goalID, inGoal := loc.OwningGoal(); inGoal {
		if idx, ok := s.goalIndexLocked(goalID); ok {
			s.goals[idx].UpdatedAt = now
		}
	}

	s.markPendingLocked()
	s.scheduleLocked()
}

// DeleteTask removes the task from whichever container holds it.
// Deletion is immediate and final; there are no tombstones.
func (s *Store) DeleteTask(id model.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.inbox[:0]
	for _, t := range s.inbox {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.inbox = kept

	for gi := range s.goals {
		tasks := s.goals[gi].Tasks[:0]
		for _, t := range s.goals[gi].Tasks {
			if t.ID != id {
				tasks = append(tasks, t)
			}
		}
		s.goals[gi].Tasks = tasks
	}

	s.markPendingLocked()
	s.scheduleLocked()
}

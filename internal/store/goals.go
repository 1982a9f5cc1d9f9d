package store

import (
	"github.com/droxer/TaskMind/internal/model"
)

// TaskSeed describes a task supplied at goal creation, before it has an
// identity. Unset status defaults to todo, unset priority to medium.
type TaskSeed struct {
	Title       string           `json:"title"`
	Notes       *string          `json:"notes,omitempty"`
	Priority    model.Priority   `json:"priority,omitempty"`
	DueDate     *string          `json:"dueDate,omitempty"`
	Status      model.TaskStatus `json:"status,omitempty"`
	AISuggested bool             `json:"aiSuggested,omitempty"`
}

type CreateGoalInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	TargetDate  *string    `json:"targetDate,omitempty"`
	AISummary   *string    `json:"aiSummary,omitempty"`
	AIPrompt    *string    `json:"aiPrompt,omitempty"`
	Tasks       []TaskSeed `json:"tasks,omitempty"`
}

// CreateGoal creates a goal at the head of the collection (newest
// first) and attaches any seed tasks to it. Title must be non-empty
// after trimming; that is the caller's contract, not re-validated here.
func (s *Store) CreateGoal(in CreateGoalInput) model.GoalWithTasks {
	s.mu.Lock()

	now := s.now()
	goal := model.GoalWithTasks{
		Goal: model.Goal{
			ID:          s.newGoalID(),
			Title:       in.Title,
			Description: in.Description,
			TargetDate:  in.TargetDate,
			Status:      model.GoalNotStarted,
			CreatedAt:   now,
			UpdatedAt:   now,
			AISummary:   in.AISummary,
			AIPrompt:    in.AIPrompt,
		},
		Tasks: []model.Task{},
	}
	s.goals = append([]model.GoalWithTasks{goal}, s.goals...)

	if len(in.Tasks) > 0 {
		seeded := make([]model.Task, 0, len(in.Tasks))
		for _, seed := range in.Tasks {
			goalID := goal.ID
			status := seed.Status
			if !status.Valid() {
				status = model.TaskTodo
			}
			priority := seed.Priority
			if !priority.Valid() {
				priority = model.PriorityMedium
			}
			seeded = append(seeded, model.Task{
				ID:          s.newTaskID(),
				GoalID:      &goalID,
				Title:       seed.Title,
				Notes:       seed.Notes,
				Priority:    priority,
				DueDate:     seed.DueDate,
				Status:      status,
				CreatedAt:   now,
				UpdatedAt:   now,
				AISuggested: seed.AISuggested,
			})
		}
		s.attachTasksLocked(goal.ID, seeded)
	}

	s.markPendingLocked()
	s.scheduleLocked()

	idx, _ := s.goalIndexLocked(goal.ID)
	created := s.goals[idx]
	created.Tasks = copyTasks(created.Tasks)
	s.mu.Unlock()
	return created
}

// UpdateGoal merges the patch into the matching goal. Unknown ids are
// silently ignored and trigger no persistence.
func (s *Store) UpdateGoal(id model.GoalID, p GoalPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.goalIndexLocked(id)
	if !ok {
		return
	}
	applyGoalPatch(&s.goals[idx].Goal, p)
	s.goals[idx].UpdatedAt = s.now()

	s.markPendingLocked()
	s.scheduleLocked()
}

// DeleteGoal removes the goal along with the tasks it owns. Inbox tasks
// that reference the goal are orphaned back to plain inbox tasks. The
// asymmetry (owned tasks die, inbox references are cleared) is the
// documented behavior.
func (s *Store) DeleteGoal(id model.GoalID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.goals[:0]
	for _, g := range s.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.goals = kept

	for i := range s.inbox {
		if s.inbox[i].GoalID != nil && *s.inbox[i].GoalID == id {
			s.inbox[i].GoalID = nil
		}
	}

	s.markPendingLocked()
	s.scheduleLocked()
}

// AttachTasksToGoal appends the given tasks to the goal's list, after
// any existing tasks. No-op for unknown goal ids.
func (s *Store) AttachTasksToGoal(id model.GoalID, tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attachTasksLocked(id, tasks) {
		return
	}

	s.markPendingLocked()
	s.scheduleLocked()
}

func (s *Store) attachTasksLocked(id model.GoalID, tasks []model.Task) bool {
	idx, ok := s.goalIndexLocked(id)
	if !ok {
		return false
	}
	s.goals[idx].Tasks = append(s.goals[idx].Tasks, tasks...)
	s.goals[idx].UpdatedAt = s.now()
	return true
}

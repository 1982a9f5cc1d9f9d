package store

import (
	"github.com/droxer/TaskMind/internal/model"
)

// Location names the container holding a task: the inbox, or exactly
// one goal's task list. Using an explicit variant keeps "task has no
// goal" distinct from "task not found".
type Location struct {
	goalID model.GoalID
	inGoal bool
}

func InboxLocation() Location {
	return Location{}
}

func GoalLocation(id model.GoalID) Location {
	return Location{goalID: id, inGoal: true}
}

func (l Location) InInbox() bool {
	return !l.inGoal
}

// OwningGoal returns the goal id and true when the task lives in a
// goal's list.
func (l Location) OwningGoal() (model.GoalID, bool) {
	return l.goalID, l.inGoal
}

// Locate reports which container currently holds the task.
func (s *Store) Locate(id model.TaskID) (Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locateLocked(id)
}

func (s *Store) locateLocked(id model.TaskID) (Location, bool) {
	for gi := range s.goals {
		for ti := range s.goals[gi].Tasks {
			if s.goals[gi].Tasks[ti].ID == id {
				return GoalLocation(s.goals[gi].ID), true
			}
		}
	}
	for ti := range s.inbox {
		if s.inbox[ti].ID == id {
			return InboxLocation(), true
		}
	}
	return Location{}, false
}

func (s *Store) goalIndexLocked(id model.GoalID) (int, bool) {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// findTaskLocked returns a pointer into the live collection. Goal-owned
// tasks are searched before the inbox.
func (s *Store) findTaskLocked(id model.TaskID) (*model.Task, Location, bool) {
	for gi := range s.goals {
		for ti := range s.goals[gi].Tasks {
			if s.goals[gi].Tasks[ti].ID == id {
				return &s.goals[gi].Tasks[ti], GoalLocation(s.goals[gi].ID), true
			}
		}
	}
	for ti := range s.inbox {
		if s.inbox[ti].ID == id {
			return &s.inbox[ti], InboxLocation(), true
		}
	}
	return nil, Location{}, false
}

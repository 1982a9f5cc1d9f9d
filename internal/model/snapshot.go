package model

// Snapshot is the complete serializable state of goals, inbox tasks and
// preferences at an instant. It is always written whole; there is no
// delta format.
type Snapshot struct {
	Goals       []GoalWithTasks `json:"goals"`
	InboxTasks  []Task          `json:"inboxTasks"`
	Preferences UserPreferences `json:"preferences"`
}

func EmptySnapshot() Snapshot {
	return Snapshot{
		Goals:       []GoalWithTasks{},
		InboxTasks:  []Task{},
		Preferences: DefaultPreferences(),
	}
}

func (s *Snapshot) Normalize() {
	if s.Goals == nil {
		s.Goals = []GoalWithTasks{}
	}
	for i := range s.Goals {
		if s.Goals[i].Tasks == nil {
			s.Goals[i].Tasks = []Task{}
		}
	}
	if s.InboxTasks == nil {
		s.InboxTasks = []Task{}
	}
}

package models

// Snapshot is the whole document graph. It is persisted as one value.
type Snapshot struct {
	Projects       []Project       `json:"projects"`
	Tasks          []Task          `json:"tasks"`
	Team           []TeamMember    `json:"team"`
	Preferences    Preferences     `json:"preferences"`
	DashboardState DashboardState  `json:"dashboardState"`
	Activity       []ActivityEntry `json:"activity"`
	Notifications  []Notification  `json:"notifications"`
}

// DefaultTeam is the team a fresh workspace starts with
func DefaultTeam() []TeamMember {
	return []TeamMember{
		{ID: "u1", Name: "Alex Morgan", Role: "Product Manager"},
		{ID: "u2", Name: "Jordan Lee", Role: "Tech Lead"},
		{ID: "u3", Name: "Taylor Kim", Role: "QA Engineer"},
	}
}

// DefaultPreferences returns the preferences of a fresh workspace
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         ThemeLight,
		LastView:      ViewDashboard,
		ShowActivity:  true,
		ShowDeadlines: true,
		Role:          RoleManager,
	}
}

// DefaultSnapshot returns a new empty workspace with the seeded team
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Projects:      []Project{},
		Tasks:         []Task{},
		Team:          DefaultTeam(),
		Preferences:   DefaultPreferences(),
		Activity:      []ActivityEntry{},
		Notifications: []Notification{},
	}
}

// Clone returns a deep copy of s. Mutating the copy never affects s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Projects:       append([]Project{}, s.Projects...),
		Tasks:          append([]Task{}, s.Tasks...),
		Team:           append([]TeamMember{}, s.Team...),
		Preferences:    s.Preferences,
		DashboardState: s.DashboardState,
		Activity:       cloneEntries(s.Activity),
		Notifications:  cloneEntries(s.Notifications),
	}
	return out
}

// Normalize replaces nil collections with empty ones
func (s *Snapshot) Normalize() {
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Team == nil {
		s.Team = []TeamMember{}
	}
	if s.Activity == nil {
		s.Activity = []ActivityEntry{}
	}
	if s.Notifications == nil {
		s.Notifications = []Notification{}
	}
}

func cloneEntries(entries []ActivityEntry) []ActivityEntry {
	out := make([]ActivityEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// FindProject returns the index of the project with id, or -1
func (s *Snapshot) FindProject(id string) int {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// FindTask returns the index of the task with id, or -1
func (s *Snapshot) FindTask(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindMember returns the index of the team member with id, or -1
func (s *Snapshot) FindMember(id string) int {
	for i := range s.Team {
		if s.Team[i].ID == id {
			return i
		}
	}
	return -1
}

// TasksForProject returns the tasks belonging to projectID in stored order
func (s *Snapshot) TasksForProject(projectID string) []Task {
	var tasks []Task
	for _, t := range s.Tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

package models

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

// ProjectStatuses lists every project status in display order
var ProjectStatuses = []ProjectStatus{ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold}

// Valid reports whether s is a known project status
func (s ProjectStatus) Valid() bool {
	for _, known := range ProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human readable status name
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectPlanning:
		return "Planning"
	case ProjectInProgress:
		return "In Progress"
	case ProjectCompleted:
		return "Completed"
	case ProjectOnHold:
		return "On Hold"
	default:
		return string(s)
	}
}

// Priority is shared by projects and tasks
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists every priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// Label returns the human readable priority name
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	default:
		return string(p)
	}
}

// Project groups tasks under a manager and a deadline
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Manager   string        `json:"manager"`
	StartDate Date          `json:"startDate"`
	Deadline  Date          `json:"deadline"`
	Status    ProjectStatus `json:"status"`
	Progress  int           `json:"progress"` // derived from tasks, never set by user input
	Priority  Priority      `json:"priority"`

	// Archived is stored but not yet used by any aggregate
	Archived bool `json:"archived"`
}

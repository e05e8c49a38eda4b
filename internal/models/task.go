package models

// TaskStatus is a Kanban column
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

// TaskStatuses lists the Kanban columns left to right
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskCompleted}

// Valid reports whether s is a known task status
func (s TaskStatus) Valid() bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the column title for the status
func (s TaskStatus) Label() string {
	switch s {
	case TaskTodo:
		return "To Do"
	case TaskInProgress:
		return "In Progress"
	case TaskReview:
		return "Review"
	case TaskCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Task represents a unit of work inside a project
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assigneeId,omitempty"` // empty means unassigned
	DueDate     Date       `json:"dueDate"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
}

// IsCompleted reports whether the task sits in the completed column
func (t Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

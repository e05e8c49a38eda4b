package query

import (
	"fmt"

	"github.com/balkashynov/pmboard/internal/models"
)

// Card is a task as shown on the board
type Card struct {
	Task         models.Task
	AssigneeName string // empty when unassigned or the member is gone
	DueLabel     string
}

// Column is one Kanban column
type Column struct {
	Status models.TaskStatus
	Cards  []Card
}

// KanbanColumns partitions the project's tasks into the four status
// columns, in models.TaskStatuses order. Cards keep snapshot order.
func KanbanColumns(s models.Snapshot, projectID string, today models.Date) []Column {
	columns := make([]Column, len(models.TaskStatuses))
	index := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for i, status := range models.TaskStatuses {
		columns[i] = Column{Status: status, Cards: []Card{}}
		index[status] = i
	}
	if projectID == "" {
		return columns
	}

	names := memberNames(s)
	for _, t := range s.Tasks {
		if t.ProjectID != projectID {
			continue
		}
		i, ok := index[t.Status]
		if !ok {
			continue
		}
		columns[i].Cards = append(columns[i].Cards, Card{
			Task:         t,
			AssigneeName: names[t.AssigneeID],
			DueLabel:     DueLabel(t.DueDate, today),
		})
	}
	return columns
}

// DueLabel describes a due date relative to today: "-" when unset,
// "3d overdue", "Due today" or "Due in 4d".
func DueLabel(due, today models.Date) string {
	days, ok := due.DaysUntil(today)
	switch {
	case !ok:
		return "-"
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("Due in %dd", days)
	}
}

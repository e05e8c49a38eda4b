package query

import (
	"slices"
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

// MaxDeadlines bounds the deadline list
const MaxDeadlines = 20

// Urgency of an open task's due date
type Urgency string

const (
	UrgencyOverdue  Urgency = "Overdue"
	UrgencyDueToday Urgency = "Due today"
	UrgencyDueSoon  Urgency = "Due soon"
	UrgencyUpcoming Urgency = "Upcoming"
)

// UrgencyFor maps a signed day difference to an urgency
func UrgencyFor(days int) Urgency {
	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyDueToday
	case days <= 2:
		return UrgencyDueSoon
	default:
		return UrgencyUpcoming
	}
}

// Deadline is an open task with a due date
type Deadline struct {
	Task        models.Task
	ProjectName string
	Days        int
	Urgency     Urgency
}

// Deadlines returns open tasks with a due date, earliest first, at most
// MaxDeadlines of them. Tasks with an unparseable due date are left out.
func Deadlines(s models.Snapshot, today models.Date) []Deadline {
	projects := projectNames(s)

	var out []Deadline
	for _, t := range s.Tasks {
		if t.DueDate.IsZero() || t.IsCompleted() {
			continue
		}
		days, ok := t.DueDate.DaysUntil(today)
		if !ok {
			continue
		}
		out = append(out, Deadline{
			Task:        t,
			ProjectName: projects[t.ProjectID],
			Days:        days,
			Urgency:     UrgencyFor(days),
		})
	}

	slices.SortStableFunc(out, func(a, b Deadline) int {
		return strings.Compare(string(a.Task.DueDate), string(b.Task.DueDate))
	})
	if len(out) > MaxDeadlines {
		out = out[:MaxDeadlines]
	}
	return out
}

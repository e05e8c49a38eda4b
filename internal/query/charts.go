package query

import (
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

// Series is a labeled list of values for a bar chart
type Series struct {
	Title  string
	Labels []string
	Values []int
}

// ProjectProgressSeries has one bar per project, progress clamped to 0..100
func ProjectProgressSeries(s models.Snapshot) Series {
	out := Series{Title: "Project progress"}
	for _, p := range s.Projects {
		out.Labels = append(out.Labels, p.Name)
		out.Values = append(out.Values, min(max(p.Progress, 0), 100))
	}
	return out
}

// TaskCompletionSeries compares completed and remaining tasks
func TaskCompletionSeries(s models.Snapshot) Series {
	completed := 0
	for _, t := range s.Tasks {
		if t.IsCompleted() {
			completed++
		}
	}
	return Series{
		Title:  "Tasks",
		Labels: []string{"Completed", "Remaining"},
		Values: []int{completed, len(s.Tasks) - completed},
	}
}

// MemberTaskSeries counts assigned tasks per member, labeled by first name
func MemberTaskSeries(s models.Snapshot) Series {
	out := Series{Title: "Tasks per member"}
	for _, w := range TeamWorkload(s) {
		label, _, _ := strings.Cut(w.Member.Name, " ")
		out.Labels = append(out.Labels, label)
		out.Values = append(out.Values, w.Assigned)
	}
	return out
}

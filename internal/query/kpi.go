package query

import "github.com/balkashynov/pmboard/internal/models"

// Utilization assumes this many in-progress tasks per member is 100%
const tasksPerMember = 5

// MaxUtilization caps the utilization percentage
const MaxUtilization = 120

// KPIs are the dashboard headline numbers
type KPIs struct {
	TotalProjects     int
	ActiveProjects    int
	CompletedProjects int
	OverdueTasks      int
	Utilization       int // percent of team capacity, 0..MaxUtilization
}

// ComputeKPIs aggregates over every project, archived or not
func ComputeKPIs(s models.Snapshot, today models.Date) KPIs {
	k := KPIs{TotalProjects: len(s.Projects)}
	for _, p := range s.Projects {
		switch p.Status {
		case models.ProjectInProgress:
			k.ActiveProjects++
		case models.ProjectCompleted:
			k.CompletedProjects++
		}
	}

	inProgress := 0
	for _, t := range s.Tasks {
		if t.Status == models.TaskInProgress {
			inProgress++
		}
		if !t.IsCompleted() && t.DueDate.Before(today) {
			k.OverdueTasks++
		}
	}

	teamSize := max(len(s.Team), 1)
	k.Utilization = min(max(roundedPercent(inProgress, teamSize*tasksPerMember), 0), MaxUtilization)
	return k
}

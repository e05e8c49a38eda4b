package query

import "github.com/balkashynov/pmboard/internal/models"

const today = models.Date("2026-03-10")

func fixture() models.Snapshot {
	s := models.DefaultSnapshot()
	s.Team = append(s.Team, models.TeamMember{ID: "u4", Name: "Bob Lee", Role: "Designer"})
	s.Projects = []models.Project{
		{ID: "p1", Name: "Apollo", Manager: "Alex Morgan", Deadline: "2026-05-01", Status: models.ProjectInProgress, Progress: 50, Priority: models.PriorityHigh},
		{ID: "p2", Name: "Gemini", Manager: "Jordan Lee", Status: models.ProjectPlanning, Progress: 0, Priority: models.PriorityLow},
		{ID: "p3", Name: "Mercury", Manager: "Taylor Kim", Deadline: "2026-04-01", Status: models.ProjectCompleted, Progress: 100, Priority: models.PriorityHigh},
	}
	s.Tasks = []models.Task{
		{ID: "t1", ProjectID: "p1", Title: "Design review", AssigneeID: "u1", DueDate: "2026-03-08", Priority: models.PriorityHigh, Status: models.TaskInProgress},
		{ID: "t2", ProjectID: "p1", Title: "Ship beta", Description: "Coordinate with QA", AssigneeID: "u1", DueDate: "2026-03-10", Priority: models.PriorityMedium, Status: models.TaskCompleted},
		{ID: "t3", ProjectID: "p1", Title: "Write docs", AssigneeID: "u3", DueDate: "2026-03-12", Priority: models.PriorityLow, Status: models.TaskTodo},
		{ID: "t4", ProjectID: "p3", Title: "Load test", DueDate: "2026-03-20", Priority: models.PriorityCritical, Status: models.TaskReview},
		{ID: "t5", ProjectID: "p3", Title: "Fix flaky build", AssigneeID: "ghost", Priority: models.PriorityMedium, Status: models.TaskInProgress},
	}
	return s
}

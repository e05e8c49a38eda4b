package service

import "github.com/balkashynov/pmboard/internal/models"

// Progress returns the completion percentage for a set of tasks:
// round(100 * completed / total), or 0 for no tasks
func Progress(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			done++
		}
	}
	// Integer form of floor(100*done/total + 0.5), exact for every ratio
	total := len(tasks)
	return (200*done + total) / (2 * total)
}

// RecalcProgress stores the derived progress of projectID. Unknown ids are ignored.
func RecalcProgress(snap *models.Snapshot, projectID string) {
	i := snap.FindProject(projectID)
	if i < 0 {
		return
	}
	snap.Projects[i].Progress = Progress(snap.TasksForProject(projectID))
}

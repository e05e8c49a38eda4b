package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/pmboard/internal/models"
)

func tasksWith(done, total int) []models.Task {
	tasks := make([]models.Task, total)
	for i := range tasks {
		tasks[i].Status = models.TaskTodo
		if i < done {
			tasks[i].Status = models.TaskCompleted
		}
	}
	return tasks
}

func TestProgress(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{7, 40, 18}, // 17.5 rounds up
		{5, 5, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Progress(tasksWith(tt.done, tt.total)), "%d/%d", tt.done, tt.total)
	}
}

func TestRecalcProgressIgnoresUnknownProject(t *testing.T) {
	snap := models.DefaultSnapshot()
	snap.Projects = []models.Project{{ID: "p", Progress: 42}}

	RecalcProgress(&snap, "other")
	assert.Equal(t, 42, snap.Projects[0].Progress)

	RecalcProgress(&snap, "p")
	assert.Equal(t, 0, snap.Projects[0].Progress)
}

package parser

import (
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

// normalizeEnum lowercases input and turns spaces and dashes into underscores
func normalizeEnum(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(input)
}

// NormalizeTaskStatus maps "To Do", "in-progress", "done" and the like to a
// task status. ok is false for anything unrecognized.
func NormalizeTaskStatus(input string) (models.TaskStatus, bool) {
	switch s := normalizeEnum(input); s {
	case "to_do", "todo":
		return models.TaskTodo, true
	case "wip", "doing":
		return models.TaskInProgress, true
	case "done":
		return models.TaskCompleted, true
	default:
		status := models.TaskStatus(s)
		return status, status.Valid()
	}
}

// NormalizeProjectStatus maps "On Hold", "in-progress" and the like to a
// project status
func NormalizeProjectStatus(input string) (models.ProjectStatus, bool) {
	switch s := normalizeEnum(input); s {
	case "active":
		return models.ProjectInProgress, true
	case "done":
		return models.ProjectCompleted, true
	case "hold", "paused":
		return models.ProjectOnHold, true
	default:
		status := models.ProjectStatus(s)
		return status, status.Valid()
	}
}

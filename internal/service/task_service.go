package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/store"
)

// CreateTaskRequest holds the data needed to create a new task
type CreateTaskRequest struct {
	ProjectID   string
	Title       string
	Description string
	AssigneeID  string            // empty for unassigned
	DueDate     models.Date       // optional
	Priority    models.Priority   // defaults to medium
	Status      models.TaskStatus // defaults to todo
}

// UpdateTaskRequest holds the fields to change; nil fields are left as is.
// Setting AssigneeID to "" unassigns the task.
type UpdateTaskRequest struct {
	ProjectID   *string
	Title       *string
	Description *string
	AssigneeID  *string
	DueDate     *models.Date
	Priority    *models.Priority
	Status      *models.TaskStatus
}

// CreateTask adds a task to an existing project and refreshes its progress
func (s *Service) CreateTask(req CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		ProjectID:   strings.TrimSpace(req.ProjectID),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		AssigneeID:  strings.TrimSpace(req.AssigneeID),
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.TaskTodo
	}

	_, err := s.container.Update(func(snap *models.Snapshot) error {
		if err := validateTask(snap, task); err != nil {
			return err
		}

		task.ID = s.newID(prefixTask)
		snap.Tasks = append(snap.Tasks, task)

		s.record(snap, models.ActivityTaskCreate, "Task added: "+task.Title, map[string]string{
			"projectId": task.ProjectID,
			"taskId":    task.ID,
		})
		RecalcProgress(snap, task.ProjectID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("task created", zap.String("task_id", task.ID), zap.String("project_id", task.ProjectID))
	return &task, nil
}

// UpdateTask merges req into the task with id. When the task changes project
// both projects get their progress recalculated. A missing id is a no-op.
func (s *Service) UpdateTask(id string, req UpdateTaskRequest) (*models.Task, error) {
	var updated *models.Task

	_, err := s.container.Update(func(snap *models.Snapshot) error {
		i := snap.FindTask(id)
		if i < 0 {
			return store.ErrNoChange
		}

		task := snap.Tasks[i]
		previousProject := task.ProjectID
		if req.ProjectID != nil {
			task.ProjectID = strings.TrimSpace(*req.ProjectID)
		}
		if req.Title != nil {
			task.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			task.Description = strings.TrimSpace(*req.Description)
		}
		if req.AssigneeID != nil {
			task.AssigneeID = strings.TrimSpace(*req.AssigneeID)
		}
		if req.DueDate != nil {
			task.DueDate = *req.DueDate
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.Status != nil {
			task.Status = *req.Status
		}
		if err := validateTask(snap, task); err != nil {
			return err
		}

		snap.Tasks[i] = task
		updated = &task

		s.record(snap, models.ActivityTaskUpdate, "Task updated: "+task.Title, map[string]string{
			"projectId": task.ProjectID,
			"taskId":    task.ID,
		})
		RecalcProgress(snap, task.ProjectID)
		if previousProject != task.ProjectID {
			RecalcProgress(snap, previousProject)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes the task and refreshes its project's progress.
// A missing id is a no-op and returns a nil task.
func (s *Service) DeleteTask(id string) (*models.Task, error) {
	var removed *models.Task

	_, err := s.container.Update(func(snap *models.Snapshot) error {
		i := snap.FindTask(id)
		if i < 0 {
			return store.ErrNoChange
		}
		task := snap.Tasks[i]
		removed = &task

		snap.Tasks = append(snap.Tasks[:i], snap.Tasks[i+1:]...)

		s.record(snap, models.ActivityTaskDelete, "Task deleted: "+task.Title, map[string]string{
			"projectId": task.ProjectID,
			"taskId":    task.ID,
		})
		RecalcProgress(snap, task.ProjectID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// MoveTask changes only the task's status, the way a Kanban drop does.
// Moving a task into the column it is already in changes nothing and
// returns moved=false.
func (s *Service) MoveTask(id string, status models.TaskStatus) (moved bool, err error) {
	if !status.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	_, err = s.container.Update(func(snap *models.Snapshot) error {
		i := snap.FindTask(id)
		if i < 0 || snap.Tasks[i].Status == status {
			return store.ErrNoChange
		}
		snap.Tasks[i].Status = status
		task := snap.Tasks[i]

		s.record(snap, models.ActivityTaskMove, "Task moved to "+status.Label(), map[string]string{
			"projectId": task.ProjectID,
			"taskId":    task.ID,
		})
		RecalcProgress(snap, task.ProjectID)
		moved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return moved, nil
}

// validateTask checks required fields, enums and references against snap
func validateTask(snap *models.Snapshot, t models.Task) error {
	if t.ProjectID == "" {
		return ErrProjectRequired
	}
	if t.Title == "" {
		return ErrTitleRequired
	}
	if snap.FindProject(t.ProjectID) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownProject, t.ProjectID)
	}
	if t.AssigneeID != "" && snap.FindMember(t.AssigneeID) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAssignee, t.AssigneeID)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !validDate(t.DueDate) {
		return ErrInvalidDate
	}
	return nil
}

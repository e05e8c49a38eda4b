package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/store"
)

// CreateProjectRequest holds the data needed to create a new project
type CreateProjectRequest struct {
	Name      string
	Manager   string
	StartDate models.Date          // defaults to today
	Deadline  models.Date          // optional
	Status    models.ProjectStatus // defaults to planning
	Priority  models.Priority      // defaults to medium
}

// UpdateProjectRequest holds the fields to change; nil fields are left as is.
// Progress is derived and cannot be set.
type UpdateProjectRequest struct {
	Name      *string
	Manager   *string
	StartDate *models.Date
	Deadline  *models.Date
	Status    *models.ProjectStatus
	Priority  *models.Priority
	Archived  *bool
}

// CreateProject validates req and adds a new project with zero progress
func (s *Service) CreateProject(req CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		Name:      strings.TrimSpace(req.Name),
		Manager:   strings.TrimSpace(req.Manager),
		StartDate: req.StartDate,
		Deadline:  req.Deadline,
		Status:    req.Status,
		Priority:  req.Priority,
	}
	if project.StartDate.IsZero() {
		project.StartDate = s.today()
	}
	if project.Status == "" {
		project.Status = models.ProjectPlanning
	}
	if project.Priority == "" {
		project.Priority = models.PriorityMedium
	}
	if err := validateProject(project); err != nil {
		return nil, err
	}

	_, err := s.container.Update(func(snap *models.Snapshot) error {
		project.ID = s.newID(prefixProject)
		snap.Projects = append(snap.Projects, project)
		snap.DashboardState.LastOpenedProjectID = project.ID

		s.record(snap, models.ActivityProjectCreate, "Project created: "+project.Name, map[string]string{
			"projectId": project.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("project created", zap.String("project_id", project.ID), zap.String("name", project.Name))
	return &project, nil
}

// UpdateProject merges req into the project with id. A missing id is a
// no-op and returns a nil project.
func (s *Service) UpdateProject(id string, req UpdateProjectRequest) (*models.Project, error) {
	var updated *models.Project

	_, err := s.container.Update(func(snap *models.Snapshot) error {
		i := snap.FindProject(id)
		if i < 0 {
			return store.ErrNoChange
		}

		project := snap.Projects[i]
		if req.Name != nil {
			project.Name = strings.TrimSpace(*req.Name)
		}
		if req.Manager != nil {
			project.Manager = strings.TrimSpace(*req.Manager)
		}
		if req.StartDate != nil {
			project.StartDate = *req.StartDate
		}
		if req.Deadline != nil {
			project.Deadline = *req.Deadline
		}
		if req.Status != nil {
			project.Status = *req.Status
		}
		if req.Priority != nil {
			project.Priority = *req.Priority
		}
		if req.Archived != nil {
			project.Archived = *req.Archived
		}
		if err := validateProject(project); err != nil {
			return err
		}

		snap.Projects[i] = project
		updated = &project

		s.record(snap, models.ActivityProjectUpdate, "Project updated: "+project.Name, map[string]string{
			"projectId": project.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes the project and every task that belongs to it.
// A missing id is a no-op and returns a nil project.
func (s *Service) DeleteProject(id string) (*models.Project, error) {
	var removed *models.Project

	_, err := s.container.Update(func(snap *models.Snapshot) error {
		i := snap.FindProject(id)
		if i < 0 {
			return store.ErrNoChange
		}
		project := snap.Projects[i]
		removed = &project

		snap.Projects = append(snap.Projects[:i], snap.Projects[i+1:]...)

		// Cascade to tasks
		kept := snap.Tasks[:0]
		for _, t := range snap.Tasks {
			if t.ProjectID != id {
				kept = append(kept, t)
			}
		}
		snap.Tasks = kept

		if snap.DashboardState.LastOpenedProjectID == id {
			snap.DashboardState.LastOpenedProjectID = ""
			if len(snap.Projects) > 0 {
				snap.DashboardState.LastOpenedProjectID = snap.Projects[0].ID
			}
		}

		s.record(snap, models.ActivityProjectDelete, "Project deleted: "+project.Name, map[string]string{
			"projectId": project.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if removed != nil {
		s.log.Debug("project deleted", zap.String("project_id", removed.ID))
	}
	return removed, nil
}

// validateProject checks required fields and enum values
func validateProject(p models.Project) error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
	}
	if !p.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, p.Priority)
	}
	if !validDate(p.StartDate) || !validDate(p.Deadline) {
		return ErrInvalidDate
	}
	return nil
}

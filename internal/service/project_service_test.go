package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/pmboard/internal/models"
)

func TestCreateProjectDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.CreateProject(CreateProjectRequest{Name: "  Apollo  ", Manager: "Alex"})
	require.NoError(t, err)

	assert.Equal(t, "prj_1", p.ID)
	assert.Equal(t, "Apollo", p.Name)
	assert.Equal(t, models.Date("2026-03-10"), p.StartDate)
	assert.True(t, p.Deadline.IsZero())
	assert.Equal(t, models.ProjectPlanning, p.Status)
	assert.Equal(t, models.PriorityMedium, p.Priority)
	assert.Equal(t, 0, p.Progress)
	assert.False(t, p.Archived)

	snap := svc.Snapshot()
	require.Len(t, snap.Projects, 1)
	assert.Equal(t, p.ID, snap.DashboardState.LastOpenedProjectID)
	require.Len(t, snap.Activity, 1)
	assert.Equal(t, models.ActivityProjectCreate, snap.Activity[0].Type)
	assert.Equal(t, "Project created: Apollo", snap.Activity[0].Message)
	assert.Equal(t, map[string]string{"projectId": p.ID}, snap.Activity[0].Meta)
	assert.Equal(t, snap.Activity, snap.Notifications)
}

func TestCreateProjectValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  CreateProjectRequest
		want error
	}{
		{"empty name", CreateProjectRequest{Name: "   "}, ErrNameRequired},
		{"bad status", CreateProjectRequest{Name: "x", Status: "done"}, ErrInvalidStatus},
		{"bad priority", CreateProjectRequest{Name: "x", Priority: "urgent"}, ErrInvalidPriority},
		{"bad deadline", CreateProjectRequest{Name: "x", Deadline: "31/12/2026"}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.CreateProject(tt.req)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	// Nothing was written, not even an activity entry
	snap := svc.Snapshot()
	assert.Empty(t, snap.Projects)
	assert.Empty(t, snap.Activity)
	assert.Empty(t, snap.Notifications)
}

func TestUpdateProjectMergesFields(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "Apollo")

	updated, err := svc.UpdateProject(p.ID, UpdateProjectRequest{
		Status:   ptr(models.ProjectInProgress),
		Deadline: ptr(models.Date("2026-12-01")),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Apollo", updated.Name)
	assert.Equal(t, models.ProjectInProgress, updated.Status)
	assert.Equal(t, models.Date("2026-12-01"), updated.Deadline)

	snap := svc.Snapshot()
	assert.Equal(t, *updated, snap.Projects[0])
	assert.Equal(t, models.ActivityProjectUpdate, snap.Activity[0].Type)
}

func TestUpdateProjectRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "Apollo")

	_, err := svc.UpdateProject(p.ID, UpdateProjectRequest{Name: ptr(" ")})
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, "Apollo", svc.Project(p.ID).Name)
}

func TestUpdateProjectMissingIDIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	mustProject(t, svc, "Apollo")
	before := svc.Snapshot()

	updated, err := svc.UpdateProject("prj_missing", UpdateProjectRequest{Name: ptr("Ghost")})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, before, svc.Snapshot())
}

func TestDeleteProjectCascades(t *testing.T) {
	svc, _ := newTestService(t)
	keep := mustProject(t, svc, "Keep")
	drop := mustProject(t, svc, "Drop")
	mustTask(t, svc, keep.ID, "stay", models.TaskTodo)
	mustTask(t, svc, drop.ID, "go 1", models.TaskTodo)
	mustTask(t, svc, drop.ID, "go 2", models.TaskCompleted)

	removed, err := svc.DeleteProject(drop.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "Drop", removed.Name)

	snap := svc.Snapshot()
	require.Len(t, snap.Projects, 1)
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "stay", snap.Tasks[0].Title)
	for _, task := range snap.Tasks {
		assert.GreaterOrEqual(t, snap.FindProject(task.ProjectID), 0, "orphaned task %s", task.ID)
	}

	// The deleted project was last opened, so the board falls back to the first remaining one
	assert.Equal(t, keep.ID, snap.DashboardState.LastOpenedProjectID)
	assert.Equal(t, models.ActivityProjectDelete, snap.Activity[0].Type)
	assert.Equal(t, "Project deleted: Drop", snap.Activity[0].Message)
}

func TestDeleteLastProjectClearsLastOpened(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "Solo")

	_, err := svc.DeleteProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "", svc.Snapshot().DashboardState.LastOpenedProjectID)
}

func TestDeleteProjectMissingIDIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	mustProject(t, svc, "Apollo")
	before := svc.Snapshot()

	removed, err := svc.DeleteProject("nope")
	require.NoError(t, err)
	assert.Nil(t, removed)
	assert.Equal(t, before, svc.Snapshot())
}

func TestMutationsArePersisted(t *testing.T) {
	svc, adapter := newTestService(t)
	p := mustProject(t, svc, "Apollo")
	mustTask(t, svc, p.ID, "Launch", models.TaskCompleted)

	assert.Equal(t, svc.Snapshot(), adapter.Load())
}

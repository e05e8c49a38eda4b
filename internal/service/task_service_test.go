package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/pmboard/internal/models"
)

func TestCreateTaskDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "Apollo")

	task, err := svc.CreateTask(CreateTaskRequest{ProjectID: p.ID, Title: " Wire the console "})
	require.NoError(t, err)

	assert.Equal(t, "Wire the console", task.Title)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.TaskTodo, task.Status)
	assert.Equal(t, "", task.AssigneeID)

	snap := svc.Snapshot()
	assert.Equal(t, models.ActivityTaskCreate, snap.Activity[0].Type)
	assert.Equal(t, "Task added: Wire the console", snap.Activity[0].Message)
	assert.Equal(t, map[string]string{"projectId": p.ID, "taskId": task.ID}, snap.Activity[0].Meta)
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "Apollo")
	before := svc.Snapshot()

	tests := []struct {
		name string
		req  CreateTaskRequest
		want error
	}{
		{"no project", CreateTaskRequest{Title: "x"}, ErrProjectRequired},
		{"no title", CreateTaskRequest{ProjectID: p.ID, Title: "  "}, ErrTitleRequired},
		{"unknown project", CreateTaskRequest{ProjectID: "prj_zzz", Title: "x"}, ErrUnknownProject},
		{"unknown assignee", CreateTaskRequest{ProjectID: p.ID, Title: "x", AssigneeID: "ghost"}, ErrUnknownAssignee},
		{"bad status", CreateTaskRequest{ProjectID: p.ID, Title: "x", Status: "done"}, ErrInvalidStatus},
		{"bad priority", CreateTaskRequest{ProjectID: p.ID, Title: "x", Priority: "p0"}, ErrInvalidPriority},
		{"bad due date", CreateTaskRequest{ProjectID: p.ID, Title: "x", DueDate: "tomorrow"}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := svc.CreateTask(tt.req)
			assert.Nil(t, task)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, before, svc.Snapshot())
}

func TestProgressScenario(t *testing.T) {
	svc, _ := newTestService(t)
	p1 := mustProject(t, svc, "P1")
	assert.Equal(t, 0, svc.Project(p1.ID).Progress)

	t1 := mustTask(t, svc, p1.ID, "T1", models.TaskTodo)
	assert.Equal(t, 0, svc.Project(p1.ID).Progress)

	_, err := svc.UpdateTask(t1.ID, UpdateTaskRequest{Status: ptr(models.TaskCompleted)})
	require.NoError(t, err)
	assert.Equal(t, 100, svc.Project(p1.ID).Progress)

	mustTask(t, svc, p1.ID, "T2", models.TaskTodo)
	assert.Equal(t, 50, svc.Project(p1.ID).Progress)

	_, err = svc.DeleteTask(t1.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, svc.Project(p1.ID).Progress)
}

func TestProgressRounding(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "Thirds")
	mustTask(t, svc, p.ID, "a", models.TaskCompleted)
	mustTask(t, svc, p.ID, "b", models.TaskTodo)
	mustTask(t, svc, p.ID, "c", models.TaskReview)

	assert.Equal(t, 33, svc.Project(p.ID).Progress)

	mustTask(t, svc, p.ID, "d", models.TaskCompleted)
	assert.Equal(t, 50, svc.Project(p.ID).Progress)

	mustTask(t, svc, p.ID, "e", models.TaskCompleted)
	mustTask(t, svc, p.ID, "f", models.TaskCompleted)
	// 4 of 6 = 66.67
	assert.Equal(t, 67, svc.Project(p.ID).Progress)
}

func TestUpdateTaskAcrossProjectsRecalculatesBoth(t *testing.T) {
	svc, _ := newTestService(t)
	a := mustProject(t, svc, "A")
	b := mustProject(t, svc, "B")
	done := mustTask(t, svc, a.ID, "done", models.TaskCompleted)
	mustTask(t, svc, a.ID, "open", models.TaskTodo)
	mustTask(t, svc, b.ID, "open", models.TaskTodo)

	assert.Equal(t, 50, svc.Project(a.ID).Progress)
	assert.Equal(t, 0, svc.Project(b.ID).Progress)

	_, err := svc.UpdateTask(done.ID, UpdateTaskRequest{ProjectID: ptr(b.ID)})
	require.NoError(t, err)

	assert.Equal(t, 0, svc.Project(a.ID).Progress)
	assert.Equal(t, 50, svc.Project(b.ID).Progress)
}

func TestUpdateTaskValidationKeepsState(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "A")
	task := mustTask(t, svc, p.ID, "keep me", models.TaskTodo)
	before := svc.Snapshot()

	_, err := svc.UpdateTask(task.ID, UpdateTaskRequest{Title: ptr(""), Status: ptr(models.TaskCompleted)})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.UpdateTask(task.ID, UpdateTaskRequest{ProjectID: ptr("prj_gone")})
	assert.ErrorIs(t, err, ErrUnknownProject)

	assert.Equal(t, before, svc.Snapshot())
}

func TestUpdateTaskAssignAndUnassign(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "A")
	task := mustTask(t, svc, p.ID, "x", models.TaskTodo)

	updated, err := svc.UpdateTask(task.ID, UpdateTaskRequest{AssigneeID: ptr("u2")})
	require.NoError(t, err)
	assert.Equal(t, "u2", updated.AssigneeID)

	updated, err = svc.UpdateTask(task.ID, UpdateTaskRequest{AssigneeID: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.AssigneeID)
	assert.Equal(t, "Task updated: x", svc.Snapshot().Activity[0].Message)
}

func TestTaskMissingIDIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	mustProject(t, svc, "A")
	before := svc.Snapshot()

	updated, err := svc.UpdateTask("tsk_missing", UpdateTaskRequest{Title: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	removed, err := svc.DeleteTask("tsk_missing")
	require.NoError(t, err)
	assert.Nil(t, removed)

	moved, err := svc.MoveTask("tsk_missing", models.TaskReview)
	require.NoError(t, err)
	assert.False(t, moved)

	assert.Equal(t, before, svc.Snapshot())
}

func TestDeleteTaskRecordsActivity(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "A")
	task := mustTask(t, svc, p.ID, "bye", models.TaskTodo)

	removed, err := svc.DeleteTask(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, removed.ID)

	snap := svc.Snapshot()
	assert.Empty(t, snap.Tasks)
	assert.Equal(t, models.ActivityTaskDelete, snap.Activity[0].Type)
	assert.Equal(t, "Task deleted: bye", snap.Activity[0].Message)
}

func TestMoveTask(t *testing.T) {
	svc, _ := newTestService(t)
	p := mustProject(t, svc, "A")
	task := mustTask(t, svc, p.ID, "x", models.TaskTodo)
	mustTask(t, svc, p.ID, "y", models.TaskTodo)

	moved, err := svc.MoveTask(task.ID, models.TaskCompleted)
	require.NoError(t, err)
	assert.True(t, moved)

	snap := svc.Snapshot()
	assert.Equal(t, 50, snap.Projects[0].Progress)
	assert.Equal(t, models.ActivityTaskMove, snap.Activity[0].Type)
	assert.Equal(t, "Task moved to Completed", snap.Activity[0].Message)

	// Same column again changes nothing
	before := svc.Snapshot()
	moved, err = svc.MoveTask(task.ID, models.TaskCompleted)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, svc.Snapshot())

	_, err = svc.MoveTask(task.ID, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

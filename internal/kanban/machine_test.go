package kanban

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/db"
	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/service"
	"github.com/balkashynov/pmboard/internal/store"
)

func newBoard(t *testing.T) (*service.Service, *models.Project) {
	t.Helper()
	adapter := store.NewAdapter(db.NewMemoryStore(), store.DefaultKey, zap.NewNop())
	svc := service.New(store.NewContainer(adapter),
		service.WithClock(func() time.Time { return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC) }),
	)
	p, err := svc.CreateProject(service.CreateProjectRequest{Name: "Apollo"})
	require.NoError(t, err)
	return svc, p
}

func TestDropMovesTask(t *testing.T) {
	svc, p := newBoard(t)
	task, err := svc.CreateTask(service.CreateTaskRequest{ProjectID: p.ID, Title: "Launch"})
	require.NoError(t, err)

	var m Machine
	m.DragStart(task.ID)
	moved, err := m.Drop(models.TaskCompleted, svc)
	m.DragEnd()

	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, models.TaskCompleted, svc.Task(task.ID).Status)
	assert.Equal(t, 100, svc.Project(p.ID).Progress)

	snap := svc.Snapshot()
	assert.Equal(t, models.ActivityTaskMove, snap.Activity[0].Type)
	assert.Equal(t, "Task moved to Completed", snap.Activity[0].Message)

	_, dragging := m.Dragging()
	assert.False(t, dragging)
}

func TestDropIntoSameColumnIsNoop(t *testing.T) {
	svc, p := newBoard(t)
	task, err := svc.CreateTask(service.CreateTaskRequest{ProjectID: p.ID, Title: "Review docs", Status: models.TaskReview})
	require.NoError(t, err)
	before := svc.Snapshot()

	var m Machine
	m.DragStart(task.ID)
	moved, err := m.Drop(models.TaskReview, svc)
	m.DragEnd()

	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, svc.Snapshot())
}

func TestDropWithoutDragStart(t *testing.T) {
	svc, p := newBoard(t)
	_, err := svc.CreateTask(service.CreateTaskRequest{ProjectID: p.ID, Title: "Launch"})
	require.NoError(t, err)
	before := svc.Snapshot()

	var m Machine
	moved, err := m.Drop(models.TaskCompleted, svc)

	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, svc.Snapshot())
}

func TestDropIntoUnknownColumn(t *testing.T) {
	svc, p := newBoard(t)
	task, err := svc.CreateTask(service.CreateTaskRequest{ProjectID: p.ID, Title: "Launch"})
	require.NoError(t, err)
	before := svc.Snapshot()

	var m Machine
	m.DragStart(task.ID)
	moved, err := m.Drop("archived", svc)

	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, svc.Snapshot())

	id, dragging := m.Dragging()
	assert.True(t, dragging, "only DragEnd clears the drag")
	assert.Equal(t, task.ID, id)
}

func TestDropAfterTaskDeleted(t *testing.T) {
	svc, p := newBoard(t)
	task, err := svc.CreateTask(service.CreateTaskRequest{ProjectID: p.ID, Title: "Launch"})
	require.NoError(t, err)

	var m Machine
	m.DragStart(task.ID)
	_, err = svc.DeleteTask(task.ID)
	require.NoError(t, err)
	before := svc.Snapshot()

	moved, err := m.Drop(models.TaskCompleted, svc)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, svc.Snapshot())
}

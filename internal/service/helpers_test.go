package service

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/db"
	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/store"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func sequentialIDs() func(prefix string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s_%d", prefix, n)
	}
}

func newTestService(t testing.TB) (*Service, *store.Adapter) {
	t.Helper()
	adapter := store.NewAdapter(db.NewMemoryStore(), store.DefaultKey, zap.NewNop())
	svc := New(store.NewContainer(adapter),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
		WithLogger(zap.NewNop()),
	)
	return svc, adapter
}

func mustProject(t testing.TB, svc *Service, name string) *models.Project {
	t.Helper()
	p, err := svc.CreateProject(CreateProjectRequest{Name: name})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func mustTask(t testing.TB, svc *Service, projectID, title string, status models.TaskStatus) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(CreateTaskRequest{ProjectID: projectID, Title: title, Status: status})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func ptr[T any](v T) *T {
	return &v
}

package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/db"
	"github.com/balkashynov/pmboard/internal/models"
)

// failingStore fails every read and write
type failingStore struct {
	sets int
}

func (f *failingStore) Get(string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (f *failingStore) Set(string, string) error {
	f.sets++
	return errors.New("quota exceeded")
}
func (f *failingStore) Close() error { return nil }

// countingStore records how many writes happen
type countingStore struct {
	*db.MemoryStore
	sets int
}

func (c *countingStore) Set(key, value string) error {
	c.sets++
	return c.MemoryStore.Set(key, value)
}

func sampleSnapshot() models.Snapshot {
	s := models.DefaultSnapshot()
	s.Projects = append(s.Projects, models.Project{
		ID: "prj_1", Name: "Apollo", Manager: "Alex", StartDate: "2026-01-05", Deadline: "2026-06-30",
		Status: models.ProjectInProgress, Progress: 50, Priority: models.PriorityHigh,
	})
	s.Tasks = append(s.Tasks,
		models.Task{ID: "tsk_1", ProjectID: "prj_1", Title: "Design", AssigneeID: "u1", DueDate: "2026-02-01", Priority: models.PriorityMedium, Status: models.TaskCompleted},
		models.Task{ID: "tsk_2", ProjectID: "prj_1", Title: "Build", Priority: models.PriorityLow, Status: models.TaskTodo},
	)
	entry := models.ActivityEntry{
		ID: "act_1", Type: models.ActivityTaskCreate, Message: "Task added: Build",
		Meta:      map[string]string{"projectId": "prj_1", "taskId": "tsk_2"},
		Timestamp: time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC),
	}
	s.Activity = append(s.Activity, entry)
	s.Notifications = append(s.Notifications, entry.Clone())
	s.Preferences.Theme = models.ThemeDark
	s.DashboardState.LastOpenedProjectID = "prj_1"
	return s
}

func TestAdapterLoadMissingReturnsDefault(t *testing.T) {
	adapter := NewAdapter(db.NewMemoryStore(), "", zap.NewNop())
	assert.Equal(t, models.DefaultSnapshot(), adapter.Load())
}

func TestAdapterRoundTrip(t *testing.T) {
	adapter := NewAdapter(db.NewMemoryStore(), "test", zap.NewNop())
	original := sampleSnapshot()

	adapter.Save(original)
	loaded := adapter.Load()

	assert.Equal(t, original, loaded)
}

func TestAdapterCorruptValueReturnsDefault(t *testing.T) {
	for _, raw := range []string{"{not json", `"a string"`, `{"projects": 5}`, `[]`} {
		kv := db.NewMemoryStore()
		require.NoError(t, kv.Set(DefaultKey, raw))

		adapter := NewAdapter(kv, DefaultKey, zap.NewNop())
		assert.Equal(t, models.DefaultSnapshot(), adapter.Load(), "raw %q", raw)
	}
}

func TestAdapterShallowDefaults(t *testing.T) {
	kv := db.NewMemoryStore()
	require.NoError(t, kv.Set(DefaultKey, `{"projects":[{"id":"p","name":"Only"}],"preferences":{"theme":"dark"},"tasks":null}`))

	loaded := NewAdapter(kv, DefaultKey, zap.NewNop()).Load()

	require.Len(t, loaded.Projects, 1)
	assert.Equal(t, "Only", loaded.Projects[0].Name)
	// Missing top-level keys fall back to defaults
	assert.Equal(t, models.DefaultTeam(), loaded.Team)
	assert.NotNil(t, loaded.Activity)
	// A present key replaces its default wholesale
	assert.Equal(t, models.ThemeDark, loaded.Preferences.Theme)
	assert.False(t, loaded.Preferences.ShowActivity)
	// null collections normalize to empty
	assert.NotNil(t, loaded.Tasks)
	assert.Empty(t, loaded.Tasks)
}

func TestAdapterSwallowsStorageErrors(t *testing.T) {
	kv := &failingStore{}
	adapter := NewAdapter(kv, DefaultKey, nil)

	assert.NotPanics(t, func() { adapter.Save(sampleSnapshot()) })
	assert.Equal(t, 1, kv.sets)
	assert.Equal(t, models.DefaultSnapshot(), adapter.Load())
}

func TestAdapterSaveWritesOnce(t *testing.T) {
	kv := &countingStore{MemoryStore: db.NewMemoryStore()}
	adapter := NewAdapter(kv, DefaultKey, zap.NewNop())

	adapter.Save(sampleSnapshot())
	assert.Equal(t, 1, kv.sets)
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/pmboard/internal/models"
)

func TestKanbanColumns(t *testing.T) {
	cols := KanbanColumns(fixture(), "p1", today)
	require.Len(t, cols, 4)

	var statuses []models.TaskStatus
	for _, c := range cols {
		statuses = append(statuses, c.Status)
	}
	assert.Equal(t, models.TaskStatuses, statuses)

	require.Len(t, cols[0].Cards, 1)
	assert.Equal(t, "t3", cols[0].Cards[0].Task.ID)
	assert.Equal(t, "Taylor Kim", cols[0].Cards[0].AssigneeName)
	assert.Equal(t, "Due in 2d", cols[0].Cards[0].DueLabel)

	require.Len(t, cols[1].Cards, 1)
	assert.Equal(t, "2d overdue", cols[1].Cards[0].DueLabel)

	assert.Empty(t, cols[2].Cards)

	require.Len(t, cols[3].Cards, 1)
	assert.Equal(t, "Due today", cols[3].Cards[0].DueLabel)
}

func TestKanbanColumnsWithoutProject(t *testing.T) {
	for _, c := range KanbanColumns(fixture(), "", today) {
		assert.Empty(t, c.Cards)
	}
}

func TestKanbanColumnsUnknownAssignee(t *testing.T) {
	cols := KanbanColumns(fixture(), "p3", today)
	require.Len(t, cols[1].Cards, 1)
	assert.Equal(t, "", cols[1].Cards[0].AssigneeName)
	assert.Equal(t, "-", cols[1].Cards[0].DueLabel)
}

func TestDueLabel(t *testing.T) {
	assert.Equal(t, "-", DueLabel("", today))
	assert.Equal(t, "-", DueLabel("soon", today))
	assert.Equal(t, "10d overdue", DueLabel("2026-02-28", today))
	assert.Equal(t, "Due today", DueLabel(today, today))
	assert.Equal(t, "Due in 1d", DueLabel("2026-03-11", today))
}

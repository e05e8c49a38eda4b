package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/pmboard/internal/models"
)

func TestComputeKPIs(t *testing.T) {
	k := ComputeKPIs(fixture(), today)

	assert.Equal(t, 3, k.TotalProjects)
	assert.Equal(t, 1, k.ActiveProjects)
	assert.Equal(t, 1, k.CompletedProjects)
	assert.Equal(t, 1, k.OverdueTasks, "completed t2 and undated t5 are not overdue")
	// 2 in progress over 4 members * 5 = 10%
	assert.Equal(t, 10, k.Utilization)
}

func TestUtilizationBounds(t *testing.T) {
	tests := []struct {
		team, inProgress, want int
	}{
		{0, 0, 0},
		{0, 1, 20}, // empty team counts as one member
		{1, 5, 100},
		{1, 6, 120},
		{1, 50, 120},
		{3, 1, 7}, // 6.67 rounds up
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("team=%d/wip=%d", tt.team, tt.inProgress), func(t *testing.T) {
			s := models.DefaultSnapshot()
			s.Team = s.Team[:0]
			for i := 0; i < tt.team; i++ {
				s.Team = append(s.Team, models.TeamMember{ID: fmt.Sprintf("m%d", i), Name: "m"})
			}
			for i := 0; i < tt.inProgress; i++ {
				s.Tasks = append(s.Tasks, models.Task{ID: fmt.Sprintf("t%d", i), Status: models.TaskInProgress})
			}
			assert.Equal(t, tt.want, ComputeKPIs(s, today).Utilization)
		})
	}
}

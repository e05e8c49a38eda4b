package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/pmboard/internal/models"
)

func TestActivityRetention(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 1; i <= 85; i++ {
		_, err := svc.AddTeamMember(CreateMemberRequest{Name: fmt.Sprintf("m%d", i)})
		require.NoError(t, err)
	}

	snap := svc.Snapshot()
	require.Len(t, snap.Activity, models.MaxActivityEntries)
	require.Len(t, snap.Notifications, models.MaxNotifications)

	// Newest first; the five oldest were dropped
	assert.Equal(t, "Team member added: m85", snap.Activity[0].Message)
	assert.Equal(t, "Team member added: m6", snap.Activity[79].Message)
	assert.Equal(t, "Team member added: m85", snap.Notifications[0].Message)
	assert.Equal(t, "Team member added: m56", snap.Notifications[29].Message)
}

func TestAppendActivityMirrorsWithoutSharing(t *testing.T) {
	snap := models.DefaultSnapshot()
	entry := models.ActivityEntry{ID: "act_1", Type: "x", Meta: map[string]string{"k": "v"}}

	AppendActivity(&snap, entry)
	snap.Activity[0].Meta["k"] = "changed"

	assert.Equal(t, "v", snap.Notifications[0].Meta["k"])
	assert.Equal(t, "v", entry.Meta["k"])
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamWorkload(t *testing.T) {
	got := TeamWorkload(fixture())
	require.Len(t, got, 4)

	alex := got[0]
	assert.Equal(t, "u1", alex.Member.ID)
	assert.Equal(t, 2, alex.Assigned)
	assert.Equal(t, 1, alex.Completed)
	assert.Equal(t, 1, alex.Active)
	assert.Equal(t, AvailabilityLight, alex.Availability)

	assert.Equal(t, 0, got[1].Assigned)
	assert.Equal(t, AvailabilityFree, got[1].Availability)
}

func TestAvailabilityFor(t *testing.T) {
	tests := []struct {
		active int
		want   Availability
	}{
		{0, AvailabilityFree},
		{1, AvailabilityLight},
		{2, AvailabilityLight},
		{3, AvailabilityBalanced},
		{5, AvailabilityBalanced},
		{6, AvailabilityAtCapacity},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AvailabilityFor(tt.active), "active=%d", tt.active)
	}
}

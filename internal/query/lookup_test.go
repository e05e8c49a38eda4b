package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProject(t *testing.T) {
	projects := fixture().Projects

	for _, ref := range []string{"p2", "gemini", "GEM", " Gemini "} {
		p, err := FindProject(projects, ref)
		require.NoError(t, err, ref)
		assert.Equal(t, "p2", p.ID, ref)
	}

	_, err := FindProject(projects, "venus")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = FindProject(projects, "p")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = FindProject(projects, "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestFindTask(t *testing.T) {
	tasks := fixture().Tasks

	task, err := FindTask(tasks, "t4")
	require.NoError(t, err)
	assert.Equal(t, "Load test", task.Title)

	_, err = FindTask(tasks, "t")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = FindTask(tasks, "Load test")
	assert.ErrorIs(t, err, ErrNoMatch, "tasks resolve by id only")
}

func TestFindMember(t *testing.T) {
	team := fixture().Team

	m, err := FindMember(team, "jordan")
	require.NoError(t, err)
	assert.Equal(t, "u2", m.ID)

	m, err = FindMember(team, "bob lee")
	require.NoError(t, err)
	assert.Equal(t, "u4", m.ID)

	m, err = FindMember(team, "u3")
	require.NoError(t, err)
	assert.Equal(t, "Taylor Kim", m.Name)

	_, err = FindMember(team, "u")
	assert.ErrorIs(t, err, ErrAmbiguous)
}

package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

var (
	// ErrNoMatch means no entity matched the reference
	ErrNoMatch = errors.New("no match")
	// ErrAmbiguous means a prefix matched more than one entity
	ErrAmbiguous = errors.New("ambiguous reference")
)

// FindProject resolves ref as a project id, a unique id prefix, a name or a
// unique name prefix. Names are compared ignoring case.
func FindProject(projects []models.Project, ref string) (models.Project, error) {
	i, err := lookup(len(projects), ref, "project", func(i int) (string, string) {
		return projects[i].ID, projects[i].Name
	})
	if err != nil {
		return models.Project{}, err
	}
	return projects[i], nil
}

// FindTask resolves ref as a task id or a unique id prefix
func FindTask(tasks []models.Task, ref string) (models.Task, error) {
	i, err := lookup(len(tasks), ref, "task", func(i int) (string, string) {
		return tasks[i].ID, ""
	})
	if err != nil {
		return models.Task{}, err
	}
	return tasks[i], nil
}

// FindMember resolves ref as a member id, a name or a unique name prefix
// such as a first name
func FindMember(team []models.TeamMember, ref string) (models.TeamMember, error) {
	i, err := lookup(len(team), ref, "team member", func(i int) (string, string) {
		return team[i].ID, team[i].Name
	})
	if err != nil {
		return models.TeamMember{}, err
	}
	return team[i], nil
}

// lookup tries exact id, exact name, then unique id or name prefix
func lookup(n int, ref, kind string, key func(i int) (id, name string)) (int, error) {
	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)
	if ref == "" {
		return -1, fmt.Errorf("%w: empty %s reference", ErrNoMatch, kind)
	}

	for i := 0; i < n; i++ {
		id, name := key(i)
		if id == ref || (name != "" && strings.ToLower(name) == lower) {
			return i, nil
		}
	}

	found := -1
	for i := 0; i < n; i++ {
		id, name := key(i)
		if strings.HasPrefix(id, ref) || (name != "" && strings.HasPrefix(strings.ToLower(name), lower)) {
			if found >= 0 {
				return -1, fmt.Errorf("%w: %q matches more than one %s", ErrAmbiguous, ref, kind)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: no %s matches %q", ErrNoMatch, kind, ref)
	}
	return found, nil
}

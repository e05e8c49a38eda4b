package query

import (
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

// SearchResult lists every match. View is decided by the first kind with a
// match, checking projects, then tasks, then team; ProjectID is set when the
// view is tasks and names the project of the first matching task.
type SearchResult struct {
	View      string
	ProjectID string
	Projects  []models.Project
	Tasks     []models.Task
	Members   []models.TeamMember
}

// Found reports whether anything matched
func (r SearchResult) Found() bool {
	return r.View != ""
}

// Search does a case-insensitive substring match over project name and
// manager, task title and description, and member name and role. A blank
// query matches nothing.
func Search(s models.Snapshot, query string) SearchResult {
	var res SearchResult
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return res
	}
	match := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}

	for _, p := range s.Projects {
		if match(p.Name, p.Manager) {
			res.Projects = append(res.Projects, p)
		}
	}
	for _, t := range s.Tasks {
		if match(t.Title, t.Description) {
			res.Tasks = append(res.Tasks, t)
		}
	}
	for _, m := range s.Team {
		if match(m.Name, m.Role) {
			res.Members = append(res.Members, m)
		}
	}

	switch {
	case len(res.Projects) > 0:
		res.View = models.ViewProjects
	case len(res.Tasks) > 0:
		res.View = models.ViewTasks
		res.ProjectID = res.Tasks[0].ProjectID
	case len(res.Members) > 0:
		res.View = models.ViewTeam
	}
	return res
}

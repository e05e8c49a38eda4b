package query

import (
	"slices"
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

// ProjectSort orders the project table
type ProjectSort string

const (
	SortNone         ProjectSort = ""
	SortDeadlineAsc  ProjectSort = "deadline_asc"
	SortDeadlineDesc ProjectSort = "deadline_desc"
	SortProgressAsc  ProjectSort = "progress_asc"
	SortProgressDesc ProjectSort = "progress_desc"
)

// ProjectSorts lists the supported sort orders
var ProjectSorts = []ProjectSort{SortDeadlineAsc, SortDeadlineDesc, SortProgressAsc, SortProgressDesc}

// Valid reports whether s is empty or a known sort order
func (s ProjectSort) Valid() bool {
	return s == SortNone || slices.Contains(ProjectSorts, s)
}

// ProjectFilter narrows and orders the project table. Empty fields match all.
type ProjectFilter struct {
	Status   models.ProjectStatus
	Priority models.Priority
	Sort     ProjectSort
}

// ProjectTable filters projects and sorts the result. The sort is stable so
// projects with equal keys keep their original order. An unset deadline
// sorts before any date when ascending.
func ProjectTable(projects []models.Project, f ProjectFilter) []models.Project {
	rows := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Priority != "" && p.Priority != f.Priority {
			continue
		}
		rows = append(rows, p)
	}

	var cmp func(a, b models.Project) int
	switch f.Sort {
	case SortDeadlineAsc:
		cmp = func(a, b models.Project) int { return strings.Compare(string(a.Deadline), string(b.Deadline)) }
	case SortDeadlineDesc:
		cmp = func(a, b models.Project) int { return strings.Compare(string(b.Deadline), string(a.Deadline)) }
	case SortProgressAsc:
		cmp = func(a, b models.Project) int { return a.Progress - b.Progress }
	case SortProgressDesc:
		cmp = func(a, b models.Project) int { return b.Progress - a.Progress }
	default:
		return rows
	}
	slices.SortStableFunc(rows, cmp)
	return rows
}

// Package query computes read-only views of a snapshot: tables, board
// columns, deadlines, workload, search, KPIs, charts and CSV exports.
// Nothing here changes the snapshot it is given.
package query

import "github.com/balkashynov/pmboard/internal/models"

// memberNames indexes team member names by id
func memberNames(s models.Snapshot) map[string]string {
	names := make(map[string]string, len(s.Team))
	for _, m := range s.Team {
		names[m.ID] = m.Name
	}
	return names
}

// projectNames indexes project names by id
func projectNames(s models.Snapshot) map[string]string {
	names := make(map[string]string, len(s.Projects))
	for _, p := range s.Projects {
		names[p.ID] = p.Name
	}
	return names
}

// roundedPercent returns round(100*part/whole) with halves rounded up.
// whole must be positive.
func roundedPercent(part, whole int) int {
	return (200*part + whole) / (2 * whole)
}

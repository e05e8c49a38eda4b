package query

import "github.com/balkashynov/pmboard/internal/models"

// Availability tier derived from a member's active task count
type Availability string

const (
	AvailabilityFree       Availability = "Free"
	AvailabilityLight      Availability = "Light"
	AvailabilityBalanced   Availability = "Balanced"
	AvailabilityAtCapacity Availability = "At capacity"
)

// AvailabilityFor maps an active task count to a tier
func AvailabilityFor(active int) Availability {
	switch {
	case active == 0:
		return AvailabilityFree
	case active <= 2:
		return AvailabilityLight
	case active <= 5:
		return AvailabilityBalanced
	default:
		return AvailabilityAtCapacity
	}
}

// Workload summarizes one member's assigned tasks
type Workload struct {
	Member       models.TeamMember
	Assigned     int
	Completed    int
	Active       int
	Availability Availability
}

// TeamWorkload returns one entry per team member in team order
func TeamWorkload(s models.Snapshot) []Workload {
	out := make([]Workload, len(s.Team))
	index := make(map[string]int, len(s.Team))
	for i, m := range s.Team {
		out[i].Member = m
		index[m.ID] = i
	}

	for _, t := range s.Tasks {
		i, ok := index[t.AssigneeID]
		if t.AssigneeID == "" || !ok {
			continue
		}
		out[i].Assigned++
		if t.IsCompleted() {
			out[i].Completed++
		} else {
			out[i].Active++
		}
	}

	for i := range out {
		out[i].Availability = AvailabilityFor(out[i].Active)
	}
	return out
}

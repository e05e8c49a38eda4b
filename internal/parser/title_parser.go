package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/balkashynov/pmboard/internal/models"
)

var (
	assigneeRegex = regexp.MustCompile(`@([a-zA-Z0-9_.-]+)`)
	priorityRegex = regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	dueRegex      = regexp.MustCompile(`due:(\S+)`)
)

// ParsedTask represents a task parsed from a one-line description
type ParsedTask struct {
	Title    string
	Assignee string // raw @token, resolved against the team by the caller
	Priority models.Priority
	DueDate  models.Date
	Errors   []string
}

// ParseTitle extracts metadata from a task title using natural syntax
// Syntax: "Task title @assignee +priority due:3days"
func ParseTitle(input string, today time.Time) ParsedTask {
	result := ParsedTask{Errors: []string{}}

	// Extract assignee (@alex)
	if m := assigneeRegex.FindStringSubmatch(input); len(m) > 1 {
		result.Assignee = m[1]
		input = assigneeRegex.ReplaceAllString(input, "")
	}

	// Extract priority (+high, +3, ...)
	if m := priorityRegex.FindStringSubmatch(input); len(m) > 1 {
		if p, ok := NormalizePriority(m[1]); ok {
			result.Priority = p
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+m[1]+"'. Use: low, medium, high, critical or 1-4")
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Extract due date (due:3days, due:2026-12-15, ...)
	if m := dueRegex.FindStringSubmatch(input); len(m) > 1 {
		due, err := ParseDueDate(m[1], today)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid due date '"+m[1]+"': "+err.Error())
		} else {
			result.DueDate = due
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	result.Title = strings.Join(strings.Fields(input), " ")
	return result
}

// NormalizePriority maps user input such as "med", "3" or "CRIT" to a
// priority. ok is false for anything unrecognized.
func NormalizePriority(input string) (p models.Priority, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "low":
		return models.PriorityLow, true
	case "2", "med", "medium":
		return models.PriorityMedium, true
	case "3", "high":
		return models.PriorityHigh, true
	case "4", "crit", "critical":
		return models.PriorityCritical, true
	default:
		return "", false
	}
}

package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/pmboard/internal/models"
)

var (
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	relativeRegex  = regexp.MustCompile(`^(\d+)\s*(d|day|days|w|week|weeks)$`)
)

// ParseDueDate parses a due date relative to today.
// Supported formats:
// - yyyy-mm-dd (e.g., "2026-12-15")
// - dd/mm/yyyy (e.g., "15/12/2026")
// - today, tomorrow
// - X days (e.g., "3 days", "3days", "3d")
// - X weeks (e.g., "2 weeks", "2w")
//
// An empty input returns the empty date.
func ParseDueDate(input string, today time.Time) (models.Date, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", nil
	}

	switch input {
	case "today":
		return models.NewDate(today), nil
	case "tomorrow":
		return models.NewDate(today.AddDate(0, 0, 1)), nil
	}

	if d := models.Date(input); len(input) == len(models.DateLayout) {
		if _, ok := d.Time(); ok {
			return d, nil
		}
	}

	if due, err := parseSlashDate(input); err == nil {
		return due, nil
	}

	if due, err := parseRelative(input, today); err == nil {
		return due, nil
	}

	return "", fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days or X weeks")
}

// parseSlashDate parses dd/mm/yyyy
func parseSlashDate(input string) (models.Date, error) {
	matches := slashDateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return "", fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return "", fmt.Errorf("month must be between 1 and 12")
	}

	due := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March
	if due.Day() != day || due.Month() != time.Month(month) {
		return "", fmt.Errorf("invalid date")
	}
	return models.NewDate(due), nil
}

// parseRelative parses "3 days", "2w" and friends
func parseRelative(input string, today time.Time) (models.Date, error) {
	matches := relativeRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "d", "day", "days":
		if amount > 365 {
			return "", fmt.Errorf("days must be between 0 and 365")
		}
		return models.NewDate(today.AddDate(0, 0, amount)), nil
	default:
		if amount > 52 {
			return "", fmt.Errorf("weeks must be between 0 and 52")
		}
		return models.NewDate(today.AddDate(0, 0, amount*7)), nil
	}
}

package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/balkashynov/pmboard/internal/models"
)

// shortID trims an id to something readable in a table; any unique prefix
// is accepted back as a reference
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// truncate shortens s to n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// orDash returns "-" for empty values
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// bar draws value out of maxValue as a row of blocks width wide
func bar(value, maxValue, width int) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	n := value * width / maxValue
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", min(n, width))
}

// dateArg formats a date for display
func dateArg(d models.Date) string {
	return orDash(string(d))
}

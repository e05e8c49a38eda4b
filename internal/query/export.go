package query

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

var (
	projectColumns = []string{"ID", "Name", "Manager", "Start Date", "Deadline", "Status", "Progress %", "Priority"}
	taskColumns    = []string{
		"ID", "Project ID", "Project Name", "Title", "Description",
		"Assignee ID", "Assignee Name", "Due Date", "Priority", "Status",
	}
)

// WriteProjectsCSV writes a header and one row per project
func WriteProjectsCSV(w io.Writer, s models.Snapshot) error {
	rows := make([][]string, 0, len(s.Projects))
	for _, p := range s.Projects {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Manager,
			string(p.StartDate),
			string(p.Deadline),
			string(p.Status),
			strconv.Itoa(p.Progress),
			string(p.Priority),
		})
	}
	return writeCSV(w, projectColumns, rows)
}

// WriteTasksCSV writes a header and one row per task, with project and
// assignee names resolved
func WriteTasksCSV(w io.Writer, s models.Snapshot) error {
	projects := projectNames(s)
	members := memberNames(s)

	rows := make([][]string, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		rows = append(rows, []string{
			t.ID,
			t.ProjectID,
			projects[t.ProjectID],
			t.Title,
			t.Description,
			t.AssigneeID,
			members[t.AssigneeID],
			string(t.DueDate),
			string(t.Priority),
			string(t.Status),
		})
	}
	return writeCSV(w, taskColumns, rows)
}

// writeCSV quotes every field, doubling embedded quotes, and ends each
// record with CRLF
func writeCSV(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for _, record := range append([][]string{header}, rows...) {
		for i, field := range record {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(field, `"`, `""`))
			bw.WriteByte('"')
		}
		bw.WriteString("\r\n")
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search projects, tasks and the team",
	Long: `Search project names and managers, task titles and descriptions, and
team member names and roles. The first kind with a match decides which
view opens next: projects, then tasks, then team.`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runSearch(cmd.OutOrStdout(), app, strings.Join(args, " "), asJSON)
	}),
}

// searchOutput is the --json shape
type searchOutput struct {
	Query     string              `json:"query"`
	View      string              `json:"view"`
	ProjectID string              `json:"projectId,omitempty"`
	Projects  []models.Project    `json:"projects"`
	Tasks     []models.Task       `json:"tasks"`
	Members   []models.TeamMember `json:"members"`
}

func runSearch(w io.Writer, app *App, q string, asJSON bool) error {
	res := query.Search(app.Service.Snapshot(), q)

	if res.Found() {
		if _, err := app.Service.SetLastView(res.View); err != nil {
			return err
		}
		if res.ProjectID != "" {
			if err := app.Service.SetLastOpenedProject(res.ProjectID); err != nil {
				return err
			}
		}
	}

	if asJSON {
		out := searchOutput{
			Query:     q,
			View:      res.View,
			ProjectID: res.ProjectID,
			Projects:  nonNil(res.Projects),
			Tasks:     nonNil(res.Tasks),
			Members:   nonNil(res.Members),
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !res.Found() {
		fmt.Fprintf(w, "🔍 No matches for %q\n", q)
		return nil
	}

	fmt.Fprintf(w, "🔍 Matches for %q (opening %s)\n", q, res.View)
	if len(res.Projects) > 0 {
		fmt.Fprintf(w, "\nProjects (%d)\n", len(res.Projects))
		for _, p := range res.Projects {
			fmt.Fprintf(w, "  %-12s %s  [%s, %d%%]\n", shortID(p.ID), p.Name, p.Status.Label(), p.Progress)
		}
	}
	if len(res.Tasks) > 0 {
		fmt.Fprintf(w, "\nTasks (%d)\n", len(res.Tasks))
		for _, t := range res.Tasks {
			fmt.Fprintf(w, "  %-12s %s  [%s]\n", shortID(t.ID), t.Title, t.Status.Label())
		}
	}
	if len(res.Members) > 0 {
		fmt.Fprintf(w, "\nTeam (%d)\n", len(res.Members))
		for _, m := range res.Members {
			fmt.Fprintf(w, "  %-12s %s, %s\n", shortID(m.ID), m.Name, m.Role)
		}
	}
	return nil
}

// nonNil keeps empty result lists as [] in JSON
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func init() {
	searchCmd.Flags().Bool("json", false, "Print results as JSON")
}

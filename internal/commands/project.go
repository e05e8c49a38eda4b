package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/parser"
	"github.com/balkashynov/pmboard/internal/query"
	"github.com/balkashynov/pmboard/internal/service"
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"projects", "p"},
	Short:   "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Long: `Create a project. Start date defaults to today, status to planning and
priority to medium. Dates accept yyyy-mm-dd, dd/mm/yyyy, "3 weeks" and the like.

Example:
  pmboard project add "Website relaunch" -m "Alex Morgan" --deadline 2026-06-30 --priority high`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		req := service.CreateProjectRequest{Name: strings.Join(args, " ")}
		req.Manager, _ = cmd.Flags().GetString("manager")

		var err error
		if raw, _ := cmd.Flags().GetString("start"); raw != "" {
			if req.StartDate, err = parser.ParseDueDate(raw, app.Now()); err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
		}
		if raw, _ := cmd.Flags().GetString("deadline"); raw != "" {
			if req.Deadline, err = parser.ParseDueDate(raw, app.Now()); err != nil {
				return fmt.Errorf("invalid deadline: %w", err)
			}
		}
		if raw, _ := cmd.Flags().GetString("status"); raw != "" {
			req.Status = projectStatusArg(raw)
		}
		if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
			req.Priority = priorityArg(raw)
		}
		return runProjectAdd(cmd.OutOrStdout(), app, req)
	}),
}

var projectEditCmd = &cobra.Command{
	Use:   "edit <project>",
	Short: "Change a project's fields",
	Long: `Change a project's fields. Only the flags you pass are changed.
A project can be referenced by id, id prefix, name or name prefix.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		var req service.UpdateProjectRequest
		flags := cmd.Flags()

		if flags.Changed("name") {
			v, _ := flags.GetString("name")
			req.Name = &v
		}
		if flags.Changed("manager") {
			v, _ := flags.GetString("manager")
			req.Manager = &v
		}
		for _, name := range []string{"start", "deadline"} {
			if !flags.Changed(name) {
				continue
			}
			raw, _ := flags.GetString(name)
			d, err := parser.ParseDueDate(raw, app.Now())
			if err != nil {
				return fmt.Errorf("invalid %s: %w", name, err)
			}
			if name == "start" {
				req.StartDate = &d
			} else {
				req.Deadline = &d
			}
		}
		if flags.Changed("status") {
			raw, _ := flags.GetString("status")
			v := projectStatusArg(raw)
			req.Status = &v
		}
		if flags.Changed("priority") {
			raw, _ := flags.GetString("priority")
			v := priorityArg(raw)
			req.Priority = &v
		}
		if flags.Changed("archive") {
			v, _ := flags.GetBool("archive")
			req.Archived = &v
		}
		return runProjectEdit(cmd.OutOrStdout(), app, args[0], req)
	}),
}

var projectRmCmd = &cobra.Command{
	Use:     "rm <project>",
	Aliases: []string{"delete"},
	Short:   "Delete a project and all of its tasks",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runProjectRm(cmd.OutOrStdout(), app, args[0])
	}),
}

var projectLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects",
	Long: `List projects with optional filters.

Sort orders: deadline_asc, deadline_desc, progress_asc, progress_desc`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		var f query.ProjectFilter
		if raw, _ := cmd.Flags().GetString("status"); raw != "" {
			f.Status = projectStatusArg(raw)
		}
		if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
			f.Priority = priorityArg(raw)
		}
		sort, _ := cmd.Flags().GetString("sort")
		f.Sort = query.ProjectSort(sort)
		return runProjectLs(cmd.OutOrStdout(), app, f)
	}),
}

// projectStatusArg accepts loose spellings; unknown values pass through so
// the service reports them
func projectStatusArg(raw string) models.ProjectStatus {
	if s, ok := parser.NormalizeProjectStatus(raw); ok {
		return s
	}
	return models.ProjectStatus(raw)
}

// priorityArg accepts loose spellings; unknown values pass through so the
// service reports them
func priorityArg(raw string) models.Priority {
	if p, ok := parser.NormalizePriority(raw); ok {
		return p
	}
	return models.Priority(raw)
}

func runProjectAdd(w io.Writer, app *App, req service.CreateProjectRequest) error {
	project, err := app.Service.CreateProject(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Created project %s: %s\n", shortID(project.ID), project.Name)
	if project.Manager != "" {
		fmt.Fprintf(w, "  Manager: %s\n", project.Manager)
	}
	fmt.Fprintf(w, "  Status: %s  Priority: %s\n", project.Status.Label(), project.Priority.Label())
	fmt.Fprintf(w, "  Start: %s  Deadline: %s\n", dateArg(project.StartDate), dateArg(project.Deadline))
	return nil
}

func runProjectEdit(w io.Writer, app *App, ref string, req service.UpdateProjectRequest) error {
	found, err := query.FindProject(app.Service.Snapshot().Projects, ref)
	if err != nil {
		return err
	}

	project, err := app.Service.UpdateProject(found.ID, req)
	if err != nil {
		return err
	}
	if project == nil {
		return fmt.Errorf("project %s no longer exists", shortID(found.ID))
	}

	fmt.Fprintf(w, "Updated project %s: %s\n", shortID(project.ID), project.Name)
	return nil
}

func runProjectRm(w io.Writer, app *App, ref string) error {
	snap := app.Service.Snapshot()
	found, err := query.FindProject(snap.Projects, ref)
	if err != nil {
		return err
	}
	taskCount := len(snap.TasksForProject(found.ID))

	removed, err := app.Service.DeleteProject(found.ID)
	if err != nil {
		return err
	}
	if removed == nil {
		return fmt.Errorf("project %s no longer exists", shortID(found.ID))
	}

	fmt.Fprintf(w, "🗑️  Deleted project %s: %s (%d tasks removed)\n", shortID(removed.ID), removed.Name, taskCount)
	return nil
}

func runProjectLs(w io.Writer, app *App, f query.ProjectFilter) error {
	if !f.Sort.Valid() {
		return fmt.Errorf("unknown sort %q", f.Sort)
	}
	if _, err := app.Service.SetLastView(models.ViewProjects); err != nil {
		return err
	}

	snap := app.Service.Snapshot()
	if len(snap.Projects) == 0 {
		fmt.Fprintln(w, "No projects yet. Use 'pmboard project add \"name\"' to create one.")
		return nil
	}

	rows := query.ProjectTable(snap.Projects, f)
	if len(rows) == 0 {
		fmt.Fprintln(w, "No projects match the filters.")
		return nil
	}

	fmt.Fprintf(w, "%-12s %-28s %-18s %-11s %-11s %-12s %-5s %s\n",
		"ID", "NAME", "MANAGER", "START", "DEADLINE", "STATUS", "PROG", "PRIORITY")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, p := range rows {
		fmt.Fprintf(w, "%-12s %-28s %-18s %-11s %-11s %-12s %4d%% %s\n",
			shortID(p.ID),
			truncate(p.Name, 28),
			truncate(orDash(p.Manager), 18),
			dateArg(p.StartDate),
			dateArg(p.Deadline),
			p.Status.Label(),
			p.Progress,
			p.Priority.Label())
	}
	return nil
}

func init() {
	projectCmd.AddCommand(projectAddCmd, projectEditCmd, projectRmCmd, projectLsCmd)

	projectAddCmd.Flags().StringP("manager", "m", "", "Project manager")
	projectAddCmd.Flags().String("start", "", "Start date (default today)")
	projectAddCmd.Flags().StringP("deadline", "d", "", "Deadline")
	projectAddCmd.Flags().StringP("status", "s", "", "Status: planning, in_progress, completed, on_hold")
	projectAddCmd.Flags().String("priority", "", "Priority: low, medium, high, critical or 1-4")

	projectEditCmd.Flags().String("name", "", "New name")
	projectEditCmd.Flags().StringP("manager", "m", "", "Project manager")
	projectEditCmd.Flags().String("start", "", "Start date")
	projectEditCmd.Flags().StringP("deadline", "d", "", "Deadline")
	projectEditCmd.Flags().StringP("status", "s", "", "Status: planning, in_progress, completed, on_hold")
	projectEditCmd.Flags().String("priority", "", "Priority: low, medium, high, critical or 1-4")
	projectEditCmd.Flags().Bool("archive", false, "Archive (or --archive=false to restore)")

	projectLsCmd.Flags().StringP("status", "s", "", "Filter by status")
	projectLsCmd.Flags().String("priority", "", "Filter by priority")
	projectLsCmd.Flags().String("sort", "", "Sort: deadline_asc, deadline_desc, progress_asc, progress_desc")
}

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/kanban"
	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/parser"
	"github.com/balkashynov/pmboard/internal/query"
	"github.com/balkashynov/pmboard/internal/service"
	"github.com/balkashynov/pmboard/internal/tui"
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "t"},
	Short:   "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task to a project",
	Long: `Add a task to a project. Without --project the task goes to the project
opened last.

Modes:
  Interactive: pmboard task add -i (or just 'pmboard task add' with no arguments)
  Quick: pmboard task add "Task title" (with optional flags)
  Smart parsing: pmboard task add "Fix login @jordan +high due:3days"

Smart parsing syntax:
  @member     - Assignee (name, first name or id)
  +priority   - Priority (low/medium/high/critical or 1-4)
  due:3days   - Due date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, X weeks)`,
	Args: cobra.ArbitraryArgs,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) == 0 {
			interactive = true
		}

		var f taskFlags
		f.Project, _ = cmd.Flags().GetString("project")
		f.Assignee, _ = cmd.Flags().GetString("assignee")
		f.Priority, _ = cmd.Flags().GetString("priority")
		f.Due, _ = cmd.Flags().GetString("due")
		f.Status, _ = cmd.Flags().GetString("status")
		f.Description, _ = cmd.Flags().GetString("description")

		w := cmd.OutOrStdout()
		draft, err := draftTask(app, strings.Join(args, " "), f)
		if err != nil {
			return err
		}
		if len(draft.issues) > 0 && !interactive {
			fmt.Fprintf(w, "⚠️  Found issues with parsing: %s\n", strings.Join(draft.issues, ", "))
			fmt.Fprintln(w, "Opening interactive mode for confirmation...")
			interactive = true
		}
		if interactive {
			return runTaskAddForm(w, app, draft)
		}
		return runTaskAdd(w, app, draft.req)
	}),
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <task>",
	Short: "Edit a task",
	Long: `Edit a task. Without flags the task opens in the interactive form.
A task can be referenced by its id or a unique id prefix.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		changed := flags.Changed("unassign")

		var f taskEditFlags
		for name, dst := range map[string]**string{
			"title":       &f.Title,
			"description": &f.Description,
			"project":     &f.Project,
			"assignee":    &f.Assignee,
			"due":         &f.Due,
			"priority":    &f.Priority,
			"status":      &f.Status,
		} {
			if flags.Changed(name) {
				v, _ := flags.GetString(name)
				*dst = &v
				changed = true
			}
		}
		if !changed {
			return runTaskEditForm(cmd.OutOrStdout(), app, args[0])
		}
		f.Unassign, _ = flags.GetBool("unassign")
		return runTaskEdit(cmd.OutOrStdout(), app, args[0], f)
	}),
}

var taskRmCmd = &cobra.Command{
	Use:     "rm <task>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runTaskRm(cmd.OutOrStdout(), app, args[0])
	}),
}

var taskLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		var f taskListFilter
		f.Project, _ = cmd.Flags().GetString("project")
		f.Status, _ = cmd.Flags().GetString("status")
		f.Assignee, _ = cmd.Flags().GetString("assignee")
		return runTaskLs(cmd.OutOrStdout(), app, f)
	}),
}

var taskMoveCmd = &cobra.Command{
	Use:   "move <task> <status>",
	Short: "Move a task to another Kanban column",
	Long: `Move a task to another Kanban column.

Columns: todo, in_progress, review, completed (wip, doing, done and the like work too)`,
	Args: cobra.ExactArgs(2),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runTaskMove(cmd.OutOrStdout(), app, args[0], args[1])
	}),
}

// taskFlags are the raw add flags; they win over smart-parsed values
type taskFlags struct {
	Project     string
	Assignee    string
	Priority    string
	Due         string
	Status      string
	Description string
}

// taskDraft is a task about to be created. Issues are problems the
// interactive form can fix; prefilled seeds that form.
type taskDraft struct {
	project   models.Project
	req       service.CreateTaskRequest
	prefilled map[string]string
	issues    []string
}

// draftTask merges the smart-parsed title with the flags
func draftTask(app *App, title string, f taskFlags) (*taskDraft, error) {
	snap := app.Service.Snapshot()
	project, err := currentProject(snap, f.Project)
	if err != nil {
		return nil, err
	}

	parsed := parser.ParseTitle(title, app.Now())
	d := &taskDraft{
		project:   project,
		prefilled: map[string]string{},
		issues:    parsed.Errors,
		req: service.CreateTaskRequest{
			ProjectID:   project.ID,
			Title:       parsed.Title,
			Description: strings.TrimSpace(f.Description),
			Priority:    parsed.Priority,
			DueDate:     parsed.DueDate,
		},
	}

	if f.Status != "" {
		status, ok := parser.NormalizeTaskStatus(f.Status)
		if !ok {
			return nil, fmt.Errorf("%w %q", service.ErrInvalidStatus, f.Status)
		}
		d.req.Status = status
	}

	assignee := parsed.Assignee
	if f.Assignee != "" {
		assignee = f.Assignee
	}
	if assignee != "" {
		d.prefilled["assignee"] = assignee
		if member, err := query.FindMember(snap.Team, assignee); err != nil {
			d.issues = append(d.issues, fmt.Sprintf("Unknown assignee '%s'", assignee))
		} else {
			d.req.AssigneeID = member.ID
			d.prefilled["assignee"] = member.Name
		}
	}

	if f.Priority != "" {
		d.prefilled["priority"] = f.Priority
		if p, ok := parser.NormalizePriority(f.Priority); ok {
			d.req.Priority = p
		} else {
			d.issues = append(d.issues, fmt.Sprintf("Invalid priority '%s'", f.Priority))
		}
	} else if d.req.Priority != "" {
		d.prefilled["priority"] = string(d.req.Priority)
	}

	if f.Due != "" {
		d.prefilled["due_date"] = f.Due
		if due, err := parser.ParseDueDate(f.Due, app.Now()); err != nil {
			d.issues = append(d.issues, fmt.Sprintf("Invalid due date '%s': %v", f.Due, err))
		} else {
			d.req.DueDate = due
		}
	} else if !d.req.DueDate.IsZero() {
		d.prefilled["due_date"] = string(d.req.DueDate)
	}

	if d.req.Title != "" {
		d.prefilled["title"] = d.req.Title
	} else if title != "" {
		d.issues = append(d.issues, "Title is required")
	}
	if d.req.Description != "" {
		d.prefilled["description"] = d.req.Description
	}
	return d, nil
}

// currentProject resolves ref, falling back to the project opened last and
// then to the first project
func currentProject(snap models.Snapshot, ref string) (models.Project, error) {
	if ref != "" {
		return query.FindProject(snap.Projects, ref)
	}
	if i := snap.FindProject(snap.DashboardState.LastOpenedProjectID); i >= 0 {
		return snap.Projects[i], nil
	}
	if len(snap.Projects) > 0 {
		return snap.Projects[0], nil
	}
	return models.Project{}, errors.New("no projects yet, create one with 'pmboard project add'")
}

func runTaskAdd(w io.Writer, app *App, req service.CreateTaskRequest) error {
	task, err := app.Service.CreateTask(req)
	if err != nil {
		return err
	}
	if err := app.Service.SetLastOpenedProject(task.ProjectID); err != nil {
		return err
	}

	snap := app.Service.Snapshot()
	fmt.Fprintf(w, "Created task %s: %s\n", shortID(task.ID), task.Title)
	if p := app.Service.Project(task.ProjectID); p != nil {
		fmt.Fprintf(w, "  Project: %s (%d%% complete)\n", p.Name, p.Progress)
	}
	if task.AssigneeID != "" {
		if i := snap.FindMember(task.AssigneeID); i >= 0 {
			fmt.Fprintf(w, "  Assignee: %s\n", snap.Team[i].Name)
		}
	}
	fmt.Fprintf(w, "  Priority: %s  Status: %s\n", task.Priority.Label(), task.Status.Label())
	if !task.DueDate.IsZero() {
		fmt.Fprintf(w, "  Due: %s (%s)\n", task.DueDate, query.DueLabel(task.DueDate, app.Today()))
	}
	return nil
}

func runTaskAddForm(w io.Writer, app *App, d *taskDraft) error {
	snap := app.Service.Snapshot()
	err := tui.RunTaskFormTUI(w, tui.TaskFormConfig{
		ProjectName: d.project.Name,
		Team:        snap.Team,
		Today:       app.Now(),
		Theme:       snap.Preferences.Theme,
		Prefilled:   d.prefilled,
		Submit: func(v tui.TaskFormValues) (string, error) {
			task, err := app.Service.CreateTask(service.CreateTaskRequest{
				ProjectID:   d.project.ID,
				Title:       v.Title,
				Description: v.Description,
				AssigneeID:  v.AssigneeID,
				DueDate:     v.DueDate,
				Priority:    v.Priority,
				Status:      d.req.Status,
			})
			if err != nil {
				return "", err
			}
			return task.Title, nil
		},
	})
	if err != nil {
		return err
	}
	return app.Service.SetLastOpenedProject(d.project.ID)
}

// taskEditFlags are the edit flags that were given; nil means unchanged
type taskEditFlags struct {
	Title       *string
	Description *string
	Project     *string
	Assignee    *string
	Due         *string
	Priority    *string
	Status      *string
	Unassign    bool
}

func runTaskEdit(w io.Writer, app *App, ref string, f taskEditFlags) error {
	snap := app.Service.Snapshot()
	task, err := query.FindTask(snap.Tasks, ref)
	if err != nil {
		return err
	}

	req := service.UpdateTaskRequest{Title: f.Title, Description: f.Description}
	if f.Project != nil {
		project, err := query.FindProject(snap.Projects, *f.Project)
		if err != nil {
			return err
		}
		req.ProjectID = &project.ID
	}
	switch {
	case f.Unassign:
		req.AssigneeID = new(string)
	case f.Assignee != nil:
		member, err := query.FindMember(snap.Team, *f.Assignee)
		if err != nil {
			return err
		}
		req.AssigneeID = &member.ID
	}
	if f.Due != nil {
		var due models.Date
		if *f.Due != "" && *f.Due != "none" {
			if due, err = parser.ParseDueDate(*f.Due, app.Now()); err != nil {
				return fmt.Errorf("invalid due date: %w", err)
			}
		}
		req.DueDate = &due
	}
	if f.Priority != nil {
		p := priorityArg(*f.Priority)
		req.Priority = &p
	}
	if f.Status != nil {
		status, ok := parser.NormalizeTaskStatus(*f.Status)
		if !ok {
			return fmt.Errorf("%w %q", service.ErrInvalidStatus, *f.Status)
		}
		req.Status = &status
	}

	updated, err := app.Service.UpdateTask(task.ID, req)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("task %s no longer exists", shortID(task.ID))
	}

	fmt.Fprintf(w, "Updated task %s: %s\n", shortID(updated.ID), updated.Title)
	return nil
}

func runTaskEditForm(w io.Writer, app *App, ref string) error {
	snap := app.Service.Snapshot()
	task, err := query.FindTask(snap.Tasks, ref)
	if err != nil {
		return err
	}

	prefilled := map[string]string{
		"title":       task.Title,
		"priority":    string(task.Priority),
		"due_date":    string(task.DueDate),
		"description": task.Description,
	}
	if i := snap.FindMember(task.AssigneeID); i >= 0 {
		prefilled["assignee"] = snap.Team[i].Name
	}

	var projectName string
	if i := snap.FindProject(task.ProjectID); i >= 0 {
		projectName = snap.Projects[i].Name
	}

	return tui.RunTaskFormTUI(w, tui.TaskFormConfig{
		ProjectName: projectName,
		Team:        snap.Team,
		Today:       app.Now(),
		Theme:       snap.Preferences.Theme,
		Prefilled:   prefilled,
		EditID:      task.ID,
		Submit: func(v tui.TaskFormValues) (string, error) {
			updated, err := app.Service.UpdateTask(task.ID, service.UpdateTaskRequest{
				Title:       &v.Title,
				Description: &v.Description,
				AssigneeID:  &v.AssigneeID,
				DueDate:     &v.DueDate,
				Priority:    &v.Priority,
			})
			if err != nil {
				return "", err
			}
			if updated == nil {
				return "", fmt.Errorf("task %s no longer exists", shortID(task.ID))
			}
			return updated.Title, nil
		},
	})
}

func runTaskRm(w io.Writer, app *App, ref string) error {
	task, err := query.FindTask(app.Service.Snapshot().Tasks, ref)
	if err != nil {
		return err
	}

	removed, err := app.Service.DeleteTask(task.ID)
	if err != nil {
		return err
	}
	if removed == nil {
		return fmt.Errorf("task %s no longer exists", shortID(task.ID))
	}

	fmt.Fprintf(w, "🗑️  Deleted task %s: %s\n", shortID(removed.ID), removed.Title)
	return nil
}

// taskListFilter holds raw references; empty fields match everything
type taskListFilter struct {
	Project  string
	Status   string
	Assignee string
}

func runTaskLs(w io.Writer, app *App, f taskListFilter) error {
	snap := app.Service.Snapshot()

	var projectID, assigneeID string
	var status models.TaskStatus
	if f.Project != "" {
		project, err := query.FindProject(snap.Projects, f.Project)
		if err != nil {
			return err
		}
		projectID = project.ID
	}
	if f.Status != "" {
		s, ok := parser.NormalizeTaskStatus(f.Status)
		if !ok {
			return fmt.Errorf("%w %q", service.ErrInvalidStatus, f.Status)
		}
		status = s
	}
	if f.Assignee != "" {
		member, err := query.FindMember(snap.Team, f.Assignee)
		if err != nil {
			return err
		}
		assigneeID = member.ID
	}

	if _, err := app.Service.SetLastView(models.ViewTasks); err != nil {
		return err
	}
	if projectID != "" {
		if err := app.Service.SetLastOpenedProject(projectID); err != nil {
			return err
		}
	}

	var rows []models.Task
	for _, t := range snap.Tasks {
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		if assigneeID != "" && t.AssigneeID != assigneeID {
			continue
		}
		rows = append(rows, t)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return nil
	}

	projects := make(map[string]string, len(snap.Projects))
	for _, p := range snap.Projects {
		projects[p.ID] = p.Name
	}
	members := make(map[string]string, len(snap.Team))
	for _, m := range snap.Team {
		members[m.ID] = m.Name
	}

	today := app.Today()
	fmt.Fprintf(w, "%-12s %-32s %-18s %-16s %-12s %-9s %s\n",
		"ID", "TITLE", "PROJECT", "ASSIGNEE", "STATUS", "PRIORITY", "DUE")
	fmt.Fprintln(w, strings.Repeat("-", 116))
	for _, t := range rows {
		due := "-"
		if !t.DueDate.IsZero() {
			due = fmt.Sprintf("%s (%s)", t.DueDate, query.DueLabel(t.DueDate, today))
		}
		fmt.Fprintf(w, "%-12s %-32s %-18s %-16s %-12s %-9s %s\n",
			shortID(t.ID),
			truncate(t.Title, 32),
			truncate(projects[t.ProjectID], 18),
			truncate(orDash(members[t.AssigneeID]), 16),
			t.Status.Label(),
			t.Priority.Label(),
			due)
	}
	return nil
}

// runTaskMove drags the task onto the target column the way the board does
func runTaskMove(w io.Writer, app *App, ref, rawStatus string) error {
	status, ok := parser.NormalizeTaskStatus(rawStatus)
	if !ok {
		return fmt.Errorf("%w %q, use todo, in_progress, review or completed", service.ErrInvalidStatus, rawStatus)
	}

	task, err := query.FindTask(app.Service.Snapshot().Tasks, ref)
	if err != nil {
		return err
	}

	var m kanban.Machine
	m.DragStart(task.ID)
	moved, err := m.Drop(status, app.Service)
	m.DragEnd()
	if err != nil {
		return err
	}

	if !moved {
		fmt.Fprintf(w, "Task already in %s\n", status.Label())
		return nil
	}
	fmt.Fprintf(w, "Task moved to %s\n", status.Label())
	if p := app.Service.Project(task.ProjectID); p != nil {
		fmt.Fprintf(w, "  %s is now %d%% complete\n", p.Name, p.Progress)
	}
	return nil
}

func init() {
	taskCmd.AddCommand(taskAddCmd, taskEditCmd, taskRmCmd, taskLsCmd, taskMoveCmd)

	taskAddCmd.Flags().StringP("project", "p", "", "Project (default: the project opened last)")
	taskAddCmd.Flags().StringP("assignee", "a", "", "Assignee")
	taskAddCmd.Flags().String("priority", "", "Priority: low, medium, high, critical or 1-4")
	taskAddCmd.Flags().String("due", "", "Due date")
	taskAddCmd.Flags().StringP("status", "s", "", "Initial column (default todo)")
	taskAddCmd.Flags().StringP("description", "d", "", "Description")
	taskAddCmd.Flags().BoolP("interactive", "i", false, "Use the interactive form")

	taskEditCmd.Flags().String("title", "", "New title")
	taskEditCmd.Flags().StringP("description", "d", "", "Description")
	taskEditCmd.Flags().StringP("project", "p", "", "Move to another project")
	taskEditCmd.Flags().StringP("assignee", "a", "", "Assignee")
	taskEditCmd.Flags().Bool("unassign", false, "Remove the assignee")
	taskEditCmd.Flags().String("due", "", "Due date ('none' clears it)")
	taskEditCmd.Flags().String("priority", "", "Priority")
	taskEditCmd.Flags().StringP("status", "s", "", "Status")

	taskLsCmd.Flags().StringP("project", "p", "", "Filter by project")
	taskLsCmd.Flags().StringP("status", "s", "", "Filter by status")
	taskLsCmd.Flags().StringP("assignee", "a", "", "Filter by assignee")
}

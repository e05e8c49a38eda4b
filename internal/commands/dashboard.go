package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/query"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Show KPIs, charts, deadlines and recent activity",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runDashboard(cmd.OutOrStdout(), app)
	}),
}

var deadlinesCmd = &cobra.Command{
	Use:   "deadlines",
	Short: "List upcoming and overdue task deadlines",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runDeadlines(cmd.OutOrStdout(), app)
	}),
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the activity feed, newest first",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return runActivity(cmd.OutOrStdout(), app, limit)
	}),
}

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif"},
	Short:   "Show notifications, newest first",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return runNotifications(cmd.OutOrStdout(), app, limit)
	}),
}

const chartWidth = 30

func runDashboard(w io.Writer, app *App) error {
	prefs, err := app.Service.SetLastView(models.ViewDashboard)
	if err != nil {
		return err
	}

	snap := app.Service.Snapshot()
	today := app.Today()
	k := query.ComputeKPIs(snap, today)

	fmt.Fprintf(w, "📊 Dashboard (%s view, %s)\n\n", prefs.Role, today)
	fmt.Fprintf(w, "  Projects: %d total, %d active, %d completed\n", k.TotalProjects, k.ActiveProjects, k.CompletedProjects)
	fmt.Fprintf(w, "  Tasks: %s\n", statusCounts(snap.Tasks))
	fmt.Fprintf(w, "  Overdue tasks: %d\n", k.OverdueTasks)
	fmt.Fprintf(w, "  Team utilization: %d%% %s\n", k.Utilization, bar(k.Utilization, query.MaxUtilization, chartWidth))

	for _, series := range []query.Series{
		query.ProjectProgressSeries(snap),
		query.TaskCompletionSeries(snap),
		query.MemberTaskSeries(snap),
	} {
		writeSeries(w, series)
	}

	if prefs.ShowDeadlines {
		fmt.Fprintln(w, "\n⏰ Deadlines")
		writeDeadlines(w, query.Deadlines(snap, today))
	}
	if prefs.ShowActivity {
		fmt.Fprintln(w, "\n📝 Recent activity")
		writeEntries(w, query.ActivityFeed(snap, query.FeedSize), "No activity yet.")
	}
	return nil
}

func writeSeries(w io.Writer, s query.Series) {
	fmt.Fprintf(w, "\n%s\n", s.Title)
	if len(s.Values) == 0 {
		fmt.Fprintln(w, "  (no data)")
		return
	}

	maxValue, labelWidth := 0, 0
	for i, v := range s.Values {
		maxValue = max(maxValue, v)
		labelWidth = max(labelWidth, len([]rune(s.Labels[i])))
	}
	labelWidth = min(labelWidth, 20)

	for i, v := range s.Values {
		fmt.Fprintf(w, "  %-*s %4d %s\n", labelWidth, truncate(s.Labels[i], 20), v, bar(v, maxValue, chartWidth))
	}
}

func runDeadlines(w io.Writer, app *App) error {
	writeDeadlines(w, query.Deadlines(app.Service.Snapshot(), app.Today()))
	return nil
}

func writeDeadlines(w io.Writer, deadlines []query.Deadline) {
	if len(deadlines) == 0 {
		fmt.Fprintln(w, "  No open tasks with due dates.")
		return
	}
	for _, d := range deadlines {
		fmt.Fprintf(w, "  %-10s %-11s %-32s %s\n",
			d.Urgency,
			d.Task.DueDate,
			truncate(d.Task.Title, 32),
			d.ProjectName)
	}
}

func runActivity(w io.Writer, app *App, limit int) error {
	writeEntries(w, query.ActivityFeed(app.Service.Snapshot(), limit), "No activity yet.")
	return nil
}

func runNotifications(w io.Writer, app *App, limit int) error {
	writeEntries(w, query.Notifications(app.Service.Snapshot(), limit), "No notifications.")
	return nil
}

func writeEntries(w io.Writer, entries []models.ActivityEntry, empty string) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %s  %s\n", e.Timestamp.Local().Format(time.DateTime), e.Message)
	}
}

// statusCounts renders per-column task counts for the summary lines
func statusCounts(tasks []models.Task) string {
	counts := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for _, t := range tasks {
		counts[t.Status]++
	}
	parts := make([]string, 0, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		parts = append(parts, fmt.Sprintf("%s %d", s.Label(), counts[s]))
	}
	return strings.Join(parts, " · ")
}

func init() {
	activityCmd.Flags().IntP("limit", "n", query.FeedSize, "Number of entries")
	notificationsCmd.Flags().IntP("limit", "n", models.MaxNotifications, "Number of entries")
}

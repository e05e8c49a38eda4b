package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for pmboard",
	Long:  `Display detailed help for all pmboard commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp(cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pmboard %s (commit %s, built %s)\n", version, commit, date)
	},
}

func showCustomHelp(w io.Writer) {
	fmt.Fprint(w, `
 ┌─┐┌┬┐┌┐ ┌─┐┌─┐┬─┐┌┬┐
 ├─┘││││├┴┐│ │├─┤├┬┘ ││
 ┴  ┴ ┴└─┘└─┘┴ ┴┴└──┴┘

pmboard - Terminal Project Management Dashboard

COMMANDS:

  project add <name>      Create a project
    -m, --manager         Project manager
    --start               Start date (default today)
    -d, --deadline        Deadline
    -s, --status          planning|in_progress|completed|on_hold
    --priority            low|medium|high|critical or 1-4
  project edit <project>  Change only the fields you pass (--archive to archive)
  project rm <project>    Delete a project together with its tasks
  project ls              List projects
    --status, --priority  Filter
    --sort                deadline_asc|deadline_desc|progress_asc|progress_desc

  task add <title>        Add a task with smart parsing
    -p, --project         Project (default: the one opened last)
    -a, --assignee        Team member
    --priority            Priority
    --due                 Due date (yyyy-mm-dd, dd/mm/yyyy, tomorrow, 3 days)
    -s, --status          Initial column
    -d, --description     Description
    -i, --interactive     Use the interactive form

    Smart syntax:
      @member       Assign to a team member
      +priority     Set priority (low/medium/high/critical or 1-4)
      due:3days     Set due date

    Example:
      pmboard task add "Fix login bug @jordan +high due:2days" -p Website

  task edit <task>        Edit a task (no flags opens the form)
  task rm <task>          Delete a task
  task ls                 List tasks (--project, --status, --assignee)
  task move <task> <col>  Move a task to todo|in_progress|review|completed

  board [project]         Interactive Kanban board
    ←/→ ↑/↓         Navigate
    space/enter     Pick up, then drop on the current column
    esc             Cancel drag
    q               Quit

  team add <name>         Add a team member (-r, --role)
  team ls                 Team workload and availability

  dashboard               KPIs, charts, deadlines and recent activity
  deadlines               Open tasks by due date
  activity                Activity feed (-n, --limit)
  notifications           Notifications (-n, --limit)
  search <query>          Search projects, tasks and the team (--json)
  export projects|tasks   CSV export (-o, --out)

  prefs                   Show preferences
  prefs theme             Toggle light/dark
  prefs role              Toggle manager/member
  prefs view <name>       Remember a view
  prefs panel <p> on|off  Show or hide the activity or deadlines panel

  config init             Write ~/.pmboard/config.yaml (--force)
  config show             Print the effective configuration
  config path             Print the configuration file path

  version                 Print the version
  help                    Show this help

GLOBAL FLAGS:

  --config <file>         Use another configuration file
  --ephemeral             Keep everything in memory for this run

Projects accept an id, id prefix, name or name prefix. Tasks accept an id
or id prefix.

`)
}

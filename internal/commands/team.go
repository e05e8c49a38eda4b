package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/query"
	"github.com/balkashynov/pmboard/internal/service"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage the team",
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a team member",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		return runTeamAdd(cmd.OutOrStdout(), app, service.CreateMemberRequest{
			Name: strings.Join(args, " "),
			Role: role,
		})
	}),
}

var teamLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list", "workload"},
	Short:   "Show team members and their workload",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runTeamLs(cmd.OutOrStdout(), app)
	}),
}

func runTeamAdd(w io.Writer, app *App, req service.CreateMemberRequest) error {
	member, err := app.Service.AddTeamMember(req)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Added %s (%s) to the team as %s\n", member.Name, member.Role, shortID(member.ID))
	return nil
}

func runTeamLs(w io.Writer, app *App) error {
	if _, err := app.Service.SetLastView(models.ViewTeam); err != nil {
		return err
	}

	rows := query.TeamWorkload(app.Service.Snapshot())
	if len(rows) == 0 {
		fmt.Fprintln(w, "No team members yet.")
		return nil
	}

	fmt.Fprintf(w, "%-12s %-20s %-18s %8s %9s %6s  %s\n",
		"ID", "NAME", "ROLE", "ASSIGNED", "COMPLETED", "ACTIVE", "AVAILABILITY")
	fmt.Fprintln(w, strings.Repeat("-", 94))
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %-20s %-18s %8d %9d %6d  %s\n",
			shortID(r.Member.ID),
			truncate(r.Member.Name, 20),
			truncate(r.Member.Role, 18),
			r.Assigned,
			r.Completed,
			r.Active,
			r.Availability)
	}
	return nil
}

func init() {
	teamCmd.AddCommand(teamAddCmd, teamLsCmd)

	teamAddCmd.Flags().StringP("role", "r", "", "Role (default Member)")
}

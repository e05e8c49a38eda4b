package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/models"
)

var prefsCmd = &cobra.Command{
	Use:     "prefs",
	Aliases: []string{"preferences"},
	Short:   "Show or change display preferences",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runPrefsShow(cmd.OutOrStdout(), app)
	}),
}

var prefsThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Switch between the light and dark theme",
	Args:  cobra.NoArgs,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runPrefsTheme(cmd.OutOrStdout(), app)
	}),
}

var prefsRoleCmd = &cobra.Command{
	Use:   "role",
	Short: "Switch between the manager and member role",
	Args:  cobra.NoArgs,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runPrefsRole(cmd.OutOrStdout(), app)
	}),
}

var prefsViewCmd = &cobra.Command{
	Use:       "view <name>",
	Short:     "Set the view pmboard remembers as last opened",
	Long:      "Set the view pmboard remembers as last opened.\n\nViews: " + strings.Join(models.Views, ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: models.Views,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runPrefsView(cmd.OutOrStdout(), app, args[0])
	}),
}

var prefsPanelCmd = &cobra.Command{
	Use:   "panel <activity|deadlines> <on|off>",
	Short: "Show or hide a dashboard panel",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		return runPrefsPanel(cmd.OutOrStdout(), app, args[0], args[1])
	}),
}

func runPrefsShow(w io.Writer, app *App) error {
	snap := app.Service.Snapshot()
	p := snap.Preferences

	fmt.Fprintf(w, "Theme:          %s\n", p.Theme)
	fmt.Fprintf(w, "Role:           %s\n", p.Role)
	fmt.Fprintf(w, "Last view:      %s\n", p.LastView)
	fmt.Fprintf(w, "Activity panel: %s\n", onOff(p.ShowActivity))
	fmt.Fprintf(w, "Deadlines:      %s\n", onOff(p.ShowDeadlines))

	last := "-"
	if i := snap.FindProject(snap.DashboardState.LastOpenedProjectID); i >= 0 {
		last = snap.Projects[i].Name
	}
	fmt.Fprintf(w, "Last project:   %s\n", last)
	return nil
}

func runPrefsTheme(w io.Writer, app *App) error {
	p, err := app.Service.ToggleTheme()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Theme set to %s\n", p.Theme)
	return nil
}

func runPrefsRole(w io.Writer, app *App) error {
	p, err := app.Service.ToggleRole()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Role set to %s\n", p.Role)
	return nil
}

func runPrefsView(w io.Writer, app *App, view string) error {
	p, err := app.Service.SetLastView(strings.ToLower(view))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Last view set to %s\n", p.LastView)
	return nil
}

func runPrefsPanel(w io.Writer, app *App, panel, state string) error {
	var visible bool
	switch strings.ToLower(state) {
	case "on", "show", "true", "yes":
		visible = true
	case "off", "hide", "false", "no":
	default:
		return fmt.Errorf("expected on or off, got %q", state)
	}

	if _, err := app.Service.SetPanelVisibility(strings.ToLower(panel), visible); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s panel %s\n", panel, onOff(visible))
	return nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func init() {
	prefsCmd.AddCommand(prefsThemeCmd, prefsRoleCmd, prefsViewCmd, prefsPanelCmd)
}

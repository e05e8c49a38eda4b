package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board [project]",
	Short: "Open the interactive Kanban board",
	Long: `Open the interactive Kanban board for a project. Without an argument
the board opens on the project opened last.

Keys:
  ←/→ or h/l   change column
  ↑/↓ or j/k   change card
  1-4          jump to a column
  space/enter  pick up the selected card, then drop it on the current column
  esc          cancel a drag, or quit
  q            quit`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		var ref string
		if len(args) > 0 {
			ref = args[0]
		}
		projectID, err := openBoard(app, ref)
		if err != nil {
			return err
		}
		return tui.RunBoardTUI(app.Service, projectID, app.Today())
	}),
}

// openBoard resolves the project the board shows and remembers it
func openBoard(app *App, ref string) (string, error) {
	project, err := currentProject(app.Service.Snapshot(), ref)
	if err != nil {
		return "", err
	}
	if err := app.Service.SetLastOpenedProject(project.ID); err != nil {
		return "", err
	}
	return project.ID, nil
}

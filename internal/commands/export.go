package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/query"
)

var exportCmd = &cobra.Command{
	Use:       "export <projects|tasks>",
	Short:     "Export projects or tasks as CSV",
	Long:      `Export projects or tasks as CSV. Output goes to stdout unless --out is given.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"projects", "tasks"},
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return runExport(cmd.OutOrStdout(), app, args[0])
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		if err := runExport(f, app, args[0]); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", args[0], out)
		return nil
	}),
}

func runExport(w io.Writer, app *App, kind string) error {
	snap := app.Service.Snapshot()
	switch kind {
	case "projects", "project":
		return query.WriteProjectsCSV(w, snap)
	case "tasks", "task":
		return query.WriteTasksCSV(w, snap)
	default:
		return fmt.Errorf("unknown export %q, use projects or tasks", kind)
	}
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
}

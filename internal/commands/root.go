package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pmboard/internal/config"
	"github.com/balkashynov/pmboard/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	cfgFile   string
	ephemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "pmboard",
	Short: "A terminal project management dashboard",
	Long: `pmboard tracks projects, tasks and a small team from the terminal.
Plan projects, move tasks across a Kanban board, watch deadlines and
workload, and export everything to CSV.`,
}

// initApp loads the configuration and opens storage, exiting on failure
func initApp() *App {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if ephemeral {
		cfg.Storage.Driver = db.DriverMemory
	}

	app, err := NewApp(cfg, time.Now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return app
}

// withApp wraps a command function so it runs against a freshly opened app
func withApp(fn func(*App, *cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		app := initApp()
		defer app.Close()

		if err := fn(app, cmd, args); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		}
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.pmboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep everything in memory for this run")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(deadlinesCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}

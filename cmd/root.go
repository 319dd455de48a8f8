package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prabhanj08/pybasics/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pybasics",
	Short: "Terminal course on Python fundamentals",
	Long:  "PyBasics — an interactive terminal course that walks you through Python fundamentals, lesson by lesson, tracking your progress as you go.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PYBASICS_DB env var)")

	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PYBASICS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

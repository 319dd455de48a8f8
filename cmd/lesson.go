package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/content"
	"github.com/prabhanj08/pybasics/internal/progress"
	"github.com/prabhanj08/pybasics/internal/store"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Browse the course catalog",
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lessons (optionally filtered by unit, or only what is unlocked next)",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, _ := cmd.Flags().GetString("unit")
		nextOnly, _ := cmd.Flags().GetBool("next")

		cat, err := content.Load()
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		tracker, err := loadTracker(cmd)
		if err != nil {
			return err
		}

		var lessons []catalog.Lesson
		switch {
		case unit != "" && nextOnly:
			return fmt.Errorf("use --unit or --next, not both")
		case unit != "":
			lessons = cat.ByUnit(catalog.Unit(unit))
			if len(lessons) == 0 {
				return fmt.Errorf("no lessons found for unit %q", unit)
			}
		case nextOnly:
			lessons = tracker.NextAvailable(cat)
			if len(lessons) == 0 {
				fmt.Println("Course complete — nothing left to unlock.")
				return nil
			}
		default:
			lessons = cat.TopologicalOrder()
		}

		// Header.
		fmt.Printf("%-26s  %-38s  %-20s  %5s  %s\n",
			"ID", "Title", "Unit", "Mins", "State")
		fmt.Println(strings.Repeat("─", 105))

		for _, l := range lessons {
			title := truncate(l.Title, 38)
			state := tracker.State(cat, l.ID)
			fmt.Printf("%-26s  %-38s  %-20s  %5d  %s %s\n",
				l.ID, title, catalog.UnitDisplayName(l.Unit),
				l.EstimatedMins, state.Icon(), state.Label())
		}

		fmt.Printf("\n%d lessons\n", len(lessons))
		return nil
	},
}

var lessonShowCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Print a lesson's content to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := content.Load()
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		lesson, err := cat.Get(args[0])
		if err != nil {
			return err
		}

		body, err := content.Body(lesson.ID)
		if err != nil {
			return fmt.Errorf("load lesson body: %w", err)
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			fmt.Println(body)
			return nil
		}
		rendered, err := renderer.Render(body)
		if err != nil {
			fmt.Println(body)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

// truncate shortens s to at most n runes, ending in an ellipsis when
// cut, so multibyte titles are never split mid-rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// loadTracker restores the persisted completion set for read-only CLI
// queries.
func loadTracker(cmd *cobra.Command) (*progress.Tracker, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	completed, err := st.ProgressRepo().Completions(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	return progress.Restore(completed), nil
}

func init() {
	lessonListCmd.Flags().String("unit", "", "Filter by unit (e.g. data-structures)")
	lessonListCmd.Flags().Bool("next", false, "Show only unlocked, incomplete lessons")

	lessonCmd.AddCommand(lessonListCmd)
	lessonCmd.AddCommand(lessonShowCmd)
}

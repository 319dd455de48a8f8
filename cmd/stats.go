package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/content"
	"github.com/prabhanj08/pybasics/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cat, err := content.Load()
		if err != nil {
			return fmt.Errorf("load course: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		completions, err := st.ProgressRepo().Completions(ctx)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		counts, err := st.EventRepo().CountByAction(ctx)
		if err != nil {
			return fmt.Errorf("load event counts: %w", err)
		}

		fmt.Printf("Lessons completed:  %d / %d\n", len(completions), cat.Len())

		for _, unit := range catalog.AllUnits() {
			lessons := cat.ByUnit(unit)
			done := 0
			for _, l := range lessons {
				if _, ok := completions[l.ID]; ok {
					done++
				}
			}
			fmt.Printf("  %-20s %d / %d\n", catalog.UnitDisplayName(unit), done, len(lessons))
		}

		fmt.Println()
		fmt.Printf("Study sessions:     %d\n", counts[store.ActionSessionStarted])
		fmt.Printf("Lessons opened:     %d\n", counts[store.ActionLessonStarted])
		fmt.Printf("Progress resets:    %d\n", counts[store.ActionProgressReset])
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/prabhanj08/pybasics/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all lesson progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this erases all completed lessons; re-run with --yes to confirm")
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

		if err := st.ProgressRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		// Keep the event log; the reset itself is an event.
		err = st.EventRepo().AppendLessonEvent(ctx, store.LessonEventData{
			SessionID: uuid.NewString(),
			Action:    store.ActionProgressReset,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record reset event: %v\n", err)
		}

		fmt.Println("All lesson progress erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm erasing all progress")
}

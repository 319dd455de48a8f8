package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prabhanj08/pybasics/internal/content"
	"github.com/prabhanj08/pybasics/internal/progress"
	"github.com/prabhanj08/pybasics/internal/session"
	"github.com/prabhanj08/pybasics/internal/store"
)

var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id := args[0]

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

		sess, err := session.New(ctx, cat, st.ProgressRepo(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}

		already := sess.Tracker().IsCompleted(id)
		if err := sess.CompleteLesson(ctx, id); err != nil {
			var prereqErr *progress.PrerequisiteError
			if errors.As(err, &prereqErr) {
				return fmt.Errorf("%q has unmet prerequisites — finish these first: %s",
					id, strings.Join(prereqErr.Missing, ", "))
			}
			return err
		}

		lesson, _ := cat.Get(id)
		if already {
			fmt.Printf("%q was already completed.\n", lesson.Title)
			return nil
		}

		fmt.Printf("Completed %q ✅\n", lesson.Title)
		if next := sess.Tracker().NextAvailable(cat); len(next) > 0 {
			fmt.Printf("Up next: %s (%s)\n", next[0].Title, next[0].ID)
		} else {
			fmt.Println("Course complete — well done! 🎉")
		}
		return nil
	},
}

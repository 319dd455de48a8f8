package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prabhanj08/pybasics/internal/app"
	"github.com/prabhanj08/pybasics/internal/content"
	"github.com/prabhanj08/pybasics/internal/session"
	"github.com/prabhanj08/pybasics/internal/store"
)

// runApp opens the store, restores the learner's session, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
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

	sess, err := session.New(ctx, cat, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	return app.Run(sess)
}

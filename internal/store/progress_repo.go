package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// progressRepo implements ProgressRepo over the completions table.
type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) SaveCompletion(ctx context.Context, lessonID string, at time.Time) error {
	// OR IGNORE keeps the first completion time when called twice.
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO completions (lesson_id, completed_at) VALUES (?, ?)`,
		lessonID, at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save completion %q: %w", lessonID, err)
	}
	return nil
}

func (r *progressRepo) Completions(ctx context.Context) (map[string]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT lesson_id, completed_at FROM completions`)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var id, at string
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse completion time for %q: %w", id, err)
		}
		result[id] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completions: %w", err)
	}
	return result, nil
}

func (r *progressRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM completions`); err != nil {
		return fmt.Errorf("reset completions: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"time"
)

// Lesson event actions.
const (
	ActionSessionStarted  = "session_started"
	ActionLessonStarted   = "lesson_started"
	ActionLessonCompleted = "lesson_completed"
	ActionProgressReset   = "progress_reset"
)

// LessonEventData is the payload for appending one lesson event.
type LessonEventData struct {
	SessionID string
	LessonID  string
	Action    string
}

// LessonEvent is one recorded study event.
type LessonEvent struct {
	ID        int64
	Sequence  int64
	SessionID string
	LessonID  string
	Action    string
	Timestamp time.Time
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int    // max results (0 = unlimited)
	After    int64  // sequence > After
	LessonID string // filter to one lesson ("" = all)
	Action   string // filter to one action ("" = all)
}

// ProgressRepo persists the learner's completion set across runs.
type ProgressRepo interface {
	// SaveCompletion records a lesson completion. Saving an already
	// recorded lesson is a no-op, matching the tracker's idempotency.
	SaveCompletion(ctx context.Context, lessonID string, at time.Time) error

	// Completions returns every persisted completion keyed by lesson ID.
	Completions(ctx context.Context) (map[string]time.Time, error)

	// Reset deletes all persisted completions.
	Reset(ctx context.Context) error
}

// EventRepo provides append and query access to the study event log.
type EventRepo interface {
	// AppendLessonEvent records one event with the next global sequence.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// List returns events in sequence order, subject to opts.
	List(ctx context.Context, opts QueryOpts) ([]LessonEvent, error)

	// CountByAction returns per-action event totals.
	CountByAction(ctx context.Context) (map[string]int, error)
}

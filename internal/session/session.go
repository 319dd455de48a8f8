// Package session ties one learner's run of the app together: it drives the
// progress tracker, persists completions, and records study events.
package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/progress"
	"github.com/prabhanj08/pybasics/internal/store"
)

// Session is one learner sitting. It owns the Tracker for the duration of
// the run; the catalog is shared and read-only. Not safe for concurrent use.
type Session struct {
	ID        string
	StartedAt time.Time

	catalog      *catalog.Catalog
	tracker      *progress.Tracker
	progressRepo store.ProgressRepo
	eventRepo    store.EventRepo

	completedThisRun []string
}

// New restores persisted progress into a fresh Session. Repos may be nil,
// in which case progress lives only for this run.
func New(ctx context.Context, cat *catalog.Catalog, progressRepo store.ProgressRepo, eventRepo store.EventRepo) (*Session, error) {
	tracker := progress.NewTracker()
	if progressRepo != nil {
		completed, err := progressRepo.Completions(ctx)
		if err != nil {
			return nil, fmt.Errorf("load persisted progress: %w", err)
		}
		tracker = progress.Restore(completed)
	}

	s := &Session{
		ID:           uuid.NewString(),
		StartedAt:    time.Now(),
		catalog:      cat,
		tracker:      tracker,
		progressRepo: progressRepo,
		eventRepo:    eventRepo,
	}
	s.appendEvent(ctx, "", store.ActionSessionStarted)
	return s, nil
}

// Catalog returns the shared course catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Tracker returns the session's progress tracker.
func (s *Session) Tracker() *progress.Tracker {
	return s.tracker
}

// OpenLesson records that the learner opened a lesson for study.
func (s *Session) OpenLesson(ctx context.Context, id string) {
	s.appendEvent(ctx, id, store.ActionLessonStarted)
}

// CompleteLesson marks a lesson complete, persists the completion, and
// records the event. Errors from the tracker (unknown lesson, unmet
// prerequisites) pass through untouched so callers can inspect them.
func (s *Session) CompleteLesson(ctx context.Context, id string) error {
	already := s.tracker.IsCompleted(id)

	if err := s.tracker.MarkComplete(s.catalog, id); err != nil {
		return err
	}
	if already {
		return nil
	}

	if s.progressRepo != nil {
		at, _ := s.tracker.CompletedAt(id)
		if err := s.progressRepo.SaveCompletion(ctx, id, at); err != nil {
			return fmt.Errorf("persist completion: %w", err)
		}
	}

	s.appendEvent(ctx, id, store.ActionLessonCompleted)
	s.completedThisRun = append(s.completedThisRun, id)
	return nil
}

// appendEvent records an event, never failing the user action over it.
func (s *Session) appendEvent(ctx context.Context, lessonID, action string) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendLessonEvent(ctx, store.LessonEventData{
		SessionID: s.ID,
		LessonID:  lessonID,
		Action:    action,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record study event: %v\n", err)
	}
}

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/progress"
	"github.com/prabhanj08/pybasics/internal/store"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build([]catalog.Lesson{
		{ID: "a", Unit: catalog.UnitPythonBasics, Order: 1},
		{ID: "b", Unit: catalog.UnitPythonBasics, Order: 2, Prerequisites: []string{"a"}},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSession_CompletePersistsAndLogs(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := testStore(t)

	sess, err := New(ctx, cat, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if sess.ID == "" {
		t.Error("session has no ID")
	}

	if err := sess.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	completions, err := st.ProgressRepo().Completions(ctx)
	if err != nil {
		t.Fatalf("Completions: %v", err)
	}
	if _, ok := completions["a"]; !ok {
		t.Error("completion was not persisted")
	}

	events, err := st.EventRepo().List(ctx, store.QueryOpts{Action: store.ActionLessonCompleted})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 || events[0].LessonID != "a" {
		t.Errorf("completed events = %v, want one for lesson a", events)
	}
	if events[0].SessionID != sess.ID {
		t.Errorf("event session = %q, want %q", events[0].SessionID, sess.ID)
	}
}

func TestSession_RestoresPersistedProgress(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := testStore(t)

	first, err := New(ctx, cat, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := first.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	second, err := New(ctx, cat, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		t.Fatalf("New (second): %v", err)
	}
	if !second.Tracker().IsCompleted("a") {
		t.Error("second session did not restore completion of a")
	}
	if !second.Tracker().IsUnlocked(cat, "b") {
		t.Error("b should be unlocked in the restored session")
	}
}

func TestSession_PrerequisiteFailureChangesNothing(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := testStore(t)

	sess, err := New(ctx, cat, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = sess.CompleteLesson(ctx, "b")
	var perr *progress.PrerequisiteError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *progress.PrerequisiteError, got %v", err)
	}

	completions, err := st.ProgressRepo().Completions(ctx)
	if err != nil {
		t.Fatalf("Completions: %v", err)
	}
	if len(completions) != 0 {
		t.Errorf("failed completion was persisted: %v", completions)
	}
	events, err := st.EventRepo().List(ctx, store.QueryOpts{Action: store.ActionLessonCompleted})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("failed completion was logged: %v", events)
	}
}

func TestSession_RepeatCompleteLogsOnce(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	st := testStore(t)

	sess, err := New(ctx, cat, st.ProgressRepo(), st.EventRepo())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sess.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if err := sess.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("repeat CompleteLesson: %v", err)
	}

	events, err := st.EventRepo().List(ctx, store.QueryOpts{Action: store.ActionLessonCompleted})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("completed events = %d, want 1", len(events))
	}
}

func TestSession_WorksWithoutRepos(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)

	sess, err := New(ctx, cat, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sess.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if !sess.Tracker().IsCompleted("a") {
		t.Error("in-memory completion lost")
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)

	sess, err := New(ctx, cat, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sess.CompleteLesson(ctx, "a"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	sum := sess.Summary()
	if len(sum.CompletedLessons) != 1 || sum.CompletedLessons[0] != "a" {
		t.Errorf("CompletedLessons = %v, want [a]", sum.CompletedLessons)
	}
	if sum.TotalCompleted != 1 {
		t.Errorf("TotalCompleted = %d, want 1", sum.TotalCompleted)
	}
	if sum.Remaining != 1 {
		t.Errorf("Remaining = %d, want 1", sum.Remaining)
	}
}

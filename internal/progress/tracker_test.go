package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/prabhanj08/pybasics/internal/catalog"
)

func buildChain(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build([]catalog.Lesson{
		{ID: "a", Unit: catalog.UnitPythonBasics, Order: 1},
		{ID: "b", Unit: catalog.UnitPythonBasics, Order: 2, Prerequisites: []string{"a"}},
		{ID: "c", Unit: catalog.UnitPythonBasics, Order: 3, Prerequisites: []string{"a", "b"}},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func availableIDs(t *testing.T, tr *Tracker, cat *catalog.Catalog) []string {
	t.Helper()
	var ids []string
	for _, l := range tr.NextAvailable(cat) {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestNextAvailable_WalksTheChain(t *testing.T) {
	cat := buildChain(t)
	tr := NewTracker()

	steps := []struct {
		complete string
		want     []string
	}{
		{complete: "", want: []string{"a"}},
		{complete: "a", want: []string{"b"}},
		{complete: "b", want: []string{"c"}},
		{complete: "c", want: nil},
	}

	for _, step := range steps {
		if step.complete != "" {
			if err := tr.MarkComplete(cat, step.complete); err != nil {
				t.Fatalf("MarkComplete(%s): %v", step.complete, err)
			}
		}
		got := availableIDs(t, tr, cat)
		if len(got) != len(step.want) {
			t.Fatalf("after %q: NextAvailable = %v, want %v", step.complete, got, step.want)
		}
		for i := range step.want {
			if got[i] != step.want[i] {
				t.Fatalf("after %q: NextAvailable = %v, want %v", step.complete, got, step.want)
			}
		}
	}
}

func TestMarkComplete_UnknownLesson(t *testing.T) {
	cat := buildChain(t)
	tr := NewTracker()

	err := tr.MarkComplete(cat, "nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown lesson, got nil")
	}
	var nfe *catalog.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *catalog.NotFoundError, got %T", err)
	}
}

func TestMarkComplete_UnmetPrerequisites(t *testing.T) {
	cat := buildChain(t)
	tr := NewTracker()

	err := tr.MarkComplete(cat, "c")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var perr *PrerequisiteError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PrerequisiteError, got %T", err)
	}
	if perr.LessonID != "c" {
		t.Errorf("LessonID = %q, want %q", perr.LessonID, "c")
	}
	if len(perr.Missing) != 2 {
		t.Errorf("Missing = %v, want [a b]", perr.Missing)
	}
	if len(tr.Completed()) != 0 {
		t.Errorf("completed set changed on failure: %v", tr.Completed())
	}
}

func TestMarkComplete_Idempotent(t *testing.T) {
	cat := buildChain(t)
	tr := NewTracker()

	if err := tr.MarkComplete(cat, "a"); err != nil {
		t.Fatalf("first MarkComplete: %v", err)
	}
	first, _ := tr.CompletedAt("a")

	if err := tr.MarkComplete(cat, "a"); err != nil {
		t.Fatalf("second MarkComplete: %v", err)
	}
	second, _ := tr.CompletedAt("a")

	if !first.Equal(second) {
		t.Error("repeat completion changed the recorded completion time")
	}
	if got := tr.Completed(); len(got) != 1 {
		t.Errorf("Completed = %v, want exactly [a]", got)
	}
}

func TestIsUnlocked(t *testing.T) {
	cat := buildChain(t)
	tr := NewTracker()

	if !tr.IsUnlocked(cat, "a") {
		t.Error("lesson with no prerequisites should be unlocked immediately")
	}
	if tr.IsUnlocked(cat, "b") {
		t.Error("b should be locked before a is completed")
	}
	if tr.IsUnlocked(cat, "nonexistent") {
		t.Error("unknown lesson should not report unlocked")
	}

	if err := tr.MarkComplete(cat, "a"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if !tr.IsUnlocked(cat, "b") {
		t.Error("b should unlock once a is completed")
	}
}

func TestState(t *testing.T) {
	cat := buildChain(t)
	tr := NewTracker()

	if got := tr.State(cat, "a"); got != StateAvailable {
		t.Errorf("State(a) = %v, want Available", got.Label())
	}
	if got := tr.State(cat, "b"); got != StateLocked {
		t.Errorf("State(b) = %v, want Locked", got.Label())
	}

	if err := tr.MarkComplete(cat, "a"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if got := tr.State(cat, "a"); got != StateCompleted {
		t.Errorf("State(a) = %v, want Completed", got.Label())
	}
	if got := tr.State(cat, "b"); got != StateAvailable {
		t.Errorf("State(b) = %v, want Available", got.Label())
	}
}

func TestRestoreAndSnapshot(t *testing.T) {
	cat := buildChain(t)
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tr := Restore(map[string]time.Time{"a": at, "retired-lesson": at})

	if !tr.IsCompleted("a") {
		t.Error("restored completion lost")
	}
	if got := tr.CompletedCount(cat); got != 1 {
		t.Errorf("CompletedCount = %d, want 1 (stale IDs ignored)", got)
	}

	snap := tr.Snapshot()
	if !snap["a"].Equal(at) {
		t.Errorf("Snapshot[a] = %v, want %v", snap["a"], at)
	}
	// Snapshot must be a copy, not a view.
	delete(snap, "a")
	if !tr.IsCompleted("a") {
		t.Error("mutating snapshot affected tracker")
	}
}

func TestPercent(t *testing.T) {
	cat := buildChain(t)
	tr := NewTracker()

	if got := tr.Percent(cat); got != 0 {
		t.Errorf("Percent = %f, want 0", got)
	}
	if err := tr.MarkComplete(cat, "a"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	want := 1.0 / 3.0
	if got := tr.Percent(cat); got != want {
		t.Errorf("Percent = %f, want %f", got, want)
	}
}

package progress

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prabhanj08/pybasics/internal/catalog"
)

// PrerequisiteError indicates an attempt to complete a lesson whose
// prerequisites are not all completed yet. Missing lists the unmet ones.
type PrerequisiteError struct {
	LessonID string
	Missing  []string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("lesson %q has unmet prerequisites: %s",
		e.LessonID, strings.Join(e.Missing, ", "))
}

// Tracker records which lessons one learner has completed. A Tracker
// belongs to a single session and is not safe for concurrent use; the
// catalog it is queried against may be shared freely.
type Tracker struct {
	completed map[string]time.Time
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]time.Time)}
}

// Restore returns a Tracker pre-populated with persisted completions.
// Unknown or stale IDs are tolerated here; they are ignored by queries
// that take a catalog.
func Restore(completed map[string]time.Time) *Tracker {
	t := NewTracker()
	for id, at := range completed {
		t.completed[id] = at
	}
	return t
}

// MarkComplete records the lesson as completed. It returns a
// *catalog.NotFoundError for an unknown ID and a *PrerequisiteError when
// any prerequisite is not yet completed, leaving the completed set
// unchanged in both cases. Completing an already-completed lesson is a
// no-op.
func (t *Tracker) MarkComplete(cat *catalog.Catalog, id string) error {
	lesson, err := cat.Get(id)
	if err != nil {
		return err
	}

	if _, done := t.completed[id]; done {
		return nil
	}

	var missing []string
	for _, prereqID := range lesson.Prerequisites {
		if _, done := t.completed[prereqID]; !done {
			missing = append(missing, prereqID)
		}
	}
	if len(missing) > 0 {
		return &PrerequisiteError{LessonID: id, Missing: missing}
	}

	t.completed[id] = time.Now()
	return nil
}

// IsUnlocked reports whether every prerequisite of the lesson is completed.
// Lessons without prerequisites are always unlocked. Unknown IDs are not.
func (t *Tracker) IsUnlocked(cat *catalog.Catalog, id string) bool {
	lesson, err := cat.Get(id)
	if err != nil {
		return false
	}
	for _, prereqID := range lesson.Prerequisites {
		if _, done := t.completed[prereqID]; !done {
			return false
		}
	}
	return true
}

// IsCompleted reports whether the lesson has been completed.
func (t *Tracker) IsCompleted(id string) bool {
	_, done := t.completed[id]
	return done
}

// CompletedAt returns the completion time for a lesson, if completed.
func (t *Tracker) CompletedAt(id string) (time.Time, bool) {
	at, done := t.completed[id]
	return at, done
}

// NextAvailable returns the lessons that are unlocked but not yet
// completed, in the catalog's topological order. Each call recomputes the
// result from current state.
func (t *Tracker) NextAvailable(cat *catalog.Catalog) []catalog.Lesson {
	var result []catalog.Lesson
	for _, l := range cat.TopologicalOrder() {
		if !t.IsCompleted(l.ID) && t.IsUnlocked(cat, l.ID) {
			result = append(result, l)
		}
	}
	return result
}

// Completed returns the completed lesson IDs, sorted for determinism.
func (t *Tracker) Completed() []string {
	ids := make([]string, 0, len(t.completed))
	for id := range t.completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CompletedCount returns the number of completed lessons known to the
// given catalog.
func (t *Tracker) CompletedCount(cat *catalog.Catalog) int {
	n := 0
	for id := range t.completed {
		if cat.Has(id) {
			n++
		}
	}
	return n
}

// Percent returns the fraction of catalog lessons completed, in [0, 1].
func (t *Tracker) Percent(cat *catalog.Catalog) float64 {
	if cat.Len() == 0 {
		return 0
	}
	return float64(t.CompletedCount(cat)) / float64(cat.Len())
}

// Snapshot returns a copy of the completion map for persistence.
func (t *Tracker) Snapshot() map[string]time.Time {
	snap := make(map[string]time.Time, len(t.completed))
	for id, at := range t.completed {
		snap[id] = at
	}
	return snap
}

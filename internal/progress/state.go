package progress

import "github.com/prabhanj08/pybasics/internal/catalog"

// LessonState is a lesson's position relative to the learner.
type LessonState int

const (
	StateLocked    LessonState = iota // One or more prerequisites not yet completed
	StateAvailable                    // All prerequisites completed; lesson not yet completed
	StateCompleted                    // Lesson completed
)

// State classifies a lesson for the given tracker. Unknown IDs are Locked.
func (t *Tracker) State(cat *catalog.Catalog, id string) LessonState {
	switch {
	case t.IsCompleted(id):
		return StateCompleted
	case t.IsUnlocked(cat, id):
		return StateAvailable
	default:
		return StateLocked
	}
}

// Icon returns the display icon for a lesson state.
func (s LessonState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateAvailable:
		return "🔓"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a lesson state.
func (s LessonState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateAvailable:
		return "Available"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

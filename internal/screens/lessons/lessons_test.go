package lessons

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/router"
	"github.com/prabhanj08/pybasics/internal/session"
)

func testSession(t *testing.T) *session.Session {
	t.Helper()

	cat, err := catalog.Build([]catalog.Lesson{
		{ID: "syntax", Title: "Basic Syntax", Unit: catalog.UnitPythonBasics, Order: 1},
		{ID: "lists", Title: "Lists", Unit: catalog.UnitDataStructures, Order: 1,
			Prerequisites: []string{"syntax"}},
		{ID: "loops", Title: "Loops", Unit: catalog.UnitControlFlow, Order: 1,
			Prerequisites: []string{"lists"}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	sess, err := session.New(context.Background(), cat, nil, nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return sess
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestCursorSkipsUnitHeaders(t *testing.T) {
	s := New(testSession(t))

	if s.rows[s.cursor].kind != rowLesson {
		t.Fatalf("initial cursor on row kind %v, want lesson row", s.rows[s.cursor].kind)
	}
	first := s.cursor

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.rows[s.cursor].kind != rowLesson {
		t.Errorf("cursor landed on a unit header after moving down")
	}
	if s.cursor == first {
		t.Errorf("cursor did not move past the next unit header")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != first {
		t.Errorf("cursor = %d after down+up, want %d", s.cursor, first)
	}
}

func TestEnterOnLockedLessonSetsNotice(t *testing.T) {
	s := New(testSession(t))

	// Move to "lists", locked behind "syntax".
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.rows[s.cursor].lesson.ID != "lists" {
		t.Fatalf("cursor on %q, want lists", s.rows[s.cursor].lesson.ID)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Errorf("enter on a locked lesson should not push a screen")
	}
	if s.notice == "" {
		t.Errorf("expected a locked-lesson notice")
	}
}

func TestEnterOnUnlockedLessonPushesLessonScreen(t *testing.T) {
	s := New(testSession(t))

	if s.rows[s.cursor].lesson.ID != "syntax" {
		t.Fatalf("cursor on %q, want syntax", s.rows[s.cursor].lesson.ID)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on an unlocked lesson should produce a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected a PushScreenMsg, got %T", cmd())
	}
}

func TestFilterNarrowsRows(t *testing.T) {
	s := New(testSession(t))

	s.Update(keyPress('/'))
	if !s.filter.Active() {
		t.Fatalf("filter should be active after /")
	}

	for _, r := range "loops" {
		s.Update(keyPress(r))
	}

	lessonRows := 0
	for _, r := range s.rows {
		if r.kind == rowLesson {
			lessonRows++
		}
	}
	if lessonRows != 1 {
		t.Errorf("lesson rows = %d after filtering for loops, want 1", lessonRows)
	}

	// Esc clears the filter and restores the full list.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	lessonRows = 0
	for _, r := range s.rows {
		if r.kind == rowLesson {
			lessonRows++
		}
	}
	if lessonRows != 3 {
		t.Errorf("lesson rows = %d after clearing filter, want 3", lessonRows)
	}
}

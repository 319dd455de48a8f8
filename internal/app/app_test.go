package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prabhanj08/pybasics/internal/catalog"
	"github.com/prabhanj08/pybasics/internal/router"
	"github.com/prabhanj08/pybasics/internal/screens/lessons"
	"github.com/prabhanj08/pybasics/internal/session"
)

func testSession(t *testing.T) *session.Session {
	t.Helper()

	cat, err := catalog.Build([]catalog.Lesson{
		{ID: "syntax", Title: "Basic Syntax", Unit: catalog.UnitPythonBasics, Order: 1},
		{ID: "lists", Title: "Lists", Unit: catalog.UnitDataStructures, Order: 1,
			Prerequisites: []string{"syntax"}},
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

func apply(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	am, ok := updated.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", updated)
	}
	return am, cmd
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestEscClearsLessonsFilterBeforeNavigatingBack(t *testing.T) {
	sess := testSession(t)
	m := newAppModel(sess)

	lessonsScreen := lessons.New(sess)
	m, _ = apply(t, m, router.PushScreenMsg{Screen: lessonsScreen})
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d after push, want 2", m.router.Depth())
	}

	// Start typing a filter, then press esc: the screen must survive
	// with the filter cleared.
	m, _ = apply(t, m, keyPress('/'))
	m, _ = apply(t, m, keyPress('l'))

	m, cmd := apply(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, popped := cmd().(router.PopScreenMsg); popped {
			t.Fatalf("esc popped the screen while the filter was active")
		}
	}
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d after esc with active filter, want 2", m.router.Depth())
	}
	if lessonsScreen.WantsEsc() {
		t.Errorf("filter still set after esc")
	}

	// With no filter left, esc navigates back as usual.
	m, cmd = apply(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("esc with no filter should produce a command")
	}
	msg := cmd()
	if _, ok := msg.(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", msg)
	}
	m, _ = apply(t, m, msg)
	if m.router.Depth() != 1 {
		t.Errorf("Depth = %d after esc with no filter, want 1", m.router.Depth())
	}
}

func TestEscClearsAppliedFilter(t *testing.T) {
	sess := testSession(t)
	m := newAppModel(sess)

	lessonsScreen := lessons.New(sess)
	m, _ = apply(t, m, router.PushScreenMsg{Screen: lessonsScreen})

	// Apply a filter (enter deactivates the input, keeping the value).
	m, _ = apply(t, m, keyPress('/'))
	m, _ = apply(t, m, keyPress('l'))
	m, _ = apply(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !lessonsScreen.WantsEsc() {
		t.Fatalf("applied filter should still claim esc")
	}

	m, _ = apply(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d after esc with applied filter, want 2", m.router.Depth())
	}
	if lessonsScreen.WantsEsc() {
		t.Errorf("applied filter not cleared by esc")
	}
}

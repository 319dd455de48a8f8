package catalog

import (
	"errors"
	"strings"
	"testing"
)

func chainLessons() []Lesson {
	return []Lesson{
		{ID: "a", Title: "A", Unit: UnitPythonBasics, Order: 1},
		{ID: "b", Title: "B", Unit: UnitPythonBasics, Order: 2, Prerequisites: []string{"a"}},
		{ID: "c", Title: "C", Unit: UnitPythonBasics, Order: 3, Prerequisites: []string{"a", "b"}},
	}
}

func TestBuild_ValidChain(t *testing.T) {
	c, err := Build(chainLessons())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestBuild_DetectsCycle(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", Unit: UnitPythonBasics, Prerequisites: []string{"b"}},
		{ID: "b", Unit: UnitPythonBasics, Prerequisites: []string{"a"}},
		{ID: "root", Unit: UnitPythonBasics},
	}
	_, err := Build(lessons)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestBuild_DetectsUndefinedPrerequisite(t *testing.T) {
	lessons := []Lesson{
		{ID: "x", Unit: UnitPythonBasics},
		{ID: "y", Unit: UnitPythonBasics, Prerequisites: []string{"never-defined"}},
	}
	_, err := Build(lessons)
	if err == nil {
		t.Fatal("expected error for undefined prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "never-defined") {
		t.Errorf("error should name the missing ID, got: %v", err)
	}
}

func TestBuild_DanglingPrerequisiteIsNotACycle(t *testing.T) {
	lessons := []Lesson{
		{ID: "root", Unit: UnitPythonBasics, Order: 1},
		{ID: "b", Unit: UnitPythonBasics, Order: 2, Prerequisites: []string{"ghost"}},
	}
	_, err := Build(lessons)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Problems) != 1 {
		t.Errorf("Problems = %d, want 1: %v", len(verr.Problems), verr.Problems)
	}
	if strings.Contains(err.Error(), "cycle") {
		t.Errorf("acyclic graph reported a cycle: %v", err)
	}
}

func TestBuild_DetectsDuplicateID(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", Unit: UnitPythonBasics},
		{ID: "a", Unit: UnitPythonBasics},
	}
	_, err := Build(lessons)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestBuild_RequiresAtLeastOneRoot(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", Unit: UnitPythonBasics, Prerequisites: []string{"b"}},
		{ID: "b", Unit: UnitPythonBasics, Prerequisites: []string{"a"}},
	}
	_, err := Build(lessons)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention root, got: %v", err)
	}
}

func TestBuild_CombinesAllProblems(t *testing.T) {
	lessons := []Lesson{
		{ID: "a", Unit: UnitPythonBasics},
		{ID: "a", Unit: UnitPythonBasics},
		{ID: "b", Unit: UnitPythonBasics, Prerequisites: []string{"ghost"}},
	}
	_, err := Build(lessons)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Problems) != 2 {
		t.Errorf("Problems = %d, want 2: %v", len(verr.Problems), verr.Problems)
	}
}

func TestGet_NotFound(t *testing.T) {
	c, err := Build(chainLessons())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, err = c.Get("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown ID, got nil")
	}
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nfe.ID != "nonexistent" {
		t.Errorf("ID = %q, want %q", nfe.ID, "nonexistent")
	}
}

func TestGet_Found(t *testing.T) {
	c, err := Build(chainLessons())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	l, err := c.Get("b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if l.Title != "B" {
		t.Errorf("Title = %q, want %q", l.Title, "B")
	}
}

func TestTopologicalOrder_PrerequisitesFirst(t *testing.T) {
	lessons := []Lesson{
		{ID: "loops", Unit: UnitControlFlow, Order: 302, Prerequisites: []string{"conditionals", "lists"}},
		{ID: "lists", Unit: UnitDataStructures, Order: 201, Prerequisites: []string{"variables"}},
		{ID: "variables", Unit: UnitPythonBasics, Order: 102},
		{ID: "conditionals", Unit: UnitControlFlow, Order: 301, Prerequisites: []string{"variables"}},
	}
	c, err := Build(lessons)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pos := make(map[string]int)
	for i, l := range c.TopologicalOrder() {
		pos[l.ID] = i
	}
	for _, l := range lessons {
		for _, prereqID := range l.Prerequisites {
			if pos[prereqID] >= pos[l.ID] {
				t.Errorf("lesson %q placed at %d before prerequisite %q at %d",
					l.ID, pos[l.ID], prereqID, pos[prereqID])
			}
		}
	}
}

func TestTopologicalOrder_TieBreaksByOrderThenID(t *testing.T) {
	lessons := []Lesson{
		{ID: "z", Unit: UnitPythonBasics, Order: 5},
		{ID: "m", Unit: UnitPythonBasics, Order: 1},
		{ID: "n", Unit: UnitPythonBasics, Order: 1},
	}
	c, err := Build(lessons)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	order := c.TopologicalOrder()
	got := []string{order[0].ID, order[1].ID, order[2].ID}
	want := []string{"m", "n", "z"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTopologicalOrder_Restartable(t *testing.T) {
	c, err := Build(chainLessons())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	first := c.TopologicalOrder()
	second := c.TopologicalOrder()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
	// Mutating a returned slice must not affect the catalog.
	first[0] = Lesson{ID: "clobbered"}
	if c.TopologicalOrder()[0].ID == "clobbered" {
		t.Error("returned slice aliases catalog state")
	}
}

func TestPrerequisitesAndDependents(t *testing.T) {
	c, err := Build(chainLessons())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	prereqs := c.Prerequisites("c")
	if len(prereqs) != 2 {
		t.Fatalf("Prerequisites(c) = %d lessons, want 2", len(prereqs))
	}

	deps := c.Dependents("a")
	if len(deps) != 2 {
		t.Fatalf("Dependents(a) = %d lessons, want 2", len(deps))
	}
	if deps[0].ID != "b" || deps[1].ID != "c" {
		t.Errorf("Dependents(a) = [%s %s], want [b c]", deps[0].ID, deps[1].ID)
	}
}

func TestRoots(t *testing.T) {
	c, err := Build(chainLessons())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	roots := c.Roots()
	if len(roots) != 1 || roots[0].ID != "a" {
		t.Errorf("Roots = %v, want [a]", roots)
	}
}

func TestByUnit(t *testing.T) {
	lessons := []Lesson{
		{ID: "lists", Unit: UnitDataStructures, Order: 201, Prerequisites: []string{"syntax"}},
		{ID: "syntax", Unit: UnitPythonBasics, Order: 101},
		{ID: "tuples", Unit: UnitDataStructures, Order: 202, Prerequisites: []string{"lists"}},
	}
	c, err := Build(lessons)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	ds := c.ByUnit(UnitDataStructures)
	if len(ds) != 2 || ds[0].ID != "lists" || ds[1].ID != "tuples" {
		t.Errorf("ByUnit(data-structures) = %v", ds)
	}
	if len(c.ByUnit(UnitFunctions)) != 0 {
		t.Error("expected no lessons for empty unit")
	}
}

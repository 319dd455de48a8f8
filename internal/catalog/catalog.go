package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog holds the lesson DAG with precomputed indices. It is built once
// by Build and read-only afterwards, so it may be shared across sessions
// without synchronization.
type Catalog struct {
	lessons    []Lesson
	byID       map[string]*Lesson
	byUnit     map[Unit][]Lesson
	roots      []Lesson
	dependents map[string][]string
	topoOrder  []Lesson
	topoIndex  map[string]int
}

// Build constructs a Catalog from lesson definitions. It returns a
// *ValidationError describing every structural problem found (duplicate
// IDs, dangling prerequisites, prerequisite cycles, no root lesson).
func Build(lessons []Lesson) (*Catalog, error) {
	if err := validate(lessons); err != nil {
		return nil, err
	}

	c := &Catalog{
		lessons:    slices.Clone(lessons),
		byID:       make(map[string]*Lesson, len(lessons)),
		byUnit:     make(map[Unit][]Lesson),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(lessons)),
	}

	for i := range c.lessons {
		c.byID[c.lessons[i].ID] = &c.lessons[i]
	}

	// Reverse edges.
	for i := range c.lessons {
		for _, prereqID := range c.lessons[i].Prerequisites {
			c.dependents[prereqID] = append(c.dependents[prereqID], c.lessons[i].ID)
		}
	}
	for _, deps := range c.dependents {
		sort.Strings(deps)
	}

	c.topoOrder = topoSort(c.lessons, c.byID)
	for i, l := range c.topoOrder {
		c.topoIndex[l.ID] = i
	}

	for i := range c.lessons {
		if len(c.lessons[i].Prerequisites) == 0 {
			c.roots = append(c.roots, c.lessons[i])
		}
	}
	sortLessons(c.roots, c.topoIndex)

	for i := range c.lessons {
		l := c.lessons[i]
		c.byUnit[l.Unit] = append(c.byUnit[l.Unit], l)
	}
	for _, group := range c.byUnit {
		sortLessons(group, c.topoIndex)
	}

	return c, nil
}

// topoSort orders lessons so every lesson follows all of its prerequisites
// (Kahn's algorithm). Among lessons whose prerequisites are all placed,
// the one with the lowest Order wins, ties broken by ID, so the result is
// deterministic for a given lesson set.
func topoSort(lessons []Lesson, byID map[string]*Lesson) []Lesson {
	inDegree := make(map[string]int, len(lessons))
	forward := make(map[string][]string)
	for i := range lessons {
		inDegree[lessons[i].ID] = len(lessons[i].Prerequisites)
		for _, prereqID := range lessons[i].Prerequisites {
			forward[prereqID] = append(forward[prereqID], lessons[i].ID)
		}
	}

	var ready []string
	for i := range lessons {
		if inDegree[lessons[i].ID] == 0 {
			ready = append(ready, lessons[i].ID)
		}
	}

	order := make([]Lesson, 0, len(lessons))
	for len(ready) > 0 {
		next := 0
		for i := 1; i < len(ready); i++ {
			a, b := byID[ready[i]], byID[ready[next]]
			if a.Order < b.Order || (a.Order == b.Order && a.ID < b.ID) {
				next = i
			}
		}
		id := ready[next]
		ready = append(ready[:next], ready[next+1:]...)

		order = append(order, *byID[id])
		for _, depID := range forward[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				ready = append(ready, depID)
			}
		}
	}
	return order
}

// sortLessons sorts a lesson slice by Order ascending, then topological
// position for stability across equal orders.
func sortLessons(lessons []Lesson, topoIndex map[string]int) {
	sort.Slice(lessons, func(i, j int) bool {
		if lessons[i].Order != lessons[j].Order {
			return lessons[i].Order < lessons[j].Order
		}
		return topoIndex[lessons[i].ID] < topoIndex[lessons[j].ID]
	})
}

// validate performs all structural checks on the given lesson set.
// Returns a *ValidationError listing every problem found, or nil if valid.
func validate(lessons []Lesson) error {
	var problems []string

	idSet := make(map[string]bool, len(lessons))
	for _, l := range lessons {
		if idSet[l.ID] {
			problems = append(problems, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true
	}

	for _, l := range lessons {
		for _, prereqID := range l.Prerequisites {
			if !idSet[prereqID] {
				problems = append(problems, fmt.Sprintf("lesson %q references undefined prerequisite %q", l.ID, prereqID))
			}
		}
	}

	// Cycle check: run Kahn's algorithm and see what it could not place.
	// Any lesson left with a positive in-degree sits on or behind a cycle.
	// Dangling prerequisites are reported above and skipped here, so a
	// lesson with an undefined prerequisite is not misread as cyclic.
	inDegree := make(map[string]int, len(lessons))
	forward := make(map[string][]string)
	for _, l := range lessons {
		inDegree[l.ID] = 0
		for _, prereqID := range l.Prerequisites {
			if !idSet[prereqID] {
				continue
			}
			inDegree[l.ID]++
			forward[prereqID] = append(forward[prereqID], l.ID)
		}
	}
	var queue []string
	for _, l := range lessons {
		if inDegree[l.ID] == 0 {
			queue = append(queue, l.ID)
		}
	}
	placed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		placed++
		for _, depID := range forward[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	if placed < len(lessons) {
		var cycleIDs []string
		for _, l := range lessons {
			if inDegree[l.ID] > 0 {
				cycleIDs = append(cycleIDs, l.ID)
			}
		}
		sort.Strings(cycleIDs)
		problems = append(problems, fmt.Sprintf("prerequisite cycle involving lessons: %v", cycleIDs))
	}

	hasRoot := false
	for _, l := range lessons {
		if len(l.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(lessons) > 0 && !hasRoot {
		problems = append(problems, "no root lessons (at least one lesson must have no prerequisites)")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Get returns the lesson for id, or a *NotFoundError if absent.
func (c *Catalog) Get(id string) (Lesson, error) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, &NotFoundError{ID: id}
	}
	return *l, nil
}

// Has reports whether id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of lessons in the catalog.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// Lessons returns all lessons in definition order.
func (c *Catalog) Lessons() []Lesson {
	return slices.Clone(c.lessons)
}

// TopologicalOrder returns all lessons ordered so that every lesson appears
// after its prerequisites, ties broken by Order ascending then ID. Each call
// returns a fresh slice.
func (c *Catalog) TopologicalOrder() []Lesson {
	return slices.Clone(c.topoOrder)
}

// Prerequisites returns the direct prerequisite lessons for a lesson ID.
func (c *Catalog) Prerequisites(id string) []Lesson {
	l, ok := c.byID[id]
	if !ok {
		return nil
	}
	result := make([]Lesson, 0, len(l.Prerequisites))
	for _, prereqID := range l.Prerequisites {
		if p, ok := c.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns the lessons that directly require the given lesson.
func (c *Catalog) Dependents(id string) []Lesson {
	depIDs := c.dependents[id]
	result := make([]Lesson, 0, len(depIDs))
	for _, depID := range depIDs {
		if l, ok := c.byID[depID]; ok {
			result = append(result, *l)
		}
	}
	return result
}

// Roots returns all lessons with no prerequisites.
func (c *Catalog) Roots() []Lesson {
	return slices.Clone(c.roots)
}

// ByUnit returns all lessons in a unit, ordered by Order then topological
// position.
func (c *Catalog) ByUnit(u Unit) []Lesson {
	return slices.Clone(c.byUnit[u])
}

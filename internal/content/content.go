// Package content is the lesson definition source: the course shipped with
// the binary. Definitions live in an embedded course.json validated against
// a JSON schema before decoding; lesson bodies are embedded markdown files.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/prabhanj08/pybasics/internal/catalog"
)

//go:embed course.json lessons/*.md
var courseFS embed.FS

// courseFile mirrors the course.json layout.
type courseFile struct {
	Course  string      `json:"course"`
	Lessons []lessonDef `json:"lessons"`
}

type lessonDef struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Unit          string   `json:"unit"`
	Order         int      `json:"order"`
	EstimatedMins int      `json:"estimated_mins"`
	Objectives    []string `json:"objectives"`
	Prerequisites []string `json:"prerequisites"`
	Body          string   `json:"body"`
}

// Load parses, validates, and builds the embedded course catalog.
func Load() (*catalog.Catalog, error) {
	defs, err := loadDefinitions()
	if err != nil {
		return nil, err
	}

	lessons := make([]catalog.Lesson, 0, len(defs))
	for _, d := range defs {
		lessons = append(lessons, catalog.Lesson{
			ID:            d.ID,
			Title:         d.Title,
			Summary:       d.Summary,
			Unit:          catalog.Unit(d.Unit),
			Order:         d.Order,
			EstimatedMins: d.EstimatedMins,
			Objectives:    d.Objectives,
			Prerequisites: d.Prerequisites,
		})
	}
	return catalog.Build(lessons)
}

// Definitions are immutable once embedded, so parse and validate them once.
var (
	defsOnce sync.Once
	defs     []lessonDef
	defsErr  error
)

// loadDefinitions reads course.json and checks it against the course schema.
func loadDefinitions() ([]lessonDef, error) {
	defsOnce.Do(func() {
		defs, defsErr = parseDefinitions()
	})
	return defs, defsErr
}

func parseDefinitions() ([]lessonDef, error) {
	raw, err := courseFS.ReadFile("course.json")
	if err != nil {
		return nil, fmt.Errorf("read course.json: %w", err)
	}

	if err := validateCourse(raw); err != nil {
		return nil, err
	}

	var cf courseFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse course.json: %w", err)
	}

	// Body files must exist for every definition; a missing body is a
	// content bug, not a runtime condition.
	for _, d := range cf.Lessons {
		if _, err := courseFS.ReadFile("lessons/" + d.Body); err != nil {
			return nil, fmt.Errorf("lesson %q: body file %q: %w", d.ID, d.Body, err)
		}
	}

	return cf.Lessons, nil
}

// Body returns the markdown body for a lesson ID.
func Body(id string) (string, error) {
	defs, err := loadDefinitions()
	if err != nil {
		return "", err
	}
	for _, d := range defs {
		if d.ID == id {
			raw, err := courseFS.ReadFile("lessons/" + d.Body)
			if err != nil {
				return "", fmt.Errorf("read lesson body: %w", err)
			}
			return string(raw), nil
		}
	}
	return "", &catalog.NotFoundError{ID: id}
}
